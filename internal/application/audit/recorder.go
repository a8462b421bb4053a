// Package audit provides the application-level audit recorder shared by
// every mutating use case.
package audit

import (
	"context"

	domainaudit "stockward/internal/domain/audit"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
)

// Recorder appends audit entries after a data mutation has committed.
// A failed append is surfaced as an audit write error; the committed data
// change stands regardless.
type Recorder struct {
	repo   domainaudit.Repository
	logger logger.Interface
}

func NewRecorder(repo domainaudit.Repository, log logger.Interface) *Recorder {
	return &Recorder{
		repo:   repo,
		logger: log,
	}
}

// Record appends a required audit entry. The caller's data change is
// already committed, so failure here is reported without rollback.
func (r *Recorder) Record(ctx context.Context, entry *domainaudit.Entry) error {
	if err := r.repo.Append(ctx, entry); err != nil {
		r.logger.Errorw("audit write failed after committed mutation",
			"action", entry.Action,
			"table", entry.TableName,
			"record_id", entry.RecordID,
			"actor_id", entry.ActorID,
			"error", err)
		return errors.NewAuditWriteError("operation committed but audit trail write failed")
	}
	return nil
}

// RecordBestEffort appends a supplemental audit entry. Failures are logged
// and swallowed; supplemental entries never fail the operation that
// produced them.
func (r *Recorder) RecordBestEffort(ctx context.Context, entry *domainaudit.Entry) {
	if err := r.repo.Append(ctx, entry); err != nil {
		r.logger.Warnw("supplemental audit write failed",
			"action", entry.Action,
			"table", entry.TableName,
			"record_id", entry.RecordID,
			"error", err)
	}
}
