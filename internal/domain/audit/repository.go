package audit

import "context"

// Repository is the append-only audit store. There is deliberately no
// update or delete method.
type Repository interface {
	Append(ctx context.Context, entry *Entry) error

	// List returns entries newest first, with the total match count.
	List(ctx context.Context, filter ListFilter, page, pageSize int) ([]*Entry, int64, error)

	// ListForRecord returns the entries for one resource row, restricted to
	// the given actions (all actions when empty), oldest first.
	ListForRecord(ctx context.Context, tableName, recordID string, actions []string) ([]*Entry, error)
}
