// Package db provides database utilities shared by repositories.
package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LockForUpdate applies a FOR UPDATE row lock on dialects that support it.
// SQLite (used in tests) has no row-level locking syntax; its single-writer
// model already serializes the read-modify-write transactions we lock for.
func LockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
