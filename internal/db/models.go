// Package db provides the sqlite-backed expansion history store for urlfill.
package db

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by Queries, allowing both *sql.DB
// and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// New creates a Queries instance bound to the given database handle.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries holds the prepared query methods for the urlfill database.
type Queries struct {
	db DBTX
}

// Expansion is one recorded template expansion.
type Expansion struct {
	ID        int64
	Template  string
	Output    string
	Query     sql.NullString
	CreatedAt sql.NullTime
}

// Template is a named URL template row, seeded from configuration.
type Template struct {
	ID          int64
	Name        string
	UrlTemplate string
	Description sql.NullString
	CreatedAt   sql.NullTime
}

// ExpansionStats summarizes the recorded history.
type ExpansionStats struct {
	TotalExpansions int64
	OldestEntry     sql.NullTime
	NewestEntry     sql.NullTime
}
