package db

import (
	"context"
	"database/sql"
)

// ExpansionQuerier defines the interface for expansion-history database operations
type ExpansionQuerier interface {
	AddExpansion(ctx context.Context, template, output string, query sql.NullString) error
	GetExpansions(ctx context.Context, limit int64) ([]Expansion, error)
	SearchExpansions(ctx context.Context, term string, limit int64) ([]Expansion, error)
	DeleteAllExpansions(ctx context.Context) (int64, error)
	PruneExpansions(ctx context.Context, keep int64) error
	PruneExpansionsByAge(ctx context.Context, days int64) error
	GetExpansionStats(ctx context.Context) (ExpansionStats, error)
}

// TemplateQuerier defines the interface for template-related database operations
type TemplateQuerier interface {
	ListTemplates(ctx context.Context) ([]Template, error)
}

// DatabaseQuerier combines all database operation interfaces
type DatabaseQuerier interface {
	ExpansionQuerier
	TemplateQuerier
}

// Ensure that *Queries implements DatabaseQuerier interface
var _ DatabaseQuerier = (*Queries)(nil)
