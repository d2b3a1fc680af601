package db

import (
	"context"
	"database/sql"
	"fmt"
)

const addExpansion = `
INSERT INTO expansions (template, output, query)
VALUES (?, ?, ?)
`

// AddExpansion records one expansion in the history.
func (q *Queries) AddExpansion(ctx context.Context, template, output string, query sql.NullString) error {
	_, err := q.db.ExecContext(ctx, addExpansion, template, output, query)
	return err
}

const getExpansions = `
SELECT id, template, output, query, created_at
FROM expansions
ORDER BY created_at DESC, id DESC
LIMIT ?
`

// GetExpansions returns the most recent expansions, newest first.
func (q *Queries) GetExpansions(ctx context.Context, limit int64) ([]Expansion, error) {
	rows, err := q.db.QueryContext(ctx, getExpansions, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExpansions(rows)
}

const searchExpansions = `
SELECT id, template, output, query, created_at
FROM expansions
WHERE template LIKE '%' || ? || '%'
   OR output LIKE '%' || ? || '%'
   OR query LIKE '%' || ? || '%'
ORDER BY created_at DESC, id DESC
LIMIT ?
`

// SearchExpansions performs a substring search across templates, outputs and
// queries.
func (q *Queries) SearchExpansions(ctx context.Context, term string, limit int64) ([]Expansion, error) {
	rows, err := q.db.QueryContext(ctx, searchExpansions, term, term, term, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExpansions(rows)
}

const deleteAllExpansions = `
DELETE FROM expansions
`

// DeleteAllExpansions clears the expansion history and reports how many rows
// were removed.
func (q *Queries) DeleteAllExpansions(ctx context.Context) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteAllExpansions)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const pruneExpansions = `
DELETE FROM expansions
WHERE id NOT IN (
	SELECT id FROM expansions ORDER BY created_at DESC, id DESC LIMIT ?
)
`

// PruneExpansions drops all but the newest keep entries.
func (q *Queries) PruneExpansions(ctx context.Context, keep int64) error {
	_, err := q.db.ExecContext(ctx, pruneExpansions, keep)
	return err
}

const pruneExpansionsByAge = `
DELETE FROM expansions
WHERE created_at < datetime('now', ?)
`

// PruneExpansionsByAge drops entries older than the given number of days.
func (q *Queries) PruneExpansionsByAge(ctx context.Context, days int64) error {
	_, err := q.db.ExecContext(ctx, pruneExpansionsByAge, fmt.Sprintf("-%d days", days))
	return err
}

const getExpansionStats = `
SELECT COUNT(*), MIN(created_at), MAX(created_at)
FROM expansions
`

// GetExpansionStats summarizes the recorded history.
func (q *Queries) GetExpansionStats(ctx context.Context) (ExpansionStats, error) {
	var stats ExpansionStats
	err := q.db.QueryRowContext(ctx, getExpansionStats).
		Scan(&stats.TotalExpansions, &stats.OldestEntry, &stats.NewestEntry)
	return stats, err
}

const listTemplates = `
SELECT id, name, url_template, description, created_at
FROM templates
ORDER BY name
`

// ListTemplates returns all stored named templates ordered by name.
func (q *Queries) ListTemplates(ctx context.Context) ([]Template, error) {
	rows, err := q.db.QueryContext(ctx, listTemplates)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []Template
	for rows.Next() {
		var t Template
		if err := rows.Scan(&t.ID, &t.Name, &t.UrlTemplate, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func scanExpansions(rows *sql.Rows) ([]Expansion, error) {
	var expansions []Expansion
	for rows.Next() {
		var e Expansion
		if err := rows.Scan(&e.ID, &e.Template, &e.Output, &e.Query, &e.CreatedAt); err != nil {
			return nil, err
		}
		expansions = append(expansions, e)
	}
	return expansions, rows.Err()
}
