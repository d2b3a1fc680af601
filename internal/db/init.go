package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"urlfill/internal/config"

	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite
)

const schema = `
-- Recorded template expansions
CREATE TABLE IF NOT EXISTS expansions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	template TEXT NOT NULL,
	output TEXT NOT NULL,
	query TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_expansions_created_at ON expansions(created_at);

-- Named URL templates seeded from configuration
CREATE TABLE IF NOT EXISTS templates (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	url_template TEXT NOT NULL,
	description TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// InitDB initializes the database connection and schema
func InitDB(dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}

	// Ensure database directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database connection
	database, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := database.Ping(); err != nil {
		if err := database.Close(); err != nil {
			log.Printf("Warning: failed to close database: %v", err)
		}
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Create schema
	if _, err := database.Exec(schema); err != nil {
		if err := database.Close(); err != nil {
			log.Printf("Warning: failed to close database: %v", err)
		}
		return nil, fmt.Errorf("failed to initialize database schema: %w", err)
	}

	return database, nil
}

// InitDBWithConfig initializes the database and seeds configured templates
func InitDBWithConfig(dbPath string, cfg *config.Config) (*sql.DB, error) {
	database, err := InitDB(dbPath)
	if err != nil {
		return nil, err
	}

	if err := seedTemplates(database, cfg); err != nil {
		if err := database.Close(); err != nil {
			log.Printf("Warning: failed to close database: %v", err)
		}
		return nil, fmt.Errorf("failed to seed templates: %w", err)
	}

	return database, nil
}

// seedTemplates inserts configured templates into the database
func seedTemplates(database *sql.DB, cfg *config.Config) error {
	if cfg == nil || cfg.Templates == nil {
		return nil // No templates to seed
	}

	for name, tpl := range cfg.Templates {
		_, err := database.Exec(
			"INSERT OR IGNORE INTO templates (name, url_template, description) VALUES (?, ?, ?)",
			name, tpl.URL, tpl.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to insert template %s: %w", name, err)
		}
	}

	return nil
}
