// Package cli provides the command-line interface for urlfill.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"urlfill/internal/config"
	"urlfill/internal/db"
)

// CLI holds the database connection, queries, and configuration for the CLI commands
type CLI struct {
	DB      *sql.DB
	Queries *db.Queries
	Config  *config.Config
}

// NewCLI creates a new CLI instance with database connection and configuration
func NewCLI() (*CLI, error) {
	// Get configuration
	cfg := config.Get()

	// Use configured database path
	dbPath := cfg.Database.Path
	if dbPath == "" {
		// Fallback to default path if not configured
		var err error
		dbPath, err = config.GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
	}

	// Open database connection and initialize schema with configured templates
	database, err := db.InitDBWithConfig(dbPath, cfg)
	if err != nil {
		return nil, err
	}

	return &CLI{
		DB:      database,
		Queries: db.New(database),
		Config:  cfg,
	}, nil
}

// Close closes the database connection
func (c *CLI) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// closeQuietly closes the CLI and reports close failures on stderr.
func closeQuietly(c *CLI) {
	if err := c.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
	}
}
