// Package config provides validation utilities for configuration values.
package config

import (
	"fmt"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	// Validate engine delimiters
	if config.Engine.EntryDelimiter == "" {
		validationErrors = append(validationErrors, "engine.entry_delimiter cannot be empty")
	}
	if config.Engine.QueryDelimiter == "" {
		validationErrors = append(validationErrors, "engine.query_delimiter cannot be empty")
	}
	if config.Engine.DataDelimiter == "" {
		validationErrors = append(validationErrors, "engine.data_delimiter cannot be empty")
	}
	if config.Engine.EntryDelimiter != "" && config.Engine.EntryDelimiter == config.Engine.QueryDelimiter {
		validationErrors = append(validationErrors, "engine.entry_delimiter and engine.query_delimiter must differ")
	}

	// Validate engine limits
	if config.Engine.MaxPlaceholders < 1 {
		validationErrors = append(validationErrors, "engine.max_placeholders must be at least 1")
	}
	if config.Engine.MaxDelimiterLength < 1 {
		validationErrors = append(validationErrors, "engine.max_delimiter_length must be at least 1")
	}

	// Validate templates
	for name, tpl := range config.Templates {
		if name == "" {
			validationErrors = append(validationErrors, "templates must not have an empty name")
			continue
		}
		if tpl.URL == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("templates.%s.url cannot be empty", name))
		}
	}

	// Validate history values
	if config.History.MaxEntries < 0 {
		validationErrors = append(validationErrors, "history.max_entries must be non-negative")
	}
	if config.History.RetentionPeriodDays < 0 {
		validationErrors = append(validationErrors, "history.retention_period_days must be non-negative")
	}

	// Validate database values
	if config.Database.MaxConnections < 1 {
		validationErrors = append(validationErrors, "database.max_connections must be at least 1")
	}

	// Validate logging values
	switch config.Logging.Format {
	case "", "console", "json":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be 'console' or 'json' (got: %s)", config.Logging.Format))
	}

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}
