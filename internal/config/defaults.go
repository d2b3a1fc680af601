// Package config provides default configuration values for urlfill.
package config

import (
	"time"
)

// Default configuration constants
const (
	// Engine defaults
	defaultEntryDelimiter     = "<|>"
	defaultQueryDelimiter     = "%%"
	defaultDataDelimiter      = "<>"
	defaultMaxPlaceholders    = 8
	defaultMaxDelimiterLength = 7

	// Database defaults
	defaultMaxIdleTimeMin  = 5  // minutes
	defaultQueryTimeoutSec = 30 // seconds

	// History defaults
	defaultMaxHistoryEntries = 10000 // entries
	defaultRetentionDays     = 365   // 1 year
)

// DefaultConfig returns the default configuration values for urlfill.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			EntryDelimiter:     defaultEntryDelimiter,
			QueryDelimiter:     defaultQueryDelimiter,
			DataDelimiter:      defaultDataDelimiter,
			MaxPlaceholders:    defaultMaxPlaceholders,
			MaxDelimiterLength: defaultMaxDelimiterLength,
		},
		Templates: GetDefaultTemplates(),
		Database: DatabaseConfig{
			MaxConnections: 1,
			MaxIdleTime:    time.Minute * defaultMaxIdleTimeMin,
			QueryTimeout:   time.Second * defaultQueryTimeoutSec,
		},
		History: HistoryConfig{
			Enabled:             true,
			MaxEntries:          defaultMaxHistoryEntries,
			RetentionPeriodDays: defaultRetentionDays, // 1 year
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console", // console or json
		},
	}
}

// GetDefaultTemplates returns the default named URL templates.
func GetDefaultTemplates() map[string]URLTemplate {
	return map[string]URLTemplate{
		"g": {
			URL:         `https://www.google.com/search?q={search\+}`,
			Description: "Google search",
		},
		"ddg": {
			URL:         `https://duckduckgo.com/?q={search\+}`,
			Description: "DuckDuckGo search",
		},
		"gh": {
			URL:         `https://github.com/search?q={search\+}`,
			Description: "GitHub search",
		},
		"so": {
			URL:         `https://stackoverflow.com/search?q={search\+}`,
			Description: "Stack Overflow search",
		},
		"w": {
			URL:         `https://en.wikipedia.org/wiki/{search!C\_}`,
			Description: "Wikipedia article",
		},
		"yt": {
			URL:         `https://www.youtube.com/results?search_query={search\+}`,
			Description: "YouTube search",
		},
		"go": {
			URL:         `https://pkg.go.dev/search?q={search\+}`,
			Description: "Go package search",
		},
	}
}
