// Package config provides configuration management for urlfill with Viper integration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for urlfill.
type Config struct {
	Engine    EngineConfig           `mapstructure:"engine" yaml:"engine" json:"engine"`
	Templates map[string]URLTemplate `mapstructure:"templates" yaml:"templates" json:"templates"`
	Database  DatabaseConfig         `mapstructure:"database" yaml:"database" json:"database"`
	History   HistoryConfig          `mapstructure:"history" yaml:"history" json:"history"`
	Logging   LoggingConfig          `mapstructure:"logging" yaml:"logging" json:"logging"`
}

// EngineConfig holds the constants of the placeholder engine. It is passed
// into the engine at construction and never mutated afterwards.
type EngineConfig struct {
	// EntryDelimiter separates URL entries in the urls argument.
	EntryDelimiter string `mapstructure:"entry_delimiter" yaml:"entry_delimiter" json:"entry_delimiter"`
	// QueryDelimiter separates query strings in the joined query source.
	QueryDelimiter string `mapstructure:"query_delimiter" yaml:"query_delimiter" json:"query_delimiter"`
	// DataDelimiter marks the start of the opaque per-entry data suffix.
	DataDelimiter string `mapstructure:"data_delimiter" yaml:"data_delimiter" json:"data_delimiter"`
	// MaxPlaceholders is the hard cap of placeholders per URL entry.
	MaxPlaceholders int `mapstructure:"max_placeholders" yaml:"max_placeholders" json:"max_placeholders"`
	// MaxDelimiterLength is the hard cap on a placeholder delimiter's length.
	MaxDelimiterLength int `mapstructure:"max_delimiter_length" yaml:"max_delimiter_length" json:"max_delimiter_length"`
}

// URLTemplate represents a named, preconfigured URL template.
type URLTemplate struct {
	URL         string `mapstructure:"url" yaml:"url" json:"url"`
	Description string `mapstructure:"description" yaml:"description" json:"description"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path           string        `mapstructure:"path" yaml:"path" json:"path"`
	MaxConnections int           `mapstructure:"max_connections" yaml:"max_connections" json:"max_connections"`
	MaxIdleTime    time.Duration `mapstructure:"max_idle_time" yaml:"max_idle_time" json:"max_idle_time"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout" yaml:"query_timeout" json:"query_timeout"`
}

// HistoryConfig holds expansion-history configuration.
type HistoryConfig struct {
	Enabled             bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	MaxEntries          int  `mapstructure:"max_entries" yaml:"max_entries" json:"max_entries"`
	RetentionPeriodDays int  `mapstructure:"retention_period_days" yaml:"retention_period_days" json:"retention_period_days"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Configure Viper - supports yaml, json, toml automatically
	v.SetConfigName("config") // Will find config.json, config.yaml, config.toml, etc.

	// Add config paths
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// Set up environment variable support
	v.SetEnvPrefix("URLFILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	bindings := map[string]string{
		"engine.entry_delimiter":        "ENGINE_ENTRY_DELIMITER",
		"engine.query_delimiter":        "ENGINE_QUERY_DELIMITER",
		"engine.data_delimiter":         "ENGINE_DATA_DELIMITER",
		"engine.max_placeholders":       "ENGINE_MAX_PLACEHOLDERS",
		"engine.max_delimiter_length":   "ENGINE_MAX_DELIMITER_LENGTH",
		"database.path":                 "DATABASE_PATH",
		"database.max_connections":      "DATABASE_MAX_CONNECTIONS",
		"database.max_idle_time":        "DATABASE_MAX_IDLE_TIME",
		"database.query_timeout":        "DATABASE_QUERY_TIMEOUT",
		"history.enabled":               "HISTORY_ENABLED",
		"history.max_entries":           "HISTORY_MAX_ENTRIES",
		"history.retention_period_days": "HISTORY_RETENTION_PERIOD_DAYS",
		"logging.level":                 "LOGGING_LEVEL",
		"logging.format":                "LOGGING_FORMAT",
	}

	for key, env := range bindings {
		if err := v.BindEnv(key, "URLFILL_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Ensure directories exist
	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	// Set defaults
	m.setDefaults()

	// Read config file if it exists
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create default one
			if err := m.createDefaultConfig(); err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config, err := m.unmarshal()
	if err != nil {
		return err
	}

	if err := validateConfig(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		// Reload config
		if err := m.reload(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to reload config: %v\n", err)
			return
		}

		// Notify callbacks
		m.mu.RLock()
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.RUnlock()

		for _, callback := range callbacks {
			callback(config)
		}
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload reloads the configuration (internal method, must be called with lock).
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config, err := m.unmarshal()
	if err != nil {
		return err
	}

	if err := validateConfig(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

// unmarshal converts the current viper state into a Config struct and fills
// derived values like the database path.
func (m *Manager) unmarshal() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set database path if not specified
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}

	return config, nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Engine defaults
	m.viper.SetDefault("engine.entry_delimiter", defaults.Engine.EntryDelimiter)
	m.viper.SetDefault("engine.query_delimiter", defaults.Engine.QueryDelimiter)
	m.viper.SetDefault("engine.data_delimiter", defaults.Engine.DataDelimiter)
	m.viper.SetDefault("engine.max_placeholders", defaults.Engine.MaxPlaceholders)
	m.viper.SetDefault("engine.max_delimiter_length", defaults.Engine.MaxDelimiterLength)

	// Template defaults
	m.viper.SetDefault("templates", defaults.Templates)

	// Database defaults
	m.viper.SetDefault("database.max_connections", defaults.Database.MaxConnections)
	m.viper.SetDefault("database.max_idle_time", defaults.Database.MaxIdleTime)
	m.viper.SetDefault("database.query_timeout", defaults.Database.QueryTimeout)

	// History defaults
	m.viper.SetDefault("history.enabled", defaults.History.Enabled)
	m.viper.SetDefault("history.max_entries", defaults.History.MaxEntries)
	m.viper.SetDefault("history.retention_period_days", defaults.History.RetentionPeriodDays)

	// Logging defaults
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	// Get the default configuration
	defaultConfig := DefaultConfig()

	// Marshal to JSON with proper indentation
	configData, err := json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	// Write JSON config file
	if err := os.WriteFile(configFile, configData, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created default configuration file: %s\n", configFile)
	return nil
}

// ConfigFileUsed returns the path to the configuration file being used.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		// Return defaults if not initialized
		return DefaultConfig()
	}
	return globalManager.Get()
}

// Watch starts watching the global configuration for changes.
func Watch() error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback for global configuration changes.
func OnConfigChange(callback func(*Config)) {
	if globalManager == nil {
		return
	}
	globalManager.OnConfigChange(callback)
}
