package config

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, validateConfig(cfg))

	assert.Equal(t, "<|>", cfg.Engine.EntryDelimiter)
	assert.Equal(t, "%%", cfg.Engine.QueryDelimiter)
	assert.Equal(t, "<>", cfg.Engine.DataDelimiter)
	assert.Equal(t, 8, cfg.Engine.MaxPlaceholders)
	assert.Equal(t, 7, cfg.Engine.MaxDelimiterLength)
	assert.True(t, cfg.History.Enabled)
	assert.NotEmpty(t, cfg.Templates)
}

func TestDefaultTemplatesContainPlaceholders(t *testing.T) {
	for name, tpl := range GetDefaultTemplates() {
		assert.Contains(t, tpl.URL, `{search`, "template %s should contain a placeholder", name)
		assert.NotEmpty(t, tpl.Description, "template %s should have a description", name)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name: "empty entry delimiter",
			mutate: func(c *Config) {
				c.Engine.EntryDelimiter = ""
			},
			wantErr: "engine.entry_delimiter cannot be empty",
		},
		{
			name: "empty query delimiter",
			mutate: func(c *Config) {
				c.Engine.QueryDelimiter = ""
			},
			wantErr: "engine.query_delimiter cannot be empty",
		},
		{
			name: "entry and query delimiters collide",
			mutate: func(c *Config) {
				c.Engine.EntryDelimiter = "%%"
			},
			wantErr: "must differ",
		},
		{
			name: "max placeholders below one",
			mutate: func(c *Config) {
				c.Engine.MaxPlaceholders = 0
			},
			wantErr: "engine.max_placeholders must be at least 1",
		},
		{
			name: "max delimiter length below one",
			mutate: func(c *Config) {
				c.Engine.MaxDelimiterLength = 0
			},
			wantErr: "engine.max_delimiter_length must be at least 1",
		},
		{
			name: "template without url",
			mutate: func(c *Config) {
				c.Templates["bad"] = URLTemplate{Description: "no url"}
			},
			wantErr: "templates.bad.url cannot be empty",
		},
		{
			name: "negative history size",
			mutate: func(c *Config) {
				c.History.MaxEntries = -1
			},
			wantErr: "history.max_entries must be non-negative",
		},
		{
			name: "zero database connections",
			mutate: func(c *Config) {
				c.Database.MaxConnections = 0
			},
			wantErr: "database.max_connections must be at least 1",
		},
		{
			name: "unknown logging format",
			mutate: func(c *Config) {
				c.Logging.Format = "xml"
			},
			wantErr: "logging.format must be 'console' or 'json'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfigCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.EntryDelimiter = ""
	cfg.Engine.MaxPlaceholders = 0
	cfg.Database.MaxConnections = 0

	err := validateConfig(cfg)
	require.Error(t, err)

	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "config validation failed:"))
	assert.Contains(t, msg, "engine.entry_delimiter cannot be empty")
	assert.Contains(t, msg, "engine.max_placeholders must be at least 1")
	assert.Contains(t, msg, "database.max_connections must be at least 1")
}

func TestManagerEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("URLFILL_ENGINE_MAX_PLACEHOLDERS", "4")
	t.Setenv("ENV", "dev")

	manager, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Load())

	cfg := manager.Get()
	assert.Equal(t, 4, cfg.Engine.MaxPlaceholders)
}

func TestManagerWatchReloadsOnFileChange(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENV", "dev")

	require.NoError(t, EnsureDirectories())
	configFile, err := GetConfigFile()
	require.NoError(t, err)

	writeConfig := func(maxPlaceholders int) {
		cfg := DefaultConfig()
		cfg.Engine.MaxPlaceholders = maxPlaceholders
		data, err := json.MarshalIndent(cfg, "", "  ")
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(configFile, data, filePerm))
	}
	writeConfig(8)

	manager, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Load())
	require.NoError(t, manager.Watch())

	reloaded := make(chan *Config, 1)
	manager.OnConfigChange(func(c *Config) {
		select {
		case reloaded <- c:
		default:
		}
	})

	writeConfig(4)

	select {
	case c := <-reloaded:
		assert.Equal(t, 4, c.Engine.MaxPlaceholders)
	case <-time.After(5 * time.Second):
		t.Fatal("config change callback did not fire")
	}

	assert.Equal(t, 4, manager.Get().Engine.MaxPlaceholders)

	// A second Watch call is a no-op.
	require.NoError(t, manager.Watch())
}
