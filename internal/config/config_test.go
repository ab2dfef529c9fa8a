package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, filepath.Join(".", DefaultFilename), cfg.GetDatabasePath())
	assert.Equal(t, uint32(0755), cfg.Database.DirPermissions)
	assert.Equal(t, 1, cfg.Validation.TaskNameMinLength)
	assert.Equal(t, 0, cfg.Validation.TaskNameMaxLength, "no upper limit by default")
	assert.Equal(t, "warn", cfg.EffectiveLogLevel())
	require.NoError(t, cfg.Validate())
}

func TestConfig_GetDatabasePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = "/var/lib/todo"
	cfg.Database.Filename = "tasks.db"
	assert.Equal(t, "/var/lib/todo/tasks.db", cfg.GetDatabasePath())

	cfg.Database.Path = "/tmp/explicit.db"
	assert.Equal(t, "/tmp/explicit.db", cfg.GetDatabasePath())
}

func TestConfig_EffectiveLogLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.Logging.Level = "error"
	assert.Equal(t, "error", cfg.EffectiveLogLevel())

	cfg.Logging.Verbose = true
	assert.Equal(t, "debug", cfg.EffectiveLogLevel())
}

func TestConfig_LoadFromEnv(t *testing.T) {
	cfg := NewConfig()
	err := cfg.loadFromEnv(envMap(map[string]string{
		"TODO_DB_DIR":                   "/data",
		"TODO_DB_FILENAME":              "todo.db",
		"TODO_DB_DIR_PERMISSIONS":       "700",
		"TODO_VALIDATION_TASK_NAME_MIN": "0",
		"TODO_VALIDATION_TASK_NAME_MAX": "80",
		"TODO_LOG_LEVEL":                "info",
		"TODO_VERBOSE":                  "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "/data/todo.db", cfg.GetDatabasePath())
	assert.Equal(t, uint32(0700), cfg.Database.DirPermissions)
	assert.Equal(t, 0, cfg.Validation.TaskNameMinLength)
	assert.Equal(t, 80, cfg.Validation.TaskNameMaxLength)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Verbose)
}

func TestConfig_LoadFromEnv_InvalidNumbersKeepPreviousValue(t *testing.T) {
	cfg := NewConfig()
	err := cfg.loadFromEnv(envMap(map[string]string{
		"TODO_VALIDATION_TASK_NAME_MAX": "lots",
		"TODO_VERBOSE":                  "maybe",
	}))
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Validation.TaskNameMaxLength)
	assert.False(t, cfg.Logging.Verbose)
}

func TestConfig_LoadFromEnv_DBPathWins(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.loadFromEnv(envMap(map[string]string{
		"TODO_DB":     "/tmp/one.db",
		"TODO_DB_DIR": "/ignored",
	})))

	assert.Equal(t, "/tmp/one.db", cfg.GetDatabasePath())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{
			name:   "empty filename",
			mutate: func(c *Config) { c.Database.Filename = "" },
			field:  "database.filename",
		},
		{
			name:   "empty dir",
			mutate: func(c *Config) { c.Database.Dir = "" },
			field:  "database.dir",
		},
		{
			name:   "negative minimum",
			mutate: func(c *Config) { c.Validation.TaskNameMinLength = -1 },
			field:  "validation.task_name_min_length",
		},
		{
			name: "maximum below minimum",
			mutate: func(c *Config) {
				c.Validation.TaskNameMinLength = 10
				c.Validation.TaskNameMaxLength = 5
			},
			field: "validation.task_name_max_length",
		},
		{
			name:   "negative maximum",
			mutate: func(c *Config) { c.Validation.TaskNameMaxLength = -1 },
			field:  "validation.task_name_max_length",
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Logging.Level = "chatty" },
			field:  "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestConfig_Validate_ExplicitPathSkipsDirChecks(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = ""
	cfg.Database.Filename = ""
	cfg.Database.Path = "/tmp/todo.db"

	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_ZeroMinimumAllowed(t *testing.T) {
	cfg := NewConfig()
	cfg.Validation.TaskNameMinLength = 0

	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_ZeroMaximumMeansUnbounded(t *testing.T) {
	cfg := NewConfig()
	cfg.Validation.TaskNameMinLength = 10
	cfg.Validation.TaskNameMaxLength = 0

	assert.NoError(t, cfg.Validate())
}
