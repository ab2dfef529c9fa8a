package config

import (
	"path/filepath"
	"strconv"

	"todo/internal/logging"
)

// Config holds all configuration options for the todo application
type Config struct {
	Database   DatabaseConfig   `toml:"database" yaml:"database"`
	Validation ValidationConfig `toml:"validation" yaml:"validation"`
	Logging    LoggingConfig    `toml:"logging" yaml:"logging"`

	// Source is the config file that was read, if any
	Source string `toml:"-" yaml:"-"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path           string `toml:"path" yaml:"path" env:"TODO_DB"`
	Dir            string `toml:"dir" yaml:"dir" env:"TODO_DB_DIR"`
	Filename       string `toml:"filename" yaml:"filename" env:"TODO_DB_FILENAME"`
	DirPermissions uint32 `toml:"dir_permissions" yaml:"dir_permissions" env:"TODO_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMinLength int `toml:"task_name_min_length" yaml:"task_name_min_length" env:"TODO_VALIDATION_TASK_NAME_MIN"`
	TaskNameMaxLength int `toml:"task_name_max_length" yaml:"task_name_max_length" env:"TODO_VALIDATION_TASK_NAME_MAX"` // 0 means no limit
}

// LoggingConfig holds diagnostic output configuration
type LoggingConfig struct {
	Level   string `toml:"level" yaml:"level" env:"TODO_LOG_LEVEL"`
	Verbose bool   `toml:"verbose" yaml:"verbose" env:"TODO_VERBOSE"`
}

// DefaultFilename is the database file the tool has always used
const DefaultFilename = "my_database.db"

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Dir:            ".",
			Filename:       DefaultFilename,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TaskNameMinLength: 1,
			TaskNameMaxLength: 0,
		},
		Logging: LoggingConfig{
			Level:   "warn",
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file.
// An explicit Path wins over Dir and Filename.
func (c *Config) GetDatabasePath() string {
	if c.Database.Path != "" {
		return c.Database.Path
	}
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// EffectiveLogLevel returns the level to run the logger at
func (c *Config) EffectiveLogLevel() string {
	if c.Logging.Verbose {
		return "debug"
	}
	return c.Logging.Level
}

func (c *Config) loadFromEnv(getenv func(string) string) error {
	// Database configuration
	if path := getenv("TODO_DB"); path != "" {
		c.Database.Path = path
	}
	if dir := getenv("TODO_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := getenv("TODO_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if perms := getenv("TODO_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Validation configuration
	if minLen := getenv("TODO_VALIDATION_TASK_NAME_MIN"); minLen != "" {
		c.Validation.TaskNameMinLength = ParseIntWithFallback(minLen, c.Validation.TaskNameMinLength)
	}
	if maxLen := getenv("TODO_VALIDATION_TASK_NAME_MAX"); maxLen != "" {
		c.Validation.TaskNameMaxLength = ParseIntWithFallback(maxLen, c.Validation.TaskNameMaxLength)
	}

	// Logging configuration
	if level := getenv("TODO_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if verbose := getenv("TODO_VERBOSE"); verbose != "" {
		c.Logging.Verbose = ParseBoolWithFallback(verbose, c.Logging.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Path == "" {
		if c.Database.Dir == "" {
			return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
		}
		if c.Database.Filename == "" {
			return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
		}
	}

	// Validate validation configuration
	if c.Validation.TaskNameMinLength < 0 {
		return &ConfigError{Field: "validation.task_name_min_length", Message: "task name minimum length cannot be negative"}
	}
	if c.Validation.TaskNameMaxLength < 0 {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length cannot be negative"}
	}
	if c.Validation.TaskNameMaxLength > 0 && c.Validation.TaskNameMaxLength < c.Validation.TaskNameMinLength {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length cannot be below the minimum"}
	}

	// Validate logging configuration
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return &ConfigError{Field: "logging.level", Message: err.Error()}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
