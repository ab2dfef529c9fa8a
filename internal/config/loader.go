package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"todo/internal/logging"
)

// defaultConfigNames are tried in order inside <user config dir>/todo
var defaultConfigNames = []string{"config.toml", "config.yaml", "config.yml"}

// Loader handles loading configuration from multiple sources
type Loader struct {
	config        *Config
	configFile    string
	getenv        func(string) string
	userConfigDir func() (string, error)
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config:        NewConfig(),
		getenv:        os.Getenv,
		userConfigDir: os.UserConfigDir,
	}
}

// WithConfigFile names the config file explicitly. A named file must exist.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the config file (TOML or YAML)
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadFile(); err != nil {
		return nil, err
	}

	if err := l.config.loadFromEnv(l.getenv); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if overrides != nil && overrides.ConfigFile != nil {
		l.WithConfigFile(*overrides.ConfigFile)
	}

	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadFile reads the explicit config file, or the first default one that exists
func (l *Loader) loadFile() error {
	path := l.configFile
	if path == "" {
		path = l.getenv("TODO_CONFIG")
	}
	if path != "" {
		return l.config.LoadFromFile(path)
	}

	dir, err := l.userConfigDir()
	if err != nil {
		logging.Debugf("no user config dir: %v", err)
		return nil
	}
	for _, name := range defaultConfigNames {
		candidate := filepath.Join(dir, "todo", name)
		if _, err := os.Stat(candidate); err == nil {
			return l.config.LoadFromFile(candidate)
		}
	}
	return nil
}

// LoadFromFile overlays the values of a TOML or YAML file onto c.
// The format is chosen by extension.
func (c *Config) LoadFromFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.DecodeFile(path, c)
		if err != nil {
			return &ConfigError{Field: "config_file", Message: fmt.Sprintf("read %s: %v", path, err)}
		}
		for _, key := range md.Undecoded() {
			logging.Logger().Warn("unknown config key", "file", path, "key", key.String())
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return &ConfigError{Field: "config_file", Message: fmt.Sprintf("read %s: %v", path, err)}
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return &ConfigError{Field: "config_file", Message: fmt.Sprintf("parse %s: %v", path, err)}
		}
	default:
		return &ConfigError{Field: "config_file", Message: fmt.Sprintf("unsupported config format %q (want .toml, .yaml or .yml)", path)}
	}

	c.Source = path
	logging.Logger().Debug("loaded config file", "path", path)
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	ConfigFile *string

	// Database overrides
	DBPath     *string
	DBDir      *string
	DBFilename *string

	// Validation overrides
	TaskNameMinLength *int
	TaskNameMaxLength *int

	// Logging overrides
	LogLevel *string
	Verbose  *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Database overrides
	if overrides.DBPath != nil {
		config.Database.Path = *overrides.DBPath
	}
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}

	// Validation overrides
	if overrides.TaskNameMinLength != nil {
		config.Validation.TaskNameMinLength = *overrides.TaskNameMinLength
	}
	if overrides.TaskNameMaxLength != nil {
		config.Validation.TaskNameMaxLength = *overrides.TaskNameMaxLength
	}

	// Logging overrides
	if overrides.LogLevel != nil {
		config.Logging.Level = *overrides.LogLevel
	}
	if overrides.Verbose != nil {
		config.Logging.Verbose = *overrides.Verbose
	}
}
