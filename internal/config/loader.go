package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"task-planner/internal/logging"
)

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config    *Config
	envFile   string
	lookupEnv func(string) (string, bool)
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config:    NewConfig(),
		envFile:   DefaultEnvFile,
		lookupEnv: os.LookupEnv,
	}
}

// WithEnvFile reads dotenv values from path instead of ./.env
func (l *Loader) WithEnvFile(path string) *Loader {
	l.envFile = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file
// 3. Override with .env values
// 4. Override with environment variables
// 5. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	config, err := l.Read()
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Read runs the cascade without validating the result. Callers that apply
// command line flags afterwards validate once the flags are in.
func (l *Loader) Read() (*Config, error) {
	dotenv, err := l.readEnvFile()
	if err != nil {
		return nil, err
	}
	// real environment wins over .env
	lookup := func(key string) (string, bool) {
		if v, ok := l.lookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if err := l.config.LoadFromFile(l.configFilePath(lookup)); err != nil {
		return nil, err
	}
	if err := l.config.loadFrom(lookup); err != nil {
		return nil, err
	}
	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Read()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (l *Loader) readEnvFile() (map[string]string, error) {
	if l.envFile == "" {
		return map[string]string{}, nil
	}
	values, err := godotenv.Read(l.envFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, &ConfigError{Field: "env_file", Message: err.Error()}
	}
	logging.Debugf("config: loaded %d values from %s\n", len(values), l.envFile)
	return values, nil
}

// configFilePath is TP_CONFIG, or config.yaml inside the data directory
func (l *Loader) configFilePath(lookup func(string) (string, bool)) string {
	if path, ok := lookup("TP_CONFIG"); ok && path != "" {
		return path
	}
	dir := l.config.Storage.Dir
	if d, ok := lookup("TP_DATA_DIR"); ok && d != "" {
		dir = d
	}
	return filepath.Join(dir, "config.yaml")
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	DataDir        *string
	DataFile       *string
	Backend        *string
	DirPermissions *uint32

	// Planner overrides
	UpcomingDays *int

	// Display overrides
	DateFormat *string

	// Application overrides
	Timeout     *time.Duration
	Verbose     *bool
	Environment *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	config.ApplyOverrides(overrides)
}

// ApplyOverrides copies every set override into the configuration
func (c *Config) ApplyOverrides(overrides *ConfigOverrides) {
	// Storage overrides
	if overrides.DataDir != nil {
		c.Storage.Dir = *overrides.DataDir
	}
	if overrides.DataFile != nil {
		c.Storage.Filename = *overrides.DataFile
	}
	if overrides.Backend != nil {
		c.Storage.Backend = *overrides.Backend
	}
	if overrides.DirPermissions != nil {
		c.Storage.DirPermissions = *overrides.DirPermissions
	}

	// Planner overrides
	if overrides.UpcomingDays != nil {
		c.Planner.UpcomingDays = *overrides.UpcomingDays
	}

	// Display overrides
	if overrides.DateFormat != nil {
		c.Display.DateFormat = *overrides.DateFormat
	}

	// Application overrides
	if overrides.Timeout != nil {
		c.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		c.Application.Verbose = *overrides.Verbose
	}
	if overrides.Environment != nil {
		c.Application.Environment = Environment(*overrides.Environment)
	}
}
