package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Storage backends
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Environment selects where the store lives
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// Config holds all configuration options for the task planner
type Config struct {
	Storage     StorageConfig
	Planner     PlannerConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	Dir            string `env:"TP_DATA_DIR"`
	Filename       string `env:"TP_DATA_FILE"`
	Backend        string `env:"TP_STORAGE"`
	DirPermissions uint32 `env:"TP_DIR_PERMISSIONS"`
}

// PlannerConfig holds planning defaults
type PlannerConfig struct {
	UpcomingDays int `env:"TP_UPCOMING_DAYS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat string `env:"TP_DATE_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout     time.Duration `env:"TP_APP_TIMEOUT"`
	Verbose     bool          `env:"TP_APP_VERBOSE"`
	Environment Environment   `env:"TP_ENV"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Storage: StorageConfig{
			Dir:            filepath.Join(homeDir, ".taskplanner"),
			Backend:        BackendJSON,
			DirPermissions: 0755,
		},
		Planner: PlannerConfig{
			UpcomingDays: 7,
		},
		Display: DisplayConfig{
			DateFormat: "2006-01-02",
		},
		Application: ApplicationConfig{
			Timeout:     60 * time.Second,
			Environment: Production,
		},
	}
}

// GetDataPath returns the full path to the data file. Without an explicit
// filename the name follows the backend.
func (c *Config) GetDataPath() string {
	return filepath.Join(c.Storage.Dir, c.DataFilename())
}

// DataFilename returns the configured filename or the backend default
func (c *Config) DataFilename() string {
	if c.Storage.Filename != "" {
		return c.Storage.Filename
	}
	if c.Storage.Backend == BackendSQLite {
		return "taskplanner.db"
	}
	return "taskplanner.json"
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	return c.loadFrom(os.LookupEnv)
}

// loadFrom applies every TP_ variable that lookup finds. Unparseable values
// are ignored and the previous value kept.
func (c *Config) loadFrom(lookup func(string) (string, bool)) error {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	// Storage configuration
	if dir := get("TP_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := get("TP_DATA_FILE"); filename != "" {
		c.Storage.Filename = filename
	}
	if backend := get("TP_STORAGE"); backend != "" {
		c.Storage.Backend = backend
	}
	if perms := get("TP_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	// Planner configuration
	if days := get("TP_UPCOMING_DAYS"); days != "" {
		c.Planner.UpcomingDays = ParseIntWithFallback(days, c.Planner.UpcomingDays)
	}

	// Display configuration
	if format := get("TP_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}

	// Application configuration
	if timeout := get("TP_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := get("TP_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}
	if env := get("TP_ENV"); env != "" {
		c.Application.Environment = Environment(env)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.Backend != BackendJSON && c.Storage.Backend != BackendSQLite {
		return &ConfigError{Field: "storage.backend", Message: "storage backend must be 'json' or 'sqlite'"}
	}
	if c.Storage.DirPermissions == 0 {
		return &ConfigError{Field: "storage.dir_permissions", Message: "directory permissions cannot be zero"}
	}

	// Validate planner configuration
	if c.Planner.UpcomingDays < 0 {
		return &ConfigError{Field: "planner.upcoming_days", Message: "upcoming days cannot be negative"}
	}

	// Validate display configuration
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	switch c.Application.Environment {
	case Development, Testing, Production:
	default:
		return &ConfigError{Field: "application.environment", Message: "environment must be development, testing or production"}
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

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
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
