package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML config file. Pointer fields distinguish an
// absent key from a zero value.
type fileConfig struct {
	Storage struct {
		Dir            *string `yaml:"dir"`
		File           *string `yaml:"file"`
		Backend        *string `yaml:"backend"`
		DirPermissions *string `yaml:"dir_permissions"`
	} `yaml:"storage"`
	Planner struct {
		UpcomingDays *int `yaml:"upcoming_days"`
	} `yaml:"planner"`
	Display struct {
		DateFormat *string `yaml:"date_format"`
	} `yaml:"display"`
	App struct {
		Timeout *string `yaml:"timeout"`
		Verbose *bool   `yaml:"verbose"`
		Env     *string `yaml:"env"`
	} `yaml:"app"`
}

// LoadFromFile applies the YAML file at path. A missing file is not an error.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &ConfigError{Field: "config_file", Message: err.Error()}
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return &ConfigError{Field: "config_file", Message: "invalid YAML in " + path + ": " + err.Error()}
	}
	c.applyFile(&fc)
	return nil
}

func (c *Config) applyFile(fc *fileConfig) {
	if fc.Storage.Dir != nil {
		c.Storage.Dir = *fc.Storage.Dir
	}
	if fc.Storage.File != nil {
		c.Storage.Filename = *fc.Storage.File
	}
	if fc.Storage.Backend != nil {
		c.Storage.Backend = *fc.Storage.Backend
	}
	if fc.Storage.DirPermissions != nil {
		c.Storage.DirPermissions = ParseUint32WithFallback(*fc.Storage.DirPermissions, 8, c.Storage.DirPermissions)
	}
	if fc.Planner.UpcomingDays != nil {
		c.Planner.UpcomingDays = *fc.Planner.UpcomingDays
	}
	if fc.Display.DateFormat != nil {
		c.Display.DateFormat = *fc.Display.DateFormat
	}
	if fc.App.Timeout != nil {
		c.Application.Timeout = ParseDurationWithFallback(*fc.App.Timeout, c.Application.Timeout)
	}
	if fc.App.Verbose != nil {
		c.Application.Verbose = *fc.App.Verbose
	}
	if fc.App.Env != nil {
		c.Application.Environment = Environment(*fc.App.Env)
	}
}
