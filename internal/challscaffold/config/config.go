// Package config resolves the settings for a scaffolding run: built-in defaults, an optional
// YAML file, then command-line overrides applied by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dimasma0305/challscaffold/internal/challscaffold/errors"
	"github.com/dimasma0305/challscaffold/internal/challscaffold/fileutil"
	"github.com/dimasma0305/challscaffold/internal/challscaffold/scaffold"
	"github.com/dimasma0305/challscaffold/internal/challscaffold/scraper"
	"github.com/dimasma0305/challscaffold/internal/challscaffold/utils"
	"github.com/dimasma0305/challscaffold/internal/log"
)

// CONFIG_FILE is picked up from the working directory when no path is given
//
//nolint:revive // Name kept in line with the other file constants
const CONFIG_FILE = ".challscaffold.yaml"

// Config represents the application configuration
type Config struct {
	URL      string        `yaml:"url"`
	Selector string        `yaml:"selector"`
	Dir      string        `yaml:"dir"`
	Command  string        `yaml:"command"`
	Shell    string        `yaml:"shell,omitempty"`
	Jobs     int           `yaml:"jobs"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Default returns the settings used when nothing is configured: the course page, the challenge
// nav selector, the working directory, create-vite, and no limits.
func Default() *Config {
	return &Config{
		URL:      scraper.DefaultURL,
		Selector: scraper.DefaultSelector,
		Dir:      ".",
		Command:  scaffold.DefaultCommand,
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty path loads CONFIG_FILE
// from the working directory if it exists; an explicit path must exist.
func Load(path string) (*Config, error) {
	conf := Default()

	if path == "" {
		exists, err := fileutil.Exists(CONFIG_FILE)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", CONFIG_FILE, err)
		}
		if !exists {
			return conf, nil
		}
		path = CONFIG_FILE
	}

	if err := utils.ParseYamlFromFile(path, conf); err != nil {
		return nil, fmt.Errorf("load %s: %w: %w", path, errors.ErrInvalidConfig, err)
	}
	log.Debug("Loaded configuration from %s", path)
	return conf, nil
}

// Validate checks that the configuration can drive a run
func (c *Config) Validate() error {
	var errs []error
	if c.URL == "" {
		errs = append(errs, fmt.Errorf("%w: url", errors.ErrMissingRequired))
	}
	if c.Selector == "" {
		errs = append(errs, fmt.Errorf("%w: selector", errors.ErrMissingRequired))
	}
	if c.Command == "" {
		errs = append(errs, fmt.Errorf("%w: command", errors.ErrMissingRequired))
	}
	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("%w: jobs must not be negative, got %d", errors.ErrInvalidConfig, c.Jobs))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("%w: timeout must not be negative, got %s", errors.ErrInvalidConfig, c.Timeout))
	}
	return errors.Join(errs...)
}

// RootDir returns the absolute directory challenge folders are created in
func (c *Config) RootDir() (string, error) {
	dir := c.Dir
	if dir == "" {
		dir = "."
	}
	if !filepath.IsAbs(dir) {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(wd, dir)
	}
	return filepath.Clean(dir), nil
}

// YAML renders the configuration in the same format Load reads
func (c *Config) YAML() ([]byte, error) {
	return utils.MarshalYaml(c)
}
