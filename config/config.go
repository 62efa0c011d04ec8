/*
Package config holds the settings for acquiring puzzle input.

Settings have defaults suitable for the official puzzle site. They may be
overridden by an optional YAML file, named ".aoc.yaml", which is searched for
in the working directory and all of its parents:

	year: 2021
	base_url: https://adventofcode.com
	session_file: .aoc-session
	cache_dir: /tmp/aoc-cache
	max_tries: 5
	requests_per_second: 0.5

The cache directory may also be set with environment variable XDG_CACHE_HOME
(file settings take precedence).

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'aoc'
func tracer() tracing.Trace {
	return tracing.Select("aoc")
}

// FileName is the name of the optional configuration file.
const FileName = ".aoc.yaml"

// Config contains the settings for puzzle input acquisition.
type Config struct {
	Year              int     `yaml:"year"`
	BaseURL           string  `yaml:"base_url"`
	SessionFile       string  `yaml:"session_file"` // file name searched for upwards from the working dir
	CacheDir          string  `yaml:"cache_dir"`    // cache root; puzzle inputs go to <root>/aoc/<year>
	MaxTries          int     `yaml:"max_tries"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	Source string `yaml:"-"` // path of the configuration file, if any
}

// Default returns the default configuration. The cache root is taken from
// XDG_CACHE_HOME, falling back to ~/.cache.
func Default() *Config {
	return &Config{
		Year:              2021,
		BaseURL:           "https://adventofcode.com",
		SessionFile:       ".aoc-session",
		CacheDir:          defaultCacheRoot(),
		MaxTries:          3,
		RequestsPerSecond: 1,
	}
}

func defaultCacheRoot() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".cache")
	}
	return filepath.Join(home, ".cache")
}

// Load returns the configuration effective for directory dir: the defaults,
// overridden by the nearest configuration file in dir or one of its parents.
func Load(dir string) (*Config, error) {
	cfg := Default()
	path, err := FindUpwards(dir, FileName)
	if errors.Is(err, fs.ErrNotExist) {
		tracer().Debugf("no %s found, using defaults", FileName)
		return cfg, nil
	} else if err != nil {
		return nil, err
	}
	if err := cfg.ReadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadFile overrides settings of cfg with the ones present in a YAML file.
func (cfg *Config) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Source = path
	tracer().Infof("configuration read from %s", path)
	return cfg.Validate()
}

// Validate checks settings for plausibility.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Year < 2015:
		return fmt.Errorf("config: no puzzles for year %d", cfg.Year)
	case cfg.BaseURL == "":
		return errors.New("config: base URL must not be empty")
	case cfg.SessionFile == "":
		return errors.New("config: session file name must not be empty")
	case cfg.CacheDir == "":
		return errors.New("config: cache directory must not be empty")
	case cfg.MaxTries < 1:
		return fmt.Errorf("config: max tries must be at least 1, is %d", cfg.MaxTries)
	case cfg.RequestsPerSecond <= 0:
		return fmt.Errorf("config: requests per second must be positive, is %g", cfg.RequestsPerSecond)
	}
	return nil
}

// FindUpwards looks for a file called name in dir and all of its parent
// directories, nearest first. If none is found, the returned error wraps
// fs.ErrNotExist.
func FindUpwards(dir, name string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s: %w", name, fs.ErrNotExist)
		}
		dir = parent
	}
}
