// Package config provides the configuration loader for runcache.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration file at path. A missing file is not an
// error: defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if cfg.StoreDir == "" {
		cfg.StoreDir = Default().StoreDir
	}
	if cfg.CASDir == "" {
		cfg.CASDir = Default().CASDir
	}
	if cfg.CacheKeyGenVersion == "" {
		cfg.CacheKeyGenVersion = Default().CacheKeyGenVersion
	}

	return cfg, nil
}

// LoadDir reads the default config file from the given working directory.
func LoadDir(cwd string) (*Config, error) {
	return Load(filepath.Join(cwd, DefaultFilename))
}
