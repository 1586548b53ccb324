package config

import (
	"log/slog"

	"go.trai.ch/runcache/internal/core/domain"
)

// DefaultFilename is the configuration file looked up in the working directory.
const DefaultFilename = "runcache.yaml"

// Config is the runcache.yaml schema.
type Config struct {
	Version            string                    `yaml:"version"`
	StoreDir           string                    `yaml:"store_dir"`
	CASDir             string                    `yaml:"cas_dir"`
	InstanceName       string                    `yaml:"instance_name"`
	CacheKeyGenVersion string                    `yaml:"cache_key_gen_version"`
	DefaultScope       string                    `yaml:"default_scope"`
	LogLevel           string                    `yaml:"log_level"`
	PlatformProperties []domain.PlatformProperty `yaml:"platform_properties"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		StoreDir:           ".runcache/store",
		CASDir:             ".runcache/cas",
		CacheKeyGenVersion: "1",
		DefaultScope:       string(domain.ScopeSuccessful),
		LogLevel:           "info",
	}
}

// Metadata returns the static execution metadata derived from the config.
func (c *Config) Metadata() *domain.Metadata {
	return &domain.Metadata{
		InstanceName:       c.InstanceName,
		CacheKeyGenVersion: c.CacheKeyGenVersion,
		PlatformProperties: c.PlatformProperties,
	}
}

// Scope returns the configured default cache scope.
func (c *Config) Scope() domain.CacheScope {
	if c.DefaultScope == string(domain.ScopeAlways) {
		return domain.ScopeAlways
	}
	return domain.ScopeSuccessful
}

// SlogLevel maps the configured log level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
