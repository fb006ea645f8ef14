// Package config assembles runtime settings from defaults, an optional
// YAML file, and environment variables, in that order. The credential
// table lives here so deployments can replace the development logins.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"artcrm/session"
)

// Config defines server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Business BusinessConfig `yaml:"business"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type AuthConfig struct {
	// Enforce applies the role middleware to mutating API routes.
	// Off by default: the legacy clients gate views on their side and
	// call the API unauthenticated.
	Enforce     bool                 `yaml:"enforce"`
	Credentials []session.Credential `yaml:"credentials"`
}

type BusinessConfig struct {
	// Timezone pins report timestamps and date-range bounds to a fixed
	// wall clock instead of wherever the server happens to run.
	Timezone       string `yaml:"timezone"`
	CurrencySuffix string `yaml:"currency_suffix"`
}

// Load reads configuration from an optional YAML file and environment
// variables. The file path comes from ARTCRM_CONFIG.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Auth: AuthConfig{
			Enforce: false,
			Credentials: []session.Credential{
				{Login: "admin", Password: "admin", Role: session.RoleLeader},
				{Login: "manager", Password: "manager", Role: session.RoleManager},
				{Login: "designer", Password: "designer", Role: session.RoleDesigner},
			},
		},
		Business: BusinessConfig{
			Timezone:       "Europe/Moscow",
			CurrencySuffix: "руб.",
		},
	}

	if path := os.Getenv("ARTCRM_CONFIG"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Database.URL = url
	}
	if tz := os.Getenv("ARTCRM_TIMEZONE"); tz != "" {
		cfg.Business.Timezone = tz
	}
	if suffix := os.Getenv("ARTCRM_CURRENCY_SUFFIX"); suffix != "" {
		cfg.Business.CurrencySuffix = suffix
	}
	if enforce := os.Getenv("ARTCRM_AUTH_ENFORCE"); enforce != "" {
		v, err := strconv.ParseBool(enforce)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ARTCRM_AUTH_ENFORCE: %w", err)
		}
		cfg.Auth.Enforce = v
	}

	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Location resolves the configured business timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Business.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Business.Timezone, err)
	}
	return loc, nil
}
