// Package config loads the application configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig represents application configuration loaded from YAML.
type AppConfig struct {
	Server struct {
		Addr            string `yaml:"addr"`
		ShutdownTimeout string `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Database struct {
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime"`
		ConnMaxIdleTime string `yaml:"conn_max_idle_time"`
	} `yaml:"database"`
	Upload struct {
		Dir     string `yaml:"dir"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"upload"`
	Security struct {
		AdminSeed struct {
			EmailEnv    string `yaml:"email_env"`
			PasswordEnv string `yaml:"password_env"`
		} `yaml:"admin_seed"`
	} `yaml:"security"`
}

// DefaultAppConfig returns the configuration used when no YAML file exists.
func DefaultAppConfig() *AppConfig {
	cfg := &AppConfig{}
	cfg.Server.Addr = ":8080"
	cfg.Server.ShutdownTimeout = "10s"
	cfg.Database.MaxOpenConns = 25
	cfg.Database.MaxIdleConns = 10
	cfg.Database.ConnMaxLifetime = "1h"
	cfg.Database.ConnMaxIdleTime = "30m"
	cfg.Upload.Dir = "uploads"
	cfg.Upload.BaseURL = "/uploads"
	cfg.Security.AdminSeed.EmailEnv = "ADMIN_EMAIL"
	cfg.Security.AdminSeed.PasswordEnv = "ADMIN_PASSWORD"
	return cfg
}

// LoadAppConfig loads the application configuration from a YAML file.
// A missing file is not an error; defaults apply. The path parameter is
// expected to come from a trusted source (CLI arg or hardcoded default).
func LoadAppConfig(path string) (*AppConfig, error) {
	cfg := DefaultAppConfig()

	// #nosec G304 -- path is provided by trusted source, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateAppConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func validateAppConfig(cfg *AppConfig) error {
	if cfg.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}
	if cfg.Upload.Dir == "" {
		return fmt.Errorf("upload dir is required")
	}
	if cfg.Database.MaxOpenConns < 1 || cfg.Database.MaxIdleConns < 1 {
		return fmt.Errorf("database pool sizes must be positive")
	}
	for _, d := range []string{cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime} {
		if _, err := time.ParseDuration(d); err != nil {
			return fmt.Errorf("invalid database pool duration %q: %w", d, err)
		}
	}
	return nil
}
