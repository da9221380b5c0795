// Package config holds server configuration and the shared tool-name and
// message constants.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the config file nor the environment sets a
// value.
const (
	DefaultName          = "docteam-mcp"
	DefaultVersion       = "0.1.0"
	DefaultWorkspaceRoot = "./content/data"
	DefaultHTTPAddr      = ":8080"
)

// Config holds the workspace server configuration. The workspace root is an
// explicit value threaded into the session manager, never ambient state.
type Config struct {
	Name          string
	Version       string
	WorkspaceRoot string
	// StateDB is a SQLite file path for session state; empty selects the
	// in-memory backend.
	StateDB  string
	HTTPAddr string
	// SessionTTL bounds how long inactive session records are kept. Zero
	// disables the cleanup sweep entirely. Workspace directories are never
	// removed either way; retention of files is an external concern.
	SessionTTL time.Duration
}

// fileConfig is the YAML shape of the config file. Durations are strings so
// the file can say "30m" rather than nanosecond counts.
type fileConfig struct {
	Name          string `yaml:"name"`
	Version       string `yaml:"version"`
	WorkspaceRoot string `yaml:"workspace_root"`
	StateDB       string `yaml:"state_db"`
	HTTPAddr      string `yaml:"http_addr"`
	SessionTTL    string `yaml:"session_ttl"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Name:          DefaultName,
		Version:       DefaultVersion,
		WorkspaceRoot: DefaultWorkspaceRoot,
		HTTPAddr:      DefaultHTTPAddr,
	}
}

// Load reads configuration from the YAML file at path (skipped when path is
// empty), then applies environment variable overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
		if err := applyFile(&cfg, &fc); err != nil {
			return cfg, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, fc *fileConfig) error {
	if fc.Name != "" {
		cfg.Name = fc.Name
	}
	if fc.Version != "" {
		cfg.Version = fc.Version
	}
	if fc.WorkspaceRoot != "" {
		cfg.WorkspaceRoot = fc.WorkspaceRoot
	}
	if fc.StateDB != "" {
		cfg.StateDB = fc.StateDB
	}
	if fc.HTTPAddr != "" {
		cfg.HTTPAddr = fc.HTTPAddr
	}
	if fc.SessionTTL != "" {
		ttl, err := time.ParseDuration(fc.SessionTTL)
		if err != nil {
			return fmt.Errorf("invalid session_ttl %q: %w", fc.SessionTTL, err)
		}
		cfg.SessionTTL = ttl
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("WORKSPACE_ROOT"); v != "" {
		cfg.WorkspaceRoot = v
	}
	if v := os.Getenv("STATE_DB"); v != "" {
		cfg.StateDB = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SESSION_TTL %q: %w", v, err)
		}
		cfg.SessionTTL = ttl
	}
	return nil
}
