// Package config loads the non-secret application settings. Secrets
// (API key, database URL) come from the environment, not from here.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config holds tunables with working defaults; a missing file or a
// zero field falls back to the default rather than failing boot.
type Config struct {
	Model                 string `yaml:"model"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
	HistoryLimit          int    `yaml:"history_limit"`
	ListenAddr            string `yaml:"listen_addr"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Model:                 "gemini-3-flash-preview",
		RequestTimeoutSeconds: 120,
		HistoryLimit:          6,
		ListenAddr:            ":8080",
	}
}

// Load reads path and overlays it on the defaults. A missing file is
// not an error; a file that exists but cannot be parsed is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if file.Model != "" {
		cfg.Model = file.Model
	}
	if file.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeoutSeconds = file.RequestTimeoutSeconds
	}
	if file.HistoryLimit > 0 {
		cfg.HistoryLimit = file.HistoryLimit
	}
	if file.ListenAddr != "" {
		cfg.ListenAddr = file.ListenAddr
	}
	return cfg, nil
}

// RequestTimeout returns the analysis call deadline as a duration.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
