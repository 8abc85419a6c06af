// Package config loads the user configuration from a YAML file with
// environment variable overrides. The file is only ever read.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// MCPConfig controls the agent tool server. When Enabled, the desktop app
// serves it over streamable HTTP on Addr.
type MCPConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

type AppConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
	MCP     MCPConfig     `yaml:"mcp"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		Window:  WindowConfig{Width: 1440, Height: 900, Title: "Site Builder"},
		Logging: LoggingConfig{Level: "info"},
		MCP:     MCPConfig{Enabled: false, Addr: "127.0.0.1:7801"},
	}
}

// Env var names used as overrides.
const (
	EnvLogLevel   = "SITEBUILDER_LOG_LEVEL"
	EnvMCPAddr    = "SITEBUILDER_MCP_ADDR"
	EnvMCPEnabled = "SITEBUILDER_MCP_ENABLED"
)

// DefaultPath returns the per-user config file path.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		home := os.Getenv("HOME")
		if home == "" {
			return "", errors.New("cannot resolve config directory")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "sitebuilder", "config.yaml"), nil
}

// Load reads the config file at path (the default path when empty), merges
// it over the defaults and applies environment overrides. A missing file is
// not an error; a malformed one is.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			applyEnvOverrides(&cfg)
			return cfg, nil
		}
		path = p
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg)
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.Window.Width > 0 {
		dst.Window.Width = src.Window.Width
	}
	if src.Window.Height > 0 {
		dst.Window.Height = src.Window.Height
	}
	if strings.TrimSpace(src.Window.Title) != "" {
		dst.Window.Title = strings.TrimSpace(src.Window.Title)
	}
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	// booleans: copy directly from the file so an explicit false sticks
	dst.MCP.Enabled = src.MCP.Enabled
	if strings.TrimSpace(src.MCP.Addr) != "" {
		dst.MCP.Addr = strings.TrimSpace(src.MCP.Addr)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvMCPAddr)); v != "" {
		cfg.MCP.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvMCPEnabled)); v != "" {
		lv := strings.ToLower(v)
		cfg.MCP.Enabled = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
}
