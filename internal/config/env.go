package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Environment variable names.
const (
	EnvConfig = "FONTLOAD_CONFIG"
	EnvFolder = "FONTLOAD_FOLDER"
	EnvFiles  = "FONTLOAD_FILES"
)

// envConfig mirrors the FONTLOAD_* variables.
type envConfig struct {
	ConfigPath string   `env:"FONTLOAD_CONFIG"`
	Folder     string   `env:"FONTLOAD_FOLDER"`
	Files      []string `env:"FONTLOAD_FILES" envSeparator:","`
}

// Environ converts os.Environ style KEY=VALUE pairs into a map.
func Environ(pairs []string) map[string]string {
	m := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		k, v, _ := strings.Cut(kv, "=")
		m[k] = v
	}
	return m
}

// FromEnv builds a Config from environment variables.
// If FONTLOAD_CONFIG is set, that file is loaded first and FONTLOAD_FOLDER
// and FONTLOAD_FILES override it. A set but empty FONTLOAD_FILES selects an
// empty file list. A nil environ reads the process environment.
func FromEnv(environ map[string]string) (*Config, error) {
	if environ == nil {
		environ = Environ(os.Environ())
	}

	var ec envConfig
	if err := env.ParseWithOptions(&ec, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg := &Config{}
	if ec.ConfigPath != "" {
		loaded, err := LoadConfig(ec.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if ec.Folder != "" {
		cfg.Folder = ec.Folder
	}
	if _, ok := environ[EnvFiles]; ok {
		cfg.SetFiles(trimEntries(ec.Files))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// trimEntries drops surrounding spaces and empty entries ("a.ttf, b.ttf,").
func trimEntries(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
