// Package config reads font path configuration from YAML files and
// FONTLOAD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrTooManyFiles    = errors.New("too many files listed")
	ErrInputTooLarge   = errors.New("config input exceeds maximum size")
)

// Limits applied by Validate.
const (
	MaxPathLength = 4096 // PATH_MAX on Linux
	MaxFiles      = 4096
)

// MaxInputSize limits YAML input to prevent memory exhaustion (64KB).
var MaxInputSize = 64 << 10

// Config holds the font source configuration.
//
// Files is a pointer so that an absent key and an empty list stay distinct:
// nil selects the folder strategy, a non-nil (possibly empty) list selects
// the per-file strategy.
type Config struct {
	Folder string    `yaml:"folder"` // Empty = default folder
	Files  *[]string `yaml:"files"`  // Relative to Folder
}

// HasFiles reports whether an explicit file list was configured.
func (c *Config) HasFiles() bool {
	return c.Files != nil
}

// FileList returns the configured files, or nil when none are configured.
func (c *Config) FileList() []string {
	if c.Files == nil {
		return nil
	}
	return *c.Files
}

// SetFiles stores a copy of files as the explicit list.
func (c *Config) SetFiles(files []string) {
	list := make([]string, len(files))
	copy(list, files)
	c.Files = &list
}

// Validate checks field lengths and list size.
func (c *Config) Validate() error {
	if err := validateFieldLength("folder", c.Folder, MaxPathLength); err != nil {
		return err
	}
	files := c.FileList()
	if len(files) > MaxFiles {
		return fmt.Errorf("%w: %d (max %d)", ErrTooManyFiles, len(files), MaxFiles)
	}
	for i, f := range files {
		if err := validateFieldLength(fmt.Sprintf("files[%d]", i), f, MaxPathLength); err != nil {
			return err
		}
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Parse decodes YAML config data. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}

	var cfg Config
	if len(data) > 0 {
		if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name.
// Tries the current directory, then ~/.config/go-fontload/, with .yaml then .yml.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{""}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, "go-fontload"))
	}

	tried := make([]string, 0, len(extensions)*len(dirs))
	for _, dir := range dirs {
		for _, ext := range extensions {
			p := filepath.Join(dir, name+ext)
			if fileExists(p) {
				return p, nil
			}
			tried = append(tried, p)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
