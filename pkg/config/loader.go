package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Common errors for settings loading.
var (
	ErrFileNotFound = errors.New("settings file not found")
	ErrEmptyFile    = errors.New("settings file is empty")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
)

// LoadFromFile reads Settings from a JSON or YAML file. The format is
// auto-detected from the file extension (.yaml/.yml for YAML, otherwise JSON).
func LoadFromFile(path string) (Settings, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Settings{}, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return Settings{}, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return Settings{}, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		return ParseYAML(data)
	}
	return ParseJSON(data)
}

// ParseJSON parses JSON bytes into Settings.
func ParseJSON(data []byte) (Settings, error) {
	if !json.Valid(data) {
		return Settings{}, ErrInvalidJSON
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return s, nil
}

// ParseYAML parses YAML bytes into Settings.
func ParseYAML(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return s, nil
}
