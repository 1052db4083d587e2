// Package config provides the settings object that replaces framework-global
// configuration for NanoID generation. A Settings value is constructed once
// (defaults, file, environment) and passed explicitly to generators, enforcers
// and upload path builders.
package config

import (
	"os"
	"strconv"
)

// DefaultSize is the NanoID length used when neither the caller nor the
// settings specify one. 21 characters matches the reference NanoID scheme.
const DefaultSize = 21

// Environment variable names
const (
	EnvAlphabet           = "NANOID_ALPHABET"
	EnvAlphabetPredefined = "NANOID_ALPHABET_PREDEFINED"
	EnvSize               = "NANOID_SIZE"
)

// Settings holds the global NanoID defaults. Field-level options always take
// precedence over these values.
type Settings struct {
	// Alphabet is a literal character set override. Takes precedence over
	// AlphabetPredefined when both are set.
	Alphabet string `json:"alphabet,omitempty" yaml:"alphabet,omitempty"`

	// AlphabetPredefined names one of the predefined alphabets.
	AlphabetPredefined string `json:"alphabetPredefined,omitempty" yaml:"alphabetPredefined,omitempty"`

	// Size is the default ID length. Zero means DefaultSize.
	Size int `json:"size,omitempty" yaml:"size,omitempty"`
}

// Default returns settings with no overrides: the built-in safe alphabet and
// DefaultSize-character IDs.
func Default() Settings {
	return Settings{}
}

// SizeOrDefault resolves the effective ID length for the given per-call size.
// Precedence: explicit size > settings size > DefaultSize.
func (s Settings) SizeOrDefault(size int) int {
	if size > 0 {
		return size
	}
	if s.Size > 0 {
		return s.Size
	}
	return DefaultSize
}

// LoadEnv overlays environment variables onto the settings. Only variables
// that are present and well-formed are applied.
func (s *Settings) LoadEnv() {
	if v := os.Getenv(EnvAlphabet); v != "" {
		s.Alphabet = v
	}
	if v := os.Getenv(EnvAlphabetPredefined); v != "" {
		s.AlphabetPredefined = v
	}
	if v := os.Getenv(EnvSize); v != "" {
		if size, err := strconv.Atoi(v); err == nil && size > 0 {
			s.Size = size
		}
	}
}

// FromEnv returns default settings overlaid with environment variables.
func FromEnv() Settings {
	s := Default()
	s.LoadEnv()
	return s
}
