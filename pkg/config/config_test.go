package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSizeOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		size     int
		want     int
	}{
		{"explicit size wins", Settings{Size: 10}, 8, 8},
		{"settings size", Settings{Size: 10}, 0, 10},
		{"built-in default", Settings{}, 0, DefaultSize},
		{"negative treated as unset", Settings{}, -1, DefaultSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.SizeOrDefault(tt.size); got != tt.want {
				t.Errorf("SizeOrDefault(%d) = %d, want %d", tt.size, got, tt.want)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvAlphabet, "abc123")
	t.Setenv(EnvAlphabetPredefined, "numbers")
	t.Setenv(EnvSize, "14")

	s := FromEnv()
	if s.Alphabet != "abc123" {
		t.Errorf("Alphabet = %q, want abc123", s.Alphabet)
	}
	if s.AlphabetPredefined != "numbers" {
		t.Errorf("AlphabetPredefined = %q, want numbers", s.AlphabetPredefined)
	}
	if s.Size != 14 {
		t.Errorf("Size = %d, want 14", s.Size)
	}
}

func TestLoadEnv_IgnoresMalformedSize(t *testing.T) {
	t.Setenv(EnvSize, "not-a-number")
	s := FromEnv()
	if s.Size != 0 {
		t.Errorf("Size = %d, want 0 for malformed env value", s.Size)
	}

	t.Setenv(EnvSize, "-3")
	s = FromEnv()
	if s.Size != 0 {
		t.Errorf("Size = %d, want 0 for negative env value", s.Size)
	}
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nanoid.yaml")
	data := "alphabetPredefined: numbers\nsize: 9\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if s.AlphabetPredefined != "numbers" || s.Size != 9 {
		t.Errorf("LoadFromFile() = %+v", s)
	}
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nanoid.json")
	data := `{"alphabet": "ACDEF", "size": 6}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if s.Alphabet != "ACDEF" || s.Size != 6 {
		t.Errorf("LoadFromFile() = %+v", s)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("missing file error = %v, want ErrFileNotFound", err)
	}

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadFromFile(empty)
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("empty file error = %v, want ErrEmptyFile", err)
	}

	badJSON := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badJSON, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadFromFile(badJSON)
	if !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("bad JSON error = %v, want ErrInvalidJSON", err)
	}

	badYAML := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badYAML, []byte(":\n\t-"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadFromFile(badYAML)
	if !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("bad YAML error = %v, want ErrInvalidYAML", err)
	}
}
