package alphabet

import (
	"errors"
	"strings"
	"testing"

	"github.com/getnanoid/nanoid/pkg/config"
)

func TestLookup_AllNamesResolvable(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			chars, err := Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", name, err)
			}
			if chars == "" {
				t.Fatalf("Lookup(%q) returned empty character set", name)
			}
			if err := Valid(chars); err != nil {
				t.Errorf("Lookup(%q) = %q, not a valid alphabet: %v", name, chars, err)
			}
		})
	}
}

func TestLookup_NoDuplicateCharacters(t *testing.T) {
	for _, name := range Names() {
		chars, _ := Lookup(name)
		seen := make(map[rune]bool)
		for _, r := range chars {
			if seen[r] {
				t.Errorf("alphabet %q contains duplicate character %q", name, r)
			}
			seen[r] = true
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("base58")
	if !errors.Is(err, ErrUnknownAlphabet) {
		t.Fatalf("Lookup(unknown) error = %v, want ErrUnknownAlphabet", err)
	}
}

func TestLookup_KnownSets(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"safe", "ACDEFGHKLMNPRTUVWXYacdefhjkmnprtuvwxy347"},
		{"numbers", "0123456789"},
		{"safe_letters_uppercase", "ACDEFGHKLMNPRTUVWXY"},
		{"safe_letters_lowercase", "acdefhjkmnprtuvwxy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestLookup_UnsafeCoversFullSet(t *testing.T) {
	chars, err := Lookup("unsafe")
	if err != nil {
		t.Fatal(err)
	}
	if len(chars) != 62 {
		t.Fatalf("unsafe alphabet has %d characters, want 62", len(chars))
	}
	for _, r := range "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" {
		if !strings.ContainsRune(chars, r) {
			t.Errorf("unsafe alphabet missing %q", r)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name    string
		chars   string
		wantErr bool
	}{
		{"ok", "abc123", false},
		{"single char", "a", false},
		{"empty", "", true},
		{"duplicate", "abca", true},
		{"unicode duplicate", "äbä", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Valid(tt.chars)
			if (err != nil) != tt.wantErr {
				t.Errorf("Valid(%q) error = %v, wantErr %v", tt.chars, err, tt.wantErr)
			}
		})
	}
}

func TestResolve_Precedence(t *testing.T) {
	safe := registry["safe"]

	tests := []struct {
		name       string
		custom     string
		predefined string
		settings   config.Settings
		want       string
		wantErr    error
	}{
		{
			name:   "custom wins over everything",
			custom: "abc", predefined: "numbers",
			settings: config.Settings{Alphabet: "xyz", AlphabetPredefined: "safe"},
			want:     "abc",
		},
		{
			name:       "predefined wins over settings",
			predefined: "numbers",
			settings:   config.Settings{Alphabet: "xyz"},
			want:       "0123456789",
		},
		{
			name:     "settings custom wins over settings predefined",
			settings: config.Settings{Alphabet: "xyz", AlphabetPredefined: "numbers"},
			want:     "xyz",
		},
		{
			name:     "settings predefined",
			settings: config.Settings{AlphabetPredefined: "numbers"},
			want:     "0123456789",
		},
		{
			name: "default safe",
			want: safe,
		},
		{
			name:       "unknown predefined",
			predefined: "nope",
			wantErr:    ErrUnknownAlphabet,
		},
		{
			name:     "unknown settings predefined",
			settings: config.Settings{AlphabetPredefined: "nope"},
			wantErr:  ErrUnknownAlphabet,
		},
		{
			name:    "invalid custom",
			custom:  "aa",
			wantErr: ErrInvalidAlphabet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.custom, tt.predefined, tt.settings)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}
