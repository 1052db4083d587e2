// Package alphabet defines the character sets used for NanoID generation and
// resolves which set applies for a given configuration.
//
// Characters are split into "safe" and "unsafe" groups. Safe characters are
// those that minimize visual confusion: the unsafe groups hold lookalikes such
// as '0'/'O', '1'/'I'/'l' and letters that read ambiguously in common fonts.
// Predefined alphabets combine these groups for typical use cases; the default
// is the full safe set.
package alphabet

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getnanoid/nanoid/pkg/config"
)

// Character groups carried over from the reference character sets.
const (
	uppercaseNumbersSafe   = "34679"
	uppercaseNumbersUnsafe = "01258"
	uppercaseLettersSafe   = "ACDEFGHKLMNPRTUVWXY"
	uppercaseLettersUnsafe = "BIJOQSZ"

	lowercaseNumbersSafe   = "347"
	lowercaseNumbersUnsafe = "0125689"
	lowercaseLettersSafe   = "acdefhjkmnprtuvwxy"
	lowercaseLettersUnsafe = "bgiloqsz"

	numbers = "0123456789"
)

// Default is the predefined alphabet used when nothing else is configured.
const Default = "safe"

// Errors returned during alphabet resolution.
var (
	ErrUnknownAlphabet = errors.New("unknown predefined alphabet")
	ErrInvalidAlphabet = errors.New("invalid alphabet")
)

// registry maps predefined alphabet names to their character sets. Combined
// sets are deduplicated so that every entry is duplicate-free.
var registry = map[string]string{
	"safe":   uppercaseLettersSafe + lowercaseLettersSafe + lowercaseNumbersSafe,
	"unsafe": dedupe(uppercaseNumbersSafe + lowercaseNumbersSafe + uppercaseNumbersUnsafe + lowercaseNumbersUnsafe + uppercaseLettersSafe + uppercaseLettersUnsafe + lowercaseLettersSafe + lowercaseLettersUnsafe),

	"numbers": numbers,

	"safe_letters":           uppercaseLettersSafe + lowercaseLettersSafe,
	"safe_letters_uppercase": uppercaseLettersSafe,
	"safe_letters_lowercase": lowercaseLettersSafe,

	"safe_letters_uppercase_and_numbers": uppercaseLettersSafe + uppercaseNumbersSafe,
	"safe_letters_lowercase_and_numbers": lowercaseLettersSafe + lowercaseNumbersSafe,
}

// dedupe removes repeated characters, keeping first occurrences in order.
func dedupe(s string) string {
	var b strings.Builder
	seen := make(map[rune]bool, len(s))
	for _, r := range s {
		if seen[r] {
			continue
		}
		seen[r] = true
		b.WriteRune(r)
	}
	return b.String()
}

// Lookup returns the character set for a predefined alphabet name.
func Lookup(name string) (string, error) {
	chars, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("%w: %q (valid names: %s)", ErrUnknownAlphabet, name, strings.Join(Names(), ", "))
	}
	return chars, nil
}

// Names returns the predefined alphabet names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Valid reports whether chars is usable as a generation alphabet: non-empty
// and free of duplicate characters.
func Valid(chars string) error {
	if chars == "" {
		return fmt.Errorf("%w: empty character set", ErrInvalidAlphabet)
	}
	seen := make(map[rune]bool, len(chars))
	for _, r := range chars {
		if seen[r] {
			return fmt.Errorf("%w: duplicate character %q", ErrInvalidAlphabet, r)
		}
		seen[r] = true
	}
	return nil
}

// Resolve determines the character set for the given configuration.
// Precedence: explicit custom alphabet > named predefined alphabet > settings
// override (custom, then predefined) > the built-in safe default.
func Resolve(custom, predefined string, settings config.Settings) (string, error) {
	if custom != "" {
		if err := Valid(custom); err != nil {
			return "", err
		}
		return custom, nil
	}
	if predefined != "" {
		return Lookup(predefined)
	}
	if settings.Alphabet != "" {
		if err := Valid(settings.Alphabet); err != nil {
			return "", err
		}
		return settings.Alphabet, nil
	}
	if settings.AlphabetPredefined != "" {
		return Lookup(settings.AlphabetPredefined)
	}
	return registry[Default], nil
}
