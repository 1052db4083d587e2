// Package generator produces NanoID strings: fixed-length identifiers sampled
// uniformly at random from a configured alphabet using a cryptographically
// secure source. Generation is pure; collision handling lives in pkg/field
// and pkg/upload.
package generator

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/getnanoid/nanoid/pkg/alphabet"
	"github.com/getnanoid/nanoid/pkg/config"
)

// Options are the per-field generation options. Zero values fall back to the
// settings passed at construction, then to the built-in defaults.
type Options struct {
	// Alphabet is a literal character set. Takes precedence over Predefined.
	Alphabet string

	// Predefined names one of the predefined alphabets in pkg/alphabet.
	Predefined string

	// Size is the ID length. Zero means the settings size, then
	// config.DefaultSize.
	Size int
}

// Generator produces NanoIDs from a resolved alphabet and size.
type Generator struct {
	chars string
	size  int
}

// New resolves the options against the settings and returns a generator.
// It fails if the configuration names an unknown predefined alphabet or an
// invalid custom one, so misconfiguration surfaces at field setup rather than
// on the first save.
func New(settings config.Settings, opts Options) (*Generator, error) {
	chars, err := alphabet.Resolve(opts.Alphabet, opts.Predefined, settings)
	if err != nil {
		return nil, err
	}
	return &Generator{
		chars: chars,
		size:  settings.SizeOrDefault(opts.Size),
	}, nil
}

// Must is like New but panics on configuration errors. Use it for alphabets
// known to be valid at compile time.
func Must(settings config.Settings, opts Options) *Generator {
	g, err := New(settings, opts)
	if err != nil {
		panic(fmt.Sprintf("generator: %v", err))
	}
	return g
}

// Generate returns a new NanoID of exactly Size characters drawn from the
// resolved alphabet.
func (g *Generator) Generate() (string, error) {
	id, err := gonanoid.Generate(g.chars, g.size)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return id, nil
}

// Alphabet returns the resolved character set.
func (g *Generator) Alphabet() string { return g.chars }

// Size returns the resolved ID length.
func (g *Generator) Size() int { return g.size }
