// Package upload builds NanoID-based storage paths for uploaded files.
//
// A PathBuilder turns an original filename into either <dir>/<id><ext> or,
// when the original name is preserved, <dir>/<id>/<original-name>. When a
// storage backend is attached, generated paths are collision-checked against
// it with a bounded retry budget.
package upload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/getnanoid/nanoid/pkg/config"
	"github.com/getnanoid/nanoid/pkg/generator"
	"github.com/getnanoid/nanoid/pkg/logging"
	"github.com/getnanoid/nanoid/pkg/storage"
)

// ErrAttemptsExhausted is returned when no unused path could be generated
// within the attempt budget.
var ErrAttemptsExhausted = errors.New("could not generate unique upload path")

// maxAttempts bounds the collision-retry loop when a storage backend is
// attached.
const maxAttempts = 10

// Options configure upload path construction. The alphabet and size options
// resolve exactly like field options: explicit value > settings > defaults.
type Options struct {
	// PreserveOriginalFilename stores the file under <dir>/<id>/<original-name>
	// instead of renaming it to the ID. Spaces in the original name are
	// replaced with underscores.
	PreserveOriginalFilename bool

	// KeepQueryStrings retains any "?..." suffix on the original filename.
	// By default such suffixes are stripped, since filenames frequently come
	// from URLs.
	KeepQueryStrings bool

	// Alphabet is a literal character set for the generated ID.
	Alphabet string

	// Predefined names one of the predefined alphabets.
	Predefined string

	// Size is the generated ID length. Zero means the settings default.
	Size int
}

// PathBuilder generates NanoID upload paths below a fixed directory.
type PathBuilder struct {
	dir    string
	opts   Options
	gen    *generator.Generator
	store  storage.Storage
	logger *slog.Logger
}

// UploadTo resolves the alphabet and size once and returns a builder for
// paths below dir. It fails on invalid alphabet configuration.
func UploadTo(dir string, settings config.Settings, opts Options) (*PathBuilder, error) {
	gen, err := generator.New(settings, generator.Options{
		Alphabet:   opts.Alphabet,
		Predefined: opts.Predefined,
		Size:       opts.Size,
	})
	if err != nil {
		return nil, err
	}
	return &PathBuilder{
		dir:    dir,
		opts:   opts,
		gen:    gen,
		logger: logging.Nop(),
	}, nil
}

// WithStorage attaches a backend; generated paths are then checked against it
// and regenerated on collision. Returns the builder for chaining.
func (b *PathBuilder) WithStorage(s storage.Storage) *PathBuilder {
	b.store = s
	return b
}

// WithLogger sets the logger used for collision debug output.
func (b *PathBuilder) WithLogger(logger *slog.Logger) *PathBuilder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Path returns a new upload path for the given original filename.
//
// Without a storage backend a single path is generated. With one, paths are
// generated until an unused one is found or the attempt budget is spent, in
// which case the error wraps ErrAttemptsExhausted. Storage failures propagate
// unchanged.
func (b *PathBuilder) Path(ctx context.Context, filename string) (string, error) {
	if !b.opts.KeepQueryStrings {
		if i := strings.Index(filename, "?"); i >= 0 {
			filename = filename[:i]
		}
	}

	attempts := maxAttempts
	if b.store == nil {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		id, err := b.gen.Generate()
		if err != nil {
			return "", err
		}

		var name string
		if b.opts.PreserveOriginalFilename {
			name = path.Join(b.dir, id, strings.ReplaceAll(filename, " ", "_"))
		} else {
			name = path.Join(b.dir, id+strings.ToLower(path.Ext(filename)))
		}

		if b.store == nil {
			return name, nil
		}
		exists, err := b.store.Exists(ctx, name)
		if err != nil {
			return "", err
		}
		if !exists {
			return name, nil
		}
		b.logger.Debug("upload path taken, regenerating",
			"path", name, "attempt", i+1, "max_attempts", attempts)
	}

	return "", fmt.Errorf("%w for %q after %d attempts: consider a larger size or a different alphabet",
		ErrAttemptsExhausted, filename, attempts)
}
