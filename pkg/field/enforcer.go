package field

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/getnanoid/nanoid/pkg/config"
	"github.com/getnanoid/nanoid/pkg/generator"
	"github.com/getnanoid/nanoid/pkg/logging"
)

// Errors surfaced by the enforcer.
var (
	// ErrAttemptsExhausted means every generated candidate collided within
	// the attempt budget. Callers should consider a larger size or a
	// different alphabet, never fall back to a duplicate.
	ErrAttemptsExhausted = errors.New("could not generate unique identifier")

	// ErrNotNanoIDField is returned when regenerating a column the model does
	// not declare as a NanoID field.
	ErrNotNanoIDField = errors.New("not a nanoid field")

	// ErrPrimaryKey is returned when regenerating the primary key field.
	ErrPrimaryKey = errors.New("cannot regenerate the primary key field")
)

// Record is the view of a record instance the enforcer needs. Implementations
// typically map columns onto struct fields.
type Record interface {
	// NanoID returns the current value of a NanoID column, empty if unset.
	NanoID(column string) string

	// SetNanoID assigns a NanoID column.
	SetNanoID(column, value string)

	// Saved reports whether the record already exists in the database.
	// Existence checks for pre-set values only run on unsaved records.
	Saved() bool

	// Key returns the primary key value used to address the record in
	// updates, as stored in the Model's PKColumn.
	Key() string
}

// Store answers existence queries and persists regenerated values.
type Store interface {
	// Exists reports whether any row of table has the given value in column.
	Exists(ctx context.Context, table, column, value string) (bool, error)

	// Update sets column to value on the row whose pkColumn equals pk.
	Update(ctx context.Context, table, pkColumn, pk, column, value string) error
}

// Enforcer assigns NanoIDs to record fields, checking unique fields against
// the store before use.
type Enforcer struct {
	store    Store
	settings config.Settings
	logger   *slog.Logger
}

// NewEnforcer creates an enforcer over the given store and settings.
func NewEnforcer(store Store, settings config.Settings) *Enforcer {
	return &Enforcer{
		store:    store,
		settings: settings,
		logger:   logging.Nop(),
	}
}

// WithLogger sets the logger used for candidate debug output. Returns the
// enforcer for chaining.
func (e *Enforcer) WithLogger(logger *slog.Logger) *Enforcer {
	if logger != nil {
		e.logger = logger
	}
	return e
}

// EnsureUnique prepares a record for insert. Unique NanoID fields that are
// unset, or pre-set but already taken (checked only for unsaved records),
// receive a fresh collision-checked value within the model's attempt budget.
// Non-unique unset fields are filled without an existence check.
func (e *Enforcer) EnsureUnique(ctx context.Context, m *Model, rec Record) error {
	for _, def := range m.Fields {
		value := rec.NanoID(def.Column)

		if !def.Unique && !def.PrimaryKey {
			if value == "" {
				gen, err := e.generatorFor(def)
				if err != nil {
					return err
				}
				id, err := gen.Generate()
				if err != nil {
					return err
				}
				rec.SetNanoID(def.Column, id)
			}
			continue
		}

		needsValue := value == ""
		if !needsValue && !rec.Saved() {
			taken, err := e.store.Exists(ctx, m.Table, def.Column, value)
			if err != nil {
				return err
			}
			needsValue = taken
		}
		if !needsValue {
			continue
		}

		if err := e.assign(ctx, m, def, rec); err != nil {
			return err
		}
	}
	return nil
}

// Regenerate re-rolls the NanoID of an existing record's column and persists
// it through the store. Unique fields are collision-checked, so the result
// differs from the prior value; non-unique fields get a single fresh ID.
// The primary key cannot be regenerated. Rows referencing the old value are
// not updated.
func (e *Enforcer) Regenerate(ctx context.Context, m *Model, rec Record, column string) (string, error) {
	def, ok := m.Field(column)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotNanoIDField, column)
	}
	if def.PrimaryKey || column == m.PKColumn {
		return "", fmt.Errorf("%w: %q", ErrPrimaryKey, column)
	}

	old := rec.NanoID(column)

	var value string
	if def.Unique {
		// The old value is still present in the table, so the existence check
		// rejects it along with any other collision.
		if err := e.assign(ctx, m, def, rec); err != nil {
			return "", err
		}
		value = rec.NanoID(column)
	} else {
		gen, err := e.generatorFor(def)
		if err != nil {
			return "", err
		}
		value, err = gen.Generate()
		if err != nil {
			return "", err
		}
		rec.SetNanoID(column, value)
	}

	if err := e.store.Update(ctx, m.Table, m.PKColumn, rec.Key(), column, value); err != nil {
		// Roll back the in-memory value so the record still matches the row.
		rec.SetNanoID(column, old)
		return "", err
	}

	e.logger.Debug("regenerated nanoid",
		"table", m.Table, "column", column, "old", old, "new", value)
	return value, nil
}

// assign generates candidates for a unique field until one is unused or the
// attempt budget is spent.
func (e *Enforcer) assign(ctx context.Context, m *Model, def Definition, rec Record) error {
	gen, err := e.generatorFor(def)
	if err != nil {
		return err
	}

	attempts := m.attempts()
	for i := 0; i < attempts; i++ {
		candidate, err := gen.Generate()
		if err != nil {
			return err
		}
		taken, err := e.store.Exists(ctx, m.Table, def.Column, candidate)
		if err != nil {
			return err
		}
		if !taken {
			rec.SetNanoID(def.Column, candidate)
			e.logger.Debug("assigned unique nanoid",
				"table", m.Table, "column", def.Column, "value", candidate)
			return nil
		}
		e.logger.Debug("nanoid already taken, regenerating",
			"table", m.Table, "column", def.Column, "value", candidate,
			"attempt", i+1, "max_attempts", attempts)
	}

	return fmt.Errorf("%w for column %q (size %d): consider increasing the size or using a different alphabet",
		ErrAttemptsExhausted, def.Column, gen.Size())
}

func (e *Enforcer) generatorFor(def Definition) (*generator.Generator, error) {
	return generator.New(e.settings, generator.Options{
		Alphabet:   def.Alphabet,
		Predefined: def.Predefined,
		Size:       def.Size,
	})
}
