// Package field provides NanoID columns for SQL-backed records: typed field
// definitions, a scannable NanoID value type, and an enforcer that assigns
// collision-checked IDs on insert with a bounded retry budget.
//
// The enforcer only makes collisions improbable; between the existence check
// and the insert another request can claim the same value. A UNIQUE
// constraint on the column (see Definition.DDL) remains the authoritative
// backstop.
package field

import (
	"database/sql/driver"
	"fmt"

	"github.com/getnanoid/nanoid/pkg/config"
)

// DefaultMaxAttempts is the uniqueness-retry budget used when a Model does
// not set its own.
const DefaultMaxAttempts = 10

// Definition describes a single NanoID column of a record type.
type Definition struct {
	// Column is the database column name.
	Column string

	// Alphabet is a literal character set for this field. Takes precedence
	// over Predefined and the global settings.
	Alphabet string

	// Predefined names one of the predefined alphabets.
	Predefined string

	// Size is the ID length for this field. Zero means the settings default.
	Size int

	// Unique requests collision checking on insert and a UNIQUE column.
	Unique bool

	// PrimaryKey marks the field as the record's primary key. Primary keys
	// are implicitly unique and cannot be regenerated.
	PrimaryKey bool
}

// DDL returns the column fragment for a CREATE TABLE statement, using the
// resolved size as the fixed column length.
func (d Definition) DDL(settings config.Settings) string {
	ddl := fmt.Sprintf("%s VARCHAR(%d) NOT NULL", d.Column, settings.SizeOrDefault(d.Size))
	switch {
	case d.PrimaryKey:
		ddl += " PRIMARY KEY"
	case d.Unique:
		ddl += " UNIQUE"
	}
	return ddl
}

// Model describes the NanoID fields of one record type.
type Model struct {
	// Table is the database table records are stored in.
	Table string

	// PKColumn is the primary key column used to address existing records.
	PKColumn string

	// Fields are the NanoID columns of the table.
	Fields []Definition

	// MaxAttempts caps the uniqueness-retry loop per field. Zero means
	// DefaultMaxAttempts.
	MaxAttempts int
}

// Field returns the definition for a column, if it is a NanoID field of the
// model.
func (m *Model) Field(column string) (Definition, bool) {
	for _, d := range m.Fields {
		if d.Column == column {
			return d, true
		}
	}
	return Definition{}, false
}

func (m *Model) attempts() int {
	if m.MaxAttempts > 0 {
		return m.MaxAttempts
	}
	return DefaultMaxAttempts
}

// NanoID is a scannable string column value. The empty value maps to NULL so
// unset fields trigger generation on insert.
type NanoID string

// String returns the ID as a plain string.
func (n NanoID) String() string { return string(n) }

// Value implements driver.Valuer.
func (n NanoID) Value() (driver.Value, error) {
	if n == "" {
		return nil, nil
	}
	return string(n), nil
}

// Scan implements sql.Scanner.
func (n *NanoID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*n = ""
	case string:
		*n = NanoID(v)
	case []byte:
		*n = NanoID(v)
	default:
		return fmt.Errorf("cannot scan %T into NanoID", src)
	}
	return nil
}
