package field

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLStore implements Store on top of database/sql. Table and column names
// are interpolated into the statements; they come from Model definitions in
// code, never from request input.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore wraps a database handle.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Exists reports whether any row of table has the given value in column.
func (s *SQLStore) Exists(ctx context.Context, table, column, value string) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = ?)", table, column)

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, value).Scan(&exists); err != nil {
		return false, fmt.Errorf("existence check on %s.%s: %w", table, column, err)
	}
	return exists, nil
}

// Update sets column to value on the row addressed by pkColumn = pk.
func (s *SQLStore) Update(ctx context.Context, table, pkColumn, pk, column, value string) error {
	query := fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?", table, column, pkColumn)

	res, err := s.db.ExecContext(ctx, query, value, pk)
	if err != nil {
		return fmt.Errorf("update %s.%s: %w", table, column, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("update %s.%s: no row with %s = %q", table, column, pkColumn, pk)
	}
	return nil
}
