package db

import (
	"context"
	"fmt"
)

// DefaultBrands is a small sample of instant noodle brands for the demo
// database.
var DefaultBrands = []string{
	"Nissin",
	"Maruchan",
	"Indomie",
	"Nongshim",
	"Samyang Foods",
	"Paldo",
	"Mama",
	"Myojo",
	"Sapporo Ichiban",
	"Acecook",
	"Mi Sedaap",
	"Ottogi",
	"Prima Taste",
	"Lucky Me!",
	"Vifon",
}

// Seed creates the source table if needed and appends brands to it inside a
// single transaction. It returns the number of rows inserted.
func Seed(ctx context.Context, s *SQLSource, brands []string) (int, error) {
	conn, err := s.open(ctx, s.driver, s.dsn)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to %s: %w", s.driver, err)
	}
	defer conn.Close()

	create := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s TEXT)", s.table, s.column)
	if _, err := conn.ExecContext(ctx, create); err != nil {
		return 0, fmt.Errorf("failed to create table %s: %w", s.table, err)
	}

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := tx.Rebind(fmt.Sprintf("INSERT INTO %s (%s) VALUES (?)", s.table, s.column))
	for _, b := range brands {
		if _, err := tx.ExecContext(ctx, insert, b); err != nil {
			return 0, fmt.Errorf("failed to insert %q: %w", b, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}
	return len(brands), nil
}
