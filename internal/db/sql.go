package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"seqbench/internal/telemetry"
)

type openFunc func(ctx context.Context, driver, dsn string) (*sqlx.DB, error)

// SQLSource reads brands from one column of a table. Every fetch opens its
// own connection and releases it before returning.
type SQLSource struct {
	driver string
	dsn    string
	table  string
	column string
	open   openFunc
}

// NewSQLSource creates a source for the given database/sql driver name.
func NewSQLSource(driver, dsn, table, column string) (*SQLSource, error) {
	if err := ValidateIdentifier("table", table); err != nil {
		return nil, err
	}
	if err := ValidateIdentifier("column", column); err != nil {
		return nil, err
	}
	return &SQLSource{
		driver: driver,
		dsn:    dsn,
		table:  table,
		column: column,
		open:   sqlx.ConnectContext,
	}, nil
}

// Query is the single read statement this source runs.
func (s *SQLSource) Query() string {
	return fmt.Sprintf("SELECT %s FROM %s", s.column, s.table)
}

// Table is the table brands are read from.
func (s *SQLSource) Table() string {
	return s.table
}

// Column is the column brands are read from.
func (s *SQLSource) Column() string {
	return s.column
}

func (s *SQLSource) String() string {
	return s.driver
}

// FetchBrands returns every non-NULL value of the configured column in the
// order the database yields them.
func (s *SQLSource) FetchBrands(ctx context.Context) ([]string, error) {
	conn, err := s.open(ctx, s.driver, s.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", s.driver, err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			telemetry.LogDebug("closing brand source connection failed", "driver", s.driver, "error", cerr)
		}
	}()

	var values []sql.NullString
	if err := conn.SelectContext(ctx, &values, s.Query()); err != nil {
		return nil, fmt.Errorf("failed to query brands: %w", err)
	}

	brands := make([]string, 0, len(values))
	for _, v := range values {
		if v.Valid {
			brands = append(brands, v.String)
		}
	}
	telemetry.LogDebug("fetched brands", "driver", s.driver, "table", s.table, "count", len(brands))
	return brands, nil
}
