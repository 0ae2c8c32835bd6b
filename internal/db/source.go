package db

import (
	"context"
	"fmt"
	"regexp"
)

// Source supplies the ordered list of brand names to search.
type Source interface {
	FetchBrands(ctx context.Context) ([]string, error)
}

// SourceConfig holds configuration for the brand source.
type SourceConfig struct {
	Type   string // "sqlite", "postgres" or "mysql"
	DSN    string // File path for SQLite, DSN otherwise
	Table  string
	Column string
}

const (
	DefaultSQLitePath = "seqbench.db"
	DefaultTable      = "ramen"
	DefaultColumn     = "Brand"
)

var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateIdentifier rejects table or column names that are not plain SQL
// identifiers. They are interpolated into queries, so nothing else is allowed.
func ValidateIdentifier(kind, name string) error {
	if !identRegex.MatchString(name) {
		return fmt.Errorf("invalid %s name %q", kind, name)
	}
	return nil
}

// StaticSource serves a fixed list.
type StaticSource struct {
	Brands []string
}

func NewStaticSource(brands ...string) *StaticSource {
	return &StaticSource{Brands: brands}
}

func (s *StaticSource) FetchBrands(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]string, len(s.Brands))
	copy(out, s.Brands)
	return out, nil
}

func (s *StaticSource) String() string {
	return "static"
}
