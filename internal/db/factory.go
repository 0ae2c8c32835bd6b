package db

import (
	"fmt"
	"strings"
)

// NewSource creates a Source based on the provided configuration.
func NewSource(config SourceConfig) (Source, error) {
	if config.Table == "" {
		config.Table = DefaultTable
	}
	if config.Column == "" {
		config.Column = DefaultColumn
	}

	driver, err := DriverName(config.Type)
	if err != nil {
		return nil, err
	}

	switch driver {
	case "sqlite":
		if config.DSN == "" {
			config.DSN = DefaultSQLitePath
		}
	default:
		if config.DSN == "" {
			return nil, fmt.Errorf("%s connection string is required", driver)
		}
	}
	return NewSQLSource(driver, config.DSN, config.Table, config.Column)
}

// DriverName maps a configured source type onto a registered driver.
func DriverName(sourceType string) (string, error) {
	switch strings.ToLower(sourceType) {
	case "", "sqlite", "sqlite3":
		return "sqlite", nil
	case "postgres", "postgresql":
		return "postgres", nil
	case "mysql", "mariadb":
		return "mysql", nil
	default:
		return "", fmt.Errorf("unsupported source type: %s", sourceType)
	}
}
