package config

import (
	"fmt"
	"strings"

	"seqbench/internal/db"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error listing
// every problem found. It should be called after Load.
func ValidateConfig() error {
	var errors []string

	if viper.IsSet("bench.iterations") {
		if n := viper.GetInt("bench.iterations"); n < 1 {
			errors = append(errors, fmt.Sprintf("bench.iterations must be at least 1, got: %d", n))
		}
	}

	if viper.IsSet("source.type") {
		if _, err := db.DriverName(viper.GetString("source.type")); err != nil {
			errors = append(errors, err.Error())
		}
	}

	if viper.IsSet("source.table") {
		if err := db.ValidateIdentifier("table", viper.GetString("source.table")); err != nil {
			errors = append(errors, fmt.Sprintf("source.table: %v", err))
		}
	}

	if viper.IsSet("source.column") {
		if err := db.ValidateIdentifier("column", viper.GetString("source.column")); err != nil {
			errors = append(errors, fmt.Sprintf("source.column: %v", err))
		}
	}

	if viper.IsSet("chart.x_axis") {
		switch axis := viper.GetString("chart.x_axis"); axis {
		case XAxisIndex, XAxisPosition:
		default:
			errors = append(errors, fmt.Sprintf("chart.x_axis must be %q or %q, got: %q", XAxisIndex, XAxisPosition, axis))
		}
	}

	if viper.IsSet("chart.height") {
		if h := viper.GetInt("chart.height"); h < 4 || h > 60 {
			errors = append(errors, fmt.Sprintf("chart.height must be between 4 and 60, got: %d", h))
		}
	}

	// Validate metrics_port (if set)
	if viper.IsSet("metrics_port") {
		port := viper.GetInt("metrics_port")
		if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("metrics_port must be between 1 and 65535, got: %d", port))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}
	return nil
}
