package config

import (
	"seqbench/internal/db"

	"github.com/spf13/viper"
)

const (
	XAxisIndex    = "index"
	XAxisPosition = "position"
)

// Config is the typed view of the loaded settings.
type Config struct {
	Source         db.SourceConfig
	Iterations     int
	ChartXAxis     string
	ChartHeight    int
	MetricsEnabled bool
	MetricsPort    int
	Verbose        bool
	LogFile        string
}

// FromViper materializes a Config from the current viper state.
func FromViper() Config {
	return Config{
		Source: db.SourceConfig{
			Type:   viper.GetString("source.type"),
			DSN:    viper.GetString("source.dsn"),
			Table:  viper.GetString("source.table"),
			Column: viper.GetString("source.column"),
		},
		Iterations:     viper.GetInt("bench.iterations"),
		ChartXAxis:     viper.GetString("chart.x_axis"),
		ChartHeight:    viper.GetInt("chart.height"),
		MetricsEnabled: viper.GetBool("metrics.enabled"),
		MetricsPort:    viper.GetInt("metrics_port"),
		Verbose:        viper.GetBool("verbose"),
		LogFile:        viper.GetString("log_file"),
	}
}
