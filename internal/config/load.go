package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// SEQBENCH_SOURCE_DSN for source.dsn.
const EnvPrefix = "SEQBENCH"

// Load initializes the configuration from file and environment variables.
// A missing config.yaml in the working directory is not an error; a missing
// file passed explicitly is.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			slog.Debug("no config file found, using defaults and environment")
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
	}
	slog.Debug("using config file", "path", viper.ConfigFileUsed())
	return nil
}

// SetDefaults registers the default value of every known key.
func SetDefaults() {
	viper.SetDefault("source.type", "sqlite")
	viper.SetDefault("source.dsn", "seqbench.db")
	viper.SetDefault("source.table", "ramen")
	viper.SetDefault("source.column", "Brand")
	viper.SetDefault("bench.iterations", 1000)
	viper.SetDefault("chart.x_axis", XAxisIndex)
	viper.SetDefault("chart.height", 12)
	viper.SetDefault("metrics.enabled", false)
	viper.SetDefault("metrics_port", 2112)
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
}
