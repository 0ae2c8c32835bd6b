package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"seqbench/internal/config"
	apperrors "seqbench/internal/errors"
	"seqbench/internal/telemetry"
	"seqbench/internal/ui"
)

var exit = os.Exit
var cfgFile string
var logCloser io.Closer

// flagKeys maps persistent flag names onto their configuration keys.
var flagKeys = map[string]string{
	"verbose":      "verbose",
	"iterations":   "bench.iterations",
	"source-type":  "source.type",
	"dsn":          "source.dsn",
	"table":        "source.table",
	"column":       "source.column",
	"x-axis":       "chart.x_axis",
	"chart-height": "chart.height",
	"metrics":      "metrics.enabled",
	"metrics-port": "metrics_port",
	"log-file":     "log_file",
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "seqbench",
	Short: "Recursive vs iterative linear search benchmark",
	Long: `seqbench fetches brand names from a database table, looks up a brand with
both a recursive and an iterative linear search, and times each strategy by
averaging many repeated calls. Every search is kept in a session log and
charted so the two strategies can be compared side by side.

Run without a subcommand to open the interactive search screen.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", apperrors.Title(err), err)
		exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRun = setupOutput
	rootCmd.RunE = runInteractive
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	flags.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	flags.IntP("iterations", "n", 1000, "Calls per strategy averaged into one timing")
	flags.String("source-type", "sqlite", "Brand source: sqlite, postgres or mysql")
	flags.String("dsn", "", "Database connection string (sqlite: file path)")
	flags.String("table", "", "Table holding the brand names")
	flags.String("column", "", "Column holding the brand names")
	flags.String("x-axis", config.XAxisIndex, "Chart x axis: index or position")
	flags.Int("chart-height", 12, "Chart plot height in rows")
	flags.Bool("metrics", false, "Serve Prometheus metrics while the interactive screen runs")
	flags.Int("metrics-port", 2112, "Port for the metrics server")
	flags.String("log-file", "", "Write JSON logs to this file")
	flags.Bool("no-color", false, "Disable colored output")
	bindFlags(flags)

	rootCmd.AddCommand(newSearchCmd(), newSeedCmd(), newVersionCmd())
}

// bindFlags binds every flag listed in flagKeys that fs defines.
func bindFlags(fs *pflag.FlagSet) {
	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			_ = viper.BindPFlag(key, f)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}

	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

// setupOutput configures logging and colors once the command is known. The
// interactive screen owns the terminal, so its logs only go to the log file.
func setupOutput(cmd *cobra.Command, args []string) {
	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	closeLog()
	interactive := !cmd.HasParent()
	logCloser = telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"), interactive)
}

// closeLog releases the log file opened by setupOutput, if any.
func closeLog() {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
	}
	logCloser = nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper()
	sess, registry, err := newSession(cfg, nil)
	if err != nil {
		return err
	}

	if cfg.MetricsEnabled {
		go func() {
			if err := telemetry.StartMetricsServer(cmd.Context(), cfg.MetricsPort, registry); err != nil {
				telemetry.LogError("failed to start metrics server", err, "port", cfg.MetricsPort)
			}
		}()
	}
	return ui.RunSearch(cmd.Context(), sess, cfg.ChartXAxis, cfg.ChartHeight)
}
