package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"seqbench/internal/config"
	"seqbench/internal/db"
	"seqbench/internal/telemetry"
)

func newSeedCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "seed [brands...]",
		Short: "Create and populate the brand table",
		Long: `Creates the configured brand table if it does not exist and inserts the
given brands, or a sample list of instant noodle brands when none are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromViper()
			brands := args
			if len(brands) == 0 {
				brands = db.DefaultBrands
			}

			src, err := newSourceFunc(cfg.Source)
			if err != nil {
				return err
			}
			sqlSrc, ok := src.(*db.SQLSource)
			if !ok {
				return fmt.Errorf("seed needs a database source, got %T", src)
			}

			if !yes {
				confirm := false
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("Insert %d brands into column %s of table %s (%s)?", len(brands), sqlSrc.Column(), sqlSrc.Table(), sqlSrc),
					Default: true,
				}
				if err := askOne(prompt, &confirm); err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				if !confirm {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			n, err := db.Seed(cmd.Context(), sqlSrc, brands)
			if err != nil {
				return err
			}
			telemetry.LogInfo("seeded brand table", "driver", sqlSrc.String(), "table", sqlSrc.Table(), "count", n)
			fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d brands into %s (%s)\n", n, sqlSrc.Table(), sqlSrc)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
