package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lodgelab/roomseed/internal/config"
	"github.com/lodgelab/roomseed/internal/database"
	"github.com/lodgelab/roomseed/internal/pipeline"
)

var runTruncate bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full generation pipeline",
	Long: `
Execute every loader across all business domains in dependency order.

The run truncates non-catalog tables when --truncate is given, suppresses
row triggers for the duration of the ingest, commits after every loader,
restores triggers on any exit path and prints a per-schema summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		sess, err := database.Connect(ctx, dbURL)
		if err != nil {
			return err
		}
		defer sess.Close()

		env := pipeline.NewEnv(cfg, sess)
		return pipeline.New(cfg, env).Run(ctx, runTruncate)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runTruncate, "truncate", false, "Truncate all non-catalog tables before seeding")
}
