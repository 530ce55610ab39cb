package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lodgelab/roomseed/internal/config"
	"github.com/lodgelab/roomseed/internal/database"
	"github.com/lodgelab/roomseed/internal/pack"
	"github.com/lodgelab/roomseed/internal/pipeline"
)

var (
	packName     string
	packTruncate bool
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Run a curated QA slice of the pipeline",
	Long: `
Run a small, targeted subset of the loader plan plus its anomaly
injectors:

  core       foundation loaders only (tenants through rates)
  bookings   core + reservations + the overlapping-reservation injector
  financial  core + the billing chain + the long-stay folio injector
  all        every pack in sequence, cache reset between packs`,
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
		return pack.Run(ctx, cfg, env, packName, packTruncate)
	},
}

func init() {
	rootCmd.AddCommand(packCmd)
	packCmd.Flags().StringVar(&packName, "pack", "core", "Pack to run (core, bookings, financial, all)")
	packCmd.Flags().BoolVar(&packTruncate, "truncate", false, "Truncate all non-catalog tables before seeding")
}
