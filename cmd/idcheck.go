package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lodgelab/roomseed/internal/config"
	"github.com/lodgelab/roomseed/internal/idgen"
)

var idcheckCmd = &cobra.Command{
	Use:   "idcheck",
	Short: "Run the identifier self-test",
	Long: `
Verify the time-ordered identifier generator: version nibble, strict
lexicographic ordering across milliseconds, uniqueness under rapid
generation, and throughput. The same check gates every pipeline run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		g := idgen.New(cfg.Seed)
		if err := g.SelfTest(); err != nil {
			color.Red("Identifier self-test failed: %v", err)
			return err
		}

		color.Green("Identifier self-test passed")
		fmt.Printf("  sample: %s\n", g.Next())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(idcheckCmd)
}
