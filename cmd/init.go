package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lodgelab/roomseed/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default " + config.FileName,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefault(); err != nil {
			return err
		}
		color.Green("Created %s", config.FileName)
		color.Cyan("Set %s and run: roomseed pack --pack core --truncate", config.DefaultConfig().Database.URLEnv)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
