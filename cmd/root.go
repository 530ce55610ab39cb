package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lodgelab/roomseed/internal/config"
)

var (
	cfgFile string
	Version = "1.3.0"
)

var rootCmd = &cobra.Command{
	Use:   "roomseed",
	Short: "Synthetic dataset loader for multi-tenant property management databases",
	Long: `
roomseed fills an empty property-management PostgreSQL database with
referentially consistent fake data: tenants, properties, rooms, rates,
reservations, folios and the long tail of operational tables around them.

Runs are reproducible (one fixed seed governs every random choice) and
identifiers are time-ordered so bulk inserts stay index-friendly.`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("roomseed version %s\n", Version)
			os.Exit(0)
		}
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.FileName+")")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigFile(config.FileName)
	}

	// A missing config file is fine, defaults cover everything.
	viper.ReadInConfig()
}
