// Package cli wires the spotiskill commands.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/spotiskill/spotiskill/internal/config"
)

var (
	cfgFile string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "spotiskill",
	Short: "Voice-assistant skill backend for Spotify playback",
	Long:  `Spotiskill answers voice intents that list a user's Spotify playback devices and transfer playback to one of them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.spotiskillrc)")
}

func initConfig() error {
	// A .env next to the binary is handy in development; absence is fine.
	_ = godotenv.Load()

	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Config returns the loaded configuration.
func Config() *config.Config {
	return cfg
}
