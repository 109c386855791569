// munchkin is the desktop shell of the Munchkin card game.
//
// Usage:
//
//	munchkin [--config path] [--assets dir] [--log-level level]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagAssets   string
	flagLogLevel string
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "munchkin",
	Short:         "Munchkin - the card game on your desktop",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(options{
			configPath: flagConfig,
			assetsDir:  flagAssets,
			logLevel:   flagLogLevel,
			seed:       flagSeed,
		})
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "YAML file overriding the built-in configuration")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Asset directory (default: assets.root from config)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Deck shuffle seed (0 = random based on time)")
}
