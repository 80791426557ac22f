// Root command for the pantry CLI.
package main

import (
	"github.com/spf13/cobra"
)

// Global flag values.
var (
	flagConfigDir string
	flagDebug     bool
)

var rootCmd = &cobra.Command{
	Use:     "pantry",
	Short:   "Pantry serves a cereal product REST API backed by SQLite",
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}
