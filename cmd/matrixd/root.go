package main

import "github.com/spf13/cobra"

// Version of the matrixd binary.
const Version = "0.1.0"

// Global flag values. Flags override config file values, which override
// MATRIXD_* environment variables and the built-in defaults.
var (
	flagConfig    string
	flagAddr      string
	flagLogLevel  string
	flagLogFormat string
)

var rootCmd = &cobra.Command{
	Use:          "matrixd",
	Short:        "matrixd serves validated matrix operations over HTTP",
	Version:      Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagAddr, "addr", "", "listen address (default :8080)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "log format: text or json")

	rootCmd.AddCommand(serveCmd)
}
