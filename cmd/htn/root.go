package main

import (
	"fmt"
	"os"

	"github.com/aretw0/htn/internal/cli"
	"github.com/spf13/cobra"
)

var opts cli.Options

var rootCmd = &cobra.Command{
	Use:   "htn",
	Short: "htn composes and runs hierarchical task network actions",
	Long: `htn groups primitive robot actions into learned composites, hiding the data
that flows between them, and runs the result against a world.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&opts.LogJSON, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "Log every action start and finish")
	rootCmd.PersistentFlags().StringVar(&opts.RedisURL, "redis", "", "Redis URL for the world backend (default: in memory)")
	rootCmd.PersistentFlags().StringVar(&opts.RedisPrefix, "redis-prefix", "", "Key prefix for Redis worlds")
}
