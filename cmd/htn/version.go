package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/htn"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of htn",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "htn version %s\n", strings.TrimSpace(htn.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
