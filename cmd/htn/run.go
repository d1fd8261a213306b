package main

import (
	"github.com/aretw0/htn/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario file",
	Long: `Loads a YAML or JSON scenario, builds its plan from the action library and
runs it against the world it describes. Exits non-zero when the scenario's
expectation does not hold.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := cli.NewLogger(opts)
		if err != nil {
			return err
		}
		_, err = cli.RunScenario(cmd.Context(), opts, logger, args[0], cmd.OutOrStdout())
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the report as JSON")
}
