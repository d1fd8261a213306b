package main

import (
	"fmt"

	"github.com/aretw0/htn"
	"github.com/aretw0/htn/internal/cli"
	"github.com/aretw0/htn/internal/presentation/graph"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <action>...",
	Short: "Export the action tree as a Mermaid diagram",
	Long:  `Composes the named actions and outputs a Mermaid diagram (graph TD) of the resulting tree.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		name, _ := cmd.Flags().GetString("name")

		a, err := cli.Compose(htn.New().Library(), mode, name, args)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(a, nil))
		return err
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("mode", "group", "How to compose several actions: group or sequence")
	graphCmd.Flags().String("name", "", "Name of the composed action")
}
