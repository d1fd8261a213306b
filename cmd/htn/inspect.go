package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/htn"
	"github.com/aretw0/htn/internal/cli"
	"github.com/aretw0/htn/internal/dto"
	"github.com/aretw0/htn/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <action>...",
	Short: "Describe an action or the plan composed from several",
	Long: `Prints the interface (inputs and outputs) of a library action. With several
actions, prints the interface of their composition. Without arguments, lists
the library.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		lib := htn.New().Library()
		jsonMode, _ := cmd.Flags().GetBool("json")

		if len(args) == 0 {
			for _, name := range lib.Names() {
				fmt.Fprintln(out, name)
			}
			return nil
		}

		mode, _ := cmd.Flags().GetString("mode")
		name, _ := cmd.Flags().GetString("name")
		a, err := cli.Compose(lib, mode, name, args)
		if err != nil {
			return err
		}

		if jsonMode {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(dto.FromAction(a))
		}

		md := tui.Describe(a)
		plain, _ := cmd.Flags().GetBool("plain")
		if plain || !cli.IsTerminal(out) {
			_, err := fmt.Fprint(out, md)
			return err
		}
		rendered, err := tui.NewRenderer()(md)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, rendered)
		return err
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().String("mode", "group", "How to compose several actions: group or sequence")
	inspectCmd.Flags().String("name", "", "Name of the composed action")
	inspectCmd.Flags().Bool("json", false, "Print the action as JSON")
	inspectCmd.Flags().Bool("plain", false, "Print raw markdown even on a terminal")
}
