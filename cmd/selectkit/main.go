package main

import (
	"os"

	"github.com/grovetools/selectkit/cli"
	"github.com/grovetools/selectkit/cmd"
	"github.com/grovetools/selectkit/tui"
)

func main() {
	tui.InitializeTUI()

	rootCmd := cli.NewStandardCommand(
		"selectkit",
		"Selection widgets for the terminal: dropdown, combobox, multiselect",
	)

	rootCmd.AddCommand(cmd.NewDropdownCmd())
	rootCmd.AddCommand(cmd.NewComboboxCmd())
	rootCmd.AddCommand(cmd.NewMultiselectCmd())
	rootCmd.AddCommand(cmd.NewConfigCmd())
	rootCmd.AddCommand(cmd.NewPathsCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("selectkit"))

	cli.ApplyStyledHelpRecursive(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
