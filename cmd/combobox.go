package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/selectkit/cli"
	"github.com/grovetools/selectkit/pkg/entry"
	"github.com/grovetools/selectkit/tui"
	"github.com/grovetools/selectkit/widget"
)

func NewComboboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combobox [items...]",
		Short: "Pick a single item with type-to-filter",
		Long: `Open a combobox and print the chosen value to stdout.

Typing narrows the list with the configured filter strategy. Items are
given as arguments or piped on stdin, one per line, in the same
"value=text" form the dropdown accepts.

Examples:
  # Fuzzy-match a long list from stdin
  ls | selectkit combobox --filter fuzzy

  # Require two characters before matching runs
  selectkit combobox --min-filter 2 alpha beta gamma`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return handler.Handle(err)
			}

			items, err := readItems(cmd, args)
			if err != nil {
				return handler.Handle(err)
			}

			o := buildOptions(cmd, cfg.For("combobox"))
			o.Items = items
			if value, _ := cmd.Flags().GetString("value"); value != "" {
				o.Value = value
			}

			title, _ := cmd.Flags().GetString("title")
			m, err := tui.NewComboboxModel(title, o)
			if err != nil {
				return handler.Handle(err)
			}
			if err := runProgram(m); err != nil {
				return handler.Handle(err)
			}
			if err := m.Err(); err != nil {
				return handler.Handle(err)
			}

			c := m.Widget().(*widget.Combobox)
			if v := c.Value(); v != nil {
				return printSelection(cmd, []entry.Entry{*v})
			}
			return nil
		},
	}

	addPickFlags(cmd)
	cmd.Flags().String("value", "", "Value to preselect")
	return cmd
}
