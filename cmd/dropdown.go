package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/selectkit/cli"
	"github.com/grovetools/selectkit/pkg/entry"
	"github.com/grovetools/selectkit/tui"
	"github.com/grovetools/selectkit/widget"
)

func NewDropdownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dropdown [items...]",
		Short: "Pick a single item from a list",
		Long: `Open a dropdown and print the chosen value to stdout.

Items are given as arguments or piped on stdin, one per line. An item
of the form "value=text" separates the printed value from the display
text; a plain item uses its text as the value.

Examples:
  # Pick from arguments
  selectkit dropdown red green blue

  # Pick from a piped list with separate values
  printf 'us=United States\nfr=France\n' | selectkit dropdown

  # Preselect and mark a value unavailable
  selectkit dropdown --value green --disabled blue red green blue`,
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

			o := buildOptions(cmd, cfg.For("dropdown"))
			o.Items = items
			if value, _ := cmd.Flags().GetString("value"); value != "" {
				o.Value = value
			}

			title, _ := cmd.Flags().GetString("title")
			m, err := tui.NewDropdownModel(title, o)
			if err != nil {
				return handler.Handle(err)
			}
			if err := runProgram(m); err != nil {
				return handler.Handle(err)
			}
			if err := m.Err(); err != nil {
				return handler.Handle(err)
			}

			d := m.Widget().(*widget.Dropdown)
			if v := d.Value(); v != nil {
				return printSelection(cmd, []entry.Entry{*v})
			}
			return nil
		},
	}

	addPickFlags(cmd)
	cmd.Flags().String("value", "", "Value to preselect")
	return cmd
}
