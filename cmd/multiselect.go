package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/selectkit/cli"
	"github.com/grovetools/selectkit/tui"
	"github.com/grovetools/selectkit/widget"
)

func NewMultiselectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multiselect [items...]",
		Short: "Pick any number of items from a list",
		Long: `Open a multiselect and print the chosen values to stdout, one per
line, in the order they were selected.

Space toggles the focused item, ctrl+a toggles everything, enter
confirms. Items are given as arguments or piped on stdin, one per
line, in the same "value=text" form the dropdown accepts.

Examples:
  # Choose branches to delete
  git branch --format '%(refname:short)' | selectkit multiselect

  # Cap the selection at three items
  selectkit multiselect --max-selected 3 a b c d e`,
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

			o := buildOptions(cmd, cfg.For("multiselect"))
			o.Items = items
			if cmd.Flags().Changed("max-selected") {
				o.MaxSelectedItems, _ = cmd.Flags().GetInt("max-selected")
			}
			if values, _ := cmd.Flags().GetStringSlice("values"); len(values) > 0 {
				raw := make([]any, len(values))
				for i, v := range values {
					raw[i] = v
				}
				o.Values = raw
			}

			title, _ := cmd.Flags().GetString("title")
			m, err := tui.NewMultiselectModel(title, o)
			if err != nil {
				return handler.Handle(err)
			}
			if err := runProgram(m); err != nil {
				return handler.Handle(err)
			}
			if err := m.Err(); err != nil {
				return handler.Handle(err)
			}

			ms := m.Widget().(*widget.Multiselect)
			return printSelection(cmd, ms.Values())
		},
	}

	addPickFlags(cmd)
	cmd.Flags().StringSlice("values", nil, "Values to preselect")
	cmd.Flags().Int("max-selected", 0, "Maximum number of selected items (0 means no limit)")
	return cmd
}
