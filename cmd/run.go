package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/grovetools/selectkit/config"
	"github.com/grovetools/selectkit/filter"
	"github.com/grovetools/selectkit/pkg/entry"
	"github.com/grovetools/selectkit/position"
	"github.com/grovetools/selectkit/widget"
)

// addPickFlags registers the flags shared by the selection commands.
func addPickFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Title shown above the widget")
	cmd.Flags().String("placeholder", "", "Text shown while nothing is selected")
	cmd.Flags().String("filter", "", "Filter strategy: contains, startswith, fuzzy, none")
	cmd.Flags().Int("min-filter", 0, "Minimum filter text length before matching runs")
	cmd.Flags().Int("debounce-ms", 0, "Filter input debounce in milliseconds")
	cmd.Flags().StringSlice("disabled", nil, "Values rendered but not selectable")
}

// readItems builds the entry collection from positional arguments, or
// from stdin lines when no arguments are given and stdin is piped.
// Each item is either "value=text" or a plain text whose value is the
// text itself. Blank lines are skipped.
func readItems(cmd *cobra.Command, args []string) ([]entry.Entry, error) {
	raw := args
	if len(raw) == 0 && !isatty.IsTerminal(os.Stdin.Fd()) {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			raw = append(raw, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read items from stdin: %w", err)
		}
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no items given; pass them as arguments or pipe them on stdin")
	}

	disabled, _ := cmd.Flags().GetStringSlice("disabled")
	disabledSet := make(map[string]bool, len(disabled))
	for _, v := range disabled {
		disabledSet[v] = true
	}

	items := make([]entry.Entry, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		value, text := line, line
		if idx := strings.Index(line, "="); idx > 0 {
			value, text = line[:idx], line[idx+1:]
		}
		e := entry.New(value, text)
		e.Disabled = disabledSet[value]
		items = append(items, e)
	}
	return items, nil
}

// buildOptions maps the resolved config defaults for a widget variant
// into widget options, then overlays any explicitly set flags.
func buildOptions(cmd *cobra.Command, defaults config.WidgetDefaults) widget.Options {
	o := widget.Options{
		Placeholder:      defaults.Placeholder,
		MinFilterLength:  defaults.MinFilterLength,
		MaxSelectedItems: defaults.MaxSelectedItems,
	}
	if defaults.FilterStrategy != "" {
		o.FilterStrategy = filter.ParseStrategy(defaults.FilterStrategy)
	}
	if defaults.DebounceMs != 0 {
		o.DebounceDelay = time.Duration(defaults.DebounceMs) * time.Millisecond
	}
	if defaults.PreferredSide != "" {
		o.Placement.Preferred = position.Side(defaults.PreferredSide)
	}
	o.Placement.Offset = defaults.Offset

	flags := cmd.Flags()
	if flags.Changed("placeholder") {
		o.Placeholder, _ = flags.GetString("placeholder")
	}
	if flags.Changed("filter") {
		s, _ := flags.GetString("filter")
		o.FilterStrategy = filter.ParseStrategy(s)
	}
	if flags.Changed("min-filter") {
		o.MinFilterLength, _ = flags.GetInt("min-filter")
	}
	if flags.Changed("debounce-ms") {
		ms, _ := flags.GetInt("debounce-ms")
		if ms <= 0 {
			o.DebounceDelay = -1
		} else {
			o.DebounceDelay = time.Duration(ms) * time.Millisecond
		}
	}
	return o
}

// runProgram runs the bubbletea model. The UI renders on stderr so the
// selection can be piped from stdout; when stdin is piped the terminal
// is opened directly for key input.
func runProgram(m tea.Model) error {
	opts := []tea.ProgramOption{tea.WithOutput(os.Stderr)}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return fmt.Errorf("interactive terminal required: %w", err)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}

	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

// printSelection writes the chosen entries to stdout, one value per
// line, or as a JSON array with --json.
func printSelection(cmd *cobra.Command, selected []entry.Entry) error {
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		data, err := json.MarshalIndent(selected, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	for _, e := range selected {
		fmt.Println(e.Value)
	}
	return nil
}
