package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/selectkit/cli"
	"github.com/grovetools/selectkit/config"
	"github.com/grovetools/selectkit/events"
)

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Display the effective widget configuration",
		Long: `Shows the widget defaults each variant resolves to after the
shared defaults section is overlaid with the variant sections. This is
useful for debugging configuration issues.

With --watch the command keeps running and reprints the configuration
whenever the config file changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			path, err := resolveConfigPath(cmd)
			if err != nil {
				return handler.Handle(err)
			}

			if err := printEffectiveConfig(path); err != nil {
				return handler.Handle(err)
			}

			watch, _ := cmd.Flags().GetBool("watch")
			if !watch {
				return nil
			}
			if path == "" {
				return handler.Handle(fmt.Errorf("no config file to watch"))
			}
			return watchConfig(cmd, path)
		},
	}

	cmd.Flags().Bool("watch", false, "Keep running and reprint on config changes")
	return cmd
}

func resolveConfigPath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	path, err := config.FindConfigFile(cwd)
	if err != nil {
		// No config file; the built-in defaults still print.
		return "", nil
	}
	return path, nil
}

func printEffectiveConfig(path string) error {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
		fmt.Printf("# Source: %s\n", path)
	} else {
		fmt.Println("# No config file found; built-in defaults")
	}

	for _, variant := range []string{"dropdown", "combobox", "multiselect"} {
		fmt.Printf("--- # %s\n", variant)
		data, err := yaml.Marshal(cfg.For(variant))
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	}
	return nil
}

func watchConfig(cmd *cobra.Command, path string) error {
	bus := events.NewBus()
	watcher, err := config.NewWatcher(path, bus, 0)
	if err != nil {
		return err
	}
	defer watcher.Close()

	logger := cli.GetLogger(cmd)
	unsub := events.On(bus, config.EventChanged, func(file string) {
		fmt.Println()
		if err := printEffectiveConfig(file); err != nil {
			logger.WithError(err).Error("Failed to reload config")
		}
	})
	defer unsub()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(os.Stderr, "Watching for config changes. Press ctrl+c to stop.")
	watcher.Start(ctx)
	return nil
}
