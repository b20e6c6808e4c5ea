package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/selectkit/pkg/paths"
)

// PathsOutput represents the XDG-compliant paths used by selectkit.
type PathsOutput struct {
	ConfigDir string `json:"config_dir"`
	StateDir  string `json:"state_dir"`
	CacheDir  string `json:"cache_dir"`
	LogDir    string `json:"log_dir"`
}

func NewPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the XDG-compliant paths used by selectkit",
		Long: `Print the XDG-compliant paths used by selectkit.

This command outputs the paths in JSON format, making it easy to parse
from scripts and other tools.

The paths follow the XDG Base Directory Specification:
- config_dir: Configuration files (selectkit.yml)
- state_dir: Runtime state
- cache_dir: Temporary/regenerable data
- log_dir: Log files (subdirectory of state_dir)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := PathsOutput{
				ConfigDir: paths.ConfigDir(),
				StateDir:  paths.StateDir(),
				CacheDir:  paths.CacheDir(),
				LogDir:    paths.LogDir(),
			}

			jsonData, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal paths to JSON: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		},
	}

	return cmd
}
