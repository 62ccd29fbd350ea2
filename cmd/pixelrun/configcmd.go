package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and check tuning files",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective tuning as YAML",
	Long: `Prints the tuning the game would run with: the file found on the
search path (or --config), merged onto the defaults, with --difficulty applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadTuning(app)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a tuning file",
	Long: `Loads a tuning file and reports every invalid value. Without a path
the file found on the search path (or --config) is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := app.ConfigPath
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := config.Load(path); err != nil {
			return err
		}
		name := path
		if name == "" {
			name = "effective tuning"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configValidateCmd)
}
