package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/pokerdeck/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pokerdeck settings",
	Long: `Commands for reading and changing the pokerdeck config file.

Keys:
  swaps      number of swaps used by a full shuffle (default 1000)
  seed       seed for the random source, 0 for a random seed each run
  preview    number of cards printed by each "First" step of demo
  log_level  one of debug, info, warn, error`,
	// Config subcommands load the file themselves.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupOutput(cmd, "info")
		return nil
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, color.CyanString("# %s", config.GetConfigFilePath()))
		for _, key := range config.Keys {
			value, err := c.Get(key)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s = %s\n", color.CyanString("%s", key), color.HiWhiteString("%s", value))
		}
		return nil
	},
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.SetValue(key, value); err != nil {
			return fmt.Errorf("error setting %s: %w", key, err)
		}

		logger.Debug("updated config", "key", key, "value", value)
		fmt.Fprintf(cmd.OutOrStdout(), "%s set to: %s\n", key, value)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
