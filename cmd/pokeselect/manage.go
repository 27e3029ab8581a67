package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/pokeselect/internal/config"
	"github.com/muurk/pokeselect/internal/ui"
	"github.com/muurk/pokeselect/internal/urls"
)

// Management command flags
var (
	clearHistory bool
	assumeYes    bool
	forceInit    bool
)

func init() {
	historyCmd.Flags().BoolVar(&clearHistory, "clear", false, "Remove all remembered selections")
	historyCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// historyCmd lists or clears remembered selections
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently picked values",
	Long: `Show the values picked in the interactive picker, most recent first.

History is stored in the config file and can be turned off with
'remember_history: false'.`,
	Example: `  # List history
  pokeselect history

  # Forget everything
  pokeselect history --clear --yes`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())

	if clearHistory {
		if len(registry.History) == 0 {
			printer.Println("History is already empty.")
			return nil
		}
		if !assumeYes && !ui.ConfirmClearHistory(cmd.InOrStdin(), cmd.OutOrStdout(), len(registry.History)) {
			return nil
		}
		entries := len(registry.History)
		registry.ClearHistory()
		if err := saveRegistry(registry); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		printer.PrintSuccess("History cleared", []ui.Detail{{Key: "Removed", Value: fmt.Sprint(entries)}})
		return nil
	}

	if len(registry.History) == 0 {
		printer.PrintLines("No selections recorded yet.", "Use 'pokeselect' to pick one.")
		return nil
	}

	details := make([]ui.Detail, 0, len(registry.History))
	for _, s := range registry.History {
		details = append(details, ui.Detail{
			Key:   s.SelectedAt.Local().Format("2006-01-02 15:04"),
			Value: fmt.Sprintf("%s (%s)", s.Value, s.Catalog),
		})
	}
	printer.PrintHeader("History", commandLine(cmd, args), details)
	return nil
}

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Long: `Manage the configuration file.

The file lives in $XDG_CONFIG_HOME/pokeselect (or ~/.config/pokeselect) as
described by the XDG base directory specification:
  ` + urls.XDGBaseDirectory,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		var err error
		if configFile != "" {
			path = configFile
			if _, statErr := os.Stat(path); statErr == nil && !forceInit {
				err = fmt.Errorf("config file already exists: %s", path)
			} else {
				err = config.NewRegistry().SaveTo(path)
			}
		} else {
			path, err = config.CreateDefaultConfig(forceInit)
		}
		if err != nil {
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Config created", []ui.Detail{{Key: "Path", Value: path}})
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFile
		if path == "" {
			var err error
			if path, err = config.GetConfigPath(); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		data, err := yaml.Marshal(registry)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}
