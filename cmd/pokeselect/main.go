// Pokeselect is an accessible autocomplete picker for the terminal.
//
// It presents a text field with a filtered listbox of options (by default
// the 151 original Pokémon) and lets the user pick one with the keyboard or
// the mouse, following the ARIA combobox interaction pattern. The same
// interaction engine can be scripted headlessly with the replay command.
//
// Usage:
//
//	pokeselect [command] [flags]
//
// Running without arguments launches the interactive picker.
// See 'pokeselect --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/pokeselect/internal/logging"
	"github.com/muurk/pokeselect/internal/urls"
	"github.com/muurk/pokeselect/internal/version"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		logging.Error("Command failed", zap.Error(err))
	}
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	optionsFile string
	configFile  string
)

var rootCmd = &cobra.Command{
	Use:   "pokeselect",
	Short: "Accessible autocomplete picker",
	Long: `An autocomplete combobox for the terminal.

Type to filter the option list by prefix, move through the matches with the
arrow keys and press Enter to pick one. The interaction follows the ARIA
combobox pattern:
  ` + urls.ComboboxPattern + `

Options default to the 151 original Pokémon. Use --options to pick from
your own YAML, JSON, TOML or plain-text list instead.

If no command is specified, the interactive picker will launch automatically.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Silent by default. Set POKESELECT_LOG_LEVEL=debug to trace every
		// transition, and POKESELECT_LOG_FILE to keep the logs out of the TUI.
		if err := logging.InitializeFromEnv(); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the picker when no subcommand provided
		return runSelect(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&optionsFile, "options", "", "Options file (.yaml, .json, .toml or one option per line)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/pokeselect/config.yaml)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pokeselect %s\n", version.Full())
	},
}
