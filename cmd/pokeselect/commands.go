package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/pokeselect/internal/catalog"
	"github.com/muurk/pokeselect/internal/combobox"
	"github.com/muurk/pokeselect/internal/logging"
	"github.com/muurk/pokeselect/internal/replay"
	"github.com/muurk/pokeselect/internal/tui"
	"github.com/muurk/pokeselect/internal/ui"
	"github.com/muurk/pokeselect/internal/urls"
)

// Picker command flags
var (
	exitOnCommit bool
	plainOutput  bool
	visibleRows  int
	filterFormat string
	replayFormat string
	replayFocus  bool
	replayScript string
)

func init() {
	// The picker flags exist on both root and select since root runs the picker
	for _, c := range []*cobra.Command{rootCmd, selectCmd} {
		c.Flags().BoolVar(&exitOnCommit, "exit-on-commit", false, "Exit as soon as an option is picked")
		c.Flags().BoolVar(&plainOutput, "plain", false, "Print only the chosen value (for scripts)")
		c.Flags().IntVar(&visibleRows, "rows", 0, "Listbox height (default from config)")
	}

	filterCmd.Flags().StringVar(&filterFormat, "format", "detailed", "Output format (detailed, compact, json)")

	replayCmd.Flags().StringVar(&replayFormat, "format", "detailed", "Output format (detailed, json, yaml)")
	replayCmd.Flags().BoolVar(&replayFocus, "focus", true, "Start with the text field focused")
	replayCmd.Flags().StringVar(&replayScript, "script", "", "Whitespace-separated events run before the arguments")

	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(replayCmd)
}

// selectCmd launches the interactive picker
var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Launch the interactive picker",
	Long: `Launch the full-screen autocomplete picker.

Keys:
  type            filter the options by prefix
  ↓ / ↑           move through the matches (wraps around)
  alt+↓ / alt+↑   open / close the list without moving
  enter           pick the highlighted option
  tab             pick and move to the Confirm button
  esc             close the list, or clear the field when closed
  home / end      move the caret to the start / end of the field

Mouse clicks on the field and on options are supported.

The chosen value is printed when the picker exits and remembered in the
history (see 'pokeselect history').`,
	Example: `  # Pick a Pokémon
  pokeselect
  pokeselect select

  # Exit as soon as Enter picks an option and print just the value
  name=$(pokeselect --exit-on-commit --plain)

  # Pick from your own list
  pokeselect --options ~/teams.txt`,
	RunE: runSelect,
}

func runSelect(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	rows := s.registry.Preferences.VisibleRows
	if visibleRows > 0 {
		rows = visibleRows
	}

	model := tui.NewAppModel(tui.Options{
		Catalog:      s.catalog,
		Labels:       s.labels,
		VisibleRows:  rows,
		ExitOnCommit: exitOnCommit,
		Recent:       s.registry.RecentValues(s.catalog.Name),
		OnTransition: logging.LogTransition,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	value, ok := final.(tui.AppModel).Result()
	if !ok {
		if !plainOutput {
			ui.NewPrinter(cmd.OutOrStdout()).PrintWarning("Nothing selected", nil)
		}
		return nil
	}

	s.remember(value)

	if plainOutput {
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	}
	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Selection committed", []ui.Detail{
		{Key: "Value", Value: value},
		{Key: "Catalog", Value: s.catalog.Name},
	})
	return nil
}

// filterCmd prints the options matching a prefix
var filterCmd = &cobra.Command{
	Use:   "filter [prefix]",
	Short: "Print the options matching a prefix",
	Long: `Print the options whose text starts with the given prefix.

Matching is case-insensitive and keeps the catalog order. With no prefix
every option is printed. When nothing matches, the closest option is
suggested.`,
	Example: `  # Detailed listbox view
  pokeselect filter char

  # One match per line for scripting
  pokeselect filter --format compact pi

  # JSON output
  pokeselect filter --format json bu`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFilter,
}

// filterResult is the JSON shape of the filter command.
type filterResult struct {
	Catalog    string   `json:"catalog"`
	Prefix     string   `json:"prefix"`
	Matches    []string `json:"matches"`
	Suggestion string   `json:"suggestion,omitempty"`
}

func runFilter(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	prefix := ""
	if len(args) == 1 {
		prefix = args[0]
	}

	matches := combobox.Filter(prefix, s.catalog.Options)
	suggestion := ""
	if len(matches) == 0 {
		suggestion, _ = catalog.Suggest(prefix, s.catalog.Options)
	}

	out := cmd.OutOrStdout()
	switch filterFormat {
	case "compact":
		for _, m := range matches {
			fmt.Fprintln(out, m)
		}
	case "json":
		result := filterResult{
			Catalog:    s.catalog.Name,
			Prefix:     prefix,
			Matches:    append([]string{}, matches...),
			Suggestion: suggestion,
		}
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "detailed":
		printer := ui.NewPrinter(out)
		printer.PrintHeader("Filter", commandLine(cmd, args), []ui.Detail{
			{Key: "Catalog", Value: s.catalog.Name},
			{Key: "Prefix", Value: strconv.Quote(prefix)},
			{Key: "Matches", Value: fmt.Sprintf("%d of %d", len(matches), len(s.catalog.Options))},
		})

		cb := combobox.New(s.catalog.Options)
		cb.Dispatch(combobox.FocusEvent{})
		cb.Dispatch(combobox.ChangeEvent{Value: prefix})
		printer.Println(ui.RenderListbox(cb.Snapshot(s.labels), printer.Width(), 0))

		if suggestion != "" {
			printer.PrintWarning("No match", []ui.Detail{{Key: "Did you mean", Value: suggestion}})
		}
	default:
		return fmt.Errorf("unknown format %q (want detailed, compact or json)", filterFormat)
	}
	return nil
}

// replayCmd runs scripted input against the combobox
var replayCmd = &cobra.Command{
	Use:   "replay [event]...",
	Short: "Replay scripted input and print each transition",
	Long: `Run the combobox headlessly over a list of input events and print what
each event did, followed by the final accessibility snapshot.

Events:
  down, up, alt+down, alt+up, enter, tab, esc, home, end
  click              click on the text field
  focus, blur        focus changes
  pick:<n>           click on filtered option n (0-based)
  type:<text>        type text one character at a time
  set:<text>         replace the whole field value
  clear              empty the field

Events may also be given as one string with --script; they run before any
events passed as arguments. The field starts focused unless --focus=false is
given. The snapshot lists
the attributes a screen reader would see, as described in:
  ` + urls.ListAutocompleteExample,
	Example: `  # Type "Char", move to the first match and pick it
  pokeselect replay type:Char down enter

  # Wrap around from the top and inspect the snapshot as JSON
  pokeselect replay up up --format json

  # Click the third match
  pokeselect replay click type:p pick:2 --format yaml

  # Keep a script in a variable
  pokeselect replay --script "$EVENTS"`,
	Args: cobra.ArbitraryArgs,
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	var actions []replay.Action
	if replayFocus {
		actions = append(actions, replay.Focus())
	}
	scripted, err := replay.ParseString(replayScript)
	if err != nil {
		return fmt.Errorf("invalid --script: %w", err)
	}
	actions = append(actions, scripted...)
	fromArgs, err := replay.Parse(args)
	if err != nil {
		return fmt.Errorf("invalid script: %w", err)
	}
	actions = append(actions, fromArgs...)
	if len(scripted)+len(fromArgs) == 0 {
		return fmt.Errorf("no events given (pass them as arguments or with --script)")
	}

	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	cb := combobox.New(s.catalog.Options)
	cb.OnTransition(logging.LogTransition)
	report := replay.Run(cb, s.labels, actions)

	out := cmd.OutOrStdout()
	switch replayFormat {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Fprint(out, buf.String())
	case "detailed":
		printer := ui.NewPrinter(out)
		printer.PrintHeader("Replay", commandLine(cmd, args), []ui.Detail{
			{Key: "Catalog", Value: s.catalog.Name},
			{Key: "Events", Value: strconv.Itoa(len(report.Steps))},
		})
		printer.Println(ui.NewTrace(traceSteps(report)).SetWidth(printer.Width()).Render())
		printer.Newline()
		printer.Println(ui.RenderListbox(report.Final, printer.Width(), s.registry.Preferences.VisibleRows))
		if value, ok := report.Committed(); ok {
			printer.PrintSuccess("Selection committed", []ui.Detail{{Key: "Value", Value: value}})
		}
	default:
		return fmt.Errorf("unknown format %q (want detailed, json or yaml)", replayFormat)
	}
	return nil
}

// traceSteps converts replay steps to trace lines
func traceSteps(report *replay.Report) []ui.TraceStep {
	steps := make([]ui.TraceStep, 0, len(report.Steps))
	for _, st := range report.Steps {
		status := ui.StepIdle
		switch {
		case st.Committed():
			status = ui.StepCommitted
		case st.Moved():
			status = ui.StepMoved
		}
		steps = append(steps, ui.TraceStep{
			Event:   st.Event,
			Status:  status,
			Note:    st.Note(),
			Effects: st.Effects,
		})
	}
	return steps
}

// commandLine reconstructs the invocation for headers
func commandLine(cmd *cobra.Command, args []string) string {
	return strings.TrimSpace(cmd.CommandPath() + " " + strings.Join(args, " "))
}
