// Package ui provides styled terminal output for pokeselect's
// non-interactive commands.
//
// This package uses Lipgloss to render polished "print once and exit" output:
// unlike the interactive combobox in package tui, nothing here reads keys.
//
// # Architecture
//
// The package provides these component types:
//
//   - Header: Command banner showing operation name and parameters
//   - Listbox: Static rendering of a combobox accessibility snapshot
//   - Trace: Numbered list of replayed events with their outcome
//   - Result: Success/failure/warning boxes with styled information
//
// Commands print them through a Printer:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Filter", "pokeselect filter char", []ui.Detail{{Key: "Matches", Value: "3"}})
//	p.Println(ui.RenderListbox(snapshot, p.Width(), 0))
//
// # Logging Integration
//
// Logging is controlled via the POKESELECT_LOG_LEVEL environment variable.
// When unset, zap logging is silent and only the curated UI output appears.
package ui
