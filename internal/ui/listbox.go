package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/pokeselect/internal/combobox"
)

// RenderListbox renders a combobox snapshot as a bordered box: the input
// line, then the listbox options with the active one marked. maxRows limits
// how many options are shown (0 shows all); the window is positioned so the
// active option stays visible.
func RenderListbox(snap combobox.Snapshot, width, maxRows int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	inner := width - 6 // Border plus option padding

	var lines []string

	value := snap.Value
	if value == "" {
		value = EmptyOptionStyle.UnsetPaddingLeft().Render("(empty)")
	}
	lines = append(lines,
		HeaderParamKeyStyle.Render(snap.Label+":")+" "+HeaderParamValueStyle.Render(value),
		RenderHorizontalDivider(width-4, "─"),
	)

	if snap.Listbox.Empty != "" {
		lines = append(lines, EmptyOptionStyle.Render(snap.Listbox.Empty))
		return ListboxBorderStyle(width, snap.Expanded).Render(strings.Join(lines, "\n"))
	}

	options := snap.Listbox.Options
	start, end := visibleWindow(options, maxRows)
	for _, opt := range options[start:end] {
		text := ansi.Truncate(opt.Text, inner, "…")
		if opt.Selected {
			lines = append(lines, ActiveOptionStyle.Render(ActiveMarker+" "+text))
			continue
		}
		lines = append(lines, OptionStyle.Render(text))
	}

	if hidden := len(options) - (end - start); hidden > 0 {
		lines = append(lines, StepNoteStyle.Render(fmt.Sprintf("  … %d more", hidden)))
	}

	return ListboxBorderStyle(width, snap.Expanded).Render(strings.Join(lines, "\n"))
}

// visibleWindow returns the [start, end) slice of options to show so that the
// selected option, if any, falls inside it.
func visibleWindow(options []combobox.Option, maxRows int) (int, int) {
	if maxRows <= 0 || len(options) <= maxRows {
		return 0, len(options)
	}
	active := 0
	for i, opt := range options {
		if opt.Selected {
			active = i
			break
		}
	}
	start := 0
	if active >= maxRows {
		start = active - maxRows + 1
	}
	return start, start + maxRows
}
