package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/pokeselect/internal/combobox"
)

// listboxModel renders the filtered options in a viewport that is at most
// maxRows tall and scrolls to keep the active option visible.
type listboxModel struct {
	viewport viewport.Model
	maxRows  int
	options  int // number of selectable rows in the current content
}

func newListbox(maxRows int) listboxModel {
	if maxRows < 1 {
		maxRows = 1
	}
	vp := viewport.New(DefaultWidth, maxRows)
	vp.MouseWheelEnabled = true
	return listboxModel{viewport: vp, maxRows: maxRows}
}

// setContent replaces the listbox rows from snap. hint is shown under the
// no-match text when nothing matches.
func (l *listboxModel) setContent(snap combobox.Snapshot, hint string, width int) {
	var lines []string
	if snap.Listbox.Empty != "" {
		lines = append(lines, EmptyStyle.Render(snap.Listbox.Empty))
		if hint != "" {
			lines = append(lines, HintStyle.Render(hint))
		}
		l.options = 0
	} else {
		for _, opt := range snap.Listbox.Options {
			text := ansi.Truncate(opt.Text, width-4, "…")
			lines = append(lines, RenderOption(text, opt.Selected))
		}
		l.options = len(snap.Listbox.Options)
	}

	l.viewport.Width = width
	l.viewport.Height = min(l.maxRows, max(len(lines), 1))
	l.viewport.SetContent(strings.Join(lines, "\n"))
}

// scrollTo moves the viewport the least amount needed to show row index.
func (l *listboxModel) scrollTo(index int) {
	switch {
	case index < l.viewport.YOffset:
		l.viewport.SetYOffset(index)
	case index >= l.viewport.YOffset+l.viewport.Height:
		l.viewport.SetYOffset(index - l.viewport.Height + 1)
	}
}

// rowAt maps a row relative to the top of the listbox to an option index,
// or returns combobox.NoOption if the row holds no option.
func (l *listboxModel) rowAt(row int) int {
	if row < 0 || row >= l.viewport.Height {
		return combobox.NoOption
	}
	index := l.viewport.YOffset + row
	if index >= l.options {
		return combobox.NoOption
	}
	return index
}

func (l listboxModel) height() int {
	return l.viewport.Height
}

func (l listboxModel) View() string {
	return l.viewport.View()
}
