package combobox

import "fmt"

// Effect is a side effect the renderer must apply after a transition.
// The reducer never performs effects itself.
type Effect interface {
	effect()
	String() string
}

// CaretPosition is where the editing caret should be placed.
type CaretPosition int

const (
	CaretStart CaretPosition = iota
	CaretEnd
)

// ScrollIntoView asks the renderer to bring the option at Index (in the
// filtered list) into the visible part of the listbox.
type ScrollIntoView struct {
	Index int
}

// MoveCaret asks the renderer to place the text caret.
type MoveCaret struct {
	Position CaretPosition
}

// ReleaseFocus asks the renderer to move focus away from the combobox.
type ReleaseFocus struct{}

// Commit reports that Value was committed into the text field from an option.
type Commit struct {
	Value string
}

func (ScrollIntoView) effect() {}
func (MoveCaret) effect()      {}
func (ReleaseFocus) effect()   {}
func (Commit) effect()         {}

func (e ScrollIntoView) String() string { return fmt.Sprintf("ScrollIntoView(%d)", e.Index) }

func (e MoveCaret) String() string {
	if e.Position == CaretStart {
		return "MoveCaret(start)"
	}
	return "MoveCaret(end)"
}

func (ReleaseFocus) String() string { return "ReleaseFocus" }
func (e Commit) String() string     { return fmt.Sprintf("Commit(%q)", e.Value) }
