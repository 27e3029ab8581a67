package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StepStatus classifies a replayed event by what it did to the combobox.
type StepStatus int

const (
	StepIdle      StepStatus = iota // Nothing visible beyond the state note
	StepMoved                       // The active option changed
	StepCommitted                   // A value was committed
)

// String returns the human-readable status name
func (s StepStatus) String() string {
	switch s {
	case StepIdle:
		return "idle"
	case StepMoved:
		return "moved"
	case StepCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// TraceStep is one line of a replay trace.
type TraceStep struct {
	Event   string     // e.g., "ArrowDown"
	Status  StepStatus // Drives the marker and colour
	Note    string     // State after the event, e.g., `value="Char" open active=0`
	Effects []string   // Effect names emitted by the event
}

// Trace renders a numbered list of replay steps.
type Trace struct {
	Steps []TraceStep
	Width int
}

// NewTrace creates a trace for the given steps
func NewTrace(steps []TraceStep) *Trace {
	return &Trace{
		Steps: steps,
		Width: GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (t *Trace) SetWidth(width int) *Trace {
	t.Width = width
	return t
}

// Render returns the styled trace as a string
func (t *Trace) Render() string {
	if len(t.Steps) == 0 {
		return StepPendingStyle.Render("  (no events)")
	}

	lines := make([]string, 0, len(t.Steps)*2)
	for i, step := range t.Steps {
		lines = append(lines, t.renderStepLine(i+1, len(t.Steps), step)...)
	}
	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer
func (t *Trace) String() string {
	return t.Render()
}

func (t *Trace) renderStepLine(n, total int, step TraceStep) []string {
	var marker string
	var style lipgloss.Style
	switch step.Status {
	case StepCommitted:
		marker, style = StepMarkerComplete, StepCompleteStyle
	case StepMoved:
		marker, style = StepMarkerRunning, StepRunningStyle
	default:
		marker, style = StepMarkerPending, StepPendingStyle
	}

	digits := len(fmt.Sprint(total))
	prefix := fmt.Sprintf("  [%*d/%d] ", digits, n, total)

	line := StepPendingStyle.Render(prefix) + style.Render(marker+" "+step.Event)
	if len(step.Effects) > 0 {
		line += "  " + HeaderParamValueStyle.Render(strings.Join(step.Effects, ", "))
	}

	lines := []string{line}
	if step.Note != "" {
		indent := strings.Repeat(" ", len(prefix)+2)
		lines = append(lines, StepNoteStyle.Render(indent+step.Note))
	}
	return lines
}
