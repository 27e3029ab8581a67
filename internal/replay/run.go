package replay

import (
	"fmt"
	"strings"

	"github.com/muurk/pokeselect/internal/combobox"
)

// Step records a single dispatched event.
type Step struct {
	Token   string         `json:"token" yaml:"token"`
	Event   string         `json:"event" yaml:"event"`
	Before  combobox.State `json:"-" yaml:"-"`
	After   combobox.State `json:"-" yaml:"-"`
	Value   string         `json:"value" yaml:"value"`
	Active  int            `json:"active" yaml:"active"`
	Open    bool           `json:"open" yaml:"open"`
	Focused bool           `json:"focused" yaml:"focused"`
	Effects []string       `json:"effects,omitempty" yaml:"effects,omitempty"`
	Commit  string         `json:"commit,omitempty" yaml:"commit,omitempty"`

	effects []combobox.Effect
}

// Committed reports whether the step committed a value.
func (s Step) Committed() bool {
	for _, e := range s.effects {
		if _, ok := e.(combobox.Commit); ok {
			return true
		}
	}
	return false
}

// Moved reports whether the step changed the active option to a real one.
func (s Step) Moved() bool {
	return s.After.Active != combobox.NoOption && s.After.Active != s.Before.Active
}

// Note summarises the state after the step, e.g. `value="Char" open active=2`.
func (s Step) Note() string {
	parts := []string{fmt.Sprintf("value=%q", s.Value)}
	if s.Open {
		parts = append(parts, "open")
	} else {
		parts = append(parts, "closed")
	}
	if s.Active != combobox.NoOption {
		parts = append(parts, fmt.Sprintf("active=%d", s.Active))
	}
	if !s.Focused {
		parts = append(parts, "unfocused")
	}
	return strings.Join(parts, " ")
}

// Report is the outcome of a replay.
type Report struct {
	Steps []Step            `json:"steps" yaml:"steps"`
	Final combobox.Snapshot `json:"final" yaml:"final"`
}

// Committed returns the value of the last commit in the replay, if any.
func (r *Report) Committed() (string, bool) {
	for i := len(r.Steps) - 1; i >= 0; i-- {
		if r.Steps[i].Committed() {
			return r.Steps[i].Commit, true
		}
	}
	return "", false
}

// Run dispatches actions against cb in order and records every event. The
// combobox is not reset first, so callers can replay on top of a prepared
// state.
func Run(cb *combobox.Combobox, labels combobox.Labels, actions []Action) *Report {
	report := &Report{Steps: make([]Step, 0, len(actions))}

	for _, action := range actions {
		for _, ev := range action.Events(cb.State().Value) {
			before := cb.State()
			effects := cb.Dispatch(ev)
			after := cb.State()

			step := Step{
				Token:   action.Token,
				Event:   ev.String(),
				Before:  before,
				After:   after,
				Value:   after.Value,
				Active:  after.Active,
				Open:    after.Open,
				Focused: after.Focused,
				effects: effects,
			}
			for _, e := range effects {
				step.Effects = append(step.Effects, e.String())
				if c, ok := e.(combobox.Commit); ok {
					step.Commit = c.Value
				}
			}
			report.Steps = append(report.Steps, step)
		}
	}

	report.Final = cb.Snapshot(labels)
	return report
}
