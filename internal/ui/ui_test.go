package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muurk/pokeselect/internal/combobox"
)

func TestHeaderRenderKeepsParamOrder(t *testing.T) {
	h := NewHeader("Filter", "pokeselect filter ch", []Detail{
		{Key: "Catalog", Value: "pokemon"},
		{Key: "Matches", Value: "6"},
	}).SetWidth(80)

	out := h.Render()
	if !strings.Contains(out, "FILTER") {
		t.Errorf("Render() missing upper-cased title:\n%s", out)
	}
	if strings.Index(out, "Catalog") > strings.Index(out, "Matches") {
		t.Errorf("Render() params out of order:\n%s", out)
	}
}

func TestResultRender(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "success",
			result: NewSuccessResult("Selection committed", []Detail{{Key: "Value", Value: "Pikachu"}}),
			want:   []string{"SUCCESS", "Selection committed", "Pikachu"},
		},
		{
			name:   "failure",
			result: NewFailureResult("Load failed", errors.New("boom"), []string{"check the path"}),
			want:   []string{"FAILED", "Error: boom", "Troubleshooting:", "check the path"},
		},
		{
			name:   "warning",
			result: NewWarningResult("Nothing selected", nil).AddDetail("Value", "Mew"),
			want:   []string{"WARNING", "Nothing selected", "Mew"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.result.SetWidth(80).Render()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("Render() missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestTraceRender(t *testing.T) {
	tr := NewTrace([]TraceStep{
		{Event: "ArrowDown", Status: StepMoved, Note: "open active=0", Effects: []string{"ScrollIntoView(0)"}},
		{Event: "Enter", Status: StepCommitted, Effects: []string{`Commit("Bulbasaur")`}},
	}).SetWidth(80)

	out := tr.Render()
	for _, w := range []string{"[1/2]", "[2/2]", StepMarkerRunning + " ArrowDown", StepMarkerComplete + " Enter", "ScrollIntoView(0)", "open active=0"} {
		if !strings.Contains(out, w) {
			t.Errorf("Render() missing %q:\n%s", w, out)
		}
	}

	if got := NewTrace(nil).Render(); !strings.Contains(got, "no events") {
		t.Errorf("Render() of empty trace = %q", got)
	}
}

func TestStepStatusString(t *testing.T) {
	tests := []struct {
		s    StepStatus
		want string
	}{
		{StepIdle, "idle"},
		{StepMoved, "moved"},
		{StepCommitted, "committed"},
		{StepStatus(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("StepStatus(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestRenderListbox(t *testing.T) {
	cb := combobox.New([]string{"Charmander", "Charmeleon", "Charizard"})
	cb.Dispatch(combobox.FocusEvent{})
	cb.Dispatch(combobox.KeyEvent{Key: combobox.KeyArrowUp})

	out := RenderListbox(cb.Snapshot(combobox.DefaultLabels()), 80, 0)
	if !strings.Contains(out, ActiveMarker+" Charizard") {
		t.Errorf("RenderListbox() does not mark the active option:\n%s", out)
	}
	if !strings.Contains(out, "Charmander") {
		t.Errorf("RenderListbox() missing option:\n%s", out)
	}

	cb.Dispatch(combobox.ChangeEvent{Value: "zz"})
	out = RenderListbox(cb.Snapshot(combobox.DefaultLabels()), 80, 0)
	if !strings.Contains(out, "No Pokemon was found") {
		t.Errorf("RenderListbox() missing empty text:\n%s", out)
	}
}

func TestVisibleWindow(t *testing.T) {
	opts := make([]combobox.Option, 10)
	if s, e := visibleWindow(opts, 0); s != 0 || e != 10 {
		t.Errorf("visibleWindow(all) = %d,%d, want 0,10", s, e)
	}
	if s, e := visibleWindow(opts, 4); s != 0 || e != 4 {
		t.Errorf("visibleWindow(no active) = %d,%d, want 0,4", s, e)
	}
	opts[7].Selected = true
	if s, e := visibleWindow(opts, 4); s != 4 || e != 8 {
		t.Errorf("visibleWindow(active=7) = %d,%d, want 4,8", s, e)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"clear\n", true},
		{"  clear  \n", true},
		{"clear", true},
		{"no\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		if got := ConfirmClearHistory(strings.NewReader(tt.input), &out, 3); got != tt.want {
			t.Errorf("ConfirmClearHistory(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "3 remembered") {
			t.Errorf("ConfirmClearHistory() output missing entry count:\n%s", out.String())
		}
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(70)
	p.PrintSuccess("done", []Detail{{Key: "Value", Value: "Mew"}})
	p.PrintError("oops", errors.New("bad"), nil)
	if !strings.Contains(buf.String(), "Mew") || !strings.Contains(buf.String(), "bad") {
		t.Errorf("Printer output unexpected:\n%s", buf.String())
	}
	if p.Width() != 70 {
		t.Errorf("Width() = %d, want 70", p.Width())
	}
}
