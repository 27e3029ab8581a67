package replay

import (
	"errors"
	"reflect"
	"testing"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/muurk/pokeselect/internal/combobox"
)

var starters = []string{"Bulbasaur", "Charmander", "Charmeleon", "Charizard", "Squirtle"}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []combobox.Event // events with an empty field value
	}{
		{
			name:   "keys",
			tokens: []string{"down", "ALT+DOWN", "up", "alt+up", "enter", "tab", "esc", "home", "end"},
			want: []combobox.Event{
				combobox.KeyEvent{Key: combobox.KeyArrowDown},
				combobox.KeyEvent{Key: combobox.KeyArrowDown, Alt: true},
				combobox.KeyEvent{Key: combobox.KeyArrowUp},
				combobox.KeyEvent{Key: combobox.KeyArrowUp, Alt: true},
				combobox.KeyEvent{Key: combobox.KeyEnter},
				combobox.KeyEvent{Key: combobox.KeyTab},
				combobox.KeyEvent{Key: combobox.KeyEscape},
				combobox.KeyEvent{Key: combobox.KeyHome},
				combobox.KeyEvent{Key: combobox.KeyEnd},
			},
		},
		{
			name:   "pointer and focus",
			tokens: []string{"click", "focus", "blur", "pick:2"},
			want: []combobox.Event{
				combobox.InputClickEvent{},
				combobox.FocusEvent{},
				combobox.BlurEvent{},
				combobox.OptionClickEvent{Index: 2},
			},
		},
		{
			name:   "typing expands per character",
			tokens: []string{"type:Ch"},
			want: []combobox.Event{
				combobox.ChangeEvent{Value: "C"},
				combobox.ChangeEvent{Value: "Ch"},
			},
		},
		{
			name:   "set and clear",
			tokens: []string{"set:Mr. Mime", "clear"},
			want: []combobox.Event{
				combobox.ChangeEvent{Value: "Mr. Mime"},
				combobox.ChangeEvent{Value: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, err := Parse(tt.tokens)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			var got []combobox.Event
			for _, a := range actions {
				got = append(got, a.Events("")...)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() events = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		tokens  []string
		wantPos int
		wantErr error
	}{
		{[]string{"down", "jump"}, 2, ErrUnknownToken},
		{[]string{"pick:x"}, 1, ErrBadIndex},
		{[]string{"pick:-1"}, 1, ErrBadIndex},
		{[]string{"enter", "tab", "wat:1"}, 3, ErrUnknownToken},
	}

	for _, tt := range tests {
		_, err := Parse(tt.tokens)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Parse(%v) error = %v, want %v", tt.tokens, err, tt.wantErr)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("Parse(%v) error is not *ParseError", tt.tokens)
		}
		if pe.Position != tt.wantPos {
			t.Errorf("Parse(%v) position = %d, want %d", tt.tokens, pe.Position, tt.wantPos)
		}
	}
}

func TestTypeAppendsToCurrentValue(t *testing.T) {
	actions, err := ParseString("type:ar")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	got := actions[0].Events("Ch")
	want := []combobox.Event{combobox.ChangeEvent{Value: "Cha"}, combobox.ChangeEvent{Value: "Char"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Events() = %v, want %v", got, want)
	}
}

func TestRunWorkedExample(t *testing.T) {
	actions, err := ParseString("focus type:Char down enter")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	report := Run(combobox.New(starters), combobox.DefaultLabels(), actions)

	// focus + 4 characters + down + enter
	if len(report.Steps) != 7 {
		t.Fatalf("len(Steps) = %d, want 7", len(report.Steps))
	}

	down := report.Steps[5]
	if !down.Moved() || down.Active != 0 || !down.Open {
		t.Errorf("down step = %+v, want active 0 and open", down)
	}
	if len(down.Effects) != 1 || down.Effects[0] != "ScrollIntoView(0)" {
		t.Errorf("down effects = %v", down.Effects)
	}

	enter := report.Steps[6]
	if !enter.Committed() || enter.Commit != "Charmander" {
		t.Errorf("enter step = %+v, want commit Charmander", enter)
	}
	if v, ok := report.Committed(); !ok || v != "Charmander" {
		t.Errorf("Committed() = %q, %v", v, ok)
	}

	if report.Final.Value != "Charmander" || report.Final.Expanded {
		t.Errorf("Final = %+v", report.Final)
	}
}

func TestRunWithoutCommit(t *testing.T) {
	actions, _ := ParseString("focus type:zz down enter")
	report := Run(combobox.New(starters), combobox.DefaultLabels(), actions)

	if _, ok := report.Committed(); ok {
		t.Error("Committed() = true for a script with no matches")
	}
	if report.Final.Listbox.Empty == "" {
		t.Error("Final.Listbox.Empty is empty, want no-match text")
	}
}

func TestStepNote(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{Step{Value: "Char", Active: 2, Open: true, Focused: true}, `value="Char" open active=2`},
		{Step{Value: "", Active: combobox.NoOption, Focused: true}, `value="" closed`},
		{Step{Value: "Mew", Active: combobox.NoOption}, `value="Mew" closed unfocused`},
	}
	for _, tt := range tests {
		if got := tt.step.Note(); got != tt.want {
			t.Errorf("Note() = %q, want %q", got, tt.want)
		}
	}
}

func TestReportEncoding(t *testing.T) {
	actions, _ := ParseString("focus down")
	report := Run(combobox.New(starters), combobox.DefaultLabels(), actions)

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	final := decoded["final"].(map[string]any)
	if final["aria-activedescendant"] != "dropdown-list-option-0" {
		t.Errorf("aria-activedescendant = %v", final["aria-activedescendant"])
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	var y struct {
		Steps []Step `yaml:"steps"`
	}
	if err := yaml.Unmarshal(out, &y); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if len(y.Steps) != 2 || y.Steps[1].Event != "ArrowDown" {
		t.Errorf("yaml steps = %+v", y.Steps)
	}
}
