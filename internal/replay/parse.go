package replay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/muurk/pokeselect/internal/combobox"
)

// Sentinel errors wrapped by ParseError.
var (
	ErrUnknownToken = errors.New("unknown token")
	ErrBadIndex     = errors.New("option index must be a non-negative integer")
)

// ParseError reports the script token that could not be parsed.
type ParseError struct {
	Position int // 1-based token position
	Token    string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("token %d %q: %v", e.Position, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var keyTokens = map[string]combobox.Event{
	"down":     combobox.KeyEvent{Key: combobox.KeyArrowDown},
	"alt+down": combobox.KeyEvent{Key: combobox.KeyArrowDown, Alt: true},
	"up":       combobox.KeyEvent{Key: combobox.KeyArrowUp},
	"alt+up":   combobox.KeyEvent{Key: combobox.KeyArrowUp, Alt: true},
	"enter":    combobox.KeyEvent{Key: combobox.KeyEnter},
	"tab":      combobox.KeyEvent{Key: combobox.KeyTab},
	"esc":      combobox.KeyEvent{Key: combobox.KeyEscape},
	"escape":   combobox.KeyEvent{Key: combobox.KeyEscape},
	"home":     combobox.KeyEvent{Key: combobox.KeyHome},
	"end":      combobox.KeyEvent{Key: combobox.KeyEnd},
	"click":    combobox.InputClickEvent{},
	"focus":    combobox.FocusEvent{},
	"blur":     combobox.BlurEvent{},
}

type actionKind int

const (
	actionEvent actionKind = iota
	actionType
	actionSet
)

// Action is one parsed script token. Text actions expand to events relative
// to the field value at the time they run.
type Action struct {
	Token string

	kind  actionKind
	event combobox.Event
	text  string
}

// Events returns the events this action dispatches when the field currently
// holds value. Typing produces one Change per character.
func (a Action) Events(value string) []combobox.Event {
	switch a.kind {
	case actionType:
		events := make([]combobox.Event, 0, len(a.text))
		for _, r := range a.text {
			value += string(r)
			events = append(events, combobox.ChangeEvent{Value: value})
		}
		return events
	case actionSet:
		return []combobox.Event{combobox.ChangeEvent{Value: a.text}}
	default:
		return []combobox.Event{a.event}
	}
}

func (a Action) String() string {
	return a.Token
}

// Focus returns the action that gives the field keyboard focus.
func Focus() Action {
	return Action{Token: "focus", kind: actionEvent, event: combobox.FocusEvent{}}
}

// Parse converts script tokens into actions. Key names are case-insensitive;
// text after "type:" and "set:" is kept verbatim.
func Parse(tokens []string) ([]Action, error) {
	actions := make([]Action, 0, len(tokens))
	for i, token := range tokens {
		action, err := parseToken(token)
		if err != nil {
			return nil, &ParseError{Position: i + 1, Token: token, Err: err}
		}
		actions = append(actions, action)
	}
	return actions, nil
}

// ParseString splits s on whitespace and parses the fields. Text containing
// spaces needs Parse with pre-split tokens.
func ParseString(s string) ([]Action, error) {
	return Parse(strings.Fields(s))
}

func parseToken(token string) (Action, error) {
	name, arg, hasArg := strings.Cut(token, ":")
	name = strings.ToLower(strings.TrimSpace(name))

	if !hasArg {
		if name == "clear" {
			return Action{Token: token, kind: actionSet}, nil
		}
		ev, ok := keyTokens[name]
		if !ok {
			return Action{}, ErrUnknownToken
		}
		return Action{Token: token, kind: actionEvent, event: ev}, nil
	}

	switch name {
	case "type":
		return Action{Token: token, kind: actionType, text: arg}, nil
	case "set":
		return Action{Token: token, kind: actionSet, text: arg}, nil
	case "pick":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return Action{}, ErrBadIndex
		}
		return Action{Token: token, kind: actionEvent, event: combobox.OptionClickEvent{Index: n}}, nil
	default:
		return Action{}, ErrUnknownToken
	}
}
