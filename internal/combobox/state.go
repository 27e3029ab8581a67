package combobox

// NoOption is the active index sentinel meaning "no option highlighted".
const NoOption = -1

// State is the complete interaction state of a combobox. The filtered option
// list is not stored; it is derived from Value on demand.
//
// The zero value is not a valid initial state because Active would point at
// the first option. Use Initial.
type State struct {
	Value   string // text field contents
	Active  int    // index into the filtered list, or NoOption
	Open    bool   // listbox visible
	Focused bool   // text field owns keyboard focus
}

// Initial returns the state of a freshly rendered, unfocused combobox.
func Initial() State {
	return State{Active: NoOption}
}

// HasActive reports whether Active is a valid position in a filtered list of
// length n. Any other value, including stale indices, counts as NoOption.
func (s State) HasActive(n int) bool {
	return s.Active >= 0 && s.Active < n
}

// Reduce applies ev to s and returns the next state together with the effects
// the renderer must perform. The filtered list is recomputed from options as
// needed. Reduce is total: every event is valid in every state.
func Reduce(s State, options []string, ev Event) (State, []Effect) {
	return reduce(s, func(value string) []string { return Filter(value, options) }, ev)
}

func reduce(s State, filter func(string) []string, ev Event) (State, []Effect) {
	filtered := filter(s.Value)
	if !s.HasActive(len(filtered)) {
		s.Active = NoOption
	}

	switch ev := ev.(type) {
	case KeyEvent:
		return reduceKey(s, filtered, ev)

	case ChangeEvent:
		s.Value = ev.Value
		s.Active = NoOption
		if s.Focused {
			s.Open = true
		}
		return s, nil

	case InputClickEvent:
		s.Focused = true
		s.Open = true
		return s, nil

	case FocusEvent:
		s.Focused = true
		return s, nil

	case BlurEvent:
		s.Focused = false
		s.Open = false
		return s, nil

	case OptionClickEvent:
		if ev.Index < 0 || ev.Index >= len(filtered) {
			return s, nil
		}
		value := filtered[ev.Index]
		s.Value = value
		s.Active = indexOf(filter(value), value)
		s.Open = false
		s.Focused = true
		return s, []Effect{Commit{Value: value}}
	}

	return s, nil
}

func reduceKey(s State, filtered []string, ev KeyEvent) (State, []Effect) {
	n := len(filtered)

	switch ev.Key {
	case KeyArrowDown:
		wasOpen := s.Open
		s.Open = true
		if ev.Alt || n == 0 {
			return s, nil
		}
		// A cursor left over from a closed listbox is not visible, so opening
		// starts from the first option. Alt+Down opens without moving, which
		// makes the kept cursor visible and lets the next press advance it.
		if !wasOpen || s.Active == NoOption {
			s.Active = 0
		} else {
			s.Active = (s.Active + 1) % n
		}
		return s, []Effect{ScrollIntoView{Index: s.Active}}

	case KeyArrowUp:
		if ev.Alt {
			// Alt+Up hands visual focus back to the field and closes the listbox.
			s.Open = false
			s.Active = NoOption
			return s, nil
		}
		wasOpen := s.Open
		s.Open = true
		if n == 0 {
			return s, nil
		}
		if !wasOpen || s.Active == NoOption {
			s.Active = n - 1
		} else {
			s.Active = (s.Active - 1 + n) % n
		}
		return s, []Effect{ScrollIntoView{Index: s.Active}}

	case KeyEnter:
		return commit(s, filtered)

	case KeyTab:
		next, effects := commit(s, filtered)
		next.Focused = false
		return next, append(effects, ReleaseFocus{})

	case KeyEscape:
		if s.Open {
			s.Open = false
		} else {
			s.Value = ""
		}
		s.Active = NoOption
		return s, nil

	case KeyHome:
		s.Active = NoOption
		return s, []Effect{MoveCaret{Position: CaretStart}}

	case KeyEnd:
		s.Active = NoOption
		return s, []Effect{MoveCaret{Position: CaretEnd}}
	}

	return s, nil
}

// commit copies the active option into Value when the listbox is open and
// closes it either way.
func commit(s State, filtered []string) (State, []Effect) {
	var effects []Effect
	if s.Open && s.HasActive(len(filtered)) {
		s.Value = filtered[s.Active]
		effects = append(effects, Commit{Value: s.Value})
	}
	s.Open = false
	s.Active = NoOption
	return s, effects
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return NoOption
}
