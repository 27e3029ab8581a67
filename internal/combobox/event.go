package combobox

import "fmt"

// Key identifies a navigation key handled by the combobox.
type Key int

const (
	KeyArrowDown Key = iota
	KeyArrowUp
	KeyEnter
	KeyTab
	KeyEscape
	KeyHome
	KeyEnd
)

// String returns the DOM key name for k.
func (k Key) String() string {
	switch k {
	case KeyArrowDown:
		return "ArrowDown"
	case KeyArrowUp:
		return "ArrowUp"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyEscape:
		return "Escape"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// Event is an input event fed to the reducer. The set of implementations is
// closed; the unexported method keeps other packages from adding variants.
type Event interface {
	event()
	String() string
}

// KeyEvent is a keydown on the text field.
type KeyEvent struct {
	Key Key
	Alt bool // Alt modifier held
}

// ChangeEvent replaces the text field value, as typing or pasting does.
type ChangeEvent struct {
	Value string
}

// InputClickEvent is a pointer click on the text field.
type InputClickEvent struct{}

// FocusEvent is the text field gaining focus.
type FocusEvent struct{}

// BlurEvent is the text field losing focus.
type BlurEvent struct{}

// OptionClickEvent is a pointer click on the option at Index in the
// currently filtered list.
type OptionClickEvent struct {
	Index int
}

func (KeyEvent) event()         {}
func (ChangeEvent) event()      {}
func (InputClickEvent) event()  {}
func (FocusEvent) event()       {}
func (BlurEvent) event()        {}
func (OptionClickEvent) event() {}

func (e KeyEvent) String() string {
	if e.Alt {
		return "Alt+" + e.Key.String()
	}
	return e.Key.String()
}

func (e ChangeEvent) String() string      { return fmt.Sprintf("Change(%q)", e.Value) }
func (InputClickEvent) String() string    { return "InputClick" }
func (FocusEvent) String() string         { return "Focus" }
func (BlurEvent) String() string          { return "Blur" }
func (e OptionClickEvent) String() string { return fmt.Sprintf("OptionClick(%d)", e.Index) }
