// Package combobox implements the interaction state of an autocomplete
// combobox: a text field paired with a filtered listbox of options.
//
// The package is independent of any rendering framework. All behaviour lives
// in a single reducer over {Value, Active, Open, Focused} driven by a tagged
// union of input events. Renderers feed events in and apply the returned
// effects (scroll an option into view, move the caret, release focus).
//
// # Filtering
//
// Filter keeps the options whose text starts with the input value, compared
// case-insensitively. An empty value yields the full option set unfiltered.
// Order is preserved and nothing is deduplicated.
//
// # Keyboard Model
//
// The reducer follows the list-autocomplete combobox pattern:
//
//	down / alt+down   open the listbox; move to next option (wraps) / open only
//	up                open the listbox; move to previous option (wraps)
//	enter             commit the active option, close the listbox
//	tab               same as enter, then release focus
//	esc               close the listbox, or clear the field when already closed
//	home / end        return visual focus to the field, caret to start / end
//
// Typing always resets the active option, so a cursor can never point past the
// end of a freshly filtered list.
//
// # Usage Example
//
//	cb := combobox.New(catalog.Default())
//	cb.Dispatch(combobox.ChangeEvent{Value: "Char"})
//	cb.Dispatch(combobox.KeyEvent{Key: combobox.KeyArrowDown})
//	effects := cb.Dispatch(combobox.KeyEvent{Key: combobox.KeyEnter})
//	fmt.Println(cb.State().Value) // Charmander
//
// # Thread Safety
//
// Combobox is not safe for concurrent use. It is meant to be owned by a single
// UI event loop, as Bubble Tea models are.
package combobox
