// Package tui implements the interactive terminal combobox for pokeselect.
//
// The TUI is a thin Bubble Tea adapter around package combobox: terminal
// input is translated into combobox events, the combobox reducer decides
// what happens, and the returned effects (scrolling, caret moves, focus
// release, commits) are applied to the bubbles widgets. No interaction logic
// lives here.
//
// # Architecture
//
// The screen has two focus targets:
//   - Field: a bubbles/textinput with the listbox (bubbles/viewport) below it
//   - Confirm button: reached with Tab, Enter here accepts the value
//
// The layout is wrapped in RenderApplicationContainer for a consistent
// header, content area and context-sensitive footer.
//
// # Framework Components
//
//   - bubbles/textinput: The editable field
//   - bubbles/viewport: Scrolling listbox that follows the active option
//   - bubbles/help + bubbles/key: Key bindings and the footer help line
//   - lipgloss: Styling and layout
//
// # Usage Example
//
//	app := tui.NewAppModel(tui.Options{Catalog: catalog.Default()})
//	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
//
//	final, err := program.Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if value, ok := final.(tui.AppModel).Result(); ok {
//	    fmt.Println(value)
//	}
//
// # Mouse and Focus
//
// With mouse reporting enabled a left click on the field opens the listbox,
// a click on an option commits it and a click anywhere else blurs the field.
// Terminal focus reports (tea.FocusMsg / tea.BlurMsg) are forwarded to the
// combobox as Focus and Blur events while the field holds focus.
package tui
