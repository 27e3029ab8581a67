package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/pokeselect/internal/catalog"
	"github.com/muurk/pokeselect/internal/combobox"
)

// focusTarget is the widget that receives key presses
type focusTarget int

const (
	focusField focusTarget = iota
	focusConfirm
)

// Rows of the content area above the listbox: the label line and the
// bordered text field.
const (
	labelRows = 1
	fieldRows = 3
)

const confirmLabel = "Confirm"

// defaultVisibleRows is the listbox height when Options.VisibleRows is unset
const defaultVisibleRows = 8

// Options configures the select screen.
type Options struct {
	Catalog      *catalog.Catalog
	Labels       combobox.Labels
	VisibleRows  int
	ExitOnCommit bool     // quit as soon as a value is committed
	Recent       []string // recently chosen values, most recent first
	OnTransition combobox.TransitionFunc
}

// AppModel is the top-level model of the select screen
type AppModel struct {
	Combobox *combobox.Combobox
	Input    textinput.Model
	Listbox  listboxModel

	// UI state
	Width  int
	Height int

	// Help
	Help        help.Model
	FieldKeys   fieldKeyMap
	ConfirmKeys confirmKeyMap

	focus        focusTarget
	labels       combobox.Labels
	recent       []string
	exitOnCommit bool

	result   string
	accepted bool
	quitting bool
}

// NewAppModel creates the select screen with the field focused
func NewAppModel(opts Options) AppModel {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	cb := combobox.New(cat.Options)
	if opts.OnTransition != nil {
		cb.OnTransition(opts.OnTransition)
	}
	cb.Dispatch(combobox.FocusEvent{})

	rows := opts.VisibleRows
	if rows <= 0 {
		rows = defaultVisibleRows
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Start typing…"
	input.Focus()

	m := AppModel{
		Combobox:     cb,
		Input:        input,
		Listbox:      newListbox(rows),
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Help:         help.New(),
		FieldKeys:    newFieldKeyMap(),
		ConfirmKeys:  newConfirmKeyMap(),
		focus:        focusField,
		labels:       opts.Labels,
		recent:       opts.Recent,
		exitOnCommit: opts.ExitOnCommit,
	}
	m.resize()
	return m
}

// Result returns the accepted value. ok is false when the user quit without
// accepting or accepted an empty field.
func (m AppModel) Result() (value string, ok bool) {
	return m.result, m.accepted && m.result != ""
}

// Init starts the cursor blink
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update translates terminal input into combobox events
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.focus == focusConfirm {
			return m.updateConfirm(msg)
		}
		return m.updateField(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.FocusMsg:
		if m.focus == focusField {
			return m.dispatch(combobox.FocusEvent{})
		}
		return m, nil

	case tea.BlurMsg:
		if m.focus == focusField {
			return m.dispatch(combobox.BlurEvent{})
		}
		return m, nil
	}

	// Cursor blink and other textinput internals
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m AppModel) updateField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var ev combobox.Event
	switch {
	case key.Matches(msg, m.FieldKeys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.FieldKeys.AltDown):
		ev = combobox.KeyEvent{Key: combobox.KeyArrowDown, Alt: true}
	case key.Matches(msg, m.FieldKeys.Down):
		ev = combobox.KeyEvent{Key: combobox.KeyArrowDown}
	case key.Matches(msg, m.FieldKeys.AltUp):
		ev = combobox.KeyEvent{Key: combobox.KeyArrowUp, Alt: true}
	case key.Matches(msg, m.FieldKeys.Up):
		ev = combobox.KeyEvent{Key: combobox.KeyArrowUp}
	case key.Matches(msg, m.FieldKeys.Select):
		ev = combobox.KeyEvent{Key: combobox.KeyEnter}
	case key.Matches(msg, m.FieldKeys.Next):
		ev = combobox.KeyEvent{Key: combobox.KeyTab}
	case key.Matches(msg, m.FieldKeys.Escape):
		ev = combobox.KeyEvent{Key: combobox.KeyEscape}
	case key.Matches(msg, m.FieldKeys.Home):
		ev = combobox.KeyEvent{Key: combobox.KeyHome}
	case key.Matches(msg, m.FieldKeys.End):
		ev = combobox.KeyEvent{Key: combobox.KeyEnd}
	}
	if ev != nil {
		return m.dispatch(ev)
	}

	// Everything else edits the field
	before := m.Input.Value()
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	if m.Input.Value() == before {
		return m, cmd
	}
	updated, dispatchCmd := m.dispatch(combobox.ChangeEvent{Value: m.Input.Value()})
	return updated, tea.Batch(cmd, dispatchCmd)
}

func (m AppModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ConfirmKeys.Press):
		return m.accept()
	case key.Matches(msg, m.ConfirmKeys.Back):
		m.focus = focusField
		return m.dispatch(combobox.FocusEvent{})
	case key.Matches(msg, m.ConfirmKeys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m AppModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	state := m.Combobox.State()
	listTop := containerTop + labelRows + fieldRows

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if !state.Open {
			return m, nil
		}
		var cmd tea.Cmd
		m.Listbox.viewport, cmd = m.Listbox.viewport.Update(msg)
		return m, cmd
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch {
	case msg.Y >= containerTop+labelRows && msg.Y < listTop:
		m.focus = focusField
		return m.dispatch(combobox.InputClickEvent{})

	case state.Open && msg.Y >= listTop && msg.Y < listTop+m.Listbox.height():
		index := m.Listbox.rowAt(msg.Y - listTop)
		if index == combobox.NoOption {
			return m, nil
		}
		m.focus = focusField
		return m.dispatch(combobox.OptionClickEvent{Index: index})

	case msg.Y == m.buttonRow() && m.onButton(msg.X):
		m.focus = focusConfirm
		updated, _ := m.dispatch(combobox.BlurEvent{})
		return updated.(AppModel).accept()
	}

	// Clicked outside the widget
	if m.focus == focusField && state.Focused {
		return m.dispatch(combobox.BlurEvent{})
	}
	return m, nil
}

// dispatch feeds ev to the combobox, syncs the widgets with the new state and
// performs the returned effects.
func (m AppModel) dispatch(ev combobox.Event) (tea.Model, tea.Cmd) {
	effects := m.Combobox.Dispatch(ev)
	state := m.Combobox.State()

	var cmds []tea.Cmd

	if m.Input.Value() != state.Value {
		m.Input.SetValue(state.Value)
		m.Input.CursorEnd()
	}
	switch {
	case m.focus == focusField && state.Focused && !m.Input.Focused():
		cmds = append(cmds, m.Input.Focus())
	case !state.Focused && m.Input.Focused():
		m.Input.Blur()
	}

	m.refreshListbox()

	for _, effect := range effects {
		switch e := effect.(type) {
		case combobox.ScrollIntoView:
			m.Listbox.scrollTo(e.Index)
		case combobox.MoveCaret:
			if e.Position == combobox.CaretStart {
				m.Input.CursorStart()
			} else {
				m.Input.CursorEnd()
			}
		case combobox.ReleaseFocus:
			m.focus = focusConfirm
			m.Input.Blur()
		case combobox.Commit:
			m.result = e.Value
			if m.exitOnCommit {
				m.accepted = true
				m.quitting = true
				cmds = append(cmds, tea.Quit)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m AppModel) accept() (tea.Model, tea.Cmd) {
	m.result = m.Combobox.State().Value
	m.accepted = true
	m.quitting = true
	return m, tea.Quit
}

func (m *AppModel) resize() {
	m.Input.Width = max(m.contentWidth()-8, 10)
	m.Help.Width = m.contentWidth()
	m.refreshListbox()
}

func (m *AppModel) refreshListbox() {
	snap := m.Combobox.Snapshot(m.labels)
	hint := ""
	if snap.Listbox.Empty != "" {
		if s, ok := catalog.Suggest(snap.Value, m.Combobox.Options()); ok {
			hint = fmt.Sprintf("Did you mean %s?", s)
		}
	}
	m.Listbox.setContent(snap, hint, m.contentWidth())
}

func (m AppModel) contentWidth() int {
	return max(m.Width, MinTerminalWidth) - 4
}

// buttonRow is the terminal row of the Confirm button.
func (m AppModel) buttonRow() int {
	row := containerTop + labelRows + fieldRows
	if m.Combobox.State().Open {
		row += m.Listbox.height()
	}
	return row + 1 // blank line
}

// onButton reports whether column x lies on the rendered Confirm button.
func (m AppModel) onButton(x int) bool {
	width := lipgloss.Width(RenderButton(confirmLabel, m.focus == focusConfirm))
	return x >= containerLeft && x < containerLeft+width
}

// View renders the select screen
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	state := m.Combobox.State()
	snap := m.Combobox.Snapshot(m.labels)

	var b strings.Builder
	b.WriteString(LabelStyle.Render(snap.Label))
	b.WriteString("\n")
	b.WriteString(InputBoxStyle(m.contentWidth(), m.focus == focusField && state.Focused).Render(m.Input.View()))
	b.WriteString("\n")
	if state.Open {
		b.WriteString(m.Listbox.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(RenderButton(confirmLabel, m.focus == focusConfirm))
	if len(m.recent) > 0 {
		b.WriteString("\n\n")
		b.WriteString(SubtitleStyle.Render("Recent: " + strings.Join(m.recent, ", ")))
	}

	var helpText string
	if m.focus == focusConfirm {
		helpText = m.Help.View(m.ConfirmKeys)
	} else {
		helpText = m.Help.View(m.FieldKeys)
	}

	return RenderApplicationContainer(b.String(), helpText, max(m.Width, MinTerminalWidth), m.Height)
}
