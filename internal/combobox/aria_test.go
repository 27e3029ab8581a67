package combobox

import "testing"

func TestSnapshotClosed(t *testing.T) {
	cb := New(starters)
	snap := cb.Snapshot(DefaultLabels())

	if snap.Role != "combobox" || snap.Autocomplete != "list" {
		t.Errorf("Role/Autocomplete = %q/%q, want combobox/list", snap.Role, snap.Autocomplete)
	}
	if snap.Controls != "dropdown-list" || snap.Listbox.ID != "dropdown-list" {
		t.Errorf("Controls = %q, Listbox.ID = %q; want dropdown-list", snap.Controls, snap.Listbox.ID)
	}
	if snap.Expanded || snap.Listbox.Visible {
		t.Error("closed combobox should not be expanded")
	}
	if snap.ActiveDescendant != "" {
		t.Errorf("ActiveDescendant = %q, want empty", snap.ActiveDescendant)
	}
	if len(snap.Listbox.Options) != len(starters) {
		t.Errorf("len(Options) = %d, want %d", len(snap.Listbox.Options), len(starters))
	}
}

func TestSnapshotActiveOption(t *testing.T) {
	cb := New(starters)
	cb.Dispatch(FocusEvent{})
	cb.Dispatch(KeyEvent{Key: KeyArrowDown})
	cb.Dispatch(KeyEvent{Key: KeyArrowDown})

	snap := cb.Snapshot(Labels{})

	if !snap.Expanded {
		t.Error("aria-expanded should be true after ArrowDown")
	}
	if want := OptionID("dropdown-list", 1); snap.ActiveDescendant != want {
		t.Errorf("ActiveDescendant = %q, want %q", snap.ActiveDescendant, want)
	}

	selected := 0
	for i, opt := range snap.Listbox.Options {
		if opt.Role != "option" {
			t.Errorf("Options[%d].Role = %q, want option", i, opt.Role)
		}
		if opt.Selected {
			selected++
			if opt.Text != "Charmander" {
				t.Errorf("selected option = %q, want Charmander", opt.Text)
			}
		}
	}
	if selected != 1 {
		t.Errorf("%d options have aria-selected, want exactly 1", selected)
	}
}

func TestSnapshotCollapsedHidesActiveOption(t *testing.T) {
	cb := New(starters)
	cb.Dispatch(FocusEvent{})
	cb.Dispatch(KeyEvent{Key: KeyArrowDown})
	cb.Dispatch(KeyEvent{Key: KeyArrowDown})
	cb.Dispatch(BlurEvent{})

	snap := cb.Snapshot(DefaultLabels())
	if snap.Expanded {
		t.Fatal("aria-expanded should be false after Blur")
	}
	if snap.ActiveDescendant != "" {
		t.Errorf("ActiveDescendant = %q, want empty while collapsed", snap.ActiveDescendant)
	}
	for i, opt := range snap.Listbox.Options {
		if opt.Selected {
			t.Errorf("Options[%d] (%s) has aria-selected while collapsed", i, opt.Text)
		}
	}

	// Alt+Down shows the kept cursor again
	cb.Dispatch(FocusEvent{})
	cb.Dispatch(KeyEvent{Key: KeyArrowDown, Alt: true})
	if want := OptionID("dropdown-list", 1); cb.Snapshot(DefaultLabels()).ActiveDescendant != want {
		t.Errorf("ActiveDescendant after Alt+Down = %q, want %q", cb.Snapshot(DefaultLabels()).ActiveDescendant, want)
	}
}

func TestSnapshotNoMatches(t *testing.T) {
	cb := New(starters)
	cb.Dispatch(FocusEvent{})
	cb.Dispatch(ChangeEvent{Value: "Agumon"})

	labels := DefaultLabels()
	labels.EmptyText = "Nothing here"
	snap := cb.Snapshot(labels)

	if len(snap.Listbox.Options) != 0 {
		t.Errorf("Options = %v, want none", snap.Listbox.Options)
	}
	if snap.Listbox.Empty != "Nothing here" {
		t.Errorf("Empty = %q, want %q", snap.Listbox.Empty, "Nothing here")
	}
	if !snap.Expanded {
		t.Error("listbox should be expanded to show the informational item")
	}
}

func TestLabelsDefaults(t *testing.T) {
	got := Labels{Label: "Pick"}.withDefaults()
	want := DefaultLabels()
	want.Label = "Pick"
	if got != want {
		t.Errorf("withDefaults() = %+v, want %+v", got, want)
	}
}
