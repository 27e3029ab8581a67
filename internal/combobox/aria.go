package combobox

import "fmt"

// Labels holds the identifiers and accessible names used when rendering.
type Labels struct {
	InputID      string `yaml:"input_id" json:"input_id"`
	ListboxID    string `yaml:"listbox_id" json:"listbox_id"`
	Label        string `yaml:"label" json:"label"`
	ListboxLabel string `yaml:"listbox_label" json:"listbox_label"`
	EmptyText    string `yaml:"empty_text" json:"empty_text"`
}

// DefaultLabels returns the labels of the Pokémon picker.
func DefaultLabels() Labels {
	return Labels{
		InputID:      "pokemon-autocomplete",
		ListboxID:    "dropdown-list",
		Label:        "Select Pokemons",
		ListboxLabel: "Pokemons",
		EmptyText:    "No Pokemon was found",
	}
}

// withDefaults fills empty fields from DefaultLabels.
func (l Labels) withDefaults() Labels {
	d := DefaultLabels()
	if l.InputID == "" {
		l.InputID = d.InputID
	}
	if l.ListboxID == "" {
		l.ListboxID = d.ListboxID
	}
	if l.Label == "" {
		l.Label = d.Label
	}
	if l.ListboxLabel == "" {
		l.ListboxLabel = d.ListboxLabel
	}
	if l.EmptyText == "" {
		l.EmptyText = d.EmptyText
	}
	return l
}

// OptionID returns the element id of the option at index in listbox.
func OptionID(listboxID string, index int) string {
	return fmt.Sprintf("%s-option-%d", listboxID, index)
}

// Snapshot is the accessibility tree of the combobox: every attribute a
// renderer must expose for the current state.
type Snapshot struct {
	ID               string  `yaml:"id" json:"id"`
	Role             string  `yaml:"role" json:"role"`
	Label            string  `yaml:"label" json:"label"`
	Value            string  `yaml:"value" json:"value"`
	Focused          bool    `yaml:"focused" json:"focused"`
	Autocomplete     string  `yaml:"aria_autocomplete" json:"aria-autocomplete"`
	Controls         string  `yaml:"aria_controls" json:"aria-controls"`
	Expanded         bool    `yaml:"aria_expanded" json:"aria-expanded"`
	ActiveDescendant string  `yaml:"aria_activedescendant" json:"aria-activedescendant"`
	Listbox          Listbox `yaml:"listbox" json:"listbox"`
}

// Listbox is the popup half of a Snapshot.
type Listbox struct {
	ID      string   `yaml:"id" json:"id"`
	Role    string   `yaml:"role" json:"role"`
	Label   string   `yaml:"aria_label" json:"aria-label"`
	Visible bool     `yaml:"visible" json:"visible"`
	Options []Option `yaml:"options" json:"options"`
	// Empty is the informational item shown instead of options when nothing
	// matches. It is not an option and cannot be selected.
	Empty string `yaml:"empty,omitempty" json:"empty,omitempty"`
}

// Option is one rendered listbox entry.
type Option struct {
	ID       string `yaml:"id" json:"id"`
	Role     string `yaml:"role" json:"role"`
	Text     string `yaml:"text" json:"text"`
	Selected bool   `yaml:"aria_selected" json:"aria-selected"`
}

// Snapshot builds the accessibility tree for the current state.
func (c *Combobox) Snapshot(labels Labels) Snapshot {
	labels = labels.withDefaults()
	state := c.State()
	filtered := c.Filtered()

	snap := Snapshot{
		ID:           labels.InputID,
		Role:         "combobox",
		Label:        labels.Label,
		Value:        state.Value,
		Focused:      state.Focused,
		Autocomplete: "list",
		Controls:     labels.ListboxID,
		Expanded:     state.Open,
		Listbox: Listbox{
			ID:      labels.ListboxID,
			Role:    "listbox",
			Label:   labels.ListboxLabel,
			Visible: state.Open,
			Options: make([]Option, 0, len(filtered)),
		},
	}

	// A collapsed listbox has no rendered options to point at
	active := NoOption
	if state.Open && state.HasActive(len(filtered)) {
		active = state.Active
	}

	for i, text := range filtered {
		selected := i == active
		snap.Listbox.Options = append(snap.Listbox.Options, Option{
			ID:       OptionID(labels.ListboxID, i),
			Role:     "option",
			Text:     text,
			Selected: selected,
		})
	}

	if len(filtered) == 0 {
		snap.Listbox.Empty = labels.EmptyText
	}
	if active != NoOption {
		snap.ActiveDescendant = OptionID(labels.ListboxID, active)
	}

	return snap
}
