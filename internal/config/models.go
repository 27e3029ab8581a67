package config

import (
	"time"

	"github.com/muurk/pokeselect/internal/combobox"
)

// CurrentVersion is the only configuration file version this build reads.
const CurrentVersion = 1

// Registry represents the entire user configuration file.
type Registry struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
	History     []*Selection `yaml:"history,omitempty"` // Most recent first
}

// Preferences represents application-wide user preferences.
// Empty label fields fall back to the catalog's labels, then to the defaults.
type Preferences struct {
	Label           string `yaml:"label,omitempty"`         // Accessible name of the text field
	ListboxLabel    string `yaml:"listbox_label,omitempty"` // Accessible name of the listbox
	EmptyText       string `yaml:"empty_text,omitempty"`    // Informational item when nothing matches
	VisibleRows     int    `yaml:"visible_rows"`            // Listbox height in the terminal UI
	OptionsFile     string `yaml:"options_file,omitempty"`  // Custom catalog path (empty = built-in)
	RememberHistory bool   `yaml:"remember_history"`        // Record committed selections
	HistoryLimit    int    `yaml:"history_limit"`           // Maximum history entries kept
}

// Selection is one committed value.
type Selection struct {
	Value      string    `yaml:"value"`
	Catalog    string    `yaml:"catalog,omitempty"`
	SelectedAt time.Time `yaml:"selected_at"`
}

// Default preference values
const (
	DefaultVisibleRows  = 8
	DefaultHistoryLimit = 20
)

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     CurrentVersion,
		Preferences: defaultPreferences(),
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		VisibleRows:     DefaultVisibleRows,
		RememberHistory: true,
		HistoryLimit:    DefaultHistoryLimit,
	}
}

// Labels overlays the label preferences on base.
func (p *Preferences) Labels(base combobox.Labels) combobox.Labels {
	if p == nil {
		return base
	}
	if p.Label != "" {
		base.Label = p.Label
	}
	if p.ListboxLabel != "" {
		base.ListboxLabel = p.ListboxLabel
	}
	if p.EmptyText != "" {
		base.EmptyText = p.EmptyText
	}
	return base
}

// RecordSelection puts value at the front of the history, removing an older
// entry with the same value and trimming to the history limit.
// It does nothing when history is disabled.
func (r *Registry) RecordSelection(value, catalog string) {
	prefs := r.Preferences
	if prefs == nil {
		prefs = defaultPreferences()
		r.Preferences = prefs
	}
	if !prefs.RememberHistory || value == "" {
		return
	}

	entry := &Selection{
		Value:      value,
		Catalog:    catalog,
		SelectedAt: time.Now(),
	}

	history := make([]*Selection, 0, len(r.History)+1)
	history = append(history, entry)
	for _, s := range r.History {
		if s.Value == value && s.Catalog == catalog {
			continue
		}
		history = append(history, s)
	}

	limit := prefs.HistoryLimit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if len(history) > limit {
		history = history[:limit]
	}
	r.History = history
}

// RecentValues returns the distinct values in history for catalog, most
// recent first.
func (r *Registry) RecentValues(catalog string) []string {
	var values []string
	seen := make(map[string]bool)
	for _, s := range r.History {
		if s.Catalog != catalog || seen[s.Value] {
			continue
		}
		seen[s.Value] = true
		values = append(values, s.Value)
	}
	return values
}

// ClearHistory removes every recorded selection.
func (r *Registry) ClearHistory() {
	r.History = nil
}
