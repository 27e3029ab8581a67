// Package catalog provides the option sets offered by the combobox.
//
// The default catalog (Generation I Pokémon in Pokédex order) is embedded in
// the binary and parsed once. Custom catalogs can be loaded from disk; the
// format is chosen by file extension:
//
//   - .yaml, .yml: mapping with an "options" list, or a bare list
//   - .json: object with an "options" array, or a bare array
//   - .toml: document with an "options" array
//   - .txt, .list or no extension: one option per line, "#" starts a comment
//
// Structured formats may also carry the accessible labels of the widget:
//
//	name: berries
//	label: Select a berry
//	listbox_label: Berries
//	empty_text: No berry was found
//	options:
//	  - Cheri
//	  - Chesto
//
// Option text is trimmed and blank entries are dropped. Order is preserved and
// duplicates are kept, since the combobox never reorders or deduplicates.
package catalog
