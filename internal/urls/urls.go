package urls

// ComboboxPattern is the WAI-ARIA Authoring Practices combobox pattern that
// the picker's keyboard behaviour follows.
const ComboboxPattern = "https://www.w3.org/WAI/ARIA/apg/patterns/combobox/"

// ListAutocompleteExample is the APG "list autocomplete" combobox example,
// the closest match to the picker's filtering behaviour.
const ListAutocompleteExample = "https://www.w3.org/WAI/ARIA/apg/patterns/combobox/examples/combobox-autocomplete-list/"

// ListboxPattern describes the popup listbox and its option roles.
const ListboxPattern = "https://www.w3.org/WAI/ARIA/apg/patterns/listbox/"

// XDGBaseDirectory is the specification for where the config file lives.
const XDGBaseDirectory = "https://specifications.freedesktop.org/basedir-spec/latest/"
