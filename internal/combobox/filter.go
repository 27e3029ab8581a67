package combobox

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// folder is stateless for Fold, so a single instance can be shared.
var folder = cases.Fold()

// Fold returns the comparison key used for case-insensitive prefix matching.
func Fold(s string) string {
	return folder.String(norm.NFC.String(s))
}

// HasPrefix reports whether option starts with value, ignoring case.
func HasPrefix(option, value string) bool {
	return strings.HasPrefix(Fold(option), Fold(value))
}

// Filter returns the options whose text starts with value, case-insensitively.
// An empty value returns options unchanged. The input slice is never modified.
func Filter(value string, options []string) []string {
	if value == "" {
		return options
	}

	prefix := Fold(value)
	matches := make([]string, 0, len(options))
	for _, option := range options {
		if strings.HasPrefix(Fold(option), prefix) {
			matches = append(matches, option)
		}
	}
	return matches
}
