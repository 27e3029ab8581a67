package catalog

import "github.com/sahilm/fuzzy"

// Suggest returns the option that best fuzzy-matches value, for use as a
// "did you mean" hint when the prefix filter finds nothing. It reports false
// when value is empty or nothing matches at all.
func Suggest(value string, options []string) (string, bool) {
	if value == "" {
		return "", false
	}
	matches := fuzzy.Find(value, options)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}
