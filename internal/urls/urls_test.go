package urls

import (
	"net/url"
	"testing"
)

func TestURLsAreAbsolute(t *testing.T) {
	for _, raw := range []string{ComboboxPattern, ListAutocompleteExample, ListboxPattern, XDGBaseDirectory} {
		u, err := url.Parse(raw)
		if err != nil {
			t.Errorf("url.Parse(%q) error = %v", raw, err)
			continue
		}
		if u.Scheme != "https" || u.Host == "" {
			t.Errorf("%q is not an absolute https URL", raw)
		}
	}
}
