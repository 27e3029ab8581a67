// Package urls provides centralized constants for the reference URLs shown
// in command help and error output.
//
// Usage:
//
//	import "github.com/muurk/pokeselect/internal/urls"
//
//	fmt.Printf("Keyboard interaction follows: %s\n", urls.ComboboxPattern)
package urls
