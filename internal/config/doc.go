// Package config stores pokeselect's preferences and selection history.
//
// The registry is a single YAML file, config.yaml, in $XDG_CONFIG_HOME/pokeselect
// (or ~/.config/pokeselect). It holds the picker labels, listbox height and
// custom options file, plus the most recent committed selections.
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    return err
//	}
//	registry.RecordSelection("Charmander", "pokemon")
//	return registry.Save()
//
// LoadRegistry loads the file once per process. Writes go through a
// temporary file and a rename under a package mutex.
package config
