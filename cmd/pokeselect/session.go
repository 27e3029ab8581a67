package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/pokeselect/internal/catalog"
	"github.com/muurk/pokeselect/internal/combobox"
	"github.com/muurk/pokeselect/internal/config"
	"github.com/muurk/pokeselect/internal/logging"
	"github.com/muurk/pokeselect/internal/ui"
)

// session is what every picker command needs: the user's configuration, the
// option catalog and the labels resolved from both.
type session struct {
	registry *config.Registry
	catalog  *catalog.Catalog
	labels   combobox.Labels
}

func loadRegistry() (*config.Registry, error) {
	if configFile != "" {
		return config.LoadRegistryFrom(configFile)
	}
	return config.LoadRegistry()
}

func saveRegistry(r *config.Registry) error {
	if configFile != "" {
		return r.SaveTo(configFile)
	}
	return r.Save()
}

// loadSession loads the registry and catalog. Command-line flags win over
// preferences, which win over the catalog's own labels.
func loadSession(cmd *cobra.Command) (*session, error) {
	registry, err := loadRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	path := optionsFile
	if path == "" {
		path = registry.Preferences.OptionsFile
	}

	cat, err := catalog.Load(path)
	if err != nil {
		var catErr *catalog.CatalogError
		if errors.As(err, &catErr) {
			ui.NewPrinter(cmd.ErrOrStderr()).PrintError("Could not load options", catErr, catErr.Troubleshooting())
		}
		return nil, err
	}

	source := path
	if source == "" {
		source = "embedded"
	}
	logging.LogCatalog(cat.Name, source, len(cat.Options))

	return &session{
		registry: registry,
		catalog:  cat,
		labels:   registry.Preferences.Labels(cat.Labels),
	}, nil
}

// remember records value in the history and saves the registry. Failing to
// save is logged, not fatal: the selection itself already succeeded.
func (s *session) remember(value string) {
	if !s.registry.Preferences.RememberHistory {
		return
	}
	s.registry.RecordSelection(value, s.catalog.Name)
	if err := saveRegistry(s.registry); err != nil {
		logging.Warn("failed to save history", zap.Error(err))
	}
}
