package catalog

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/muurk/pokeselect/internal/combobox"
)

//go:embed catalogs/pokemon.yaml
var pokemonYAML []byte

// Catalog is a named option set together with the labels it is presented with.
type Catalog struct {
	Name    string
	Labels  combobox.Labels
	Options []string
}

// catalogFile is the on-disk layout shared by every structured format.
type catalogFile struct {
	Name         string   `yaml:"name" json:"name" toml:"name"`
	Label        string   `yaml:"label" json:"label" toml:"label"`
	ListboxLabel string   `yaml:"listbox_label" json:"listbox_label" toml:"listbox_label"`
	EmptyText    string   `yaml:"empty_text" json:"empty_text" toml:"empty_text"`
	Options      []string `yaml:"options" json:"options" toml:"options"`
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
	defaultCatalogErr  error
)

// Default returns the embedded Pokémon catalog. It panics if the embedded
// file is malformed, which is a build defect.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = Parse("pokemon.yaml", pokemonYAML)
	})
	if defaultCatalogErr != nil {
		panic(fmt.Sprintf("embedded catalog: %v", defaultCatalogErr))
	}
	return defaultCatalog
}

// Load reads a catalog from path. An empty path returns the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(ErrTypeRead, path, err)
	}

	cat, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	if cat.Name == "" {
		cat.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return cat, nil
}

// Parse decodes data using the format implied by name's extension.
func Parse(name string, data []byte) (*Catalog, error) {
	var (
		file catalogFile
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		file, err = decodeYAML(data)
	case ".json":
		file, err = decodeJSON(data)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".txt", ".list", "":
		file, err = decodeLines(data)
	default:
		return nil, newError(ErrTypeFormat, name, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext))
	}
	if err != nil {
		return nil, newError(ErrTypeParse, name, err)
	}

	options := clean(file.Options)
	if len(options) == 0 {
		return nil, newError(ErrTypeEmpty, name, ErrEmptyCatalog)
	}

	return &Catalog{
		Name: file.Name,
		Labels: combobox.Labels{
			Label:        file.Label,
			ListboxLabel: file.ListboxLabel,
			EmptyText:    file.EmptyText,
		},
		Options: options,
	}, nil
}

func decodeYAML(data []byte) (catalogFile, error) {
	var file catalogFile

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return file, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(root.Content) == 0 {
		return file, nil
	}

	if root.Content[0].Kind == yaml.SequenceNode {
		if err := root.Content[0].Decode(&file.Options); err != nil {
			return file, fmt.Errorf("failed to decode option list: %w", err)
		}
		return file, nil
	}
	if err := root.Content[0].Decode(&file); err != nil {
		return file, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return file, nil
}

func decodeJSON(data []byte) (catalogFile, error) {
	var file catalogFile

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &file.Options); err != nil {
			return file, fmt.Errorf("failed to decode option list: %w", err)
		}
		return file, nil
	}
	if err := json.Unmarshal(trimmed, &file); err != nil {
		return file, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return file, nil
}

func decodeLines(data []byte) (catalogFile, error) {
	var file catalogFile

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		file.Options = append(file.Options, line)
	}
	if err := scanner.Err(); err != nil {
		return file, fmt.Errorf("failed to read lines: %w", err)
	}
	return file, nil
}

func clean(options []string) []string {
	out := make([]string, 0, len(options))
	for _, option := range options {
		if option = strings.TrimSpace(option); option != "" {
			out = append(out, option)
		}
	}
	return out
}
