package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCatalog is returned when a catalog contains no options.
	ErrEmptyCatalog = errors.New("catalog has no options")
	// ErrUnsupportedFormat is returned for file extensions no decoder handles.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// ErrorType represents the category of a catalog loading failure
type ErrorType int

const (
	// ErrTypeRead indicates the file could not be read
	ErrTypeRead ErrorType = iota
	// ErrTypeParse indicates malformed file contents
	ErrTypeParse
	// ErrTypeFormat indicates an unsupported file extension
	ErrTypeFormat
	// ErrTypeEmpty indicates a well-formed file without options
	ErrTypeEmpty
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeRead:
		return "Read Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeFormat:
		return "Format Error"
	case ErrTypeEmpty:
		return "Empty Catalog"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// CatalogError describes why a catalog file could not be loaded
type CatalogError struct {
	Type ErrorType
	Path string
	Err  error
}

func (e *CatalogError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Type, e.Path, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// Troubleshooting returns hints suitable for an error box.
func (e *CatalogError) Troubleshooting() []string {
	switch e.Type {
	case ErrTypeRead:
		return []string{
			"Check that the file exists and is readable",
			"Paths are resolved relative to the current directory",
		}
	case ErrTypeParse:
		return []string{
			"Validate the file with a YAML, JSON or TOML linter",
			"Structured files need an \"options\" list of strings",
		}
	case ErrTypeFormat:
		return []string{
			"Use one of: .yaml, .yml, .json, .toml, .txt, .list",
		}
	case ErrTypeEmpty:
		return []string{
			"Add at least one non-blank option to the file",
		}
	default:
		return nil
	}
}

func newError(typ ErrorType, path string, err error) *CatalogError {
	return &CatalogError{Type: typ, Path: path, Err: err}
}
