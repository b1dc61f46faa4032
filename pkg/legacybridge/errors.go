// Package legacybridge exposes legacy command catalogs and sparse result
// tables to modern callers.
package legacybridge

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file could not be parsed.
var ErrInvalidFormat = errors.New("invalid format")

// LoadError represents an error while loading a legacy file.
type LoadError struct {
	Path      string
	Component string // "environment", "plugins", "table"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in %q (%s): %v", e.Path, e.Component, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, component string, err error) *LoadError {
	return &LoadError{
		Path:      path,
		Component: component,
		Err:       err,
	}
}
