package preferences

import (
	"errors"
	"fmt"
)

var (
	ErrDirectoryCreation  = errors.New("failed to create data directory")
	ErrUnknownRootElement = errors.New("unknown preferences root element")
	ErrMissingVersion     = errors.New("preferences version element missing")
	ErrUnsupportedVersion = errors.New("unsupported preferences version")
	ErrFileDeletion       = errors.New("failed to delete existing preferences file")
	ErrUnknownGroup       = errors.New("unknown editable preferences group")
)

// PersistenceError represents a failed read or write of a preferences document
type PersistenceError struct {
	Operation string
	Path      string
	Err       error
}

func (e *PersistenceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("preferences %s failed for file %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("preferences %s failed: %v", e.Operation, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError creates a new persistence error
func NewPersistenceError(operation, path string, err error) *PersistenceError {
	return &PersistenceError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}
