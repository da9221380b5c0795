package workspace

import (
	"errors"
	"fmt"
)

// Sentinel errors for document operations. Callers match them with errors.Is.
var (
	// ErrDocumentNotFound indicates the named document is absent from the workspace
	ErrDocumentNotFound = errors.New("document not found")
	// ErrDocumentExists indicates a create-only write hit an existing document
	ErrDocumentExists = errors.New("document already exists")
	// ErrInvalidDocumentName indicates a name that could escape the workspace boundary
	ErrInvalidDocumentName = errors.New("invalid document name")
)

// StorageError wraps an I/O-level failure (permission denied, disk full,
// unreachable path) with the operation and document it occurred on.
type StorageError struct {
	Op   string
	Name string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("workspace %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("workspace %s %s: %v", e.Op, e.Name, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
