package workspace

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateDocumentName ensures a caller-supplied document name cannot escape
// its workspace. Names are plain file names: no separators, no traversal
// sequences, no absolute paths. Names starting with '.' are reserved for
// internal temp files and rejected as well.
func ValidateDocumentName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDocumentName)
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("%w: absolute path not allowed: %s", ErrInvalidDocumentName, name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: path separators not allowed: %s", ErrInvalidDocumentName, name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: path traversal not allowed: %s", ErrInvalidDocumentName, name)
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: names starting with '.' are reserved: %s", ErrInvalidDocumentName, name)
	}
	return nil
}
