// Package workspace implements the session-scoped document store: every
// session owns one directory, every document is a plain file inside it, and
// no operation can reach outside that boundary.
package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// WriteMode selects how Write treats an existing document.
type WriteMode string

const (
	// WriteCreateOnly fails if the document already exists. The existence
	// check and the create happen as one indivisible step so parallel tool
	// calls cannot both win the same name.
	WriteCreateOnly WriteMode = "create_only"
	// WriteOverwrite replaces the full content. Idempotent.
	WriteOverwrite WriteMode = "overwrite"
	// WriteAppend concatenates to existing content, creating if absent.
	WriteAppend WriteMode = "append"
)

const documentFilePerm = 0644

// Store provides document operations scoped to a single session workspace
// directory. Document names are validated before any storage access.
type Store struct {
	dir string
}

// NewStore returns a store rooted at the given workspace directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the workspace directory this store is bound to.
func (s *Store) Dir() string { return s.dir }

// List returns the names of all documents in the workspace, sorted
// lexicographically. An empty workspace yields an empty slice, not an error.
// Subdirectories and dot-prefixed temp files are skipped.
func (s *Store) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether a document is present in the workspace.
func (s *Store) Exists(_ context.Context, name string) (bool, error) {
	if err := ValidateDocumentName(name); err != nil {
		return false, err
	}
	if _, err := os.Stat(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &StorageError{Op: "stat", Name: name, Err: err}
	}
	return true, nil
}

// Read returns a document's content unchanged.
func (s *Store) Read(_ context.Context, name string) (string, error) {
	if err := ValidateDocumentName(name); err != nil {
		return "", err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, name)
		}
		return "", &StorageError{Op: "read", Name: name, Err: err}
	}
	return string(data), nil
}

// Write stores content under name according to mode. Writes are
// all-or-nothing per document: a failed write never leaves a partially
// overwritten file behind.
func (s *Store) Write(_ context.Context, name, content string, mode WriteMode) error {
	if err := ValidateDocumentName(name); err != nil {
		return err
	}
	path := filepath.Join(s.dir, name)

	switch mode {
	case WriteCreateOnly:
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, documentFilePerm)
		if err != nil {
			if os.IsExist(err) {
				return fmt.Errorf("%w: %s", ErrDocumentExists, name)
			}
			return &StorageError{Op: "create", Name: name, Err: err}
		}
		if _, err := f.WriteString(content); err != nil {
			_ = f.Close()
			_ = os.Remove(path) // Best effort: do not leave a partial document
			return &StorageError{Op: "create", Name: name, Err: err}
		}
		if err := f.Close(); err != nil {
			return &StorageError{Op: "create", Name: name, Err: err}
		}
		return nil

	case WriteOverwrite:
		return s.writeAtomic("overwrite", path, name, content)

	case WriteAppend:
		// Read-concatenate-rename rather than O_APPEND, so a failed append
		// cannot leave a partial suffix on the document.
		current, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return &StorageError{Op: "append", Name: name, Err: err}
		}
		return s.writeAtomic("append", path, name, string(current)+content)

	default:
		return fmt.Errorf("unknown write mode: %q", mode)
	}
}

// InsertLines inserts content as a new line at a 1-indexed line number of an
// existing document. The valid range is 1 through line count + 1 (append).
// Implemented as read-modify-overwrite so the all-or-nothing write rule holds.
func (s *Store) InsertLines(ctx context.Context, name string, lineNumber int, content string) error {
	current, err := s.Read(ctx, name)
	if err != nil {
		return err
	}

	lines := strings.SplitAfter(current, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if lineNumber < 1 || lineNumber > len(lines)+1 {
		return fmt.Errorf("line number %d is out of range (document has %d lines)", lineNumber, len(lines))
	}

	updated := make([]string, 0, len(lines)+1)
	updated = append(updated, lines[:lineNumber-1]...)
	updated = append(updated, content+"\n")
	updated = append(updated, lines[lineNumber-1:]...)

	return s.Write(ctx, name, strings.Join(updated, ""), WriteOverwrite)
}

// writeAtomic replaces a document's content in one step: the new content is
// written to a temp file in the same directory and renamed over the target.
func (s *Store) writeAtomic(op, path, name, content string) error {
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return &StorageError{Op: op, Name: name, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return &StorageError{Op: op, Name: name, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &StorageError{Op: op, Name: name, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &StorageError{Op: op, Name: name, Err: err}
	}
	return nil
}
