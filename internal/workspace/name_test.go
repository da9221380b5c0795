package workspace

import (
	"context"
	"errors"
	"testing"
)

func TestValidateDocumentName(t *testing.T) {
	valid := []string{
		"outline.md",
		"draft.md",
		"final response.txt",
		"notes-2024.md",
		"a",
	}
	for _, name := range valid {
		if err := ValidateDocumentName(name); err != nil {
			t.Errorf("Expected %q to be valid, got %v", name, err)
		}
	}

	invalid := []string{
		"",
		"..",
		"../evil.md",
		"a/../b.md",
		"sub/dir.md",
		`sub\dir.md`,
		"/etc/passwd",
		"..hidden.md",
		".tmp-123",
	}
	for _, name := range invalid {
		err := ValidateDocumentName(name)
		if !errors.Is(err, ErrInvalidDocumentName) {
			t.Errorf("Expected %q to fail with ErrInvalidDocumentName, got %v", name, err)
		}
	}
}

func TestInvalidNamesNeverReachStorage(t *testing.T) {
	// A store pointed at a nonexistent directory errors on any real I/O, so
	// getting ErrInvalidDocumentName back proves validation ran first.
	store := NewStore("/nonexistent/workspace")
	ctx := context.Background()

	if _, err := store.Read(ctx, "../escape.md"); !errors.Is(err, ErrInvalidDocumentName) {
		t.Errorf("Read: expected ErrInvalidDocumentName, got %v", err)
	}
	if err := store.Write(ctx, "../escape.md", "x", WriteOverwrite); !errors.Is(err, ErrInvalidDocumentName) {
		t.Errorf("Write: expected ErrInvalidDocumentName, got %v", err)
	}
	if _, err := store.Exists(ctx, "../escape.md"); !errors.Is(err, ErrInvalidDocumentName) {
		t.Errorf("Exists: expected ErrInvalidDocumentName, got %v", err)
	}
}
