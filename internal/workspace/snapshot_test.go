package workspace

import (
	"context"
	"strings"
	"testing"
)

func TestSnapshot_Empty(t *testing.T) {
	store := newTestStore(t)

	snapshot, err := store.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if snapshot != "No files written." {
		t.Errorf("Expected empty-workspace marker, got %q", snapshot)
	}
}

func TestSnapshot_ListsDocuments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"outline.md", "draft.md"} {
		if err := store.Write(ctx, name, "x", WriteCreateOnly); err != nil {
			t.Fatalf("Write %s failed: %v", name, err)
		}
	}

	snapshot, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	want := "\nBelow are files your team has written to the directory:\n - draft.md\n - outline.md"
	if snapshot != want {
		t.Errorf("Snapshot format mismatch:\ngot  %q\nwant %q", snapshot, want)
	}
}

func TestSnapshot_Deterministic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"b.md", "a.md", "c.md"} {
		if err := store.Write(ctx, name, "x", WriteCreateOnly); err != nil {
			t.Fatalf("Write %s failed: %v", name, err)
		}
	}

	first, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	second, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	if first != second {
		t.Error("Repeated snapshots of an unchanged workspace differ")
	}
	if !strings.Contains(first, " - a.md\n - b.md\n - c.md") {
		t.Errorf("Expected sorted listing, got %q", first)
	}
}
