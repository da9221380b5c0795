package workspace

import (
	"context"
	"strings"
)

// Snapshot text is injected verbatim into agent prompts, so the format is
// part of the contract and kept stable.
const (
	snapshotEmpty  = "No files written."
	snapshotHeader = "\nBelow are files your team has written to the directory:\n"
)

// Snapshot renders a point-in-time, human-readable listing of the
// workspace's documents, sorted so repeated snapshots of an unchanged
// workspace are identical. It is a pure read: another agent may write
// between snapshot and use, so consumers treat it as best-effort context,
// not a transactional view.
func (s *Store) Snapshot(ctx context.Context) (string, error) {
	names, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return snapshotEmpty, nil
	}

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = " - " + name
	}
	return snapshotHeader + strings.Join(lines, "\n"), nil
}
