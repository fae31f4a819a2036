package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Dir serves every *.yaml / *.yml file in a directory as one snapshot.
type Dir struct {
	path string
}

// NewDir creates a directory-backed snapshot source.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Path returns the watched directory.
func (d *Dir) Path() string {
	return d.path
}

// Files lists snapshot files in name order.
func (d *Dir) Files() ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("listing snapshot dir %s: %w", d.path, err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		files = append(files, filepath.Join(d.path, e.Name()))
	}
	slices.Sort(files)
	return files, nil
}

// Snapshots reads the whole directory. Files that fail to parse are logged
// and skipped; one broken file does not hide the rest.
// When two files carry the same character id the later file wins.
func (d *Dir) Snapshots(ctx context.Context) ([]Snapshot, error) {
	files, err := d.Files()
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]int, len(files))
	out := make([]Snapshot, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		snap, err := Load(path)
		if err != nil {
			slog.Warn("skipping snapshot", "file", path, "err", err)
			continue
		}
		if i, ok := byID[snap.CharacterID]; ok {
			out[i] = snap
			continue
		}
		byID[snap.CharacterID] = len(out)
		out = append(out, snap)
	}
	return out, nil
}
