package space

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/firefly-engineering/spaces/internal/logging"
	"github.com/firefly-engineering/spaces/internal/system"
)

// Index maps an owner to the space directory names found under it.
type Index map[string][]string

// For returns the space directory names recorded for owner.
func (idx Index) For(owner string) []string {
	return idx[owner]
}

// Owners returns the owners in the index, sorted.
func (idx Index) Owners() []string {
	owners := make([]string, 0, len(idx))
	for owner := range idx {
		owners = append(owners, owner)
	}
	sort.Strings(owners)
	return owners
}

// Count returns the total number of spaces in the index.
func (idx Index) Count() int {
	n := 0
	for _, dirs := range idx {
		n += len(dirs)
	}
	return n
}

// ScanIndex walks root two levels deep: owner directories, then the space
// directories inside them. Files are ignored. A missing root yields an
// empty index.
func ScanIndex(fsys system.FileSystem, root string) (Index, error) {
	idx := make(Index)

	owners, err := fsys.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return idx, nil
		}
		return nil, fmt.Errorf("failed to read spaces directory %s: %w", root, err)
	}

	for _, owner := range owners {
		if !owner.IsDir() {
			continue
		}
		ownerDir := filepath.Join(root, owner.Name())
		entries, err := fsys.ReadDir(ownerDir)
		if err != nil {
			logging.Warn("skipping unreadable owner directory", "path", ownerDir, "error", err)
			continue
		}

		spaces := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() {
				spaces = append(spaces, entry.Name())
			}
		}
		sort.Strings(spaces)
		idx[owner.Name()] = spaces
	}

	return idx, nil
}
