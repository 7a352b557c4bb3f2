package testutil

import (
	"path"
	"sort"
	"testing"

	"github.com/arthur-debert/iconrules/pkg/filesystem"
)

// NewMemFS returns an in-memory filesystem holding files, keyed by
// absolute slash-separated path. Entries ending in "/" create directories.
func NewMemFS(t *testing.T, files map[string]string) filesystem.FS {
	t.Helper()

	fsys := filesystem.NewMemory()
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if name[len(name)-1] == '/' {
			if err := fsys.MkdirAll(name, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", name, err)
			}
			continue
		}
		if err := fsys.MkdirAll(path.Dir(name), 0755); err != nil {
			t.Fatalf("Failed to create parent of %s: %v", name, err)
		}
		if err := fsys.WriteFile(name, []byte(files[name]), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return fsys
}
