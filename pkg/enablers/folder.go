package enablers

import (
	"context"
	"path"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/arthur-debert/iconrules/pkg/filesystem"
	"github.com/arthur-debert/iconrules/pkg/logging"
	"github.com/arthur-debert/iconrules/pkg/paths"
)

// folderEnabler looks for marker files in the project root and in its
// level-1 sub-folders. Folders holding the markers become enabled.
//
// In "in folder" mode a path is enabled when it is one of those folders or
// lies below one. In exact mode (terminal) the path must be the folder
// itself.
type folderEnabler struct {
	name       string
	fs         filesystem.FS
	basePath   string
	markers    []string
	requireAll bool
	exact      bool

	folders atomic.Pointer[[]string]
}

func newFolderEnabler(name string, fs filesystem.FS, basePath string, markers []string, requireAll, exact bool) *folderEnabler {
	return &folderEnabler{
		name:       name,
		fs:         fs,
		basePath:   basePath,
		markers:    markers,
		requireAll: requireAll,
		exact:      exact,
	}
}

func (f *folderEnabler) Init(ctx context.Context) error {
	logger := logging.GetLogger("enablers.folder")

	base := strings.TrimSuffix(strings.ReplaceAll(f.basePath, `\`, "/"), "/")
	candidates := []string{base}
	entries, err := f.fs.ReadDir(base)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			candidates = append(candidates, path.Join(base, e.Name()))
		}
	}

	var enabled []string
	for _, dir := range candidates {
		if err := ctx.Err(); err != nil {
			return err
		}
		if f.holdsMarkers(dir) {
			enabled = append(enabled, paths.Normalize(dir))
		}
	}
	sort.Strings(enabled)

	f.folders.Store(&enabled)
	logger.Debug().
		Str("enabler", f.name).
		Str("project", f.basePath).
		Strs("folders", enabled).
		Msg("Enabler initialised")
	return nil
}

func (f *folderEnabler) holdsMarkers(dir string) bool {
	for _, marker := range f.markers {
		exists := filesystem.Exists(f.fs, path.Join(dir, marker))
		if f.requireAll && !exists {
			return false
		}
		if !f.requireAll && exists {
			return true
		}
	}
	return f.requireAll
}

func (f *folderEnabler) Verify(p string) bool {
	folders := f.folders.Load()
	if folders == nil {
		return false
	}
	p = strings.TrimSuffix(paths.Normalize(p), "/")
	for _, dir := range *folders {
		if p == dir {
			return true
		}
		if !f.exact && strings.HasPrefix(p, dir+"/") {
			return true
		}
	}
	return false
}

func (f *folderEnabler) Terminal() bool { return f.exact }
