package enablers

import (
	"context"
	"path"
	"strings"
	"sync/atomic"

	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/filesystem"
	"github.com/arthur-debert/iconrules/pkg/logging"
	"github.com/arthur-debert/iconrules/pkg/paths"
)

const (
	gitModulesFile = ".gitmodules"
	// maxSubmoduleDepth bounds the nested .gitmodules walk.
	maxSubmoduleDepth = 32
)

// gitSubmoduleFolder recognises the folders of git submodules, nested
// submodules included.
type gitSubmoduleFolder struct {
	fs       filesystem.FS
	basePath string
	folders  atomic.Pointer[map[string]struct{}]
}

func newGitSubmoduleFolder(fs filesystem.FS, basePath string) Enabler {
	return &gitSubmoduleFolder{fs: fs, basePath: basePath}
}

func (g *gitSubmoduleFolder) Init(ctx context.Context) error {
	logger := logging.GetLogger("enablers.git_submodule")

	found := make(map[string]struct{})
	base := strings.TrimSuffix(strings.ReplaceAll(g.basePath, `\`, "/"), "/")
	if err := g.collect(ctx, base, found, 0); err != nil {
		return err
	}

	g.folders.Store(&found)
	logger.Info().Str("project", g.basePath).Int("submodules", len(found)).Msg("Found git submodule folders")
	return nil
}

func (g *gitSubmoduleFolder) collect(ctx context.Context, folder string, found map[string]struct{}, depth int) error {
	if depth >= maxSubmoduleDepth {
		logger := logging.GetLogger("enablers.git_submodule")
		logger.Warn().
			Str("folder", folder).
			Msg("Git submodules tree is too deep, ignoring deeper modules")
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := g.fs.ReadFile(path.Join(folder, gitModulesFile))
	if err != nil {
		if filesystem.Exists(g.fs, path.Join(folder, gitModulesFile)) {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s in %s", gitModulesFile, folder)
		}
		return nil
	}

	for _, line := range strings.Split(string(data), "\n") {
		rel, ok := submodulePath(line)
		if !ok {
			continue
		}
		sub := path.Join(folder, rel)
		key := paths.Normalize(sub)
		if _, seen := found[key]; seen {
			continue
		}
		found[key] = struct{}{}
		if err := g.collect(ctx, sub, found, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (g *gitSubmoduleFolder) Verify(p string) bool {
	folders := g.folders.Load()
	if folders == nil {
		return false
	}
	_, ok := (*folders)[paths.Normalize(p)]
	return ok
}

func (g *gitSubmoduleFolder) Terminal() bool { return true }

// submodulePath extracts the value of a "path = x" line of .gitmodules.
func submodulePath(line string) (string, bool) {
	key, value, ok := strings.Cut(line, "=")
	if !ok || strings.TrimSpace(key) != "path" {
		return "", false
	}
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}
