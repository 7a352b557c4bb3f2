// Package facets provides the project facet tags that conditions use as a
// precondition (for example "spring" or "maven"). Facet names are lower-cased.
package facets

import (
	"context"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/arthur-debert/iconrules/pkg/filesystem"
	"github.com/arthur-debert/iconrules/pkg/logging"
)

// Set is a set of lower-cased facet names.
type Set map[string]struct{}

// NewSet builds a Set from names, lower-casing them.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			s[n] = struct{}{}
		}
	}
	return s
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Source answers the facets of a project. It is queried once per lookup.
type Source interface {
	Facets() Set
}

// Static is a Source with a fixed facet list, typically from settings.
type Static Set

// Facets implements Source.
func (s Static) Facets() Set {
	return Set(s)
}

// markers maps a file found in the project root to the facet it implies.
var markers = map[string]string{
	"pom.xml":          "maven",
	"build.gradle":     "gradle",
	"build.gradle.kts": "gradle",
	"package.json":     "npm",
	"go.mod":           "go",
	"cargo.toml":       "cargo",
	"pyproject.toml":   "python",
	"pubspec.yaml":     "dart",
	"angular.json":     "angular",
	"chart.yaml":       "helm",
}

// Detector derives facets from marker files in the project root. Detect
// scans the root once; until then Facets answers the extra facets only.
type Detector struct {
	fs       filesystem.FS
	basePath string
	extra    Set

	set atomic.Pointer[Set]
}

// NewDetector returns a Detector for the project at basePath. extra facets
// are always included.
func NewDetector(fs filesystem.FS, basePath string, extra ...string) *Detector {
	return &Detector{fs: fs, basePath: basePath, extra: NewSet(extra...)}
}

// Facets implements Source. It never touches the filesystem.
func (d *Detector) Facets() Set {
	if s := d.set.Load(); s != nil {
		return *s
	}
	return d.extra
}

// Detect lists the project root and publishes the facets found there
// together with the extra ones. An unreadable root leaves the extra facets.
func (d *Detector) Detect(ctx context.Context) error {
	logger := logging.GetLogger("facets")
	if err := ctx.Err(); err != nil {
		return err
	}

	set := make(Set, len(d.extra))
	for f := range d.extra {
		set[f] = struct{}{}
	}

	entries, err := d.fs.ReadDir(d.basePath)
	if err != nil {
		logger.Warn().Err(err).Str("project", d.basePath).Msg("Cannot list project root, using configured facets only")
		d.set.Store(&set)
		return nil
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if facet, ok := markers[strings.ToLower(e.Name())]; ok {
			set[facet] = struct{}{}
		}
	}

	logger.Debug().
		Str("project", filepath.Base(d.basePath)).
		Int("count", len(set)).
		Msg("Detected project facets")
	d.set.Store(&set)
	return nil
}
