package enablers

import (
	"context"
	"fmt"
	"sort"

	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/filesystem"
	"github.com/arthur-debert/iconrules/pkg/logging"
	"github.com/arthur-debert/iconrules/pkg/registry"
)

// Type names an enabler kind.
type Type string

const (
	GitSubmoduleFolder Type = "git_submodule_folder"
	HelmFolder         Type = "helm_folder"
	InAngularFolder    Type = "in_angular_folder"
	InFlutterFolder    Type = "in_flutter_folder"
	InGraphQLFolder    Type = "in_graphql_folder"
	InHelmFolder       Type = "in_helm_folder"
	InWritersideFolder Type = "in_writerside_folder"
)

// Enabler is an external predicate a condition can delegate to.
type Enabler interface {
	// Init inspects the project. It may be called again to refresh.
	Init(ctx context.Context) error
	// Verify reports whether the lower-cased absolute path is enabled.
	Verify(path string) bool
	// Terminal reports whether a successful Verify decides the condition.
	Terminal() bool
}

// Factory builds an enabler for the project rooted at basePath.
type Factory func(fs filesystem.FS, basePath string) Enabler

var factories = registry.New[Factory]()

func init() {
	registry.MustRegister(factories, string(GitSubmoduleFolder), Factory(newGitSubmoduleFolder))
	registry.MustRegister(factories, string(HelmFolder), Factory(func(fs filesystem.FS, base string) Enabler {
		return newFolderEnabler("helm folder icon", fs, base, helmMarkers, true, true)
	}))
	registry.MustRegister(factories, string(InAngularFolder), Factory(func(fs filesystem.FS, base string) Enabler {
		return newFolderEnabler("angular icons", fs, base, []string{"angular.json"}, true, false)
	}))
	registry.MustRegister(factories, string(InFlutterFolder), Factory(newFlutter))
	registry.MustRegister(factories, string(InGraphQLFolder), Factory(func(fs filesystem.FS, base string) Enabler {
		return newFolderEnabler("graphql icons", fs, base, graphQLMarkers, false, false)
	}))
	registry.MustRegister(factories, string(InHelmFolder), Factory(func(fs filesystem.FS, base string) Enabler {
		return newFolderEnabler("helm icons", fs, base, helmMarkers, true, false)
	}))
	registry.MustRegister(factories, string(InWritersideFolder), Factory(func(fs filesystem.FS, base string) Enabler {
		return newFolderEnabler("writerside icons", fs, base, []string{"writerside.cfg"}, true, false)
	}))
}

var (
	helmMarkers    = []string{"Chart.yaml", "values.yaml"}
	graphQLMarkers = []string{"schema.graphql", "schema.gql", "codegen.yml", ".graphqlconfig", "schema.graphql.json"}
)

// Types returns every registered enabler type, sorted.
func Types() []Type {
	names := factories.List()
	out := make([]Type, len(names))
	for i, n := range names {
		out[i] = Type(n)
	}
	return out
}

// ParseType validates a type name.
func ParseType(name string) (Type, error) {
	if !factories.Has(name) {
		return "", errors.Newf(errors.ErrUnknownEnable, "unknown enabler %q", name)
	}
	return Type(name), nil
}

// Set holds one enabler of every registered type for a project.
type Set struct {
	basePath string
	byType   map[Type]Enabler
}

// NewSet instantiates every registered enabler for the project at basePath.
// The enablers are not initialised.
func NewSet(fs filesystem.FS, basePath string) *Set {
	s := &Set{basePath: basePath, byType: make(map[Type]Enabler, factories.Count())}
	for _, name := range factories.List() {
		factory, err := factories.Get(name)
		if err != nil {
			continue
		}
		s.byType[Type(name)] = factory(fs, basePath)
	}
	return s
}

// NewSetOf builds a Set from explicit enablers. Tests and hosts with their
// own implementations use it.
func NewSetOf(basePath string, enablers map[Type]Enabler) *Set {
	byType := make(map[Type]Enabler, len(enablers))
	for t, e := range enablers {
		byType[t] = e
	}
	return &Set{basePath: basePath, byType: byType}
}

// Get returns the enabler of type t.
func (s *Set) Get(t Type) (Enabler, bool) {
	if s == nil {
		return nil, false
	}
	e, ok := s.byType[t]
	return e, ok
}

// InitAll initialises every enabler. A failing or panicking enabler is
// logged and left uninitialised; the others still run. The returned error
// joins the failures.
func (s *Set) InitAll(ctx context.Context) error {
	logger := logging.GetLogger("enablers")
	done := logging.LogOperationStart(logger, "init enablers")
	defer done()

	types := make([]string, 0, len(s.byType))
	for t := range s.byType {
		types = append(types, string(t))
	}
	sort.Strings(types)

	var failed []string
	for _, name := range types {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, errors.ErrEnablerInit, "enabler initialisation cancelled")
		}
		if err := safeInit(ctx, s.byType[Type(name)]); err != nil {
			logger.Warn().Err(err).Str("enabler", name).Str("project", s.basePath).Msg("Canceled enabler init")
			failed = append(failed, name)
		}
	}

	if len(failed) > 0 {
		return errors.Newf(errors.ErrEnablerInit, "%d enabler(s) failed to initialise", len(failed)).
			WithDetail("enablers", failed)
	}
	return nil
}

func safeInit(ctx context.Context, e Enabler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf(errors.ErrEnablerPanic, "enabler panicked: %v", r)
		}
	}()
	if err := e.Init(ctx); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	return nil
}
