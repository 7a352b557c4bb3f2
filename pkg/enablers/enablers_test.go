package enablers_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/iconrules/pkg/enablers"
	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, files map[string]string) filesystem.FS {
	t.Helper()
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/work/app", 0755))
	for name, content := range files {
		require.NoError(t, fsys.MkdirAll(dirOf(name), 0755))
		require.NoError(t, fsys.WriteFile(name, []byte(content), 0644))
	}
	return fsys
}

func dirOf(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '/' {
			return name[:i]
		}
	}
	return "/"
}

func initEnabler(t *testing.T, fsys filesystem.FS, typ enablers.Type) enablers.Enabler {
	t.Helper()
	set := enablers.NewSet(fsys, "/work/app")
	e, ok := set.Get(typ)
	require.True(t, ok, "enabler %s is registered", typ)
	require.NoError(t, e.Init(context.Background()))
	return e
}

func TestTypes(t *testing.T) {
	assert.Equal(t, []enablers.Type{
		enablers.GitSubmoduleFolder,
		enablers.HelmFolder,
		enablers.InAngularFolder,
		enablers.InFlutterFolder,
		enablers.InGraphQLFolder,
		enablers.InHelmFolder,
		enablers.InWritersideFolder,
	}, enablers.Types())

	typ, err := enablers.ParseType("in_helm_folder")
	require.NoError(t, err)
	assert.Equal(t, enablers.InHelmFolder, typ)

	_, err = enablers.ParseType("nope")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownEnable))
}

func TestVerifyBeforeInit(t *testing.T) {
	fsys := writeFiles(t, map[string]string{"/work/app/angular.json": "{}"})
	set := enablers.NewSet(fsys, "/work/app")
	for _, typ := range enablers.Types() {
		e, ok := set.Get(typ)
		require.True(t, ok)
		assert.False(t, e.Verify("/work/app/src"), "%s answers false before init", typ)
	}
}

func TestGitSubmoduleFolder(t *testing.T) {
	fsys := writeFiles(t, map[string]string{
		"/work/app/.gitmodules":                 "[submodule \"lib\"]\n\tpath = libs/Core\n\turl = git@x:core.git\n",
		"/work/app/libs/Core/.gitmodules":       "[submodule \"nested\"]\n  path=vendor/dep\n",
		"/work/app/libs/Core/vendor/dep/README": "",
	})
	e := initEnabler(t, fsys, enablers.GitSubmoduleFolder)

	assert.True(t, e.Terminal())
	assert.True(t, e.Verify("/work/app/libs/core"))
	assert.True(t, e.Verify("/work/app/libs/Core"))
	assert.True(t, e.Verify("/work/app/libs/core/vendor/dep"))
	assert.False(t, e.Verify("/work/app/libs"))
	assert.False(t, e.Verify("/work/app/libs/core/src"))
}

func TestGitSubmoduleFolder_NoModules(t *testing.T) {
	e := initEnabler(t, writeFiles(t, nil), enablers.GitSubmoduleFolder)
	assert.False(t, e.Verify("/work/app"))
}

func TestInFolderEnablers(t *testing.T) {
	fsys := writeFiles(t, map[string]string{
		"/work/app/web/angular.json":      "{}",
		"/work/app/charts/Chart.yaml":     "name: app",
		"/work/app/charts/values.yaml":    "",
		"/work/app/partial/Chart.yaml":    "name: partial",
		"/work/app/api/codegen.yml":       "",
		"/work/app/docs/writerside.cfg":   "",
		"/work/app/deep/one/angular.json": "{}",
	})

	tests := []struct {
		name     string
		typ      enablers.Type
		path     string
		expected bool
	}{
		{name: "angular_below_folder", typ: enablers.InAngularFolder, path: "/work/app/web/src/app.component.ts", expected: true},
		{name: "angular_folder_itself", typ: enablers.InAngularFolder, path: "/work/app/web", expected: true},
		{name: "angular_other_folder", typ: enablers.InAngularFolder, path: "/work/app/api/x.ts", expected: false},
		{name: "angular_only_level_one", typ: enablers.InAngularFolder, path: "/work/app/deep/one/x.ts", expected: false},
		{name: "angular_prefix_is_not_parent", typ: enablers.InAngularFolder, path: "/work/app/webapp/x.ts", expected: false},
		{name: "helm_requires_all_markers", typ: enablers.InHelmFolder, path: "/work/app/partial/templates", expected: false},
		{name: "helm_with_all_markers", typ: enablers.InHelmFolder, path: "/work/app/charts/templates", expected: true},
		{name: "graphql_any_marker", typ: enablers.InGraphQLFolder, path: "/work/app/api/query.graphql", expected: true},
		{name: "writerside", typ: enablers.InWritersideFolder, path: "/work/app/docs/topics", expected: true},
		{name: "case_insensitive", typ: enablers.InWritersideFolder, path: "/WORK/App/Docs/topics", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := initEnabler(t, fsys, tt.typ)
			assert.False(t, e.Terminal())
			assert.Equal(t, tt.expected, e.Verify(tt.path))
		})
	}
}

func TestHelmFolder(t *testing.T) {
	fsys := writeFiles(t, map[string]string{
		"/work/app/charts/Chart.yaml":  "name: app",
		"/work/app/charts/values.yaml": "",
	})
	e := initEnabler(t, fsys, enablers.HelmFolder)

	assert.True(t, e.Terminal())
	assert.True(t, e.Verify("/work/app/charts"))
	assert.False(t, e.Verify("/work/app/charts/templates"))
}

func TestFlutter(t *testing.T) {
	tests := []struct {
		name     string
		pubspec  string
		expected bool
	}{
		{name: "sdk_dependency", pubspec: "name: app\ndependencies:\n  flutter:\n    sdk: flutter\n", expected: true},
		{name: "plain_dart", pubspec: "name: app\ndependencies:\n  http: ^1.0.0\n", expected: false},
		{name: "broken_yaml_fallback", pubspec: "dependencies: [\n  sdk:flutter", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := writeFiles(t, map[string]string{"/work/app/pubspec.yaml": tt.pubspec})
			e := initEnabler(t, fsys, enablers.InFlutterFolder)
			assert.False(t, e.Terminal())
			assert.Equal(t, tt.expected, e.Verify("/work/app/lib/main.dart"))
		})
	}

	t.Run("no_pubspec", func(t *testing.T) {
		e := initEnabler(t, writeFiles(t, nil), enablers.InFlutterFolder)
		assert.False(t, e.Verify("/work/app/lib"))
	})
}

type panickyEnabler struct{}

func (panickyEnabler) Init(context.Context) error { panic("boom") }
func (panickyEnabler) Verify(string) bool         { return false }
func (panickyEnabler) Terminal() bool             { return false }

func TestInitAll(t *testing.T) {
	t.Run("initialises_everything", func(t *testing.T) {
		fsys := writeFiles(t, map[string]string{"/work/app/angular.json": "{}"})
		set := enablers.NewSet(fsys, "/work/app")
		require.NoError(t, set.InitAll(context.Background()))

		e, _ := set.Get(enablers.InAngularFolder)
		assert.True(t, e.Verify("/work/app/src/main.ts"))
	})

	t.Run("reports_failures", func(t *testing.T) {
		set := enablers.NewSetOf("/work/app", map[enablers.Type]enablers.Enabler{
			enablers.InHelmFolder: panickyEnabler{},
		})
		err := set.InitAll(context.Background())
		assert.True(t, errors.IsErrorCode(err, errors.ErrEnablerInit))
		assert.Equal(t, []string{"in_helm_folder"}, errors.GetErrorDetails(err)["enablers"])
	})

	t.Run("nil_set_has_nothing", func(t *testing.T) {
		var set *enablers.Set
		_, ok := set.Get(enablers.InHelmFolder)
		assert.False(t, ok)
	})
}
