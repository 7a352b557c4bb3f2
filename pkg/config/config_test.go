package config_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/iconrules/pkg/config"
	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/paths"
	"github.com/arthur-debert/iconrules/pkg/rules"
	"github.com/arthur-debert/iconrules/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ideSettings = `
ignored_pattern = "node_modules/.*"
disabled_ids = ["pkg_json"]
ui_type_icons_preference = "new"

[[rules]]
id = "ide_rule"
kind = "file"
icon = "extra-icons/ide.svg"
[[rules.conditions]]
exact = ["ide"]
`

const projectSettings = `
disabled_ids = ["dockerfile"]
facets = ["Spring"]

[project]
override_ide_settings = true
add_to_ide_user_icons = false

[[rules]]
id = "project_rule"
kind = "folder"
icon = "extra-icons/project.svg"
alt_icons = ["extra-icons/project_alt.svg"]
[[rules.conditions]]
parents = ["deploy"]
`

func TestLoad_Defaults(t *testing.T) {
	testutil.IsolateConfig(t)

	s, err := config.Load("")
	require.NoError(t, err)

	assert.False(t, s.IDE.Found)
	assert.Empty(t, s.IDE.IgnoredPattern)
	assert.Empty(t, s.IDE.DisabledIDs)
	assert.Empty(t, s.IDE.Rules)
	assert.Equal(t, rules.UIAny, s.UIType())
	assert.True(t, s.IDE.Project.AddToIDEUserIcons)
	assert.Empty(t, s.Packs)

	src := s.Sources(nil)
	assert.False(t, src.Project.Active)
}

func TestLoad_IDEFile(t *testing.T) {
	dir := testutil.IsolateConfig(t)
	testutil.CreateFile(t, dir, paths.SettingsFile, ideSettings)

	s, err := config.Load("")
	require.NoError(t, err)

	assert.True(t, s.IDE.Found)
	assert.Equal(t, filepath.Join(dir, paths.SettingsFile), s.IDE.Path)
	assert.Equal(t, "node_modules/.*", s.IDE.IgnoredPattern)
	assert.Equal(t, []string{"pkg_json"}, s.IDE.DisabledIDs)
	assert.Equal(t, rules.UINew, s.UIType())
	require.Len(t, s.IDE.Rules, 1)
	assert.Equal(t, "ide_rule", s.IDE.Rules[0].ID)
	assert.Empty(t, s.IDE.Rules[0].SourcePack)
}

func TestLoad_Precedence(t *testing.T) {
	dir := testutil.IsolateConfig(t)
	testutil.CreateFile(t, dir, paths.SettingsFile, ideSettings)
	project := t.TempDir()
	testutil.CreateFile(t, project, paths.ProjectSettingsFile, projectSettings)

	bundled := []rules.Rule{testutil.FileRule("bundled_rule", testutil.Exact("x"))}

	t.Run("project_overrides_ide", func(t *testing.T) {
		s, err := config.Load(project)
		require.NoError(t, err)

		assert.True(t, s.Project.Found)
		assert.Equal(t, []string{"spring"}, s.Facets())

		src := s.Sources(bundled)
		assert.True(t, src.Project.Active)
		assert.True(t, src.Project.OverrideIDE)
		assert.False(t, src.Project.MergeIDEUser)

		effective := src.Settings()
		assert.True(t, effective.IsDisabled("dockerfile"))
		assert.False(t, effective.IsDisabled("pkg_json"))
		assert.Empty(t, effective.IgnoredPattern)

		var ids []string
		for _, r := range src.Ordered() {
			ids = append(ids, r.ID)
		}
		assert.Equal(t, []string{"project_rule", "bundled_rule"}, ids)
	})

	t.Run("environment_wins_over_files", func(t *testing.T) {
		t.Setenv(config.EnvDisabledIDs, "a, b,,c")
		t.Setenv(config.EnvIgnoredPattern, "build/.*")

		s, err := config.Load(project)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, s.IDE.DisabledIDs)
		assert.Equal(t, []string{"a", "b", "c"}, s.Project.DisabledIDs)
		assert.Equal(t, "build/.*", s.Effective().IgnoredPattern)
	})

	t.Run("overrides_win_over_environment", func(t *testing.T) {
		t.Setenv(config.EnvIgnoredPattern, "build/.*")

		s, err := config.Load(project, config.WithOverrides(map[string]interface{}{
			config.KeyIgnoredPattern: "dist/.*",
			config.KeyOverrideIDE:    false,
		}))
		require.NoError(t, err)
		assert.Equal(t, "dist/.*", s.Effective().IgnoredPattern)
		assert.Equal(t, s.IDE, s.Effective())

		var ids []string
		for _, r := range s.Sources(bundled).Ordered() {
			ids = append(ids, r.ID)
		}
		assert.Equal(t, []string{"ide_rule", "bundled_rule"}, ids)
	})

	t.Run("disabled_ids_are_added", func(t *testing.T) {
		s, err := config.Load(project, config.WithDisabledIDs("pkg_json"))
		require.NoError(t, err)
		assert.Contains(t, s.IDE.DisabledIDs, "pkg_json")
		assert.Contains(t, s.Project.DisabledIDs, "pkg_json")
		assert.Contains(t, s.Project.DisabledIDs, "dockerfile")
	})
}

func TestLoad_MergeIDEUserRules(t *testing.T) {
	dir := testutil.IsolateConfig(t)
	testutil.CreateFile(t, dir, paths.SettingsFile, ideSettings)
	project := t.TempDir()
	testutil.CreateFile(t, project, paths.ProjectSettingsFile, `
[project]
override_ide_settings = true

[[rules]]
id = "project_rule"
kind = "file"
icon = "extra-icons/project.svg"
[[rules.conditions]]
suffix = [".proj"]
`)

	s, err := config.Load(project)
	require.NoError(t, err)

	var ids []string
	for _, r := range s.Sources(nil).Ordered() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"ide_rule", "project_rule"}, ids)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected errors.ErrorCode
	}{
		{name: "malformed_toml", content: "disabled_ids = [\n", expected: errors.ErrConfigParse},
		{name: "bad_ui_type", content: `ui_type_icons_preference = "retro"`, expected: errors.ErrConfigValid},
		{name: "rule_without_condition", content: "[[rules]]\nid = \"r\"\nkind = \"file\"\nicon = \"a.svg\"\n", expected: errors.ErrConfigValid},
		{name: "duplicate_rule_ids", content: `
[[rules]]
id = "r"
kind = "file"
icon = "a.svg"
[[rules.conditions]]
exact = ["a"]
[[rules]]
id = "r"
kind = "file"
icon = "b.svg"
[[rules.conditions]]
exact = ["b"]
`, expected: errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := testutil.IsolateConfig(t)
			testutil.CreateFile(t, dir, paths.SettingsFile, tt.content)

			_, err := config.Load("")
			require.Error(t, err)
			assert.Equal(t, tt.expected, errors.GetErrorCode(err))
		})
	}
}

func TestLoad_Packs(t *testing.T) {
	dir := testutil.IsolateConfig(t)
	testutil.CreateFile(t, dir, paths.SettingsFile, ideSettings)
	testutil.CreateFile(t, filepath.Join(dir, paths.PacksDir), "team.yaml", `name: team
rules:
  - id: team_rule
    kind: file
    icon: extra-icons/team.svg
    conditions:
      - suffix: [.team]
`)

	s, err := config.Load("")
	require.NoError(t, err)
	require.Len(t, s.Packs, 1)

	user := s.Sources(nil).IDEUser
	require.Len(t, user, 2)
	assert.Equal(t, "ide_rule", user[0].ID)
	assert.Equal(t, "team_rule", user[1].ID)
	assert.Equal(t, "team", user[1].SourcePack)

	s, err = config.Load("", config.WithoutPacks())
	require.NoError(t, err)
	assert.Empty(t, s.Packs)
}

func TestTemplateLoads(t *testing.T) {
	dir := testutil.IsolateConfig(t)
	path := testutil.CreateFile(t, dir, "template.toml", config.Template())

	f, err := config.LoadFile(path, nil)
	require.NoError(t, err)
	assert.True(t, f.Found)
	assert.Empty(t, f.Rules)
	assert.False(t, f.Project.OverrideIDE)
}

func TestLoad_IgnoresUnknownKeys(t *testing.T) {
	dir := testutil.IsolateConfig(t)
	testutil.CreateFile(t, dir, paths.SettingsFile, `
use_ide_filename_index = true
disabled_ids = ["pkg_json"]
`)

	s, err := config.Load("", config.WithoutPacks())
	require.NoError(t, err)
	assert.True(t, s.IDE.Found)
	assert.Equal(t, []string{"pkg_json"}, s.IDE.DisabledIDs)
}
