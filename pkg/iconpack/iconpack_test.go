package iconpack_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/iconrules/pkg/condition"
	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/iconpack"
	"github.com/arthur-debert/iconrules/pkg/rules"
	"github.com/arthur-debert/iconrules/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const teamPack = `name: team-icons
description: Build files
rules:
  - id: team_build
    kind: file
    icon: extra-icons/team_build.svg
    alt_icons: [extra-icons/team_build_alt.svg]
    conditions:
      - exact: [build]
        suffix: [.team]
  - id: team_dir
    kind: folder
    icon: "ide:AllIcons.Nodes.Folder"
    conditions:
      - parents: [team]
`

func TestDecode(t *testing.T) {
	p, err := iconpack.Decode(strings.NewReader(teamPack))
	require.NoError(t, err)

	assert.Equal(t, "team-icons", p.Name)
	assert.Equal(t, "Build files", p.Description)
	require.Len(t, p.Rules, 2)
	for _, r := range p.Rules {
		assert.Equal(t, "team-icons", r.SourcePack)
	}
	assert.Equal(t, rules.KindFolder, p.Rules[1].Kind)
	assert.Len(t, p.Rules[0].AltIcons, 1)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "no_name", doc: "rules: []\n"},
		{name: "unknown_field", doc: "name: x\ncolour: red\n"},
		{name: "invalid_rule", doc: "name: x\nrules:\n  - id: r\n    kind: file\n    icon: extra-icons/r.svg\n"},
		{name: "bad_kind", doc: "name: x\nrules:\n  - id: r\n    kind: socket\n    icon: a.svg\n"},
		{name: "not_yaml", doc: "name: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := iconpack.Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrPackRead))
		})
	}
}

func TestEncodeDecodeThroughFiles(t *testing.T) {
	fsys := testutil.NewMemFS(t, nil)
	user := []rules.Rule{
		testutil.WithAlts(testutil.FileRule("team_build", condition.New().WithExact("build").WithSuffix(".team")), "_alt"),
		testutil.FolderRule("team_dir", condition.New().WithParents("team")),
	}
	// Derived alternates never leave the process.
	exported := iconpack.Export("Team Icons", "", append(user, user[0].Alternates()...))
	require.Len(t, exported.Rules, 2)

	target, err := iconpack.Install(fsys, "/config/packs", exported)
	require.NoError(t, err)
	assert.Equal(t, "/config/packs/team-icons.yaml", target)

	loaded, err := iconpack.Load(fsys, target)
	require.NoError(t, err)
	require.Len(t, loaded.Rules, 2)
	for i := range user {
		assert.True(t, user[i].Equal(loaded.Rules[i]), "rule %s", user[i].ID)
		assert.Equal(t, "Team Icons", loaded.Rules[i].SourcePack)
	}
}

func TestEncode_RequiresName(t *testing.T) {
	var buf bytes.Buffer
	err := iconpack.Encode(&buf, iconpack.Pack{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackWrite))
}

func TestLoadDir(t *testing.T) {
	fsys := testutil.NewMemFS(t, map[string]string{
		"/packs/b.yaml":      strings.Replace(teamPack, "team-icons", "b-pack", 1),
		"/packs/a.yml":       teamPack,
		"/packs/broken.yaml": "name: broken\nrules: {\n",
		"/packs/readme.txt":  "not a pack",
		"/packs/nested/":     "",
	})

	packs, err := iconpack.LoadDir(fsys, "/packs")
	require.NoError(t, err)
	require.Len(t, packs, 2)
	assert.Equal(t, "team-icons", packs[0].Name)
	assert.Equal(t, "b-pack", packs[1].Name)

	packs, err = iconpack.LoadDir(fsys, "/missing")
	require.NoError(t, err)
	assert.Empty(t, packs)
}

func TestMerge(t *testing.T) {
	existing := []rules.Rule{testutil.FileRule("team_build", condition.New().WithExact("build").WithSuffix(".team"))}
	p, err := iconpack.Decode(strings.NewReader(teamPack))
	require.NoError(t, err)

	merged := iconpack.Merge(existing, p, p)
	ids := make([]string, 0, len(merged))
	for _, r := range merged {
		ids = append(ids, r.ID)
	}
	// The pack's team_build differs by its alternate icon, so it is kept.
	assert.Equal(t, []string{"team_build", "team_build", "team_dir"}, ids)
	assert.Len(t, existing, 1)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "team-icons.yaml", iconpack.FileName("Team Icons"))
	assert.Equal(t, "a_b-c.yaml", iconpack.FileName(" a_b/c "))
}
