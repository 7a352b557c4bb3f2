package rules_test

import (
	"testing"

	"github.com/arthur-debert/iconrules/pkg/condition"
	"github.com/arthur-debert/iconrules/pkg/enablers"
	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/iconref"
	"github.com/arthur-debert/iconrules/pkg/rules"
	"github.com/arthur-debert/iconrules/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	r := testutil.FileRule("pkg_json",
		condition.New().WithExact("composer.json"),
		condition.New().WithExact("package").WithSuffix(".json"),
	)
	in := condition.Input{ParentName: "app", FileName: "package.json", FullPath: "/p/app/package.json"}

	ok, err := r.Matches(in)
	require.NoError(t, err)
	assert.True(t, ok, "second condition matches")

	t.Run("disabled_rule", func(t *testing.T) {
		d := r
		d.Disabled = true
		ok, err := d.Matches(in)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("error_stops_rule", func(t *testing.T) {
		bad := testutil.FileRule("bad",
			condition.New().WithRegex("(unclosed"),
			condition.New().WithExact("package.json"),
		)
		ok, err := bad.Matches(in)
		assert.False(t, ok)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRuleEvaluate))
		assert.Equal(t, "bad", errors.GetErrorDetails(err)["rule"])
	})

	t.Run("icon_override_never_matches", func(t *testing.T) {
		o := rules.Rule{ID: "o", Kind: rules.KindIconOverride, IDEIcon: "folder.svg", Icon: iconref.Bundled("x.svg")}
		ok, err := o.Matches(in)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestAlternates(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		r := testutil.WithAlts(testutil.FileRule("docker", testutil.Exact("dockerfile")), "_alt")
		alts := r.Alternates()
		require.Len(t, alts, 1)
		assert.Equal(t, "docker_alt", alts[0].ID)
		assert.Equal(t, "docker (alternative)", alts[0].Description)
		assert.Equal(t, "docker", alts[0].ParentID)
		assert.Equal(t, "extra-icons/docker_alt.svg", alts[0].Icon.String())
		assert.Empty(t, alts[0].AltIcons)
		assert.True(t, alts[0].Conditions[0].Equal(r.Conditions[0]))
	})

	t.Run("several", func(t *testing.T) {
		r := testutil.WithAlts(testutil.FileRule("svg", testutil.Exact("x")), "_a", "_b", "_c")
		alts := r.Alternates()
		require.Len(t, alts, 3)

		ids := []string{alts[0].ID, alts[1].ID, alts[2].ID}
		assert.Equal(t, []string{"svg_alt", "svg_alt2", "svg_alt3"}, ids)
		assert.Equal(t, "svg (alternative 1)", alts[0].Description)
		assert.Equal(t, "svg (alternative 2)", alts[1].Description)
		assert.Equal(t, "svg (alternative 3)", alts[2].Description)
		for _, a := range alts {
			assert.Equal(t, "svg", a.GroupID())
		}
	})

	t.Run("derived_origin_keeps_group", func(t *testing.T) {
		r := testutil.WithAlts(testutil.FileRule("child", testutil.Exact("x")), "_alt")
		r.ParentID = "root"
		assert.Equal(t, "root", r.Alternates()[0].ParentID)
	})

	t.Run("none", func(t *testing.T) {
		assert.Nil(t, testutil.FileRule("plain", testutil.Exact("x")).Alternates())
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		rule rules.Rule
		code errors.ErrorCode
	}{
		{name: "valid_file", rule: testutil.FileRule("ok", testutil.Exact("x"))},
		{name: "missing_id", rule: testutil.FileRule("", testutil.Exact("x")), code: errors.ErrRuleInvalid},
		{name: "no_conditions", rule: testutil.FileRule("empty"), code: errors.ErrRuleInvalid},
		{name: "modifier_only_condition", rule: testutil.FileRule("facet", condition.New().WithFacets("go")), code: errors.ErrRuleInvalid},
		{name: "enabler_only_condition", rule: testutil.FolderRule("submodule", condition.New().WithEnabler(enablers.GitSubmoduleFolder))},
		{name: "bad_regex", rule: testutil.FileRule("re", condition.New().WithRegex("[")), code: errors.ErrRuleInvalid},
		{name: "unknown_kind", rule: rules.Rule{ID: "k", Kind: "bogus"}, code: errors.ErrUnknownKind},
		{name: "override_ok", rule: rules.Rule{ID: "o", Kind: rules.KindIconOverride, IDEIcon: "nodes/folder.svg", Icon: iconref.Bundled("extra-icons/folder.svg")}},
		{name: "override_without_ide_icon", rule: rules.Rule{ID: "o", Kind: rules.KindIconOverride, Icon: iconref.Bundled("a.svg")}, code: errors.ErrRuleInvalid},
		{name: "override_with_conditions", rule: rules.Rule{ID: "o", Kind: rules.KindIconOverride, IDEIcon: "a", Icon: iconref.Bundled("a.svg"), Conditions: []condition.Condition{testutil.Exact("x")}}, code: errors.ErrRuleInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestParseKind(t *testing.T) {
	for input, want := range map[string]rules.Kind{
		"file": rules.KindFile, "Folder": rules.KindFolder, "dir": rules.KindFolder, "icon": rules.KindIconOverride,
	} {
		got, err := rules.ParseKind(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := rules.ParseKind("socket")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownKind))
}

func TestUIType(t *testing.T) {
	assert.True(t, rules.UIAny.Accepts(rules.UINew))
	assert.True(t, rules.UINew.Accepts(rules.UINew))
	assert.False(t, rules.UINew.Accepts(rules.UIOld))
	assert.True(t, rules.UIOld.Accepts(rules.UIAny))
}

func TestTags(t *testing.T) {
	info, ok := rules.TagTravis.Info()
	require.True(t, ok)
	assert.Equal(t, "Travis CI", info.Name)

	tag, err := rules.ParseTag("Helm")
	require.NoError(t, err)
	assert.Equal(t, rules.TagHelm, tag)

	_, err = rules.ParseTag("cobol")
	assert.Error(t, err)
}

func TestEqual(t *testing.T) {
	base := testutil.WithAlts(testutil.FileRule("pkg_json", condition.New().WithExact("package").WithSuffix(".json")), "_alt")

	same := testutil.WithAlts(testutil.FileRule("pkg_json", condition.New().WithExact("package").WithSuffix(".json")), "_alt")
	same.SourcePack = "team"
	assert.True(t, base.Equal(same))

	other := base
	other.Conditions = []condition.Condition{condition.New().WithExact("package").WithSuffix(".json5")}
	assert.False(t, base.Equal(other))

	other = base
	other.AltIcons = nil
	assert.False(t, base.Equal(other))
}
