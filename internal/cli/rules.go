package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/iconrules/pkg/catalog"
	"github.com/arthur-debert/iconrules/pkg/condition"
	"github.com/arthur-debert/iconrules/pkg/config"
	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/filesystem"
	"github.com/arthur-debert/iconrules/pkg/iconpack"
	"github.com/arthur-debert/iconrules/pkg/paths"
	"github.com/arthur-debert/iconrules/pkg/rules"
	"github.com/arthur-debert/iconrules/pkg/style"
	"github.com/spf13/cobra"
)

func newRulesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		GroupID: "core",
	}
	cmd.AddCommand(newRulesListCmd(opts))
	cmd.AddCommand(newRulesShowCmd(opts))
	cmd.AddCommand(newRulesValidateCmd(opts))
	return cmd
}

// sourceOf names where r comes from.
func sourceOf(rt *runtime, r rules.Rule) string {
	if r.SourcePack != "" {
		return "pack:" + r.SourcePack
	}
	id := r.GroupID()
	for _, u := range rt.settings.Project.Rules {
		if u.ID == id {
			return "project"
		}
	}
	for _, u := range rt.settings.IDE.Rules {
		if u.ID == id {
			return "user"
		}
	}
	return "bundled"
}

// allRules returns every rule with its alternates, disabled ones included,
// in precedence order.
func allRules(rt *runtime) ([]rules.Rule, error) {
	bundled, err := catalog.Rules()
	if err != nil {
		return nil, err
	}
	var out []rules.Rule
	for _, r := range rt.settings.Sources(bundled).Ordered() {
		out = append(out, r)
		out = append(out, r.Alternates()...)
	}
	return out, nil
}

func newRulesListCmd(opts *options) *cobra.Command {
	var (
		kindName string
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgRulesListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind rules.Kind
			if kindName != "" {
				k, err := rules.ParseKind(kindName)
				if err != nil {
					return err
				}
				kind = k
			}

			rt, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}

			var list []rules.Rule
			if all || kind == rules.KindIconOverride {
				list, err = allRules(rt)
				if err != nil {
					return err
				}
			} else {
				list = append(rt.engine.Rules(rules.KindFile), rt.engine.Rules(rules.KindFolder)...)
			}

			rows := [][]string{{"#", "ID", "KIND", "ICON", "SOURCE", "DESCRIPTION"}}
			effective := rt.settings.Effective()
			for _, r := range list {
				if kind != "" && r.Kind != kind {
					continue
				}
				id := r.ID
				for _, off := range effective.DisabledIDs {
					if off == r.ID {
						r.Disabled = true
					}
				}
				if !r.Enabled() {
					id += " (disabled)"
				}
				rows = append(rows, []string{
					strconv.Itoa(len(rows)), id, string(r.Kind), r.Icon.String(), sourceOf(rt, r), r.Description,
				})
			}
			if len(rows) == 1 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), MsgNoRules)
				return err
			}
			return renderTable(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "", MsgFlagKind)
	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAll)
	return cmd
}

func newRulesShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: MsgRulesShowShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			list, err := allRules(rt)
			if err != nil {
				return err
			}
			for _, r := range list {
				if r.ID == args[0] {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), describeRule(rt, r, isTerminal(cmd.OutOrStdout())))
					return err
				}
			}
			return errors.Newf(errors.ErrNotFound, MsgErrRuleNotFound, args[0])
		},
	}
}

func describeRule(rt *runtime, r rules.Rule, styled bool) string {
	var b strings.Builder
	field := func(name, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%-12s %s\n", name+":", value)
	}

	field("kind", string(r.Kind))
	field("icon", r.Icon.String())
	field("description", r.Description)
	field("source", sourceOf(rt, r))
	field("alternate of", r.ParentID)
	field("host icon", r.IDEIcon)
	field("ui", string(r.UIType))
	if len(r.Tags) > 0 {
		names := make([]string, 0, len(r.Tags))
		for _, t := range r.Tags {
			if info, ok := t.Info(); ok {
				names = append(names, info.Name)
				continue
			}
			names = append(names, string(t))
		}
		field("tags", strings.Join(names, ", "))
	}
	if len(r.AltIcons) > 0 {
		alts := make([]string, 0, len(r.AltIcons))
		for _, a := range r.AltIcons {
			alts = append(alts, a.String())
		}
		field("alternates", strings.Join(alts, ", "))
	}
	if !r.Enabled() {
		field("state", "disabled")
	}
	for i, c := range r.Conditions {
		field("condition "+strconv.Itoa(i+1), describeCondition(c))
	}

	body := strings.TrimRight(b.String(), "\n")
	if !styled {
		return r.ID + "\n" + body
	}
	return style.BoxStyle.Render(style.ForKind(r.Kind).Render(r.ID) + "\n" + body)
}

func describeCondition(c condition.Condition) string {
	d := c.Describe(", ")
	if !c.Enabled() {
		d += " (disabled)"
	}
	return d
}

func newRulesValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: MsgValidateShort,
		Long: `Validate checks settings files (.toml) and icon packs (.yaml). Without
arguments it checks the bundled rules, the IDE and project settings and
every installed icon pack.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fs := filesystem.NewOS()

			files := args
			if len(files) == 0 {
				base, err := opts.projectBase()
				if err != nil {
					return err
				}
				report(out, "bundled rules", validateCatalog())
				files = defaultValidationTargets(base)
			}

			failed := 0
			for _, f := range files {
				err := validateFile(fs, f)
				if err != nil {
					failed++
				}
				report(out, f, err)
			}
			if failed > 0 {
				return errors.Newf(errors.ErrConfigValid, MsgErrInvalidFiles, failed)
			}
			return nil
		},
	}
}

func report(w io.Writer, name string, err error) {
	if isTerminal(w) {
		name = style.PathStyle.Render(name)
		if err != nil {
			fmt.Fprintf(w, MsgInvalid, name, style.ErrorStyle.Render(err.Error()))
			return
		}
		fmt.Fprintf(w, "%s: %s\n", name, style.SuccessStyle.Render("ok"))
		return
	}
	if err != nil {
		fmt.Fprintf(w, MsgInvalid, name, err)
		return
	}
	fmt.Fprintf(w, MsgValid, name)
}

func validateCatalog() error {
	_, err := catalog.Rules()
	return err
}

func defaultValidationTargets(base string) []string {
	var files []string
	for _, f := range []string{paths.SettingsPath(), paths.ProjectSettingsPath(base)} {
		if _, err := os.Stat(f); err == nil {
			files = append(files, f)
		}
	}
	entries, err := os.ReadDir(paths.PacksPath())
	if err == nil {
		for _, e := range entries {
			ext := strings.ToLower(filepath.Ext(e.Name()))
			if !e.IsDir() && (ext == ".yaml" || ext == ".yml") {
				files = append(files, filepath.Join(paths.PacksPath(), e.Name()))
			}
		}
	}
	return files
}

func validateFile(fs filesystem.FS, name string) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		_, err := iconpack.Load(fs, name)
		return err
	default:
		if _, err := os.Stat(name); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", name)
		}
		f, err := config.LoadFile(name, nil)
		if err != nil {
			return err
		}
		if f.IgnoredPattern != "" {
			if err := condition.CheckRegex(f.IgnoredPattern); err != nil {
				return errors.Wrapf(err, errors.ErrConfigValid, "%s", config.KeyIgnoredPattern)
			}
		}
		return nil
	}
}
