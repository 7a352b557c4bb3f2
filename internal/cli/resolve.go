package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/iconrules/pkg/iconref"
	"github.com/arthur-debert/iconrules/pkg/rules"
	"github.com/arthur-debert/iconrules/pkg/style"
	"github.com/spf13/cobra"
)

func newResolveCmd(opts *options) *cobra.Command {
	var (
		kindName  string
		showStats bool
	)

	cmd := &cobra.Command{
		Use:     "resolve <path>...",
		Short:   MsgResolveShort,
		Long:    "Resolve prints the icon the rules pick for each path. Relative paths are taken from the project root.",
		Example: msgResolveExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
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

			out := cmd.OutOrStdout()
			styled := isTerminal(out)
			for _, arg := range args {
				full := arg
				if !filepath.IsAbs(full) {
					full = filepath.Join(rt.base, arg)
				}
				k := kind
				if k == "" {
					k = kindOf(full)
				}
				icon, ok := rt.engine.ResolveIcon(full, k, rt.project)
				if err := printResolution(out, styled, arg, k, icon, ok); err != nil {
					return err
				}
			}

			if showStats {
				st := rt.engine.Stats()
				_, err := fmt.Fprintf(out, MsgStats, st.Lookups, st.ChecksDone, st.ChecksSaved, st.SavedPercent())
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "", MsgFlagKind)
	cmd.Flags().BoolVar(&showStats, "stats", false, MsgFlagStats)
	_ = cmd.RegisterFlagCompletionFunc("kind", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(rules.KindFile), string(rules.KindFolder)}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

// kindOf treats existing directories as folders and anything else as a
// file.
func kindOf(path string) rules.Kind {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return rules.KindFolder
	}
	return rules.KindFile
}

func printResolution(w io.Writer, styled bool, path string, kind rules.Kind, icon iconref.Ref, ok bool) error {
	if !styled {
		result := MsgNoIcon
		if ok {
			result = icon.String()
		}
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", path, kind, result)
		return err
	}

	result := style.MutedStyle.Render(MsgNoIcon)
	if ok {
		result = style.ForKind(kind).Render(icon.String())
	}
	_, err := fmt.Fprintf(w, "%s %s %s\n", style.PathStyle.Render(path), style.MutedStyle.Render("→"), result)
	return err
}
