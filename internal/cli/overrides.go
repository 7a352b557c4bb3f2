package cli

import (
	"fmt"

	"github.com/arthur-debert/iconrules/pkg/catalog"
	"github.com/arthur-debert/iconrules/pkg/overrides"
	"github.com/arthur-debert/iconrules/pkg/rules"
	"github.com/spf13/cobra"
)

func newOverridesCmd(opts *options) *cobra.Command {
	var newUI bool

	cmd := &cobra.Command{
		Use:     "overrides [icon-path...]",
		Short:   MsgOverridesShort,
		Long:    "Overrides lists the host icons replaced by icon rules, or looks up the given host icon paths.",
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := opts.loadSettings()
			if err != nil {
				return err
			}
			bundled, err := catalog.Rules()
			if err != nil {
				return err
			}
			src := s.Sources(bundled)
			prefer := overrides.PreferNewUI(s.UIType(), newUI)
			table := overrides.Build(bundled, src.UserRules(), src.Settings().DisabledIDs, prefer)

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, p := range args {
					result := MsgNoIcon
					if icon, ok := table.Lookup(p); ok {
						result = icon.String()
					}
					if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", p, rules.KindIconOverride, result); err != nil {
						return err
					}
				}
				return nil
			}

			if table.Len() == 0 {
				_, err := fmt.Fprintln(out, MsgNoOverrides)
				return err
			}
			rows := [][]string{{"HOST ICON", "ICON", "RULE"}}
			for _, e := range table.Entries() {
				rows = append(rows, []string{e.IDEIcon, e.Icon.String(), e.RuleID})
			}
			return renderTable(out, rows)
		},
	}

	cmd.Flags().BoolVar(&newUI, "new-ui", false, MsgFlagNewUI)
	return cmd
}
