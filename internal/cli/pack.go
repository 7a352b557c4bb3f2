package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/filesystem"
	"github.com/arthur-debert/iconrules/pkg/iconpack"
	"github.com/arthur-debert/iconrules/pkg/paths"
	"github.com/arthur-debert/iconrules/pkg/rules"
	"github.com/spf13/cobra"
)

func newPackCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pack",
		Short:   MsgPackShort,
		GroupID: "core",
	}
	cmd.AddCommand(newPackExportCmd(opts))
	cmd.AddCommand(newPackImportCmd())
	cmd.AddCommand(newPackListCmd())
	return cmd
}

func newPackExportCmd(opts *options) *cobra.Command {
	var (
		out         string
		description string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: MsgPackExportShort,
		Long: `Export writes the user rules of the IDE settings, followed by the
project rules when a project file exists, as an icon pack.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := opts.loadSettings()
			if err != nil {
				return err
			}
			user := append(append([]rules.Rule(nil), s.IDE.Rules...), s.Project.Rules...)
			if len(user) == 0 {
				return errors.New(errors.ErrNotFound, MsgErrNoUserRules)
			}
			p := iconpack.Export(args[0], description, user)

			if out == "" {
				return iconpack.Encode(cmd.OutOrStdout(), p)
			}
			if _, err := os.Stat(out); err == nil && !force {
				return errors.Newf(errors.ErrAlreadyExists, MsgErrFileExists, out)
			}
			if err := iconpack.Save(filesystem.NewOS(), out, p); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgPackExported, len(p.Rules), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", MsgFlagOut)
	cmd.Flags().StringVarP(&description, "description", "d", "", MsgFlagDesc)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newPackImportCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: MsgPackImportShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := filesystem.NewOS()
			p, err := iconpack.Load(fs, args[0])
			if err != nil {
				return err
			}
			target := filepath.Join(paths.PacksPath(), iconpack.FileName(p.Name))
			if filesystem.Exists(fs, target) && !force {
				return errors.Newf(errors.ErrAlreadyExists, MsgErrFileExists, target)
			}
			target, err = iconpack.Install(fs, paths.PacksPath(), p)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgPackInstalled, p.Name, len(p.Rules), target)
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newPackListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgPackListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			packs, err := iconpack.LoadDir(filesystem.NewOS(), paths.PacksPath())
			if err != nil {
				return err
			}
			if len(packs) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), MsgNoPacks)
				return err
			}
			rows := [][]string{{"NAME", "RULES", "DESCRIPTION"}}
			for _, p := range packs {
				rows = append(rows, []string{p.Name, strconv.Itoa(len(p.Rules)), p.Description})
			}
			return renderTable(cmd.OutOrStdout(), rows)
		},
	}
}
