package cli

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/iconrules/pkg/config"
	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/filesystem"
	"github.com/arthur-debert/iconrules/pkg/paths"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}
	cmd.AddCommand(newConfigInitCmd(opts))
	cmd.AddCommand(newConfigPathCmd(opts))
	return cmd
}

func newConfigInitCmd(opts *options) *cobra.Command {
	var (
		projectLevel bool
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := paths.SettingsPath()
			if projectLevel {
				base, err := opts.projectBase()
				if err != nil {
					return err
				}
				target = paths.ProjectSettingsPath(base)
			}

			fs := filesystem.NewOS()
			if filesystem.Exists(fs, target) && !force {
				return errors.Newf(errors.ErrAlreadyExists, MsgErrFileExists, target)
			}
			if err := fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "failed to create %s", filepath.Dir(target))
			}
			if err := fs.WriteFile(target, []byte(config.Template()), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", target)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, target)
			return err
		},
	}

	cmd.Flags().BoolVar(&projectLevel, "project-level", false, MsgFlagProjLvl)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newConfigPathCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := opts.projectBase()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgSettingsLayout,
				paths.SettingsPath(), paths.ProjectSettingsPath(base), paths.PacksPath())
			return err
		},
	}
}
