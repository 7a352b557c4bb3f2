package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/iconrules/pkg/catalog"
	"github.com/arthur-debert/iconrules/pkg/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: MsgWatchShort,
		Long: `Watch keeps the rules of the project loaded and republishes them
whenever the settings files or the installed icon packs change. Use -v to
see each reload.`,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt, err := opts.load(ctx)
			if err != nil {
				return err
			}
			bundled, err := catalog.Rules()
			if err != nil {
				return err
			}

			reload := watch.Republish(rt.engine, rt.base, bundled, opts.configOptions()...)
			w := watch.New(watch.SettingsTargets(rt.base), reload)
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), MsgWatching, rt.base); err != nil {
				return err
			}
			return w.Run(ctx)
		},
	}
}
