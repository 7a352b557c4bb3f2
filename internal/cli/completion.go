package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const msgCompletionLong = `To load completions:

Bash:
  $ source <(iconrules completion bash)

Zsh:
  $ iconrules completion zsh > "${fpath[1]}/_iconrules"

Fish:
  $ iconrules completion fish | source

PowerShell:
  PS> iconrules completion powershell | Out-String | Invoke-Expression`

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  msgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

// GenCompletion writes the completion script of root for shell.
func GenCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return cobra.OnlyValidArgs(root, []string{shell})
	}
}

// ManHeader is the header of generated man pages.
func ManHeader(source string) *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "ICONRULES",
		Section: "1",
		Source:  source,
		Manual:  "iconrules manual",
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			return doc.GenManTree(cmd.Root(), ManHeader("iconrules "+cmd.Root().Version), dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "man", MsgFlagManDir)
	return cmd
}
