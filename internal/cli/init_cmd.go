package cli

import (
	"fmt"
	"strings"

	"github.com/rualdi/rualdi/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newInitCmd() *cobra.Command {
	var opts shell.Options
	var install bool

	cmd := &cobra.Command{
		Use:       "init <bash|zsh|fish>",
		Aliases:   []string{"i"},
		Short:     "Print the shell wrapper defining the rad command",
		Args:      cobra.ExactArgs(1),
		ValidArgs: shell.Supported(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd, args[0], opts, install)
		},
	}
	cmd.Flags().StringVar(&opts.Cmd, "cmd", shell.DefaultCmd, "rename the rad command and its aliases")
	cmd.Flags().BoolVar(&install, "install", false, "append the init line to the shell rc file instead of printing")
	return cmd
}

func (a *App) runInit(cmd *cobra.Command, shellType string, opts shell.Options, install bool) error {
	shellType = strings.ToLower(shellType)
	opts.NoEcho = a.Config.NoEcho
	opts.ResolveSymlinks = a.Config.ResolveSymlinks

	script, err := shell.Init(shellType, opts)
	if err != nil {
		return fmt.Errorf("could not initialize rualdi: %w", err)
	}
	if !install {
		fmt.Fprint(cmd.OutOrStdout(), script)
		return nil
	}

	rcPath := shell.RCPath(shellType, a.Home)
	installed, err := shell.InstallHook(shellType, rcPath, opts)
	if err != nil {
		return fmt.Errorf("could not install rualdi into %s: %w", rcPath, err)
	}
	if installed {
		fmt.Fprintf(cmd.OutOrStdout(), "rualdi initialization added to %s\n", rcPath)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "rualdi is already initialized in %s\n", rcPath)
	}
	return nil
}
