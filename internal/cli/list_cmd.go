package cli

import (
	"fmt"

	"github.com/rualdi/rualdi/internal/aliases"
	"github.com/rualdi/rualdi/internal/display"
	"github.com/spf13/cobra"
)

func (a *App) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "List aliases",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *aliases.Store) error {
				out, ok := s.List(a.formatter(cmd, s))
				if !ok {
					out = "No aliases found\n"
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
}

func (a *App) newListEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list-env",
		Aliases: []string{"lx"},
		Short:   "List environment variables as <alias var> lines",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s *aliases.Store) error {
				fmt.Fprint(cmd.OutOrStdout(), s.ListEnv(a.formatter(cmd, s)))
				return nil
			})
		},
	}
}

func (a *App) newListAliasCompletionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list-alias-completions",
		Aliases: []string{"la"},
		Short:   "Print alias names for shell completion",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printAliasCompletions(cmd)
		},
	}
}

func (a *App) newListEnvCompletionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-env-completions",
		Short: "Print environment variable names for shell completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printEnvCompletions(cmd)
		},
	}
}

func (a *App) printAliasCompletions(cmd *cobra.Command) error {
	return a.withStore(func(s *aliases.Store) error {
		if out, ok := s.ListAliasCompletions(); ok {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return nil
	})
}

func (a *App) printEnvCompletions(cmd *cobra.Command) error {
	return a.withStore(func(s *aliases.Store) error {
		if out, ok := s.ListEnvCompletions(); ok {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return nil
	})
}

// formatter는 출력 대상과 설정에 맞는 목록 포매터를 만든다.
func (a *App) formatter(cmd *cobra.Command, s *aliases.Store) *display.Formatter {
	return &display.Formatter{
		Width: display.TerminalWidth(cmd.OutOrStdout()),
		Color: a.colorEnabled(cmd),
		Theme: s.Theme(),
		Dirs:  display.KnownDirs(a.Home),
	}
}

func (a *App) colorEnabled(cmd *cobra.Command) bool {
	return a.Config.Color.Enabled(display.IsTerminal(cmd.OutOrStdout()))
}
