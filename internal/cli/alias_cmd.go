package cli

import (
	"fmt"

	"github.com/rualdi/rualdi/internal/aliases"
	"github.com/rualdi/rualdi/internal/resolver"
	"github.com/spf13/cobra"
)

func (a *App) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <alias> [path]",
		Aliases: []string{"a"},
		Short:   "Add a new path alias (defaults to the current directory)",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.Cwd
			if len(args) == 2 {
				path = args[1]
			}
			return a.runAdd(cmd, args[0], path)
		},
	}
}

func (a *App) runAdd(cmd *cobra.Command, alias, path string) error {
	return a.withStore(func(s *aliases.Store) error {
		dir, err := resolver.New(a.Cwd).ResolvePath(path)
		if err != nil {
			return fmt.Errorf("failed to add alias '%s': %w", alias, err)
		}
		if err := s.Add(alias, dir); err != nil {
			return fmt.Errorf("failed to add alias '%s': %w", alias, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "[alias] Added: %s\n", s.Theme().Alias.Sprint(alias, a.colorEnabled(cmd)))
		return nil
	})
}

func (a *App) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <alias>...",
		Aliases: []string{"r"},
		Short:   "Remove aliases and their environment variables",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRemove(cmd, args)
		},
	}
}

// runRemove는 별칭을 순서대로 제거하고 첫 실패에서 멈춘다.
// 실패 전에 제거된 별칭도 저장된다.
func (a *App) runRemove(cmd *cobra.Command, names []string) error {
	return a.withStore(func(s *aliases.Store) error {
		for _, alias := range names {
			if err := s.Remove(alias); err != nil {
				return fmt.Errorf("failed to remove alias '%s': %w", alias, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "alias '%s' removed\n", alias)
		}
		return nil
	})
}

func (a *App) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "resolve <path>",
		Aliases: []string{"res"},
		Short:   "Resolve an alias-prefixed path to an absolute directory",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runResolve(cmd, args[0])
		},
	}
}

func (a *App) runResolve(cmd *cobra.Command, path string) error {
	return a.withStore(func(s *aliases.Store) error {
		dir, err := resolver.New(a.Cwd).Resolve(path, s)
		if err != nil {
			return fmt.Errorf("failed to resolve alias for path '%s': %w", path, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), dir)
		return nil
	})
}
