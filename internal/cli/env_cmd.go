package cli

import (
	"fmt"
	"strings"

	"github.com/rualdi/rualdi/internal/aliases"
	"github.com/spf13/cobra"
)

func (a *App) newAddEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add-env <alias> [var]",
		Aliases: []string{"ax"},
		Short:   "Bind an environment variable to an alias (defaults to the alias name)",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			varName := args[0]
			if len(args) == 2 {
				varName = args[1]
			}
			return a.runAddEnv(cmd, args[0], strings.ToUpper(varName))
		},
	}
}

func (a *App) runAddEnv(cmd *cobra.Command, alias, varName string) error {
	return a.withStore(func(s *aliases.Store) error {
		if _, ok := s.Get(alias); !ok {
			return fmt.Errorf("cannot add environment variable '%s', no such alias '%s': %w",
				varName, alias, aliases.ErrAliasNotFound)
		}
		if err := s.AddEnv(alias, varName); err != nil {
			return fmt.Errorf("failed to add environment variable '%s' for alias '%s': %w", varName, alias, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "environment variable '%s' for alias '%s' added\n", varName, alias)
		return nil
	})
}

func (a *App) newRemoveEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove-env <alias>",
		Aliases: []string{"rx"},
		Short:   "Remove the environment variable bound to an alias",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRemoveEnv(cmd, args[0])
		},
	}
}

func (a *App) runRemoveEnv(cmd *cobra.Command, alias string) error {
	return a.withStore(func(s *aliases.Store) error {
		if err := s.RemoveEnv(alias); err != nil {
			return fmt.Errorf("failed to remove environment variable for alias '%s': %w", alias, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "environment variable for alias '%s' removed\n", alias)
		return nil
	})
}

func (a *App) newResolveEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "resolve-env <alias>",
		Aliases: []string{"resx"},
		Short:   "Print the environment variable bound to an alias",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runResolveEnv(cmd, args[0])
		},
	}
}

func (a *App) runResolveEnv(cmd *cobra.Command, alias string) error {
	return a.withStore(func(s *aliases.Store) error {
		varName, err := s.GetEnv(alias)
		if err != nil {
			return fmt.Errorf("failed to resolve environment variable for alias '%s': %w", alias, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), varName)
		return nil
	})
}
