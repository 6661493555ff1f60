package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newCompletionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completions <alias|env|bash|zsh|fish>",
		Aliases:   []string{"comp"},
		Short:     "Print alias or variable names, or a shell completion script",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"alias", "env", "bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompletions(cmd, args[0])
		},
	}
}

func (a *App) runCompletions(cmd *cobra.Command, kind string) error {
	out := cmd.OutOrStdout()
	switch kind {
	case "alias":
		return a.printAliasCompletions(cmd)
	case "env":
		return a.printEnvCompletions(cmd)
	case "bash":
		return cmd.Root().GenBashCompletionV2(out, true)
	case "zsh":
		return cmd.Root().GenZshCompletion(out)
	case "fish":
		return cmd.Root().GenFishCompletion(out, true)
	default:
		return fmt.Errorf("unknown completion type '%s' (alias, env, bash, zsh, fish)", kind)
	}
}
