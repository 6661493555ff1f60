package cli

import (
	"fmt"
	"io"

	"github.com/rualdi/rualdi/internal/aliases"
	"github.com/rualdi/rualdi/internal/doctor"
	"github.com/rualdi/rualdi/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the aliases file and shell setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd)
		},
	}
}

// runDoctor는 진단 결과를 출력한다. 경고가 있어도 실패로 끝나지 않는다.
func (a *App) runDoctor(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	err := a.withStore(func(s *aliases.Store) error {
		printDiagResults(out, doctor.RunAll(s))
		return nil
	})
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] aliases_file: %v\n", err)
		fmt.Fprintln(out, "      Fix: check $_RAD_ALIASES_DIR and the aliases file syntax")
	}

	if a.Shell != "" {
		printDiagResults(out, []doctor.DiagResult{doctor.CheckShellHook(a.Shell, shell.RCPath(a.Shell, a.Home))})
	}
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(w io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		fmt.Fprintf(w, "  [%s] %s: %s\n", statusIcon(r.Status), r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
