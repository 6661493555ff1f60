package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// hookMarker는 rc 파일에 이미 설치되었는지 판별하는 표식이다.
const hookMarker = "# rualdi shell integration"

// DetectShell은 $SHELL로 현재 사용자의 셸을 감지한다.
func DetectShell() string {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return ""
	}
	return filepath.Base(sh)
}

// RCPath는 셸별 rc 파일 경로를 반환한다. 지원하지 않는 셸이면 빈 문자열이다.
func RCPath(shellType, home string) string {
	switch shellType {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "bash":
		return filepath.Join(home, ".bashrc")
	case "fish":
		return filepath.Join(home, ".config", "fish", "conf.d", "rualdi.fish")
	default:
		return ""
	}
}

// HookSnippet는 rc 파일에 추가할 초기화 줄을 반환한다.
func HookSnippet(shellType string, opts Options) string {
	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}
	args := shellType
	if opts.Cmd != "" && opts.Cmd != DefaultCmd {
		args += " --cmd " + opts.Cmd
	}

	switch shellType {
	case "zsh", "bash":
		return fmt.Sprintf("%s (%s)\neval \"$(%s init %s)\"\n", hookMarker, shellType, opts.Binary, args)
	case "fish":
		return fmt.Sprintf("%s (%s)\n%s init %s | source\n", hookMarker, shellType, opts.Binary, args)
	default:
		return ""
	}
}

// InstallHook은 rc 파일에 초기화 줄을 추가한다.
// 이미 설치되어 있으면 false와 함께 아무것도 하지 않는다.
func InstallHook(shellType, rcPath string, opts Options) (bool, error) {
	snippet := HookSnippet(shellType, opts)
	if snippet == "" {
		return false, fmt.Errorf("shell.InstallHook: %w: %s", ErrUnsupportedShell, shellType)
	}

	existing, _ := os.ReadFile(rcPath) // 파일이 없으면 빈 바이트
	if strings.Contains(string(existing), hookMarker) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0700); err != nil {
		return false, fmt.Errorf("shell.InstallHook: %w", err)
	}
	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return false, fmt.Errorf("shell.InstallHook: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s", snippet); err != nil {
		return false, fmt.Errorf("shell.InstallHook: %w", err)
	}
	return true, nil
}
