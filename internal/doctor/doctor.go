package doctor

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/rualdi/rualdi/internal/config"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// Source는 진단 대상 별칭 저장소다. *aliases.Store가 만족한다.
type Source interface {
	Path() string
	Aliases() map[string]string
	Environment() map[string]string
	Get(alias string) (string, bool)
}

var varNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// CheckFile은 별칭 파일 권한이 0600 이하인지 확인한다.
func CheckFile(path string) DiagResult {
	if err := config.ValidateFilePermissions(path); err != nil {
		return DiagResult{
			Name:    "aliases_file",
			Status:  StatusWarn,
			Message: err.Error(),
			Fix:     fmt.Sprintf("chmod 600 %s", path),
		}
	}
	return DiagResult{
		Name:    "aliases_file",
		Status:  StatusOK,
		Message: path,
	}
}

// CheckTargets는 별칭 대상 디렉토리가 존재하는지 확인한다.
func CheckTargets(src Source) []DiagResult {
	var results []DiagResult
	for _, alias := range sortedKeys(src.Aliases()) {
		target, _ := src.Get(alias)
		info, err := os.Stat(target)
		switch {
		case err != nil:
			results = append(results, DiagResult{
				Name:    "alias_" + alias,
				Status:  StatusWarn,
				Message: fmt.Sprintf("target %s does not exist", target),
				Fix:     fmt.Sprintf("rualdi remove %s", alias),
			})
		case !info.IsDir():
			results = append(results, DiagResult{
				Name:    "alias_" + alias,
				Status:  StatusWarn,
				Message: fmt.Sprintf("target %s is not a directory", target),
				Fix:     fmt.Sprintf("rualdi remove %s", alias),
			})
		}
	}
	if len(results) == 0 {
		return []DiagResult{{
			Name:    "targets",
			Status:  StatusOK,
			Message: fmt.Sprintf("%d alias target(s) reachable", len(src.Aliases())),
		}}
	}
	return results
}

// CheckOrphans는 별칭 없이 남은 환경변수 바인딩을 찾는다.
func CheckOrphans(src Source) []DiagResult {
	aliases := src.Aliases()
	env := src.Environment()

	var results []DiagResult
	for _, alias := range sortedKeys(env) {
		if _, ok := aliases[alias]; ok {
			continue
		}
		results = append(results, DiagResult{
			Name:    "env_" + alias,
			Status:  StatusWarn,
			Message: fmt.Sprintf("variable %s is bound to missing alias %s", env[alias], alias),
			Fix:     fmt.Sprintf("rualdi remove-env %s", alias),
		})
	}
	if len(results) == 0 {
		return []DiagResult{{
			Name:    "bindings",
			Status:  StatusOK,
			Message: fmt.Sprintf("%d binding(s) attached to aliases", len(env)),
		}}
	}
	return results
}

// CheckVarNames는 셸에서 쓸 수 없는 환경변수 이름을 찾는다.
func CheckVarNames(src Source) []DiagResult {
	env := src.Environment()

	var results []DiagResult
	for _, alias := range sortedKeys(env) {
		name := env[alias]
		if varNamePattern.MatchString(name) {
			continue
		}
		results = append(results, DiagResult{
			Name:    "env_" + alias,
			Status:  StatusWarn,
			Message: fmt.Sprintf("%q is not a valid shell variable name", name),
			Fix:     fmt.Sprintf("rualdi remove-env %s && rualdi add-env %s <VAR>", alias, alias),
		})
	}
	return results
}

// CheckShellHook은 rc 파일에 rualdi init이 설치되어 있는지 확인한다.
func CheckShellHook(shellType, rcPath string) DiagResult {
	if rcPath == "" {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusWarn,
			Message: fmt.Sprintf("unsupported shell %q", shellType),
		}
	}
	content, err := os.ReadFile(rcPath)
	if err != nil || !strings.Contains(string(content), "init "+shellType) {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusWarn,
			Message: fmt.Sprintf("rualdi is not initialized in %s", rcPath),
			Fix:     fmt.Sprintf("rualdi init %s --install", shellType),
		}
	}
	return DiagResult{
		Name:    "shell_hook",
		Status:  StatusOK,
		Message: rcPath,
	}
}

// RunAll은 저장소에 대한 모든 진단을 실행한다.
func RunAll(src Source) []DiagResult {
	var results []DiagResult
	results = append(results, CheckFile(src.Path()))
	results = append(results, CheckTargets(src)...)
	results = append(results, CheckOrphans(src)...)
	results = append(results, CheckVarNames(src)...)
	return results
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
