package shell

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

// DefaultCmd는 래퍼 명령의 기본 이름이다.
const DefaultCmd = "rad"

// DefaultBinary는 래퍼가 호출하는 실행 파일 이름이다.
const DefaultBinary = "rualdi"

var (
	// ErrUnsupportedShell은 init을 지원하지 않는 셸이다.
	ErrUnsupportedShell = errors.New("unsupported shell")
	// ErrInvalidCmd는 셸 함수/alias 이름으로 쓸 수 없는 명령 이름이다.
	ErrInvalidCmd = errors.New("invalid command name")
)

var cmdPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Options는 생성할 래퍼의 설정이다.
type Options struct {
	// Cmd는 래퍼 명령 이름이다. 비어 있으면 DefaultCmd.
	Cmd string
	// Binary는 호출할 rualdi 실행 파일이다. 비어 있으면 DefaultBinary.
	Binary string
	// NoEcho가 true면 이동 후 디렉토리를 출력하지 않는다.
	NoEcho bool
	// ResolveSymlinks가 true면 물리 경로(pwd -P)를 출력한다.
	ResolveSymlinks bool
}

// Supported는 init을 지원하는 셸 목록이다.
func Supported() []string {
	return []string{"bash", "fish", "zsh"}
}

// Init은 shellType용 래퍼 스크립트를 생성한다.
func Init(shellType string, opts Options) (string, error) {
	if opts.Cmd == "" {
		opts.Cmd = DefaultCmd
	}
	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}
	if !cmdPattern.MatchString(opts.Cmd) {
		return "", fmt.Errorf("shell.Init: %w: %q", ErrInvalidCmd, opts.Cmd)
	}

	var tmpl *template.Template
	switch strings.ToLower(shellType) {
	case "bash", "zsh":
		tmpl = posixTemplate
	case "fish":
		tmpl = fishTemplate
	default:
		return "", fmt.Errorf("shell.Init: %w: %s", ErrUnsupportedShell, shellType)
	}

	var b strings.Builder
	data := struct {
		Options
		Shell string
	}{opts, strings.ToLower(shellType)}
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("shell.Init: %w", err)
	}
	return b.String(), nil
}

var posixTemplate = template.Must(template.New("posix").Parse(`# =============================================================================
#
# Utility functions for rualdi.
#
# pwd based on the value of _RAD_RESOLVE_SYMLINKS.
__rualdi_pwd() {
{{- if .ResolveSymlinks}}
    builtin pwd -P
{{- else}}
    builtin pwd -L
{{- end}}
}

# cd + custom logic based on the value of _RAD_NO_ECHO.
__rualdi_cd() {
    builtin cd "$@" || return "$?"
{{- if not .NoEcho}}
    __rualdi_pwd
{{- end}}
}

# =============================================================================
#
# Jump to a directory using an alias.
__rualdi_rad() {
    if [ "$#" -eq 0 ]; then
        __rualdi_cd ~
    elif [ "$#" -eq 1 ] && [ "$1" = '-' ]; then
        if [ -n "$OLDPWD" ]; then
            __rualdi_cd "$OLDPWD"
        else
            echo "rualdi: \$OLDPWD is not set"
            return 1
        fi
    else
        local __rualdi_result
        __rualdi_result="$({{.Binary}} resolve -- "$@")" && __rualdi_cd "$__rualdi_result"
    fi
}

# Add a new alias.
__rualdi_rada() {
    {{.Binary}} add "$@"
}

# Remove an alias.
__rualdi_radr() {
    {{.Binary}} remove "$@"
}

# List aliases.
__rualdi_radl() {
    {{.Binary}} list
}

# =============================================================================
#
# Convenient aliases for rualdi.
#
alias {{.Cmd}}='__rualdi_rad'
alias {{.Cmd}}a='__rualdi_rada'
alias {{.Cmd}}l='__rualdi_radl'
alias {{.Cmd}}r='__rualdi_radr'

# =============================================================================
#
# To initialize rualdi with {{.Shell}}, add the following line to your
# {{.Shell}} configuration file (usually ~/.{{.Shell}}rc):
#
# eval "$({{.Binary}} init {{.Shell}})"
`))

var fishTemplate = template.Must(template.New("fish").Parse(`# =============================================================================
#
# Utility functions for rualdi.
#
# pwd based on the value of _RAD_RESOLVE_SYMLINKS.
function __rualdi_pwd
{{- if .ResolveSymlinks}}
    builtin pwd -P
{{- else}}
    builtin pwd -L
{{- end}}
end

# cd + custom logic based on the value of _RAD_NO_ECHO.
function __rualdi_cd
    builtin cd $argv; or return $status
{{- if not .NoEcho}}
    __rualdi_pwd
{{- end}}
end

# =============================================================================
#
# Jump to a directory using an alias.
function __rualdi_rad
    set -l argc (count $argv)
    if test $argc -eq 0
        __rualdi_cd ~
    else if test $argc -eq 1; and test "$argv[1]" = '-'
        __rualdi_cd -
    else
        set -l __rualdi_result ({{.Binary}} resolve -- $argv); and __rualdi_cd $__rualdi_result
    end
end

# Add a new alias.
function __rualdi_rada
    {{.Binary}} add $argv
end

# Remove an alias.
function __rualdi_radr
    {{.Binary}} remove $argv
end

# List aliases.
function __rualdi_radl
    {{.Binary}} list
end

# =============================================================================
#
# Convenient aliases for rualdi.
#
alias {{.Cmd}} __rualdi_rad
alias {{.Cmd}}a __rualdi_rada
alias {{.Cmd}}l __rualdi_radl
alias {{.Cmd}}r __rualdi_radr

# =============================================================================
#
# To initialize rualdi with fish, add the following line to your fish
# configuration file (usually ~/.config/fish/config.fish):
#
# {{.Binary}} init fish | source
`))
