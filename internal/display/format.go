package display

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// minAliasColumn은 별칭 열의 최소 폭이다.
const minAliasColumn = 12

// DefaultRuleWidth는 출력 폭을 모를 때 구분선 길이다.
const DefaultRuleWidth = 80

// ellipsis는 폭을 넘는 경로의 잘린 앞부분을 표시한다.
const ellipsis = "…"

// Formatter는 별칭 목록을 사람이 읽는 텍스트로 만든다.
// 같은 입력과 Width에 대해 항상 같은 결과를 낸다.
type Formatter struct {
	// Width는 출력 폭이다. 0이면 경로를 자르지 않고 구분선은 DefaultRuleWidth를 쓴다.
	Width int
	// Color가 true면 Theme에 따라 색상을 적용한다.
	Color bool
	Theme Theme
	// Dirs는 경로 단축용 치환 표다.
	Dirs []KnownDir
}

// Aliases는 별칭 -> 경로 목록을 헤더와 함께 정렬된 열로 출력한다.
func (f *Formatter) Aliases(aliases map[string]string) string {
	names := sortedKeys(aliases)
	column := minAliasColumn
	for _, name := range names {
		if n := utf8.RuneCountInString(name); n > column {
			column = n
		}
	}

	var b strings.Builder
	width := f.Width
	if width <= 0 {
		width = DefaultRuleWidth
	}
	rule := f.Theme.Separator.Sprint(strings.Repeat("=", width), f.Color)
	b.WriteString(rule + "\n")
	b.WriteString(f.Theme.Header.Sprint("ALIASES", f.Color) + "\n")
	b.WriteString(rule + "\n")

	for _, name := range names {
		padded := name + strings.Repeat(" ", column-utf8.RuneCountInString(name))
		path := Shorten(aliases[name], f.Dirs)
		path = f.truncate(path, column+len(" => "))
		fmt.Fprintf(&b, "%s %s %s\n",
			f.Theme.Alias.Sprint(padded, f.Color),
			f.Theme.Separator.Sprint("=>", f.Color),
			f.Theme.Path.Sprint(path, f.Color),
		)
	}
	return b.String()
}

// Environment는 "별칭 변수명" 줄을 별칭 순서로 출력한다.
func (f *Formatter) Environment(env map[string]string) string {
	var b strings.Builder
	for _, name := range sortedKeys(env) {
		fmt.Fprintf(&b, "%s %s\n",
			f.Theme.Alias.Sprint(name, f.Color),
			f.Theme.Env.Sprint(env[name], f.Color),
		)
	}
	return b.String()
}

// truncate는 used 폭 이후에 남은 공간보다 긴 경로의 앞부분을 잘라낸다.
func (f *Formatter) truncate(path string, used int) string {
	if f.Width <= 0 {
		return path
	}
	avail := f.Width - used
	n := utf8.RuneCountInString(path)
	if avail <= utf8.RuneCountInString(ellipsis) || n <= avail {
		return path
	}
	runes := []rune(path)
	return ellipsis + string(runes[n-avail+1:])
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsTerminal은 w가 터미널에 연결된 파일인지 확인한다.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// TerminalWidth는 w가 터미널이면 그 폭을, 아니면 0을 반환한다.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
