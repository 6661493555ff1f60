package aliases

import (
	"sort"
	"strings"

	"github.com/rualdi/rualdi/internal/display"
)

// Theme은 파일의 [colors] 테이블로부터 목록 출력 테마를 만든다.
// 문자열이 아닌 값은 무시되어 기본 색상을 쓴다.
func (s *Store) Theme() display.Theme {
	colors := make(map[string]string, len(s.doc.Colors))
	for key, v := range s.doc.Colors {
		if name, ok := v.(string); ok {
			colors[key] = name
		}
	}
	return display.ParseTheme(colors)
}

// List는 별칭 목록을 f로 포맷한다. 별칭이 없으면 false를 반환한다.
func (s *Store) List(f *display.Formatter) (string, bool) {
	if len(s.doc.Aliases) == 0 {
		return "", false
	}
	return f.Aliases(s.doc.Aliases), true
}

// ListEnv는 환경변수 바인딩 목록을 f로 포맷한다. 없으면 빈 문자열이다.
func (s *Store) ListEnv(f *display.Formatter) string {
	return f.Environment(s.doc.Environment)
}

// ListAliasCompletions는 셸 자동완성용 별칭 이름을 사전순으로 줄바꿈 연결한다.
func (s *Store) ListAliasCompletions() (string, bool) {
	if len(s.doc.Aliases) == 0 {
		return "", false
	}
	return strings.Join(sortedKeys(s.doc.Aliases), "\n"), true
}

// ListEnvCompletions는 셸 자동완성용 환경변수 이름을 별칭 순서로 줄바꿈 연결한다.
func (s *Store) ListEnvCompletions() (string, bool) {
	if len(s.doc.Environment) == 0 {
		return "", false
	}
	keys := sortedKeys(s.doc.Environment)
	vars := make([]string, 0, len(keys))
	for _, k := range keys {
		vars = append(vars, s.doc.Environment[k])
	}
	return strings.Join(vars, "\n"), true
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
