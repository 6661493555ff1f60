package resolver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/go-homedir"
)

// ErrNotResolvable는 정규화된 경로가 존재하는 디렉토리가 아닐 때 반환된다.
var ErrNotResolvable = errors.New("could not resolve path")

// ErrEncoding는 경로 구성요소를 텍스트로 해석할 수 없을 때 반환된다.
var ErrEncoding = errors.New("invalid utf-8 sequence in path")

// PathError는 실패한 경로를 함께 담는 에러다.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Lookup은 별칭 이름을 (틸드가 확장된) 대상 경로로 조회한다.
// aliases.Store가 이 인터페이스를 만족한다.
type Lookup interface {
	Get(alias string) (string, bool)
}

// Resolver는 별칭 접두어를 포함할 수 있는 경로를 절대 디렉토리 경로로 변환한다.
type Resolver struct {
	cwd string
}

// New는 cwd를 기준 디렉토리로 사용하는 Resolver를 생성한다.
func New(cwd string) *Resolver {
	return &Resolver{cwd: cwd}
}

// Normalize는 경로를 절대 경로로 만든 뒤 어휘적으로 정규화한다.
// "."은 버리고 ".."은 직전 구성요소를 제거하며 루트 위로는 올라가지 않는다.
// 심볼릭 링크는 해석하지 않는다.
func (r *Resolver) Normalize(path string) string {
	if !filepath.IsAbs(path) {
		path = r.cwd + string(filepath.Separator) + path
	}
	return filepath.Clean(path)
}

// ResolvePath는 경로를 정규화하고 디렉토리로 존재하는지 확인한다.
func (r *Resolver) ResolvePath(path string) (string, error) {
	result := r.Normalize(path)
	info, err := os.Stat(result)
	if err != nil || !info.IsDir() {
		return "", &PathError{Path: result, Err: ErrNotResolvable}
	}
	return result, nil
}

// ResolveAlias는 상대 경로의 첫 구성요소를 별칭으로 조회해 대상 경로로 치환한다.
// 별칭이 없으면 입력을 그대로 반환한다. 존재 여부는 확인하지 않는다.
func (r *Resolver) ResolveAlias(path string, aliases Lookup) (string, error) {
	first, rest, _ := strings.Cut(filepath.ToSlash(path), "/")
	if !utf8.ValidString(first) {
		return "", &PathError{Path: path, Err: ErrEncoding}
	}

	target, ok := aliases.Get(first)
	if !ok {
		return path, nil
	}
	if rest == "" {
		return target, nil
	}
	return target + string(filepath.Separator) + filepath.FromSlash(rest), nil
}

// Resolve는 절대 경로는 그대로, 상대 경로는 별칭 치환 후 ResolvePath로 해석한다.
func (r *Resolver) Resolve(path string, aliases Lookup) (string, error) {
	if filepath.IsAbs(path) {
		return r.ResolvePath(path)
	}
	spliced, err := r.ResolveAlias(path, aliases)
	if err != nil {
		return "", fmt.Errorf("resolver.Resolve: %w", err)
	}
	return r.ResolvePath(spliced)
}

// HomeDir는 현재 사용자의 홈 디렉토리를 반환한다.
func HomeDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolver.HomeDir: %w", err)
	}
	return home, nil
}

// ExpandTilde는 선행 "~" 토큰을 home으로 확장한다.
// "~user" 형태는 지원하지 않으며 그대로 둔다.
func ExpandTilde(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return home + path[1:]
	}
	return path
}
