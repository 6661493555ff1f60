// Package aliases implements the persistent alias store: a TOML file holding
// alias -> path and alias -> environment variable mappings, loaded once per
// command invocation and written back on Close when modified.
//
// There is no cross-process locking. Two invocations mutating the same file
// concurrently race and the last one to save wins.
package aliases

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rualdi/rualdi/internal/resolver"
)

// FileName은 별칭 디렉토리 안의 백업 파일 이름이다.
const FileName = "rualdi.toml"

// fileHeader는 저장할 때마다 그대로 다시 쓰는 헤더 주석이다.
const fileHeader = "# Rualdi aliases configuration file\n"

// defaultContent는 파일이 없을 때 생성하는 초기 내용이다.
const defaultContent = fileHeader + "[aliases]\n\n[environment]\n"

// document는 백업 파일의 직렬화 형태다.
// 섹션이 없으면 nil, 빈 섹션이면 빈 맵으로 디코딩된다.
type document struct {
	Aliases     map[string]string `toml:"aliases"`
	Environment map[string]string `toml:"environment"`
	Colors      map[string]any    `toml:"colors,omitempty"`
}

// Options는 Open의 선택 설정이다.
type Options struct {
	// Home은 "~" 확장에 쓰는 홈 디렉토리다. 비어 있으면 현재 사용자의 홈을 쓴다.
	Home string
}

// Store는 하나의 별칭 파일을 메모리에 올린 것이다.
type Store struct {
	doc   document
	path  string
	home  string
	dirty bool
}

// Open은 dir을 (없으면 생성해) 열고 별칭 파일을 읽는다.
// 파일이 없으면 헤더와 빈 섹션으로 생성한다.
func Open(dir string, opts Options) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, ioError("open", dir, err)
	}

	path := filepath.Join(dir, FileName)
	if err := createIfMissing(path); err != nil {
		return nil, ioError("open", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError("open", path, err)
	}

	var doc document
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, &Error{Op: "open", Subject: path, Err: fmt.Errorf("%w: %w", ErrDeserialize, err)}
	}

	home := opts.Home
	if home == "" {
		home, _ = resolver.HomeDir() // 홈을 모르면 "~"를 확장하지 않음
	}

	return &Store{doc: doc, path: path, home: home}, nil
}

func createIfMissing(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := f.WriteString(defaultContent); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Path는 백업 파일의 절대 경로를 반환한다.
func (s *Store) Path() string {
	return s.path
}

// Dirty는 마지막 저장 이후 변경이 있었는지 반환한다.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Save는 변경이 있을 때만 파일 전체를 다시 쓴다.
// 같은 디렉토리의 임시 파일에 쓰고 fsync한 뒤 rename으로 교체한다.
func (s *Store) Save() error {
	if !s.dirty {
		return nil
	}

	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(s.doc); err != nil {
		return ioError("save", s.path, err)
	}

	if err := writeFileAtomic(s.path, buf.Bytes()); err != nil {
		return ioError("save", s.path, err)
	}
	s.dirty = false
	return nil
}

// Close는 Save를 호출한다. 명령 처리의 모든 종료 경로에서 defer로 호출해야 한다.
func (s *Store) Close() error {
	return s.Save()
}

// writeFileAtomic은 path가 심볼릭 링크면 링크가 가리키는 실제 파일을 교체한다.
func writeFileAtomic(path string, data []byte) error {
	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+FileName+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // rename 성공 후에는 no-op

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
