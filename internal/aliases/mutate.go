package aliases

import (
	"maps"

	"github.com/rualdi/rualdi/internal/resolver"
)

// Add는 alias -> path 매핑을 추가한다. 이미 있으면 ErrAliasExists를 반환한다.
func (s *Store) Add(alias, path string) error {
	if _, ok := s.doc.Aliases[alias]; ok {
		return &Error{Op: "add", Subject: alias, Err: ErrAliasExists}
	}
	if s.doc.Aliases == nil {
		s.doc.Aliases = make(map[string]string)
	}
	s.doc.Aliases[alias] = path
	s.dirty = true
	return nil
}

// Remove는 별칭과 그 환경변수 바인딩을 함께 제거한다.
// 별칭이 없으면 ErrAliasNotFound를 반환한다.
func (s *Store) Remove(alias string) error {
	if _, ok := s.doc.Aliases[alias]; !ok {
		return &Error{Op: "remove", Subject: alias, Err: ErrAliasNotFound}
	}
	delete(s.doc.Aliases, alias)
	delete(s.doc.Environment, alias)
	s.dirty = true
	return nil
}

// AddEnv는 별칭에 환경변수 이름을 연결한다.
// 별칭이 없거나, 이미 연결되어 있거나, 변수명이 다른 별칭에 쓰이고 있으면 실패한다.
// 변수명의 대소문자는 그대로 저장한다.
func (s *Store) AddEnv(alias, varName string) error {
	if _, ok := s.doc.Aliases[alias]; !ok {
		return &Error{Op: "add-env", Subject: alias, Err: ErrAliasNotFound}
	}
	if _, ok := s.doc.Environment[alias]; ok {
		return &Error{Op: "add-env", Subject: alias, Err: ErrAliasBound}
	}
	for owner, v := range s.doc.Environment {
		if v == varName && owner != alias {
			return &Error{Op: "add-env", Subject: varName, Err: ErrVarTaken}
		}
	}
	if s.doc.Environment == nil {
		s.doc.Environment = make(map[string]string)
	}
	s.doc.Environment[alias] = varName
	s.dirty = true
	return nil
}

// RemoveEnv는 별칭의 환경변수 바인딩을 제거한다.
func (s *Store) RemoveEnv(alias string) error {
	if _, ok := s.doc.Environment[alias]; !ok {
		return &Error{Op: "remove-env", Subject: alias, Err: ErrEnvNotFound}
	}
	delete(s.doc.Environment, alias)
	s.dirty = true
	return nil
}

// Get은 별칭의 대상 경로를 "~"를 확장해 반환한다.
func (s *Store) Get(alias string) (string, bool) {
	path, ok := s.doc.Aliases[alias]
	if !ok {
		return "", false
	}
	return resolver.ExpandTilde(path, s.home), true
}

// GetEnv는 별칭에 연결된 환경변수 이름을 반환한다.
// 별칭 자체가 없으면 ErrAliasNotFound, 바인딩만 없으면 ErrEnvNotFound다.
func (s *Store) GetEnv(alias string) (string, error) {
	if v, ok := s.doc.Environment[alias]; ok {
		return v, nil
	}
	if _, ok := s.doc.Aliases[alias]; !ok {
		return "", &Error{Op: "get-env", Subject: alias, Err: ErrAliasNotFound}
	}
	return "", &Error{Op: "get-env", Subject: alias, Err: ErrEnvNotFound}
}

// HasEnv는 별칭에 환경변수 바인딩이 있는지 확인한다.
func (s *Store) HasEnv(alias string) bool {
	_, ok := s.doc.Environment[alias]
	return ok
}

// Aliases는 저장된 (확장 전) 별칭 맵의 복사본을 반환한다.
// [aliases] 섹션이 없으면 nil이다.
func (s *Store) Aliases() map[string]string {
	return maps.Clone(s.doc.Aliases)
}

// Environment는 환경변수 바인딩 맵의 복사본을 반환한다.
// [environment] 섹션이 없으면 nil이다.
func (s *Store) Environment() map[string]string {
	return maps.Clone(s.doc.Environment)
}
