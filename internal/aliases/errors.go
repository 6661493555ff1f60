package aliases

import (
	"errors"
	"fmt"
)

// 에러 종류별 sentinel error다. 세부 sentinel은 errors.Is로 종류 sentinel과도 매칭된다.
var (
	// ErrAlreadyExists는 별칭 또는 환경변수 바인딩이 충돌할 때의 종류다.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotFound는 별칭 또는 환경변수 바인딩이 없을 때의 종류다.
	ErrNotFound = errors.New("not found")
	// ErrIO는 별칭 파일/디렉토리 입출력 실패다.
	ErrIO = errors.New("i/o error")
	// ErrDeserialize는 별칭 파일 파싱 실패다.
	ErrDeserialize = errors.New("malformed aliases file")

	// ErrAliasExists는 이미 존재하는 별칭을 추가하려 할 때 반환된다.
	ErrAliasExists = fmt.Errorf("alias %w", ErrAlreadyExists)
	// ErrAliasBound는 별칭에 이미 환경변수가 연결되어 있을 때 반환된다.
	ErrAliasBound = fmt.Errorf("environment variable for alias %w", ErrAlreadyExists)
	// ErrVarTaken은 환경변수 이름이 다른 별칭에 이미 쓰이고 있을 때 반환된다.
	ErrVarTaken = fmt.Errorf("environment variable name %w", ErrAlreadyExists)
	// ErrAliasNotFound는 별칭이 없을 때 반환된다.
	ErrAliasNotFound = fmt.Errorf("alias %w", ErrNotFound)
	// ErrEnvNotFound는 별칭은 있으나 환경변수 바인딩이 없을 때 반환된다.
	ErrEnvNotFound = fmt.Errorf("environment variable %w", ErrNotFound)
)

// Kind는 Error의 의미적 종류다.
type Kind int

const (
	KindUnknown Kind = iota
	KindAlreadyExists
	KindNotFound
	KindIO
	KindDeserialize
)

func (k Kind) String() string {
	switch k {
	case KindAlreadyExists:
		return "AlreadyExists"
	case KindNotFound:
		return "NotFound"
	case KindIO:
		return "IOError"
	case KindDeserialize:
		return "DeserializeError"
	default:
		return "Unknown"
	}
}

// Error는 Store 연산 실패다. Subject는 문제가 된 별칭이나 파일 경로다.
type Error struct {
	Op      string
	Subject string
	Err     error
}

func (e *Error) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("aliases.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("aliases.%s '%s': %v", e.Op, e.Subject, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Kind는 감싼 sentinel로부터 에러 종류를 판정한다.
func (e *Error) Kind() Kind {
	return KindOf(e.Err)
}

// KindOf는 임의의 에러 체인에서 종류를 판정한다.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrAlreadyExists):
		return KindAlreadyExists
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrIO):
		return KindIO
	case errors.Is(err, ErrDeserialize):
		return KindDeserialize
	default:
		return KindUnknown
	}
}

func ioError(op, path string, err error) error {
	return &Error{Op: op, Subject: path, Err: fmt.Errorf("%w: %w", ErrIO, err)}
}
