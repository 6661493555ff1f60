package cli

import (
	"errors"
)

// ExitCode는 rualdi의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitAlreadyExists는 별칭/바인딩 충돌이다.
	ExitAlreadyExists ExitCode = 2
	// ExitNotFound는 별칭/바인딩 없음이다.
	ExitNotFound ExitCode = 3
	// ExitNotResolvable는 경로 해석 실패다.
	ExitNotResolvable ExitCode = 4
	// ExitConfigError는 설정 또는 별칭 파일 형식 오류다.
	ExitConfigError ExitCode = 5
	// ExitIOError는 별칭 파일 입출력 오류다.
	ExitIOError ExitCode = 6
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return ExitAlreadyExists
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrNotResolvable), errors.Is(err, ErrEncoding):
		return ExitNotResolvable
	case errors.Is(err, ErrConfig), errors.Is(err, ErrDeserialize):
		return ExitConfigError
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitGeneral
	}
}
