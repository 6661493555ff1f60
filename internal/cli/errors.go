package cli

import (
	"github.com/rualdi/rualdi/internal/aliases"
	"github.com/rualdi/rualdi/internal/config"
	"github.com/rualdi/rualdi/internal/resolver"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrAlreadyExists는 별칭 또는 환경변수 바인딩 충돌이다.
	ErrAlreadyExists = aliases.ErrAlreadyExists
	// ErrNotFound는 별칭 또는 환경변수 바인딩이 없을 때다.
	ErrNotFound = aliases.ErrNotFound
	// ErrNotResolvable는 경로가 존재하는 디렉토리로 해석되지 않을 때다.
	ErrNotResolvable = resolver.ErrNotResolvable
	// ErrEncoding는 별칭 부분이 유효한 UTF-8이 아닐 때다.
	ErrEncoding = resolver.ErrEncoding
	// ErrDeserialize는 별칭 파일 형식 오류다.
	ErrDeserialize = aliases.ErrDeserialize
	// ErrIO는 별칭 파일 입출력 오류다.
	ErrIO = aliases.ErrIO
	// ErrConfig는 환경변수 설정 오류다.
	ErrConfig = config.ErrConfig
)
