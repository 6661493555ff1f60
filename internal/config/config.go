package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// 설정 키와 그에 대응하는 환경변수 이름이다.
const (
	KeyAliasesDir      = "aliases_dir"
	KeyNoEcho          = "no_echo"
	KeyResolveSymlinks = "resolve_symlinks"
	KeyColor           = "color"

	EnvAliasesDir      = "_RAD_ALIASES_DIR"
	EnvNoEcho          = "_RAD_NO_ECHO"
	EnvResolveSymlinks = "_RAD_RESOLVE_SYMLINKS"
	EnvColor           = "_RAD_COLOR"
)

// AppName은 기본 데이터 디렉토리 이름이다.
const AppName = "rualdi"

// ErrConfig는 잘못된 설정값이다.
var ErrConfig = errors.New("invalid configuration")

// ColorMode는 목록 출력의 색상 사용 방식이다.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Enabled는 출력 대상이 터미널인지(isTTY)에 따라 색상 사용 여부를 결정한다.
func (m ColorMode) Enabled(isTTY bool) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTTY
	}
}

// Config는 rualdi 실행 설정이다. 한 번 로드된 뒤 명시적으로 전달된다.
type Config struct {
	AliasesDir      string
	NoEcho          bool
	ResolveSymlinks bool
	Color           ColorMode
}

// Load는 v에 바인딩된 환경변수(와 플래그)에서 Config를 만든다.
// 불리언 값은 "1"일 때만 true다.
func Load(v *viper.Viper) (*Config, error) {
	for key, env := range map[string]string{
		KeyAliasesDir:      EnvAliasesDir,
		KeyNoEcho:          EnvNoEcho,
		KeyResolveSymlinks: EnvResolveSymlinks,
		KeyColor:           EnvColor,
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("config.Load: %w", err)
		}
	}

	cfg := &Config{
		AliasesDir:      v.GetString(KeyAliasesDir),
		NoEcho:          isSet(v.GetString(KeyNoEcho)),
		ResolveSymlinks: isSet(v.GetString(KeyResolveSymlinks)),
		Color:           ColorAuto,
	}
	if cfg.AliasesDir == "" {
		cfg.AliasesDir = DefaultAliasesDir()
	}

	if raw := strings.TrimSpace(v.GetString(KeyColor)); raw != "" {
		mode, err := ParseColorMode(raw)
		if err != nil {
			return nil, err
		}
		cfg.Color = mode
	}
	return cfg, nil
}

// FromEnv는 프로세스 환경변수만으로 Config를 로드한다.
func FromEnv() (*Config, error) {
	return Load(viper.New())
}

// ParseColorMode는 auto, always, never 중 하나를 파싱한다.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("config.ParseColorMode: %w: %s=%q (auto, always, never)", ErrConfig, EnvColor, s)
	}
}

// DefaultAliasesDir는 $XDG_DATA_HOME/rualdi를 반환한다.
func DefaultAliasesDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// ValidateFilePermissions는 파일 권한이 0600보다 넓으면 에러를 반환한다.
func ValidateFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config.ValidateFilePermissions: %w", err)
	}
	perm := info.Mode().Perm()
	if perm&0077 != 0 {
		return fmt.Errorf("config.ValidateFilePermissions: %s 권한이 %o (0600 필요)", path, perm)
	}
	return nil
}

func isSet(v string) bool {
	return strings.TrimSpace(v) == "1"
}
