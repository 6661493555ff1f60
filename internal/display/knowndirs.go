package display

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
)

// KnownDir는 출력 시 짧은 토큰으로 치환할 잘 알려진 디렉토리다.
type KnownDir struct {
	Path  string
	Token string
}

// KnownDirs는 현재 OS의 잘 알려진 디렉토리 치환 표를 만든다.
// 표시 전용이며 저장되거나 해석되는 경로에는 영향을 주지 않는다.
func KnownDirs(home string) []KnownDir {
	dirs := []KnownDir{
		{xdg.CacheHome, "%CACHE"},
		{xdg.ConfigHome, "%CONFIG"},
		{xdg.DataHome, "%DATA"},
		{xdg.StateHome, "%STATE"},
		{xdg.UserDirs.Desktop, "%DESKTOP"},
		{xdg.UserDirs.Download, "%DOWNLOAD"},
		{xdg.UserDirs.Documents, "%DOCUMENTS"},
		{xdg.UserDirs.Music, "%MUSIC"},
		{xdg.UserDirs.Pictures, "%PICTURES"},
		{xdg.UserDirs.Videos, "%VIDEOS"},
	}
	if home != "" {
		dirs = append(dirs, KnownDir{home, "~"})
	}
	return normalizeDirs(dirs)
}

// normalizeDirs는 빈 항목과 홈 자체와 같은 중복 경로를 걸러내고
// 가장 긴 경로가 먼저 오도록 정렬한다.
func normalizeDirs(dirs []KnownDir) []KnownDir {
	seen := make(map[string]bool, len(dirs))
	out := make([]KnownDir, 0, len(dirs))
	for _, d := range dirs {
		if d.Path == "" {
			continue
		}
		p := filepath.Clean(d.Path)
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, KnownDir{Path: p, Token: d.Token})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Path) > len(out[j].Path)
	})
	return out
}

// Shorten은 가장 긴 일치 접두 디렉토리를 토큰으로 치환한다.
func Shorten(path string, dirs []KnownDir) string {
	for _, d := range dirs {
		if path == d.Path {
			return d.Token
		}
		if strings.HasPrefix(path, d.Path+string(filepath.Separator)) {
			return d.Token + path[len(d.Path):]
		}
	}
	return path
}
