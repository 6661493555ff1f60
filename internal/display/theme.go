package display

import (
	"strings"

	fcolor "github.com/fatih/color"
)

// Color는 테마에서 허용하는 닫힌 색상 집합이다.
type Color int

const (
	// ColorNone은 색상을 적용하지 않는다.
	ColorNone Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

var colorNames = map[string]Color{
	"none":           ColorNone,
	"black":          ColorBlack,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright-black":   ColorBrightBlack,
	"bright-red":     ColorBrightRed,
	"bright-green":   ColorBrightGreen,
	"bright-yellow":  ColorBrightYellow,
	"bright-blue":    ColorBrightBlue,
	"bright-magenta": ColorBrightMagenta,
	"bright-cyan":    ColorBrightCyan,
	"bright-white":   ColorBrightWhite,
}

var colorAttrs = map[Color]fcolor.Attribute{
	ColorBlack:         fcolor.FgBlack,
	ColorRed:           fcolor.FgRed,
	ColorGreen:         fcolor.FgGreen,
	ColorYellow:        fcolor.FgYellow,
	ColorBlue:          fcolor.FgBlue,
	ColorMagenta:       fcolor.FgMagenta,
	ColorCyan:          fcolor.FgCyan,
	ColorWhite:         fcolor.FgWhite,
	ColorBrightBlack:   fcolor.FgHiBlack,
	ColorBrightRed:     fcolor.FgHiRed,
	ColorBrightGreen:   fcolor.FgHiGreen,
	ColorBrightYellow:  fcolor.FgHiYellow,
	ColorBrightBlue:    fcolor.FgHiBlue,
	ColorBrightMagenta: fcolor.FgHiMagenta,
	ColorBrightCyan:    fcolor.FgHiCyan,
	ColorBrightWhite:   fcolor.FgHiWhite,
}

// ParseColor는 색상 이름을 Color로 변환한다. 대소문자와 '_'/'-' 차이는 무시한다.
func ParseColor(name string) (Color, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	c, ok := colorNames[key]
	return c, ok
}

// Sprint는 enabled일 때 s를 색상 escape로 감싼다.
func (c Color) Sprint(s string, enabled bool) string {
	attr, ok := colorAttrs[c]
	if !enabled || !ok {
		return s
	}
	fc := fcolor.New(attr)
	fc.EnableColor()
	return fc.Sprint(s)
}

// Theme은 목록 출력의 요소별 색상이다.
type Theme struct {
	Alias     Color
	Path      Color
	Env       Color
	Header    Color
	Separator Color
}

// DefaultTheme은 [colors] 테이블이 없을 때의 테마다.
// 인식할 수 없는 색상 이름도 키별로 이 값으로 대체된다.
func DefaultTheme() Theme {
	return Theme{
		Alias:     ColorRed,
		Path:      ColorBlue,
		Env:       ColorYellow,
		Header:    ColorGreen,
		Separator: ColorMagenta,
	}
}

// ParseTheme은 [colors] 테이블의 자유 형식 문자열을 Theme으로 변환한다.
func ParseTheme(colors map[string]string) Theme {
	theme := DefaultTheme()
	fields := map[string]*Color{
		"alias":     &theme.Alias,
		"path":      &theme.Path,
		"env":       &theme.Env,
		"header":    &theme.Header,
		"separator": &theme.Separator,
	}
	for key, value := range colors {
		field, ok := fields[strings.ToLower(key)]
		if !ok {
			continue
		}
		if c, ok := ParseColor(value); ok {
			*field = c
		}
	}
	return theme
}
