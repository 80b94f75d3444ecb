package erase

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// AttributeColor is a VT100 color/attribute value stored as a uint32.
// The lower 16 bits hold the primary attribute; the upper 16 bits hold an
// optional secondary attribute packed in by Combine (for fg+bg pairs).
type AttributeColor uint32

const (
	None       AttributeColor = 0
	Bright     AttributeColor = 1
	Dim        AttributeColor = 2
	Underscore AttributeColor = 4
	Reverse    AttributeColor = 7

	Black     AttributeColor = 30
	Red       AttributeColor = 31
	Green     AttributeColor = 32
	Yellow    AttributeColor = 33
	Blue      AttributeColor = 34
	Magenta   AttributeColor = 35
	Cyan      AttributeColor = 36
	LightGray AttributeColor = 37

	DarkGray     AttributeColor = 90
	LightRed     AttributeColor = 91
	LightGreen   AttributeColor = 92
	LightYellow  AttributeColor = 93
	LightBlue    AttributeColor = 94
	LightMagenta AttributeColor = 95
	LightCyan    AttributeColor = 96
	White        AttributeColor = 97

	Default           AttributeColor = 39
	DefaultBackground AttributeColor = 49
)

var (
	Pink = LightMagenta
	Gray = DarkGray
)

// DarkColorMap maps lowercase color names to colors for dark terminals.
var DarkColorMap = map[string]AttributeColor{
	"black":        Black,
	"red":          Red,
	"green":        Green,
	"yellow":       Yellow,
	"blue":         Blue,
	"magenta":      Magenta,
	"cyan":         Cyan,
	"gray":         DarkGray,
	"white":        LightGray,
	"lightwhite":   White,
	"pink":         Pink,
	"darkgray":     DarkGray,
	"lightred":     LightRed,
	"lightgreen":   LightGreen,
	"lightyellow":  LightYellow,
	"lightblue":    LightBlue,
	"lightmagenta": LightMagenta,
	"lightcyan":    LightCyan,
	"lightgray":    LightGray,
	"default":      Default,
}

// LightColorMap maps lowercase color names to colors for light terminals.
var LightColorMap = map[string]AttributeColor{
	"black":        Black,
	"red":          LightRed,
	"green":        LightGreen,
	"yellow":       LightYellow,
	"blue":         LightBlue,
	"magenta":      LightMagenta,
	"cyan":         LightCyan,
	"gray":         LightGray,
	"white":        White,
	"lightwhite":   White,
	"pink":         Pink,
	"darkgray":     DarkGray,
	"lightred":     LightRed,
	"lightgreen":   LightGreen,
	"lightyellow":  LightYellow,
	"lightblue":    LightBlue,
	"lightmagenta": LightMagenta,
	"lightcyan":    LightCyan,
	"lightgray":    LightGray,
	"default":      Default,
}

// scache caches the rendered escape sequences for AttributeColor values.
var scache sync.Map

// ColorByName looks up a color name such as "blue" or "LightMagenta".
func ColorByName(name string, lightTheme bool) (AttributeColor, error) {
	m := DarkColorMap
	if lightTheme {
		m = LightColorMap
	}
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)
	if c, ok := m[key]; ok {
		return c, nil
	}
	return None, errors.Wrapf(ErrInvalidConfig, "unknown color %q", name)
}

// Name returns the dark-theme name of a foreground color, or its number.
func (ac AttributeColor) Name() string {
	fg := ac.Foreground()
	best := ""
	for name, c := range DarkColorMap {
		if c == fg && (best == "" || len(name) < len(best) || (len(name) == len(best) && name < best)) {
			best = name
		}
	}
	if best != "" {
		return best
	}
	return strconv.FormatUint(uint64(ac), 10)
}

// Background converts a foreground color to the matching background color.
// Background colors are returned unchanged.
func (ac AttributeColor) Background() AttributeColor {
	val := uint32(ac)
	switch {
	case val >= 30 && val <= 39, val >= 90 && val <= 97:
		return AttributeColor(val + 10)
	}
	return ac
}

// Foreground converts a background color to the matching foreground color.
// Foreground colors are returned unchanged.
func (ac AttributeColor) Foreground() AttributeColor {
	val := uint32(ac)
	switch {
	case val >= 40 && val <= 49, val >= 100 && val <= 107:
		return AttributeColor(val - 10)
	}
	return ac
}

// String returns the VT100 escape sequence for setting this color/attribute.
func (ac AttributeColor) String() string {
	val := uint32(ac)

	if cached, ok := scache.Load(val); ok {
		return cached.(string)
	}

	var result string
	if val > 0xFFFF {
		primary := val & 0xFFFF
		secondary := (val >> 16) & 0xFFFF
		result = fmt.Sprintf(attributeTemplate, strconv.FormatUint(uint64(primary), 10)+";"+strconv.FormatUint(uint64(secondary), 10))
	} else {
		result = fmt.Sprintf(attributeTemplate, strconv.FormatUint(uint64(val), 10))
	}

	scache.Store(val, result)
	return result
}

// Wrap returns text wrapped with this color's escape sequence and a trailing reset.
func (ac AttributeColor) Wrap(text string) string {
	return ac.String() + text + NoColor
}

// Combine packs two AttributeColor values into one, storing the secondary
// in the upper 16 bits so that String() emits a combined escape sequence.
func (ac AttributeColor) Combine(other AttributeColor) AttributeColor {
	if ac == 0 {
		return other
	}
	if other == 0 {
		return ac
	}
	return AttributeColor((uint32(ac) & 0xFFFF) | ((uint32(other) & 0xFFFF) << 16))
}

// Equal reports whether the two values are the same color/attribute.
func (ac AttributeColor) Equal(other AttributeColor) bool {
	return ac == other
}

// luminance is a rough perceived brightness, 0-100, of the basic 16 colors.
var luminance = map[AttributeColor]int{
	Black:        0,
	Red:          30,
	Green:        45,
	Yellow:       60,
	Blue:         20,
	Magenta:      35,
	Cyan:         55,
	LightGray:    75,
	DarkGray:     40,
	LightRed:     55,
	LightGreen:   75,
	LightYellow:  90,
	LightBlue:    50,
	LightMagenta: 65,
	LightCyan:    85,
	White:        100,
}

// lowContrastLimit is the smallest luminance gap that reads comfortably.
const lowContrastLimit = 40

// LowContrast reports whether fg is hard to tell apart from bg.
// The default colors are resolved according to lightTheme.
func LowContrast(fg, bg AttributeColor, lightTheme bool) bool {
	return abs(brightness(fg, lightTheme)-brightness(bg, lightTheme)) < lowContrastLimit
}

func brightness(ac AttributeColor, lightTheme bool) int {
	c := AttributeColor(uint32(ac) & 0xFFFF)
	if c == DefaultBackground || c == Default {
		// The default foreground is the opposite of the default background.
		isBackground := c == DefaultBackground
		if lightTheme == isBackground {
			return 100
		}
		return 0
	}
	if l, ok := luminance[c.Foreground()]; ok {
		return l
	}
	return 50
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
