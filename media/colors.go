package media

import (
	"image/color"
	"strings"
)

// namedColors maps common color names to fixed RGB values so the model can
// request "red" or "blue" without knowing hex codes.
var namedColors = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xFF},
	"white":   {0xFF, 0xFF, 0xFF, 0xFF},
	"red":     {0xE7, 0x4C, 0x3C, 0xFF},
	"green":   {0x2E, 0xCC, 0x71, 0xFF},
	"blue":    {0x34, 0x98, 0xDB, 0xFF},
	"yellow":  {0xF1, 0xC4, 0x0F, 0xFF},
	"orange":  {0xE6, 0x7E, 0x22, 0xFF},
	"purple":  {0x9B, 0x59, 0xB6, 0xFF},
	"pink":    {0xFF, 0x69, 0xB4, 0xFF},
	"teal":    {0x4E, 0xCD, 0xC4, 0xFF},
	"navy":    {0x2C, 0x3E, 0x50, 0xFF},
	"gray":    {0x7F, 0x8C, 0x8D, 0xFF},
	"grey":    {0x7F, 0x8C, 0x8D, 0xFF},
	"cyan":    {0x00, 0xBC, 0xD4, 0xFF},
	"magenta": {0xFF, 0x00, 0xFF, 0xFF},
	"brown":   {0x79, 0x55, 0x48, 0xFF},
}

// ParseColor resolves a color name or #hex string, falling back to the
// given default for anything it cannot interpret. A color request never
// fails a generation call.
func ParseColor(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return fallback
	}
	if c, ok := namedColors[s]; ok {
		return c
	}
	if c, ok := parseHex(s); ok {
		return c
	}
	return fallback
}

// parseHex decodes #RRGGBB and #RGB forms.
func parseHex(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 6:
		r, ok1 := hexByte(s[0], s[1])
		g, ok2 := hexByte(s[2], s[3])
		b, ok3 := hexByte(s[4], s[5])
		if ok1 && ok2 && ok3 {
			return color.RGBA{r, g, b, 0xFF}, true
		}
	case 3:
		r, ok1 := hexByte(s[0], s[0])
		g, ok2 := hexByte(s[1], s[1])
		b, ok3 := hexByte(s[2], s[2])
		if ok1 && ok2 && ok3 {
			return color.RGBA{r, g, b, 0xFF}, true
		}
	}
	return color.RGBA{}, false
}

func hexByte(hi, lo byte) (byte, bool) {
	h, ok1 := hexNibble(hi)
	l, ok2 := hexNibble(lo)
	return h<<4 | l, ok1 && ok2
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
