package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ParseGlyph converts s into a glyph. s must hold exactly one grapheme
// cluster made of a single rune with a display width of one or two cells.
func ParseGlyph(s string) (Glyph, error) {
	switch n := uniseg.GraphemeClusterCount(s); {
	case n == 0:
		return Glyph{}, &GlyphError{Input: s, Message: "empty"}
	case n > 1:
		return Glyph{}, &GlyphError{Input: s, Message: "more than one character"}
	}
	r := []rune(s)
	if len(r) != 1 {
		// combining sequences have no single-rune cell representation
		return Glyph{}, &GlyphError{Input: s, Message: "combining sequence"}
	}
	if w := runewidth.RuneWidth(r[0]); w < 1 || w > 2 {
		return Glyph{}, &GlyphError{Input: s, Message: "not printable"}
	}
	return Glyph{Rune: r[0]}, nil
}

// MustGlyph is like ParseGlyph but panics on error.
func MustGlyph(s string) Glyph {
	g, err := ParseGlyph(s)
	if err != nil {
		panic(err)
	}
	return g
}

var colorNames = map[string]Color{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright-black":   BrightBlack,
	"gray":           BrightBlack,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
	"default":        DefaultColor(),
}

// ParseColor accepts a color name ("red", "bright-blue", "default"),
// a palette index ("0".."255") or a hex triplet ("#ff8800").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, err
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}
	if n < 16 {
		return BasicColor(uint8(n)), nil
	}
	return PaletteColor(uint8(n)), nil
}
