// Package tui provides the widget tree that the pipe package configures:
// glyphs, brushes, borders, size policies, signals and the widgets that own them.
package tui

// Attribute represents text styling attributes that can be combined.
type Attribute uint8

const (
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrInverse
	AttrInvisible
	AttrStrikethrough

	AttrNone Attribute = 0
)

var attributeNames = []struct {
	attr Attribute
	name string
}{
	{AttrBold, "bold"},
	{AttrDim, "dim"},
	{AttrItalic, "italic"},
	{AttrUnderline, "underline"},
	{AttrBlink, "blink"},
	{AttrInverse, "inverse"},
	{AttrInvisible, "invisible"},
	{AttrStrikethrough, "strikethrough"},
}

// Has returns true if the attribute set contains every attribute in attr.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr == attr
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// String lists the set attributes separated by '|'.
func (a Attribute) String() string {
	if a == AttrNone {
		return "none"
	}
	s := ""
	for _, n := range attributeNames {
		if a&n.attr != 0 {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	return s
}

// ParseAttribute maps a lower-case attribute name to its flag.
func ParseAttribute(name string) (Attribute, bool) {
	for _, n := range attributeNames {
		if n.name == name {
			return n.attr, true
		}
	}
	return AttrNone, false
}

// ColorMode represents the color mode for a color value.
type ColorMode uint8

const (
	ColorDefault ColorMode = iota // Terminal default
	Color16                       // Basic 16 colors (0-15)
	Color256                      // 256 color palette (0-255)
	ColorRGB                      // 24-bit true color
)

// Color represents a terminal color.
type Color struct {
	Mode    ColorMode
	R, G, B uint8 // For RGB mode
	Index   uint8 // For 16/256 mode
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{Mode: ColorDefault}
}

// BasicColor returns one of the 16 basic terminal colors.
func BasicColor(index uint8) Color {
	return Color{Mode: Color16, Index: index}
}

// PaletteColor returns one of the 256 palette colors.
func PaletteColor(index uint8) Color {
	return Color{Mode: Color256, Index: index}
}

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// Hex returns a 24-bit true color from a hex value (e.g., 0xFF5500).
func Hex(hex uint32) Color {
	return Color{
		Mode: ColorRGB,
		R:    uint8((hex >> 16) & 0xFF),
		G:    uint8((hex >> 8) & 0xFF),
		B:    uint8(hex & 0xFF),
	}
}

// Standard basic colors for convenience.
var (
	Black   = BasicColor(0)
	Red     = BasicColor(1)
	Green   = BasicColor(2)
	Yellow  = BasicColor(3)
	Blue    = BasicColor(4)
	Magenta = BasicColor(5)
	Cyan    = BasicColor(6)
	White   = BasicColor(7)

	// Bright variants
	BrightBlack   = BasicColor(8)
	BrightRed     = BasicColor(9)
	BrightGreen   = BasicColor(10)
	BrightYellow  = BasicColor(11)
	BrightBlue    = BasicColor(12)
	BrightMagenta = BasicColor(13)
	BrightCyan    = BasicColor(14)
	BrightWhite   = BasicColor(15)
)

// Brush holds an optional foreground, an optional background and a set of
// display attributes. An unset color is distinct from DefaultColor.
type Brush struct {
	fg, bg       Color
	hasFG, hasBG bool
	attrs        Attribute
}

// NewBrush returns a brush with no colors and the given attributes.
func NewBrush(attrs ...Attribute) Brush {
	var b Brush
	b.AddAttributes(attrs...)
	return b
}

// SetForeground sets the foreground color.
func (b *Brush) SetForeground(c Color) {
	b.fg, b.hasFG = c, true
}

// SetBackground sets the background color.
func (b *Brush) SetBackground(c Color) {
	b.bg, b.hasBG = c, true
}

// RemoveForeground unsets the foreground color.
func (b *Brush) RemoveForeground() {
	b.fg, b.hasFG = Color{}, false
}

// RemoveBackground unsets the background color.
func (b *Brush) RemoveBackground() {
	b.bg, b.hasBG = Color{}, false
}

// Foreground returns the foreground color and whether one is set.
func (b Brush) Foreground() (Color, bool) {
	return b.fg, b.hasFG
}

// Background returns the background color and whether one is set.
func (b Brush) Background() (Color, bool) {
	return b.bg, b.hasBG
}

// AddAttributes sets each of the given attributes.
func (b *Brush) AddAttributes(attrs ...Attribute) {
	for _, a := range attrs {
		b.attrs = b.attrs.With(a)
	}
}

// RemoveAttributes unsets each of the given attributes.
func (b *Brush) RemoveAttributes(attrs ...Attribute) {
	for _, a := range attrs {
		b.attrs = b.attrs.Without(a)
	}
}

// ClearAttributes unsets every attribute.
func (b *Brush) ClearAttributes() {
	b.attrs = AttrNone
}

// Has reports whether every attribute in a is set.
func (b Brush) Has(a Attribute) bool {
	return b.attrs.Has(a)
}

// Attributes returns the attribute set.
func (b Brush) Attributes() Attribute {
	return b.attrs
}

// Over returns b with any colors it lacks taken from under, and the
// attributes of both combined.
func (b Brush) Over(under Brush) Brush {
	if !b.hasFG && under.hasFG {
		b.fg, b.hasFG = under.fg, true
	}
	if !b.hasBG && under.hasBG {
		b.bg, b.hasBG = under.bg, true
	}
	b.attrs |= under.attrs
	return b
}

// Glyph is a single display character paired with its own brush.
type Glyph struct {
	Rune  rune
	Brush Brush
}

// G builds a glyph from a rune and optional attributes.
func G(r rune, attrs ...Attribute) Glyph {
	return Glyph{Rune: r, Brush: NewBrush(attrs...)}
}

// Point is a zero-based column/row pair.
type Point struct {
	X, Y int
}

// Area is a width/height pair.
type Area struct {
	Width, Height int
}
