package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Buffer is a 2D grid of glyphs representing a drawable surface.
type Buffer struct {
	cells  []Glyph
	width  int
	height int
}

// blank is what an untouched cell holds.
var blank = Glyph{Rune: ' '}

// NewBuffer creates a new buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	width, height = max(0, width), max(0, height)
	cells := make([]Glyph, width*height)
	for i := range cells {
		cells[i] = blank
	}
	return &Buffer{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Width returns the buffer width.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height.
func (b *Buffer) Height() int {
	return b.height
}

// InBounds returns true if the given coordinates are within the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the glyph at the given coordinates.
// Returns a blank glyph if out of bounds.
func (b *Buffer) Get(x, y int) Glyph {
	if !b.InBounds(x, y) {
		return blank
	}
	return b.cells[y*b.width+x]
}

// Set sets the glyph at the given coordinates.
// Does nothing if out of bounds.
func (b *Buffer) Set(x, y int, g Glyph) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = g
}

// Clear resets every cell to a blank glyph.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// Equal reports whether o has the same size and cells.
func (b *Buffer) Equal(o *Buffer) bool {
	return b.width == o.width && b.height == o.height && slices.Equal(b.cells, o.cells)
}

// FillRect fills a rectangular region with the given glyph.
func (b *Buffer) FillRect(x, y, width, height int, g Glyph) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			b.Set(x+dx, y+dy, g)
		}
	}
}

// HLine draws a horizontal line of the given glyph.
func (b *Buffer) HLine(x, y, length int, g Glyph) {
	for i := 0; i < length; i++ {
		b.Set(x+i, y, g)
	}
}

// VLine draws a vertical line of the given glyph.
func (b *Buffer) VLine(x, y, length int, g Glyph) {
	for i := 0; i < length; i++ {
		b.Set(x, y+i, g)
	}
}

// WriteString writes s starting at x,y with the given brush, stopping at
// maxWidth cells. Wide runes take two cells. Returns the cells used.
func (b *Buffer) WriteString(x, y int, s string, brush Brush, maxWidth int) int {
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if used+w > maxWidth || !b.InBounds(x+used, y) {
			break
		}
		b.Set(x+used, y, Glyph{Rune: r, Brush: brush})
		if w == 2 {
			// the trailing half of a wide rune is left empty
			b.Set(x+used+1, y, Glyph{Brush: brush})
		}
		used += w
	}
	return used
}

// Line returns row y as plain text.
func (b *Buffer) Line(y int) string {
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		if r := b.Get(x, y).Rune; r != 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// String returns the buffer as plain text, one line per row.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.Line(y)
	}
	return strings.Join(lines, "\n")
}

// Render returns the buffer as styled terminal output. Runs of cells with
// the same brush share one escape sequence.
func (b *Buffer) Render() string {
	lines := make([]string, b.height)
	for y := 0; y < b.height; y++ {
		var sb, run strings.Builder
		var current Brush
		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(StyleOf(current).Render(run.String()))
				run.Reset()
			}
		}
		for x := 0; x < b.width; x++ {
			g := b.cells[y*b.width+x]
			if g.Brush != current {
				flush()
				current = g.Brush
			}
			if g.Rune != 0 {
				run.WriteRune(g.Rune)
			}
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// StyleOf converts a brush to the equivalent lipgloss style.
func StyleOf(b Brush) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c, ok := b.Foreground(); ok && c.Mode != ColorDefault {
		s = s.Foreground(lipglossColor(c))
	}
	if c, ok := b.Background(); ok && c.Mode != ColorDefault {
		s = s.Background(lipglossColor(c))
	}
	a := b.Attributes()
	return s.
		Bold(a.Has(AttrBold)).
		Faint(a.Has(AttrDim)).
		Italic(a.Has(AttrItalic)).
		Underline(a.Has(AttrUnderline)).
		Blink(a.Has(AttrBlink)).
		Reverse(a.Has(AttrInverse)).
		Strikethrough(a.Has(AttrStrikethrough))
}

func lipglossColor(c Color) lipgloss.TerminalColor {
	switch c.Mode {
	case Color16, Color256:
		return lipgloss.ANSIColor(c.Index)
	case ColorRGB:
		const hex = "0123456789abcdef"
		return lipgloss.Color([]byte{'#',
			hex[c.R>>4], hex[c.R&0xF],
			hex[c.G>>4], hex[c.G&0xF],
			hex[c.B>>4], hex[c.B&0xF],
		})
	}
	return lipgloss.NoColor{}
}
