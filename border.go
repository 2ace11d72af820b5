package tui

// Box drawing characters for borders.
const (
	BoxHorizontal         = '─'
	BoxVertical           = '│'
	BoxTopLeft            = '┌'
	BoxTopRight           = '┐'
	BoxBottomLeft         = '└'
	BoxBottomRight        = '┘'
	BoxRoundedTopLeft     = '╭'
	BoxRoundedTopRight    = '╮'
	BoxRoundedBottomLeft  = '╰'
	BoxRoundedBottomRight = '╯'
	BoxDoubleHorizontal   = '═'
	BoxDoubleVertical     = '║'
	BoxDoubleTopLeft      = '╔'
	BoxDoubleTopRight     = '╗'
	BoxDoubleBottomLeft   = '╚'
	BoxDoubleBottomRight  = '╝'
)

// SegmentID names one of the eight border positions.
type SegmentID uint8

const (
	North SegmentID = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest

	segmentCount
)

var segmentNames = [segmentCount]string{
	"north", "south", "east", "west",
	"north_east", "north_west", "south_east", "south_west",
}

func (s SegmentID) String() string {
	if s >= segmentCount {
		return "unknown"
	}
	return segmentNames[s]
}

// Segments lists every segment in declaration order.
var Segments = [...]SegmentID{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

// Walls lists the four edge segments.
var Walls = [...]SegmentID{North, South, East, West}

// Corners lists the four corner segments.
var Corners = [...]SegmentID{NorthEast, NorthWest, SouthEast, SouthWest}

// Segment is one border position: whether it is drawn and with which glyph.
type Segment struct {
	Enabled bool
	Glyph   Glyph
}

// Enable turns the segment on.
func (s *Segment) Enable() { s.Enabled = true }

// Disable turns the segment off. The glyph is kept.
func (s *Segment) Disable() { s.Enabled = false }

// Border is a widget decoration made of eight segments. Enabling the border
// and enabling a segment are separate switches: a segment is drawn only
// when both are on.
type Border struct {
	enabled  bool
	segments [segmentCount]Segment
}

// DefaultBorder returns a disabled border with every segment enabled and
// single-line box glyphs.
func DefaultBorder() Border {
	var b Border
	glyphs := [segmentCount]rune{
		North:     BoxHorizontal,
		South:     BoxHorizontal,
		East:      BoxVertical,
		West:      BoxVertical,
		NorthEast: BoxTopRight,
		NorthWest: BoxTopLeft,
		SouthEast: BoxBottomRight,
		SouthWest: BoxBottomLeft,
	}
	for id, r := range glyphs {
		b.segments[id] = Segment{Enabled: true, Glyph: Glyph{Rune: r}}
	}
	return b
}

// Enable turns the border on.
func (b *Border) Enable() { b.enabled = true }

// Disable turns the border off. Segment state and glyphs are kept.
func (b *Border) Disable() { b.enabled = false }

// Enabled reports whether the border is on.
func (b *Border) Enabled() bool { return b.enabled }

// Segment returns the segment with the given id for modification.
func (b *Border) Segment(id SegmentID) *Segment {
	return &b.segments[id]
}

// SetSegments sets every segment's enabled flag from mask, indexed by SegmentID.
func (b *Border) SetSegments(mask [segmentCount]bool) {
	for id, on := range mask {
		b.segments[id].Enabled = on
	}
}

// Drawn reports whether segment id would be painted.
func (b *Border) Drawn(id SegmentID) bool {
	return b.enabled && b.segments[id].Enabled
}

// Insets returns how many cells the drawn border takes from each side.
func (b *Border) Insets() (top, bottom, left, right int) {
	if !b.enabled {
		return 0, 0, 0, 0
	}
	s := &b.segments
	if s[North].Enabled || s[NorthEast].Enabled || s[NorthWest].Enabled {
		top = 1
	}
	if s[South].Enabled || s[SouthEast].Enabled || s[SouthWest].Enabled {
		bottom = 1
	}
	if s[West].Enabled || s[NorthWest].Enabled || s[SouthWest].Enabled {
		left = 1
	}
	if s[East].Enabled || s[NorthEast].Enabled || s[SouthEast].Enabled {
		right = 1
	}
	return top, bottom, left, right
}
