package pipe

import "github.com/kungfusheep/tui"

// shape enables the border and sets all eight segments: the listed ones on,
// every other one off. Prior segment state never leaks through.
func shape(on ...tui.SegmentID) Op {
	var mask [8]bool
	for _, id := range on {
		mask[id] = true
	}
	return func(w *tui.Widget) error {
		w.Border.Enable()
		w.Border.SetSegments(mask)
		w.Update()
		return nil
	}
}

// Bordered draws every wall and corner.
func Bordered() Op {
	return shape(tui.Segments[:]...)
}

// NotBordered turns the border off. Segment state and glyphs are kept, so
// enabling the border again restores the previous look.
func NotBordered() Op {
	return func(w *tui.Widget) error {
		w.Border.Disable()
		w.Update()
		return nil
	}
}

// NorthBorder draws only the north wall.
func NorthBorder() Op { return shape(tui.North) }

// SouthBorder draws only the south wall.
func SouthBorder() Op { return shape(tui.South) }

// EastBorder draws only the east wall.
func EastBorder() Op { return shape(tui.East) }

// WestBorder draws only the west wall.
func WestBorder() Op { return shape(tui.West) }

// NorthEastBorder draws the north and east walls joined by their corner.
func NorthEastBorder() Op { return shape(tui.North, tui.East, tui.NorthEast) }

// NorthWestBorder draws the north and west walls joined by their corner.
func NorthWestBorder() Op { return shape(tui.North, tui.West, tui.NorthWest) }

// SouthEastBorder draws the south and east walls joined by their corner.
func SouthEastBorder() Op { return shape(tui.South, tui.East, tui.SouthEast) }

// SouthWestBorder draws the south and west walls joined by their corner.
func SouthWestBorder() Op { return shape(tui.South, tui.West, tui.SouthWest) }

// NorthSouthBorder draws the north and south walls only.
func NorthSouthBorder() Op { return shape(tui.North, tui.South) }

// EastWestBorder draws the east and west walls only.
func EastWestBorder() Op { return shape(tui.East, tui.West) }

// CornersBorder draws the four corners only.
func CornersBorder() Op { return shape(tui.Corners[:]...) }

// NoCornersBorder draws the four walls without corners.
func NoCornersBorder() Op { return shape(tui.Walls[:]...) }

// NoWallsBorder draws the four corners without walls.
func NoWallsBorder() Op { return shape(tui.Corners[:]...) }
