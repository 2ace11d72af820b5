package pipe

import (
	"slices"

	"github.com/kungfusheep/tui"
)

// GlyphLike is anything a border or wallpaper glyph can be built from. A
// string must hold exactly one printable character.
type GlyphLike interface {
	rune | string | tui.Glyph
}

// toGlyph converts at op construction time. An invalid string panics here,
// before any widget is touched.
func toGlyph[G GlyphLike](g G) tui.Glyph {
	switch v := any(g).(type) {
	case rune:
		return tui.Glyph{Rune: v}
	case string:
		return tui.MustGlyph(v)
	case tui.Glyph:
		return v
	}
	panic("unreachable")
}

// setGlyph stores g on each segment without touching whether it is enabled.
func setGlyph(g tui.Glyph, ids ...tui.SegmentID) Op {
	return func(w *tui.Widget) error {
		for _, id := range ids {
			w.Border.Segment(id).Glyph = g
		}
		w.Update()
		return nil
	}
}

// addAttributes adds attrs to the glyph brush of each segment.
func addAttributes(attrs []tui.Attribute, ids ...tui.SegmentID) Op {
	attrs = slices.Clone(attrs)
	return func(w *tui.Widget) error {
		for _, id := range ids {
			w.Border.Segment(id).Glyph.Brush.AddAttributes(attrs...)
		}
		w.Update()
		return nil
	}
}

// NorthWall sets the north wall glyph.
func NorthWall[G GlyphLike](g G) Op { return setGlyph(toGlyph(g), tui.North) }

// NorthWallAttributes adds attributes to the north wall glyph.
func NorthWallAttributes(a ...tui.Attribute) Op { return addAttributes(a, tui.North) }

// SouthWall sets the south wall glyph.
func SouthWall[G GlyphLike](g G) Op { return setGlyph(toGlyph(g), tui.South) }

// SouthWallAttributes adds attributes to the south wall glyph.
func SouthWallAttributes(a ...tui.Attribute) Op { return addAttributes(a, tui.South) }

// EastWall sets the east wall glyph.
func EastWall[G GlyphLike](g G) Op { return setGlyph(toGlyph(g), tui.East) }

// EastWallAttributes adds attributes to the east wall glyph.
func EastWallAttributes(a ...tui.Attribute) Op { return addAttributes(a, tui.East) }

// WestWall sets the west wall glyph.
func WestWall[G GlyphLike](g G) Op { return setGlyph(toGlyph(g), tui.West) }

// WestWallAttributes adds attributes to the west wall glyph.
func WestWallAttributes(a ...tui.Attribute) Op { return addAttributes(a, tui.West) }

// NorthSouthWalls sets the north and south wall glyphs.
func NorthSouthWalls[G GlyphLike](g G) Op {
	return setGlyph(toGlyph(g), tui.North, tui.South)
}

// NorthSouthWallsAttributes adds attributes to the north and south wall glyphs.
func NorthSouthWallsAttributes(a ...tui.Attribute) Op {
	return addAttributes(a, tui.North, tui.South)
}

// EastWestWalls sets the east and west wall glyphs.
func EastWestWalls[G GlyphLike](g G) Op {
	return setGlyph(toGlyph(g), tui.East, tui.West)
}

// EastWestWallsAttributes adds attributes to the east and west wall glyphs.
func EastWestWallsAttributes(a ...tui.Attribute) Op {
	return addAttributes(a, tui.East, tui.West)
}

// NorthEastCorner sets the north-east corner glyph.
func NorthEastCorner[G GlyphLike](g G) Op { return setGlyph(toGlyph(g), tui.NorthEast) }

// NorthEastCornerAttributes adds attributes to the north-east corner glyph.
func NorthEastCornerAttributes(a ...tui.Attribute) Op { return addAttributes(a, tui.NorthEast) }

// NorthWestCorner sets the north-west corner glyph.
func NorthWestCorner[G GlyphLike](g G) Op { return setGlyph(toGlyph(g), tui.NorthWest) }

// NorthWestCornerAttributes adds attributes to the north-west corner glyph.
func NorthWestCornerAttributes(a ...tui.Attribute) Op { return addAttributes(a, tui.NorthWest) }

// SouthEastCorner sets the south-east corner glyph.
func SouthEastCorner[G GlyphLike](g G) Op { return setGlyph(toGlyph(g), tui.SouthEast) }

// SouthEastCornerAttributes adds attributes to the south-east corner glyph.
func SouthEastCornerAttributes(a ...tui.Attribute) Op { return addAttributes(a, tui.SouthEast) }

// SouthWestCorner sets the south-west corner glyph.
func SouthWestCorner[G GlyphLike](g G) Op { return setGlyph(toGlyph(g), tui.SouthWest) }

// SouthWestCornerAttributes adds attributes to the south-west corner glyph.
func SouthWestCornerAttributes(a ...tui.Attribute) Op { return addAttributes(a, tui.SouthWest) }

// NorthEastWalls sets the north wall, north-east corner and east wall glyphs.
func NorthEastWalls[G GlyphLike](g G) Op {
	return setGlyph(toGlyph(g), tui.North, tui.NorthEast, tui.East)
}

// NorthEastWallsAttributes adds attributes to the north wall, north-east
// corner and east wall glyphs.
func NorthEastWallsAttributes(a ...tui.Attribute) Op {
	return addAttributes(a, tui.North, tui.NorthEast, tui.East)
}

// NorthWestWalls sets the north wall, north-west corner and west wall glyphs.
func NorthWestWalls[G GlyphLike](g G) Op {
	return setGlyph(toGlyph(g), tui.North, tui.NorthWest, tui.West)
}

// NorthWestWallsAttributes adds attributes to the north wall, north-west
// corner and west wall glyphs.
func NorthWestWallsAttributes(a ...tui.Attribute) Op {
	return addAttributes(a, tui.North, tui.NorthWest, tui.West)
}

// SouthEastWalls sets the south wall, south-east corner and east wall glyphs.
func SouthEastWalls[G GlyphLike](g G) Op {
	return setGlyph(toGlyph(g), tui.South, tui.SouthEast, tui.East)
}

// SouthEastWallsAttributes adds attributes to the south wall, south-east
// corner and east wall glyphs.
func SouthEastWallsAttributes(a ...tui.Attribute) Op {
	return addAttributes(a, tui.South, tui.SouthEast, tui.East)
}

// SouthWestWalls sets the south wall, south-west corner and west wall glyphs.
func SouthWestWalls[G GlyphLike](g G) Op {
	return setGlyph(toGlyph(g), tui.South, tui.SouthWest, tui.West)
}

// SouthWestWallsAttributes adds attributes to the south wall, south-west
// corner and west wall glyphs.
func SouthWestWallsAttributes(a ...tui.Attribute) Op {
	return addAttributes(a, tui.South, tui.SouthWest, tui.West)
}
