package pipe

import "github.com/kungfusheep/tui"

// glyphSet maps segments to the glyph each one is given. Segments left at
// the zero rune are not touched.
type glyphSet [8]tui.Glyph

// apply replaces the glyph, brush included, of every segment in the set.
// Enablement is never changed.
func (gs glyphSet) apply() Op {
	return func(w *tui.Widget) error {
		for id, g := range gs {
			if g.Rune != 0 {
				w.Border.Segment(tui.SegmentID(id)).Glyph = g
			}
		}
		w.Update()
		return nil
	}
}

func plain(r rune) tui.Glyph   { return tui.Glyph{Rune: r} }
func inverse(r rune) tui.Glyph { return tui.G(r, tui.AttrInverse) }

func cornerSet(ne, nw, se, sw rune) glyphSet {
	return glyphSet{
		tui.NorthEast: plain(ne),
		tui.NorthWest: plain(nw),
		tui.SouthEast: plain(se),
		tui.SouthWest: plain(sw),
	}
}

func wallSet(northSouth, eastWest rune) glyphSet {
	return glyphSet{
		tui.North: plain(northSouth),
		tui.South: plain(northSouth),
		tui.East:  plain(eastWest),
		tui.West:  plain(eastWest),
	}
}

func fullSet(northSouth, eastWest, ne, nw, se, sw rune) glyphSet {
	gs := cornerSet(ne, nw, se, sw)
	walls := wallSet(northSouth, eastWest)
	for _, id := range tui.Walls {
		gs[id] = walls[id]
	}
	return gs
}

// SquaredCorners sets single-line square corners.
func SquaredCorners() Op { return cornerSet('┐', '┌', '┘', '└').apply() }

// RoundedCorners sets single-line rounded corners.
func RoundedCorners() Op { return cornerSet('╮', '╭', '╯', '╰').apply() }

// PlusCorners sets every corner to '+'.
func PlusCorners() Op { return cornerSet('+', '+', '+', '+').apply() }

// AsteriskWalls sets every segment to '*'.
func AsteriskWalls() Op { return fullSet('*', '*', '*', '*', '*', '*').apply() }

// DoubledWalls sets double-line walls and corners.
func DoubledWalls() Op { return fullSet('═', '║', '╗', '╔', '╝', '╚').apply() }

// BoldWalls sets heavy-line walls and corners.
func BoldWalls() Op { return fullSet('━', '┃', '┓', '┏', '┛', '┗').apply() }

// DashedWalls1 sets dashed walls to '╶' and '╷'.
func DashedWalls1() Op { return wallSet('╶', '╷').apply() }

// BoldDashedWalls1 sets heavy dashed walls to '╺' and '╻'.
func BoldDashedWalls1() Op { return wallSet('╺', '╻').apply() }

// DashedWalls2 sets dashed walls to '╌' and '╎'.
func DashedWalls2() Op { return wallSet('╌', '╎').apply() }

// BoldDashedWalls2 sets heavy dashed walls to '╍' and '╏'.
func BoldDashedWalls2() Op { return wallSet('╍', '╏').apply() }

// DashedWalls3 sets dashed walls to '┄' and '┆'.
func DashedWalls3() Op { return wallSet('┄', '┆').apply() }

// BoldDashedWalls3 sets heavy dashed walls to '┅' and '┇'.
func BoldDashedWalls3() Op { return wallSet('┅', '┇').apply() }

// DashedWalls4 sets dashed walls to '┈' and '┊'.
func DashedWalls4() Op { return wallSet('┈', '┊').apply() }

// BoldDashedWalls4 sets heavy dashed walls to '┉' and '┋'.
func BoldDashedWalls4() Op { return wallSet('┉', '┋').apply() }

// BlockWalls1 fills every segment with a full block.
func BlockWalls1() Op { return fullSet('█', '█', '█', '█', '█', '█').apply() }

// BlockWalls2 fills every segment with a dark shade block.
func BlockWalls2() Op { return fullSet('▓', '▓', '▓', '▓', '▓', '▓').apply() }

// BlockWalls3 fills every segment with a medium shade block.
func BlockWalls3() Op { return fullSet('▒', '▒', '▒', '▒', '▒', '▒').apply() }

// BlockWalls4 fills every segment with a light shade block.
func BlockWalls4() Op { return fullSet('░', '░', '░', '░', '░', '░').apply() }

// HalfBlockWalls draws a thin solid frame from half blocks. The north and
// east walls are inverted so the filled half faces outward.
func HalfBlockWalls() Op {
	return glyphSet{
		tui.North:     inverse('▄'),
		tui.South:     plain('▄'),
		tui.East:      inverse('▌'),
		tui.West:      plain('▌'),
		tui.NorthEast: plain('▜'),
		tui.NorthWest: plain('▛'),
		tui.SouthEast: plain('▟'),
		tui.SouthWest: plain('▙'),
	}.apply()
}

var halfBlockInner = glyphSet{
	tui.North: plain('▄'),
	tui.South: inverse('▄'),
	tui.East:  plain('▌'),
	tui.West:  inverse('▌'),
}

// HalfBlockInnerWalls1 draws half block walls facing inward with quadrant
// corners.
func HalfBlockInnerWalls1() Op {
	gs := halfBlockInner
	gs[tui.NorthEast] = plain('▖')
	gs[tui.NorthWest] = plain('▗')
	gs[tui.SouthEast] = plain('▘')
	gs[tui.SouthWest] = plain('▝')
	return gs.apply()
}

// HalfBlockInnerWalls2 is HalfBlockInnerWalls1 with diagonal corners.
func HalfBlockInnerWalls2() Op {
	gs := halfBlockInner
	gs[tui.NorthEast] = plain('▞')
	gs[tui.NorthWest] = plain('▚')
	gs[tui.SouthEast] = plain('▚')
	gs[tui.SouthWest] = plain('▞')
	return gs.apply()
}

// BlockCorners sets quadrant corners sitting on the outer edge.
func BlockCorners() Op { return cornerSet('▝', '▘', '▗', '▖').apply() }

// FloatingBlockCorners sets quadrant corners sitting on the inner edge.
func FloatingBlockCorners() Op { return cornerSet('▖', '▗', '▘', '▝').apply() }
