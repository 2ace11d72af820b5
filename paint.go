package tui

import "strings"

// Paint draws w and its subtree into buf: wallpaper, border, text, then
// children in order. Disabled widgets and their children are skipped.
func Paint(w *Widget, buf *Buffer) {
	if !w.enabled {
		return
	}
	pos, size := w.position, w.size
	if size.Width > 0 && size.Height > 0 {
		fill := Glyph{Rune: ' ', Brush: w.Brush}
		if g, ok := w.Wallpaper(); ok {
			fill = g
			if w.wallpaperWithBrush {
				fill.Brush = g.Brush.Over(w.Brush)
			}
		}
		buf.FillRect(pos.X, pos.Y, size.Width, size.Height, fill)
		paintBorder(w, buf)
		paintText(w, buf)
	}
	w.dirty = false
	w.Send(Event{Kind: EventPaint})
	for _, c := range w.children {
		Paint(c, buf)
	}
}

func paintBorder(w *Widget, buf *Buffer) {
	b := &w.Border
	if !b.Enabled() {
		return
	}
	x0, y0 := w.position.X, w.position.Y
	x1, y1 := x0+w.size.Width-1, y0+w.size.Height-1
	top, bottom, left, right := b.Insets()
	glyph := func(id SegmentID) Glyph {
		g := b.Segment(id).Glyph
		g.Brush = g.Brush.Over(w.Brush)
		return g
	}
	span := w.size.Width - left - right
	if b.Drawn(North) {
		buf.HLine(x0+left, y0, span, glyph(North))
	}
	if b.Drawn(South) {
		buf.HLine(x0+left, y1, span, glyph(South))
	}
	span = w.size.Height - top - bottom
	if b.Drawn(West) {
		buf.VLine(x0, y0+top, span, glyph(West))
	}
	if b.Drawn(East) {
		buf.VLine(x1, y0+top, span, glyph(East))
	}
	corners := [...]struct {
		id   SegmentID
		x, y int
	}{
		{NorthWest, x0, y0},
		{NorthEast, x1, y0},
		{SouthWest, x0, y1},
		{SouthEast, x1, y1},
	}
	for _, c := range corners {
		if b.Drawn(c.id) {
			buf.Set(c.x, c.y, glyph(c.id))
		}
	}
}

func paintText(w *Widget, buf *Buffer) {
	if w.text == "" {
		return
	}
	origin, area := w.ContentOrigin(), w.ContentSize()
	for i, line := range strings.Split(w.text, "\n") {
		if i >= area.Height {
			break
		}
		buf.WriteString(origin.X, origin.Y+i, line, w.Brush, area.Width)
	}
}
