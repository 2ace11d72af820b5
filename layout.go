package tui

// Layout selects how a widget positions its children.
type Layout uint8

const (
	LayoutNone       Layout = iota // children keep the geometry they were given
	LayoutVertical                 // children stacked top to bottom
	LayoutHorizontal               // children placed left to right
)

// VBox returns a vertical container holding children.
func VBox(name string, children ...*Widget) *Widget {
	w := NewWidget(name)
	w.Layout = LayoutVertical
	return w.AddChildren(children...)
}

// HBox returns a horizontal container holding children.
func HBox(name string, children ...*Widget) *Widget {
	w := NewWidget(name)
	w.Layout = LayoutHorizontal
	return w.AddChildren(children...)
}

// Arrange positions and sizes the children of w inside its content area,
// then arranges each child in turn.
func Arrange(w *Widget) {
	origin, content := w.ContentOrigin(), w.ContentSize()
	switch w.Layout {
	case LayoutVertical:
		policies := make([]*SizePolicy, len(w.children))
		for i, c := range w.children {
			policies[i] = &c.HeightPolicy
		}
		y := origin.Y
		for i, h := range Distribute(policies, content.Height) {
			c := w.children[i]
			c.MoveTo(Point{X: origin.X, Y: y})
			c.Resize(Area{Width: crossSize(&c.WidthPolicy, content.Width), Height: h})
			y += h
		}
	case LayoutHorizontal:
		policies := make([]*SizePolicy, len(w.children))
		for i, c := range w.children {
			policies[i] = &c.WidthPolicy
		}
		x := origin.X
		for i, cw := range Distribute(policies, content.Width) {
			c := w.children[i]
			c.MoveTo(Point{X: x, Y: origin.Y})
			c.Resize(Area{Width: cw, Height: crossSize(&c.HeightPolicy, content.Height)})
			x += cw
		}
	}
	for _, c := range w.children {
		Arrange(c)
	}
}

func crossSize(p *SizePolicy, avail int) int {
	if p.typ == SizeFixed {
		return min(p.hint, avail)
	}
	return min(avail, p.max)
}

// Distribute splits avail cells between siblings along one axis.
//
// Every widget starts at its hint clamped to its bounds (ignored widgets
// start at zero). Spare space goes to expanding widgets first, then to any
// widget allowed to grow, shared by stretch factor. A shortfall is taken
// from the last shrinkable widgets first, down to their minimum, and then
// below it for widgets that can ignore their minimum.
func Distribute(policies []*SizePolicy, avail int) []int {
	sizes := make([]int, len(policies))
	total := 0
	for i, p := range policies {
		if p.typ != SizeIgnored {
			sizes[i] = max(p.min, min(p.hint, p.max))
		}
		total += sizes[i]
	}

	switch {
	case total < avail:
		extra := avail - total
		extra = grow(policies, sizes, extra, func(p *SizePolicy) bool { return p.expands() })
		grow(policies, sizes, extra, func(p *SizePolicy) bool { return p.grows() })
	case total > avail:
		deficit := total - avail
		for i := len(sizes) - 1; i >= 0 && deficit > 0; i-- {
			p := policies[i]
			if !p.shrinks() {
				continue
			}
			take := min(deficit, sizes[i]-p.min)
			if take > 0 {
				sizes[i] -= take
				deficit -= take
			}
		}
		for i := len(sizes) - 1; i >= 0 && deficit > 0; i-- {
			if !policies[i].canIgnoreMin {
				continue
			}
			take := min(deficit, sizes[i])
			sizes[i] -= take
			deficit -= take
		}
	}
	return sizes
}

// grow hands out extra to the widgets accepted by eligible and returns
// whatever could not be placed.
func grow(policies []*SizePolicy, sizes []int, extra int, eligible func(*SizePolicy) bool) int {
	for extra > 0 {
		var open []int
		weight := 0.0
		for i, p := range policies {
			if eligible(p) && sizes[i] < p.max {
				open = append(open, i)
				weight += p.stretch
			}
		}
		if len(open) == 0 {
			return extra
		}
		given := 0
		for _, i := range open {
			share := extra / len(open)
			if weight > 0 {
				share = int(float64(extra) * policies[i].stretch / weight)
			}
			share = min(share, policies[i].max-sizes[i])
			sizes[i] += share
			given += share
		}
		if given == 0 {
			// rounding left less than one cell per widget: hand out singles in order
			for _, i := range open {
				if extra == 0 {
					break
				}
				if sizes[i] < policies[i].max {
					sizes[i]++
					extra--
				}
			}
			continue
		}
		extra -= given
	}
	return 0
}
