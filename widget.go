package tui

import (
	"slices"
	"time"
)

// Widget is a node in the UI tree. Its public fields are the configuration
// surface the pipe package mutates; geometry and tree structure go through
// methods so the right events are sent.
type Widget struct {
	Brush        Brush
	Cursor       Cursor
	FocusPolicy  FocusPolicy
	WidthPolicy  SizePolicy
	HeightPolicy SizePolicy
	Border       Border
	Signals      Signals
	Layout       Layout

	name     string
	parent   *Widget
	children []*Widget
	enabled  bool
	position Point
	size     Area
	text     string

	wallpaper          Glyph
	hasWallpaper       bool
	wallpaperWithBrush bool

	filters  []*Widget
	filterFn func(target *Widget, ev Event) bool

	engine     *AnimationEngine
	animatedBy *AnimationEngine
	updates    int
	dirty      bool
	destroyed  bool
}

// NewWidget creates an enabled widget with default policies and a disabled
// single-line border.
func NewWidget(name string) *Widget {
	w := &Widget{
		name:               name,
		enabled:            true,
		Border:             DefaultBorder(),
		WidthPolicy:        DefaultSizePolicy(),
		HeightPolicy:       DefaultSizePolicy(),
		wallpaperWithBrush: true,
		dirty:              true,
	}
	w.WidthPolicy.changed = w.policyChanged
	w.HeightPolicy.changed = w.policyChanged
	return w
}

// Each calls fn once with w. It makes a single widget, or any type that
// embeds Widget, usable wherever a collection of widgets is expected.
func (w *Widget) Each(fn func(*Widget) error) error {
	return fn(w)
}

// Name returns the widget name.
func (w *Widget) Name() string { return w.name }

// SetName sets the human readable name.
func (w *Widget) SetName(name string) { w.name = name }

// Parent returns the parent widget or nil for a root.
func (w *Widget) Parent() *Widget { return w.parent }

// AddChild appends c to w's children, detaching it from any previous parent.
func (w *Widget) AddChild(c *Widget) *Widget {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = w
	w.children = append(w.children, c)
	logger.Debug().Str("parent", w.name).Str("child", c.name).Msg("child added")
	w.Send(Event{Kind: EventChildAdded, Child: c})
	w.Update()
	return w
}

// AddChildren appends each widget in order.
func (w *Widget) AddChildren(cs ...*Widget) *Widget {
	for _, c := range cs {
		w.AddChild(c)
	}
	return w
}

// RemoveChild detaches c and reports whether it was a child of w.
func (w *Widget) RemoveChild(c *Widget) bool {
	i := slices.Index(w.children, c)
	if i < 0 {
		return false
	}
	w.children = slices.Delete(w.children, i, i+1)
	c.parent = nil
	logger.Debug().Str("parent", w.name).Str("child", c.name).Msg("child removed")
	w.Send(Event{Kind: EventChildRemoved, Child: c})
	w.Update()
	return true
}

// Children returns a live view of the direct children.
func (w *Widget) Children() ChildView {
	return ChildView{parent: w}
}

// Descendants collects every widget below w in pre-order. w is excluded.
func (w *Widget) Descendants() Descendants {
	var out Descendants
	var walk func(*Widget)
	walk = func(n *Widget) {
		for _, c := range n.children {
			out = append(out, c)
			walk(c)
		}
	}
	walk(w)
	return out
}

// Root walks up to the top of the tree.
func (w *Widget) Root() *Widget {
	for w.parent != nil {
		w = w.parent
	}
	return w
}

// Enabled reports whether the widget is enabled.
func (w *Widget) Enabled() bool { return w.enabled }

// Enable enables the widget.
func (w *Widget) Enable() {
	if w.enabled {
		return
	}
	w.enabled = true
	w.Send(Event{Kind: EventEnable})
	w.Update()
}

// Disable disables the widget.
func (w *Widget) Disable() {
	if !w.enabled {
		return
	}
	w.enabled = false
	w.Send(Event{Kind: EventDisable})
	w.Update()
}

// Position returns the top-left corner in screen coordinates.
func (w *Widget) Position() Point { return w.position }

// Size returns the outer size, border included.
func (w *Widget) Size() Area { return w.size }

// MoveTo sets the top-left corner in screen coordinates.
func (w *Widget) MoveTo(p Point) {
	if p == w.position {
		return
	}
	w.position = p
	w.Send(Event{Kind: EventMove, Point: p})
	w.Update()
}

// Resize sets the outer size.
func (w *Widget) Resize(a Area) {
	if a == w.size {
		return
	}
	w.size = a
	w.Send(Event{Kind: EventResize, Area: a})
	w.Update()
}

// Contains reports whether the screen point p lies inside the widget.
func (w *Widget) Contains(p Point) bool {
	return p.X >= w.position.X && p.X < w.position.X+w.size.Width &&
		p.Y >= w.position.Y && p.Y < w.position.Y+w.size.Height
}

// ContentOrigin returns the screen position of the area inside the border.
func (w *Widget) ContentOrigin() Point {
	top, _, left, _ := w.Border.Insets()
	return Point{X: w.position.X + left, Y: w.position.Y + top}
}

// ContentSize returns the size of the area inside the border.
func (w *Widget) ContentSize() Area {
	top, bottom, left, right := w.Border.Insets()
	return Area{
		Width:  max(0, w.size.Width-left-right),
		Height: max(0, w.size.Height-top-bottom),
	}
}

// Text returns the text painted in the content area.
func (w *Widget) Text() string { return w.text }

// SetText sets the text painted in the content area.
func (w *Widget) SetText(s string) {
	w.text = s
	w.Update()
}

// SetWallpaper fills the background with g.
func (w *Widget) SetWallpaper(g Glyph) {
	w.wallpaper, w.hasWallpaper = g, true
	w.Update()
}

// ClearWallpaper removes the background fill.
func (w *Widget) ClearWallpaper() {
	w.wallpaper, w.hasWallpaper = Glyph{}, false
	w.Update()
}

// Wallpaper returns the fill glyph and whether one is set.
func (w *Widget) Wallpaper() (Glyph, bool) {
	return w.wallpaper, w.hasWallpaper
}

// PaintWallpaperWithBrush selects whether the wallpaper takes the widget
// brush (true) or only its own glyph brush (false).
func (w *Widget) PaintWallpaperWithBrush(b bool) {
	w.wallpaperWithBrush = b
	w.Update()
}

// WallpaperWithBrush reports the paint mode set by PaintWallpaperWithBrush.
func (w *Widget) WallpaperWithBrush() bool { return w.wallpaperWithBrush }

// InstallEventFilter appends filter to the widgets that see w's events
// before w does. Installing the same filter twice makes it see every
// event twice.
func (w *Widget) InstallEventFilter(filter *Widget) error {
	switch {
	case filter == nil:
		return ErrNilFilter
	case filter == w:
		return ErrSelfFilter
	}
	w.filters = append(w.filters, filter)
	logger.Debug().Str("widget", w.name).Str("filter", filter.name).Msg("event filter installed")
	return nil
}

// RemoveEventFilter removes every installation of filter.
func (w *Widget) RemoveEventFilter(filter *Widget) {
	if filter == nil {
		return
	}
	w.filters = slices.DeleteFunc(w.filters, func(f *Widget) bool { return f == filter })
	logger.Debug().Str("widget", w.name).Str("filter", filter.name).Msg("event filter removed")
}

// EventFilters returns the installed filters in priority order.
func (w *Widget) EventFilters() []*Widget {
	return slices.Clone(w.filters)
}

// SetFilterFunc sets what w does with events it sees as an installed
// filter. Returning true consumes the event.
func (w *Widget) SetFilterFunc(fn func(target *Widget, ev Event) bool) {
	w.filterFn = fn
}

// FilterEvent is called for each event sent to a widget w is installed on.
func (w *Widget) FilterEvent(target *Widget, ev Event) bool {
	if w.filterFn == nil {
		return false
	}
	return w.filterFn(target, ev)
}

// Send delivers ev: first to each installed filter in install order, then,
// unless a filter consumed it, to w's matching signal. It reports whether
// the event reached w.
func (w *Widget) Send(ev Event) bool {
	for _, f := range slices.Clone(w.filters) {
		if f.FilterEvent(w, ev) {
			return false
		}
	}
	w.Signals.emit(w, ev)
	return true
}

// SetAnimationEngine makes e the engine for w and every descendant that
// does not set its own.
func (w *Widget) SetAnimationEngine(e *AnimationEngine) { w.engine = e }

// AnimationEngine returns the engine of the nearest ancestor that set one,
// or DefaultAnimationEngine.
func (w *Widget) AnimationEngine() *AnimationEngine {
	for n := w; n != nil; n = n.parent {
		if n.engine != nil {
			return n.engine
		}
	}
	return DefaultAnimationEngine
}

// EnableAnimation sends w a timer event every period. Any previous
// schedule is replaced.
func (w *Widget) EnableAnimation(period time.Duration) error {
	return w.AnimationEngine().Register(w, period)
}

// EnableAnimationFunc sends w a timer event after each period returned by
// fn, which is called again after every tick. Any previous schedule is
// replaced.
func (w *Widget) EnableAnimationFunc(fn func() time.Duration) error {
	return w.AnimationEngine().RegisterFunc(w, fn)
}

// DisableAnimation cancels the schedule, if any.
func (w *Widget) DisableAnimation() {
	if w.animatedBy != nil {
		w.animatedBy.Unregister(w)
	}
}

// Animated reports whether w has an active schedule.
func (w *Widget) Animated() bool {
	return w.animatedBy != nil
}

// Update requests a repaint.
func (w *Widget) Update() {
	w.updates++
	w.dirty = true
}

// UpdateCount returns how many repaints have been requested.
func (w *Widget) UpdateCount() int { return w.updates }

// Dirty reports whether a repaint was requested since the last paint.
func (w *Widget) Dirty() bool { return w.dirty }

func (w *Widget) policyChanged() {
	if w.parent == nil {
		w.Update()
		return
	}
	w.parent.Send(Event{Kind: EventChildPolished, Child: w})
	w.parent.Update()
}

// Destroy tears down w and its subtree, children first, detaching w from
// its parent.
func (w *Widget) Destroy() {
	if w.destroyed {
		return
	}
	for _, c := range slices.Clone(w.children) {
		c.Destroy()
	}
	w.DisableAnimation()
	w.Send(Event{Kind: EventDelete})
	if w.parent != nil {
		w.parent.RemoveChild(w)
	}
	w.destroyed = true
	w.Send(Event{Kind: EventDestroy})
}
