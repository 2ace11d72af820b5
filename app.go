package tui

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// App runs a widget tree as a bubbletea model. It sizes the root to the
// window, routes keys to the focused widget and mouse events to the widget
// under the pointer, drives the animation engine and paints on every view.
type App struct {
	root     *Widget
	engine   *AnimationEngine
	interval time.Duration
	quitKeys []string
	focused  *Widget
	width    int
	height   int
	frames   *BufferPool
	rendered string

	lastPress     time.Time
	lastPressAt   Point
	doubleClickIn time.Duration
	now           func() time.Time
}

// AppOption configures an App.
type AppOption func(*App)

// WithTickInterval sets how often the animation engine is stepped.
func WithTickInterval(d time.Duration) AppOption {
	return func(a *App) {
		if d > 0 {
			a.interval = d
		}
	}
}

// WithQuitKeys replaces the keys that end the program (default "ctrl+c", "q").
func WithQuitKeys(keys ...string) AppOption {
	return func(a *App) { a.quitKeys = keys }
}

// WithSize sets the initial window size before the first resize message.
func WithSize(width, height int) AppOption {
	return func(a *App) { a.resize(width, height) }
}

// NewApp wraps root. The animation engine is the one root resolves to.
func NewApp(root *Widget, opts ...AppOption) *App {
	a := &App{
		root:          root,
		engine:        root.AnimationEngine(),
		interval:      50 * time.Millisecond,
		quitKeys:      []string{"ctrl+c", "q"},
		doubleClickIn: 400 * time.Millisecond,
		now:           time.Now,
		frames:        NewBufferPool(0, 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Root returns the root widget.
func (a *App) Root() *Widget { return a.root }

// Focused returns the focused widget, or nil.
func (a *App) Focused() *Widget { return a.focused }

// Init starts the animation ticks.
func (a *App) Init() tea.Cmd {
	logger.Info().Str("root", a.root.name).Dur("interval", a.interval).Msg("app started")
	return a.engine.Cmd(a.interval)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if slices.Contains(a.quitKeys, msg.String()) {
			logger.Info().Str("key", msg.String()).Msg("app quit")
			return a, tea.Quit
		}
		switch msg.Type {
		case tea.KeyTab:
			a.FocusNext(1)
		case tea.KeyShiftTab:
			a.FocusNext(-1)
		default:
			if a.focused != nil {
				a.focused.Send(Event{Kind: EventKeyPress, Key: msg})
			}
		}
	case tea.MouseMsg:
		a.mouse(msg)
	case AnimationTickMsg:
		a.engine.Step(time.Time(msg))
		return a, a.engine.Cmd(a.interval)
	}
	return a, nil
}

func (a *App) resize(width, height int) {
	a.width, a.height = width, height
	a.frames.Resize(width, height)
	a.rendered = ""
	a.root.MoveTo(Point{})
	a.root.Resize(Area{Width: width, Height: height})
	Arrange(a.root)
}

func (a *App) mouse(msg tea.MouseMsg) {
	at := Point{X: msg.X, Y: msg.Y}
	target := a.WidgetAt(at)
	if target == nil {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		now := a.now()
		kind := EventMousePress
		if at == a.lastPressAt && now.Sub(a.lastPress) < a.doubleClickIn {
			kind = EventMouseDoubleClick
		}
		a.lastPress, a.lastPressAt = now, at
		if target.FocusPolicy.AcceptsClick() {
			a.SetFocus(target)
		}
		target.Send(Event{Kind: kind, Mouse: msg})
	case tea.MouseActionRelease:
		target.Send(Event{Kind: EventMouseRelease, Mouse: msg})
	case tea.MouseActionMotion:
		target.Send(Event{Kind: EventMouseMove, Mouse: msg})
	}
}

// WidgetAt returns the innermost enabled widget containing p.
func (a *App) WidgetAt(p Point) *Widget {
	var hit *Widget
	var walk func(*Widget)
	walk = func(w *Widget) {
		if !w.enabled || !w.Contains(p) {
			return
		}
		hit = w
		for _, c := range w.children {
			walk(c)
		}
	}
	walk(a.root)
	return hit
}

// SetFocus moves focus to w, sending focus-out and focus-in events.
// A nil w clears focus.
func (a *App) SetFocus(w *Widget) {
	if w == a.focused {
		return
	}
	if old := a.focused; old != nil {
		a.focused = nil
		old.Send(Event{Kind: EventFocusOut})
		old.Update()
	}
	a.focused = w
	if w != nil {
		w.Send(Event{Kind: EventFocusIn})
		w.Update()
	}
}

// FocusNext moves focus delta steps through the enabled widgets whose
// focus policy accepts tab, wrapping around.
func (a *App) FocusNext(delta int) {
	var ring []*Widget
	for _, w := range append(Descendants{a.root}, a.root.Descendants()...) {
		if w.enabled && w.FocusPolicy.AcceptsTab() {
			ring = append(ring, w)
		}
	}
	if len(ring) == 0 {
		return
	}
	i := slices.Index(ring, a.focused)
	if i < 0 {
		if delta < 0 {
			i = 0
		} else {
			i = -1
		}
	}
	i = ((i+delta)%len(ring) + len(ring)) % len(ring)
	a.SetFocus(ring[i])
}

// View paints the tree and renders it. The focused widget's cursor, when
// enabled, is shown as an inverted cell. A frame identical to the last one
// reuses its rendering.
func (a *App) View() string {
	buf := a.frames.Swap()
	Paint(a.root, buf)
	if f := a.focused; f != nil && f.Cursor.Enabled() {
		origin, pos := f.ContentOrigin(), f.Cursor.Position()
		x, y := origin.X+pos.X, origin.Y+pos.Y
		g := buf.Get(x, y)
		g.Brush.AddAttributes(AttrInverse)
		buf.Set(x, y, g)
	}
	if a.rendered != "" && buf.Equal(a.frames.Previous()) {
		return a.rendered
	}
	a.rendered = buf.Render()
	return a.rendered
}
