package pipe

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kungfusheep/tui"
)

// Signal hookups connect a handler to one of the widget's signals. Every
// application connects the handler again, so piping the same op twice runs
// the handler twice per event. Handlers cannot be disconnected.

func notify(fn func()) func(struct{}) {
	if fn == nil {
		return nil
	}
	return func(struct{}) { fn() }
}

func connect[T any](sig func(*tui.Signals) *tui.Signal[T], fn func(T)) Op {
	return func(w *tui.Widget) error {
		sig(&w.Signals).Connect(fn)
		return nil
	}
}

// OnEnable runs fn when the widget is enabled.
func OnEnable(fn func()) Op {
	return connect(func(s *tui.Signals) *tui.Notify { return &s.Enabled }, notify(fn))
}

// OnDisable runs fn when the widget is disabled.
func OnDisable(fn func()) Op {
	return connect(func(s *tui.Signals) *tui.Notify { return &s.Disabled }, notify(fn))
}

// OnChildAdded runs fn with each child added to the widget.
func OnChildAdded(fn func(child *tui.Widget)) Op {
	return connect(func(s *tui.Signals) *tui.Signal[*tui.Widget] { return &s.ChildAdded }, fn)
}

// OnChildRemoved runs fn with each child removed from the widget.
func OnChildRemoved(fn func(child *tui.Widget)) Op {
	return connect(func(s *tui.Signals) *tui.Signal[*tui.Widget] { return &s.ChildRemoved }, fn)
}

// OnChildPolished runs fn with a child whose size policy changed.
func OnChildPolished(fn func(child *tui.Widget)) Op {
	return connect(func(s *tui.Signals) *tui.Signal[*tui.Widget] { return &s.ChildPolished }, fn)
}

// OnMove runs fn with the new position after the widget moves.
func OnMove(fn func(tui.Point)) Op {
	return connect(func(s *tui.Signals) *tui.Signal[tui.Point] { return &s.Moved }, fn)
}

// OnResize runs fn with the new size after the widget is resized.
func OnResize(fn func(tui.Area)) Op {
	return connect(func(s *tui.Signals) *tui.Signal[tui.Area] { return &s.Resized }, fn)
}

// OnMousePress runs fn when a mouse button goes down over the widget.
func OnMousePress(fn func(tea.MouseMsg)) Op {
	return connect(func(s *tui.Signals) *tui.Signal[tea.MouseMsg] { return &s.MousePressed }, fn)
}

// OnMouseRelease runs fn when a mouse button is released over the widget.
func OnMouseRelease(fn func(tea.MouseMsg)) Op {
	return connect(func(s *tui.Signals) *tui.Signal[tea.MouseMsg] { return &s.MouseReleased }, fn)
}

// OnMouseDoubleClick runs fn for a second press at the same cell.
func OnMouseDoubleClick(fn func(tea.MouseMsg)) Op {
	return connect(func(s *tui.Signals) *tui.Signal[tea.MouseMsg] { return &s.MouseDoubleClicked }, fn)
}

// OnMouseMove runs fn for pointer motion over the widget.
func OnMouseMove(fn func(tea.MouseMsg)) Op {
	return connect(func(s *tui.Signals) *tui.Signal[tea.MouseMsg] { return &s.MouseMoved }, fn)
}

// OnKeyPress runs fn for each key delivered to the widget while focused.
func OnKeyPress(fn func(tea.KeyMsg)) Op {
	return connect(func(s *tui.Signals) *tui.Signal[tea.KeyMsg] { return &s.KeyPressed }, fn)
}

// OnKeyRelease runs fn for key releases, where the terminal reports them.
func OnKeyRelease(fn func(tea.KeyMsg)) Op {
	return connect(func(s *tui.Signals) *tui.Signal[tea.KeyMsg] { return &s.KeyReleased }, fn)
}

// OnFocusIn runs fn when the widget gains focus.
func OnFocusIn(fn func()) Op {
	return connect(func(s *tui.Signals) *tui.Notify { return &s.FocusedIn }, notify(fn))
}

// OnFocusOut runs fn when the widget loses focus.
func OnFocusOut(fn func()) Op {
	return connect(func(s *tui.Signals) *tui.Notify { return &s.FocusedOut }, notify(fn))
}

// OnDelete runs fn when the widget is about to be detached by Destroy.
func OnDelete(fn func()) Op {
	return connect(func(s *tui.Signals) *tui.Notify { return &s.Deleted }, notify(fn))
}

// OnPaint runs fn after the widget is painted.
func OnPaint(fn func()) Op {
	return connect(func(s *tui.Signals) *tui.Notify { return &s.Painted }, notify(fn))
}

// OnTimer runs fn on every animation tick.
func OnTimer(fn func()) Op {
	return connect(func(s *tui.Signals) *tui.Notify { return &s.Timer }, notify(fn))
}

// OnDestroy runs fn with the widget once it has been destroyed.
func OnDestroy(fn func(*tui.Widget)) Op {
	return connect(func(s *tui.Signals) *tui.Signal[*tui.Widget] { return &s.Destroyed }, fn)
}
