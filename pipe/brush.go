package pipe

import (
	"slices"

	"github.com/kungfusheep/tui"
)

// BG sets the background color.
func BG(c tui.Color) Op {
	return func(w *tui.Widget) error {
		w.Brush.SetBackground(c)
		w.Update()
		return nil
	}
}

// FG sets the foreground color.
func FG(c tui.Color) Op {
	return func(w *tui.Widget) error {
		w.Brush.SetForeground(c)
		w.Update()
		return nil
	}
}

// RemoveBackground unsets the background color.
func RemoveBackground() Op {
	return func(w *tui.Widget) error {
		w.Brush.RemoveBackground()
		w.Update()
		return nil
	}
}

// RemoveForeground unsets the foreground color.
func RemoveForeground() Op {
	return func(w *tui.Widget) error {
		w.Brush.RemoveForeground()
		w.Update()
		return nil
	}
}

// Add sets display attributes on the brush.
func Add(attrs ...tui.Attribute) Op {
	attrs = slices.Clone(attrs)
	return func(w *tui.Widget) error {
		w.Brush.AddAttributes(attrs...)
		w.Update()
		return nil
	}
}

// Remove unsets display attributes on the brush.
func Remove(attrs ...tui.Attribute) Op {
	attrs = slices.Clone(attrs)
	return func(w *tui.Widget) error {
		w.Brush.RemoveAttributes(attrs...)
		w.Update()
		return nil
	}
}

// ClearAttributes unsets every display attribute on the brush.
func ClearAttributes() Op {
	return func(w *tui.Widget) error {
		w.Brush.ClearAttributes()
		w.Update()
		return nil
	}
}

// ShowCursor shows the text cursor.
func ShowCursor() Op {
	return func(w *tui.Widget) error {
		w.Cursor.Enable()
		return nil
	}
}

// HideCursor hides the text cursor.
func HideCursor() Op {
	return func(w *tui.Widget) error {
		w.Cursor.Disable()
		return nil
	}
}

// PutCursor moves the cursor to p, relative to the content area.
func PutCursor(p tui.Point) Op {
	return func(w *tui.Widget) error {
		w.Cursor.SetPosition(p)
		return nil
	}
}

// Focus sets the focus policy.
func Focus(p tui.FocusPolicy) Op {
	return func(w *tui.Widget) error {
		w.FocusPolicy = p
		return nil
	}
}

// NoFocus keeps the widget out of focus traversal.
func NoFocus() Op { return Focus(tui.FocusNone) }

// TabFocus lets Tab focus the widget.
func TabFocus() Op { return Focus(tui.FocusTab) }

// ClickFocus lets a click focus the widget.
func ClickFocus() Op { return Focus(tui.FocusClick) }

// StrongFocus accepts focus from Tab and clicks.
func StrongFocus() Op { return Focus(tui.FocusStrong) }

// DirectFocus accepts focus only when set directly.
func DirectFocus() Op { return Focus(tui.FocusDirect) }
