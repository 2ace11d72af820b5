package tui

// Cursor is a widget's text-entry cursor. The position is relative to the
// widget's content area and is not bounds checked; the renderer clips it.
type Cursor struct {
	enabled  bool
	position Point
}

// Enable shows the cursor while the widget has focus.
func (c *Cursor) Enable() { c.enabled = true }

// Disable hides the cursor.
func (c *Cursor) Disable() { c.enabled = false }

// Enabled reports whether the cursor is shown.
func (c *Cursor) Enabled() bool { return c.enabled }

// SetPosition moves the cursor.
func (c *Cursor) SetPosition(p Point) { c.position = p }

// Position returns the cursor position.
func (c *Cursor) Position() Point { return c.position }
