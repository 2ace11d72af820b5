package pipe

import "github.com/kungfusheep/tui"

// Paint replaces the brush, colors and attributes together.
func Paint(b tui.Brush) Op {
	return func(w *tui.Widget) error {
		w.Brush = b
		w.Update()
		return nil
	}
}

// BorderPaint replaces the brush of every border glyph, keeping the runes.
func BorderPaint(b tui.Brush) Op {
	return func(w *tui.Widget) error {
		for _, id := range tui.Segments {
			w.Border.Segment(id).Glyph.Brush = b
		}
		w.Update()
		return nil
	}
}

// Role selects one brush of a theme.
type Role uint8

const (
	RoleBase Role = iota
	RoleMuted
	RoleAccent
	RoleError
)

var roleNames = map[string]Role{
	"base":   RoleBase,
	"muted":  RoleMuted,
	"accent": RoleAccent,
	"error":  RoleError,
}

// ParseRole looks a role up by its lower-case name.
func ParseRole(name string) (Role, bool) {
	r, ok := roleNames[name]
	return r, ok
}

func (r Role) of(t tui.Theme) tui.Brush {
	switch r {
	case RoleMuted:
		return t.Muted
	case RoleAccent:
		return t.Accent
	case RoleError:
		return t.Error
	}
	return t.Base
}

// Themed paints text with the theme's brush for role and the border with
// the theme's border brush.
func Themed(t tui.Theme, r Role) Op {
	return Compose(Paint(r.of(t)), BorderPaint(t.Border))
}
