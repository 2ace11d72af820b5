package pipe

import (
	"time"

	"github.com/kungfusheep/tui"
)

// Name sets the widget name.
func Name(name string) Op {
	return func(w *tui.Widget) error {
		w.SetName(name)
		return nil
	}
}

// InstallFilter installs filter as an event filter. The op keeps a live
// reference to filter, so the filter must outlive every application.
func InstallFilter(filter *tui.Widget) Op {
	return func(w *tui.Widget) error {
		return w.InstallEventFilter(filter)
	}
}

// RemoveFilter removes every installation of filter.
func RemoveFilter(filter *tui.Widget) Op {
	return func(w *tui.Widget) error {
		w.RemoveEventFilter(filter)
		return nil
	}
}

// Animate sends the widget a timer event every period, replacing any
// previous animation.
func Animate(period time.Duration) Op {
	return func(w *tui.Widget) error {
		return w.EnableAnimation(period)
	}
}

// AnimateFunc sends the widget a timer event after each period returned by
// fn. fn is called again after every tick.
func AnimateFunc(fn func() time.Duration) Op {
	return func(w *tui.Widget) error {
		return w.EnableAnimationFunc(fn)
	}
}

// Disanimate cancels the widget's animation.
func Disanimate() Op {
	return func(w *tui.Widget) error {
		w.DisableAnimation()
		return nil
	}
}

// Wallpaper fills the widget background with g.
func Wallpaper[G GlyphLike](g G) Op {
	glyph := toGlyph(g)
	return func(w *tui.Widget) error {
		w.SetWallpaper(glyph)
		return nil
	}
}

// NoWallpaper removes the background fill.
func NoWallpaper() Op {
	return func(w *tui.Widget) error {
		w.ClearWallpaper()
		return nil
	}
}

// WallpaperWithBrush paints the wallpaper with the widget brush.
func WallpaperWithBrush() Op {
	return func(w *tui.Widget) error {
		w.PaintWallpaperWithBrush(true)
		return nil
	}
}

// WallpaperWithoutBrush paints the wallpaper with its own glyph brush only.
func WallpaperWithoutBrush() Op {
	return func(w *tui.Widget) error {
		w.PaintWallpaperWithBrush(false)
		return nil
	}
}
