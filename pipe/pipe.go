// Package pipe configures widgets with chains of deferred operations.
//
// An Op is built by a factory such as FG, Bordered or FixedWidth and does
// nothing until it is piped into a target. Pipe applies ops strictly left to
// right to a single widget, to a widget's children or to a descendant list,
// and hands back the same target so further ops can follow:
//
//	pipe.Pipe(w, pipe.Bordered(), pipe.RoundedCorners(), pipe.FG(tui.Cyan))
//	pipe.Pipe(w.Children(), pipe.FixedHeight(3), pipe.Add(tui.AttrBold))
//	pipe.Pipe(w.Descendants(), pipe.NoFocus())
package pipe

import "github.com/kungfusheep/tui"

// Op is a deferred mutation of one widget. Ops hold only the values they
// were built from and may be applied any number of times. The error is the
// one returned by the mutated widget state, passed through unchanged.
type Op func(w *tui.Widget) error

// Target is anything ops can be piped into: *tui.Widget (and any type that
// embeds tui.Widget), tui.ChildView and tui.Descendants.
type Target interface {
	Each(fn func(*tui.Widget) error) error
}

// Pipe applies each op, in order, to every widget t reaches and returns t.
// An op is applied to all of t's widgets before the next op starts. Pipe
// stops at the first error; mutations already made stay in place.
func Pipe[T Target](t T, ops ...Op) (T, error) {
	for i, op := range ops {
		if err := t.Each(op); err != nil {
			tui.Logger().Debug().Err(err).Int("op", i).Msg("pipe stopped")
			return t, err
		}
	}
	return t, nil
}

// Must is like Pipe but panics on error. It suits trees declared in code
// where a failing op is a programming mistake.
func Must[T Target](t T, ops ...Op) T {
	t, err := Pipe(t, ops...)
	if err != nil {
		panic(err)
	}
	return t
}

// Compose folds ops into a single op that applies them in order to one
// widget. Piping Compose(a, b) into a collection finishes a and b on each
// widget before moving to the next, unlike piping a and b separately.
func Compose(ops ...Op) Op {
	return func(w *tui.Widget) error {
		for _, op := range ops {
			if err := op(w); err != nil {
				return err
			}
		}
		return nil
	}
}

// Where applies ops only to widgets for which pred returns true.
func Where(pred func(*tui.Widget) bool, ops ...Op) Op {
	apply := Compose(ops...)
	return func(w *tui.Widget) error {
		if !pred(w) {
			return nil
		}
		return apply(w)
	}
}

// Named is a predicate for Where matching the widget name.
func Named(name string) func(*tui.Widget) bool {
	return func(w *tui.Widget) bool { return w.Name() == name }
}

// Children pipes ops into the widget's direct children, so a chain can style
// a container and then its contents:
//
//	pipe.Pipe(panel, pipe.Bordered(), pipe.Children(pipe.FG(tui.Cyan)))
func Children(ops ...Op) Op {
	return func(w *tui.Widget) error {
		_, err := Pipe(w.Children(), ops...)
		return err
	}
}

// Descendants pipes ops into every widget below w, in pre-order.
func Descendants(ops ...Op) Op {
	return func(w *tui.Widget) error {
		_, err := Pipe(w.Descendants(), ops...)
		return err
	}
}
