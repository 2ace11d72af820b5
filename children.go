package tui

import (
	"iter"
	"slices"
)

// ChildView is a live, ordered view of a widget's direct children. It holds
// no snapshot: each walk reads the child list as it is at that moment.
type ChildView struct {
	parent *Widget
}

// Parent returns the widget whose children are viewed.
func (v ChildView) Parent() *Widget { return v.parent }

// Len returns the current number of children.
func (v ChildView) Len() int {
	if v.parent == nil {
		return 0
	}
	return len(v.parent.children)
}

// At returns the i-th child.
func (v ChildView) At(i int) *Widget {
	return v.parent.children[i]
}

// All iterates the children in order. Each pass walks the children present
// when it starts, so the loop body may add or remove children.
func (v ChildView) All() iter.Seq[*Widget] {
	return func(yield func(*Widget) bool) {
		if v.parent == nil {
			return
		}
		for _, c := range slices.Clone(v.parent.children) {
			if !yield(c) {
				return
			}
		}
	}
}

// Each calls fn for each child in order and stops at the first error.
func (v ChildView) Each(fn func(*Widget) error) error {
	for c := range v.All() {
		if err := fn(c); err != nil {
			return err
		}
	}
	return nil
}

// Descendants is a materialized pre-order list of the widgets below a root.
type Descendants []*Widget

// Each calls fn for each widget in order and stops at the first error.
func (d Descendants) Each(fn func(*Widget) error) error {
	for _, w := range d {
		if err := fn(w); err != nil {
			return err
		}
	}
	return nil
}

// Named returns the widgets with the given name, preserving order.
func (d Descendants) Named(name string) Descendants {
	var out Descendants
	for _, w := range d {
		if w.name == name {
			out = append(out, w)
		}
	}
	return out
}
