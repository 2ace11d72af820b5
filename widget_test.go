package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidgetTree(t *testing.T) {
	t.Parallel()
	a, b, c := NewWidget("a"), NewWidget("b"), NewWidget("c")
	root := VBox("root", a, HBox("row", b), c)

	assert.Equal(t, 3, root.Children().Len())
	assert.Same(t, a, root.Children().At(0))
	assert.Same(t, root, b.Root())

	var names []string
	for _, w := range root.Descendants() {
		names = append(names, w.Name())
	}
	assert.Equal(t, []string{"a", "row", "b", "c"}, names)
	assert.Equal(t, Descendants{b}, root.Descendants().Named("b"))

	// re-parenting detaches from the old parent
	other := NewWidget("other")
	other.AddChild(a)
	assert.Same(t, other, a.Parent())
	assert.Equal(t, 2, root.Children().Len())
	assert.False(t, root.RemoveChild(a))
}

func TestWidgetDestroy(t *testing.T) {
	t.Parallel()
	e := NewAnimationEngine()
	child := NewWidget("child")
	root := NewWidget("root").AddChild(child)
	root.SetAnimationEngine(e)
	require.NoError(t, child.EnableAnimation(10))

	var order []string
	for _, w := range []*Widget{root, child} {
		w.Signals.Deleted.Connect(func(struct{}) { order = append(order, "delete "+w.Name()) })
		w.Signals.Destroyed.Connect(func(d *Widget) { order = append(order, "destroy "+d.Name()) })
	}
	root.Destroy()
	root.Destroy()

	assert.Equal(t, []string{"delete child", "destroy child", "delete root", "destroy root"}, order)
	assert.Zero(t, e.Len())
	assert.Nil(t, child.Parent())
}

func TestWidgetGeometryEvents(t *testing.T) {
	t.Parallel()
	w := NewWidget("w")
	moves, resizes := 0, 0
	w.Signals.Moved.Connect(func(Point) { moves++ })
	w.Signals.Resized.Connect(func(Area) { resizes++ })

	w.MoveTo(Point{X: 2, Y: 1})
	w.MoveTo(Point{X: 2, Y: 1})
	w.Resize(Area{Width: 4, Height: 3})
	assert.Equal(t, 1, moves)
	assert.Equal(t, 1, resizes)
	assert.True(t, w.Contains(Point{X: 5, Y: 3}))
	assert.False(t, w.Contains(Point{X: 6, Y: 3}))

	w.Border.Enable()
	w.Border.SetSegments([8]bool{North: true, West: true})
	assert.Equal(t, Point{X: 3, Y: 2}, w.ContentOrigin())
	assert.Equal(t, Area{Width: 3, Height: 2}, w.ContentSize())
}

func TestWidgetEnableIsIdempotent(t *testing.T) {
	t.Parallel()
	w := NewWidget("w")
	enabled := 0
	w.Signals.Enabled.Connect(func(struct{}) { enabled++ })

	w.Enable()
	assert.Zero(t, enabled)
	w.Disable()
	w.Enable()
	assert.Equal(t, 1, enabled)
}
