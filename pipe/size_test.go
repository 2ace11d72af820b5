package pipe_test

import (
	"math"
	"testing"

	"github.com/kungfusheep/tui"
	"github.com/kungfusheep/tui/pipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeShorthands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		width, height pipe.Op
		typ           tui.SizeType
		hint, min     int
		max           int
	}{
		{"fixed", pipe.FixedWidth(7), pipe.FixedHeight(7), tui.SizeFixed, 7, 7, 7},
		{"minimum", pipe.MinimumWidth(7), pipe.MinimumHeight(7), tui.SizeMinimum, 7, 7, tui.SizeUnbounded},
		{"maximum", pipe.MaximumWidth(7), pipe.MaximumHeight(7), tui.SizeMaximum, 7, 0, 7},
		{"preferred", pipe.PreferredWidth(7), pipe.PreferredHeight(7), tui.SizePreferred, 7, 0, tui.SizeUnbounded},
		{"expanding", pipe.ExpandingWidth(7), pipe.ExpandingHeight(7), tui.SizeExpanding, 7, 0, tui.SizeUnbounded},
		{"minimum expanding", pipe.MinimumExpandingWidth(7), pipe.MinimumExpandingHeight(7), tui.SizeMinimumExpanding, 7, 7, tui.SizeUnbounded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := pipe.Must(tui.NewWidget(tt.name), tt.width)
			h := pipe.Must(tui.NewWidget(tt.name), tt.height)
			for _, p := range []*tui.SizePolicy{&w.WidthPolicy, &h.HeightPolicy} {
				assert.Equal(t, tt.typ, p.Type())
				assert.Equal(t, tt.hint, p.Hint())
				assert.Equal(t, tt.min, p.Min())
				assert.Equal(t, tt.max, p.Max())
			}
			// the other axis is untouched
			assert.Equal(t, tui.DefaultSizePolicy().Type(), w.HeightPolicy.Type())
			assert.Equal(t, tui.DefaultSizePolicy().Type(), h.WidthPolicy.Type())
		})
	}
}

func TestIgnoredSize(t *testing.T) {
	t.Parallel()
	w := pipe.Must(tui.NewWidget("w"), pipe.FixedWidth(4), pipe.IgnoredWidth(), pipe.IgnoredHeight())
	assert.Equal(t, tui.SizeIgnored, w.WidthPolicy.Type())
	assert.Equal(t, tui.SizeIgnored, w.HeightPolicy.Type())
}

func TestSizeKnobsSetOneField(t *testing.T) {
	t.Parallel()
	w := pipe.Must(tui.NewWidget("w"),
		pipe.FixedWidth(5),
		pipe.WidthHint(6),
		pipe.WidthMin(2),
		pipe.WidthMax(9),
		pipe.WidthStretch(2.5),
		pipe.CannotIgnoreWidthMin(),
	)
	p := &w.WidthPolicy
	assert.Equal(t, tui.SizeFixed, p.Type())
	assert.Equal(t, 6, p.Hint())
	assert.Equal(t, 2, p.Min())
	assert.Equal(t, 9, p.Max())
	// stretch is its own field; it never touches the upper bound
	assert.InDelta(t, 2.5, p.Stretch(), 1e-9)
	assert.False(t, p.CanIgnoreMin())

	pipe.Must(w, pipe.CanIgnoreWidthMin(), pipe.HeightHint(3), pipe.HeightMin(1), pipe.HeightMax(4), pipe.HeightStretch(0))
	assert.True(t, p.CanIgnoreMin())
	h := &w.HeightPolicy
	assert.Equal(t, []int{3, 1, 4}, []int{h.Hint(), h.Min(), h.Max()})
	assert.Zero(t, h.Stretch())

	pipe.Must(w, pipe.CannotIgnoreHeightMin())
	assert.False(t, h.CanIgnoreMin())
	pipe.Must(w, pipe.CanIgnoreHeightMin())
	assert.True(t, h.CanIgnoreMin())
}

func TestSizeErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]pipe.Op{
		"negative fixed":  pipe.FixedHeight(-1),
		"negative hint":   pipe.HeightHint(-3),
		"negative min":    pipe.WidthMin(-1),
		"negative max":    pipe.HeightMax(-1),
		"negative expand": pipe.ExpandingWidth(-4),
		"nan stretch":     pipe.HeightStretch(math.NaN()),
		"inf stretch":     pipe.WidthStretch(math.Inf(1)),
	}
	for name, op := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			w := tui.NewWidget(name)
			before := w.WidthPolicy
			_, err := pipe.Pipe(w, op)
			var perr *tui.PolicyError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, before.Hint(), w.WidthPolicy.Hint())
			assert.Equal(t, before.Max(), w.WidthPolicy.Max())
		})
	}
}

func TestPolicyChangeReachesParent(t *testing.T) {
	t.Parallel()
	parent := tui.NewWidget("parent")
	child := tui.NewWidget("child")
	parent.AddChild(child)
	var polished []*tui.Widget
	pipe.Must(parent, pipe.OnChildPolished(func(c *tui.Widget) { polished = append(polished, c) }))
	before := parent.UpdateCount()

	pipe.Must(child, pipe.FixedWidth(3), pipe.HeightStretch(2))
	assert.Equal(t, []*tui.Widget{child, child}, polished)
	assert.Equal(t, before+2, parent.UpdateCount())
}
