package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventFilters(t *testing.T) {
	t.Parallel()

	t.Run("filters see events before the target in install order", func(t *testing.T) {
		target := NewWidget("target")
		var order []string
		for _, name := range []string{"first", "second"} {
			f := NewWidget(name)
			f.SetFilterFunc(func(w *Widget, ev Event) bool {
				order = append(order, f.Name()+" "+ev.Kind.String()+" "+w.Name())
				return false
			})
			require.NoError(t, target.InstallEventFilter(f))
		}
		target.Signals.Timer.Connect(func(struct{}) { order = append(order, "target") })

		assert.True(t, target.Send(Event{Kind: EventTimer}))
		assert.Equal(t, []string{"first timer target", "second timer target", "target"}, order)
	})

	t.Run("a consuming filter stops delivery", func(t *testing.T) {
		target := NewWidget("target")
		eat := NewWidget("eat")
		eat.SetFilterFunc(func(*Widget, Event) bool { return true })
		reached := false
		target.Signals.Painted.Connect(func(struct{}) { reached = true })
		require.NoError(t, target.InstallEventFilter(eat))

		assert.False(t, target.Send(Event{Kind: EventPaint}))
		assert.False(t, reached)
	})

	t.Run("duplicates run twice and are removed together", func(t *testing.T) {
		target := NewWidget("target")
		f := NewWidget("f")
		seen := 0
		f.SetFilterFunc(func(*Widget, Event) bool { seen++; return false })
		require.NoError(t, target.InstallEventFilter(f))
		require.NoError(t, target.InstallEventFilter(f))

		target.Send(Event{Kind: EventTimer})
		assert.Equal(t, 2, seen)

		target.RemoveEventFilter(f)
		target.Send(Event{Kind: EventTimer})
		assert.Equal(t, 2, seen)
		assert.Empty(t, target.EventFilters())
	})

	t.Run("invalid filters", func(t *testing.T) {
		w := NewWidget("w")
		assert.ErrorIs(t, w.InstallEventFilter(nil), ErrNilFilter)
		assert.ErrorIs(t, w.InstallEventFilter(w), ErrSelfFilter)
		w.RemoveEventFilter(nil)
		assert.Empty(t, w.EventFilters())
	})
}
