package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine() (*AnimationEngine, *time.Time) {
	now := time.Unix(500, 0)
	e := NewAnimationEngine()
	e.SetClock(func() time.Time { return now })
	return e, &now
}

func TestAnimationEngineStep(t *testing.T) {
	t.Parallel()
	e, now := testEngine()
	fast, slow := NewWidget("fast"), NewWidget("slow")
	var ticks []string
	for _, w := range []*Widget{slow, fast} {
		w.SetAnimationEngine(e)
		w.Signals.Timer.Connect(func(struct{}) { ticks = append(ticks, w.Name()) })
	}
	require.NoError(t, slow.EnableAnimation(30*time.Millisecond))
	require.NoError(t, fast.EnableAnimation(10*time.Millisecond))

	start := *now
	assert.Zero(t, e.Step(start.Add(5*time.Millisecond)))
	assert.Equal(t, 1, e.Step(start.Add(10*time.Millisecond)))
	// both due: registration order
	assert.Equal(t, 2, e.Step(start.Add(30*time.Millisecond)))
	assert.Equal(t, []string{"fast", "slow", "fast"}, ticks)
	assert.True(t, fast.Dirty())
}

func TestAnimationEngineOneSchedulePerWidget(t *testing.T) {
	t.Parallel()
	e, _ := testEngine()
	w := NewWidget("w")
	w.SetAnimationEngine(e)

	require.NoError(t, w.EnableAnimation(time.Second))
	require.NoError(t, w.EnableAnimationFunc(func() time.Duration { return time.Minute }))
	assert.Equal(t, 1, e.Len())
	p, ok := e.Period(w)
	require.True(t, ok)
	assert.Equal(t, time.Minute, p)

	// moving to another engine leaves nothing behind
	other, _ := testEngine()
	w.SetAnimationEngine(other)
	require.NoError(t, w.EnableAnimation(time.Second))
	assert.Zero(t, e.Len())
	assert.True(t, other.Registered(w))

	w.DisableAnimation()
	assert.False(t, w.Animated())
	assert.Zero(t, other.Len())
}

func TestAnimationEngineStopsOnNonPositivePeriod(t *testing.T) {
	t.Parallel()
	e, now := testEngine()
	w := NewWidget("w")
	w.SetAnimationEngine(e)
	period := time.Millisecond
	require.NoError(t, w.EnableAnimationFunc(func() time.Duration { return period }))

	period = 0
	assert.Equal(t, 1, e.Step(now.Add(time.Millisecond)))
	assert.False(t, e.Registered(w))
	assert.False(t, w.Animated())
}

func TestAnimationEngineHandlerMayCancel(t *testing.T) {
	t.Parallel()
	e, now := testEngine()
	w := NewWidget("w")
	w.SetAnimationEngine(e)
	w.Signals.Timer.Connect(func(struct{}) { w.DisableAnimation() })
	require.NoError(t, w.EnableAnimation(time.Millisecond))

	assert.Equal(t, 1, e.Step(now.Add(time.Second)))
	assert.Zero(t, e.Len())
}

func TestAnimationErrors(t *testing.T) {
	t.Parallel()
	e, _ := testEngine()
	w := NewWidget("w")

	var aerr *AnimationError
	require.ErrorAs(t, e.Register(w, -time.Second), &aerr)
	assert.ErrorIs(t, aerr, errBadPeriod)
	assert.ErrorIs(t, e.RegisterFunc(w, nil), errNilPeriodFn)
	assert.ErrorIs(t, e.RegisterFunc(w, func() time.Duration { return 0 }), errBadPeriod)
	assert.Equal(t, "animation w: period must be positive", aerr.Error())
	assert.Zero(t, e.Len())
}

func TestAnimationCmd(t *testing.T) {
	t.Parallel()
	e, _ := testEngine()
	msg := e.Cmd(time.Millisecond)()
	_, ok := msg.(AnimationTickMsg)
	assert.True(t, ok)
}

func TestAnimationEngineReplacedScheduleWaitsForNewDeadline(t *testing.T) {
	t.Parallel()
	e, now := testEngine()
	a, b := NewWidget("a"), NewWidget("b")
	ticks := map[string]int{}
	for _, w := range []*Widget{a, b} {
		w.SetAnimationEngine(e)
		w.Signals.Timer.Connect(func(struct{}) { ticks[w.Name()]++ })
		require.NoError(t, w.EnableAnimation(10*time.Millisecond))
	}
	a.Signals.Timer.Connect(func(struct{}) {
		require.NoError(t, b.EnableAnimation(time.Hour))
	})

	assert.Equal(t, 1, e.Step(now.Add(20*time.Millisecond)))
	assert.Equal(t, 1, ticks["a"])
	assert.Zero(t, ticks["b"])
	p, ok := e.Period(b)
	require.True(t, ok)
	assert.Equal(t, time.Hour, p)
}
