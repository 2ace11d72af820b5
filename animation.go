package tui

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AnimationEngine sends timer events to animated widgets. It does not own a
// clock: Step is driven from outside, usually by the tick command from Cmd.
type AnimationEngine struct {
	entries []*schedule
	now     func() time.Time
}

type schedule struct {
	w        *Widget
	period   time.Duration
	periodFn func() time.Duration
	next     time.Time
}

// DefaultAnimationEngine serves widgets whose tree sets no engine.
var DefaultAnimationEngine = NewAnimationEngine()

// NewAnimationEngine returns an engine reading time.Now.
func NewAnimationEngine() *AnimationEngine {
	return &AnimationEngine{now: time.Now}
}

// SetClock replaces the time source used when scheduling.
func (e *AnimationEngine) SetClock(now func() time.Time) {
	e.now = now
}

// Register animates w with a fixed period, replacing any previous schedule.
func (e *AnimationEngine) Register(w *Widget, period time.Duration) error {
	if period <= 0 {
		return &AnimationError{Widget: w.name, Err: errBadPeriod}
	}
	e.schedule(w, &schedule{w: w, period: period})
	return nil
}

// RegisterFunc animates w with a period recomputed by fn after every tick,
// replacing any previous schedule.
func (e *AnimationEngine) RegisterFunc(w *Widget, fn func() time.Duration) error {
	if fn == nil {
		return &AnimationError{Widget: w.name, Err: errNilPeriodFn}
	}
	period := fn()
	if period <= 0 {
		return &AnimationError{Widget: w.name, Err: errBadPeriod}
	}
	e.schedule(w, &schedule{w: w, period: period, periodFn: fn})
	return nil
}

func (e *AnimationEngine) schedule(w *Widget, s *schedule) {
	if w.animatedBy != nil && w.animatedBy != e {
		w.animatedBy.Unregister(w)
	}
	s.next = e.now().Add(s.period)
	if i := e.index(w); i >= 0 {
		e.entries[i] = s
	} else {
		e.entries = append(e.entries, s)
	}
	w.animatedBy = e
	logger.Debug().Str("widget", w.name).Dur("period", s.period).Bool("dynamic", s.periodFn != nil).Msg("animation scheduled")
}

// Unregister cancels w's schedule.
func (e *AnimationEngine) Unregister(w *Widget) {
	i := e.index(w)
	if i < 0 {
		return
	}
	e.entries = slices.Delete(e.entries, i, i+1)
	w.animatedBy = nil
	logger.Debug().Str("widget", w.name).Msg("animation cancelled")
}

// Registered reports whether w has a schedule on e.
func (e *AnimationEngine) Registered(w *Widget) bool {
	return e.index(w) >= 0
}

// Len returns the number of animated widgets.
func (e *AnimationEngine) Len() int {
	return len(e.entries)
}

// Period returns the period w will wait for before its next tick.
func (e *AnimationEngine) Period(w *Widget) (time.Duration, bool) {
	i := e.index(w)
	if i < 0 {
		return 0, false
	}
	return e.entries[i].period, true
}

func (e *AnimationEngine) index(w *Widget) int {
	return slices.IndexFunc(e.entries, func(s *schedule) bool { return s.w == w })
}

// Step sends a timer event to every widget whose deadline is not after now,
// in registration order, and returns how many were sent.
func (e *AnimationEngine) Step(now time.Time) int {
	sent := 0
	for _, s := range slices.Clone(e.entries) {
		if i := e.index(s.w); i < 0 || e.entries[i] != s || now.Before(s.next) {
			// cancelled or replaced by an earlier handler in this step
			continue
		}
		s.w.Send(Event{Kind: EventTimer})
		s.w.Update()
		sent++
		if i := e.index(s.w); i < 0 || e.entries[i] != s {
			// the timer handler rescheduled or cancelled
			continue
		}
		if s.periodFn != nil {
			s.period = s.periodFn()
		}
		if s.period <= 0 {
			logger.Warn().Str("widget", s.w.name).Dur("period", s.period).Msg("animation stopped: period function returned non-positive period")
			e.Unregister(s.w)
			continue
		}
		s.next = now.Add(s.period)
	}
	if sent > 0 {
		logger.Trace().Int("widgets", sent).Msg("animation step")
	}
	return sent
}

// AnimationTickMsg is delivered by the command returned from Cmd.
type AnimationTickMsg time.Time

// Cmd returns a bubbletea command that delivers an AnimationTickMsg after
// interval. Call it again after every tick to keep the engine running.
func (e *AnimationEngine) Cmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return AnimationTickMsg(t)
	})
}
