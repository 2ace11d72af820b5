package tui

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by event filter installation.
var (
	ErrNilFilter  = errors.New("event filter is nil")
	ErrSelfFilter = errors.New("widget cannot filter its own events")
)

// GlyphError reports a value that cannot be represented as a single glyph.
type GlyphError struct {
	Input   string
	Message string
}

func (e *GlyphError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid glyph %q: %s", e.Input, e.Message)
}

// PolicyError reports a size policy value rejected by the policy.
type PolicyError struct {
	Field string
	Value any
	Err   error
}

func (e *PolicyError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("size policy %s: invalid value %v: %v", e.Field, e.Value, e.Err)
}

// Unwrap exposes the underlying error.
func (e *PolicyError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// AnimationError reports an animation period the engine cannot schedule.
type AnimationError struct {
	Widget string
	Err    error
}

func (e *AnimationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Widget != "" {
		return fmt.Sprintf("animation %s: %v", e.Widget, e.Err)
	}
	return fmt.Sprintf("animation: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *AnimationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

var (
	errNegative    = errors.New("must not be negative")
	errNotFinite   = errors.New("must be finite")
	errBadPeriod   = errors.New("period must be positive")
	errNilPeriodFn = errors.New("period function is nil")
)
