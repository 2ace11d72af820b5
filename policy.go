package tui

import "math"

// SizeType selects how a layout treats a widget's hint along one axis.
type SizeType uint8

const (
	SizeFixed            SizeType = iota // exactly hint
	SizeMinimum                          // at least hint, may grow
	SizeMaximum                          // at most hint, may shrink
	SizePreferred                        // hint, may grow or shrink
	SizeExpanding                        // hint, takes extra space first
	SizeMinimumExpanding                 // at least hint, takes extra space first
	SizeIgnored                          // hint ignored, takes whatever is left
)

var sizeTypeNames = [...]string{"fixed", "minimum", "maximum", "preferred", "expanding", "minimum_expanding", "ignored"}

func (t SizeType) String() string {
	if int(t) >= len(sizeTypeNames) {
		return "unknown"
	}
	return sizeTypeNames[t]
}

// SizeUnbounded is the max bound of a policy with no upper limit.
const SizeUnbounded = math.MaxInt32

// SizePolicy is the per-axis set of layout hints a widget hands to its
// parent's layout. Shorthands (Fixed, Minimum, ...) set the type, hint and
// bounds together; the knob setters (SetHint, SetMin, ...) touch one field.
type SizePolicy struct {
	typ          SizeType
	hint         int
	min          int
	max          int
	stretch      float64
	canIgnoreMin bool

	changed func()
}

// DefaultSizePolicy is preferred, zero hint, unbounded, stretch 1.
func DefaultSizePolicy() SizePolicy {
	return SizePolicy{
		typ:          SizePreferred,
		max:          SizeUnbounded,
		stretch:      1,
		canIgnoreMin: true,
	}
}

func (p *SizePolicy) notify() {
	if p.changed != nil {
		p.changed()
	}
}

func checkSize(field string, n int) error {
	if n < 0 {
		return &PolicyError{Field: field, Value: n, Err: errNegative}
	}
	return nil
}

func (p *SizePolicy) shorthand(t SizeType, hint, min, max int) error {
	if err := checkSize(t.String(), hint); err != nil {
		return err
	}
	p.typ, p.hint, p.min, p.max = t, hint, min, max
	p.notify()
	return nil
}

// Fixed pins the size to hint.
func (p *SizePolicy) Fixed(hint int) error {
	return p.shorthand(SizeFixed, hint, hint, hint)
}

// Minimum makes hint the smallest allowed size.
func (p *SizePolicy) Minimum(hint int) error {
	return p.shorthand(SizeMinimum, hint, hint, SizeUnbounded)
}

// Maximum makes hint the largest allowed size.
func (p *SizePolicy) Maximum(hint int) error {
	return p.shorthand(SizeMaximum, hint, 0, hint)
}

// Preferred asks for hint but accepts anything.
func (p *SizePolicy) Preferred(hint int) error {
	return p.shorthand(SizePreferred, hint, 0, SizeUnbounded)
}

// Expanding asks for hint and claims extra space before preferred siblings.
func (p *SizePolicy) Expanding(hint int) error {
	return p.shorthand(SizeExpanding, hint, 0, SizeUnbounded)
}

// MinimumExpanding is Expanding with hint as the lower bound.
func (p *SizePolicy) MinimumExpanding(hint int) error {
	return p.shorthand(SizeMinimumExpanding, hint, hint, SizeUnbounded)
}

// Ignored drops the hint; the widget takes whatever space is left over.
func (p *SizePolicy) Ignored() {
	p.typ, p.min, p.max = SizeIgnored, 0, SizeUnbounded
	p.notify()
}

// SetHint sets the requested size.
func (p *SizePolicy) SetHint(hint int) error {
	if err := checkSize("hint", hint); err != nil {
		return err
	}
	p.hint = hint
	p.notify()
	return nil
}

// SetMin sets the lower bound.
func (p *SizePolicy) SetMin(min int) error {
	if err := checkSize("min", min); err != nil {
		return err
	}
	p.min = min
	p.notify()
	return nil
}

// SetMax sets the upper bound.
func (p *SizePolicy) SetMax(max int) error {
	if err := checkSize("max", max); err != nil {
		return err
	}
	p.max = max
	p.notify()
	return nil
}

// SetStretch sets the weight used when sharing extra space between siblings.
func (p *SizePolicy) SetStretch(stretch float64) error {
	if math.IsNaN(stretch) || math.IsInf(stretch, 0) {
		return &PolicyError{Field: "stretch", Value: stretch, Err: errNotFinite}
	}
	if stretch < 0 {
		return &PolicyError{Field: "stretch", Value: stretch, Err: errNegative}
	}
	p.stretch = stretch
	p.notify()
	return nil
}

// SetCanIgnoreMin lets a layout under pressure shrink the widget below min.
func (p *SizePolicy) SetCanIgnoreMin(b bool) {
	p.canIgnoreMin = b
	p.notify()
}

// Type returns the policy type.
func (p SizePolicy) Type() SizeType     { return p.typ }
func (p SizePolicy) Hint() int          { return p.hint }
func (p SizePolicy) Min() int           { return p.min }
func (p SizePolicy) Max() int           { return p.max }
func (p SizePolicy) Stretch() float64   { return p.stretch }
func (p SizePolicy) CanIgnoreMin() bool { return p.canIgnoreMin }
func (p *SizePolicy) expands() bool     { return p.typ == SizeExpanding || p.typ == SizeMinimumExpanding }
func (p *SizePolicy) grows() bool       { return p.typ != SizeFixed && p.typ != SizeMaximum }
func (p *SizePolicy) shrinks() bool     { return p.typ != SizeFixed && p.typ != SizeMinimum && p.typ != SizeMinimumExpanding }
