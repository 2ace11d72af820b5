package pipe

import "github.com/kungfusheep/tui"

func widthPolicy(w *tui.Widget) *tui.SizePolicy  { return &w.WidthPolicy }
func heightPolicy(w *tui.Widget) *tui.SizePolicy { return &w.HeightPolicy }

func policy(axis func(*tui.Widget) *tui.SizePolicy, set func(*tui.SizePolicy) error) Op {
	return func(w *tui.Widget) error {
		return set(axis(w))
	}
}

// FixedWidth pins the width to hint.
func FixedWidth(hint int) Op {
	return policy(widthPolicy, func(p *tui.SizePolicy) error {
		return p.Fixed(hint)
	})
}

// MinimumWidth makes hint the smallest width.
func MinimumWidth(hint int) Op {
	return policy(widthPolicy, func(p *tui.SizePolicy) error {
		return p.Minimum(hint)
	})
}

// MaximumWidth makes hint the largest width.
func MaximumWidth(hint int) Op {
	return policy(widthPolicy, func(p *tui.SizePolicy) error {
		return p.Maximum(hint)
	})
}

// PreferredWidth asks for a width of hint, allowing growth and shrinkage.
func PreferredWidth(hint int) Op {
	return policy(widthPolicy, func(p *tui.SizePolicy) error {
		return p.Preferred(hint)
	})
}

// ExpandingWidth asks for a width of hint and claims spare space first.
func ExpandingWidth(hint int) Op {
	return policy(widthPolicy, func(p *tui.SizePolicy) error {
		return p.Expanding(hint)
	})
}

// MinimumExpandingWidth is ExpandingWidth with hint as the lower bound.
func MinimumExpandingWidth(hint int) Op {
	return policy(widthPolicy, func(p *tui.SizePolicy) error {
		return p.MinimumExpanding(hint)
	})
}

// IgnoredWidth drops the width hint; the widget takes the space left over.
func IgnoredWidth() Op {
	return policy(widthPolicy, func(p *tui.SizePolicy) error {
		p.Ignored()
		return nil
	})
}

// WidthHint sets the requested width only.
func WidthHint(hint int) Op {
	return policy(widthPolicy, func(p *tui.SizePolicy) error {
		return p.SetHint(hint)
	})
}

// WidthMin sets the width lower bound only.
func WidthMin(min int) Op {
	return policy(widthPolicy, func(p *tui.SizePolicy) error {
		return p.SetMin(min)
	})
}

// WidthMax sets the width upper bound only.
func WidthMax(max int) Op {
	return policy(widthPolicy, func(p *tui.SizePolicy) error {
		return p.SetMax(max)
	})
}

// WidthStretch sets the weight used to share spare width between siblings.
func WidthStretch(stretch float64) Op {
	return policy(widthPolicy, func(p *tui.SizePolicy) error {
		return p.SetStretch(stretch)
	})
}

// CanIgnoreWidthMin lets the layout shrink the width below its minimum under pressure.
func CanIgnoreWidthMin() Op {
	return policy(widthPolicy, func(p *tui.SizePolicy) error {
		p.SetCanIgnoreMin(true)
		return nil
	})
}

// CannotIgnoreWidthMin keeps the width at or above its minimum.
func CannotIgnoreWidthMin() Op {
	return policy(widthPolicy, func(p *tui.SizePolicy) error {
		p.SetCanIgnoreMin(false)
		return nil
	})
}

// FixedHeight pins the height to hint.
func FixedHeight(hint int) Op {
	return policy(heightPolicy, func(p *tui.SizePolicy) error {
		return p.Fixed(hint)
	})
}

// MinimumHeight makes hint the smallest height.
func MinimumHeight(hint int) Op {
	return policy(heightPolicy, func(p *tui.SizePolicy) error {
		return p.Minimum(hint)
	})
}

// MaximumHeight makes hint the largest height.
func MaximumHeight(hint int) Op {
	return policy(heightPolicy, func(p *tui.SizePolicy) error {
		return p.Maximum(hint)
	})
}

// PreferredHeight asks for a height of hint, allowing growth and shrinkage.
func PreferredHeight(hint int) Op {
	return policy(heightPolicy, func(p *tui.SizePolicy) error {
		return p.Preferred(hint)
	})
}

// ExpandingHeight asks for a height of hint and claims spare space first.
func ExpandingHeight(hint int) Op {
	return policy(heightPolicy, func(p *tui.SizePolicy) error {
		return p.Expanding(hint)
	})
}

// MinimumExpandingHeight is ExpandingHeight with hint as the lower bound.
func MinimumExpandingHeight(hint int) Op {
	return policy(heightPolicy, func(p *tui.SizePolicy) error {
		return p.MinimumExpanding(hint)
	})
}

// IgnoredHeight drops the height hint; the widget takes the space left over.
func IgnoredHeight() Op {
	return policy(heightPolicy, func(p *tui.SizePolicy) error {
		p.Ignored()
		return nil
	})
}

// HeightHint sets the requested height only.
func HeightHint(hint int) Op {
	return policy(heightPolicy, func(p *tui.SizePolicy) error {
		return p.SetHint(hint)
	})
}

// HeightMin sets the height lower bound only.
func HeightMin(min int) Op {
	return policy(heightPolicy, func(p *tui.SizePolicy) error {
		return p.SetMin(min)
	})
}

// HeightMax sets the height upper bound only.
func HeightMax(max int) Op {
	return policy(heightPolicy, func(p *tui.SizePolicy) error {
		return p.SetMax(max)
	})
}

// HeightStretch sets the weight used to share spare height between siblings.
func HeightStretch(stretch float64) Op {
	return policy(heightPolicy, func(p *tui.SizePolicy) error {
		return p.SetStretch(stretch)
	})
}

// CanIgnoreHeightMin lets the layout shrink the height below its minimum under pressure.
func CanIgnoreHeightMin() Op {
	return policy(heightPolicy, func(p *tui.SizePolicy) error {
		p.SetCanIgnoreMin(true)
		return nil
	})
}

// CannotIgnoreHeightMin keeps the height at or above its minimum.
func CannotIgnoreHeightMin() Op {
	return policy(heightPolicy, func(p *tui.SizePolicy) error {
		p.SetCanIgnoreMin(false)
		return nil
	})
}
