package tui

// FocusPolicy governs how a widget takes part in focus traversal.
type FocusPolicy uint8

const (
	FocusNone   FocusPolicy = iota // never focused
	FocusTab                       // focused by tab cycling
	FocusClick                     // focused by mouse press
	FocusStrong                    // tab and click
	FocusDirect                    // only by an explicit SetFocus call
)

var focusPolicyNames = [...]string{"none", "tab", "click", "strong", "direct"}

func (p FocusPolicy) String() string {
	if int(p) >= len(focusPolicyNames) {
		return "unknown"
	}
	return focusPolicyNames[p]
}

// ParseFocusPolicy maps a policy name to its value.
func ParseFocusPolicy(name string) (FocusPolicy, bool) {
	for i, n := range focusPolicyNames {
		if n == name {
			return FocusPolicy(i), true
		}
	}
	return FocusNone, false
}

// AcceptsTab reports whether tab cycling may land on the widget.
func (p FocusPolicy) AcceptsTab() bool {
	return p == FocusTab || p == FocusStrong
}

// AcceptsClick reports whether a mouse press focuses the widget.
func (p FocusPolicy) AcceptsClick() bool {
	return p == FocusClick || p == FocusStrong
}

// Focusable reports whether the widget can hold focus at all.
func (p FocusPolicy) Focusable() bool {
	return p != FocusNone
}
