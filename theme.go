package tui

// Theme is a set of brushes for consistent appearance across a tree.
// The pipe package applies them with Themed.
type Theme struct {
	Base   Brush // default text
	Muted  Brush // de-emphasized text
	Accent Brush // highlighted/important text
	Error  Brush // error messages
	Border Brush // borders and dividers
}

func fg(c Color, attrs ...Attribute) Brush {
	b := NewBrush(attrs...)
	b.SetForeground(c)
	return b
}

// ThemeDark is a dark theme with light text on dark background.
var ThemeDark = Theme{
	Base:   fg(White),
	Muted:  fg(BrightBlack),
	Accent: fg(BrightCyan),
	Error:  fg(BrightRed),
	Border: fg(BrightBlack),
}

// ThemeLight is a light theme with dark text on light background.
var ThemeLight = Theme{
	Base:   fg(Black),
	Muted:  fg(BrightBlack),
	Accent: fg(Blue),
	Error:  fg(Red),
	Border: fg(White),
}

// ThemeMonochrome is a minimal theme using only attributes.
var ThemeMonochrome = Theme{
	Muted:  NewBrush(AttrDim),
	Accent: NewBrush(AttrBold),
	Error:  NewBrush(AttrBold, AttrUnderline),
	Border: NewBrush(AttrDim),
}

// Themes maps theme names to themes.
var Themes = map[string]Theme{
	"dark":       ThemeDark,
	"light":      ThemeLight,
	"monochrome": ThemeMonochrome,
}
