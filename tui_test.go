package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttribute(t *testing.T) {
	t.Parallel()
	a := AttrBold.With(AttrItalic)
	assert.True(t, a.Has(AttrBold))
	assert.True(t, a.Has(AttrBold|AttrItalic))
	assert.False(t, a.Has(AttrBold|AttrDim))
	assert.Equal(t, "bold|italic", a.String())
	assert.Equal(t, "none", AttrNone.String())
	assert.Equal(t, AttrItalic, a.Without(AttrBold))

	got, ok := ParseAttribute("strikethrough")
	require.True(t, ok)
	assert.Equal(t, AttrStrikethrough, got)
	_, ok = ParseAttribute("sparkly")
	assert.False(t, ok)
}

func TestBrush(t *testing.T) {
	t.Parallel()

	t.Run("unset differs from default", func(t *testing.T) {
		var b Brush
		_, ok := b.Foreground()
		assert.False(t, ok)
		b.SetForeground(DefaultColor())
		c, ok := b.Foreground()
		assert.True(t, ok)
		assert.Equal(t, ColorDefault, c.Mode)
	})

	t.Run("attributes", func(t *testing.T) {
		b := NewBrush(AttrBold)
		b.AddAttributes(AttrUnderline, AttrBold)
		assert.Equal(t, AttrBold|AttrUnderline, b.Attributes())
		b.RemoveAttributes(AttrBold)
		assert.Equal(t, AttrUnderline, b.Attributes())
		b.ClearAttributes()
		assert.Equal(t, AttrNone, b.Attributes())
	})

	t.Run("over", func(t *testing.T) {
		top := NewBrush(AttrInverse)
		top.SetForeground(Red)
		under := NewBrush(AttrBold)
		under.SetForeground(Blue)
		under.SetBackground(Green)

		got := top.Over(under)
		fg, _ := got.Foreground()
		bg, ok := got.Background()
		assert.Equal(t, Red, fg)
		assert.True(t, ok)
		assert.Equal(t, Green, bg)
		assert.Equal(t, AttrInverse|AttrBold, got.Attributes())
	})
}

func TestParseGlyph(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want rune
		err  bool
	}{
		{in: "x", want: 'x'},
		{in: "═", want: '═'},
		{in: "漢", want: '漢'},
		{in: "", err: true},
		{in: "ab", err: true},
		{in: "e\u0301", err: true}, // e + combining acute: one cluster, two runes
		{in: "\t", err: true},
	}
	for _, tt := range tests {
		g, err := ParseGlyph(tt.in)
		if tt.err {
			var gerr *GlyphError
			assert.ErrorAs(t, err, &gerr, "%q", tt.in)
			continue
		}
		require.NoError(t, err, "%q", tt.in)
		assert.Equal(t, tt.want, g.Rune)
	}
	assert.Panics(t, func() { MustGlyph("xy") })
}

func TestParseColor(t *testing.T) {
	t.Parallel()
	tests := map[string]Color{
		"red":          Red,
		" Bright-Blue": BrightBlue,
		"gray":         BrightBlack,
		"default":      DefaultColor(),
		"3":            Yellow,
		"200":          PaletteColor(200),
		"#FF8800":      RGB(0xff, 0x88, 0x00),
	}
	for in, want := range tests {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"mauve", "256", "#12", ""} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestFocusPolicy(t *testing.T) {
	t.Parallel()
	assert.True(t, FocusStrong.AcceptsTab())
	assert.True(t, FocusStrong.AcceptsClick())
	assert.False(t, FocusClick.AcceptsTab())
	assert.False(t, FocusDirect.AcceptsClick())
	assert.True(t, FocusDirect.Focusable())
	assert.False(t, FocusNone.Focusable())

	p, ok := ParseFocusPolicy("click")
	require.True(t, ok)
	assert.Equal(t, FocusClick, p)
	assert.Equal(t, "click", p.String())
}

func TestSignal(t *testing.T) {
	t.Parallel()
	var s Signal[int]
	var got []int
	s.Connect(func(v int) { got = append(got, v) })
	s.Connect(nil)
	s.Connect(func(v int) {
		got = append(got, v*10)
		s.Connect(func(v int) { got = append(got, -v) })
	})

	s.Emit(1)
	// the handler connected during emission waits for the next one
	assert.Equal(t, []int{1, 10}, got)
	assert.Equal(t, 3, s.Len())
}
