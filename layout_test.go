package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func policies(t *testing.T, set ...func(*SizePolicy) error) []*SizePolicy {
	t.Helper()
	out := make([]*SizePolicy, len(set))
	for i, fn := range set {
		p := DefaultSizePolicy()
		if fn != nil {
			require.NoError(t, fn(&p))
		}
		out[i] = &p
	}
	return out
}

func fixed(n int) func(*SizePolicy) error     { return func(p *SizePolicy) error { return p.Fixed(n) } }
func preferred(n int) func(*SizePolicy) error { return func(p *SizePolicy) error { return p.Preferred(n) } }
func expanding(n int) func(*SizePolicy) error { return func(p *SizePolicy) error { return p.Expanding(n) } }
func minimum(n int) func(*SizePolicy) error   { return func(p *SizePolicy) error { return p.Minimum(n) } }

func TestDefaultSizePolicy(t *testing.T) {
	t.Parallel()
	assert.Equal(t, SizePreferred, DefaultSizePolicy().Type())
	assert.Equal(t, 0, DefaultSizePolicy().Hint())
	assert.Equal(t, SizeUnbounded, DefaultSizePolicy().Max())
	assert.Equal(t, 1.0, DefaultSizePolicy().Stretch())
	assert.True(t, DefaultSizePolicy().CanIgnoreMin())
}

func TestDistribute(t *testing.T) {
	t.Parallel()

	t.Run("exact fit keeps hints", func(t *testing.T) {
		got := Distribute(policies(t, fixed(3), preferred(2)), 5)
		assert.Equal(t, []int{3, 2}, got)
	})

	t.Run("expanding widgets take spare space first", func(t *testing.T) {
		got := Distribute(policies(t, preferred(2), expanding(2), fixed(1)), 15)
		assert.Equal(t, []int{2, 12, 1}, got)
	})

	t.Run("spare space shared by stretch", func(t *testing.T) {
		ps := policies(t, preferred(0), preferred(0))
		require.NoError(t, ps[1].SetStretch(3))
		got := Distribute(ps, 8)
		assert.Equal(t, []int{2, 6}, got)
	})

	t.Run("max bounds growth", func(t *testing.T) {
		ps := policies(t, preferred(1), preferred(1))
		require.NoError(t, ps[0].SetMax(2))
		got := Distribute(ps, 10)
		assert.Equal(t, []int{2, 8}, got)
	})

	t.Run("fixed never grows", func(t *testing.T) {
		got := Distribute(policies(t, fixed(2), fixed(2)), 10)
		assert.Equal(t, []int{2, 2}, got)
	})

	t.Run("shortfall taken from the end", func(t *testing.T) {
		got := Distribute(policies(t, preferred(4), preferred(4)), 6)
		assert.Equal(t, []int{4, 2}, got)
	})

	t.Run("minimum holds unless it may be ignored", func(t *testing.T) {
		ps := policies(t, minimum(4), minimum(4))
		ps[0].SetCanIgnoreMin(false)
		got := Distribute(ps, 5)
		assert.Equal(t, []int{4, 1}, got)
	})

	t.Run("ignored starts at zero", func(t *testing.T) {
		ps := policies(t, fixed(3), nil)
		ps[1].Ignored()
		got := Distribute(ps, 10)
		assert.Equal(t, []int{3, 7}, got)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Distribute(nil, 10))
	})
}

func TestArrange(t *testing.T) {
	t.Parallel()
	header := NewWidget("header")
	require.NoError(t, header.HeightPolicy.Fixed(1))
	body := NewWidget("body")
	require.NoError(t, body.HeightPolicy.Expanding(0))
	side := NewWidget("side")
	require.NoError(t, side.WidthPolicy.Fixed(4))
	content := NewWidget("main")
	row := HBox("row", side, content)
	body.AddChild(row)

	root := VBox("root", header, body)
	root.Border.Enable()
	root.Resize(Area{Width: 20, Height: 10})
	Arrange(root)

	assert.Equal(t, Point{X: 1, Y: 1}, header.Position())
	assert.Equal(t, Area{Width: 18, Height: 1}, header.Size())
	assert.Equal(t, Point{X: 1, Y: 2}, body.Position())
	assert.Equal(t, Area{Width: 18, Height: 7}, body.Size())
	// body has no layout of its own, so row keeps its default geometry
	assert.Equal(t, Area{}, row.Size())

	body.Layout = LayoutVertical
	Arrange(root)
	assert.Equal(t, Area{Width: 18, Height: 7}, row.Size())
	assert.Equal(t, Area{Width: 4, Height: 7}, side.Size())
	assert.Equal(t, Point{X: 5, Y: 2}, content.Position())
	assert.Equal(t, Area{Width: 14, Height: 7}, content.Size())
}
