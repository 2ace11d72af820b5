package stylesheet

import (
	"github.com/kungfusheep/tui"
	"github.com/kungfusheep/tui/pipe"
)

var shapes = map[string]func() pipe.Op{
	"full":        pipe.Bordered,
	"none":        pipe.NotBordered,
	"north":       pipe.NorthBorder,
	"south":       pipe.SouthBorder,
	"east":        pipe.EastBorder,
	"west":        pipe.WestBorder,
	"north_east":  pipe.NorthEastBorder,
	"north_west":  pipe.NorthWestBorder,
	"south_east":  pipe.SouthEastBorder,
	"south_west":  pipe.SouthWestBorder,
	"north_south": pipe.NorthSouthBorder,
	"east_west":   pipe.EastWestBorder,
	"corners":     pipe.CornersBorder,
	"no_corners":  pipe.NoCornersBorder,
	"no_walls":    pipe.NoWallsBorder,
}

var glyphSets = map[string]func() pipe.Op{
	"squared_corners":          pipe.SquaredCorners,
	"rounded_corners":          pipe.RoundedCorners,
	"plus_corners":             pipe.PlusCorners,
	"asterisk_walls":           pipe.AsteriskWalls,
	"doubled_walls":            pipe.DoubledWalls,
	"bold_walls":               pipe.BoldWalls,
	"dashed_walls_1":           pipe.DashedWalls1,
	"bold_dashed_walls_1":      pipe.BoldDashedWalls1,
	"dashed_walls_2":           pipe.DashedWalls2,
	"bold_dashed_walls_2":      pipe.BoldDashedWalls2,
	"dashed_walls_3":           pipe.DashedWalls3,
	"bold_dashed_walls_3":      pipe.BoldDashedWalls3,
	"dashed_walls_4":           pipe.DashedWalls4,
	"bold_dashed_walls_4":      pipe.BoldDashedWalls4,
	"block_walls_1":            pipe.BlockWalls1,
	"block_walls_2":            pipe.BlockWalls2,
	"block_walls_3":            pipe.BlockWalls3,
	"block_walls_4":            pipe.BlockWalls4,
	"half_block_walls":         pipe.HalfBlockWalls,
	"half_block_inner_walls_1": pipe.HalfBlockInnerWalls1,
	"half_block_inner_walls_2": pipe.HalfBlockInnerWalls2,
	"block_corners":            pipe.BlockCorners,
	"floating_block_corners":   pipe.FloatingBlockCorners,
}

// wall pairs the glyph and attribute factories for one segment group.
type wall struct {
	glyph func(tui.Glyph) pipe.Op
	attrs func(...tui.Attribute) pipe.Op
}

var walls = map[string]wall{
	"north":             {pipe.NorthWall[tui.Glyph], pipe.NorthWallAttributes},
	"south":             {pipe.SouthWall[tui.Glyph], pipe.SouthWallAttributes},
	"east":              {pipe.EastWall[tui.Glyph], pipe.EastWallAttributes},
	"west":              {pipe.WestWall[tui.Glyph], pipe.WestWallAttributes},
	"north_south":       {pipe.NorthSouthWalls[tui.Glyph], pipe.NorthSouthWallsAttributes},
	"east_west":         {pipe.EastWestWalls[tui.Glyph], pipe.EastWestWallsAttributes},
	"north_east_corner": {pipe.NorthEastCorner[tui.Glyph], pipe.NorthEastCornerAttributes},
	"north_west_corner": {pipe.NorthWestCorner[tui.Glyph], pipe.NorthWestCornerAttributes},
	"south_east_corner": {pipe.SouthEastCorner[tui.Glyph], pipe.SouthEastCornerAttributes},
	"south_west_corner": {pipe.SouthWestCorner[tui.Glyph], pipe.SouthWestCornerAttributes},
	"north_east":        {pipe.NorthEastWalls[tui.Glyph], pipe.NorthEastWallsAttributes},
	"north_west":        {pipe.NorthWestWalls[tui.Glyph], pipe.NorthWestWallsAttributes},
	"south_east":        {pipe.SouthEastWalls[tui.Glyph], pipe.SouthEastWallsAttributes},
	"south_west":        {pipe.SouthWestWalls[tui.Glyph], pipe.SouthWestWallsAttributes},
}

// wallOrder fixes the order map entries are compiled in.
var wallOrder = []string{
	"north", "south", "east", "west", "north_south", "east_west",
	"north_east_corner", "north_west_corner", "south_east_corner", "south_west_corner",
	"north_east", "north_west", "south_east", "south_west",
}

// axis holds the size factories of one direction.
type axis struct {
	shorthand    map[string]func(int) pipe.Op
	ignored      func() pipe.Op
	hint         func(int) pipe.Op
	min          func(int) pipe.Op
	max          func(int) pipe.Op
	stretch      func(float64) pipe.Op
	canIgnore    func() pipe.Op
	cannotIgnore func() pipe.Op
}

var widthAxis = axis{
	shorthand: map[string]func(int) pipe.Op{
		"fixed":             pipe.FixedWidth,
		"minimum":           pipe.MinimumWidth,
		"maximum":           pipe.MaximumWidth,
		"preferred":         pipe.PreferredWidth,
		"expanding":         pipe.ExpandingWidth,
		"minimum_expanding": pipe.MinimumExpandingWidth,
	},
	ignored:      pipe.IgnoredWidth,
	hint:         pipe.WidthHint,
	min:          pipe.WidthMin,
	max:          pipe.WidthMax,
	stretch:      pipe.WidthStretch,
	canIgnore:    pipe.CanIgnoreWidthMin,
	cannotIgnore: pipe.CannotIgnoreWidthMin,
}

var heightAxis = axis{
	shorthand: map[string]func(int) pipe.Op{
		"fixed":             pipe.FixedHeight,
		"minimum":           pipe.MinimumHeight,
		"maximum":           pipe.MaximumHeight,
		"preferred":         pipe.PreferredHeight,
		"expanding":         pipe.ExpandingHeight,
		"minimum_expanding": pipe.MinimumExpandingHeight,
	},
	ignored:      pipe.IgnoredHeight,
	hint:         pipe.HeightHint,
	min:          pipe.HeightMin,
	max:          pipe.HeightMax,
	stretch:      pipe.HeightStretch,
	canIgnore:    pipe.CanIgnoreHeightMin,
	cannotIgnore: pipe.CannotIgnoreHeightMin,
}

func (a axis) compile(s *Size) []pipe.Op {
	if s == nil {
		return nil
	}
	var ops []pipe.Op
	switch s.Policy {
	case "":
	case "ignored":
		ops = append(ops, a.ignored())
	default:
		ops = append(ops, a.shorthand[s.Policy](deref(s.Hint)))
	}
	if s.Hint != nil && s.Policy == "" {
		ops = append(ops, a.hint(*s.Hint))
	}
	if s.Min != nil {
		ops = append(ops, a.min(*s.Min))
	}
	if s.Max != nil {
		ops = append(ops, a.max(*s.Max))
	}
	if s.Stretch != nil {
		ops = append(ops, a.stretch(*s.Stretch))
	}
	if s.CanIgnoreMin != nil {
		if *s.CanIgnoreMin {
			ops = append(ops, a.canIgnore())
		} else {
			ops = append(ops, a.cannotIgnore())
		}
	}
	return ops
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// compile turns a validated rule into ops. Values have already passed the
// validator, so parse failures here cannot happen.
func compile(r *Rule) []pipe.Op {
	var ops []pipe.Op
	if r.Theme != "" {
		role, _ := pipe.ParseRole(r.Role)
		ops = append(ops, pipe.Themed(tui.Themes[r.Theme], role))
	}
	if r.FG != "" {
		c, _ := tui.ParseColor(r.FG)
		ops = append(ops, pipe.FG(c))
	}
	if r.BG != "" {
		c, _ := tui.ParseColor(r.BG)
		ops = append(ops, pipe.BG(c))
	}
	if len(r.Attributes) > 0 {
		ops = append(ops, pipe.Add(attributes(r.Attributes)...))
	}
	if len(r.Remove) > 0 {
		ops = append(ops, pipe.Remove(attributes(r.Remove)...))
	}
	if r.Wallpaper != "" {
		ops = append(ops, pipe.Wallpaper(r.Wallpaper))
	}
	if c := r.Cursor; c != nil {
		ops = append(ops, pipe.PutCursor(tui.Point{X: c.X, Y: c.Y}))
		if c.Show {
			ops = append(ops, pipe.ShowCursor())
		} else {
			ops = append(ops, pipe.HideCursor())
		}
	}
	if r.Focus != "" {
		p, _ := tui.ParseFocusPolicy(r.Focus)
		ops = append(ops, pipe.Focus(p))
	}
	ops = append(ops, widthAxis.compile(r.Width)...)
	ops = append(ops, heightAxis.compile(r.Height)...)
	if b := r.Border; b != nil {
		if b.Shape != "" {
			ops = append(ops, shapes[b.Shape]())
		}
		for _, name := range b.Glyphs {
			ops = append(ops, glyphSets[name]())
		}
		for _, name := range wallOrder {
			if g, ok := b.Walls[name]; ok {
				ops = append(ops, walls[name].glyph(tui.MustGlyph(g)))
			}
			if attrs, ok := b.Attributes[name]; ok {
				ops = append(ops, walls[name].attrs(attributes(attrs)...))
			}
		}
	}
	if r.Animate > 0 {
		ops = append(ops, pipe.Animate(r.Animate))
	}
	return ops
}

func attributes(names []string) []tui.Attribute {
	out := make([]tui.Attribute, 0, len(names))
	for _, n := range names {
		a, _ := tui.ParseAttribute(n)
		out = append(out, a)
	}
	return out
}
