package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kungfusheep/tui"
	"github.com/kungfusheep/tui/pipe"
)

var borderStyles = []struct {
	name string
	op   pipe.Op
}{
	{"rounded", pipe.RoundedCorners()},
	{"doubled", pipe.DoubledWalls()},
	{"bold", pipe.BoldWalls()},
	{"dashed", pipe.Compose(pipe.SquaredCorners(), pipe.DashedWalls2())},
	{"bold dashed", pipe.Compose(pipe.BoldWalls(), pipe.BoldDashedWalls3())},
	{"block", pipe.BlockWalls2()},
	{"half block", pipe.HalfBlockWalls()},
	{"inner half", pipe.HalfBlockInnerWalls2()},
	{"asterisk", pipe.AsteriskWalls()},
	{"plus", pipe.Compose(pipe.SquaredCorners(), pipe.PlusCorners())},
}

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// buildDemo assembles the demo tree: a header, a column of focusable style
// samples and a status panel with an animated spinner.
func buildDemo() (*tui.Widget, error) {
	header := tui.NewWidget("header")
	header.SetText(" pipe demo: tab cycles focus, keys restyle the focused sample, q quits")
	if _, err := pipe.Pipe(header,
		pipe.FixedHeight(3),
		pipe.NorthSouthBorder(),
		pipe.NorthSouthWalls('═'),
		pipe.NorthSouthWallsAttributes(tui.AttrBold),
		pipe.FG(tui.BrightCyan),
		pipe.Add(tui.AttrBold),
	); err != nil {
		return nil, err
	}

	samples := tui.VBox("samples")
	for i, style := range borderStyles {
		s := tui.NewWidget(style.name)
		s.SetText(style.name)
		if _, err := pipe.Pipe(s, pipe.Bordered(), pipe.SquaredCorners(), style.op); err != nil {
			return nil, err
		}
		if i%2 == 1 {
			pipe.Must(s, pipe.FG(tui.BrightBlack))
		}
		samples.AddChild(s)
	}
	if _, err := pipe.Pipe(samples.Children(),
		pipe.FixedHeight(3),
		pipe.StrongFocus(),
	); err != nil {
		return nil, err
	}
	for w := range samples.Children().All() {
		restyle(w)
	}

	spinner := tui.NewWidget("spinner")
	frame := 0
	pipe.Must(spinner,
		pipe.FixedWidth(3),
		pipe.FixedHeight(1),
		pipe.FG(tui.Yellow),
		pipe.OnTimer(func() {
			frame = (frame + 1) % len(spinnerFrames)
			spinner.SetText(string(spinnerFrames[frame]))
		}),
	)
	spinner.SetText(string(spinnerFrames[0]))

	status := tui.NewWidget("status")
	clicks := 0
	pipe.Must(status,
		pipe.ExpandingHeight(1),
		pipe.NorthWestBorder(),
		pipe.NorthWestWalls('─'),
		pipe.NorthWestCorner('╭'),
		pipe.Wallpaper(tui.G('·', tui.AttrDim)),
		pipe.WallpaperWithoutBrush(),
		pipe.ClickFocus(),
		pipe.OnMousePress(func(m tea.MouseMsg) {
			clicks++
			status.SetText(fmt.Sprintf("clicks: %d at %d,%d", clicks, m.X, m.Y))
		}),
		pipe.OnMouseDoubleClick(func(tea.MouseMsg) {
			status.SetText("double click")
		}),
	)

	panel := tui.VBox("panel", spinner, status)
	pipe.Must(panel,
		pipe.ExpandingWidth(0),
		pipe.WidthStretch(2),
		pipe.Bordered(),
		pipe.RoundedCorners(),
		pipe.FG(tui.Green),
	)

	body := tui.HBox("body", samples, panel)
	pipe.Must(samples, pipe.FixedWidth(22), pipe.NoFocus())
	pipe.Must(body, pipe.ExpandingHeight(0))

	root := tui.VBox("root", header, body)
	root.SetAnimationEngine(tui.NewAnimationEngine())

	// animate only once the spinner resolves to the root's engine
	_, err := pipe.Pipe(spinner, pipe.AnimateFunc(func() time.Duration {
		// slow down toward the end of each cycle
		return time.Duration(60+frame*15) * time.Millisecond
	}))
	return root, err
}

// restyle connects the key handlers of one focusable sample.
func restyle(w *tui.Widget) {
	pipe.Must(w,
		pipe.OnFocusIn(func() { pipe.Must(w, pipe.Add(tui.AttrInverse)) }),
		pipe.OnFocusOut(func() { pipe.Must(w, pipe.Remove(tui.AttrInverse)) }),
		pipe.OnKeyPress(func(k tea.KeyMsg) {
			var err error
			switch k.String() {
			case "b":
				_, err = pipe.Pipe(w, pipe.Bordered())
			case "n":
				_, err = pipe.Pipe(w, pipe.NotBordered())
			case "c":
				_, err = pipe.Pipe(w, pipe.CornersBorder())
			case "w":
				_, err = pipe.Pipe(w, pipe.NoCornersBorder())
			case "u":
				_, err = pipe.Pipe(w, pipe.Add(tui.AttrUnderline))
			case "x":
				_, err = pipe.Pipe(w, pipe.ClearAttributes(), pipe.RemoveForeground())
			case "r":
				_, err = pipe.Pipe(w, pipe.FG(tui.Red))
			}
			if err != nil {
				tui.Logger().Error().Err(err).Str("widget", w.Name()).Msg("restyle failed")
			}
		}),
	)
}

// applyTheme recolors the header, panel and status line from t.
func applyTheme(root *tui.Widget, t tui.Theme) error {
	targets := []struct {
		name string
		role pipe.Role
	}{
		{"header", pipe.RoleAccent},
		{"panel", pipe.RoleBase},
		{"status", pipe.RoleMuted},
	}
	for _, tt := range targets {
		if _, err := pipe.Pipe(root.Descendants().Named(tt.name), pipe.Themed(t, tt.role)); err != nil {
			return err
		}
	}
	return nil
}
