package pipe_test

import (
	"fmt"

	"github.com/kungfusheep/tui"
	"github.com/kungfusheep/tui/pipe"
)

// Style a widget and draw it.
// Ops run left to right and the widget comes back for further use.
func ExamplePipe() {
	w := tui.NewWidget("greeting")
	w.SetText("hi")
	w.Resize(tui.Area{Width: 6, Height: 3})

	pipe.Must(w, pipe.Bordered(), pipe.RoundedCorners(), pipe.FG(tui.Cyan))

	buf := tui.NewBuffer(6, 3)
	tui.Paint(w, buf)
	fmt.Println(buf.String())
	// Output:
	// ╭────╮
	// │hi  │
	// ╰────╯
}

// Style every child at once.
func ExamplePipe_children() {
	list := tui.VBox("list", tui.NewWidget("one"), tui.NewWidget("two"))

	pipe.Must(list.Children(), pipe.FixedHeight(1), pipe.Add(tui.AttrBold))
	for w := range list.Children().All() {
		fmt.Println(w.Name(), w.HeightPolicy.Hint(), w.Brush.Has(tui.AttrBold))
	}
	// Output:
	// one 1 true
	// two 1 true
}

// Fold ops into one reusable style.
func ExampleCompose() {
	card := pipe.Compose(pipe.Bordered(), pipe.DoubledWalls(), pipe.Wallpaper('.'))
	a := pipe.Must(tui.NewWidget("a"), card)
	fmt.Println(a.Border.Enabled(), string(a.Border.Segment(tui.North).Glyph.Rune))
	// Output:
	// true ═
}
