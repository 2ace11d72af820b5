package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) (*App, []*Widget) {
	t.Helper()
	var ws []*Widget
	for _, name := range []string{"a", "b", "c"} {
		w := NewWidget(name)
		require.NoError(t, w.HeightPolicy.Fixed(2))
		ws = append(ws, w)
	}
	ws[0].FocusPolicy = FocusStrong
	ws[1].FocusPolicy = FocusClick
	ws[2].FocusPolicy = FocusTab
	root := VBox("root", ws...)
	root.SetAnimationEngine(NewAnimationEngine())
	return NewApp(root, WithSize(10, 6)), ws
}

func TestAppFocusCycling(t *testing.T) {
	t.Parallel()
	app, ws := testApp(t)
	var got []string
	for _, w := range ws {
		w.Signals.FocusedIn.Connect(func(struct{}) { got = append(got, "in "+w.Name()) })
		w.Signals.FocusedOut.Connect(func(struct{}) { got = append(got, "out "+w.Name()) })
	}

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app.Update(tea.KeyMsg{Type: tea.KeyShiftTab})

	// b only accepts click focus
	assert.Equal(t, []string{"in a", "out a", "in c", "out c", "in a", "out a", "in c"}, got)
	assert.Same(t, ws[2], app.Focused())
}

func TestAppRoutesKeysToFocus(t *testing.T) {
	t.Parallel()
	app, ws := testApp(t)
	var keys []string
	ws[0].Signals.KeyPressed.Connect(func(k tea.KeyMsg) { keys = append(keys, k.String()) })

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Empty(t, keys)

	app.SetFocus(ws[0])
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, []string{"x"}, keys)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppMouse(t *testing.T) {
	t.Parallel()
	app, ws := testApp(t)
	base := time.Unix(0, 0)
	app.now = func() time.Time { return base }
	var got []string
	ws[1].Signals.MousePressed.Connect(func(tea.MouseMsg) { got = append(got, "press") })
	ws[1].Signals.MouseDoubleClicked.Connect(func(tea.MouseMsg) { got = append(got, "double") })
	ws[1].Signals.MouseReleased.Connect(func(tea.MouseMsg) { got = append(got, "release") })

	press := tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	assert.Same(t, ws[1], app.WidgetAt(Point{X: 3, Y: 2}))

	app.Update(press)
	app.Update(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionRelease})
	app.Update(press)
	base = base.Add(time.Second)
	app.Update(press)

	assert.Equal(t, []string{"press", "release", "double", "press"}, got)
	assert.Same(t, ws[1], app.Focused())
}

func TestAppResizeAndView(t *testing.T) {
	t.Parallel()
	app, ws := testApp(t)
	ws[0].SetText("top")
	app.Update(tea.WindowSizeMsg{Width: 8, Height: 4})

	assert.Equal(t, Area{Width: 8, Height: 2}, ws[1].Size())
	assert.Equal(t, Point{X: 0, Y: 2}, ws[1].Position())
	// the third row no longer fits and is shrunk to nothing
	assert.Equal(t, 0, ws[2].Size().Height)

	view := ansi.Strip(app.View())
	assert.Equal(t, "top     \n        \n        \n        ", view)
}

func TestAppAnimationTick(t *testing.T) {
	t.Parallel()
	app, ws := testApp(t)
	ticks := 0
	ws[0].Signals.Timer.Connect(func(struct{}) { ticks++ })
	require.NoError(t, ws[0].EnableAnimation(time.Nanosecond))

	_, cmd := app.Update(AnimationTickMsg(time.Now().Add(time.Second)))
	assert.Equal(t, 1, ticks)
	assert.NotNil(t, cmd)
	assert.NotNil(t, app.Init())
}

func TestAppViewReusesUnchangedFrame(t *testing.T) {
	t.Parallel()
	app, ws := testApp(t)
	ws[0].SetText("one")

	first := app.View()
	assert.Equal(t, first, app.View())

	ws[0].SetText("two")
	changed := app.View()
	assert.NotEqual(t, first, changed)
	assert.Contains(t, ansi.Strip(changed), "two")
}
