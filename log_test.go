package tui

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	var out bytes.Buffer
	SetLogger(zerolog.New(&out).Level(zerolog.DebugLevel))
	t.Cleanup(func() { SetLogger(zerolog.Nop()) })

	NewWidget("parent").AddChild(NewWidget("child"))

	assert.Contains(t, out.String(), `"component":"tui"`)
	assert.Contains(t, out.String(), `"message":"child added"`)
	assert.Contains(t, out.String(), `"child":"child"`)
	assert.Equal(t, zerolog.DebugLevel, Logger().GetLevel())
}
