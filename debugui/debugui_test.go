package debugui_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ frame.InputSource = (*debugui.SessionInspector)(nil)
var _ frame.System = (*debugui.ImguiSystem)(nil)

func TestFrameHistory(t *testing.T) {
	h := debugui.NewFrameHistory(4)
	assert.Zero(t, h.Average())

	h.Push(0.010)
	h.Push(0.020)
	assert.InDelta(t, 15.0, h.Average(), 0.001)

	for i := 0; i < 4; i++ {
		h.Push(0.005)
	}
	assert.InDelta(t, 5.0, h.Average(), 0.001)
	assert.Len(t, h.Samples(), 4)
}

func TestSummarize(t *testing.T) {
	assert.Nil(t, debugui.Summarize(nil))

	s := game.NewSession(game.Options{Rand: rand.New(rand.NewPCG(9, 9)), HighScore: 500})
	fields := debugui.Summarize(s)

	values := make(map[string]string, len(fields))
	for _, f := range fields {
		values[f.Name] = f.Value
	}
	assert.Equal(t, "0", values["Score"])
	assert.Equal(t, "500", values["High Score"])
	assert.Equal(t, "1", values["Level"])
	assert.Equal(t, "TIME 00:00", values["Elapsed"])
	assert.Equal(t, "running", values["State"])
	assert.Equal(t, s.Next().Kind().String(), values["Next"])

	s.Apply(game.CommandPauseToggle)
	for _, f := range debugui.Summarize(s) {
		if f.Name == "State" {
			assert.Equal(t, "paused", f.Value)
		}
	}
}

func TestBoardText(t *testing.T) {
	s := game.NewSession(game.Options{Rand: rand.New(rand.NewPCG(9, 9))})
	b := s.Board()
	b.Lock([]game.Point{b.Geometry().ToPoint(game.Cell{Row: 19, Col: 0})}, int(game.KindL))

	lines := strings.Split(strings.TrimSuffix(debugui.BoardText(s), "\n"), "\n")
	require.Len(t, lines, game.DefaultRows)
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "L.........", lines[19])
}

func TestSessionInspectorPoll(t *testing.T) {
	si := debugui.NewSessionInspector()
	assert.Empty(t, si.Poll())
}
