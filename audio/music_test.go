package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheme(t *testing.T) {
	want := 0
	for _, n := range themeNotes() {
		want += testRate.N(n.d)
	}

	buf := Theme(testRate)
	require.Equal(t, want, buf.Len())
	assert.Greater(t, themeDuration().Seconds(), 20.0)

	t.Run("contains rests and tones", func(t *testing.T) {
		samples := drain(t, buf.Streamer(0, buf.Len()))
		var silent, loud int
		for _, s := range samples {
			if s[0] == 0 {
				silent++
			} else {
				loud++
			}
		}
		assert.NotZero(t, silent)
		assert.Greater(t, loud, silent)
	})
}

func TestLoopThemeNeverEnds(t *testing.T) {
	buf := Theme(testRate)
	s := loopTheme(buf, DefaultConfig())

	chunk := make([][2]float64, 4096)
	total := 0
	for total < 2*buf.Len()+1 {
		n, ok := s.Stream(chunk)
		require.True(t, ok, "theme stopped after %d samples", total)
		total += n
	}
}
