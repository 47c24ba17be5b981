package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const (
	themeBeat   = 280 * time.Millisecond
	themeVolume = 0.5
)

const (
	pitchA4 = 440.0
	pitchB4 = 493.88
	pitchC5 = 523.25
	pitchD5 = 587.33
	pitchE5 = 659.25
	pitchF5 = 698.46
	pitchG5 = 783.99
	pitchA5 = 880.0
	rest    = 0.0
)

// themeNotes is the Korobeiniki melody: two phrases, each played twice.
func themeNotes() []note {
	q := themeBeat
	e := q / 2
	lead := func(freq float64, d time.Duration) note { return note{freq, d, WaveSquare} }

	phraseA := []note{
		lead(pitchE5, q), lead(pitchB4, e), lead(pitchC5, e), lead(pitchD5, q), lead(pitchC5, e), lead(pitchB4, e),
		lead(pitchA4, q), lead(pitchA4, e), lead(pitchC5, e), lead(pitchE5, q), lead(pitchD5, e), lead(pitchC5, e),
		lead(pitchB4, q+e), lead(pitchC5, e), lead(pitchD5, q), lead(pitchE5, q),
		lead(pitchC5, q), lead(pitchA4, q), lead(pitchA4, 2*q),
	}
	phraseB := []note{
		lead(rest, e), lead(pitchD5, q), lead(pitchF5, e), lead(pitchA5, q), lead(pitchG5, e), lead(pitchF5, e),
		lead(pitchE5, q+e), lead(pitchC5, e), lead(pitchE5, q), lead(pitchD5, e), lead(pitchC5, e),
		lead(pitchB4, q), lead(pitchB4, e), lead(pitchC5, e), lead(pitchD5, q), lead(pitchE5, q),
		lead(pitchC5, q), lead(pitchA4, q), lead(pitchA4, q), lead(rest, q),
	}

	var out []note
	for _, phrase := range [][]note{phraseA, phraseA, phraseB, phraseB} {
		out = append(out, phrase...)
	}
	return out
}

// themeDuration is the length of one pass of the theme.
func themeDuration() time.Duration {
	var d time.Duration
	for _, n := range themeNotes() {
		d += n.d
	}
	return d
}

// Theme renders one pass of the background theme into a buffer so it can be
// looped.
func Theme(rate beep.SampleRate) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(melody(rate, themeNotes()...))
	return buf
}

// loopTheme plays buf forever at the theme volume scaled by the master volume.
func loopTheme(buf *beep.Buffer, cfg Config) beep.Streamer {
	return withVolume(beep.Loop(-1, buf.Streamer(0, buf.Len())), themeVolume*cfg.MasterVolume)
}
