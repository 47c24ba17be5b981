package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/plus3/blockfall/game"
)

const ms = time.Millisecond

// cueVolumes scales each cue relative to the master volume.
var cueVolumes = map[game.Cue]float64{
	game.CueMove:         0.35,
	game.CueRotate:       0.4,
	game.CueLock:         0.6,
	game.CueLineClear:    0.7,
	game.CuePauseEnter:   0.6,
	game.CuePauseExit:    0.6,
	game.CueNewHighScore: 0.8,
	game.CueSessionEnd:   0.8,
	game.CueMenuMove:     0.4,
	game.CueMenuChoose:   0.6,
}

// CueSound builds the streamer for cue, or nil if the cue has no sound.
func CueSound(cue game.Cue, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch cue {
	case game.CueMove:
		s = melody(rate, note{660, 30 * ms, WaveSquare})
	case game.CueRotate:
		s = melody(rate, note{880, 25 * ms, WaveSquare}, note{1175, 25 * ms, WaveSquare})
	case game.CueLock:
		s = melody(rate, note{196, 70 * ms, WaveTriangle})
	case game.CueLineClear:
		s = melody(rate,
			note{523.25, 60 * ms, WaveSquare},
			note{659.25, 60 * ms, WaveSquare},
			note{783.99, 60 * ms, WaveSquare},
			note{1046.5, 120 * ms, WaveSquare},
		)
	case game.CuePauseEnter:
		s = melody(rate, note{988, 60 * ms, WaveSine}, note{659, 90 * ms, WaveSine})
	case game.CuePauseExit:
		s = melody(rate, note{659, 60 * ms, WaveSine}, note{988, 90 * ms, WaveSine})
	case game.CueNewHighScore:
		s = beep.Mix(
			melody(rate,
				note{783.99, 90 * ms, WaveSquare},
				note{1046.5, 90 * ms, WaveSquare},
				note{1318.5, 200 * ms, WaveSquare},
			),
			withVolume(melody(rate, note{523.25, 380 * ms, WaveSine}), 0.5),
		)
	case game.CueSessionEnd:
		s = melody(rate,
			note{392, 150 * ms, WaveTriangle},
			note{330, 150 * ms, WaveTriangle},
			note{262, 150 * ms, WaveTriangle},
			note{196, 400 * ms, WaveTriangle},
		)
	case game.CueMenuMove:
		s = melody(rate, note{440, 35 * ms, WaveSquare})
	case game.CueMenuChoose:
		s = melody(rate, note{587, 50 * ms, WaveSquare}, note{880, 110 * ms, WaveSquare})
	default:
		return nil
	}

	return withVolume(s, cueVolumes[cue]*cfg.MasterVolume)
}
