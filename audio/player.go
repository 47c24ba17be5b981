// Package audio turns engine cues into short synthesized sounds and loops a
// synthesized background theme.
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/game"
)

type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
}

func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
	}
}

// Player plays cues through the system speaker. A Player whose Init failed,
// or that was never initialized, accepts cues and stays silent.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	played      int

	theme *beep.Buffer
	music *beep.Ctrl
}

func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker. Errors are returned for logging; the player remains
// usable either way.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("[AUDIO] Speaker ready at %d Hz", p.cfg.SampleRate)
	return nil
}

// Play queues the sound for cue. It never blocks on audio output.
func (p *Player) Play(cue game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := CueSound(cue, p.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played++
}

// Played returns how many cues reached the speaker.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Close silences anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
	p.music = nil
}

// StartMusic loops the background theme until StopMusic. It does nothing if
// the theme is already playing or the speaker is not open.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.music != nil {
		return
	}
	if p.theme == nil {
		p.theme = Theme(beep.SampleRate(p.cfg.SampleRate))
	}
	p.music = &beep.Ctrl{Streamer: loopTheme(p.theme, p.cfg)}

	speaker.Lock()
	p.mixer.Add(p.music)
	speaker.Unlock()
}

// StopMusic silences the background theme. Cue sounds keep playing.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Streamer = nil
	speaker.Unlock()
	p.music = nil
}

// MusicPlaying reports whether the background theme is looping.
func (p *Player) MusicPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.music != nil
}
