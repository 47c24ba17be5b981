package main

import (
	"context"
	"flag"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/menu"
)

const frameInterval = 16 * time.Millisecond

type app struct {
	screen tcell.Screen
	events chan tcell.Event
	store  highscore.Store
	player *audio.Player
	rng    *rand.Rand
}

func main() {
	logPath := flag.String("log", "", "Write log output to this file while the screen is active.")
	seed := flag.Int64("seed", 0, "Seed for piece order (0 = from config or clock).")
	noAudio := flag.Bool("no-audio", false, "Disable sound effects.")
	flag.Parse()

	cfg := config.Load()
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *noAudio {
		cfg.Audio = false
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ctx := context.Background()
	store, err := highscore.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open high score store: %v", err)
	}
	defer store.Close()

	player := audio.NewPlayer(audio.Config{
		Enabled:      cfg.Audio,
		MasterVolume: cfg.Volume,
		SampleRate:   audio.DefaultConfig().SampleRate,
	})
	if err := player.Init(); err != nil {
		log.Printf("[AUDIO] Warning: %v, continuing without sound", err)
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	restore := redirectLog(*logPath)
	defer restore()

	a := &app{
		screen: screen,
		events: make(chan tcell.Event, 100),
		store:  store,
		player: player,
		rng:    rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)>>1|1)),
	}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			a.events <- ev
		}
	}()

	for {
		if a.runMenu() == menu.ActionExit {
			return
		}
		a.runSession(ctx)
	}
}

// redirectLog keeps log lines from scribbling over the screen.
func redirectLog(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}

func (a *app) runMenu() menu.Action {
	a.player.StartMusic()
	m := menu.New()
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-a.events:
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC {
				return menu.ActionExit
			}
			mk, ok := menuKey(key.Key())
			if !ok {
				continue
			}
			action := m.Press(mk)
			for _, c := range m.DrainCues() {
				a.player.Play(c)
			}
			if action != menu.ActionNone {
				return action
			}
		case <-ticker.C:
			drawMenu(a.screen, m, m.Frame())
		}
	}
}

// stopWhenOver cancels the frame loop once the session has ended.
type stopWhenOver struct {
	cancel context.CancelFunc
}

func (s *stopWhenOver) Execute(f *frame.UpdateFrame) {
	if f.Session != nil && f.Session.Over() {
		f.Commands.Defer(s.cancel)
	}
}

func (a *app) runSession(ctx context.Context) {
	session := game.NewSession(game.Options{
		Rand:      a.rng,
		HighScore: highscore.Baseline(ctx, a.store),
	})

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	scheduler := frame.NewScheduler(session)
	scheduler.Register(&frame.InputSystem{Source: newKeyInput(a.events)})
	scheduler.Register(&frame.SimulationSystem{})
	scheduler.Register(&frame.CueSystem{Sink: a.player})
	scheduler.Register(&renderSystem{screen: a.screen})
	scheduler.Register(&stopWhenOver{cancel: cancel})
	scheduler.Run(runCtx, frameInterval)
	a.player.StopMusic()

	highscore.Record(ctx, a.store, session.Score())

	if session.GameOver() {
		drawSnapshot(a.screen, session.Snapshot())
		a.screen.Show()
		a.waitForKey()
	}
}

// waitForKey discards input queued during play, then blocks until the next
// key press.
func (a *app) waitForKey() {
	for len(a.events) > 0 {
		<-a.events
	}
	for ev := range a.events {
		if _, ok := ev.(*tcell.EventKey); ok {
			return
		}
	}
}
