package main

import (
	"context"
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/highscore"
)

const windowTitle = "Blockfall"

func main() {
	seed := flag.Int64("seed", 0, "Seed for piece order (0 = from config or clock).")
	noAudio := flag.Bool("no-audio", false, "Disable sound effects.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	backend := flag.String("highscore", "", "High score backend: file, redis or postgres.")
	flag.Parse()

	cfg := config.Load()
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *noAudio {
		cfg.Audio = false
	}
	if *debug {
		cfg.DebugUI = true
	}
	if *backend != "" {
		cfg.HighScoreBackend = *backend
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

	var imguiBackend *debugui_ebiten.ImguiBackend
	if cfg.DebugUI {
		imguiBackend = debugui_ebiten.New(windowTitle, game.DefaultWindowW, game.DefaultWindowH)
	} else {
		ebiten.SetWindowSize(game.DefaultWindowW, game.DefaultWindowH)
		ebiten.SetWindowTitle(windowTitle)
	}

	rng := rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)>>1|1))
	g := NewGame(ctx, store, player, rng, imguiBackend)

	log.Printf("Starting %s (seed %d, high scores: %s)", windowTitle, cfg.Seed, cfg.HighScoreBackend)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}
