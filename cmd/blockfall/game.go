package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/menu"
)

type state int

const (
	stateMenu state = iota
	statePlaying
	stateGameOver
)

// Game is the ebiten.Game for the window front end. It switches between the
// menu and a running session.
type Game struct {
	ctx    context.Context
	store  highscore.Store
	player *audio.Player
	rng    *rand.Rand

	state     state
	menu      *menu.Menu
	cursor    bool
	scheduler *frame.Scheduler
	last      time.Time

	imguiBackend *debugui_ebiten.ImguiBackend
}

func NewGame(ctx context.Context, store highscore.Store, player *audio.Player, rng *rand.Rand, backend *debugui_ebiten.ImguiBackend) *Game {
	g := &Game{
		ctx:          ctx,
		store:        store,
		player:       player,
		rng:          rng,
		menu:         menu.New(),
		scheduler:    frame.NewScheduler(nil),
		imguiBackend: backend,
	}

	kb := &keyboard{}
	if backend != nil {
		overlay := debugui.NewOverlay(g.scheduler)
		imguiSystem := overlay.System()
		kb.capture = &imguiSystem.InputState
		g.scheduler.Register(imguiSystem)
		g.scheduler.RegisterNamed("InspectorInput", &frame.InputSystem{Source: overlay.Inspector})
	}
	g.scheduler.RegisterNamed("KeyboardInput", &frame.InputSystem{Source: kb})
	g.scheduler.Register(&frame.SimulationSystem{})
	g.scheduler.Register(&frame.CueSystem{Sink: player})

	player.StartMusic()
	return g
}

func (g *Game) startSession() {
	session := game.NewSession(game.Options{
		Rand:      g.rng,
		HighScore: highscore.Baseline(g.ctx, g.store),
	})
	g.scheduler.SetSession(session)
	g.last = time.Now()
	g.state = statePlaying
}

func (g *Game) Update() error {
	if g.imguiBackend != nil {
		g.imguiBackend.BeginFrame()
		defer g.imguiBackend.EndFrame()
	}

	switch g.state {
	case stateMenu:
		return g.updateMenu()
	case statePlaying:
		g.updatePlaying()
	case stateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.toMenu()
		}
	}
	return nil
}

func (g *Game) updateMenu() error {
	g.cursor = g.menu.Frame()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	action := menu.ActionNone
	for _, k := range menuKeysFor(inpututil.IsKeyJustPressed) {
		if a := g.menu.Press(k); a != menu.ActionNone {
			action = a
		}
	}
	for _, c := range g.menu.DrainCues() {
		g.player.Play(c)
	}

	switch action {
	case menu.ActionStart:
		g.startSession()
	case menu.ActionExit:
		return ebiten.Termination
	}
	return nil
}

func (g *Game) updatePlaying() {
	now := time.Now()
	dt := now.Sub(g.last).Seconds()
	g.last = now

	g.scheduler.Once(dt)

	session := g.scheduler.Session()
	if !session.Over() {
		return
	}
	g.player.StopMusic()
	highscore.Record(g.ctx, g.store, session.Score())
	if session.Quit() {
		g.toMenu()
		return
	}
	g.state = stateGameOver
}

func (g *Game) toMenu() {
	g.menu = menu.New()
	g.state = stateMenu
	g.player.StartMusic()
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.state == stateMenu {
		drawMenu(screen, g.menu, g.cursor)
	} else if s := g.scheduler.Session(); s != nil {
		drawSnapshot(screen, s.Snapshot())
	}

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
	}
	return game.DefaultWindowW, game.DefaultWindowH
}
