package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/menu"
)

// Held arrows repeat like a typematic keyboard: the first repeat comes
// repeatDelay ticks after the press, then one every repeatInterval ticks.
const (
	repeatDelay    = 6
	repeatInterval = 4
)

type binding struct {
	key        ebiten.Key
	press      game.Command
	release    game.Command
	hasRelease bool
	repeats    bool
}

var bindings = []binding{
	{key: ebiten.KeyArrowLeft, press: game.CommandMoveLeft, repeats: true},
	{key: ebiten.KeyArrowRight, press: game.CommandMoveRight, repeats: true},
	{key: ebiten.KeyArrowUp, press: game.CommandRotateCW, repeats: true},
	{key: ebiten.KeyArrowDown, press: game.CommandRotateCCW, repeats: true},
	{key: ebiten.KeySpace, press: game.CommandSoftDropBegin, release: game.CommandSoftDropEnd, hasRelease: true},
	{key: ebiten.KeyEnter, press: game.CommandHardDropBegin, release: game.CommandHardDropEnd, hasRelease: true},
	{key: ebiten.KeyP, press: game.CommandPauseToggle},
	{key: ebiten.KeyEscape, press: game.CommandQuit},
}

// fires reports whether a key held for ticks ticks triggers this tick. A key
// pressed this tick reports 1.
func (b binding) fires(ticks int) bool {
	if ticks == 1 {
		return true
	}
	return b.repeats && ticks > repeatDelay && (ticks-1-repeatDelay)%repeatInterval == 0
}

// commandsFor collects the commands for this tick, in binding order. held
// gives how many ticks a key has been down (0 when up).
func commandsFor(held func(ebiten.Key) int, released func(ebiten.Key) bool) []game.Command {
	var cmds []game.Command
	for _, b := range bindings {
		if b.fires(held(b.key)) {
			cmds = append(cmds, b.press)
		}
		if b.hasRelease && released(b.key) {
			cmds = append(cmds, b.release)
		}
	}
	return cmds
}

// keyboard implements frame.InputSource over ebiten's key state. Keys are
// ignored while the debug overlay has keyboard focus.
type keyboard struct {
	capture *debugui.InputState
}

func (k *keyboard) Poll() []game.Command {
	if k.capture != nil && k.capture.WantCaptureKeyboard {
		return nil
	}
	return commandsFor(inpututil.KeyPressDuration, inpututil.IsKeyJustReleased)
}

func menuKeysFor(pressed func(ebiten.Key) bool) []menu.Key {
	var keys []menu.Key
	if pressed(ebiten.KeyArrowUp) {
		keys = append(keys, menu.KeyUp)
	}
	if pressed(ebiten.KeyArrowDown) {
		keys = append(keys, menu.KeyDown)
	}
	if pressed(ebiten.KeyEnter) {
		keys = append(keys, menu.KeyEnter)
	}
	return keys
}
