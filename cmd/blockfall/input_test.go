package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/menu"
	"github.com/stretchr/testify/assert"
)

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, want := range keys {
			if k == want {
				return true
			}
		}
		return false
	}
}

// heldFor reports the given keys as down for ticks ticks and everything else
// as up.
func heldFor(ticks int, keys ...ebiten.Key) func(ebiten.Key) int {
	pressed := keySet(keys...)
	return func(k ebiten.Key) int {
		if pressed(k) {
			return ticks
		}
		return 0
	}
}

func TestCommandsFor(t *testing.T) {
	t.Run("presses follow binding order", func(t *testing.T) {
		cmds := commandsFor(heldFor(1, ebiten.KeyEscape, ebiten.KeyArrowLeft, ebiten.KeyArrowUp), keySet())
		assert.Equal(t, []game.Command{game.CommandMoveLeft, game.CommandRotateCW, game.CommandQuit}, cmds)
	})

	t.Run("held keys report release", func(t *testing.T) {
		cmds := commandsFor(heldFor(0), keySet(ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyArrowLeft))
		assert.Equal(t, []game.Command{game.CommandSoftDropEnd, game.CommandHardDropEnd}, cmds)
	})

	t.Run("nothing pressed", func(t *testing.T) {
		assert.Empty(t, commandsFor(heldFor(0), keySet()))
	})
}

func TestHeldArrowRepeats(t *testing.T) {
	var firedAt []int
	for tick := 1; tick <= 20; tick++ {
		if len(commandsFor(heldFor(tick, ebiten.KeyArrowRight), keySet())) > 0 {
			firedAt = append(firedAt, tick)
		}
	}
	assert.Equal(t, []int{1, 1 + repeatDelay, 1 + repeatDelay + repeatInterval, 1 + repeatDelay + 2*repeatInterval}, firedAt)

	t.Run("rotation repeats too", func(t *testing.T) {
		cmds := commandsFor(heldFor(1+repeatDelay, ebiten.KeyArrowUp), keySet())
		assert.Equal(t, []game.Command{game.CommandRotateCW}, cmds)
	})

	t.Run("pause and drops do not repeat", func(t *testing.T) {
		for _, k := range []ebiten.Key{ebiten.KeyP, ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyEscape} {
			assert.Empty(t, commandsFor(heldFor(1+repeatDelay, k), keySet()), "key %v", k)
		}
	})
}

func TestKeyboardRespectsCapture(t *testing.T) {
	kb := &keyboard{capture: &debugui.InputState{WantCaptureKeyboard: true}}
	assert.Nil(t, kb.Poll())
}

func TestMenuKeysFor(t *testing.T) {
	assert.Equal(t, []menu.Key{menu.KeyDown, menu.KeyEnter}, menuKeysFor(keySet(ebiten.KeyEnter, ebiten.KeyArrowDown)))
	assert.Empty(t, menuKeysFor(keySet(ebiten.KeyP)))
}

func TestBlockColor(t *testing.T) {
	assert.Equal(t, kindColors[game.KindT], blockColor(int(game.KindT)))
	assert.Equal(t, uint8(255), blockColor(game.Empty).R)
	assert.Equal(t, uint8(255), blockColor(99).B)
}
