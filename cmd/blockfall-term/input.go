package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/menu"
)

// softDropRelease is how long after the last Space repeat the soft drop is
// considered released. Terminals report key presses only.
const softDropRelease = 300 * time.Millisecond

// keyInput turns tcell key events into game commands. It implements
// frame.InputSource.
type keyInput struct {
	events <-chan tcell.Event
	now    func() time.Time

	softDrop     bool
	lastSoftDrop time.Time
}

func newKeyInput(events <-chan tcell.Event) *keyInput {
	return &keyInput{events: events, now: time.Now}
}

func (k *keyInput) Poll() []game.Command {
	var cmds []game.Command
	for {
		select {
		case ev := <-k.events:
			cmds = k.handle(ev, cmds)
		default:
			return k.releaseSoftDrop(cmds)
		}
	}
}

func (k *keyInput) handle(ev tcell.Event, cmds []game.Command) []game.Command {
	if key, ok := ev.(*tcell.EventKey); ok {
		return k.press(key.Key(), key.Rune(), cmds)
	}
	return cmds
}

func (k *keyInput) press(key tcell.Key, r rune, cmds []game.Command) []game.Command {
	switch key {
	case tcell.KeyLeft:
		cmds = append(cmds, game.CommandMoveLeft)
	case tcell.KeyRight:
		cmds = append(cmds, game.CommandMoveRight)
	case tcell.KeyUp:
		cmds = append(cmds, game.CommandRotateCW)
	case tcell.KeyDown:
		cmds = append(cmds, game.CommandRotateCCW)
	case tcell.KeyEnter:
		cmds = append(cmds, game.CommandHardDropBegin)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		cmds = append(cmds, game.CommandQuit)
	case tcell.KeyRune:
		switch r {
		case ' ':
			k.lastSoftDrop = k.now()
			if !k.softDrop {
				k.softDrop = true
				cmds = append(cmds, game.CommandSoftDropBegin)
			}
		case 'p', 'P':
			cmds = append(cmds, game.CommandPauseToggle)
		}
	}
	return cmds
}

func (k *keyInput) releaseSoftDrop(cmds []game.Command) []game.Command {
	if k.softDrop && k.now().Sub(k.lastSoftDrop) > softDropRelease {
		k.softDrop = false
		cmds = append(cmds, game.CommandSoftDropEnd)
	}
	return cmds
}

// menuKey maps a terminal key to a menu key.
func menuKey(key tcell.Key) (menu.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return menu.KeyUp, true
	case tcell.KeyDown:
		return menu.KeyDown, true
	case tcell.KeyEnter:
		return menu.KeyEnter, true
	}
	return 0, false
}
