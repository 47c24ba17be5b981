package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/game"
)

// autoplayer issues random moves and rotations and hard drops every
// dropEvery frames. It implements frame.InputSource.
type autoplayer struct {
	rng       *rand.Rand
	dropEvery int
	frame     int
}

func newAutoplayer(rng *rand.Rand, dropEvery int) *autoplayer {
	return &autoplayer{rng: rng, dropEvery: max(dropEvery, 1)}
}

var autoplayMoves = []game.Command{
	game.CommandMoveLeft,
	game.CommandMoveRight,
	game.CommandRotateCW,
	game.CommandRotateCCW,
}

func (a *autoplayer) Poll() []game.Command {
	a.frame++
	if a.frame%a.dropEvery == 0 {
		return []game.Command{game.CommandHardDropBegin}
	}
	return []game.Command{autoplayMoves[a.rng.IntN(len(autoplayMoves))]}
}
