// Package highscore persists finished session scores and derives the best
// score to beat.
package highscore

import (
	"context"
	"errors"
	"log"
)

// ErrMalformed is returned when stored data cannot be parsed as scores.
var ErrMalformed = errors.New("highscore: malformed record")

// Store keeps every finished session's score.
type Store interface {
	Append(ctx context.Context, score int) error
	Scores(ctx context.Context) ([]int, error)
	Close() error
}

// Baseline returns the best recorded score. A store that is missing or cannot
// be read yields 0; the problem is logged, never returned.
func Baseline(ctx context.Context, store Store) int {
	if store == nil {
		return 0
	}
	scores, err := store.Scores(ctx)
	if err != nil {
		log.Printf("[HIGHSCORE] Could not read scores, starting from 0: %v", err)
		return 0
	}
	best := 0
	for _, s := range scores {
		best = max(best, s)
	}
	return best
}

// Record appends score and logs instead of failing; a lost score must not end
// the program.
func Record(ctx context.Context, store Store, score int) {
	if store == nil {
		return
	}
	if err := store.Append(ctx, score); err != nil {
		log.Printf("[HIGHSCORE] Could not record score %d: %v", score, err)
	}
}
