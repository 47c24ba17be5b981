package game

import "math/rand/v2"

// Randomizer deals piece kinds from a shuffled bag. Every run of NumKinds
// draws that starts at a reshuffle contains each kind exactly once.
type Randomizer struct {
	rng    *rand.Rand
	bag    []Kind
	cursor int
}

// NewRandomizer creates a bag randomizer. A nil rng is replaced by a randomly
// seeded source.
func NewRandomizer(rng *rand.Rand) *Randomizer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	r := &Randomizer{
		rng: rng,
		bag: make([]Kind, NumKinds),
	}
	for i := range r.bag {
		r.bag[i] = Kind(i)
	}
	r.shuffle()
	return r
}

// Draw returns the next kind, reshuffling first when the bag is exhausted.
func (r *Randomizer) Draw() Kind {
	if r.cursor == len(r.bag) {
		r.cursor = 0
		r.shuffle()
	}

	kind := r.bag[r.cursor]
	r.cursor++
	return kind
}

// Reset starts a fresh bag.
func (r *Randomizer) Reset() {
	r.cursor = 0
	r.shuffle()
}

func (r *Randomizer) shuffle() {
	r.rng.Shuffle(len(r.bag), func(i, j int) {
		r.bag[i], r.bag[j] = r.bag[j], r.bag[i]
	})
}
