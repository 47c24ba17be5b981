package game

import "github.com/kamstrup/intmap"

// Stats counts what happened during a session.
type Stats struct {
	Pieces int
	Locks  int

	// clears maps rows-cleared-per-lock to the number of locks that cleared that many.
	clears     *intmap.Map[int, int]
	maxCleared int
}

func newStats() Stats {
	return Stats{clears: intmap.New[int, int](8)}
}

func (s *Stats) recordLock(cleared int) {
	s.Locks++
	n, _ := s.clears.Get(cleared)
	s.clears.Put(cleared, n+1)
	s.maxCleared = max(s.maxCleared, cleared)
}

// clone copies the histogram so the result no longer tracks the session.
func (s Stats) clone() Stats {
	out := s
	out.clears = intmap.New[int, int](8)
	if s.clears == nil {
		return out
	}
	for n := 0; n <= s.maxCleared; n++ {
		if v, ok := s.clears.Get(n); ok {
			out.clears.Put(n, v)
		}
	}
	return out
}

// LocksClearing returns how many locks cleared exactly n rows.
func (s Stats) LocksClearing(n int) int {
	if s.clears == nil {
		return 0
	}
	v, _ := s.clears.Get(n)
	return v
}
