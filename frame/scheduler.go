package frame

import (
	"context"
	"math"
	"reflect"
	"time"

	"github.com/plus3/blockfall/game"
)

// SchedulerStats is a point-in-time copy of the scheduler's timings.
type SchedulerStats struct {
	Frames  int64
	Systems []SystemStats
}

// Runs totals system executions across every frame.
func (s *SchedulerStats) Runs() int64 {
	var n int64
	for _, sys := range s.Systems {
		n += sys.Runs
	}
	return n
}

// SystemStats is the execution history of one registered system.
type SystemStats struct {
	Name  string
	Runs  int64
	Min   time.Duration
	Max   time.Duration
	Mean  time.Duration
	Last  time.Duration
	Total time.Duration
}

type timing struct {
	runs           int64
	min, max, last time.Duration
	total          time.Duration
}

func (t *timing) record(d time.Duration) {
	if t.runs == 0 || d < t.min {
		t.min = d
	}
	t.max = max(t.max, d)
	t.last = d
	t.total += d
	t.runs++
}

type entry struct {
	name   string
	system System
	timing timing
}

// Scheduler runs systems in registration order against one session per
// frame, then flushes the frame's command buffer.
type Scheduler struct {
	session *game.Session
	entries []*entry
	frames  int64
}

// NewScheduler creates a scheduler driving session. The session may be nil
// until SetSession is called, e.g. while a menu is showing.
func NewScheduler(session *game.Session) *Scheduler {
	return &Scheduler{session: session}
}

// Register appends a system, naming it after its type.
func (s *Scheduler) Register(system System) {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	s.RegisterNamed(t.Name(), system)
}

// RegisterNamed appends a system under an explicit name, for when two
// systems share a type.
func (s *Scheduler) RegisterNamed(name string, system System) {
	s.entries = append(s.entries, &entry{name: name, system: system})
}

// SetSession swaps the session the systems operate on.
func (s *Scheduler) SetSession(session *game.Session) {
	s.session = session
}

func (s *Scheduler) Session() *game.Session {
	return s.session
}

// Once runs one frame of dt seconds.
func (s *Scheduler) Once(dt float64) {
	f := newUpdateFrame(dt, s.session)
	for _, e := range s.entries {
		start := time.Now()
		e.system.Execute(f)
		e.timing.record(time.Since(start))
	}
	f.Commands.Flush(f.Session)
	s.frames++
}

// Run calls Once on every tick of interval, with the measured time between
// ticks, until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			s.Once(dt)
		}
	}
}

func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		Frames:  s.frames,
		Systems: make([]SystemStats, len(s.entries)),
	}
	for i, e := range s.entries {
		t := e.timing
		sys := SystemStats{
			Name:  e.name,
			Runs:  t.runs,
			Min:   t.min,
			Max:   t.max,
			Last:  t.last,
			Total: t.total,
		}
		if t.runs == 0 {
			sys.Min = time.Duration(math.MaxInt64)
		} else {
			sys.Mean = t.total / time.Duration(t.runs)
		}
		stats.Systems[i] = sys
	}
	return stats
}
