package frame_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStep = 1.0 / 64.0

func newTestSession() *game.Session {
	return game.NewSession(game.Options{
		Rand:      rand.New(rand.NewPCG(3, 4)),
		FixedStep: testStep,
	})
}

type recordingSystem struct {
	name  string
	log   *[]string
	count int
	sleep time.Duration
}

func (s *recordingSystem) Execute(f *frame.UpdateFrame) {
	s.count++
	if s.log != nil {
		*s.log = append(*s.log, s.name)
	}
	if s.sleep > 0 {
		time.Sleep(s.sleep)
	}
}

type scriptedInput struct {
	pending []game.Command
}

func (i *scriptedInput) Poll() []game.Command {
	out := i.pending
	i.pending = nil
	return out
}

type cueRecorder struct {
	cues []game.Cue
}

func (r *cueRecorder) Play(cue game.Cue) {
	r.cues = append(r.cues, cue)
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		scheduler := frame.NewScheduler(nil)
		var log []string
		a := &recordingSystem{name: "a", log: &log}
		b := &recordingSystem{name: "b", log: &log}
		scheduler.Register(a)
		scheduler.Register(b)

		scheduler.Once(testStep)
		scheduler.Once(testStep)

		assert.Equal(t, []string{"a", "b", "a", "b"}, log)
		assert.Equal(t, 2, a.count)
		assert.Equal(t, 2, b.count)
	})

	t.Run("input reaches the session in the same frame", func(t *testing.T) {
		session := newTestSession()
		scheduler := frame.NewScheduler(session)
		input := &scriptedInput{}
		sim := &frame.SimulationSystem{}
		scheduler.Register(&frame.InputSystem{Source: input})
		scheduler.Register(sim)

		input.pending = []game.Command{game.CommandPauseToggle}
		scheduler.Once(testStep)

		assert.True(t, session.Paused())
		assert.Zero(t, sim.Steps)

		input.pending = []game.Command{game.CommandPauseToggle}
		scheduler.Once(1)
		assert.False(t, session.Paused())
		assert.Equal(t, int64(1), sim.Steps)
	})

	t.Run("cues are forwarded to the sink", func(t *testing.T) {
		session := newTestSession()
		scheduler := frame.NewScheduler(session)
		input := &scriptedInput{pending: []game.Command{game.CommandQuit}}
		sink := &cueRecorder{}
		scheduler.Register(&frame.InputSystem{Source: input})
		scheduler.Register(&frame.SimulationSystem{})
		scheduler.Register(&frame.CueSystem{Sink: sink})

		scheduler.Once(testStep)

		assert.Equal(t, []game.Cue{game.CueSessionEnd}, sink.cues)
		assert.Empty(t, session.DrainCues())
	})

	t.Run("commands pushed after simulation apply on flush", func(t *testing.T) {
		session := newTestSession()
		scheduler := frame.NewScheduler(session)
		scheduler.Register(&frame.SimulationSystem{})
		scheduler.Register(&pushSystem{cmd: game.CommandPauseToggle})

		scheduler.Once(testStep)
		assert.True(t, session.Paused())
	})

	t.Run("set session swaps the target", func(t *testing.T) {
		first := newTestSession()
		second := newTestSession()
		scheduler := frame.NewScheduler(first)
		sim := &frame.SimulationSystem{}
		scheduler.Register(sim)

		scheduler.Once(testStep)
		scheduler.SetSession(second)
		scheduler.Once(2 * testStep)

		assert.Same(t, second, scheduler.Session())
		assert.Equal(t, testStep, first.Elapsed())
		assert.Equal(t, 2*testStep, second.Elapsed())
		assert.Equal(t, int64(3), sim.Steps)
	})

	t.Run("nil session is tolerated", func(t *testing.T) {
		scheduler := frame.NewScheduler(nil)
		scheduler.Register(&frame.InputSystem{Source: &scriptedInput{pending: []game.Command{game.CommandQuit}}})
		scheduler.Register(&frame.SimulationSystem{})
		scheduler.Register(&frame.CueSystem{Sink: &cueRecorder{}})

		assert.NotPanics(t, func() { scheduler.Once(testStep) })
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := frame.NewScheduler(nil)
		sys := &recordingSystem{}
		scheduler.Register(sys)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.Positive(t, sys.count)
	})
}

type pushSystem struct {
	cmd game.Command
}

func (s *pushSystem) Execute(f *frame.UpdateFrame) {
	f.Commands.Push(s.cmd)
}

func TestSchedulerStats(t *testing.T) {
	scheduler := frame.NewScheduler(nil)

	stats := scheduler.Stats()
	assert.Empty(t, stats.Systems)
	assert.Equal(t, int64(0), stats.Frames)
	assert.Equal(t, int64(0), stats.Runs())

	sys1 := &recordingSystem{sleep: 1 * time.Millisecond}
	sys2 := &recordingSystem{sleep: 2 * time.Millisecond}
	scheduler.Register(sys1)
	scheduler.RegisterNamed("slow", sys2)

	t.Run("before any frame", func(t *testing.T) {
		stats := scheduler.Stats()
		require.Len(t, stats.Systems, 2)
		assert.Zero(t, stats.Systems[0].Mean)
	})

	scheduler.Once(0.016)
	scheduler.Once(0.016)
	scheduler.Once(0.016)

	stats = scheduler.Stats()
	assert.Equal(t, int64(3), stats.Frames)
	assert.Equal(t, int64(6), stats.Runs())
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "recordingSystem", stats.Systems[0].Name)
	assert.Equal(t, "slow", stats.Systems[1].Name)

	for _, sys := range stats.Systems {
		assert.Equal(t, int64(3), sys.Runs)
		assert.NotZero(t, sys.Min)
		assert.NotZero(t, sys.Last)
		assert.LessOrEqual(t, sys.Min, sys.Mean)
		assert.LessOrEqual(t, sys.Mean, sys.Max)
		assert.GreaterOrEqual(t, sys.Total, 3*sys.Min)
	}
}
