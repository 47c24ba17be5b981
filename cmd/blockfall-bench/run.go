package main

import (
	"context"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/game"
)

type benchConfig struct {
	Duration    time.Duration
	MaxSessions int
	Seed        uint64
	DropEvery   int
	FrameTime   float64
	BucketSize  int
}

// sessionRecorder starts a fresh session whenever the current one ends and
// records the finished one.
type sessionRecorder struct {
	report    *Report
	scores    *intmap.Map[int, int]
	rng       *rand.Rand
	cfg       benchConfig
	scheduler *frame.Scheduler
	done      bool
}

func (r *sessionRecorder) newSession() *game.Session {
	return game.NewSession(game.Options{
		Rand: rand.New(rand.NewPCG(r.rng.Uint64(), r.rng.Uint64())),
	})
}

func (r *sessionRecorder) Execute(f *frame.UpdateFrame) {
	s := f.Session
	if s == nil || !s.Over() {
		return
	}

	stats := s.Stats()
	r.report.Sessions++
	r.report.Pieces += int64(stats.Pieces)
	r.report.Lines += int64(s.Board().Lines())
	r.report.BestScore = max(r.report.BestScore, s.Score())
	for n := 1; n <= 4; n++ {
		r.report.Clears[n-1] += int64(stats.LocksClearing(n))
	}

	bucket := s.Score() / r.cfg.BucketSize * r.cfg.BucketSize
	n, _ := r.scores.Get(bucket)
	r.scores.Put(bucket, n+1)

	if r.cfg.MaxSessions > 0 && r.report.Sessions >= r.cfg.MaxSessions {
		r.done = true
		return
	}
	next := r.newSession()
	f.Commands.Defer(func() { r.scheduler.SetSession(next) })
}

func run(ctx context.Context, cfg benchConfig) *Report {
	if cfg.BucketSize <= 0 {
		cfg.BucketSize = 500
	}
	if cfg.FrameTime <= 0 {
		cfg.FrameTime = 1.0 / 60.0
	}

	report := &Report{
		Duration:   cfg.Duration,
		Seed:       cfg.Seed,
		DropEvery:  cfg.DropEvery,
		BucketSize: cfg.BucketSize,
		FrameTime:  FrameTimes{Samples: make([]time.Duration, 0)},
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	recorder := &sessionRecorder{
		report: report,
		scores: intmap.New[int, int](16),
		rng:    rng,
		cfg:    cfg,
	}

	scheduler := frame.NewScheduler(recorder.newSession())
	recorder.scheduler = scheduler
	sim := &frame.SimulationSystem{}
	scheduler.Register(&frame.InputSystem{Source: newAutoplayer(rng, cfg.DropEvery)})
	scheduler.Register(sim)
	scheduler.Register(&frame.CueSystem{})
	scheduler.Register(recorder)

	runtime.ReadMemStats(&report.MemStatsStart)
	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	startTime := time.Now()
Loop:
	for !recorder.done {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(cfg.FrameTime)
			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Steps = sim.Steps
	report.FrameTime.Summarize()
	report.Systems = scheduler.Stats().Systems
	report.Distribution = distribution(recorder.scores, cfg.BucketSize, report.BestScore)
	runtime.ReadMemStats(&report.MemStatsEnd)
	return report
}
