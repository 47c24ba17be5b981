package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"
	"text/template"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/frame"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Seed       uint64
	DropEvery  int
	BucketSize int

	// Results
	TotalUpdates  int64
	Steps         int64
	TotalTime     time.Duration
	FrameTime     FrameTimes
	Sessions      int
	Pieces        int64
	Lines         int64
	BestScore     int
	Clears        [4]int64
	Distribution  []Bucket
	Systems       []frame.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// Bucket counts sessions whose score fell in [Low, Low+size).
type Bucket struct {
	Low      int
	Sessions int
}

// FrameTimes summarizes how long each scheduler frame took.
type FrameTimes struct {
	Samples []time.Duration

	Min    time.Duration
	Median time.Duration
	P99    time.Duration
	Max    time.Duration
	Mean   time.Duration
}

// Summarize fills in the order statistics from Samples.
func (f *FrameTimes) Summarize() {
	n := len(f.Samples)
	if n == 0 {
		return
	}
	sorted := slices.Clone(f.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	f.Min = sorted[0]
	f.Max = sorted[n-1]
	f.Median = sorted[n/2]
	f.P99 = sorted[min(n-1, n*99/100)]
	f.Mean = total / time.Duration(n)
}

func distribution(scores *intmap.Map[int, int], bucketSize, best int) []Bucket {
	var out []Bucket
	for low := 0; low <= best; low += bucketSize {
		if n, ok := scores.Get(low); ok {
			out = append(out, Bucket{Low: low, Sessions: n})
		}
	}
	return out
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Autoplay Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Hard Drop Every:** {{.DropEvery}} frames

## Gameplay
- **Sessions Finished:** {{.Sessions}}
- **Pieces Spawned:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}} (singles {{index .Clears 0}}, doubles {{index .Clears 1}}, triples {{index .Clears 2}}, quads {{index .Clears 3}})
- **Best Score:** {{.BestScore}}
{{- if .Distribution}}

## Score Distribution
{{range .Distribution}}- {{.Low}}-{{add .Low $.BucketSize -1}}: {{bar .Sessions}} {{.Sessions}}
{{end}}{{end}}
## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Simulation Steps:** {{.Steps}}
- **Total Test Time:** {{.TotalTime}}
- **Frame Time:** mean {{.FrameTime.Mean}}, median {{.FrameTime.Median}}, p99 {{.FrameTime.P99}}
  (min {{.FrameTime.Min}}, max {{.FrameTime.Max}})

## Systems
{{range .Systems}}- {{.Name}}: {{.Runs}} runs, mean {{.Mean}}, max {{.Max}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"add": func(a, b, c int) int {
			return a + b + c
		},
		"bar": func(n int) string {
			return strings.Repeat("#", min(n, 40))
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
