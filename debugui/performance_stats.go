package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/frame"
)

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
	filled  int
}

func NewFrameHistory(size int) *FrameHistory {
	if size <= 0 {
		size = 1
	}
	return &FrameHistory{samples: make([]float32, size)}
}

// Push records one frame time given in seconds.
func (h *FrameHistory) Push(seconds float32) {
	h.samples[h.index] = seconds * 1000.0
	h.index = (h.index + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// Average returns the mean of the recorded samples in milliseconds.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, s := range h.samples {
		sum += s
	}
	return sum / float32(h.filled)
}

func (h *FrameHistory) Samples() []float32 { return h.samples }

// PerformanceStats renders frame timing and per-system cost.
type PerformanceStats struct {
	History *FrameHistory
	timer   *FrameTimer
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		History: NewFrameHistory(historyFrames),
		timer:   NewFrameTimer(),
	}
}

func (ps *PerformanceStats) Render(stats *frame.SchedulerStats) {
	ps.History.Push(ps.timer.GetDeltaTime())

	imgui.SetNextWindowPosV(imgui.NewVec2(650, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.History.Average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000.0 / avg
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))
	imgui.Text(fmt.Sprintf("Frames: %d, Systems: %d, Runs: %d", stats.Frames, len(stats.Systems), stats.Runs()))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := ps.History.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Mean (ms)")
			imgui.TableSetupColumn("Max (ms)")
			imgui.TableSetupColumn("Last (ms)")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.Runs))
				imgui.TableNextColumn()
				imgui.Text(millis(sys.Mean))
				imgui.TableNextColumn()
				imgui.Text(millis(sys.Max))
				imgui.TableNextColumn()
				imgui.Text(millis(sys.Last))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d)/float64(time.Millisecond))
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
