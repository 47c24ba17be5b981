// Package debugui provides Dear ImGui panels for inspecting a running game:
// frame timing, per-system cost, and the live session.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/frame"
)

// ImguiItem holds a Dear ImGui render function run once per frame.
type ImguiItem struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Front ends check it before forwarding keys to the game.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function to the end of the frame
// and refreshes InputState.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState InputState
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(f *frame.UpdateFrame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		if item.Render != nil {
			f.Commands.Defer(item.Render)
		}
	}
}

// Overlay bundles the standard panels for one scheduler.
type Overlay struct {
	Performance *PerformanceStats
	Inspector   *SessionInspector

	scheduler *frame.Scheduler
}

func NewOverlay(scheduler *frame.Scheduler) *Overlay {
	return &Overlay{
		Performance: NewPerformanceStats(120),
		Inspector:   NewSessionInspector(),
		scheduler:   scheduler,
	}
}

// System returns an ImguiSystem rendering the overlay's panels.
func (o *Overlay) System() *ImguiSystem {
	return &ImguiSystem{
		Items: []ImguiItem{
			{Render: func() { o.Performance.Render(o.scheduler.Stats()) }},
			{Render: func() { o.Inspector.Render(o.scheduler.Session()) }},
		},
	}
}
