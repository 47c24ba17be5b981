package frame

import "github.com/plus3/blockfall/game"

// System is one stage of a frame. Systems run in registration order and may
// keep their own state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// InputSource yields the commands the player issued since the last poll. Poll
// must not block.
type InputSource interface {
	Poll() []game.Command
}

// CueSink receives engine cues, typically to play a sound.
type CueSink interface {
	Play(cue game.Cue)
}

// InputSystem moves pending player input into the frame's command buffer.
type InputSystem struct {
	Source InputSource
}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	if s.Source == nil {
		return
	}
	for _, cmd := range s.Source.Poll() {
		frame.Commands.Push(cmd)
	}
}

// SimulationSystem applies the buffered commands and then advances the
// session by the frame's delta time.
type SimulationSystem struct {
	Steps int64
}

func (s *SimulationSystem) Execute(frame *UpdateFrame) {
	if frame.Session == nil {
		return
	}
	frame.Commands.Apply(frame.Session)
	s.Steps += int64(frame.Session.Advance(frame.DeltaTime))
}

// CueSystem forwards the session's cues to Sink.
type CueSystem struct {
	Sink CueSink
}

func (s *CueSystem) Execute(frame *UpdateFrame) {
	if frame.Session == nil {
		return
	}
	cues := frame.Session.DrainCues()
	if s.Sink == nil {
		return
	}
	for _, cue := range cues {
		s.Sink.Play(cue)
	}
}
