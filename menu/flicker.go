package menu

const (
	DefaultFlickerTimeout = 20
	flickerHoldFrames     = 10
)

// Flicker blinks a sprite on alternate frames. Every timeout frames it holds
// the sprite visible for ten frames.
type Flicker struct {
	timeout   int
	odd       bool
	sinceHold int
	hold      int
}

func NewFlicker(timeout int) Flicker {
	if timeout <= 0 {
		timeout = DefaultFlickerTimeout
	}
	return Flicker{timeout: timeout}
}

// Next advances one frame and reports whether the sprite is visible.
func (f *Flicker) Next() bool {
	f.odd = !f.odd
	f.sinceHold++
	if f.sinceHold >= f.timeout {
		f.hold = flickerHoldFrames
		f.sinceHold = 0
	}

	if f.hold > 0 {
		f.hold--
		return true
	}
	return !f.odd
}
