package game

// Cue is a discrete notification for the audio layer.
type Cue int

const (
	CueMove Cue = iota
	CueRotate
	CueLock
	CueLineClear
	CuePauseEnter
	CuePauseExit
	CueNewHighScore
	CueSessionEnd
	CueMenuMove
	CueMenuChoose
)

var cueNames = [...]string{
	CueMove:         "Move",
	CueRotate:       "Rotate",
	CueLock:         "Lock",
	CueLineClear:    "LineClear",
	CuePauseEnter:   "PauseEnter",
	CuePauseExit:    "PauseExit",
	CueNewHighScore: "NewHighScore",
	CueSessionEnd:   "SessionEnd",
	CueMenuMove:     "MenuMove",
	CueMenuChoose:   "MenuChoose",
}

func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "Unknown"
	}
	return cueNames[c]
}
