package game

// Command is a discrete player input applied to a Session.
type Command int

const (
	CommandMoveLeft Command = iota
	CommandMoveRight
	CommandRotateCW
	CommandRotateCCW
	CommandSoftDropBegin
	CommandSoftDropEnd
	CommandHardDropBegin
	CommandHardDropEnd
	CommandPauseToggle
	CommandQuit
)

var commandNames = [...]string{
	CommandMoveLeft:      "MoveLeft",
	CommandMoveRight:     "MoveRight",
	CommandRotateCW:      "RotateCW",
	CommandRotateCCW:     "RotateCCW",
	CommandSoftDropBegin: "SoftDropBegin",
	CommandSoftDropEnd:   "SoftDropEnd",
	CommandHardDropBegin: "HardDropBegin",
	CommandHardDropEnd:   "HardDropEnd",
	CommandPauseToggle:   "PauseToggle",
	CommandQuit:          "Quit",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "Unknown"
	}
	return commandNames[c]
}
