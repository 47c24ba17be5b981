package frame

import "github.com/plus3/blockfall/game"

type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Session   *game.Session
}

func newUpdateFrame(dt float64, session *game.Session) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Session:   session,
	}
}
