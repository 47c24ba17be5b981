package frame

import "github.com/plus3/blockfall/game"

// Commands buffers player commands and deferred functions during a frame.
// Nothing touches the session until Apply or Flush is called.
type Commands struct {
	commands []game.Command
	defers   []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Push queues a player command.
func (c *Commands) Push(cmd game.Command) {
	c.commands = append(c.commands, cmd)
}

// Defer queues a function to run when the buffer is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Len returns the number of queued player commands.
func (c *Commands) Len() int {
	return len(c.commands)
}

// Apply sends the queued player commands to session in order and empties the
// command queue. Deferred functions stay queued. It returns how many commands
// the session accepted.
func (c *Commands) Apply(session *game.Session) int {
	accepted := 0
	for _, cmd := range c.commands {
		if session != nil && session.Apply(cmd) {
			accepted++
		}
	}
	c.commands = c.commands[:0]
	return accepted
}

// Flush applies any remaining commands to session, runs the deferred
// functions and resets the buffer.
func (c *Commands) Flush(session *game.Session) {
	c.Apply(session)

	for _, df := range c.defers {
		df.fn()
	}
	c.defers = c.defers[:0]
}
