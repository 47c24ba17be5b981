package game

import "fmt"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Geometry Geometry
	Board    [][]int

	Active      []Point
	ActiveColor int
	Ghost       []Point
	Next        []Point
	NextColor   int

	Score     int
	Lines     int
	Level     int
	HighScore int
	Elapsed   float64

	Paused   bool
	GameOver bool
	Quit     bool
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Geometry:    s.opts.Geometry,
		Board:       s.board.Cells(),
		Active:      s.current.Cells(),
		ActiveColor: s.current.ColorIndex(),
		Ghost:       s.board.ProjectLanding(s.current.Cells()),
		Next:        s.next.Cells(),
		NextColor:   s.next.ColorIndex(),
		Score:       s.board.Score(),
		Lines:       s.board.Lines(),
		Level:       s.level,
		HighScore:   s.highScore,
		Elapsed:     s.elapsed,
		Paused:      s.paused,
		GameOver:    s.board.IsGameOver(),
		Quit:        s.quit,
	}
}

// FormatElapsed renders seconds as "TIME mm:ss".
func FormatElapsed(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("TIME %02d:%02d", total/60, total%60)
}
