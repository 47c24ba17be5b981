package game

import "math/rand/v2"

// Options configures a Session. Zero fields take the value from DefaultOptions.
type Options struct {
	Geometry Geometry
	Rand     *rand.Rand

	// FixedStep is the simulation step in seconds.
	FixedStep float64
	// InitialFallInterval is the seconds between descents at level 1.
	InitialFallInterval float64
	// SoftDropInterval replaces the fall interval while soft drop is held.
	SoftDropInterval float64
	// DifficultyFactor multiplies the fall interval on each level up.
	DifficultyFactor float64
	// DifficultyScoreStep is the score needed per level.
	DifficultyScoreStep int
	// MaxFrameTime caps the real time fed into one Advance call.
	MaxFrameTime float64

	// HighScore is the baseline the session compares its score against.
	HighScore int
	// NextAnchor is where the queued piece is shown.
	NextAnchor Point
}

// DefaultOptions returns the classic 60Hz, 10x20 configuration.
func DefaultOptions() Options {
	return Options{
		Geometry:            DefaultGeometry(),
		FixedStep:           1.0 / 60.0,
		InitialFallInterval: 1.0,
		SoftDropInterval:    0.03,
		DifficultyFactor:    0.85,
		DifficultyScoreStep: 2000,
		MaxFrameTime:        0.25,
		NextAnchor:          Point{X: 442, Y: 430},
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Geometry == (Geometry{}) {
		o.Geometry = def.Geometry
	}
	if o.FixedStep <= 0 {
		o.FixedStep = def.FixedStep
	}
	if o.InitialFallInterval <= 0 {
		o.InitialFallInterval = def.InitialFallInterval
	}
	if o.SoftDropInterval <= 0 {
		o.SoftDropInterval = def.SoftDropInterval
	}
	if o.DifficultyFactor <= 0 || o.DifficultyFactor >= 1 {
		o.DifficultyFactor = def.DifficultyFactor
	}
	if o.DifficultyScoreStep <= 0 {
		o.DifficultyScoreStep = def.DifficultyScoreStep
	}
	if o.MaxFrameTime <= 0 {
		o.MaxFrameTime = def.MaxFrameTime
	}
	if o.NextAnchor == (Point{}) {
		o.NextAnchor = def.NextAnchor
	}
	return o
}

// Session runs one game from the first spawn to game over or quit. It is not
// safe for concurrent use; a single frame loop owns it.
type Session struct {
	opts  Options
	board *Board
	bag   *Randomizer

	current *Piece
	next    *Piece

	fallInterval float64
	level        int
	accumulator  float64
	elapsed      float64

	paused   bool
	resumed  bool
	quit     bool
	ended    bool
	hardDrop bool
	softDrop bool

	highScore     int
	highScoreCued bool

	cues  []Cue
	stats Stats
}

// NewSession starts a session with a fresh board and a fresh bag.
func NewSession(opts Options) *Session {
	opts = opts.withDefaults()

	s := &Session{
		opts:         opts,
		board:        NewBoard(opts.Geometry),
		bag:          NewRandomizer(opts.Rand),
		fallInterval: opts.InitialFallInterval,
		level:        1,
		highScore:    opts.HighScore,
		stats:        newStats(),
	}
	s.bag.Reset()

	s.current = s.newPiece(s.opts.Geometry.SpawnAnchor())
	s.next = s.newPiece(s.opts.NextAnchor)
	return s
}

func (s *Session) newPiece(anchor Point) *Piece {
	s.stats.Pieces++
	g := s.opts.Geometry
	return NewPiece(s.bag.Draw(), anchor, g.CellWidth, g.CellHeight, s.fallInterval)
}

func (s *Session) emit(c Cue) {
	s.cues = append(s.cues, c)
}

// DrainCues returns the cues emitted since the last call.
func (s *Session) DrainCues() []Cue {
	if len(s.cues) == 0 {
		return nil
	}
	out := s.cues
	s.cues = nil
	return out
}

// Apply executes a player command. It reports whether the command changed
// the session; a move or rotation that would collide is rolled back and
// reported as false.
func (s *Session) Apply(cmd Command) bool {
	if s.quit {
		return false
	}
	if cmd == CommandQuit {
		s.quit = true
		s.end()
		return true
	}
	if s.board.IsGameOver() {
		return false
	}
	if cmd == CommandPauseToggle {
		s.togglePause()
		return true
	}
	if s.paused {
		return false
	}

	p := s.current
	switch cmd {
	case CommandMoveLeft:
		return s.try(p.MoveLeft, p.MoveRight, CueMove)
	case CommandMoveRight:
		return s.try(p.MoveRight, p.MoveLeft, CueMove)
	case CommandRotateCW:
		return s.try(p.RotateCW, p.RotateCCW, CueRotate)
	case CommandRotateCCW:
		return s.try(p.RotateCCW, p.RotateCW, CueRotate)
	case CommandSoftDropBegin:
		s.softDrop = true
		p.SetFallOverride(s.opts.SoftDropInterval)
	case CommandSoftDropEnd:
		s.softDrop = false
		p.ClearFallOverride()
	case CommandHardDropBegin:
		s.hardDrop = true
	case CommandHardDropEnd:
		s.hardDrop = false
	default:
		return false
	}
	return true
}

// try applies a move speculatively and undoes it when the result leaves the
// field or overlaps locked cells.
func (s *Session) try(apply, undo func(), cue Cue) bool {
	apply()
	cells := s.current.cells
	if s.board.IsOutOfBounds(cells) || s.board.Collides(cells) {
		undo()
		return false
	}
	s.emit(cue)
	return true
}

func (s *Session) togglePause() {
	if s.paused {
		s.paused = false
		s.resumed = true
		s.emit(CuePauseExit)
		return
	}
	s.paused = true
	s.emit(CuePauseEnter)
}

// Advance feeds frameTime seconds of real time into the fixed-step
// accumulator and runs every step that fits. Time passed while paused is
// discarded, and the first frame after resuming counts as one step. It
// returns the number of steps run.
func (s *Session) Advance(frameTime float64) int {
	if s.quit || s.board.IsGameOver() || s.paused {
		return 0
	}

	if s.resumed {
		frameTime = s.opts.FixedStep
		s.resumed = false
	}
	frameTime = min(max(frameTime, 0), s.opts.MaxFrameTime)

	s.accumulator += frameTime
	steps := 0
	for s.accumulator >= s.opts.FixedStep && !s.board.IsGameOver() {
		s.Step()
		s.accumulator -= s.opts.FixedStep
		steps++
	}
	s.elapsed += frameTime

	s.checkHighScore()
	if s.board.IsGameOver() {
		s.end()
	}
	return steps
}

// Step runs one fixed simulation step. While hard drop is held the piece
// falls until it collides; otherwise it gets one regulated descent.
func (s *Session) Step() {
	if s.quit || s.board.IsGameOver() {
		return
	}

	p := s.current
	descended, collided := false, false
	if s.hardDrop {
		for i := 0; i < s.opts.Geometry.Rows; i++ {
			p.MoveDown()
			descended = true
			if s.board.Collides(p.cells) {
				collided = true
				break
			}
		}
	} else {
		descended = p.Tick(s.opts.FixedStep)
		collided = s.board.Collides(p.cells)
	}

	if !collided {
		return
	}
	if descended {
		p.MoveUp()
	}
	s.lockCurrent()
}

func (s *Session) lockCurrent() {
	p := s.current
	cleared := s.board.Lock(p.cells, p.ColorIndex())
	s.stats.recordLock(cleared)
	s.emit(CueLock)
	if cleared > 0 {
		s.emit(CueLineClear)
	}

	if s.board.Score()/s.opts.DifficultyScoreStep >= s.level {
		s.level++
		s.fallInterval = max(s.fallInterval*s.opts.DifficultyFactor, s.opts.FixedStep)
	}

	s.hardDrop = false
	s.current = s.next
	s.current.SetSpawnState(s.opts.Geometry.SpawnAnchor(), s.fallInterval)
	if s.softDrop {
		s.current.SetFallOverride(s.opts.SoftDropInterval)
	}
	s.next = s.newPiece(s.opts.NextAnchor)

	if !s.board.IsGameOver() && s.board.Collides(s.current.cells) {
		s.board.TopOut()
	}
}

func (s *Session) checkHighScore() {
	score := s.board.Score()
	if score <= s.highScore {
		return
	}
	if !s.highScoreCued {
		s.highScoreCued = true
		s.emit(CueNewHighScore)
	}
	s.highScore = score
}

func (s *Session) end() {
	if s.ended {
		return
	}
	s.ended = true
	s.emit(CueSessionEnd)
}

func (s *Session) Board() *Board         { return s.board }
func (s *Session) Current() *Piece       { return s.current }
func (s *Session) Next() *Piece          { return s.next }
func (s *Session) Level() int            { return s.level }
func (s *Session) Score() int            { return s.board.Score() }
func (s *Session) HighScore() int        { return s.highScore }
func (s *Session) Elapsed() float64      { return s.elapsed }
func (s *Session) Paused() bool          { return s.paused }
func (s *Session) GameOver() bool        { return s.board.IsGameOver() }
func (s *Session) Quit() bool            { return s.quit }
func (s *Session) Options() Options      { return s.opts }
func (s *Session) FallInterval() float64 { return s.fallInterval }

// Stats returns a copy of the session counters. Later locks do not change it.
func (s *Session) Stats() Stats { return s.stats.clone() }

// Over reports whether the session has ended by game over or quit.
func (s *Session) Over() bool { return s.quit || s.board.IsGameOver() }
