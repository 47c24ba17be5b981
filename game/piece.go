package game

// Point is a world coordinate in pixels. Y grows downwards.
type Point struct {
	X, Y int
}

// Piece is the live falling piece. Its block cells are always the projection
// of the current rotation frame at the current anchor.
//
// Movement methods never validate against a board: callers apply a move,
// test the result and undo it with the inverse move when it is rejected.
type Piece struct {
	kind     Kind
	rotation int
	anchor   Point
	cells    []Point

	cellWidth  int
	cellHeight int

	accumulator     float64
	normalInterval  float64
	currentInterval float64
}

// NewPiece creates a piece of kind at rotation 0 whose reference cell sits at
// anchor. fallInterval is the time in seconds between automatic descents.
func NewPiece(kind Kind, anchor Point, cellWidth, cellHeight int, fallInterval float64) *Piece {
	p := &Piece{
		kind:            kind,
		anchor:          anchor,
		cellWidth:       cellWidth,
		cellHeight:      cellHeight,
		normalInterval:  fallInterval,
		currentInterval: fallInterval,
		cells:           make([]Point, 0, 4),
	}
	p.build()
	return p
}

// build recomputes block cells. The frame's top-left corner is one cell left
// of and one cell above the anchor.
func (p *Piece) build() {
	frame := FrameOf(p.kind, p.rotation)
	left := p.anchor.X - p.cellWidth
	top := p.anchor.Y - p.cellHeight

	p.cells = p.cells[:0]
	for r, row := range frame {
		for c, filled := range row {
			if filled {
				p.cells = append(p.cells, Point{X: left + c*p.cellWidth, Y: top + r*p.cellHeight})
			}
		}
	}
}

func (p *Piece) translate(dx, dy int) {
	p.anchor.X += dx
	p.anchor.Y += dy
	for i := range p.cells {
		p.cells[i].X += dx
		p.cells[i].Y += dy
	}
}

func (p *Piece) MoveLeft()  { p.translate(-p.cellWidth, 0) }
func (p *Piece) MoveRight() { p.translate(p.cellWidth, 0) }
func (p *Piece) MoveDown()  { p.translate(0, p.cellHeight) }

// MoveUp undoes a descent, used to step back from a colliding position before locking.
func (p *Piece) MoveUp() { p.translate(0, -p.cellHeight) }

// RotateCW advances to the next rotation frame.
func (p *Piece) RotateCW() {
	p.rotation = (p.rotation + 1) % 4
	p.build()
}

// RotateCCW steps back one rotation frame, wrapping 0 to 3.
func (p *Piece) RotateCCW() {
	if p.rotation == 0 {
		p.rotation = 3
	} else {
		p.rotation--
	}
	p.build()
}

// Tick accumulates dt seconds and descends one row once the accumulator
// reaches the current fall interval. It reports whether a descent happened.
func (p *Piece) Tick(dt float64) bool {
	p.accumulator += dt
	if p.accumulator < p.currentInterval {
		return false
	}

	p.accumulator = 0
	p.MoveDown()
	return true
}

// SetFallOverride temporarily replaces the fall interval, e.g. while a fast
// drop key is held.
func (p *Piece) SetFallOverride(interval float64) {
	p.currentInterval = interval
}

// ClearFallOverride restores the normal fall interval.
func (p *Piece) ClearFallOverride() {
	p.currentInterval = p.normalInterval
}

// SetFallInterval replaces the normal fall interval and drops any override.
func (p *Piece) SetFallInterval(interval float64) {
	p.normalInterval = interval
	p.currentInterval = interval
}

// SetSpawnState reinitialises the piece as the new active piece at anchor.
func (p *Piece) SetSpawnState(anchor Point, fallInterval float64) {
	p.anchor = anchor
	p.rotation = 0
	p.accumulator = 0
	p.SetFallInterval(fallInterval)
	p.build()
}

func (p *Piece) Kind() Kind      { return p.kind }
func (p *Piece) Rotation() int   { return p.rotation }
func (p *Piece) Anchor() Point   { return p.anchor }
func (p *Piece) ColorIndex() int { return int(p.kind) }

// FallInterval returns the interval currently in effect, override included.
func (p *Piece) FallInterval() float64 { return p.currentInterval }

// Cells returns a copy of the occupied block coordinates.
func (p *Piece) Cells() []Point {
	out := make([]Point, len(p.cells))
	copy(out, p.cells)
	return out
}
