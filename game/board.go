package game

// Empty marks an unoccupied board cell.
const Empty = -1

const (
	DefaultColumns   = 10
	DefaultRows      = 20
	DefaultCellSize  = 32
	DefaultWindowW   = 634
	DefaultWindowH   = 800
	defaultPlayAreaW = DefaultColumns * DefaultCellSize
	defaultPlayAreaH = DefaultRows * DefaultCellSize
)

// Cell addresses a grid position. Row 0 is the top row.
type Cell struct {
	Row, Col int
}

// Geometry fixes where the play field sits in world coordinates.
type Geometry struct {
	Origin     Point // top-left corner of the play field
	CellWidth  int
	CellHeight int
	Columns    int
	Rows       int
}

// DefaultGeometry is the 10x20 field of 32px tiles laid out in a 634x800 window.
func DefaultGeometry() Geometry {
	return Geometry{
		Origin: Point{
			X: DefaultWindowW/2 - defaultPlayAreaW + 29,
			Y: (DefaultWindowH-defaultPlayAreaH)/2 + 50,
		},
		CellWidth:  DefaultCellSize,
		CellHeight: DefaultCellSize,
		Columns:    DefaultColumns,
		Rows:       DefaultRows,
	}
}

// ToCell maps a world coordinate to the grid cell containing it.
func (g Geometry) ToCell(p Point) Cell {
	return Cell{
		Row: floorDiv(p.Y-g.Origin.Y, g.CellHeight),
		Col: floorDiv(p.X-g.Origin.X, g.CellWidth),
	}
}

// ToPoint maps a grid cell to the world coordinate of its top-left corner.
func (g Geometry) ToPoint(c Cell) Point {
	return Point{
		X: c.Col*g.CellWidth + g.Origin.X,
		Y: c.Row*g.CellHeight + g.Origin.Y,
	}
}

// Max returns the bottom-right corner of the play field.
func (g Geometry) Max() Point {
	return Point{
		X: g.Origin.X + g.Columns*g.CellWidth,
		Y: g.Origin.Y + g.Rows*g.CellHeight,
	}
}

// SpawnAnchor is where new pieces appear: the middle column, one row down.
func (g Geometry) SpawnAnchor() Point {
	return Point{
		X: g.Origin.X + (g.Columns/2)*g.CellWidth,
		Y: g.Origin.Y + g.CellHeight,
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Board holds the locked cells of one session along with its score.
type Board struct {
	geom     Geometry
	grid     [][]int
	score    int
	lines    int
	gameOver bool
}

// NewBoard creates an empty board with the given geometry.
func NewBoard(geom Geometry) *Board {
	b := &Board{
		geom: geom,
		grid: make([][]int, geom.Rows),
	}
	for i := range b.grid {
		b.grid[i] = emptyRow(geom.Columns)
	}
	return b
}

func emptyRow(columns int) []int {
	row := make([]int, columns)
	for i := range row {
		row[i] = Empty
	}
	return row
}

func (b *Board) inField(c Cell) bool {
	return c.Row >= 0 && c.Row < b.geom.Rows && c.Col >= 0 && c.Col < b.geom.Columns
}

// ToCells converts world coordinates to grid cells.
func (b *Board) ToCells(points []Point) []Cell {
	cells := make([]Cell, len(points))
	for i, p := range points {
		cells[i] = b.geom.ToCell(p)
	}
	return cells
}

// ToPoints converts grid cells to world coordinates.
func (b *Board) ToPoints(cells []Cell) []Point {
	points := make([]Point, len(cells))
	for i, c := range cells {
		points[i] = b.geom.ToPoint(c)
	}
	return points
}

// IsOutOfBounds reports whether any point lies left of the left wall or at or
// beyond the right wall. Only the horizontal axis is checked; overflow below
// the field is detected by Collides.
func (b *Board) IsOutOfBounds(points []Point) bool {
	maxX := b.geom.Max().X
	for _, p := range points {
		if p.X > maxX-b.geom.CellWidth || p.X < b.geom.Origin.X {
			return true
		}
	}
	return false
}

// Collides reports whether any point falls below the last row or onto an
// occupied cell. Points above the top row never collide.
func (b *Board) Collides(points []Point) bool {
	for _, p := range points {
		c := b.geom.ToCell(p)
		if c.Row >= b.geom.Rows {
			return true
		}
		if b.inField(c) && b.grid[c.Row][c.Col] != Empty {
			return true
		}
	}
	return false
}

// Lock writes colorIndex into every cell covered by points, clears full rows
// and scores them. A cell locked into row 0 ends the game. It returns the
// number of rows cleared. Lock must be called once per settled piece.
func (b *Board) Lock(points []Point, colorIndex int) int {
	cells := b.ToCells(points)
	for _, c := range cells {
		if b.inField(c) {
			b.grid[c.Row][c.Col] = colorIndex
		}
	}

	// Cells arrive in frame order, top row first, so a row removed here only
	// shifts rows that no later cell refers to.
	cleared := 0
	for _, c := range cells {
		if c.Row == 0 {
			b.gameOver = true
		}
		if !b.inField(c) || !b.rowFull(c.Row) {
			continue
		}
		b.removeRow(c.Row)
		cleared++
	}

	b.lines += cleared
	b.score += ClearScore(cleared)
	return cleared
}

func (b *Board) rowFull(row int) bool {
	for _, v := range b.grid[row] {
		if v == Empty {
			return false
		}
	}
	return true
}

func (b *Board) removeRow(row int) {
	copy(b.grid[1:row+1], b.grid[:row])
	b.grid[0] = emptyRow(b.geom.Columns)
}

// ClearScore returns the points awarded for clearing n rows with one lock.
func ClearScore(n int) int {
	switch n {
	case 0:
		return 0
	case 1:
		return 100
	case 2:
		return 300
	case 3:
		return 700
	case 4:
		return 1500
	default:
		return n * 4 * 150
	}
}

// ProjectLanding returns where points would come to rest if dropped straight
// down. The walk is capped at one pass per row.
func (b *Board) ProjectLanding(points []Point) []Point {
	cells := b.ToCells(points)
	for _, c := range cells {
		if c.Row >= b.geom.Rows-1 {
			return points
		}
	}

	bottom, collided := false, false
	for i := 0; i < b.geom.Rows && !bottom && !collided; i++ {
		for j := range cells {
			next := Cell{Row: cells[j].Row + 1, Col: cells[j].Col}
			cells[j] = next
			if b.inField(next) && b.grid[next.Row][next.Col] != Empty {
				collided = true
			} else if next.Row >= b.geom.Rows-1 {
				bottom = true
			}
		}
	}

	if collided {
		for j := range cells {
			cells[j].Row--
		}
	}
	return b.ToPoints(cells)
}

// TopOut ends the game because a new piece has nowhere to appear.
func (b *Board) TopOut() {
	b.gameOver = true
}

func (b *Board) Score() int         { return b.score }
func (b *Board) Lines() int         { return b.lines }
func (b *Board) IsGameOver() bool   { return b.gameOver }
func (b *Board) Geometry() Geometry { return b.geom }

// CellAt returns the color index at row, col, or Empty outside the field.
func (b *Board) CellAt(row, col int) int {
	if !b.inField(Cell{Row: row, Col: col}) {
		return Empty
	}
	return b.grid[row][col]
}

// Cells returns a copy of the grid, indexed [row][col].
func (b *Board) Cells() [][]int {
	out := make([][]int, len(b.grid))
	for i, row := range b.grid {
		out[i] = append([]int(nil), row...)
	}
	return out
}
