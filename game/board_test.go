package game_test

import (
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow locks a block into every listed column of row.
func fillRow(b *game.Board, row int, cols ...int) {
	geom := b.Geometry()
	points := make([]game.Point, 0, len(cols))
	for _, col := range cols {
		points = append(points, geom.ToPoint(game.Cell{Row: row, Col: col}))
	}
	b.Lock(points, int(game.KindT))
}

func colsExcept(skip ...int) []int {
	var cols []int
outer:
	for col := 0; col < game.DefaultColumns; col++ {
		for _, s := range skip {
			if s == col {
				continue outer
			}
		}
		cols = append(cols, col)
	}
	return cols
}

func pointAt(b *game.Board, row, col int) game.Point {
	return b.Geometry().ToPoint(game.Cell{Row: row, Col: col})
}

func TestDefaultGeometry(t *testing.T) {
	geom := game.DefaultGeometry()
	assert.Equal(t, game.Point{X: 26, Y: 130}, geom.Origin)
	assert.Equal(t, game.Point{X: 346, Y: 770}, geom.Max())
	assert.Equal(t, game.Point{X: 186, Y: 162}, geom.SpawnAnchor())
}

func TestCoordinateConversion(t *testing.T) {
	geom := game.DefaultGeometry()

	t.Run("inverse over the field", func(t *testing.T) {
		for row := 0; row < geom.Rows; row++ {
			for col := 0; col < geom.Columns; col++ {
				c := game.Cell{Row: row, Col: col}
				assert.Equal(t, c, geom.ToCell(geom.ToPoint(c)))
			}
		}
	})

	t.Run("points inside a cell map to it", func(t *testing.T) {
		p := geom.ToPoint(game.Cell{Row: 3, Col: 7})
		assert.Equal(t, game.Cell{Row: 3, Col: 7}, geom.ToCell(game.Point{X: p.X + 31, Y: p.Y + 31}))
	})

	t.Run("above the field floors to negative rows", func(t *testing.T) {
		assert.Equal(t, -1, geom.ToCell(game.Point{X: 26, Y: 129}).Row)
		assert.Equal(t, -1, geom.ToCell(game.Point{X: 26, Y: 98}).Row)
		assert.Equal(t, -2, geom.ToCell(game.Point{X: 26, Y: 97}).Row)
	})
}

func TestIsOutOfBounds(t *testing.T) {
	b := game.NewBoard(game.DefaultGeometry())

	assert.False(t, b.IsOutOfBounds([]game.Point{pointAt(b, 0, 0), pointAt(b, 19, 9)}))
	assert.True(t, b.IsOutOfBounds([]game.Point{pointAt(b, 5, -1)}))
	assert.True(t, b.IsOutOfBounds([]game.Point{pointAt(b, 5, 10)}))

	// vertical overflow is not a bounds violation
	assert.False(t, b.IsOutOfBounds([]game.Point{pointAt(b, 25, 4)}))
	assert.False(t, b.IsOutOfBounds([]game.Point{pointAt(b, -3, 4)}))
}

func TestCollides(t *testing.T) {
	b := game.NewBoard(game.DefaultGeometry())
	fillRow(b, 19, 2)

	assert.False(t, b.Collides([]game.Point{pointAt(b, 18, 2)}))
	assert.True(t, b.Collides([]game.Point{pointAt(b, 19, 2)}))
	assert.True(t, b.Collides([]game.Point{pointAt(b, 20, 0)}))
	assert.False(t, b.Collides([]game.Point{pointAt(b, -1, 2)}))
	assert.Equal(t, int(game.KindT), b.CellAt(19, 2))
	assert.Equal(t, game.Empty, b.CellAt(19, 3))
	assert.Equal(t, game.Empty, b.CellAt(-1, 3))
}

func TestDropOPieceToFloor(t *testing.T) {
	geom := game.DefaultGeometry()
	b := game.NewBoard(geom)
	p := game.NewPiece(game.KindO, geom.SpawnAnchor(), geom.CellWidth, geom.CellHeight, 1.0)

	for i := 0; i < geom.Rows+1; i++ {
		p.MoveDown()
		if b.Collides(p.Cells()) {
			p.MoveUp()
			break
		}
	}

	maxRow := 0
	for _, c := range b.ToCells(p.Cells()) {
		maxRow = max(maxRow, c.Row)
	}
	assert.Equal(t, geom.Rows-1, maxRow)

	p.MoveDown()
	assert.True(t, b.Collides(p.Cells()))
}

func TestLockSingleLineClear(t *testing.T) {
	b := game.NewBoard(game.DefaultGeometry())
	fillRow(b, 19, colsExcept(5)...)
	require.Equal(t, 0, b.Score())

	cleared := b.Lock([]game.Point{pointAt(b, 19, 5)}, int(game.KindI))

	assert.Equal(t, 1, cleared)
	assert.Equal(t, 100, b.Score())
	assert.Equal(t, 1, b.Lines())
	for col := 0; col < game.DefaultColumns; col++ {
		assert.Equal(t, game.Empty, b.CellAt(19, col))
	}
	assert.False(t, b.IsGameOver())
}

func TestLockShiftsRowsAbove(t *testing.T) {
	b := game.NewBoard(game.DefaultGeometry())
	fillRow(b, 10, 0)
	fillRow(b, 18, 3, 4)
	fillRow(b, 19, colsExcept(9)...)

	b.Lock([]game.Point{pointAt(b, 19, 9)}, int(game.KindL))

	assert.Equal(t, game.Empty, b.CellAt(10, 0))
	assert.Equal(t, int(game.KindT), b.CellAt(11, 0))
	assert.Equal(t, int(game.KindT), b.CellAt(19, 3))
	assert.Equal(t, int(game.KindT), b.CellAt(19, 4))
	assert.Equal(t, game.Empty, b.CellAt(18, 3))
	for col := 0; col < game.DefaultColumns; col++ {
		assert.Equal(t, game.Empty, b.CellAt(0, col))
	}
}

func TestLockScoringTiers(t *testing.T) {
	tests := []struct {
		name  string
		rows  int
		score int
	}{
		{"single", 1, 100},
		{"double", 2, 300},
		{"triple", 3, 700},
		{"quad", 4, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := game.NewBoard(game.DefaultGeometry())
			var column []game.Point
			for row := game.DefaultRows - tt.rows; row < game.DefaultRows; row++ {
				fillRow(b, row, colsExcept(0)...)
				column = append(column, pointAt(b, row, 0))
			}
			require.Equal(t, 0, b.Score())

			cleared := b.Lock(column, int(game.KindI))
			assert.Equal(t, tt.rows, cleared)
			assert.Equal(t, tt.score, b.Score())
			assert.Equal(t, tt.rows, b.Lines())
		})
	}
}

func TestClearScore(t *testing.T) {
	assert.Equal(t, 0, game.ClearScore(0))
	assert.Equal(t, 100, game.ClearScore(1))
	assert.Equal(t, 300, game.ClearScore(2))
	assert.Equal(t, 700, game.ClearScore(3))
	assert.Equal(t, 1500, game.ClearScore(4))
	assert.Equal(t, 3000, game.ClearScore(5))
}

func TestLockRowZeroEndsGame(t *testing.T) {
	b := game.NewBoard(game.DefaultGeometry())
	b.Lock([]game.Point{pointAt(b, 1, 4)}, int(game.KindO))
	assert.False(t, b.IsGameOver())

	b.Lock([]game.Point{pointAt(b, 0, 4)}, int(game.KindO))
	assert.True(t, b.IsGameOver())
}

func TestLockIgnoresCellsAboveField(t *testing.T) {
	b := game.NewBoard(game.DefaultGeometry())
	cleared := b.Lock([]game.Point{pointAt(b, -1, 4), pointAt(b, 2, 4)}, int(game.KindI))
	assert.Equal(t, 0, cleared)
	assert.Equal(t, int(game.KindI), b.CellAt(2, 4))
	assert.False(t, b.IsGameOver())
}

func TestProjectLanding(t *testing.T) {
	geom := game.DefaultGeometry()

	t.Run("empty board lands on the floor", func(t *testing.T) {
		b := game.NewBoard(geom)
		p := game.NewPiece(game.KindO, geom.SpawnAnchor(), geom.CellWidth, geom.CellHeight, 1.0)

		ghost := b.ProjectLanding(p.Cells())
		assert.Equal(t, []game.Point{
			pointAt(b, 18, 4), pointAt(b, 18, 5),
			pointAt(b, 19, 4), pointAt(b, 19, 5),
		}, ghost)
		assert.Equal(t, ghost, b.ProjectLanding(ghost))
	})

	t.Run("lands on locked cells", func(t *testing.T) {
		b := game.NewBoard(geom)
		fillRow(b, 19, 4)
		p := game.NewPiece(game.KindO, geom.SpawnAnchor(), geom.CellWidth, geom.CellHeight, 1.0)

		ghost := b.ProjectLanding(p.Cells())
		assert.Equal(t, []game.Point{
			pointAt(b, 17, 4), pointAt(b, 17, 5),
			pointAt(b, 18, 4), pointAt(b, 18, 5),
		}, ghost)
		assert.Equal(t, ghost, b.ProjectLanding(ghost))
	})

	t.Run("input is not modified", func(t *testing.T) {
		b := game.NewBoard(geom)
		p := game.NewPiece(game.KindT, geom.SpawnAnchor(), geom.CellWidth, geom.CellHeight, 1.0)
		cells := p.Cells()
		b.ProjectLanding(cells)
		assert.Equal(t, p.Cells(), cells)
	})
}

func TestBoardCellsIsACopy(t *testing.T) {
	b := game.NewBoard(game.DefaultGeometry())
	cells := b.Cells()
	require.Len(t, cells, game.DefaultRows)
	require.Len(t, cells[0], game.DefaultColumns)

	cells[19][0] = int(game.KindZ)
	assert.Equal(t, game.Empty, b.CellAt(19, 0))
}
