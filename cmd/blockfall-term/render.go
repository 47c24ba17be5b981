package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/menu"
)

const (
	boardLeft = 2
	boardTop  = 1
	panelLeft = boardLeft + 2*game.DefaultColumns + 4
)

var kindColors = [game.NumKinds]tcell.Color{
	game.KindI: tcell.ColorAqua,
	game.KindO: tcell.ColorYellow,
	game.KindT: tcell.ColorPurple,
	game.KindJ: tcell.ColorBlue,
	game.KindL: tcell.ColorOrange,
	game.KindS: tcell.ColorGreen,
	game.KindZ: tcell.ColorRed,
}

var (
	styleText  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleFrame = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGhost = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

func blockStyle(color int) tcell.Style {
	if color < 0 || color >= len(kindColors) {
		return styleText
	}
	return tcell.StyleDefault.Background(kindColors[color]).Foreground(kindColors[color])
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// drawCell fills one board cell, two terminal columns wide.
func drawCell(screen tcell.Screen, col, row int, r rune, style tcell.Style) {
	x := boardLeft + 2*col
	y := boardTop + row
	screen.SetContent(x, y, r, nil, style)
	screen.SetContent(x+1, y, r, nil, style)
}

func drawSnapshot(screen tcell.Screen, snap game.Snapshot) {
	screen.Clear()
	geom := snap.Geometry

	for row := -1; row <= geom.Rows; row++ {
		screen.SetContent(boardLeft-1, boardTop+row, '│', nil, styleFrame)
		screen.SetContent(boardLeft+2*geom.Columns, boardTop+row, '│', nil, styleFrame)
	}
	for col := 0; col < 2*geom.Columns; col++ {
		screen.SetContent(boardLeft+col, boardTop+geom.Rows, '─', nil, styleFrame)
	}

	for row, cells := range snap.Board {
		for col, v := range cells {
			if v != game.Empty {
				drawCell(screen, col, row, '█', blockStyle(v))
			}
		}
	}

	for _, p := range snap.Ghost {
		c := geom.ToCell(p)
		if c.Row >= 0 {
			drawCell(screen, c.Col, c.Row, '░', styleGhost)
		}
	}
	for _, p := range snap.Active {
		c := geom.ToCell(p)
		if c.Row >= 0 {
			drawCell(screen, c.Col, c.Row, '█', blockStyle(snap.ActiveColor))
		}
	}

	drawText(screen, panelLeft, boardTop, styleText, fmt.Sprintf("HIGH  %d", snap.HighScore))
	drawText(screen, panelLeft, boardTop+2, styleText, fmt.Sprintf("SCORE %d", snap.Score))
	drawText(screen, panelLeft, boardTop+4, styleText, fmt.Sprintf("LEVEL %d", snap.Level))
	drawText(screen, panelLeft, boardTop+6, styleText, fmt.Sprintf("LINES %d", snap.Lines))
	drawText(screen, panelLeft, boardTop+8, styleText, game.FormatElapsed(snap.Elapsed))
	drawText(screen, panelLeft, boardTop+10, styleText, "NEXT")
	drawNext(screen, snap)

	switch {
	case snap.GameOver:
		drawText(screen, boardLeft+4, boardTop+geom.Rows/2, styleText, "GAME OVER")
	case snap.Paused:
		drawText(screen, boardLeft+6, boardTop+geom.Rows/2, styleText, "PAUSE")
	}
}

// drawNext draws the queued piece below the NEXT label, aligned to its own
// top-left block.
func drawNext(screen tcell.Screen, snap game.Snapshot) {
	if len(snap.Next) == 0 {
		return
	}
	geom := snap.Geometry
	minX, minY := snap.Next[0].X, snap.Next[0].Y
	for _, p := range snap.Next {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
	}
	for _, p := range snap.Next {
		col := (p.X - minX) / geom.CellWidth
		row := (p.Y - minY) / geom.CellHeight
		x := panelLeft + 2*col
		y := boardTop + 12 + row
		screen.SetContent(x, y, '█', nil, blockStyle(snap.NextColor))
		screen.SetContent(x+1, y, '█', nil, blockStyle(snap.NextColor))
	}
}

func drawMenu(screen tcell.Screen, m *menu.Menu, cursorVisible bool) {
	screen.Clear()
	drawText(screen, boardLeft, boardTop, styleText, "B L O C K F A L L")
	for i, item := range menu.Items() {
		y := boardTop + 4 + 2*i
		drawText(screen, boardLeft+4, y, styleText, item.String())
		if item == m.Selected() && cursorVisible {
			drawText(screen, boardLeft+1, y, styleText, ">")
		}
	}
	screen.Show()
}

// renderSystem draws the session after the simulation has run.
type renderSystem struct {
	screen tcell.Screen
}

func (r *renderSystem) Execute(f *frame.UpdateFrame) {
	if f.Session == nil {
		return
	}
	drawSnapshot(r.screen, f.Session.Snapshot())
	r.screen.Show()
}
