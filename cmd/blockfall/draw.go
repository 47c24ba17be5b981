package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/menu"
)

var (
	colorBackground = color.RGBA{R: 16, G: 16, B: 24, A: 255}
	colorField      = color.RGBA{R: 28, G: 28, B: 40, A: 255}
	colorFrame      = color.RGBA{R: 120, G: 120, B: 140, A: 255}
	colorGhost      = color.RGBA{R: 200, G: 200, B: 200, A: 160}
)

var kindColors = [game.NumKinds]color.RGBA{
	game.KindI: {R: 0, G: 240, B: 240, A: 255},
	game.KindO: {R: 240, G: 240, B: 0, A: 255},
	game.KindT: {R: 160, G: 0, B: 240, A: 255},
	game.KindJ: {R: 0, G: 0, B: 240, A: 255},
	game.KindL: {R: 240, G: 160, B: 0, A: 255},
	game.KindS: {R: 0, G: 240, B: 0, A: 255},
	game.KindZ: {R: 240, G: 0, B: 0, A: 255},
}

// blockColor returns the fill for a color index, white for anything unknown.
func blockColor(index int) color.RGBA {
	if index < 0 || index >= len(kindColors) {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return kindColors[index]
}

func drawBlock(screen *ebiten.Image, geom game.Geometry, p game.Point, clr color.Color) {
	vector.DrawFilledRect(screen,
		float32(p.X)+1, float32(p.Y)+1,
		float32(geom.CellWidth)-2, float32(geom.CellHeight)-2,
		clr, false)
}

func drawSnapshot(screen *ebiten.Image, snap game.Snapshot) {
	geom := snap.Geometry
	screen.Fill(colorBackground)

	far := geom.Max()
	w := float32(far.X - geom.Origin.X)
	h := float32(far.Y - geom.Origin.Y)
	vector.DrawFilledRect(screen, float32(geom.Origin.X), float32(geom.Origin.Y), w, h, colorField, false)
	vector.StrokeRect(screen, float32(geom.Origin.X)-1, float32(geom.Origin.Y)-1, w+2, h+2, 2, colorFrame, false)

	for row, cells := range snap.Board {
		for col, v := range cells {
			if v != game.Empty {
				drawBlock(screen, geom, geom.ToPoint(game.Cell{Row: row, Col: col}), blockColor(v))
			}
		}
	}

	for _, p := range snap.Ghost {
		if p.Y >= geom.Origin.Y {
			vector.StrokeRect(screen,
				float32(p.X)+2, float32(p.Y)+2,
				float32(geom.CellWidth)-4, float32(geom.CellHeight)-4,
				1, colorGhost, false)
		}
	}
	for _, p := range snap.Active {
		if p.Y >= geom.Origin.Y {
			drawBlock(screen, geom, p, blockColor(snap.ActiveColor))
		}
	}
	for _, p := range snap.Next {
		drawBlock(screen, geom, p, blockColor(snap.NextColor))
	}

	panelX := far.X + 24
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HIGH SCORE\n%d", snap.HighScore), panelX, geom.Origin.Y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d", snap.Score), panelX, geom.Origin.Y+60)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d", snap.Level), panelX, geom.Origin.Y+120)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES %d", snap.Lines), panelX, geom.Origin.Y+150)
	ebitenutil.DebugPrintAt(screen, game.FormatElapsed(snap.Elapsed), panelX, geom.Origin.Y+180)
	ebitenutil.DebugPrintAt(screen, "NEXT", panelX, geom.Origin.Y+260)

	centerY := geom.Origin.Y + geom.Rows*geom.CellHeight/2
	switch {
	case snap.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nENTER: MENU", geom.Origin.X+120, centerY)
	case snap.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSE", geom.Origin.X+140, centerY)
	}
}

func drawMenu(screen *ebiten.Image, m *menu.Menu, cursorVisible bool) {
	screen.Fill(colorBackground)
	x := game.DefaultWindowW/2 - 48
	y := game.DefaultWindowH / 3
	ebitenutil.DebugPrintAt(screen, "B L O C K F A L L", x-16, y)
	for i, item := range menu.Items() {
		iy := y + 80 + 40*i
		ebitenutil.DebugPrintAt(screen, item.String(), x, iy)
		if item == m.Selected() && cursorVisible {
			ebitenutil.DebugPrintAt(screen, ">", x-20, iy)
		}
	}
}
