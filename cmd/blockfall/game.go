package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/internal/session"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	frameColor      = color.RGBA{128, 128, 128, 255}
	gridLineColor   = color.RGBA{30, 30, 38, 255}
)

// Game implements ebiten.Game on top of the loop scheduler.
type Game struct {
	Session   *session.Session
	Scheduler *loop.Scheduler
	Input     *InputStage

	Backend   *debugui_ebiten.ImguiBackend
	Inspector *debugui.GameInspector

	frameTimer *debugui.FrameTimer
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := frameDuration()
	if g.Backend == nil {
		g.Scheduler.Once(dt)
		return nil
	}

	g.Backend.Frame(func() {
		g.Scheduler.Once(dt)
	})
	if g.Inspector.StepRequested {
		g.Inspector.StepRequested = false
		g.Session.StepOnce(g.Session.Game.FallInterval())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	game := g.Session.Game
	boardW := float32(game.Width() * CellSize)
	boardH := float32(game.Height() * CellSize)
	originX := (float32(screen.Bounds().Dx()) - boardW) / 2
	originY := (float32(screen.Bounds().Dy()) - boardH) / 2

	vector.StrokeRect(screen, originX-2, originY-2, boardW+4, boardH+4, 2, frameColor, false)

	tiles := session.Compose(game)
	for y, row := range tiles {
		// Row 0 is the floor, drawn at the bottom of the screen.
		sy := originY + boardH - float32((y+1)*CellSize)
		for x, tile := range row {
			sx := originX + float32(x*CellSize)
			drawTile(screen, sx, sy, tile)
		}
	}

	g.drawSidebar(screen, int(originX+boardW)+24, int(originY))

	if g.Backend != nil {
		g.Backend.Draw(screen)
	}
}

func drawTile(screen *ebiten.Image, sx, sy float32, tile session.Tile) {
	switch tile.Kind {
	case session.TileEmpty:
		vector.StrokeRect(screen, sx, sy, CellSize, CellSize, 1, gridLineColor, false)
	case session.TileGhost:
		vector.DrawFilledRect(screen, sx+1, sy+1, CellSize-2, CellSize-2, session.GhostColor(tile.Color), false)
	default:
		vector.DrawFilledRect(screen, sx, sy, CellSize, CellSize, session.Color(tile.Color), false)
		vector.StrokeRect(screen, sx, sy, CellSize, CellSize, 1, backgroundColor, false)
	}
}

func (g *Game) drawSidebar(screen *ebiten.Image, x, y int) {
	progress := g.Session.Progress
	game := g.Session.Game

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", progress.Score), x, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d", progress.Level), x, y+20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES %d", progress.Lines), x, y+40)

	ebitenutil.DebugPrintAt(screen, "NEXT", x, y+80)
	for i, kind := range game.Preview(3) {
		drawPreview(screen, float32(x), float32(y+100+i*70), kind)
	}

	switch {
	case game.Phase() == tetris.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R to restart", x, y+320)
	case g.Session.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P to resume", x, y+320)
	}
}

func drawPreview(screen *ebiten.Image, x, y float32, kind tetris.Kind) {
	const size = CellSize / 2
	for _, off := range tetris.Offsets(kind, tetris.R0) {
		sx := x + float32((off.X+1)*size)
		sy := y + float32((1-off.Y)*size)
		vector.DrawFilledRect(screen, sx, sy, size, size, session.Color(kind.Color()), false)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Backend != nil {
		g.Backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
