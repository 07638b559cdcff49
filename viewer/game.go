package viewer

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/pointset"
)

const (
	screenWidth  = 640
	screenHeight = 480

	dragSpeed = 1.0 / 200.0
	zoomStep  = 0.9
)

var backgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// Game renders a deduplicated point cloud and lets the user orbit it.
type Game struct {
	world        *World
	report       pointset.Report
	lastX, lastY int
	dragged      bool
}

func NewGame(report pointset.Report, ps *pointset.PointSet) *Game {
	g := &Game{report: report}

	log.Println("Initializing World...")
	g.world = NewWorld(ps)

	if ext, ok := ps.Extents(); ok {
		log.Printf("Cloud extents: min %v max %v", ext.Min, ext.Max)
	}
	log.Printf("Points: %d unique of %d lines", report.Unique, report.Total)
	log.Println("Initialization Complete.")

	return g
}

func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragged = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.dragged {
		x, y := ebiten.CursorPosition()
		g.world.Camera().AddAngle(
			-float64(x-g.lastX)*dragSpeed,
			float64(y-g.lastY)*dragSpeed,
		)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragged = false
	}

	if _, wheelY := ebiten.Wheel(); wheelY > 0 {
		g.world.Camera().Zoom(zoomStep)
	} else if wheelY < 0 {
		g.world.Camera().Zoom(1 / zoomStep)
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.world.PaintPoints(screen, screenWidth, screenHeight)
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"unique: %d  lines: %d  FPS: %0.2f",
		g.report.Unique, g.report.Total, ebiten.ActualFPS(),
	))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// Run opens the window and blocks until it is closed.
func Run(report pointset.Report, ps *pointset.PointSet) error {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("pointset viewer")
	return ebiten.RunGame(NewGame(report, ps))
}
