package viewer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/pointset"
)

const (
	minRadius = 1.0
	maxRadius = 4.0
)

var pointColor = color.RGBA{R: 255, G: 200, B: 0, A: 255}

// drawPoint paints one projected point. Nearer points are larger and brighter.
func drawPoint(screen *ebiten.Image, sp pointset.ScreenPoint, focus float64) {
	if sp.Depth <= 0 {
		return
	}
	scale := focus / sp.Depth

	radius := clamp(maxRadius*scale, minRadius, maxRadius)
	shade := clamp(scale, 0.3, 1.0)

	clr := color.RGBA{
		R: uint8(float64(pointColor.R) * shade),
		G: uint8(float64(pointColor.G) * shade),
		B: uint8(float64(pointColor.B) * shade),
		A: pointColor.A,
	}
	vector.DrawFilledCircle(screen, float32(sp.X), float32(sp.Y), float32(radius), clr, true)
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
