package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/pointset"
)

type World struct {
	points []pointset.Point3d
	camera *pointset.Camera
}

func NewWorld(ps *pointset.PointSet) *World {
	w := &World{points: ps.Points()}

	ext, ok := ps.Extents()
	if !ok {
		w.camera = pointset.NewCamera(pointset.Point3d{}, 10)
		return w
	}
	w.camera = pointset.FrameCamera(ext)
	return w
}

func (w *World) Camera() *pointset.Camera {
	return w.camera
}

func (w *World) PaintPoints(screen *ebiten.Image, xsize, ysize int) {
	projected := w.camera.ProjectPoints(w.points, float64(xsize)/2, float64(ysize)/2)
	for _, sp := range projected {
		drawPoint(screen, sp, w.camera.Distance())
	}
}
