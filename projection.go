package pointset

import "sort"

// ScreenPoint is a projected point with its distance from the camera.
type ScreenPoint struct {
	X, Y  float64
	Depth float64
	Point Point3d
}

// ProjectPoints transforms points into screen space around (cx, cy). Points
// behind the near plane are dropped. The result is ordered farthest first so
// it can be painted front over back.
func (c *Camera) ProjectPoints(points []Point3d, cx, cy float64) []ScreenPoint {
	view := c.ViewMatrix()
	eye := c.GetPosition()

	out := make([]ScreenPoint, 0, len(points))
	for _, p := range points {
		sx, sy, ok := projectPoint(view, p, cx, cy)
		if !ok {
			continue
		}
		out = append(out, ScreenPoint{
			X:     sx,
			Y:     sy,
			Depth: p.DistanceTo(eye),
			Point: p,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Depth > out[j].Depth
	})
	return out
}
