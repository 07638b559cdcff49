package pointset

import "github.com/go-gl/mathgl/mgl64"

type Point3d struct {
	X float64
	Y float64
	Z float64
}

// Vec returns the point as an mgl64.Vec3. The array form is comparable, so
// it doubles as the exact-equality key used by PointSet.
func (p Point3d) Vec() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

func PointFromVec(v mgl64.Vec3) Point3d {
	return Point3d{X: v[0], Y: v[1], Z: v[2]}
}

// DistanceTo
func (p Point3d) DistanceTo(other Point3d) float64 {
	return p.Vec().Sub(other.Vec()).Len()
}
