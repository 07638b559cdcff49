package pointset

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	nearPlaneZ  = 1.0
	focalLength = 400.0

	// keeps the orbit off the poles where LookAt degenerates
	maxPitch = math.Pi/2 - 0.01
)

// Camera orbits a target point. Yaw turns around the world Y axis, pitch
// tilts above or below the XZ plane.
type Camera struct {
	target   Point3d
	yaw      float64
	pitch    float64
	distance float64
}

func NewCamera(target Point3d, distance float64) *Camera {
	return &Camera{
		target:   target,
		distance: distance,
	}
}

// FrameCamera places a camera so the whole cloud fits on screen.
func FrameCamera(ext Extents) *Camera {
	size := ext.Size()
	if size == 0 {
		size = 1
	}
	return NewCamera(ext.Center(), size*2)
}

func (c *Camera) AddAngle(yaw, pitch float64) {
	c.yaw += yaw
	c.pitch = mgl64.Clamp(c.pitch+pitch, -maxPitch, maxPitch)
}

func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.distance *= factor
	if c.distance < nearPlaneZ*2 {
		c.distance = nearPlaneZ * 2
	}
}

func (c *Camera) Distance() float64 {
	return c.distance
}

func (c *Camera) GetPosition() Point3d {
	rot := mgl64.HomogRotate3DY(c.yaw).Mul4(mgl64.HomogRotate3DX(-c.pitch))
	offset := rot.Mul4x1(mgl64.Vec4{0, 0, c.distance, 0}).Vec3()
	return PointFromVec(c.target.Vec().Add(offset))
}

// ViewMatrix maps world space to camera space. The camera looks down -Z.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.GetPosition().Vec(), c.target.Vec(), mgl64.Vec3{0, 1, 0})
}

// Project returns screen coordinates for p relative to the screen centre
// (cx, cy). ok is false when p is at or behind the near plane.
func (c *Camera) Project(p Point3d, cx, cy float64) (sx, sy float64, ok bool) {
	return projectPoint(c.ViewMatrix(), p, cx, cy)
}

func projectPoint(view mgl64.Mat4, p Point3d, cx, cy float64) (float64, float64, bool) {
	v := view.Mul4x1(p.Vec().Vec4(1))
	depth := -v[2]
	if depth <= nearPlaneZ {
		return 0, 0, false
	}
	sx := focalLength*v[0]/depth + cx
	sy := -focalLength*v[1]/depth + cy // screen Y grows downwards
	return sx, sy, true
}
