package pointset

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// PointSet holds unique points. Membership is exact float equality on each
// component: 0 and -0 collapse, NaN never matches anything.
type PointSet struct {
	points map[mgl64.Vec3]struct{}
}

func NewPointSet() *PointSet {
	return &PointSet{points: make(map[mgl64.Vec3]struct{})}
}

// Add inserts p and reports whether it was not already present.
func (ps *PointSet) Add(p Point3d) bool {
	key := p.Vec()
	if _, ok := ps.points[key]; ok {
		return false
	}
	ps.points[key] = struct{}{}
	return true
}

func (ps *PointSet) Contains(p Point3d) bool {
	_, ok := ps.points[p.Vec()]
	return ok
}

func (ps *PointSet) Len() int {
	return len(ps.points)
}

// Points returns the members sorted by X, then Y, then Z.
func (ps *PointSet) Points() []Point3d {
	out := make([]Point3d, 0, len(ps.points))
	for v := range ps.points {
		out = append(out, PointFromVec(v))
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
	return out
}

type Extents struct {
	Min Point3d
	Max Point3d
}

func (e Extents) Center() Point3d {
	return PointFromVec(e.Min.Vec().Add(e.Max.Vec()).Mul(0.5))
}

// Size returns the length of the longest side of the bounding box.
func (e Extents) Size() float64 {
	d := e.Max.Vec().Sub(e.Min.Vec())
	return max(d[0], d[1], d[2])
}

// Extents returns the axis-aligned bounds of the set. NaN and infinite
// components are left out; an axis with no finite values spans [0, 0]. ok
// is false for an empty set.
func (ps *PointSet) Extents() (ext Extents, ok bool) {
	if len(ps.points) == 0 {
		return Extents{}, false
	}

	lo := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for v := range ps.points {
		for axis, c := range v {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				continue
			}
			if c < lo[axis] {
				lo[axis] = c
			}
			if c > hi[axis] {
				hi[axis] = c
			}
		}
	}

	for axis := range lo {
		if lo[axis] > hi[axis] {
			lo[axis], hi[axis] = 0, 0
		}
	}
	return Extents{Min: PointFromVec(lo), Max: PointFromVec(hi)}, true
}
