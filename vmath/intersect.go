package vmath

import "math"

// RaySegment returns the distance along the ray where it crosses segment ab
// dir must be a unit vector. Parallel and behind-origin crossings miss
func RaySegment(origin, dir, a, b Vec2) (float64, bool) {
	edge := b.Sub(a)
	denom := dir.Cross(edge)
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}

	diff := a.Sub(origin)
	t := diff.Cross(edge) / denom
	u := diff.Cross(dir) / denom

	if t < 0 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}

// SegmentNormal returns the unit normal of segment ab facing against dir
func SegmentNormal(a, b, dir Vec2) Vec2 {
	n := b.Sub(a).Perp().Normalize()
	if n.Dot(dir) > 0 {
		return n.Scale(-1)
	}
	return n
}

// RayAABB slab test against an axis-aligned box
// Returns entry distance and the face normal; origins inside the box report distance 0
func RayAABB(origin, dir, min, max Vec2) (float64, Vec2, bool) {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)
	var normal Vec2

	axes := [2]struct {
		o, d, lo, hi float64
		n            Vec2
	}{
		{origin.X, dir.X, min.X, max.X, Vec2{1, 0}},
		{origin.Y, dir.Y, min.Y, max.Y, Vec2{0, 1}},
	}

	for _, ax := range axes {
		if math.Abs(ax.d) < 1e-12 {
			if ax.o < ax.lo || ax.o > ax.hi {
				return 0, Vec2{}, false
			}
			continue
		}

		t1 := (ax.lo - ax.o) / ax.d
		t2 := (ax.hi - ax.o) / ax.d
		n := ax.n.Scale(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			n = ax.n
		}

		if t1 > tNear {
			tNear = t1
			normal = n
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar || tFar < 0 {
			return 0, Vec2{}, false
		}
	}

	if tNear < 0 {
		// Origin inside the box
		return 0, dir.Scale(-1), true
	}
	return tNear, normal, true
}
