package physics

import (
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/vmath"
)

// Hit is the nearest collider struck by a ray
type Hit struct {
	Entity   core.Entity
	Point    vmath.Vec2
	Normal   vmath.Vec2 // Unit normal facing the incoming ray
	Distance float64
}

// Query is the collision service consumed by beam playback
type Query interface {
	// CastRay returns the nearest collider within maxDist whose groups interact with filter
	// exclude skips one collider; pass core.NoEntity to consider all
	CastRay(origin, dir vmath.Vec2, maxDist float64, filter core.CollisionFilter, exclude core.Entity) (Hit, bool)
}
