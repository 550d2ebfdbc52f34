package light

import (
	"errors"

	"github.com/lixenwraith/lightbeam/component"
	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/physics"
	"github.com/lixenwraith/lightbeam/vmath"
)

// ErrPhysicsUnavailable is returned when no collision query service is attached
var ErrPhysicsUnavailable = errors.New("light: collision query unavailable")

// EntityKinds answers membership questions about struck colliders
type EntityKinds interface {
	IsMirror(e core.Entity) bool
	IsTerminator(e core.Entity) bool
}

// Playback is one freshly computed bounce chain
type Playback struct {
	Intersections []component.Intersection
	// EndPoint is where the beam stops in open space, valid when HasEnd
	EndPoint vmath.Vec2
	HasEnd   bool
	// Elapsed is the total distance the beam actually travelled
	Elapsed float64
}

// Points returns origin, every intersection point, then the end point if any
func (pb Playback) Points(origin vmath.Vec2) []vmath.Vec2 {
	pts := make([]vmath.Vec2, 0, len(pb.Intersections)+2)
	pts = append(pts, origin)
	for _, in := range pb.Intersections {
		pts = append(pts, in.Point)
	}
	if pb.HasEnd {
		pts = append(pts, pb.EndPoint)
	}
	return pts
}

// Play traces a beam through the collision world up to its travel budget
// Deterministic for identical geometry and source
func Play(q physics.Query, kinds EntityKinds, src component.BeamSourceComponent) (Playback, error) {
	if q == nil {
		return Playback{}, ErrPhysicsUnavailable
	}

	var pb Playback

	pos := src.Origin
	dir := src.Direction.Normalize()
	remaining := src.TravelBudget
	filter := src.Color.CollisionFilter()
	iterations := src.Color.BounceLimit() + 1
	exclude := core.NoEntity

	var mirrors []core.Entity

	for i := 0; i < iterations && len(pb.Intersections) < constant.MaxBeamIntersections; i++ {
		hit, ok := q.CastRay(pos, dir, remaining, filter, exclude)
		if !ok {
			pb.EndPoint = pos.Add(dir.Scale(remaining))
			pb.HasEnd = true
			pb.Elapsed += remaining
			break
		}

		// Started inside a collider, beam is blocked where it stands
		if hit.Distance < constant.HitEpsilon {
			break
		}

		pb.Elapsed += hit.Distance
		remaining -= hit.Distance
		pb.Intersections = append(pb.Intersections, component.Intersection{
			Target:   hit.Entity,
			Point:    hit.Point,
			Distance: pb.Elapsed,
		})

		if kinds != nil {
			if kinds.IsTerminator(hit.Entity) {
				break
			}
			// Opaque colors never reflect, so mirrors grant them nothing
			if src.Color.BounceLimit() > 0 && kinds.IsMirror(hit.Entity) && !containsEntity(mirrors, hit.Entity) {
				mirrors = append(mirrors, hit.Entity)
				iterations++
			}
		}

		pos = hit.Point
		dir = vmath.Reflect(dir, hit.Normal)
		exclude = hit.Entity
	}

	return pb, nil
}

// Preview traces the full path a beam would take, used for aiming
func Preview(q physics.Query, kinds EntityKinds, origin, dir vmath.Vec2, color core.LightColor) []vmath.Vec2 {
	pb, err := Play(q, kinds, component.BeamSourceComponent{
		Origin:       origin,
		Direction:    dir,
		TravelBudget: constant.PreviewTravelBudget,
		Color:        color,
	})
	if err != nil {
		return nil
	}
	return pb.Points(origin)
}

func containsEntity(list []core.Entity, e core.Entity) bool {
	for _, x := range list {
		if x == e {
			return true
		}
	}
	return false
}
