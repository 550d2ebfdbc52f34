package system

import (
	"github.com/lixenwraith/lightbeam/component"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/engine"
	"github.com/lixenwraith/lightbeam/vmath"
)

// SegmentStore backs the segment pool with world entities and colliders
type SegmentStore struct {
	world *engine.World
}

// NewSegmentStore returns the world-backed storage for light.SegmentCache
func NewSegmentStore(world *engine.World) *SegmentStore {
	return &SegmentStore{world: world}
}

// SpawnSegment creates a hidden segment; solid colors get a disabled collider
func (s *SegmentStore) SpawnSegment(seg component.SegmentComponent) core.Entity {
	e := s.world.CreateEntity()
	s.world.Components.Segment.SetComponent(e, seg)
	s.world.Components.Transform.SetComponent(e, component.TransformComponent{})

	if !seg.Solid {
		return e
	}
	filter, ok := seg.Color.SegmentFilter()
	if !ok {
		return e
	}
	if space := s.world.Resources.Physics.Space; space != nil {
		space.AddSegment(e, vmath.Vec2{}, vmath.Vec2{}, filter)
		space.SetEnabled(e, false)
	}
	return e
}

func (s *SegmentStore) Segment(e core.Entity) (component.SegmentComponent, component.TransformComponent, bool) {
	seg, ok := s.world.Components.Segment.GetComponent(e)
	if !ok {
		return seg, component.TransformComponent{}, false
	}
	tr, ok := s.world.Components.Transform.GetComponent(e)
	return seg, tr, ok
}

// SetSegment stores both components and keeps a solid segment's collider on its span
func (s *SegmentStore) SetSegment(e core.Entity, seg component.SegmentComponent, tr component.TransformComponent) {
	s.world.Components.Segment.SetComponent(e, seg)
	s.world.Components.Transform.SetComponent(e, tr)

	if !seg.Solid {
		return
	}
	space := s.world.Resources.Physics.Space
	if space == nil {
		return
	}
	a, b := tr.Endpoints()
	space.MoveSegment(e, a, b)
	space.SetEnabled(e, seg.Visible)
}

// isSolidSegment reports whether e is a light segment other beams can bounce off
func isSolidSegment(world *engine.World, e core.Entity) bool {
	seg, ok := world.Components.Segment.GetComponent(e)
	return ok && seg.Solid && seg.Visible
}

// setSensorHit forwards a hit or unhit notice to e when it is a sensor
func setSensorHit(world *engine.World, e core.Entity, color core.LightColor, hit bool) {
	sensor, ok := world.Components.Sensor.GetComponent(e)
	if !ok {
		return
	}
	sensor.SetHit(color, hit)
	world.Components.Sensor.SetComponent(e, sensor)
}
