package system

import (
	"sync/atomic"

	"github.com/lixenwraith/lightbeam/component"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/engine"
	"github.com/lixenwraith/lightbeam/event"
	"github.com/lixenwraith/lightbeam/light"
	"github.com/lixenwraith/lightbeam/status"
	"github.com/lixenwraith/lightbeam/vmath"
)

// BeamRegistry owns beam lifecycles: spawn, budget growth and despawn
// Chain state is never touched here beyond dropping it with the beam
type BeamRegistry struct {
	world *engine.World
	cache *light.SegmentCache
	speed float64

	statBeams *atomic.Int64
}

// NewBeamRegistry creates a registry growing budgets by speed per step
func NewBeamRegistry(world *engine.World, cache *light.SegmentCache, speed float64) *BeamRegistry {
	return &BeamRegistry{
		world:     world,
		cache:     cache,
		speed:     speed,
		statBeams: world.Resources.Status.Ints.Get(status.KeyBeams),
	}
}

// SpawnBeam creates a beam with an empty chain and zero budget
func (r *BeamRegistry) SpawnBeam(origin, direction vmath.Vec2, color core.LightColor) core.Entity {
	dir := direction.Normalize()
	e := r.world.CreateEntity()
	r.world.Components.Beam.SetComponent(e, component.BeamSourceComponent{
		Origin:    origin,
		Direction: dir,
		Color:     color,
	})
	r.world.Components.Playback.SetComponent(e, component.PlaybackStateComponent{})
	r.statBeams.Store(int64(r.world.Components.Beam.CountEntities()))

	r.world.PushEvent(event.EventBeamSpawned, &event.BeamSpawnedPayload{
		Beam:      e,
		Color:     color,
		Origin:    origin,
		Direction: dir,
	})
	return e
}

// Tick advances every beam's travel budget by one step of light speed
func (r *BeamRegistry) Tick() {
	for _, e := range r.world.Components.Beam.SortedEntities() {
		src, ok := r.world.Components.Beam.GetComponent(e)
		if !ok {
			continue
		}
		src.TravelBudget += r.speed
		r.world.Components.Beam.SetComponent(e, src)
	}
}

// Despawn removes a beam, clears the hits it holds and parks its segments for reuse
func (r *BeamRegistry) Despawn(beam core.Entity) {
	src, ok := r.world.Components.Beam.GetComponent(beam)
	if !ok {
		return
	}

	if pb, ok := r.world.Components.Playback.GetComponent(beam); ok {
		for _, slot := range pb.Slots {
			if slot.Valid {
				setSensorHit(r.world, slot.Target, src.Color, false)
			}
		}
	}

	r.cache.Release(beam)
	r.world.DestroyEntity(beam)
	r.statBeams.Store(int64(r.world.Components.Beam.CountEntities()))

	r.world.PushEvent(event.EventBeamDespawned, &event.BeamDespawnedPayload{Beam: beam})
}

// DespawnNonPersistent removes every beam whose color does not survive level transitions
func (r *BeamRegistry) DespawnNonPersistent() {
	for _, e := range r.world.Components.Beam.SortedEntities() {
		src, ok := r.world.Components.Beam.GetComponent(e)
		if !ok || src.Color.Persistent() {
			continue
		}
		r.Despawn(e)
	}
}

// Beams returns live beams in creation order
func (r *BeamRegistry) Beams() []core.Entity {
	return r.world.Components.Beam.SortedEntities()
}

// Speed returns the budget growth per step
func (r *BeamRegistry) Speed() float64 {
	return r.speed
}
