package system

import (
	"github.com/lixenwraith/lightbeam/engine"
	"github.com/lixenwraith/lightbeam/light"
)

// Pipeline bundles the beam registry and segment pool shared by the light systems
type Pipeline struct {
	Registry *BeamRegistry
	Cache    *light.SegmentCache
}

// NewPipeline creates the registry and pool and adds every game system to world
// Create the ClockScheduler afterwards so handlers are registered
func NewPipeline(world *engine.World, lightSpeed float64, seed int64) *Pipeline {
	cache := light.NewSegmentCache(NewSegmentStore(world))
	registry := NewBeamRegistry(world, cache, lightSpeed)

	world.AddSystem(NewShootSystem(world, registry))
	world.AddSystem(NewBeamTickSystem(registry))
	world.AddSystem(NewPlatformSystem(world))
	world.AddSystem(NewLightSystem(world, registry, cache))
	world.AddSystem(NewSensorSystem(world))
	world.AddSystem(NewCrystalSystem(world))
	world.AddSystem(NewSparkSystem(world, seed))
	world.AddSystem(NewAudioSystem(world))
	world.AddSystem(NewStatusSystem(world))

	return &Pipeline{
		Registry: registry,
		Cache:    cache,
	}
}
