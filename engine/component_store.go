package engine

import (
	"github.com/lixenwraith/lightbeam/component"
)

// ComponentStore holds typed pointers to every component store
// Initialized once with the world; pointers remain valid for application lifetime
type ComponentStore struct {
	// Beam
	Beam      *Store[component.BeamSourceComponent]
	Playback  *Store[component.PlaybackStateComponent]
	Segment   *Store[component.SegmentComponent]
	Transform *Store[component.TransformComponent]

	// Level
	Sensor     *Store[component.SensorComponent]
	Mirror     *Store[component.MirrorComponent]
	Terminator *Store[component.TerminatorComponent]
	Wall       *Store[component.WallComponent]
	Crystal    *Store[component.CrystalComponent]
	Platform   *Store[component.PlatformComponent]
	Emitter    *Store[component.EmitterComponent]
	Inventory  *Store[component.InventoryComponent]

	// Effect
	Spark *Store[component.SparkComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Beam:       NewStore[component.BeamSourceComponent](),
		Playback:   NewStore[component.PlaybackStateComponent](),
		Segment:    NewStore[component.SegmentComponent](),
		Transform:  NewStore[component.TransformComponent](),
		Sensor:     NewStore[component.SensorComponent](),
		Mirror:     NewStore[component.MirrorComponent](),
		Terminator: NewStore[component.TerminatorComponent](),
		Wall:       NewStore[component.WallComponent](),
		Crystal:    NewStore[component.CrystalComponent](),
		Platform:   NewStore[component.PlatformComponent](),
		Emitter:    NewStore[component.EmitterComponent](),
		Inventory:  NewStore[component.InventoryComponent](),
		Spark:      NewStore[component.SparkComponent](),
	}
}

// all returns every store for uniform lifecycle operations
func (cs *ComponentStore) all() []AnyStore {
	return []AnyStore{
		cs.Beam, cs.Playback, cs.Segment, cs.Transform,
		cs.Sensor, cs.Mirror, cs.Terminator, cs.Wall, cs.Crystal, cs.Platform, cs.Emitter, cs.Inventory,
		cs.Spark,
	}
}
