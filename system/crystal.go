package system

import (
	"github.com/lixenwraith/lightbeam/component"
	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/engine"
	"github.com/lixenwraith/lightbeam/event"
)

// CrystalSystem flips crystal terrain on and off when a keyed sensor toggles
type CrystalSystem struct {
	world *engine.World
}

// NewCrystalSystem creates a new crystal system
func NewCrystalSystem(world *engine.World) engine.System {
	s := &CrystalSystem{world: world}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *CrystalSystem) Init() {}

// Name returns system's name
func (s *CrystalSystem) Name() string {
	return "crystal"
}

// Priority returns the system's priority
func (s *CrystalSystem) Priority() int {
	return constant.PriorityCrystal
}

// EventTypes returns the event types CrystalSystem handles
func (s *CrystalSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCrystalToggle,
		event.EventLevelTransition,
	}
}

// HandleEvent toggles matching crystals or restores initial state on level change
func (s *CrystalSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventCrystalToggle:
		if payload, ok := ev.Payload.(*event.CrystalTogglePayload); ok {
			s.toggle(payload.Key)
		}
	case event.EventLevelTransition:
		for _, e := range s.world.Components.Crystal.GetAllEntities() {
			crystal, ok := s.world.Components.Crystal.GetComponent(e)
			if !ok {
				continue
			}
			crystal.Active = crystal.InitActive
			s.apply(e, crystal)
		}
	}
}

// Update implements System interface (event driven, no tick logic)
func (s *CrystalSystem) Update() {}

func (s *CrystalSystem) toggle(key component.CrystalKey) {
	for _, e := range s.world.Components.Crystal.SortedEntities() {
		crystal, ok := s.world.Components.Crystal.GetComponent(e)
		if !ok || crystal.Key != key {
			continue
		}
		crystal.Active = !crystal.Active
		s.apply(e, crystal)
	}
}

func (s *CrystalSystem) apply(e core.Entity, crystal component.CrystalComponent) {
	s.world.Components.Crystal.SetComponent(e, crystal)
	if space := s.world.Resources.Physics.Space; space != nil {
		space.SetEnabled(e, crystal.Active)
	}
}

// CrystalFilter returns the collider filter of a crystal; blue crystals let blue light through
func CrystalFilter(key component.CrystalKey) core.CollisionFilter {
	if key.Color == core.LightBlue {
		return core.CollisionFilter{
			Memberships: core.GroupTerrain,
			Filter:      core.GroupAll &^ core.GroupBlueRay,
		}
	}
	return core.TerrainFilter
}
