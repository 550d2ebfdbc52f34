package system

import (
	"github.com/lixenwraith/lightbeam/component"
	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/engine"
	"github.com/lixenwraith/lightbeam/event"
	"github.com/lixenwraith/lightbeam/light"
	"github.com/lixenwraith/lightbeam/vmath"
)

// ShootSystem fires beams from the player emitter and keeps the aiming preview current
// Each allowed color can be fired once per level
type ShootSystem struct {
	world    *engine.World
	registry *BeamRegistry
}

// NewShootSystem creates a new shoot system
func NewShootSystem(world *engine.World, registry *BeamRegistry) engine.System {
	s := &ShootSystem{
		world:    world,
		registry: registry,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *ShootSystem) Init() {}

// Name returns system's name
func (s *ShootSystem) Name() string {
	return "shoot"
}

// Priority returns the system's priority
func (s *ShootSystem) Priority() int {
	return constant.PriorityShoot
}

// EventTypes returns the event types ShootSystem handles
func (s *ShootSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBeamSpawnRequest,
		event.EventAimChange,
		event.EventLevelTransition,
	}
}

// HandleEvent processes fire, aim and level reset requests
func (s *ShootSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventBeamSpawnRequest:
		if payload, ok := ev.Payload.(*event.BeamSpawnRequestPayload); ok {
			s.fire(payload.Color)
		}

	case event.EventAimChange:
		if payload, ok := ev.Payload.(*event.AimChangePayload); ok {
			s.aim(payload.Delta)
		}

	case event.EventLevelTransition:
		for _, e := range s.world.Components.Inventory.GetAllEntities() {
			inv, ok := s.world.Components.Inventory.GetComponent(e)
			if !ok {
				continue
			}
			inv.Refill()
			s.world.Components.Inventory.SetComponent(e, inv)
		}
	}
}

// Update refreshes the preview path for every emitter
func (s *ShootSystem) Update() {
	q := s.world.Resources.Physics.Query()
	for _, e := range s.world.Components.Emitter.GetAllEntities() {
		emitter, ok := s.world.Components.Emitter.GetComponent(e)
		if !ok {
			continue
		}
		color := core.LightGreen
		if inv, ok := s.world.Components.Inventory.GetComponent(e); ok {
			color = inv.Current
		}
		emitter.Preview = light.Preview(q, s.world, emitter.Position, vmath.FromAngle(emitter.Aim), color)
		s.world.Components.Emitter.SetComponent(e, emitter)
	}
}

// player returns the first entity carrying both an emitter and an inventory
func (s *ShootSystem) player() (core.Entity, component.EmitterComponent, component.InventoryComponent, bool) {
	for _, e := range s.world.Components.Inventory.SortedEntities() {
		emitter, ok := s.world.Components.Emitter.GetComponent(e)
		if !ok {
			continue
		}
		inv, _ := s.world.Components.Inventory.GetComponent(e)
		return e, emitter, inv, true
	}
	return core.NoEntity, component.EmitterComponent{}, component.InventoryComponent{}, false
}

func (s *ShootSystem) fire(color core.LightColor) {
	e, emitter, inv, ok := s.player()
	if !ok {
		return
	}
	inv.Current = color
	if !inv.Consume(color) {
		s.world.Components.Inventory.SetComponent(e, inv)
		return
	}
	s.world.Components.Inventory.SetComponent(e, inv)
	s.registry.SpawnBeam(emitter.Position, vmath.FromAngle(emitter.Aim), color)
}

func (s *ShootSystem) aim(delta float64) {
	e, emitter, _, ok := s.player()
	if !ok {
		return
	}
	emitter.Aim += delta
	s.world.Components.Emitter.SetComponent(e, emitter)
}
