package system

import (
	"github.com/lixenwraith/lightbeam/component"
	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/engine"
	"github.com/lixenwraith/lightbeam/event"
	"github.com/lixenwraith/lightbeam/vmath"
)

// PlatformSystem moves platforms back and forth between their endpoints while playing
// Runs before LightSystem so beams raycast against settled positions
type PlatformSystem struct {
	world *engine.World
}

// NewPlatformSystem creates a new platform system
func NewPlatformSystem(world *engine.World) engine.System {
	s := &PlatformSystem{world: world}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *PlatformSystem) Init() {}

// Name returns system's name
func (s *PlatformSystem) Name() string {
	return "platform"
}

// Priority returns the system's priority
func (s *PlatformSystem) Priority() int {
	return constant.PriorityPlatform
}

// EventTypes returns the event types PlatformSystem handles
func (s *PlatformSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPlatformStateChange,
		event.EventLevelTransition,
	}
}

// HandleEvent plays or pauses platforms by id, or rewinds them on level change
func (s *PlatformSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPlatformStateChange:
		payload, ok := ev.Payload.(*event.PlatformStatePayload)
		if !ok {
			return
		}
		for _, e := range s.world.Components.Platform.GetAllEntities() {
			p, ok := s.world.Components.Platform.GetComponent(e)
			if !ok || p.ID != payload.ID {
				continue
			}
			p.State = payload.State
			s.world.Components.Platform.SetComponent(e, p)
		}

	case event.EventLevelTransition:
		for _, e := range s.world.Components.Platform.GetAllEntities() {
			p, ok := s.world.Components.Platform.GetComponent(e)
			if !ok {
				continue
			}
			p.State = p.InitState
			p.Progress = 0
			p.Forward = true
			s.place(e, p)
		}
	}
}

// Update advances playing platforms by speed times the fixed step
func (s *PlatformSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime.Seconds()
	if dt <= 0 {
		return
	}

	for _, e := range s.world.Components.Platform.SortedEntities() {
		p, ok := s.world.Components.Platform.GetComponent(e)
		if !ok || p.State != component.PlatformPlaying {
			continue
		}

		span := vmath.Distance(p.From, p.To)
		if span <= 0 {
			continue
		}
		step := p.Speed * dt / span

		if p.Forward {
			p.Progress += step
			if p.Progress >= 1 {
				p.Progress = 1
				p.Forward = false
			}
		} else {
			p.Progress -= step
			if p.Progress <= 0 {
				p.Progress = 0
				p.Forward = true
			}
		}
		s.place(e, p)
	}
}

func (s *PlatformSystem) place(e core.Entity, p component.PlatformComponent) {
	s.world.Components.Platform.SetComponent(e, p)
	if space := s.world.Resources.Physics.Space; space != nil {
		center := p.Position()
		space.MoveBox(e, center.Sub(p.HalfExtent), center.Add(p.HalfExtent))
	}
}
