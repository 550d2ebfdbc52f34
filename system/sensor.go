package system

import (
	"sync/atomic"

	"github.com/lixenwraith/lightbeam/component"
	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/engine"
	"github.com/lixenwraith/lightbeam/event"
	"github.com/lixenwraith/lightbeam/status"
)

// SensorSystem fills sensor meters while lit and drains them otherwise
// Crossing full or empty toggles the keyed crystals and the linked platform
type SensorSystem struct {
	world *engine.World

	enabled bool

	statLit *atomic.Int64
}

// NewSensorSystem creates a new sensor system
func NewSensorSystem(world *engine.World) engine.System {
	s := &SensorSystem{
		world:   world,
		statLit: world.Resources.Status.Ints.Get(status.KeySensorsLit),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *SensorSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *SensorSystem) Name() string {
	return "sensor"
}

// Priority returns the system's priority
func (s *SensorSystem) Priority() int {
	return constant.PrioritySensor
}

// EventTypes returns the event types SensorSystem handles
func (s *SensorSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventLevelTransition,
	}
}

// HandleEvent resets every sensor on level change
func (s *SensorSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventLevelTransition {
		return
	}
	for _, e := range s.world.Components.Sensor.GetAllEntities() {
		sensor, ok := s.world.Components.Sensor.GetComponent(e)
		if !ok {
			continue
		}
		sensor.Reset()
		s.world.Components.Sensor.SetComponent(e, sensor)
	}
	s.statLit.Store(0)
}

// Update integrates exposure into the meters
func (s *SensorSystem) Update() {
	if !s.enabled {
		return
	}

	var lit int64
	for _, e := range s.world.Components.Sensor.SortedEntities() {
		sensor, ok := s.world.Components.Sensor.GetComponent(e)
		if !ok {
			continue
		}

		hit := sensor.IsHit()
		if hit {
			sensor.Exposure++
			sensor.Meter += sensor.Rate
		} else {
			sensor.Meter -= sensor.Rate
		}

		if sensor.Meter > 1 {
			if !sensor.Active {
				s.toggle(e, &sensor, hit)
				sensor.Active = true
			}
			sensor.Meter = 1
		} else if sensor.Meter < 0 {
			if sensor.Active {
				s.toggle(e, &sensor, hit)
				sensor.Active = false
			}
			sensor.Meter = 0
		}

		if sensor.Active {
			lit++
		}
		s.world.Components.Sensor.SetComponent(e, sensor)
	}
	s.statLit.Store(lit)
}

// toggle publishes the crystal flip, platform state change and button sound
func (s *SensorSystem) toggle(e core.Entity, sensor *component.SensorComponent, hit bool) {
	s.world.PushEvent(event.EventSensorToggled, &event.SensorToggledPayload{
		Sensor: e,
		Active: hit,
	})
	s.world.PushEvent(event.EventCrystalToggle, &event.CrystalTogglePayload{
		Key: sensor.Toggle,
	})

	state := component.PlatformPaused
	if hit {
		state = component.PlatformPlaying
	}
	if sensor.PlatformID != constant.NoPlatform {
		s.world.PushEvent(event.EventPlatformStateChange, &event.PlatformStatePayload{
			ID:    sensor.PlatformID,
			State: state,
		})
	}

	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{
		SoundType: core.SoundButton,
	})
}
