// Package level builds level geometry into the world and switches between levels
package level

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/lightbeam/component"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/engine"
	"github.com/lixenwraith/lightbeam/event"
	"github.com/lixenwraith/lightbeam/status"
	"github.com/lixenwraith/lightbeam/system"
)

// ErrUnknownLevel is returned for names not registered with the manager
var ErrUnknownLevel = errors.New("unknown level")

// Manager owns the level catalogue and the geometry of the loaded level
type Manager struct {
	world   *engine.World
	levels  map[string]Definition
	order   []string
	current string
}

// NewManager creates a manager over defs, or the builtin levels when none are given
func NewManager(world *engine.World, defs ...Definition) *Manager {
	if len(defs) == 0 {
		defs = Builtin()
	}
	m := &Manager{
		world:  world,
		levels: make(map[string]Definition, len(defs)),
		order:  make([]string, 0, len(defs)),
	}
	for _, d := range defs {
		if _, dup := m.levels[d.Name]; !dup {
			m.order = append(m.order, d.Name)
		}
		m.levels[d.Name] = d
	}
	return m
}

// Names returns level names in play order
func (m *Manager) Names() []string {
	result := make([]string, len(m.order))
	copy(result, m.order)
	return result
}

// Current returns the loaded level name, empty before the first Load
func (m *Manager) Current() string {
	return m.current
}

// Load builds a level without announcing a transition, used for the first level
// Must not be called from inside a system update
func (m *Manager) Load(name string) error {
	def, ok := m.levels[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	m.world.RunSafe(func() {
		m.build(def)
	})
	return nil
}

// Switch replaces the loaded level and publishes EventLevelTransition
// Beams, sensors, crystals and platforms reset when the event dispatches on the next tick
// Must not be called from inside a system update
func (m *Manager) Switch(name string) error {
	def, ok := m.levels[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	m.world.RunSafe(func() {
		from := m.current
		m.world.PushEvent(event.EventLevelTransition, &event.LevelTransitionPayload{From: from, To: name})
		m.build(def)
		log.Printf("level: %q -> %q", from, name)
	})
	return nil
}

// Next switches to the level after the current one, wrapping around
func (m *Manager) Next() error {
	if len(m.order) == 0 {
		return ErrUnknownLevel
	}
	idx := 0
	for i, n := range m.order {
		if n == m.current {
			idx = (i + 1) % len(m.order)
			break
		}
	}
	return m.Switch(m.order[idx])
}

// clear destroys every level-authored entity, leaving beams and their segments alone
func (m *Manager) clear() {
	cs := &m.world.Components
	var doomed []core.Entity
	doomed = append(doomed, cs.Wall.GetAllEntities()...)
	doomed = append(doomed, cs.Mirror.GetAllEntities()...)
	doomed = append(doomed, cs.Terminator.GetAllEntities()...)
	doomed = append(doomed, cs.Sensor.GetAllEntities()...)
	doomed = append(doomed, cs.Crystal.GetAllEntities()...)
	doomed = append(doomed, cs.Platform.GetAllEntities()...)
	doomed = append(doomed, cs.Emitter.GetAllEntities()...)
	for _, e := range doomed {
		m.world.DestroyEntity(e)
	}
}

func (m *Manager) build(def Definition) {
	m.clear()

	w := m.world
	space := w.Resources.Physics.Space

	for _, b := range def.Walls {
		e := w.CreateEntity()
		w.Components.Wall.SetComponent(e, component.WallComponent{Min: b.Min, Max: b.Max})
		space.AddBox(e, b.Min, b.Max, core.TerrainFilter)
	}

	for _, b := range def.Mirrors {
		e := w.CreateEntity()
		w.Components.Mirror.SetComponent(e, component.MirrorComponent{})
		space.AddBox(e, b.Min, b.Max, core.TerrainFilter)
	}

	for _, b := range def.Terminators {
		e := w.CreateEntity()
		w.Components.Terminator.SetComponent(e, component.TerminatorComponent{})
		space.AddBox(e, b.Min, b.Max, core.TerrainFilter)
	}

	for _, s := range def.Sensors {
		e := w.CreateEntity()
		w.Components.Sensor.SetComponent(e, component.NewSensor(s.Toggle, s.ActivationMillis, s.PlatformID))
		space.AddBox(e, s.Min, s.Max, core.SensorFilter)
	}

	for _, c := range def.Crystals {
		e := w.CreateEntity()
		w.Components.Crystal.SetComponent(e, component.CrystalComponent{
			Key:        c.Key,
			Min:        c.Min,
			Max:        c.Max,
			InitActive: c.Active,
			Active:     c.Active,
		})
		space.AddBox(e, c.Min, c.Max, system.CrystalFilter(c.Key))
		space.SetEnabled(e, c.Active)
	}

	for _, p := range def.Platforms {
		state := component.PlatformPaused
		if p.Playing {
			state = component.PlatformPlaying
		}
		e := w.CreateEntity()
		w.Components.Platform.SetComponent(e, component.PlatformComponent{
			ID:         p.ID,
			From:       p.From,
			To:         p.To,
			HalfExtent: p.HalfExtent,
			Speed:      p.Speed,
			Forward:    true,
			State:      state,
			InitState:  state,
		})
		space.AddBox(e, p.From.Sub(p.HalfExtent), p.From.Add(p.HalfExtent), core.TerrainFilter)
	}

	player := w.CreateEntity()
	w.Components.Emitter.SetComponent(player, component.EmitterComponent{Position: def.Emitter, Aim: def.Aim})
	inv := component.InventoryComponent{}
	for _, c := range def.Allowed {
		if c < core.LightColorCount {
			inv.Allowed[c] = true
		}
	}
	if len(def.Allowed) > 0 {
		inv.Current = def.Allowed[0]
	}
	w.Components.Inventory.SetComponent(player, inv)

	w.Resources.Level.Name = def.Name
	w.Resources.Level.Min = def.Min
	w.Resources.Level.Max = def.Max
	w.Resources.Status.Strings.Get(status.KeyLevel).Store(def.Name)
	m.current = def.Name
}
