package engine

import (
	"sync"

	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/event"
	"github.com/lixenwraith/lightbeam/physics"
	"github.com/lixenwraith/lightbeam/status"
)

// System is a unit of per-tick game logic
type System interface {
	// Init resets session state
	Init()
	// Name identifies the system in logs and metrics
	Name() string
	// Priority orders execution, lower values run first
	Priority() int
	// Update runs once per fixed step
	Update()
}

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources  *Resource
	Components ComponentStore

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world with an empty collision space and event queue
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Resources: &Resource{
			Time:    &TimeResource{},
			Event:   &EventQueueResource{Queue: event.NewEventQueue()},
			Physics: &PhysicsResource{Space: physics.NewSpace()},
			Level:   &LevelResource{},
			Status:  status.NewRegistry(),
		},
		Components: newComponentStore(),
		systems:    make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components and the collider associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.Components.all() {
		s.RemoveEntity(e)
	}
	if w.Resources.Physics != nil && w.Resources.Physics.Space != nil {
		w.Resources.Physics.Space.Remove(e)
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
// Used by ClockScheduler for event handler auto-registration
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// UpdateLocked runs all systems assuming the caller already holds updateMutex
func (w *World) UpdateLocked() {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update()
	}
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	return w.Resources.Time.FrameNumber
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.FrameNumber(),
	})
}

// IsMirror reports whether e is a mirror collider
func (w *World) IsMirror(e core.Entity) bool {
	return w.Components.Mirror.HasEntity(e)
}

// IsTerminator reports whether e absorbs beams
func (w *World) IsTerminator(e core.Entity) bool {
	return w.Components.Terminator.HasEntity(e)
}
