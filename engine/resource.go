package engine

import (
	"time"

	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/event"
	"github.com/lixenwraith/lightbeam/physics"
	"github.com/lixenwraith/lightbeam/status"
	"github.com/lixenwraith/lightbeam/vmath"
)

// Resource holds singleton resources, accessed via World.Resources
type Resource struct {
	Time    *TimeResource
	Event   *EventQueueResource
	Physics *PhysicsResource
	Level   *LevelResource

	// Telemetry
	Status *status.Registry

	// Bridged from services, may be nil
	Audio *AudioResource
}

// TimeResource wraps time data for systems
// Updated by the ClockScheduler at the start of every tick
type TimeResource struct {
	// GameTime is the current time in the game world (affected by pause)
	GameTime time.Time

	// DeltaTime is the fixed step duration
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under world lock to prevent races with systems reads
func (tr *TimeResource) Update(gameTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// PhysicsResource exposes the collision space
// A nil Space means collision queries are unavailable and beams pause
type PhysicsResource struct {
	Space *physics.Space
}

// Query returns the collision query service, nil when unavailable
func (p *PhysicsResource) Query() physics.Query {
	if p == nil || p.Space == nil {
		return nil
	}
	return p.Space
}

// LevelResource describes the loaded level
type LevelResource struct {
	Name     string
	Min, Max vmath.Vec2
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(sound core.SoundType, variant int) bool
	IsRunning() bool
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}
