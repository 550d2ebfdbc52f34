package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value and never dispatched
	EventNone EventType = iota

	// === Beam Event ===

	// EventBeamSpawnRequest asks for a new beam from the player emitter
	// Trigger: InputHandler (fire key), network clients
	// Consumer: ShootSystem | Payload: *BeamSpawnRequestPayload
	EventBeamSpawnRequest

	// EventBeamSpawned reports a beam entering the world
	// Trigger: BeamRegistry.SpawnBeam
	// Consumer: observers (replay, network) | Payload: *BeamSpawnedPayload
	EventBeamSpawned

	// EventBeamDespawned reports a beam leaving the world
	// Trigger: BeamRegistry.Despawn, level transition cleanup
	// Consumer: observers | Payload: *BeamDespawnedPayload
	EventBeamDespawned

	// EventBeamBounce signals a fresh bounce on a non-silent beam
	// Trigger: LightSystem diff step
	// Consumer: AudioSystem, SparkSystem | Payload: *BeamBouncePayload
	EventBeamBounce

	// === Level Event ===

	// EventSensorToggled signals a sensor meter crossing full or empty
	// Trigger: SensorSystem | Payload: *SensorToggledPayload
	EventSensorToggled

	// EventCrystalToggle flips every crystal matching the key
	// Trigger: SensorSystem on activation change
	// Consumer: CrystalSystem | Payload: *CrystalTogglePayload
	EventCrystalToggle

	// EventPlatformStateChange plays or pauses a platform
	// Trigger: SensorSystem on activation change
	// Consumer: PlatformSystem | Payload: *PlatformStatePayload
	EventPlatformStateChange

	// EventLevelTransition marks a level switch; transient state must reset
	// Trigger: level.Manager.Switch
	// Consumer: LightSystem, SensorSystem, CrystalSystem, PlatformSystem, ShootSystem, SparkSystem
	// Payload: *LevelTransitionPayload
	EventLevelTransition

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventAimChange rotates the player emitter
	// Trigger: InputHandler (arrow keys), network clients
	// Consumer: ShootSystem | Payload: *AimChangePayload
	EventAimChange
)

// GameEvent is the envelope pushed through the queue
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
