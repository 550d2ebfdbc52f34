package system

import (
	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/engine"
	"github.com/lixenwraith/lightbeam/event"
)

// AudioSystem consumes bounce and sound request events and plays audio
// Decouples game systems from direct audio engine access
type AudioSystem struct {
	world  *engine.World
	player engine.AudioPlayer

	enabled bool
}

// NewAudioSystem creates an audio system with the world's player
// The player may be nil if audio is disabled
func NewAudioSystem(world *engine.World) engine.System {
	var player engine.AudioPlayer
	if world.Resources.Audio != nil {
		player = world.Resources.Audio.Player
	}

	s := &AudioSystem{
		world:  world,
		player: player,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *AudioSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return constant.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBeamBounce,
		event.EventSoundRequest,
	}
}

// HandleEvent maps bounces to pitched variants and forwards explicit requests
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if !s.enabled || s.player == nil {
		return
	}

	switch ev.Type {
	case event.EventBeamBounce:
		payload, ok := ev.Payload.(*event.BeamBouncePayload)
		if !ok {
			return
		}
		sound := core.SoundBounce
		if payload.Reflect {
			sound = core.SoundReflect
		}
		s.player.Play(sound, BounceVariant(payload.BounceIndex))

	case event.EventSoundRequest:
		if payload, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			s.player.Play(payload.SoundType, payload.Variant)
		}
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}

// BounceVariant clamps a bounce index into the available pitch variants
func BounceVariant(index int) int {
	if index < 0 {
		return 0
	}
	return min(index, core.BounceVariants-1)
}
