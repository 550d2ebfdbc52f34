package event

import (
	"github.com/lixenwraith/lightbeam/component"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/vmath"
)

// BeamSpawnRequestPayload selects the color to fire from the player emitter
type BeamSpawnRequestPayload struct {
	Color core.LightColor `json:"color"`
}

// AimChangePayload rotates the emitter by Delta radians
type AimChangePayload struct {
	Delta float64 `json:"delta"`
}

// BeamSpawnedPayload describes a new beam
type BeamSpawnedPayload struct {
	Beam      core.Entity     `json:"beam"`
	Color     core.LightColor `json:"color"`
	Origin    vmath.Vec2      `json:"origin"`
	Direction vmath.Vec2      `json:"direction"`
}

// BeamDespawnedPayload identifies a removed beam
type BeamDespawnedPayload struct {
	Beam core.Entity `json:"beam"`
}

// BeamBouncePayload describes a fresh bounce
type BeamBouncePayload struct {
	Beam        core.Entity     `json:"beam"`
	Target      core.Entity     `json:"target"`
	Point       vmath.Vec2      `json:"point"`
	Color       core.LightColor `json:"color"`
	BounceIndex int             `json:"bounce_index"`
	// Reflect is set when the struck entity is a solid light segment
	Reflect bool `json:"reflect"`
}

// SensorToggledPayload reports a sensor activation change
type SensorToggledPayload struct {
	Sensor core.Entity `json:"sensor"`
	Active bool        `json:"active"`
}

// CrystalTogglePayload selects the crystals to flip
type CrystalTogglePayload struct {
	Key component.CrystalKey `json:"key"`
}

// PlatformStatePayload plays or pauses platforms with a matching id
type PlatformStatePayload struct {
	ID    int                     `json:"id"`
	State component.PlatformState `json:"state"`
}

// LevelTransitionPayload names the outgoing and incoming level
type LevelTransitionPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SoundRequestPayload contains the sound type to play
type SoundRequestPayload struct {
	SoundType core.SoundType `json:"sound_type"`
	Variant   int            `json:"variant"`
}
