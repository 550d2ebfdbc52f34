package component

import (
	"github.com/lixenwraith/lightbeam/vmath"
)

// MirrorComponent marks a collider that grants one extra bounce per beam
type MirrorComponent struct{}

// TerminatorComponent marks an absorptive collider that ends propagation
type TerminatorComponent struct{}

// WallComponent is static terrain drawn as an axis-aligned box
type WallComponent struct {
	Min, Max vmath.Vec2
}

// CrystalComponent is toggleable terrain keyed by color and id
type CrystalComponent struct {
	Key        CrystalKey
	Min, Max   vmath.Vec2
	InitActive bool
	Active     bool
}

// PlatformState drives platform motion
type PlatformState uint8

const (
	PlatformPaused PlatformState = iota
	PlatformPlaying
)

// PlatformComponent is terrain that travels back and forth between two points
type PlatformComponent struct {
	ID       int
	From, To vmath.Vec2
	// HalfExtent is the box half size around the current position
	HalfExtent vmath.Vec2
	// Speed in world units per second
	Speed float64
	// Progress along From->To in [0,1]
	Progress  float64
	Forward   bool
	State     PlatformState
	InitState PlatformState
}

// Position returns the current platform center
func (p PlatformComponent) Position() vmath.Vec2 {
	return p.From.Add(p.To.Sub(p.From).Scale(p.Progress))
}

// EmitterComponent is the level-authored point where the player's beams start
type EmitterComponent struct {
	Position vmath.Vec2
	// Aim is the current aiming angle in radians
	Aim float64
	// Preview is the path a beam fired now would take
	Preview []vmath.Vec2
}
