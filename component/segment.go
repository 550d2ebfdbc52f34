package component

import (
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/vmath"
)

// TransformComponent places a segment: center, rotation in radians, and length along its axis
type TransformComponent struct {
	Center   vmath.Vec2
	Rotation float64
	Length   float64
}

// Endpoints returns the two ends of the transformed unit segment
func (t TransformComponent) Endpoints() (vmath.Vec2, vmath.Vec2) {
	half := vmath.FromAngle(t.Rotation).Scale(t.Length * 0.5)
	return t.Center.Sub(half), t.Center.Add(half)
}

// SegmentComponent is one pooled visual piece of a beam path
type SegmentComponent struct {
	Beam    core.Entity
	Color   core.LightColor
	Index   int
	Visible bool
	// Solid segments carry a collider that other beams can hit
	Solid bool
}
