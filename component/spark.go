package component

import (
	"time"

	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/vmath"
)

// SparkComponent is a short-lived particle thrown off a fresh bounce
type SparkComponent struct {
	Position  vmath.Vec2
	Velocity  vmath.Vec2
	Color     core.LightColor
	Remaining time.Duration
	Duration  time.Duration
}

// Fade returns the remaining life fraction used for alpha
func (s SparkComponent) Fade() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Remaining) / float64(s.Duration)
}
