package component

import (
	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/core"
)

// CrystalKey selects the crystals a sensor toggles
type CrystalKey struct {
	Color core.LightColor
	ID    int
}

// SensorComponent accumulates light exposure and toggles crystals and platforms when full
type SensorComponent struct {
	// HitCounts tracks how many beams of each color currently end a bounce on the sensor
	HitCounts [core.LightColorCount]int

	// Meter is the stored light from 0 to 1
	Meter float64

	// Rate is the meter change per fixed step
	Rate float64

	Active     bool
	Toggle     CrystalKey
	PlatformID int

	// Exposure counts the steps the sensor has been lit
	Exposure int
}

// NewSensor creates a sensor that fills after activationMillis of continuous exposure
func NewSensor(toggle CrystalKey, activationMillis int, platformID int) SensorComponent {
	if activationMillis <= 0 {
		activationMillis = constant.DefaultSensorActivationMillis
	}
	return SensorComponent{
		Rate:       1.0 / float64(activationMillis) * (1000.0 / constant.TickHz),
		Toggle:     toggle,
		PlatformID: platformID,
	}
}

// IsHit reports whether any beam currently hits the sensor
func (s *SensorComponent) IsHit() bool {
	for _, n := range s.HitCounts {
		if n > 0 {
			return true
		}
	}
	return false
}

// SetHit records a beam of the given color starting or stopping to hit the sensor
func (s *SensorComponent) SetHit(color core.LightColor, hit bool) {
	if color >= core.LightColorCount {
		return
	}
	if hit {
		s.HitCounts[color]++
		return
	}
	if s.HitCounts[color] > 0 {
		s.HitCounts[color]--
	}
}

// Reset clears exposure state for a fresh level
func (s *SensorComponent) Reset() {
	s.HitCounts = [core.LightColorCount]int{}
	s.Meter = 0
	s.Active = false
	s.Exposure = 0
}
