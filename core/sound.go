package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundBounce  SoundType = iota // Beam reflecting off terrain
	SoundReflect                  // Beam reflecting off a solid light segment
	SoundButton                   // Sensor activation toggle
	SoundTypeCount
)

// BounceVariants is the number of pitch variants per bounce sound
const BounceVariants = 3

func (s SoundType) String() string {
	switch s {
	case SoundBounce:
		return "bounce"
	case SoundReflect:
		return "reflect"
	case SoundButton:
		return "button"
	default:
		return "unknown"
	}
}
