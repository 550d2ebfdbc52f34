package core

import "fmt"

// LightColor identifies a beam variant
// Each variant fixes its bounce limit, collision channels and render color
type LightColor uint8

const (
	LightGreen LightColor = iota
	LightPurple
	LightWhite
	LightBlue
	LightBlack
	LightColorCount
)

var lightColorNames = [LightColorCount]string{"green", "purple", "white", "blue", "black"}

func (c LightColor) String() string {
	if c >= LightColorCount {
		return fmt.Sprintf("light(%d)", uint8(c))
	}
	return lightColorNames[c]
}

// ParseLightColor resolves a color name as produced by String
func ParseLightColor(name string) (LightColor, bool) {
	for i, n := range lightColorNames {
		if n == name {
			return LightColor(i), true
		}
	}
	return 0, false
}

// BounceLimit returns the number of reflections a beam of this color may perform
func (c LightColor) BounceLimit() int {
	switch c {
	case LightBlack:
		return 0
	case LightPurple:
		return 2
	default:
		return 1
	}
}

// CollisionFilter returns the query channels used when casting this color's rays
func (c LightColor) CollisionFilter() CollisionFilter {
	switch c {
	case LightWhite:
		return CollisionFilter{
			Memberships: GroupWhiteRay,
			Filter:      GroupTerrain | GroupLightSensor,
		}
	case LightBlack:
		return CollisionFilter{
			Memberships: GroupBlackRay,
			Filter:      GroupTerrain | GroupLightSensor,
		}
	case LightBlue:
		return CollisionFilter{
			Memberships: GroupBlueRay,
			Filter:      GroupTerrain | GroupLightSensor | GroupWhiteRay | GroupBlackRay,
		}
	default:
		return CollisionFilter{
			Memberships: GroupLightRay,
			Filter:      GroupTerrain | GroupLightSensor | GroupWhiteRay,
		}
	}
}

// SegmentFilter returns the collider channels of a visual segment for colors that act as solid light
// Returns false for colors whose segments are purely visual
func (c LightColor) SegmentFilter() (CollisionFilter, bool) {
	switch c {
	case LightWhite:
		return CollisionFilter{
			Memberships: GroupWhiteRay,
			Filter:      GroupTerrain | GroupLightSensor | GroupLightRay | GroupBlueRay,
		}, true
	case LightBlack:
		return CollisionFilter{
			Memberships: GroupBlackRay,
			Filter:      GroupTerrain | GroupLightSensor | GroupBlueRay,
		}, true
	default:
		return CollisionFilter{}, false
	}
}

// Persistent reports whether beams of this color survive level transitions
func (c LightColor) Persistent() bool {
	return c == LightBlack
}

// Silent reports whether bounces of this color produce audio and sparks
func (c LightColor) Silent() bool {
	return c == LightBlack
}

// BeamRGB returns the display color of a beam segment
func (c LightColor) BeamRGB() RGB {
	switch c {
	case LightGreen:
		return RGB{R: 80, G: 255, B: 120}
	case LightPurple:
		return RGB{R: 200, G: 90, B: 255}
	case LightWhite:
		return RGB{R: 245, G: 245, B: 255}
	case LightBlue:
		return RGB{R: 70, G: 150, B: 255}
	case LightBlack:
		return RGB{R: 60, G: 50, B: 70}
	default:
		return RGBBlack
	}
}

// IndicatorRGB returns the dimmer color used for sensors, crystals and inventory slots
func (c LightColor) IndicatorRGB() RGB {
	return RGBBlack.Blend(c.BeamRGB(), 0.6)
}
