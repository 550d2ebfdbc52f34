package level

import (
	"github.com/lixenwraith/lightbeam/component"
	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/vmath"
)

// Box is an axis-aligned rectangle in world units
type Box struct {
	Min, Max vmath.Vec2
}

// B is shorthand for a box from corner coordinates
func B(x0, y0, x1, y1 float64) Box {
	return Box{Min: vmath.V2(x0, y0), Max: vmath.V2(x1, y1)}
}

// SensorDef places a light sensor
type SensorDef struct {
	Box
	Toggle           component.CrystalKey
	ActivationMillis int
	// PlatformID is constant.NoPlatform when the sensor drives no platform
	PlatformID int
}

// CrystalDef places toggleable terrain
type CrystalDef struct {
	Box
	Key    component.CrystalKey
	Active bool
}

// PlatformDef places moving terrain
type PlatformDef struct {
	ID         int
	From, To   vmath.Vec2
	HalfExtent vmath.Vec2
	Speed      float64
	Playing    bool
}

// Definition is a complete level layout
type Definition struct {
	Name     string
	Min, Max vmath.Vec2

	Walls       []Box
	Mirrors     []Box
	Terminators []Box
	Sensors     []SensorDef
	Crystals    []CrystalDef
	Platforms   []PlatformDef

	Emitter vmath.Vec2
	Aim     float64
	Allowed []core.LightColor
}

// border returns four walls of the given thickness enclosing min..max
func border(min, max vmath.Vec2, t float64) []Box {
	return []Box{
		B(min.X, min.Y, max.X, min.Y+t),
		B(min.X, max.Y-t, max.X, max.Y),
		B(min.X, min.Y, min.X+t, max.Y),
		B(max.X-t, min.Y, max.X, max.Y),
	}
}

// Builtin returns the bundled levels in play order
func Builtin() []Definition {
	min, max := vmath.V2(0, 0), vmath.V2(160, 80)

	corridor := Definition{
		Name:    "corridor",
		Min:     min,
		Max:     max,
		Walls:   append(border(min, max, 2), B(60, 2, 64, 30)),
		Emitter: vmath.V2(20, 40),
		Sensors: []SensorDef{{
			Box:        B(150, 36, 156, 44),
			Toggle:     component.CrystalKey{Color: core.LightGreen, ID: 1},
			PlatformID: constant.NoPlatform,
		}},
		Crystals: []CrystalDef{{
			Box:    B(100, 50, 104, 78),
			Key:    component.CrystalKey{Color: core.LightGreen, ID: 1},
			Active: true,
		}},
		Allowed: []core.LightColor{core.LightGreen, core.LightPurple},
	}

	mirrors := Definition{
		Name:        "mirrors",
		Min:         min,
		Max:         max,
		Walls:       append(border(min, max, 2), B(78, 30, 82, 78)),
		Mirrors:     []Box{B(120, 10, 124, 14), B(120, 66, 124, 70)},
		Terminators: []Box{B(40, 2, 44, 6)},
		Emitter:     vmath.V2(20, 12),
		Sensors: []SensorDef{{
			Box:              B(30, 66, 36, 72),
			Toggle:           component.CrystalKey{Color: core.LightPurple, ID: 2},
			ActivationMillis: 500,
			PlatformID:       1,
		}},
		Platforms: []PlatformDef{{
			ID:         1,
			From:       vmath.V2(100, 40),
			To:         vmath.V2(140, 40),
			HalfExtent: vmath.V2(6, 2),
			Speed:      20,
		}},
		Allowed: []core.LightColor{core.LightGreen, core.LightPurple, core.LightWhite},
	}

	prism := Definition{
		Name:    "prism",
		Min:     min,
		Max:     max,
		Walls:   border(min, max, 2),
		Emitter: vmath.V2(20, 40),
		Sensors: []SensorDef{{
			Box:        B(140, 36, 146, 44),
			Toggle:     component.CrystalKey{Color: core.LightBlue, ID: 3},
			PlatformID: constant.NoPlatform,
		}},
		Crystals: []CrystalDef{
			{Box: B(80, 20, 84, 60), Key: component.CrystalKey{Color: core.LightBlue, ID: 3}, Active: true},
			{Box: B(110, 20, 114, 60), Key: component.CrystalKey{Color: core.LightBlue, ID: 4}, Active: true},
		},
		Allowed: []core.LightColor{core.LightWhite, core.LightBlue, core.LightBlack},
	}

	return []Definition{corridor, mirrors, prism}
}
