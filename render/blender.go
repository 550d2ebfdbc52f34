package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/lightbeam/core"
)

// BlendMode defines how a written color combines with the cell underneath
type BlendMode uint8

const (
	// BlendReplace overwrites the destination
	BlendReplace BlendMode = iota
	// BlendAlpha mixes src over dst by alpha in Lab space
	BlendAlpha
	// BlendScreen brightens, overlapping beams glow
	BlendScreen
	// BlendMax keeps the brighter channel
	BlendMax
)

func toColorful(c core.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) core.RGB {
	r, g, b := c.Clamped().RGB255()
	return core.RGB{R: r, G: g, B: b}
}

// Blend mixes src over dst by alpha, interpolating in Lab space
func Blend(dst, src core.RGB, alpha float64) core.RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	return fromColorful(toColorful(dst).BlendLab(toColorful(src), alpha))
}

// Screen returns 1-(1-a)(1-b) per channel
func Screen(dst, src core.RGB) core.RGB {
	d, s := toColorful(dst), toColorful(src)
	return fromColorful(colorful.Color{
		R: 1 - (1-d.R)*(1-s.R),
		G: 1 - (1-d.G)*(1-s.G),
		B: 1 - (1-d.B)*(1-s.B),
	})
}

// Max keeps the brighter value per channel
func Max(dst, src core.RGB) core.RGB {
	return core.RGB{R: max(dst.R, src.R), G: max(dst.G, src.G), B: max(dst.B, src.B)}
}

func apply(mode BlendMode, dst, src core.RGB, alpha float64) core.RGB {
	switch mode {
	case BlendAlpha:
		return Blend(dst, src, alpha)
	case BlendScreen:
		return Screen(dst, src.Scale(alpha))
	case BlendMax:
		return Max(dst, src)
	default:
		return src
	}
}
