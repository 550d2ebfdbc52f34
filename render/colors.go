package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lightbeam/core"
)

// Palette
var (
	RgbBackground = core.RGB{R: 26, G: 27, B: 38}
	RgbWall       = core.RGB{R: 90, G: 94, B: 120}
	RgbMirror     = core.RGB{R: 200, G: 210, B: 230}
	RgbTerminator = core.RGB{R: 120, G: 30, B: 40}
	RgbPlatform   = core.RGB{R: 150, G: 130, B: 90}
	RgbEmitter    = core.RGB{R: 255, G: 220, B: 120}
	RgbHudText    = core.RGB{R: 180, G: 180, B: 180}
	RgbHudDim     = core.RGB{R: 80, G: 80, B: 90}
)

// toTcell converts to a true-color tcell color
func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
