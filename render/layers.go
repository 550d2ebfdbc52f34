package render

import (
	"fmt"

	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/frame"
	"github.com/lixenwraith/lightbeam/status"
)

// TerrainRenderer fills level boxes
type TerrainRenderer struct{}

func (r *TerrainRenderer) Render(ctx RenderContext, f *frame.Frame, buf *RenderBuffer) {
	for _, b := range f.Boxes {
		x0, y1 := ctx.ToCell(b.Min)
		x1, y0 := ctx.ToCell(b.Max)

		var ch rune
		var color core.RGB
		alpha := 1.0
		switch b.Kind {
		case frame.BoxWall:
			ch, color = '█', RgbWall
		case frame.BoxMirror:
			ch, color = '▓', RgbMirror
		case frame.BoxTerminator:
			ch, color = '▓', RgbTerminator
		case frame.BoxPlatform:
			ch, color = '═', RgbPlatform
		case frame.BoxCrystal:
			ch, color = '▒', b.Color.IndicatorRGB()
			if !b.Active {
				ch, alpha = '░', 0.3
			}
		case frame.BoxSensor:
			ch, color = '◘', b.Color.IndicatorRGB()
			alpha = 0.25 + 0.75*b.Meter
			if b.Active {
				color = b.Color.BeamRGB()
			}
		}

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				buf.SetBg(x, y, color, BlendAlpha, alpha*0.5)
				buf.SetFg(x, y, ch, color, BlendAlpha, alpha)
			}
		}
	}
}

// lineRune picks a box-drawing glyph for a cell-space direction
func lineRune(dx, dy int) rune {
	ax, ay := abs(dx), abs(dy)
	switch {
	case ax >= 2*ay:
		return '─'
	case ay >= 2*ax:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// drawLine rasterizes a cell-space line with Bresenham, calling plot for every cell
func drawLine(x0, y0, x1, y1 int, plot func(x, y, step int)) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for step := 0; ; step++ {
		plot(x0, y0, step)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// BeamRenderer draws every beam path with a screen blend so crossings glow
type BeamRenderer struct{}

func (r *BeamRenderer) Render(ctx RenderContext, f *frame.Frame, buf *RenderBuffer) {
	for _, beam := range f.Beams {
		color := beam.Color.BeamRGB()
		for i := 1; i < len(beam.Points); i++ {
			x0, y0 := ctx.ToCell(beam.Points[i-1])
			x1, y1 := ctx.ToCell(beam.Points[i])
			ch := lineRune(x1-x0, y1-y0)
			drawLine(x0, y0, x1, y1, func(x, y, _ int) {
				buf.SetFg(x, y, ch, color, BlendScreen, 1)
				buf.SetBg(x, y, color, BlendScreen, 0.15)
			})
		}
	}
}

// PreviewRenderer draws the aiming path as a dotted line
type PreviewRenderer struct{}

func (r *PreviewRenderer) Render(ctx RenderContext, f *frame.Frame, buf *RenderBuffer) {
	color := f.Current.BeamRGB()
	for i := 1; i < len(f.Preview); i++ {
		x0, y0 := ctx.ToCell(f.Preview[i-1])
		x1, y1 := ctx.ToCell(f.Preview[i])
		drawLine(x0, y0, x1, y1, func(x, y, step int) {
			if step%2 == 0 {
				buf.SetFg(x, y, '·', color, BlendAlpha, 0.4)
			}
		})
	}
}

// SparkRenderer draws particles faded by remaining life
type SparkRenderer struct{}

func (r *SparkRenderer) Render(ctx RenderContext, f *frame.Frame, buf *RenderBuffer) {
	for _, s := range f.Sparks {
		x, y := ctx.ToCell(s.Pos)
		buf.SetFg(x, y, '∙', s.Color.BeamRGB(), BlendAlpha, s.Fade)
	}
}

// EmitterRenderer marks the player emitter
type EmitterRenderer struct{}

func (r *EmitterRenderer) Render(ctx RenderContext, f *frame.Frame, buf *RenderBuffer) {
	if len(f.Slots) == 0 {
		return
	}
	x, y := ctx.ToCell(f.Emitter)
	buf.SetFg(x, y, '◉', RgbEmitter, BlendReplace, 1)
}

// HudRenderer writes the level name, inventory and counters on the bottom row
type HudRenderer struct {
	reg     *status.Registry
	visible bool
}

// NewHudRenderer creates a HUD; reg may be nil
func NewHudRenderer(reg *status.Registry) *HudRenderer {
	return &HudRenderer{reg: reg, visible: true}
}

// IsVisible implements VisibilityToggle
func (r *HudRenderer) IsVisible() bool {
	return r.visible
}

// Toggle shows or hides the HUD
func (r *HudRenderer) Toggle() {
	r.visible = !r.visible
}

func (r *HudRenderer) Render(ctx RenderContext, f *frame.Frame, buf *RenderBuffer) {
	y := ctx.ScreenHeight - 1
	if y < 0 {
		return
	}
	x := buf.DrawText(0, y, f.Level, RgbHudText) + 2

	for _, slot := range f.Slots {
		color := slot.Color.BeamRGB()
		if !slot.Available {
			color = RgbHudDim
		}
		label := fmt.Sprintf("%d:%s", int(slot.Color)+1, slot.Color)
		if slot.Color == f.Current {
			label = "[" + label + "]"
		}
		x = buf.DrawText(x, y, label, color) + 1
	}

	if r.reg != nil {
		text := fmt.Sprintf(" beams %d bounces %d",
			r.reg.Ints.Get(status.KeyBeams).Load(),
			r.reg.Ints.Get(status.KeyBounces).Load())
		buf.DrawText(x, y, text, RgbHudDim)
	}
}
