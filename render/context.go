package render

import (
	"math"

	"github.com/lixenwraith/lightbeam/frame"
)

// HudRows is the number of rows reserved below the play field
const HudRows = 1

// RenderContext maps world coordinates onto the terminal, passed by value
type RenderContext struct {
	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Play field dimensions in cells
	ViewWidth  int
	ViewHeight int

	// World bounds shown in the play field
	MinX, MinY float64
	MaxX, MaxY float64

	scaleX, scaleY float64
}

// NewRenderContext fits the frame's level bounds into the screen above the HUD
func NewRenderContext(f *frame.Frame, width, height int) RenderContext {
	ctx := RenderContext{
		ScreenWidth:  width,
		ScreenHeight: height,
		ViewWidth:    width,
		ViewHeight:   max(height-HudRows, 0),
		MinX:         f.Min.X,
		MinY:         f.Min.Y,
		MaxX:         f.Max.X,
		MaxY:         f.Max.Y,
	}
	if ctx.MaxX <= ctx.MinX || ctx.MaxY <= ctx.MinY {
		ctx.MaxX, ctx.MaxY = ctx.MinX+float64(ctx.ViewWidth), ctx.MinY+float64(ctx.ViewHeight)
	}
	ctx.scaleX = float64(ctx.ViewWidth) / (ctx.MaxX - ctx.MinX)
	ctx.scaleY = float64(ctx.ViewHeight) / (ctx.MaxY - ctx.MinY)
	return ctx
}

// ToCell converts a world point to a cell; world y grows upward, rows grow downward
func (c RenderContext) ToCell(p frame.Point) (int, int) {
	x := int(math.Floor((p.X - c.MinX) * c.scaleX))
	y := int(math.Floor((c.MaxY - p.Y) * c.scaleY))
	return clamp(x, 0, c.ViewWidth-1), clamp(y, 0, c.ViewHeight-1)
}

// InView reports whether a cell lies inside the play field
func (c RenderContext) InView(x, y int) bool {
	return x >= 0 && x < c.ViewWidth && y >= 0 && y < c.ViewHeight
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
