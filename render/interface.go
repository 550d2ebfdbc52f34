package render

import "github.com/lixenwraith/lightbeam/frame"

// FrameRenderer draws one layer of a frame
type FrameRenderer interface {
	Render(ctx RenderContext, f *frame.Frame, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
