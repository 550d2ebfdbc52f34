// Package render draws captured frames to a tcell screen
package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lightbeam/frame"
	"github.com/lixenwraith/lightbeam/status"
)

type rendererEntry struct {
	renderer FrameRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	mu        sync.Mutex
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
	hud       *HudRenderer
}

// NewRenderOrchestrator creates an orchestrator sized to the screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// NewDefaultOrchestrator registers every built-in layer
// reg may be nil, the HUD then omits metrics
func NewDefaultOrchestrator(screen tcell.Screen, reg *status.Registry) *RenderOrchestrator {
	o := NewRenderOrchestrator(screen)
	o.Register(&TerrainRenderer{}, PriorityTerrain)
	o.Register(&PreviewRenderer{}, PriorityPreview)
	o.Register(&BeamRenderer{}, PriorityBeam)
	o.Register(&SparkRenderer{}, PriorityParticle)
	o.Register(&EmitterRenderer{}, PriorityEmitter)
	o.hud = NewHudRenderer(reg)
	o.Register(o.hud, PriorityUI)
	return o
}

// ToggleHud flips HUD visibility; no-op without a default HUD
func (o *RenderOrchestrator) ToggleHud() {
	if o.hud != nil {
		o.hud.Toggle()
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r FrameRenderer, priority RenderPriority) {
	o.mu.Lock()
	defer o.mu.Unlock()

	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize() {
	o.mu.Lock()
	defer o.mu.Unlock()
	w, h := o.screen.Size()
	o.buffer.Resize(w, h)
	o.screen.Sync()
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(f *frame.Frame) {
	if f == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	w, h := o.buffer.Size()
	ctx := NewRenderContext(f, w, h)
	o.buffer.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, f, o.buffer)
	}

	o.buffer.FlushToScreen(o.screen)
	o.screen.Show()
}

// Buffer exposes the composited buffer of the last frame
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}
