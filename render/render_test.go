package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/frame"
	"github.com/lixenwraith/lightbeam/status"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected simulation screen, got %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func testFrame() *frame.Frame {
	return &frame.Frame{
		Level: "test",
		Min:   frame.Point{X: 0, Y: 0},
		Max:   frame.Point{X: 80, Y: 20},
		Boxes: []frame.Box{
			{Kind: frame.BoxWall, Min: frame.Point{X: 70, Y: 0}, Max: frame.Point{X: 72, Y: 20}},
		},
		Beams: []frame.Beam{
			{ID: 1, Color: core.LightGreen, Points: []frame.Point{{X: 0.5, Y: 10.5}, {X: 40.5, Y: 10.5}}},
		},
		Slots:   []frame.Slot{{Color: core.LightGreen, Available: false}, {Color: core.LightPurple, Available: true}},
		Current: core.LightPurple,
	}
}

func TestRenderContextMapping(t *testing.T) {
	ctx := NewRenderContext(testFrame(), 80, 21)

	tests := []struct {
		name   string
		p      frame.Point
		wx, wy int
	}{
		{"top left", frame.Point{X: 0, Y: 20}, 0, 0},
		{"bottom left", frame.Point{X: 0, Y: 0}, 0, 19},
		{"center", frame.Point{X: 40, Y: 10}, 40, 10},
		{"clamped", frame.Point{X: 500, Y: -5}, 79, 19},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ctx.ToCell(tt.p)
			if x != tt.wx || y != tt.wy {
				t.Errorf("Expected (%d,%d), got (%d,%d)", tt.wx, tt.wy, x, y)
			}
		})
	}
}

func TestBlendModes(t *testing.T) {
	black, white := core.RGB{}, core.RGB{R: 255, G: 255, B: 255}

	if got := Blend(black, white, 0); got != black {
		t.Errorf("Expected dst at alpha 0, got %v", got)
	}
	if got := Blend(black, white, 1); got != white {
		t.Errorf("Expected src at alpha 1, got %v", got)
	}
	mid := Blend(black, white, 0.5)
	if mid.R == 0 || mid.R == 255 {
		t.Errorf("Expected intermediate gray, got %v", mid)
	}

	a := core.RGB{R: 100}
	b := core.RGB{R: 100, G: 50}
	s := Screen(a, b)
	if s.R <= 100 || s.G < 50 {
		t.Errorf("Expected screen to brighten, got %v", s)
	}
	if got := Max(a, b); got != (core.RGB{R: 100, G: 50}) {
		t.Errorf("Expected channel max, got %v", got)
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	var cells [][2]int
	drawLine(0, 0, 4, 2, func(x, y, _ int) {
		cells = append(cells, [2]int{x, y})
	})
	if len(cells) != 5 {
		t.Errorf("Expected 5 cells for a shallow line, got %d", len(cells))
	}
	if cells[0] != [2]int{0, 0} || cells[len(cells)-1] != [2]int{4, 2} {
		t.Errorf("Expected endpoints included, got %v", cells)
	}
}

func TestOrchestratorDrawsFrame(t *testing.T) {
	screen := newTestScreen(t, 80, 21)
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyBeams).Store(1)
	o := NewDefaultOrchestrator(screen, reg)

	o.RenderFrame(testFrame())

	buf := o.Buffer()
	if c := buf.Get(20, 9); c.Rune != '─' {
		t.Errorf("Expected horizontal beam glyph at (20,9), got %q", c.Rune)
	}
	if c := buf.Get(71, 5); c.Rune != '█' {
		t.Errorf("Expected wall glyph at (71,5), got %q", c.Rune)
	}
	if c := buf.Get(5, 5); c.Rune != ' ' || c.Bg != RgbBackground {
		t.Errorf("Expected empty background cell, got %+v", c)
	}

	mainc, _, style, _ := screen.GetContent(20, 9)
	fg, _, _ := style.Decompose()
	if mainc != '─' {
		t.Errorf("Expected beam flushed to screen, got %q", mainc)
	}
	if fg == tcell.ColorDefault {
		t.Error("Expected true color foreground on beam cell")
	}

	hud := ""
	for x := 0; x < 40; x++ {
		hud += string(buf.Get(x, 20).Rune)
	}
	if want := "test  1:green [2:purple]"; len(hud) < len(want) || hud[:len(want)] != want {
		t.Errorf("Expected HUD to start with %q, got %q", want, hud)
	}
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := newTestScreen(t, 10, 3)
	o := NewRenderOrchestrator(screen)

	var order []string
	o.Register(recordLayer{name: "ui", order: &order}, PriorityUI)
	o.Register(recordLayer{name: "terrain", order: &order}, PriorityTerrain)
	o.Register(recordLayer{name: "beam", order: &order}, PriorityBeam)

	o.RenderFrame(&frame.Frame{})
	if len(order) != 3 || order[0] != "terrain" || order[1] != "beam" || order[2] != "ui" {
		t.Errorf("Expected terrain, beam, ui, got %v", order)
	}
}

type recordLayer struct {
	name  string
	order *[]string
}

func (r recordLayer) Render(ctx RenderContext, f *frame.Frame, buf *RenderBuffer) {
	*r.order = append(*r.order, r.name)
}
