package frame

import (
	"testing"
	"time"

	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/engine"
	"github.com/lixenwraith/lightbeam/event"
	"github.com/lixenwraith/lightbeam/level"
	"github.com/lixenwraith/lightbeam/system"
)

func TestCaptureLevel(t *testing.T) {
	world := engine.NewWorld()
	pipeline := system.NewPipeline(world, constant.LightSpeed, 1)
	scheduler := engine.NewClockScheduler(world, engine.NewMockTimeProvider(time.Unix(0, 0)), constant.GameUpdateInterval)
	if err := level.NewManager(world).Load("corridor"); err != nil {
		t.Fatal(err)
	}

	world.PushEvent(event.EventBeamSpawnRequest, &event.BeamSpawnRequestPayload{Color: core.LightGreen})
	for i := 0; i < 5; i++ {
		scheduler.Step()
	}

	var f *Frame
	world.RunSafe(func() {
		f = Capture(world, pipeline.Cache)
	})

	if f.Tick != 5 || f.Level != "corridor" {
		t.Errorf("Expected tick 5 on corridor, got %d on %q", f.Tick, f.Level)
	}
	if f.Max != (Point{X: 160, Y: 80}) {
		t.Errorf("Expected bounds max (160,80), got %+v", f.Max)
	}

	kinds := map[BoxKind]int{}
	for _, b := range f.Boxes {
		kinds[b.Kind]++
	}
	if kinds[BoxWall] != 5 || kinds[BoxSensor] != 1 || kinds[BoxCrystal] != 1 {
		t.Errorf("Expected 5 walls, 1 sensor, 1 crystal, got %v", kinds)
	}

	if len(f.Beams) != 1 {
		t.Fatalf("Expected one beam, got %d", len(f.Beams))
	}
	b := f.Beams[0]
	if b.ID != uint64(pipeline.Registry.Beams()[0]) || b.Color != core.LightGreen {
		t.Errorf("Expected the fired green beam, got %+v", b)
	}
	if len(b.Points) != 2 || b.Points[1] != (Point{X: 60, Y: 40}) {
		t.Errorf("Expected origin and tip at (60,40), got %v", b.Points)
	}

	if f.Emitter != (Point{X: 20, Y: 40}) {
		t.Errorf("Expected emitter at (20,40), got %+v", f.Emitter)
	}
	if len(f.Preview) < 2 {
		t.Errorf("Expected a preview path, got %v", f.Preview)
	}
	if len(f.Slots) != 2 {
		t.Errorf("Expected green and purple slots, got %v", f.Slots)
	}
	for _, s := range f.Slots {
		if s.Color == core.LightGreen && s.Available {
			t.Error("Expected green slot used by the spawned beam")
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	in := &Frame{
		Tick:    42,
		Level:   "prism",
		Boxes:   []Box{{Kind: BoxSensor, Min: Point{1, 2}, Max: Point{3, 4}, Active: true, Meter: 0.5}},
		Beams:   []Beam{{ID: 7, Color: core.LightWhite, Points: []Point{{0, 0}, {10, 0}, {10, 5}}}},
		Sparks:  []Spark{{Pos: Point{5, 5}, Color: core.LightPurple, Fade: 0.25}},
		Current: core.LightBlue,
	}

	data, err := Encode(in)
	if err != nil {
		t.Fatalf("Expected encode to succeed, got %v", err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("Expected decode to succeed, got %v", err)
	}

	if out.Tick != 42 || out.Level != "prism" || out.Current != core.LightBlue {
		t.Errorf("Expected header fields preserved, got %+v", out)
	}
	if len(out.Beams) != 1 || len(out.Beams[0].Points) != 3 || out.Beams[0].Points[2] != (Point{10, 5}) {
		t.Errorf("Expected beam path preserved, got %+v", out.Beams)
	}
	if len(out.Boxes) != 1 || !out.Boxes[0].Active || out.Boxes[0].Meter != 0.5 {
		t.Errorf("Expected sensor box preserved, got %+v", out.Boxes)
	}

	if _, err := Decode([]byte{0xc1}); err == nil {
		t.Error("Expected error decoding garbage")
	}
}
