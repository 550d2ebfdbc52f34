// Package frame captures a render-ready snapshot of the world once per tick
// Frames feed the terminal view, websocket clients and replay files
package frame

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/engine"
	"github.com/lixenwraith/lightbeam/light"
	"github.com/lixenwraith/lightbeam/vmath"
)

// BoxKind identifies what a snapshot box represents
type BoxKind uint8

const (
	BoxWall BoxKind = iota
	BoxMirror
	BoxTerminator
	BoxSensor
	BoxCrystal
	BoxPlatform
)

// Point is a world position
type Point struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

func pointOf(v vmath.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}

// Vec2 converts back to a vector
func (p Point) Vec2() vmath.Vec2 {
	return vmath.V2(p.X, p.Y)
}

// Beam is one beam's rendered path
type Beam struct {
	ID     uint64          `msgpack:"id"`
	Color  core.LightColor `msgpack:"color"`
	Points []Point         `msgpack:"points"`
}

// Spark is one particle
type Spark struct {
	Pos   Point           `msgpack:"pos"`
	Color core.LightColor `msgpack:"color"`
	Fade  float64         `msgpack:"fade"`
}

// Box is a piece of level geometry
type Box struct {
	Kind   BoxKind         `msgpack:"kind"`
	Min    Point           `msgpack:"min"`
	Max    Point           `msgpack:"max"`
	Color  core.LightColor `msgpack:"color,omitempty"`
	Active bool            `msgpack:"active,omitempty"`
	Meter  float64         `msgpack:"meter,omitempty"`
}

// Slot is one inventory color
type Slot struct {
	Color     core.LightColor `msgpack:"color"`
	Available bool            `msgpack:"available"`
}

// Frame is the complete visible state at one tick
type Frame struct {
	Tick    int64           `msgpack:"tick"`
	Level   string          `msgpack:"level"`
	Min     Point           `msgpack:"min"`
	Max     Point           `msgpack:"max"`
	Boxes   []Box           `msgpack:"boxes"`
	Beams   []Beam          `msgpack:"beams"`
	Sparks  []Spark         `msgpack:"sparks"`
	Emitter Point           `msgpack:"emitter"`
	Preview []Point         `msgpack:"preview"`
	Slots   []Slot          `msgpack:"slots"`
	Current core.LightColor `msgpack:"current"`
}

// Capture snapshots world state
// Caller must hold the world update lock (tick hooks run under it)
func Capture(world *engine.World, cache *light.SegmentCache) *Frame {
	res := world.Resources
	f := &Frame{
		Tick:  res.Time.FrameNumber,
		Level: res.Level.Name,
		Min:   pointOf(res.Level.Min),
		Max:   pointOf(res.Level.Max),
	}

	captureBoxes(world, f)

	for _, e := range world.Components.Beam.SortedEntities() {
		color, ok := cache.Color(e)
		if !ok {
			src, _ := world.Components.Beam.GetComponent(e)
			color = src.Color
		}
		points := cache.Points(e)
		beam := Beam{ID: uint64(e), Color: color, Points: make([]Point, len(points))}
		for i, p := range points {
			beam.Points[i] = pointOf(p)
		}
		f.Beams = append(f.Beams, beam)
	}

	for _, e := range world.Components.Spark.SortedEntities() {
		spark, ok := world.Components.Spark.GetComponent(e)
		if !ok {
			continue
		}
		f.Sparks = append(f.Sparks, Spark{Pos: pointOf(spark.Position), Color: spark.Color, Fade: spark.Fade()})
	}

	for _, e := range world.Components.Emitter.SortedEntities() {
		emitter, ok := world.Components.Emitter.GetComponent(e)
		if !ok {
			continue
		}
		f.Emitter = pointOf(emitter.Position)
		for _, p := range emitter.Preview {
			f.Preview = append(f.Preview, pointOf(p))
		}
		if inv, ok := world.Components.Inventory.GetComponent(e); ok {
			f.Current = inv.Current
			for c := core.LightColor(0); c < core.LightColorCount; c++ {
				if inv.Allowed[c] {
					f.Slots = append(f.Slots, Slot{Color: c, Available: inv.Available(c)})
				}
			}
		}
		break
	}

	return f
}

func captureBoxes(world *engine.World, f *Frame) {
	space := world.Resources.Physics.Space
	if space == nil {
		return
	}
	cs := &world.Components

	add := func(kind BoxKind, e core.Entity, fill func(*Box)) {
		c, ok := space.Get(e)
		if !ok {
			return
		}
		b := Box{Kind: kind, Min: pointOf(c.Min), Max: pointOf(c.Max)}
		if fill != nil {
			fill(&b)
		}
		f.Boxes = append(f.Boxes, b)
	}

	for _, e := range cs.Wall.SortedEntities() {
		add(BoxWall, e, nil)
	}
	for _, e := range cs.Mirror.SortedEntities() {
		add(BoxMirror, e, nil)
	}
	for _, e := range cs.Terminator.SortedEntities() {
		add(BoxTerminator, e, nil)
	}
	for _, e := range cs.Platform.SortedEntities() {
		add(BoxPlatform, e, nil)
	}
	for _, e := range cs.Crystal.SortedEntities() {
		crystal, ok := cs.Crystal.GetComponent(e)
		if !ok {
			continue
		}
		add(BoxCrystal, e, func(b *Box) {
			b.Color = crystal.Key.Color
			b.Active = crystal.Active
		})
	}
	for _, e := range cs.Sensor.SortedEntities() {
		sensor, ok := cs.Sensor.GetComponent(e)
		if !ok {
			continue
		}
		add(BoxSensor, e, func(b *Box) {
			b.Color = sensor.Toggle.Color
			b.Active = sensor.Active
			b.Meter = sensor.Meter
		})
	}
}

// Encode serializes a frame to msgpack
func Encode(f *Frame) ([]byte, error) {
	data, err := msgpack.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode frame %d: %w", f.Tick, err)
	}
	return data, nil
}

// Decode parses a msgpack frame
func Decode(data []byte) (*Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	return &f, nil
}
