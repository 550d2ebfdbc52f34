package light

import (
	"fmt"

	"github.com/lixenwraith/lightbeam/component"
	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/vmath"
)

// SegmentWorld is the storage the segment pool allocates into
type SegmentWorld interface {
	// SpawnSegment creates a hidden segment entity, with a collider when seg.Solid
	SpawnSegment(seg component.SegmentComponent) core.Entity
	Segment(e core.Entity) (component.SegmentComponent, component.TransformComponent, bool)
	// SetSegment stores both components and moves the collider along
	SetSegment(e core.Entity, seg component.SegmentComponent, tr component.TransformComponent)
}

type segmentEntry struct {
	color    core.LightColor
	segments []core.Entity
	points   []vmath.Vec2
}

// SegmentCache pools the visual segments of every beam
// Entries never shrink; unused handles are hidden instead
type SegmentCache struct {
	world   SegmentWorld
	entries map[core.Entity]*segmentEntry
	free    map[core.LightColor][]*segmentEntry
}

// NewSegmentCache creates an empty pool backed by world
func NewSegmentCache(world SegmentWorld) *SegmentCache {
	return &SegmentCache{
		world:   world,
		entries: make(map[core.Entity]*segmentEntry),
		free:    make(map[core.LightColor][]*segmentEntry),
	}
}

// parked is the neutral transform of a hidden segment
var parked = component.TransformComponent{
	Center: vmath.V2(constant.SegmentParkDistance, constant.SegmentParkDistance),
}

// EnsureCapacity grows the beam's entry to min(needed, MaxBeamIntersections) handles
// A released entry of the same color is adopted before allocating a new one
func (c *SegmentCache) EnsureCapacity(beam core.Entity, color core.LightColor, needed int) {
	entry, ok := c.entries[beam]
	if !ok {
		entry = c.adopt(beam, color)
		c.entries[beam] = entry
	}

	target := min(needed, constant.MaxBeamIntersections)
	_, solid := entry.color.SegmentFilter()
	for len(entry.segments) < target {
		e := c.world.SpawnSegment(component.SegmentComponent{
			Beam:  beam,
			Color: entry.color,
			Index: len(entry.segments),
			Solid: solid,
		})
		entry.segments = append(entry.segments, e)
	}
}

func (c *SegmentCache) adopt(beam core.Entity, color core.LightColor) *segmentEntry {
	pool := c.free[color]
	if len(pool) == 0 {
		return &segmentEntry{color: color}
	}

	entry := pool[len(pool)-1]
	c.free[color] = pool[:len(pool)-1]
	for _, e := range entry.segments {
		seg, tr, ok := c.world.Segment(e)
		if !ok {
			panic(fmt.Sprintf("segment cache corrupted: pooled entity %d has no segment", e))
		}
		seg.Beam = beam
		c.world.SetSegment(e, seg, tr)
	}
	return entry
}

// Sync lays the beam's segments along points; short spans and extra handles are hidden
func (c *SegmentCache) Sync(beam core.Entity, points []vmath.Vec2) {
	entry, ok := c.entries[beam]
	if !ok {
		return
	}

	entry.points = append(entry.points[:0], points...)

	for k, e := range entry.segments {
		seg, _, ok := c.world.Segment(e)
		if !ok {
			panic(fmt.Sprintf("segment cache corrupted: entity %d has no transform", e))
		}

		if k+1 >= len(points) {
			seg.Visible = false
			c.world.SetSegment(e, seg, parked)
			continue
		}

		a, b := points[k], points[k+1]
		length := vmath.Distance(a, b)
		if length <= constant.SegmentVisibilityEpsilon {
			seg.Visible = false
			c.world.SetSegment(e, seg, component.TransformComponent{Center: a})
			continue
		}

		seg.Visible = true
		c.world.SetSegment(e, seg, component.TransformComponent{
			Center:   vmath.Midpoint(a, b),
			Rotation: b.Sub(a).Angle(),
			Length:   length,
		})
	}
}

// Release hides a beam's segments and parks them for the next beam of the same color
func (c *SegmentCache) Release(beam core.Entity) {
	entry, ok := c.entries[beam]
	if !ok {
		return
	}
	delete(c.entries, beam)
	c.hide(entry)
	c.free[entry.color] = append(c.free[entry.color], entry)
}

// Reset hides every cached segment, used on level transition
func (c *SegmentCache) Reset() {
	for _, entry := range c.entries {
		c.hide(entry)
	}
	for _, pool := range c.free {
		for _, entry := range pool {
			c.hide(entry)
		}
	}
}

func (c *SegmentCache) hide(entry *segmentEntry) {
	entry.points = entry.points[:0]
	for _, e := range entry.segments {
		seg, _, ok := c.world.Segment(e)
		if !ok {
			panic(fmt.Sprintf("segment cache corrupted: entity %d has no transform", e))
		}
		seg.Visible = false
		c.world.SetSegment(e, seg, parked)
	}
}

// Segments returns the handles owned by beam
func (c *SegmentCache) Segments(beam core.Entity) []core.Entity {
	entry, ok := c.entries[beam]
	if !ok {
		return nil
	}
	out := make([]core.Entity, len(entry.segments))
	copy(out, entry.segments)
	return out
}

// Points returns the last synced point list of beam
func (c *SegmentCache) Points(beam core.Entity) []vmath.Vec2 {
	entry, ok := c.entries[beam]
	if !ok {
		return nil
	}
	out := make([]vmath.Vec2, len(entry.points))
	copy(out, entry.points)
	return out
}

// Color returns the color recorded when the beam's entry was first allocated
func (c *SegmentCache) Color(beam core.Entity) (core.LightColor, bool) {
	entry, ok := c.entries[beam]
	if !ok {
		return 0, false
	}
	return entry.color, true
}

// Len returns the total number of pooled segment handles, live and parked
func (c *SegmentCache) Len() int {
	n := 0
	for _, entry := range c.entries {
		n += len(entry.segments)
	}
	for _, pool := range c.free {
		for _, entry := range pool {
			n += len(entry.segments)
		}
	}
	return n
}
