package component

import (
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/vmath"
)

// BeamSourceComponent is an emitter that grows its beam by a travel budget each step
// Origin and Direction are fixed at creation; Direction is a unit vector
type BeamSourceComponent struct {
	Origin       vmath.Vec2
	Direction    vmath.Vec2
	TravelBudget float64
	Color        core.LightColor
}

// Intersection is one bounce on a beam's path
// Distance is cumulative from the beam origin
type Intersection struct {
	Target   core.Entity
	Point    vmath.Vec2
	Distance float64
}

// PlaybackSlot is an optional intersection at a bounce position
// Invalid slots mark positions that existed once and were invalidated
type PlaybackSlot struct {
	Valid bool
	Intersection
}

// PlaybackStateComponent is the bounce chain observed on the previous step
type PlaybackStateComponent struct {
	Slots []PlaybackSlot
}

// Get returns the valid intersection at index i
func (p *PlaybackStateComponent) Get(i int) (Intersection, bool) {
	if i < 0 || i >= len(p.Slots) || !p.Slots[i].Valid {
		return Intersection{}, false
	}
	return p.Slots[i].Intersection, true
}

// Set stores a valid intersection at index i, growing the slot list as needed
func (p *PlaybackStateComponent) Set(i int, in Intersection) {
	for len(p.Slots) <= i {
		p.Slots = append(p.Slots, PlaybackSlot{})
	}
	p.Slots[i] = PlaybackSlot{Valid: true, Intersection: in}
}

// Invalidate marks slot i as no longer present
func (p *PlaybackStateComponent) Invalidate(i int) {
	if i >= 0 && i < len(p.Slots) {
		p.Slots[i] = PlaybackSlot{}
	}
}

// Truncate drops every slot at index n and beyond
func (p *PlaybackStateComponent) Truncate(n int) {
	if n < len(p.Slots) {
		p.Slots = p.Slots[:n]
	}
}

// ValidCount returns the number of valid slots
func (p *PlaybackStateComponent) ValidCount() int {
	n := 0
	for _, s := range p.Slots {
		if s.Valid {
			n++
		}
	}
	return n
}
