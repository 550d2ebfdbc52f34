package physics

import (
	"sync"

	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/vmath"
)

// ShapeKind selects collider geometry
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeSegment
)

// Collider is a static or kinematic shape attached to an entity
type Collider struct {
	Entity core.Entity
	Kind   ShapeKind

	// Box bounds
	Min, Max vmath.Vec2

	// Segment endpoints
	A, B vmath.Vec2

	Filter  core.CollisionFilter
	Enabled bool
}

// Space is the in-memory collision world queried by beams
// Iteration follows insertion order so equal-distance hits resolve deterministically
type Space struct {
	mu        sync.RWMutex
	colliders map[core.Entity]*Collider
	order     []core.Entity
}

// NewSpace creates an empty collision space
func NewSpace() *Space {
	return &Space{
		colliders: make(map[core.Entity]*Collider),
		order:     make([]core.Entity, 0, 64),
	}
}

func (s *Space) insert(c *Collider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.colliders[c.Entity]; !exists {
		s.order = append(s.order, c.Entity)
	}
	s.colliders[c.Entity] = c
}

// AddBox registers an axis-aligned box collider
func (s *Space) AddBox(e core.Entity, min, max vmath.Vec2, filter core.CollisionFilter) {
	s.insert(&Collider{Entity: e, Kind: ShapeBox, Min: min, Max: max, Filter: filter, Enabled: true})
}

// AddSegment registers a thin two-sided segment collider
func (s *Space) AddSegment(e core.Entity, a, b vmath.Vec2, filter core.CollisionFilter) {
	s.insert(&Collider{Entity: e, Kind: ShapeSegment, A: a, B: b, Filter: filter, Enabled: true})
}

// MoveBox updates a box collider's bounds, no-op for unknown entities
func (s *Space) MoveBox(e core.Entity, min, max vmath.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.colliders[e]; ok {
		c.Min, c.Max = min, max
	}
}

// MoveSegment updates a segment collider's endpoints
func (s *Space) MoveSegment(e core.Entity, a, b vmath.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.colliders[e]; ok {
		c.A, c.B = a, b
	}
}

// SetEnabled toggles whether a collider takes part in queries
func (s *Space) SetEnabled(e core.Entity, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.colliders[e]; ok {
		c.Enabled = enabled
	}
}

// Remove deletes a collider
func (s *Space) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.colliders[e]; !ok {
		return
	}
	delete(s.colliders, e)
	for i, id := range s.order {
		if id == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Get returns a copy of the collider attached to e
func (s *Space) Get(e core.Entity) (Collider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.colliders[e]
	if !ok {
		return Collider{}, false
	}
	return *c, true
}

// Len returns the number of registered colliders
func (s *Space) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// CastRay implements Query
func (s *Space) CastRay(origin, dir vmath.Vec2, maxDist float64, filter core.CollisionFilter, exclude core.Entity) (Hit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best Hit
	found := false

	for _, e := range s.order {
		if e == exclude {
			continue
		}
		c := s.colliders[e]
		if !c.Enabled || !filter.Interacts(c.Filter) {
			continue
		}

		var dist float64
		var normal vmath.Vec2
		var ok bool
		switch c.Kind {
		case ShapeBox:
			dist, normal, ok = vmath.RayAABB(origin, dir, c.Min, c.Max)
		case ShapeSegment:
			dist, ok = vmath.RaySegment(origin, dir, c.A, c.B)
			if ok {
				normal = vmath.SegmentNormal(c.A, c.B, dir)
			}
		}

		if !ok || dist > maxDist {
			continue
		}
		if !found || dist < best.Distance {
			best = Hit{
				Entity:   e,
				Point:    origin.Add(dir.Scale(dist)),
				Normal:   normal,
				Distance: dist,
			}
			found = true
		}
	}

	return best, found
}
