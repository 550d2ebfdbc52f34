package system

import (
	"sync/atomic"

	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/engine"
	"github.com/lixenwraith/lightbeam/event"
	"github.com/lixenwraith/lightbeam/light"
	"github.com/lixenwraith/lightbeam/status"
)

// LightSystem recomputes every beam chain, diffs it against the stored one and syncs segments
// Beams are processed sequentially in creation order so sensor notices stay deterministic
type LightSystem struct {
	world    *engine.World
	registry *BeamRegistry
	cache    *light.SegmentCache

	enabled bool

	statBounces  *atomic.Int64
	statSkipped  *atomic.Int64
	statSegments *atomic.Int64
}

// NewLightSystem creates the light system over a registry and its segment pool
func NewLightSystem(world *engine.World, registry *BeamRegistry, cache *light.SegmentCache) engine.System {
	reg := world.Resources.Status
	s := &LightSystem{
		world:        world,
		registry:     registry,
		cache:        cache,
		statBounces:  reg.Ints.Get(status.KeyBounces),
		statSkipped:  reg.Ints.Get(status.KeyTicksSkipped),
		statSegments: reg.Ints.Get(status.KeySegments),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *LightSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *LightSystem) Name() string {
	return "light"
}

// Priority returns the system's priority
func (s *LightSystem) Priority() int {
	return constant.PriorityLight
}

// EventTypes returns the event types LightSystem handles
func (s *LightSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventLevelTransition,
	}
}

// HandleEvent clears transient beams and hides every segment on level change
func (s *LightSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventLevelTransition {
		s.registry.DespawnNonPersistent()
		s.cache.Reset()
	}
}

// Update runs play, diff and segment sync for every beam
func (s *LightSystem) Update() {
	if !s.enabled {
		return
	}

	q := s.world.Resources.Physics.Query()
	if q == nil {
		// Simulation pauses for this step, chains stay as they were
		s.statSkipped.Add(1)
		return
	}

	for _, beam := range s.registry.Beams() {
		src, ok := s.world.Components.Beam.GetComponent(beam)
		if !ok {
			continue
		}

		pb, err := light.Play(q, s.world, src)
		if err != nil {
			s.statSkipped.Add(1)
			continue
		}

		prev, _ := s.world.Components.Playback.GetComponent(beam)
		res := light.Diff(&src, &prev, pb)
		s.world.Components.Beam.SetComponent(beam, src)
		s.world.Components.Playback.SetComponent(beam, prev)

		for _, n := range res.Notices {
			setSensorHit(s.world, n.Target, src.Color, n.Hit)
		}

		for _, b := range res.Bounces {
			s.statBounces.Add(1)
			s.world.PushEvent(event.EventBeamBounce, &event.BeamBouncePayload{
				Beam:        beam,
				Target:      b.Target,
				Point:       b.Point,
				Color:       src.Color,
				BounceIndex: b.Index,
				Reflect:     isSolidSegment(s.world, b.Target),
			})
		}

		if needed := len(res.Points) - 1; needed > 0 {
			s.cache.EnsureCapacity(beam, src.Color, needed)
		}
		s.cache.Sync(beam, res.Points)
	}

	s.statSegments.Store(int64(s.cache.Len()))
}
