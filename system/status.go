package system

import (
	"sync/atomic"

	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/engine"
	"github.com/lixenwraith/lightbeam/status"
)

// StatusSystem refreshes world gauges after game logic has run
type StatusSystem struct {
	world *engine.World

	statBeams   *atomic.Int64
	statVisible *atomic.Int64
}

// NewStatusSystem creates a new status system
func NewStatusSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &StatusSystem{
		world:       world,
		statBeams:   reg.Ints.Get(status.KeyBeams),
		statVisible: reg.Ints.Get(status.KeyVisible),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *StatusSystem) Init() {}

// Name returns system's name
func (s *StatusSystem) Name() string {
	return "status"
}

// Priority returns the system's priority
func (s *StatusSystem) Priority() int {
	return constant.PriorityStatus
}

// Update counts live beams and visible segments
func (s *StatusSystem) Update() {
	s.statBeams.Store(int64(s.world.Components.Beam.CountEntities()))

	var visible int64
	for _, e := range s.world.Components.Segment.GetAllEntities() {
		if seg, ok := s.world.Components.Segment.GetComponent(e); ok && seg.Visible {
			visible++
		}
	}
	s.statVisible.Store(visible)
}
