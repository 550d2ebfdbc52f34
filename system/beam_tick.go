package system

import (
	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/engine"
)

// BeamTickSystem grows every beam's travel budget once per step, ahead of recomputation
type BeamTickSystem struct {
	registry *BeamRegistry

	enabled bool
}

// NewBeamTickSystem creates the tick driver for the given registry
func NewBeamTickSystem(registry *BeamRegistry) engine.System {
	s := &BeamTickSystem{registry: registry}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *BeamTickSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *BeamTickSystem) Name() string {
	return "beamtick"
}

// Priority returns the system's priority
func (s *BeamTickSystem) Priority() int {
	return constant.PriorityBeamTick
}

// Update advances travel budgets
// Budgets hold while collision queries are unavailable, the light step is skipped as well
func (s *BeamTickSystem) Update() {
	if !s.enabled {
		return
	}
	if s.registry.world.Resources.Physics.Query() == nil {
		return
	}
	s.registry.Tick()
}
