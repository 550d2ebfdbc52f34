package system

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/lightbeam/component"
	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/engine"
	"github.com/lixenwraith/lightbeam/event"
	"github.com/lixenwraith/lightbeam/status"
	"github.com/lixenwraith/lightbeam/vmath"
)

// SparkSystem throws a burst of falling particles from every fresh bounce
type SparkSystem struct {
	world *engine.World
	rng   *rand.Rand

	statSparks *atomic.Int64
}

// NewSparkSystem creates a spark system with a seeded generator
func NewSparkSystem(world *engine.World, seed int64) engine.System {
	s := &SparkSystem{
		world:      world,
		rng:        rand.New(rand.NewSource(seed)),
		statSparks: world.Resources.Status.Ints.Get(status.KeySparks),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *SparkSystem) Init() {}

// Name returns system's name
func (s *SparkSystem) Name() string {
	return "spark"
}

// Priority returns the system's priority
func (s *SparkSystem) Priority() int {
	return constant.PrioritySpark
}

// EventTypes returns the event types SparkSystem handles
func (s *SparkSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBeamBounce,
		event.EventLevelTransition,
	}
}

// HandleEvent spawns bursts on bounces and clears particles on level change
func (s *SparkSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventBeamBounce:
		if payload, ok := ev.Payload.(*event.BeamBouncePayload); ok {
			s.burst(payload)
		}
	case event.EventLevelTransition:
		for _, e := range s.world.Components.Spark.GetAllEntities() {
			s.world.DestroyEntity(e)
		}
	}
	s.statSparks.Store(int64(s.world.Components.Spark.CountEntities()))
}

func (s *SparkSystem) burst(payload *event.BeamBouncePayload) {
	lifetime := time.Duration(constant.SparkLifetimeSeconds * float64(time.Second))
	for i := 0; i < constant.SparkCount; i++ {
		vel := vmath.V2(
			(s.rng.Float64()*2-1)*constant.SparkVelocity,
			(s.rng.Float64()*2-1)*constant.SparkVelocity+constant.SparkLift,
		)
		e := s.world.CreateEntity()
		s.world.Components.Spark.SetComponent(e, component.SparkComponent{
			Position:  payload.Point,
			Velocity:  vel,
			Color:     payload.Color,
			Remaining: lifetime,
			Duration:  lifetime,
		})
	}
}

// Update integrates spark motion under gravity and expires old ones
func (s *SparkSystem) Update() {
	delta := s.world.Resources.Time.DeltaTime
	dt := delta.Seconds()

	for _, e := range s.world.Components.Spark.GetAllEntities() {
		spark, ok := s.world.Components.Spark.GetComponent(e)
		if !ok {
			continue
		}

		spark.Remaining -= delta
		if spark.Remaining <= 0 {
			s.world.DestroyEntity(e)
			continue
		}

		spark.Velocity.Y -= constant.SparkGravity * dt
		spark.Position = spark.Position.Add(spark.Velocity.Scale(dt))
		s.world.Components.Spark.SetComponent(e, spark)
	}
	s.statSparks.Store(int64(s.world.Components.Spark.CountEntities()))
}
