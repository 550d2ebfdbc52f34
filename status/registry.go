package status

import (
	"math"
	"sync/atomic"
)

// Metric keys written by the simulation
const (
	KeyTicks        = "engine.ticks"
	KeyEvents       = "engine.events"
	KeyBeams        = "light.beams"
	KeySegments     = "light.segments"
	KeyVisible      = "light.segments_visible"
	KeyBounces      = "light.bounces"
	KeyTicksSkipped = "light.ticks_skipped"
	KeySensorsLit   = "sensor.active"
	KeySparks       = "spark.count"
	KeyClients      = "network.clients"
	KeyLevel        = "level.current"
)

// AtomicFloat provides atomic float64 operations using bit conversion
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// AtomicString holds a string behind an atomic pointer
type AtomicString struct {
	ptr atomic.Pointer[string]
}

func (s *AtomicString) Store(val string) {
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Snapshot copies integer metrics for display and streaming
func (r *Registry) Snapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	return out
}
