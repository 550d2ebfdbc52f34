package component

import (
	"math"
	"testing"

	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/vmath"
)

func TestPlaybackStateSlots(t *testing.T) {
	var p PlaybackStateComponent

	p.Set(2, Intersection{Target: 7, Distance: 12})
	if len(p.Slots) != 3 {
		t.Fatalf("Expected 3 slots, got %d", len(p.Slots))
	}
	if _, ok := p.Get(0); ok {
		t.Error("Expected slot 0 to be invalid after sparse set")
	}
	if in, ok := p.Get(2); !ok || in.Target != 7 {
		t.Errorf("Expected target 7 at slot 2, got %v (ok=%v)", in.Target, ok)
	}

	p.Invalidate(2)
	if _, ok := p.Get(2); ok {
		t.Error("Expected slot 2 invalid after Invalidate")
	}
	if len(p.Slots) != 3 {
		t.Errorf("Expected invalidation to keep slot count, got %d", len(p.Slots))
	}

	p.Truncate(1)
	if len(p.Slots) != 1 {
		t.Errorf("Expected 1 slot after truncate, got %d", len(p.Slots))
	}
	if _, ok := p.Get(5); ok {
		t.Error("Expected out of range slot to be invalid")
	}
}

func TestSensorHitCounting(t *testing.T) {
	s := NewSensor(CrystalKey{Color: core.LightGreen}, 250, -1)

	s.SetHit(core.LightGreen, true)
	s.SetHit(core.LightGreen, true)
	s.SetHit(core.LightGreen, false)
	if !s.IsHit() {
		t.Error("Expected sensor still hit by one green beam")
	}

	s.SetHit(core.LightGreen, false)
	s.SetHit(core.LightGreen, false)
	if s.IsHit() {
		t.Error("Expected sensor unhit")
	}
	if s.HitCounts[core.LightGreen] != 0 {
		t.Errorf("Expected hit count floor at 0, got %d", s.HitCounts[core.LightGreen])
	}
}

func TestSensorRate(t *testing.T) {
	s := NewSensor(CrystalKey{}, 1000, -1)
	// 64 steps per second fill a 1000ms sensor
	if math.Abs(s.Rate*64-1) > 1e-9 {
		t.Errorf("Expected rate 1/64, got %f", s.Rate)
	}

	d := NewSensor(CrystalKey{}, 0, -1)
	if d.Rate <= 0 {
		t.Error("Expected default activation time for zero millis")
	}
}

func TestTransformEndpoints(t *testing.T) {
	tr := TransformComponent{Center: vmath.V2(5, 0), Rotation: 0, Length: 10}
	a, b := tr.Endpoints()
	if !vmath.ApproxEqual(a, vmath.V2(0, 0), 1e-9) || !vmath.ApproxEqual(b, vmath.V2(10, 0), 1e-9) {
		t.Errorf("Expected (0,0)-(10,0), got %v-%v", a, b)
	}
}

func TestInventory(t *testing.T) {
	inv := InventoryComponent{}
	inv.Allowed[core.LightGreen] = true

	if inv.Available(core.LightPurple) {
		t.Error("Expected disallowed color to be unavailable")
	}
	if !inv.Consume(core.LightGreen) {
		t.Fatal("Expected first green to be consumed")
	}
	if inv.Consume(core.LightGreen) {
		t.Error("Expected second green to be rejected")
	}
	inv.Refill()
	if !inv.Available(core.LightGreen) {
		t.Error("Expected refill to restore green")
	}
}
