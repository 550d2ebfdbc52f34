package light

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/lightbeam/component"
	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/physics"
	"github.com/lixenwraith/lightbeam/vmath"
)

type kindSet struct {
	mirrors     map[core.Entity]bool
	terminators map[core.Entity]bool
}

func newKinds() *kindSet {
	return &kindSet{mirrors: map[core.Entity]bool{}, terminators: map[core.Entity]bool{}}
}

func (k *kindSet) IsMirror(e core.Entity) bool     { return k.mirrors[e] }
func (k *kindSet) IsTerminator(e core.Entity) bool { return k.terminators[e] }

func beam(color core.LightColor, budget float64) component.BeamSourceComponent {
	return component.BeamSourceComponent{
		Origin:       vmath.V2(0, 0),
		Direction:    vmath.V2(1, 0),
		TravelBudget: budget,
		Color:        color,
	}
}

// corridor builds vertical walls at x=-10 and x=10
func corridor() *physics.Space {
	s := physics.NewSpace()
	s.AddBox(1, vmath.V2(10, -50), vmath.V2(12, 50), core.TerrainFilter)
	s.AddBox(2, vmath.V2(-12, -50), vmath.V2(-10, 50), core.TerrainFilter)
	return s
}

func TestPlayUnobstructed(t *testing.T) {
	pb, err := Play(physics.NewSpace(), newKinds(), beam(core.LightGreen, 50))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(pb.Intersections) != 0 {
		t.Errorf("Expected no intersections, got %d", len(pb.Intersections))
	}
	if !pb.HasEnd || !vmath.ApproxEqual(pb.EndPoint, vmath.V2(50, 0), 1e-9) {
		t.Errorf("Expected end point (50,0), got %v (has=%v)", pb.EndPoint, pb.HasEnd)
	}
	if pb.Elapsed != 50 {
		t.Errorf("Expected elapsed 50, got %f", pb.Elapsed)
	}
}

func TestPlayBounceCap(t *testing.T) {
	tests := []struct {
		color core.LightColor
		want  int
	}{
		{core.LightGreen, 2},
		{core.LightWhite, 2},
		{core.LightBlue, 2},
		{core.LightPurple, 3},
		{core.LightBlack, 1},
	}

	for _, tt := range tests {
		t.Run(tt.color.String(), func(t *testing.T) {
			pb, err := Play(corridor(), newKinds(), beam(tt.color, 1000))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(pb.Intersections) != tt.want {
				t.Errorf("Expected %d intersections, got %d", tt.want, len(pb.Intersections))
			}
			if pb.HasEnd {
				t.Error("Expected chain to stop on bounce limit without an end point")
			}
			for i := 1; i < len(pb.Intersections); i++ {
				if pb.Intersections[i].Distance <= pb.Intersections[i-1].Distance {
					t.Errorf("Expected cumulative distances to increase at %d", i)
				}
			}
		})
	}
}

func TestPlayCumulativeDistance(t *testing.T) {
	pb, _ := Play(corridor(), newKinds(), beam(core.LightPurple, 1000))
	want := []float64{10, 30, 50}
	for i, w := range want {
		if math.Abs(pb.Intersections[i].Distance-w) > 1e-9 {
			t.Errorf("Expected distance %f at %d, got %f", w, i, pb.Intersections[i].Distance)
		}
	}
}

func TestPlayMirrorBonus(t *testing.T) {
	s := physics.NewSpace()
	kinds := newKinds()

	// 45 degree mirror at (20,0) turns +x into +y; a wall above sends it back down onto the mirror
	s.AddSegment(10, vmath.V2(15, -5), vmath.V2(25, 5), core.TerrainFilter)
	kinds.mirrors[10] = true
	s.AddBox(11, vmath.V2(0, 20), vmath.V2(40, 22), core.TerrainFilter)

	pb, err := Play(s, kinds, beam(core.LightGreen, 1000))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(pb.Intersections) != 3 {
		t.Fatalf("Expected 3 intersections, got %d", len(pb.Intersections))
	}
	targets := []core.Entity{10, 11, 10}
	for i, want := range targets {
		if pb.Intersections[i].Target != want {
			t.Errorf("Expected target %d at %d, got %d", want, i, pb.Intersections[i].Target)
		}
	}
	if !vmath.ApproxEqual(pb.Intersections[1].Point, vmath.V2(20, 20), 1e-9) {
		t.Errorf("Expected wall hit at (20,20), got %v", pb.Intersections[1].Point)
	}
}

func TestPlayBlackIgnoresMirrorBonus(t *testing.T) {
	s := physics.NewSpace()
	kinds := newKinds()

	s.AddSegment(10, vmath.V2(15, -5), vmath.V2(25, 5), core.TerrainFilter)
	kinds.mirrors[10] = true
	s.AddBox(11, vmath.V2(0, 20), vmath.V2(40, 22), core.TerrainFilter)

	pb, err := Play(s, kinds, beam(core.LightBlack, 1000))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(pb.Intersections) != 1 {
		t.Fatalf("Expected black chain of 1, got %d", len(pb.Intersections))
	}
	if pb.Intersections[0].Target != 10 {
		t.Errorf("Expected stop at mirror 10, got %d", pb.Intersections[0].Target)
	}
	if pb.HasEnd {
		t.Error("Expected no end point past the mirror")
	}
}

func TestPlayTerminator(t *testing.T) {
	s := corridor()
	kinds := newKinds()
	kinds.terminators[1] = true

	pb, _ := Play(s, kinds, beam(core.LightPurple, 1000))
	if len(pb.Intersections) != 1 {
		t.Fatalf("Expected 1 intersection, got %d", len(pb.Intersections))
	}
	if pb.HasEnd {
		t.Error("Expected no end point after terminator")
	}
}

func TestPlayStartsInsideCollider(t *testing.T) {
	s := physics.NewSpace()
	s.AddBox(1, vmath.V2(-5, -5), vmath.V2(5, 5), core.TerrainFilter)

	pb, _ := Play(s, newKinds(), beam(core.LightGreen, 100))
	if len(pb.Intersections) != 0 || pb.HasEnd {
		t.Errorf("Expected blocked beam, got %d intersections (end=%v)", len(pb.Intersections), pb.HasEnd)
	}
}

func TestPlayPhysicsUnavailable(t *testing.T) {
	pb, err := Play(nil, newKinds(), beam(core.LightGreen, 100))
	if !errors.Is(err, ErrPhysicsUnavailable) {
		t.Errorf("Expected ErrPhysicsUnavailable, got %v", err)
	}
	if len(pb.Intersections) != 0 || pb.HasEnd {
		t.Error("Expected empty playback")
	}
}

// mirrorHall returns a fresh mirror one unit ahead on every cast
type mirrorHall struct {
	next core.Entity
}

func (m *mirrorHall) CastRay(origin, dir vmath.Vec2, maxDist float64, _ core.CollisionFilter, _ core.Entity) (physics.Hit, bool) {
	if maxDist < 1 {
		return physics.Hit{}, false
	}
	m.next++
	return physics.Hit{Entity: m.next, Point: origin.Add(dir.Scale(1)), Normal: dir.Perp(), Distance: 1}, true
}

type allMirrors struct{}

func (allMirrors) IsMirror(core.Entity) bool     { return true }
func (allMirrors) IsTerminator(core.Entity) bool { return false }

func TestPlayAbsoluteCap(t *testing.T) {
	pb, _ := Play(&mirrorHall{}, allMirrors{}, beam(core.LightPurple, 1000))
	if len(pb.Intersections) != constant.MaxBeamIntersections {
		t.Errorf("Expected cap %d, got %d", constant.MaxBeamIntersections, len(pb.Intersections))
	}
}

func TestPlayDeterministic(t *testing.T) {
	a, _ := Play(corridor(), newKinds(), beam(core.LightPurple, 37))
	b, _ := Play(corridor(), newKinds(), beam(core.LightPurple, 37))
	if len(a.Intersections) != len(b.Intersections) || a.EndPoint != b.EndPoint || a.Elapsed != b.Elapsed {
		t.Error("Expected identical playbacks")
	}
	for i := range a.Intersections {
		if a.Intersections[i] != b.Intersections[i] {
			t.Errorf("Expected identical intersection at %d", i)
		}
	}
}

func TestPreviewUsesLargeBudget(t *testing.T) {
	pts := Preview(corridor(), newKinds(), vmath.V2(0, 0), vmath.V2(1, 0), core.LightGreen)
	// origin + 2 bounces
	if len(pts) != 3 {
		t.Fatalf("Expected 3 preview points, got %d", len(pts))
	}
	if Preview(nil, newKinds(), vmath.V2(0, 0), vmath.V2(1, 0), core.LightGreen) != nil {
		t.Error("Expected nil preview without physics")
	}
}
