package core

import "testing"

func TestBounceLimit(t *testing.T) {
	tests := []struct {
		color LightColor
		want  int
	}{
		{LightGreen, 1},
		{LightPurple, 2},
		{LightWhite, 1},
		{LightBlue, 1},
		{LightBlack, 0},
	}

	for _, tt := range tests {
		t.Run(tt.color.String(), func(t *testing.T) {
			if got := tt.color.BounceLimit(); got != tt.want {
				t.Errorf("Expected bounce limit %d, got %d", tt.want, got)
			}
		})
	}
}

func TestCollisionFilterChannels(t *testing.T) {
	wall := TerrainFilter
	whiteSeg, _ := LightWhite.SegmentFilter()
	blackSeg, _ := LightBlack.SegmentFilter()

	tests := []struct {
		name   string
		color  LightColor
		target CollisionFilter
		want   bool
	}{
		{"green hits wall", LightGreen, wall, true},
		{"green hits white segment", LightGreen, whiteSeg, true},
		{"green ignores black segment", LightGreen, blackSeg, false},
		{"blue hits white segment", LightBlue, whiteSeg, true},
		{"blue hits black segment", LightBlue, blackSeg, true},
		{"white ignores white segment", LightWhite, whiteSeg, false},
		{"black ignores white segment", LightBlack, whiteSeg, false},
		{"black hits sensor", LightBlack, SensorFilter, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.CollisionFilter().Interacts(tt.target); got != tt.want {
				t.Errorf("Expected interacts=%v, got %v", tt.want, got)
			}
		})
	}
}

func TestSegmentFilterOnlySolidColors(t *testing.T) {
	for c := LightColor(0); c < LightColorCount; c++ {
		_, ok := c.SegmentFilter()
		want := c == LightWhite || c == LightBlack
		if ok != want {
			t.Errorf("%s: expected solid segment=%v, got %v", c, want, ok)
		}
	}
}

func TestParseLightColor(t *testing.T) {
	for c := LightColor(0); c < LightColorCount; c++ {
		got, ok := ParseLightColor(c.String())
		if !ok || got != c {
			t.Errorf("Expected %s to parse back, got %v (ok=%v)", c, got, ok)
		}
	}
	if _, ok := ParseLightColor("red"); ok {
		t.Error("Expected unknown color name to fail")
	}
}
