package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"Zero", 0, 0},
		{"In range", 1.0, 1.0},
		{"Full turn", Tau, 0},
		{"Negative", -math.Pi / 2, 3 * math.Pi / 2},
		{"Multiple turns", 5*Tau + 0.5, 0.5},
		{"Tiny negative", -1e-18, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.in)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if got < 0 || got >= Tau {
				t.Errorf("Expected result in [0, 2π), got %v", got)
			}
		})
	}
}

func TestSignedAngleDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     float64
	}{
		{"Same", 1, 1, 0},
		{"Small positive", 0, 0.3, 0.3},
		{"Small negative", 0.3, 0, -0.3},
		{"Across zero forward", Tau - 0.1, 0.1, 0.2},
		{"Across zero backward", 0.1, Tau - 0.1, -0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SignedAngleDiff(tt.from, tt.to)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBearingTo(t *testing.T) {
	origin := V2F(1, 1)
	if got := BearingTo(origin, V2F(2, 1)); math.Abs(got) > eps {
		t.Errorf("Expected east bearing 0, got %v", got)
	}
	if got := BearingTo(origin, V2F(1, 2)); math.Abs(got-math.Pi/2) > eps {
		t.Errorf("Expected south bearing π/2 on y-down map, got %v", got)
	}
	if got := BearingTo(origin, V2F(1, 0)); math.Abs(got-3*math.Pi/2) > eps {
		t.Errorf("Expected north bearing 3π/2, got %v", got)
	}
}

func TestV2FStepToward(t *testing.T) {
	from := V2F(0, 0)
	got := V2FStepToward(from, V2F(3, 4), 0.5)
	if math.Abs(got.X-0.3) > eps || math.Abs(got.Y-0.4) > eps {
		t.Errorf("Expected (0.3, 0.4), got %v", got)
	}
	if same := V2FStepToward(from, from, 0.5); same != from {
		t.Errorf("Expected no movement for coincident points, got %v", same)
	}
}
