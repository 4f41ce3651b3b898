package gamemath

import (
	"math"
	"testing"
	"time"
)

const eps = 1e-9

func TestAdvance(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		dirX, dirY float64
		speed      float64
		elapsed    time.Duration
		wantX      float64
		wantY      float64
	}{
		{"stationary", 3, 4, 0, 0, 100, time.Second, 3, 4},
		{"one second east", 0, 0, 1, 0, 50, time.Second, 50, 0},
		{"half second north", 10, 10, 0, -1, 20, 500 * time.Millisecond, 10, 0},
		{"zero elapsed", 1, 1, 1, 0, 100, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Advance(tt.x, tt.y, tt.dirX, tt.dirY, tt.speed, tt.elapsed)
			if math.Abs(x-tt.wantX) > eps || math.Abs(y-tt.wantY) > eps {
				t.Fatalf("Advance() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestHeading(t *testing.T) {
	dx, dy, dist := Heading(0, 0, 3, 4)
	if math.Abs(dx-0.6) > eps || math.Abs(dy-0.8) > eps || math.Abs(dist-5) > eps {
		t.Fatalf("Heading() = (%v, %v, %v)", dx, dy, dist)
	}
	dx, dy, dist = Heading(2, 2, 2, 2)
	if dx != 0 || dy != 0 || dist != 0 {
		t.Fatalf("Heading() of coincident points = (%v, %v, %v)", dx, dy, dist)
	}
}

func TestStepTowardDoesNotOvershoot(t *testing.T) {
	x, y, arrived := StepToward(0, 0, 10, 0, 100, time.Second)
	if !arrived || x != 10 || y != 0 {
		t.Fatalf("StepToward() = (%v, %v, %v), want (10, 0, true)", x, y, arrived)
	}

	x, y, arrived = StepToward(0, 0, 10, 0, 5, time.Second)
	if arrived || math.Abs(x-5) > eps || y != 0 {
		t.Fatalf("StepToward() = (%v, %v, %v), want (5, 0, false)", x, y, arrived)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 5, 0); d != 5 {
		t.Fatalf("Distance() = %v, want 5", d)
	}
}
