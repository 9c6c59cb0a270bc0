package types

import (
	"math"
	"testing"
)

func TestMoveDelay(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		score int
		want  float64
	}{
		{name: "fresh game", score: 0, want: 0.06},
		{name: "two points", score: 2, want: 0.056},
		{name: "reaches floor", score: 5, want: 0.05},
		{name: "clamped at score 10", score: 10, want: 0.05},
		{name: "clamped far past floor", score: 500, want: 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cfg.MoveDelay(tt.score)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("MoveDelay(%d) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestMoveDelayMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	prev := cfg.MoveDelay(0)
	for score := 1; score < 100; score++ {
		d := cfg.MoveDelay(score)
		if d > prev {
			t.Fatalf("delay grew from %v to %v at score %d", prev, d, score)
		}
		prev = d
	}
}

func TestSpeedMultiplier(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.SpeedMultiplier(0.06); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("SpeedMultiplier(0.06) = %v, want 2.5", got)
	}
	if got := cfg.SpeedMultiplier(0); got != 0 {
		t.Errorf("SpeedMultiplier(0) = %v, want 0", got)
	}
}

func TestDefaultGrid(t *testing.T) {
	g := DefaultConfig().Grid
	if g.Width != 40 || g.Height != 22 {
		t.Fatalf("grid = %dx%d, want 40x22", g.Width, g.Height)
	}
	if !g.Contains(Point{X: 39, Y: 21}) {
		t.Error("last cell should be inside the grid")
	}
	for _, p := range []Point{{X: 40, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 22}, {X: 0, Y: -1}} {
		if g.Contains(p) {
			t.Errorf("%v should be outside the grid", p)
		}
	}
}

func TestDirectionRoundTrip(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		if got := DirectionOf(d.ToPoint()); got != d {
			t.Errorf("DirectionOf(%v.ToPoint()) = %v", d, got)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, d.Opposite().Opposite())
		}
		if d.Horizontal() == d.Vertical() {
			t.Errorf("%v must be on exactly one axis", d)
		}
	}
	if DirectionOf(Point{X: 1, Y: 1}) != None {
		t.Error("diagonal should map to None")
	}
}
