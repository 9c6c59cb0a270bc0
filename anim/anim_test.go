package anim

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) < eps
}

func TestPulseStaysInRange(t *testing.T) {
	p := NewPulse(1, 1.2, 1)
	if p.Value() != 1 {
		t.Fatalf("Value() = %f before update, want 1", p.Value())
	}

	var sawHigh bool
	for i := 0; i < 600; i++ {
		v := p.Update(1.0 / 60)
		if v < 1-1e-4 || v > 1.2+1e-4 {
			t.Fatalf("frame %d: value %f out of [1, 1.2]", i, v)
		}
		if v > 1.19 {
			sawHigh = true
		}
	}
	if !sawHigh {
		t.Error("pulse never reached its high value")
	}
}

func TestPulseReturnsToLow(t *testing.T) {
	p := NewPulse(0, 10, 2)
	if v := p.Update(1); !approxEqual(v, 10, 1e-3) {
		t.Fatalf("after half a period value = %f, want 10", v)
	}
	if v := p.Update(1); !approxEqual(v, 0, 1e-3) {
		t.Fatalf("after a full period value = %f, want 0", v)
	}

	p.Update(0.5)
	p.Reset()
	if p.Value() != 0 {
		t.Errorf("Value() = %f after Reset, want 0", p.Value())
	}
}

func TestFade(t *testing.T) {
	f := NewFade(0.5)
	if f.Done() || f.Value() != 0 {
		t.Fatalf("new fade: value %f, done %v", f.Value(), f.Done())
	}

	mid := f.Update(0.25)
	if mid <= 0 || mid >= 1 {
		t.Errorf("midway value = %f, want in (0, 1)", mid)
	}

	f.Update(0.5)
	if !f.Done() || !approxEqual(f.Value(), 1, 1e-4) {
		t.Errorf("finished fade: value %f, done %v", f.Value(), f.Done())
	}
	if v := f.Update(1); !approxEqual(v, 1, 1e-4) {
		t.Errorf("fade moved after finishing: %f", v)
	}

	f.Restart()
	if f.Done() || f.Value() != 0 {
		t.Errorf("restarted fade: value %f, done %v", f.Value(), f.Done())
	}
}
