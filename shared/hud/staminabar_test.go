package hud

import (
	"math"
	"testing"
)

const fixedDt = 0.02

func TestBarHiddenWithUnlimitedSprint(t *testing.T) {
	b := NewStaminaBar(true, 5, 3)
	got := b.Update(StaminaReading{Remaining: 5, Duration: 5, Sprinting: true, Unlimited: true}, fixedDt)
	if got.Visible {
		t.Fatalf("bar visible with unlimited sprint: %+v", got)
	}
}

func TestBarAlwaysShownWithoutFade(t *testing.T) {
	b := NewStaminaBar(false, 5, 3)
	got := b.Update(StaminaReading{Remaining: 2.5, Duration: 5}, fixedDt)
	if !got.Visible || got.Alpha != 1 || got.Fill != 0.5 {
		t.Fatalf("Update() = %+v, want visible half bar at full alpha", got)
	}
}

func TestBarFadesInWhileSprinting(t *testing.T) {
	b := NewStaminaBar(true, 5, 3)
	if b.Alpha() != 0 {
		t.Fatalf("initial alpha = %v, want 0", b.Alpha())
	}

	got := b.Update(StaminaReading{Remaining: 4, Duration: 5, Sprinting: true}, fixedDt)
	if math.Abs(got.Alpha-0.1) > 1e-9 {
		t.Fatalf("alpha after one sprint tick = %v, want 0.1", got.Alpha)
	}
	for i := 0; i < 20; i++ {
		got = b.Update(StaminaReading{Remaining: 4, Duration: 5, Sprinting: true}, fixedDt)
	}
	if got.Alpha != 1 {
		t.Fatalf("alpha = %v, want clamped to 1", got.Alpha)
	}
}

func TestBarHoldsWhileRegenerating(t *testing.T) {
	b := NewStaminaBar(true, 5, 3)
	b.Update(StaminaReading{Remaining: 4, Duration: 5, Sprinting: true}, fixedDt)
	before := b.Alpha()

	got := b.Update(StaminaReading{Remaining: 4.2, Duration: 5}, fixedDt)
	if got.Alpha != before {
		t.Fatalf("alpha changed while regenerating: %v -> %v", before, got.Alpha)
	}
}

func TestBarFadesOutWhenFull(t *testing.T) {
	b := NewStaminaBar(true, 5, 3)
	// Past the point where the fade-in clamps to 1.
	for i := 0; i < 20; i++ {
		b.Update(StaminaReading{Remaining: 4, Duration: 5, Sprinting: true}, fixedDt)
	}
	if b.Alpha() != 1 {
		t.Fatalf("setup alpha = %v, want 1", b.Alpha())
	}

	got := b.Update(StaminaReading{Remaining: 5, Duration: 5}, fixedDt)
	if math.Abs(got.Alpha-0.94) > 1e-9 {
		t.Fatalf("alpha = %v, want 0.94", got.Alpha)
	}
	for i := 0; i < 100; i++ {
		got = b.Update(StaminaReading{Remaining: 5, Duration: 5}, fixedDt)
	}
	if got.Alpha != 0 || got.Visible {
		t.Fatalf("Update() = %+v, want hidden at alpha 0", got)
	}
}

func TestBarRect(t *testing.T) {
	r := BarRect(1000, 500, 0.3, 0.015)
	if r.W != 300 || r.X != 350 {
		t.Errorf("width/x = %v/%v, want 300/350", r.W, r.X)
	}
	if math.Abs(r.H-7.5) > 1e-9 {
		t.Errorf("height = %v, want 7.5", r.H)
	}
	if f := r.Filled(0.5); f.W != 150 || f.X != r.X {
		t.Errorf("Filled(0.5) = %+v", f)
	}
	if f := r.Filled(2); f.W != r.W {
		t.Errorf("Filled(2) width = %v, want clamped %v", f.W, r.W)
	}
}
