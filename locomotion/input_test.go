package locomotion

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestInputSamplerInvalidAxesBecomeZero(t *testing.T) {
	s := NewInputSampler(0.3, 0.1)
	look, move := s.Sample(
		mgl64.Vec2{math.NaN(), 0.5},
		mgl64.Vec2{math.Inf(1), math.Inf(-1)},
		1.0/60,
	)
	for _, v := range []float64{look.X(), look.Y(), move.X(), move.Y()} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite output leaked: look=%v move=%v", look, move)
		}
	}
	if look.X() != 0 {
		t.Fatalf("expected NaN look x to be treated as zero, got %v", look.X())
	}
	if look.Y() <= 0 {
		t.Fatalf("expected valid look y to still drive the filter, got %v", look.Y())
	}
	if move != (mgl64.Vec2{}) {
		t.Fatalf("expected zero move, got %v", move)
	}
	if s.Anomalies() != 3 {
		t.Fatalf("expected 3 anomalies, got %d", s.Anomalies())
	}
}

func TestInputSamplerMoveRange(t *testing.T) {
	s := NewInputSampler(0.3, 0.1)
	_, move := s.Sample(mgl64.Vec2{25, -40}, mgl64.Vec2{1.5, 1}, 1.0/60)
	if move.X() != 0 {
		t.Fatalf("expected out-of-range move x to be dropped, got %v", move.X())
	}
	if move.Y() <= 0 {
		t.Fatalf("expected move y to respond, got %v", move.Y())
	}
	if s.Anomalies() != 1 {
		t.Fatalf("large look deltas must not count as anomalies, got %d", s.Anomalies())
	}
}

func TestInputSamplerEquilibrium(t *testing.T) {
	s := NewInputSampler(0.3, 0.1)
	for i := 0; i < 10; i++ {
		look, move := s.Sample(mgl64.Vec2{}, mgl64.Vec2{}, 1.0/60)
		if look != (mgl64.Vec2{}) || move != (mgl64.Vec2{}) {
			t.Fatalf("frame %d: expected zero at rest, got look=%v move=%v", i, look, move)
		}
	}
}

func TestInputSamplerMoveFasterThanLook(t *testing.T) {
	s := NewInputSampler(0.3, 0.1)
	var look, move mgl64.Vec2
	for i := 0; i < 6; i++ {
		look, move = s.Sample(mgl64.Vec2{1, 0}, mgl64.Vec2{1, 0}, 1.0/60)
	}
	if move.X() <= look.X() {
		t.Fatalf("expected move filter to settle faster: look=%v move=%v", look.X(), move.X())
	}
	if move.X() > 1 || look.X() > 1 {
		t.Fatalf("filters overshot: look=%v move=%v", look.X(), move.X())
	}
}
