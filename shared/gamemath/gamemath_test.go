package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestSmoothDampVec2Equilibrium(t *testing.T) {
	for _, dt := range []float64{0, 1.0 / 240, 1.0 / 60, 0.5, 3} {
		current := mgl64.Vec2{0.3, -0.7}
		vel := mgl64.Vec2{}
		out := SmoothDampVec2(current, current, &vel, 0.1, dt)
		if out != current {
			t.Fatalf("dt=%v: expected %v unchanged, got %v", dt, current, out)
		}
		if vel != (mgl64.Vec2{}) {
			t.Fatalf("dt=%v: expected zero velocity, got %v", dt, vel)
		}
	}
}

func TestSmoothDampVec2Converges(t *testing.T) {
	current := mgl64.Vec2{}
	target := mgl64.Vec2{1, -1}
	vel := mgl64.Vec2{}
	prevDist := target.Sub(current).Len()
	for i := 0; i < 120; i++ {
		current = SmoothDampVec2(current, target, &vel, 0.1, 1.0/60)
		dist := target.Sub(current).Len()
		if dist > prevDist+1e-12 {
			t.Fatalf("step %d: distance grew from %v to %v", i, prevDist, dist)
		}
		prevDist = dist
	}
	if !current.ApproxEqualThreshold(target, 1e-3) {
		t.Fatalf("expected convergence to %v, got %v", target, current)
	}
}

func TestSmoothDampVec2NeverOvershoots(t *testing.T) {
	current := mgl64.Vec2{0, 0}
	target := mgl64.Vec2{1, 0}
	vel := mgl64.Vec2{50, 0}
	out := SmoothDampVec2(current, target, &vel, 0.3, 1)
	if out.X() > target.X() {
		t.Fatalf("overshot target: %v", out)
	}
}

func TestSmoothDampVec2NonPositiveDt(t *testing.T) {
	current := mgl64.Vec2{0.5, 0.5}
	vel := mgl64.Vec2{1, 1}
	out := SmoothDampVec2(current, mgl64.Vec2{}, &vel, 0.1, -1)
	if out != current || vel != (mgl64.Vec2{1, 1}) {
		t.Fatalf("expected no change, got out=%v vel=%v", out, vel)
	}
}

func TestLerpAngleShortestPath(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{170, -170, 0.5, 180},
		{-170, 170, 0.5, -180},
		{10, 350, 1, -10},
		{0, 90, 0.5, 45},
		{0, 90, 2, 90},
		{0, 90, -1, 0},
		{30, 30, 0.7, 30},
	}
	for _, tc := range tests {
		got := LerpAngle(tc.a, tc.b, tc.t)
		if !approxEqual(got, tc.want, 1e-9) {
			t.Errorf("LerpAngle(%v, %v, %v) = %v, want %v", tc.a, tc.b, tc.t, got, tc.want)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := map[float64]float64{
		0:    0,
		190:  -170,
		-190: 170,
		720:  0,
		45:   45,
	}
	for in, want := range tests {
		if got := NormalizeAngle(in); !approxEqual(got, want, 1e-9) {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestClampHorizontal(t *testing.T) {
	got := ClampHorizontal(mgl64.Vec3{15, 4, -12}, 10)
	want := mgl64.Vec3{10, 0, -10}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if Significant(mgl64.Vec3{0.05, 9, -0.1}, 0.1) {
		t.Fatal("expected insignificant change")
	}
	if !Significant(mgl64.Vec3{0, 0, -0.11}, 0.1) {
		t.Fatal("expected significant change")
	}
}

func TestSeekVelocity(t *testing.T) {
	v := SeekVelocity(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{3, 0, 4}, 10)
	if !v.ApproxEqualThreshold(mgl64.Vec3{6, 0, 8}, 1e-9) {
		t.Fatalf("unexpected seek velocity %v", v)
	}
	if SeekVelocity(mgl64.Vec3{1, 0, 1}, mgl64.Vec3{1, 9, 1}, 3) != (mgl64.Vec3{}) {
		t.Fatal("expected zero velocity for coincident XZ points")
	}
}
