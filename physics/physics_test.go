package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const step = 1.0 / 60

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// newFloorWorld builds a 20x20 world with a floor whose top is at y=0.
func newFloorWorld() (*World, *Box) {
	w := NewWorld(20, 20, 1, -9.81)
	floor := w.AddBox(mgl64.Vec3{0, -1, 0}, mgl64.Vec3{20, 0, 20})
	return w, floor
}

func TestCastRayGroundDistances(t *testing.T) {
	w, _ := newFloorWorld()
	down := mgl64.Vec3{0, -1, 0}

	hit, ok := w.CastRay(mgl64.Vec3{5, 0.5, 5}, down, 0.85)
	if !ok {
		t.Fatal("expected a hit at 0.5")
	}
	if !approxEqual(hit.Distance, 0.5, 1e-12) || hit.Normal != (mgl64.Vec3{0, 1, 0}) {
		t.Fatalf("unexpected hit %+v", hit)
	}
	if _, ok := w.CastRay(mgl64.Vec3{5, 2, 5}, down, 0.85); ok {
		t.Fatal("expected no hit at 2.0")
	}
}

func TestCastRayIgnoresBoxesAroundOrigin(t *testing.T) {
	w, _ := newFloorWorld()
	if _, ok := w.CastRay(mgl64.Vec3{5, -0.5, 5}, mgl64.Vec3{0, -1, 0}, 5); ok {
		t.Fatal("ray starting inside a box must not hit it")
	}
}

func TestCastRayPicksClosest(t *testing.T) {
	w, _ := newFloorWorld()
	w.AddBox(mgl64.Vec3{4, 0, 4}, mgl64.Vec3{6, 1, 6})
	hit, ok := w.CastRay(mgl64.Vec3{5, 3, 5}, mgl64.Vec3{0, -1, 0}, 10)
	if !ok || !approxEqual(hit.Distance, 2, 1e-12) {
		t.Fatalf("expected the step top at distance 2, got %+v ok=%v", hit, ok)
	}
}

func TestCastRayHorizontal(t *testing.T) {
	w, _ := newFloorWorld()
	w.AddBox(mgl64.Vec3{10, 0, 0}, mgl64.Vec3{11, 3, 20})
	hit, ok := w.CastRay(mgl64.Vec3{2, 1, 5}, mgl64.Vec3{1, 0, 0}, 20)
	if !ok || !approxEqual(hit.Distance, 8, 1e-12) || hit.Normal != (mgl64.Vec3{-1, 0, 0}) {
		t.Fatalf("expected wall at 8 facing -X, got %+v ok=%v", hit, ok)
	}
}

func TestBodyFallsAndLands(t *testing.T) {
	w, floor := newFloorWorld()
	b := w.AddBody(mgl64.Vec3{5, 3, 5}, 0.4, 1)
	for i := 0; i < 120; i++ {
		w.Step(step)
	}
	if !b.Grounded() {
		t.Fatal("expected body to land")
	}
	if !approxEqual(b.Position().Y(), floor.Top()+1, 1e-3) {
		t.Fatalf("expected to rest at y=1, got %v", b.Position().Y())
	}
	if b.Velocity().Y() != 0 {
		t.Fatalf("expected vertical velocity cleared, got %v", b.Velocity().Y())
	}
}

func TestBodyStaysGroundedAtRest(t *testing.T) {
	w, _ := newFloorWorld()
	b := w.AddBody(mgl64.Vec3{5, 1.5, 5}, 0.4, 1)
	for i := 0; i < 60; i++ {
		w.Step(step)
	}
	for i := 0; i < 60; i++ {
		w.Step(step)
		if !b.Grounded() {
			t.Fatalf("step %d: resting body lost ground", i)
		}
	}
}

func TestBodyBlockedByWall(t *testing.T) {
	w, _ := newFloorWorld()
	w.AddBox(mgl64.Vec3{8, 0, 0}, mgl64.Vec3{9, 3, 20})
	b := w.AddBody(mgl64.Vec3{5, 1, 5}, 0.4, 1)
	b.SetVelocity(mgl64.Vec3{10, 0, 0})
	for i := 0; i < 60; i++ {
		w.Step(step)
	}
	if b.Position().X() > 8-0.4 {
		t.Fatalf("body passed into the wall: x=%v", b.Position().X())
	}
	if b.Velocity().X() != 0 {
		t.Fatalf("expected x velocity cleared on contact, got %v", b.Velocity().X())
	}
}

func TestImpulseUsesMass(t *testing.T) {
	w, _ := newFloorWorld()
	b := w.AddBody(mgl64.Vec3{5, 1, 5}, 0.4, 2)
	b.ApplyImpulse(mgl64.Vec3{0, 10, 0})
	if b.Velocity() != (mgl64.Vec3{0, 5, 0}) {
		t.Fatalf("expected velocity 5 up, got %v", b.Velocity())
	}
	b.ApplyVelocityChange(mgl64.Vec3{1, 0, 0})
	if b.Velocity() != (mgl64.Vec3{1, 5, 0}) {
		t.Fatalf("velocity change must ignore mass, got %v", b.Velocity())
	}
}

func TestMovingBoxCarriesRider(t *testing.T) {
	w, _ := newFloorWorld()
	platform := w.AddBox(mgl64.Vec3{2, 1, 2}, mgl64.Vec3{6, 1.5, 6}, TagPlatform)
	b := w.AddBody(mgl64.Vec3{4, 2.6, 4}, 0.4, 1)
	for i := 0; i < 30; i++ {
		w.Step(step)
	}
	if !b.Grounded() {
		t.Fatal("expected the body to rest on the platform")
	}
	y := b.Position().Y()
	platform.MoveTo(platform.Min.Add(mgl64.Vec3{0, 0.5, 0}))
	if !approxEqual(b.Position().Y(), y+0.5, 1e-12) {
		t.Fatalf("rider did not move with the platform: %v -> %v", y, b.Position().Y())
	}
}

func TestBodiesNear(t *testing.T) {
	w, _ := newFloorWorld()
	enemy := w.AddBody(mgl64.Vec3{10, 1, 10}, 0.5, 1, TagEnemy)
	w.AddBody(mgl64.Vec3{2, 1, 2}, 0.5, 1, TagPlayer)

	got := w.BodiesNear(mgl64.Vec3{10.8, 1, 10}, 0.4, TagEnemy)
	if len(got) != 1 || got[0] != enemy {
		t.Fatalf("expected the enemy, got %v", got)
	}
	if got := w.BodiesNear(mgl64.Vec3{10.55, 1, 10.2}, 0.1, TagEnemy); len(got) != 1 {
		t.Fatalf("expected a projectile-sized query to find the enemy, got %v", got)
	}
	if got := w.BodiesNear(mgl64.Vec3{12, 1, 10}, 0.4, TagEnemy); len(got) != 0 {
		t.Fatalf("expected nothing in range, got %v", got)
	}
	if got := w.BodiesNear(mgl64.Vec3{10, 1, 10}, 0.4, TagPlayer); len(got) != 0 {
		t.Fatalf("tag filter ignored, got %v", got)
	}
}

func TestOutOfBounds(t *testing.T) {
	w := NewWorld(20, 20, 1, -9.81)
	w.KillY = -5
	b := w.AddBody(mgl64.Vec3{5, 0, 5}, 0.4, 1)
	for i := 0; i < 120 && !b.OutOfBounds(); i++ {
		w.Step(step)
	}
	if !b.OutOfBounds() {
		t.Fatal("expected the body to fall out of bounds")
	}
}
