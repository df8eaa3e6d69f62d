package locomotion

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// fakeBody is a body without integration: velocity changes accumulate and
// the pose only moves when a test sets it.
type fakeBody struct {
	pos   mgl64.Vec3
	scale mgl64.Vec3
	vel   mgl64.Vec3
	yaw   float64

	changes         []mgl64.Vec3
	impulses        []mgl64.Vec3
	scaleAtImpulses []mgl64.Vec3
}

func newFakeBody(pos mgl64.Vec3) *fakeBody {
	return &fakeBody{pos: pos, scale: mgl64.Vec3{1, 1, 1}}
}

func (b *fakeBody) Velocity() mgl64.Vec3 { return b.vel }

func (b *fakeBody) ApplyVelocityChange(dv mgl64.Vec3) {
	b.changes = append(b.changes, dv)
	b.vel = b.vel.Add(dv)
}

func (b *fakeBody) ApplyImpulse(impulse mgl64.Vec3) {
	b.impulses = append(b.impulses, impulse)
	b.scaleAtImpulses = append(b.scaleAtImpulses, b.scale)
	b.vel = b.vel.Add(impulse)
}

func (b *fakeBody) Position() mgl64.Vec3           { return b.pos }
func (b *fakeBody) LocalScale() mgl64.Vec3         { return b.scale }
func (b *fakeBody) SetLocalScale(scale mgl64.Vec3) { b.scale = scale }
func (b *fakeBody) SetYaw(deg float64)             { b.yaw = deg }

type fakeCamera struct {
	pitch float64
	fov   float64
}

func (c *fakeCamera) SetPitch(deg float64)       { c.pitch = deg }
func (c *fakeCamera) SetFieldOfView(deg float64) { c.fov = deg }

type fakeJoint struct {
	pos mgl64.Vec3
}

func (j *fakeJoint) LocalPosition() mgl64.Vec3      { return j.pos }
func (j *fakeJoint) SetLocalPosition(p mgl64.Vec3) { j.pos = p }

// flatGround is an infinite floor at height, optionally limited to x <= edgeX.
type flatGround struct {
	height float64
	edgeX  float64
	casts  int
}

func newFlatGround(height float64) *flatGround {
	return &flatGround{height: height, edgeX: math.Inf(1)}
}

func (g *flatGround) CastRay(origin, dir mgl64.Vec3, maxDist float64) (RayHit, bool) {
	g.casts++
	if dir.Y() >= 0 || origin.X() > g.edgeX {
		return RayHit{}, false
	}
	dist := (origin.Y() - g.height) / -dir.Y()
	if dist < 0 || dist > maxDist {
		return RayHit{}, false
	}
	return RayHit{
		Point:    origin.Add(dir.Mul(dist)),
		Normal:   mgl64.Vec3{0, 1, 0},
		Distance: dist,
	}, true
}

type testRig struct {
	body   *fakeBody
	camera *fakeCamera
	joint  *fakeJoint
	ground *flatGround
}

func (r testRig) rig() Rig {
	return Rig{Body: r.body, Transform: r.body, Camera: r.camera, Query: r.ground, Joint: r.joint}
}

// newTestController builds a controller standing 0.5 above a flat floor.
func newTestController(t *testing.T, s Settings) (*Controller, testRig) {
	tr := testRig{
		body:   newFakeBody(mgl64.Vec3{0, 1, 0}),
		camera: &fakeCamera{},
		joint:  &fakeJoint{pos: mgl64.Vec3{0, 0.8, 0}},
		ground: newFlatGround(0),
	}
	t.Helper()
	c, err := New(s, tr.rig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c, tr
}
