package physics

import (
	"github.com/automoto/firstperson/locomotion"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Body is an upright box-shaped rigid body. Its half height equals its
// vertical scale, so a unit-scale body is two units tall.
type Body struct {
	Radius float64
	Mass   float64
	// Drag damps horizontal velocity while grounded, per second.
	Drag       float64
	UseGravity bool
	Data       any

	world *World
	obj   *resolv.Object
	pos   mgl64.Vec3
	vel   mgl64.Vec3
	scale mgl64.Vec3
	yaw   float64
	// ground is the box the body rested on at the end of the last step.
	ground *Box
}

// AddBody registers a body centred at pos. Extra tags are added next to TagBody.
func (w *World) AddBody(pos mgl64.Vec3, radius, mass float64, tags ...string) *Body {
	b := &Body{
		Radius:     radius,
		Mass:       mass,
		UseGravity: true,
		world:      w,
		pos:        pos,
		scale:      mgl64.Vec3{1, 1, 1},
	}
	b.obj = w.newObject(pos.X()-radius, pos.Z()-radius, pos.X()+radius, pos.Z()+radius, append([]string{TagBody}, tags...)...)
	b.obj.Data = b
	w.bodies = append(w.bodies, b)
	return b
}

func (w *World) RemoveBody(b *Body) {
	w.space.Remove(b.obj)
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

func (b *Body) Velocity() mgl64.Vec3 { return b.vel }

func (b *Body) SetVelocity(v mgl64.Vec3) { b.vel = v }

// ApplyVelocityChange adds dv to the velocity regardless of mass.
func (b *Body) ApplyVelocityChange(dv mgl64.Vec3) {
	b.vel = b.vel.Add(dv)
}

// ApplyImpulse adds impulse/mass to the velocity.
func (b *Body) ApplyImpulse(impulse mgl64.Vec3) {
	m := b.Mass
	if m <= 0 {
		m = 1
	}
	b.vel = b.vel.Add(impulse.Mul(1 / m))
}

func (b *Body) Position() mgl64.Vec3 { return b.pos }

// SetPosition teleports the body and clears its velocity and support.
func (b *Body) SetPosition(p mgl64.Vec3) {
	b.pos = p
	b.vel = mgl64.Vec3{}
	b.ground = nil
	b.sync()
}

func (b *Body) LocalScale() mgl64.Vec3 { return b.scale }

// SetLocalScale resizes the body about its centre.
func (b *Body) SetLocalScale(s mgl64.Vec3) {
	b.scale = s
	b.ground = nil
}

func (b *Body) SetYaw(deg float64) { b.yaw = deg }
func (b *Body) Yaw() float64       { return b.yaw }

func (b *Body) HalfExtents() mgl64.Vec3 {
	return mgl64.Vec3{b.Radius, b.scale.Y(), b.Radius}
}

// Bounds returns the body's AABB.
func (b *Body) Bounds() (lo, hi mgl64.Vec3) {
	half := b.HalfExtents()
	return b.pos.Sub(half), b.pos.Add(half)
}

// Grounded reports whether the body rested on a box after the last step.
func (b *Body) Grounded() bool { return b.ground != nil }

// OutOfBounds reports whether the body fell below the world's kill plane.
func (b *Body) OutOfBounds() bool { return b.pos.Y() < b.world.KillY }

func (b *Body) Object() *resolv.Object { return b.obj }

func (b *Body) sync() {
	place(b.obj, b.pos.X()-b.Radius, b.pos.Z()-b.Radius, b.pos.X()+b.Radius, b.pos.Z()+b.Radius)
}

var (
	_ locomotion.RigidBody    = (*Body)(nil)
	_ locomotion.Transform    = (*Body)(nil)
	_ locomotion.SpatialQuery = (*World)(nil)
)
