// Package weapons holds weapon selection, firing cadence and projectile
// paths. Entity creation stays with the caller.
package weapons

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind identifies a weapon.
type Kind int

const (
	None Kind = iota
	WaterGun
	Plunger
	Whirlpool
	// Sludge is thrown by enemies and never equipped.
	Sludge
)

func (k Kind) String() string {
	switch k {
	case WaterGun:
		return "water gun"
	case Plunger:
		return "plunger"
	case Whirlpool:
		return "whirlpool"
	case Sludge:
		return "sludge"
	}
	return "none"
}

// Hostile reports whether shots of this kind come from enemies.
func (k Kind) Hostile() bool { return k == Sludge }

// Selector tracks the equipped weapon.
type Selector struct {
	active Kind
}

// Select equips k, or holsters when k is already equipped or None.
func (s *Selector) Select(k Kind) Kind {
	if k == s.active {
		k = None
	}
	s.active = k
	return s.active
}

func (s *Selector) Active() Kind { return s.active }

// Aim is where the shooter is looking from.
type Aim struct {
	Eye     mgl64.Vec3
	Forward mgl64.Vec3 // unit view direction
	Right   mgl64.Vec3 // unit horizontal right
}

// Shot describes one projectile to spawn.
type Shot struct {
	Kind     Kind
	Origin   mgl64.Vec3
	Velocity mgl64.Vec3
	Lifetime float64
}

func muzzle(a Aim, offset float64) mgl64.Vec3 {
	return a.Eye.Add(a.Forward.Mul(offset))
}

// WaterGunTrigger fires while held, no faster than once per Rate seconds.
type WaterGunTrigger struct {
	Rate     float64
	Speed    float64
	Lifetime float64
	Muzzle   float64

	cooldown float64
}

// Fire advances the cadence by dt and returns a shot when one is due.
func (w *WaterGunTrigger) Fire(held bool, aim Aim, dt float64) (Shot, bool) {
	if w.cooldown > 0 {
		w.cooldown -= dt
	}
	if !held || w.cooldown > 0 {
		return Shot{}, false
	}
	w.cooldown = w.Rate
	return Shot{
		Kind:     WaterGun,
		Origin:   muzzle(aim, w.Muzzle),
		Velocity: aim.Forward.Mul(w.Speed),
		Lifetime: w.Lifetime,
	}, true
}

// PlungerLauncher fires one plunger per press, cycling left, centre, right.
type PlungerLauncher struct {
	Speed    float64
	Lifetime float64
	Spread   float64
	Muzzle   float64

	next int
}

var firePoints = [...]float64{-1, 0, 1}

func (p *PlungerLauncher) Fire(pressed bool, aim Aim) (Shot, bool) {
	if !pressed {
		return Shot{}, false
	}
	side := firePoints[p.next]
	p.next = (p.next + 1) % len(firePoints)

	return Shot{
		Kind:     Plunger,
		Origin:   muzzle(aim, p.Muzzle).Add(aim.Right.Mul(side * p.Spread)),
		Velocity: aim.Forward.Mul(p.Speed),
		Lifetime: p.Lifetime,
	}, true
}

// WhirlpoolCaster allows a single live whirlpool at a time.
type WhirlpoolCaster struct {
	SpiralSpeed   float64
	RadialSpeed   float64
	Lifetime      float64
	TailInterval  float64
	MaxTailPoints int
	Muzzle        float64

	active bool
}

// Fire returns a new spiral when pressed and no whirlpool is live.
func (w *WhirlpoolCaster) Fire(pressed bool, aim Aim) (*Spiral, bool) {
	if !pressed || w.active {
		return nil, false
	}
	w.active = true

	forward := mgl64.Vec3{aim.Forward.X(), 0, aim.Forward.Z()}
	if forward.Len() < 1e-6 {
		forward = mgl64.Vec3{0, 0, 1}
	}
	forward = forward.Normalize()

	return &Spiral{
		Origin:       muzzle(aim, w.Muzzle),
		Forward:      forward,
		Right:        mgl64.Vec3{forward.Z(), 0, -forward.X()},
		SpiralSpeed:  w.SpiralSpeed,
		RadialSpeed:  w.RadialSpeed,
		Lifetime:     w.Lifetime,
		tailInterval: w.TailInterval,
		maxTail:      w.MaxTailPoints,
	}, true
}

// Release frees the single-active slot once the live whirlpool is gone.
func (w *WhirlpoolCaster) Release() { w.active = false }

func (w *WhirlpoolCaster) Active() bool { return w.active }

// Spiral moves outward from Origin in the horizontal plane, leaving a tail.
type Spiral struct {
	Origin      mgl64.Vec3
	Forward     mgl64.Vec3
	Right       mgl64.Vec3
	SpiralSpeed float64
	RadialSpeed float64
	Lifetime    float64

	age          float64
	sinceSample  float64
	tailInterval float64
	maxTail      int
	tail         []mgl64.Vec3
}

// Advance moves the spiral forward by dt and returns its new position.
func (s *Spiral) Advance(dt float64) mgl64.Vec3 {
	s.age += dt
	pos := s.Position()

	s.sinceSample += dt
	if s.tailInterval > 0 && s.sinceSample >= s.tailInterval {
		s.sinceSample = 0
		s.tail = append(s.tail, pos)
		if s.maxTail > 0 && len(s.tail) > s.maxTail {
			s.tail = s.tail[len(s.tail)-s.maxTail:]
		}
	}
	return pos
}

// Position is the point on the spiral at the current age.
func (s *Spiral) Position() mgl64.Vec3 {
	angle := s.age * s.SpiralSpeed
	radius := s.age * s.RadialSpeed
	offset := s.Right.Mul(math.Cos(angle) * radius).Add(s.Forward.Mul(math.Sin(angle) * radius))
	return s.Origin.Add(offset)
}

func (s *Spiral) Age() float64       { return s.age }
func (s *Spiral) Expired() bool      { return s.age >= s.Lifetime }
func (s *Spiral) Tail() []mgl64.Vec3 { return s.tail }
