// Package ai drives enemies that chase a target and throw at it.
package ai

import (
	"errors"
	"math"

	"github.com/automoto/firstperson/locomotion"
	"github.com/automoto/firstperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Body is the physics body an enemy steers.
type Body interface {
	Position() mgl64.Vec3
	Velocity() mgl64.Vec3
	ApplyVelocityChange(dv mgl64.Vec3)
	Yaw() float64
	SetYaw(deg float64)
}

// Target is anything with a position to chase.
type Target interface {
	Position() mgl64.Vec3
}

type Settings struct {
	DetectionRadius float64
	AttackRange     float64
	AttackForce     float64
	ChaseSpeed      float64
	WindUp          float64
	Cooldown        float64
	TurnRate        float64
	// MaxVelocityStep bounds the per-step steering change.
	MaxVelocityStep float64
	// FirePoint is where throws leave from, in body-local space.
	FirePoint mgl64.Vec3
}

// Attack is one throw: the projectile leaves Origin with Velocity.
type Attack struct {
	Origin   mgl64.Vec3
	Velocity mgl64.Vec3
}

// State is the brain's current behaviour.
type State int

const (
	Idle State = iota
	Chasing
	WindingUp
	Recovering
)

func (s State) String() string {
	switch s {
	case Chasing:
		return "chasing"
	case WindingUp:
		return "winding up"
	case Recovering:
		return "recovering"
	}
	return "idle"
}

// Brain is a chase-and-attack state machine for one enemy.
type Brain struct {
	settings Settings
	body     Body
	target   Target

	state State
	timer float64
}

// NewBrain validates its collaborators and returns an idle brain.
func NewBrain(s Settings, body Body, target Target) (*Brain, error) {
	var errs []error
	if body == nil {
		errs = append(errs, &locomotion.ConfigurationError{Field: "body", Reason: "is required"})
	}
	if target == nil {
		errs = append(errs, &locomotion.ConfigurationError{Field: "target", Reason: "is required"})
	}
	if !(s.AttackRange > 0) || s.AttackRange > s.DetectionRadius {
		errs = append(errs, &locomotion.ConfigurationError{Field: "attack_range", Reason: "must be positive and within the detection radius"})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &Brain{settings: s, body: body, target: target}, nil
}

// Update advances the brain by one fixed step. It reports the throw on the
// step the wind-up ends.
func (b *Brain) Update(dt float64) (Attack, bool) {
	pos := b.body.Position()
	goal := b.target.Position()
	dist := gamemath.HorizontalDistance(pos, goal)
	s := b.settings

	if dist <= s.DetectionRadius {
		b.face(pos, goal, dt)
	}

	switch b.state {
	case Idle:
		b.steer(mgl64.Vec3{})
		if dist <= s.DetectionRadius {
			b.state = Chasing
		}

	case Chasing:
		switch {
		case dist > s.DetectionRadius:
			b.state = Idle
			b.steer(mgl64.Vec3{})
		case dist <= s.AttackRange:
			b.state = WindingUp
			b.timer = s.WindUp
			b.steer(mgl64.Vec3{})
		default:
			b.steer(gamemath.SeekVelocity(pos, goal, s.ChaseSpeed))
		}

	case WindingUp:
		b.steer(mgl64.Vec3{})
		b.timer -= dt
		if b.timer <= 0 {
			b.state = Recovering
			b.timer = s.Cooldown
			return b.throw(pos, goal)
		}

	case Recovering:
		b.timer -= dt
		if b.timer <= 0 {
			b.state = Chasing
		}
	}
	return Attack{}, false
}

func (b *Brain) State() State { return b.state }

func (b *Brain) face(pos, goal mgl64.Vec3, dt float64) {
	d := goal.Sub(pos)
	if math.Hypot(d.X(), d.Z()) < 1e-6 {
		return
	}
	targetYaw := mgl64.RadToDeg(math.Atan2(d.X(), d.Z()))
	b.body.SetYaw(gamemath.LerpAngle(b.body.Yaw(), targetYaw, b.settings.TurnRate*dt))
}

// steer moves the horizontal velocity toward want, bounded by MaxVelocityStep.
func (b *Brain) steer(want mgl64.Vec3) {
	v := b.body.Velocity()
	dv := mgl64.Vec3{want.X() - v.X(), 0, want.Z() - v.Z()}
	if b.settings.MaxVelocityStep > 0 {
		dv = gamemath.ClampHorizontal(dv, b.settings.MaxVelocityStep)
	}
	if gamemath.Significant(dv, 1e-9) {
		b.body.ApplyVelocityChange(dv)
	}
}

// throw aims from the fire point straight at the target. The force is a
// velocity, independent of projectile mass.
func (b *Brain) throw(pos, goal mgl64.Vec3) (Attack, bool) {
	yaw := mgl64.Rotate3DY(mgl64.DegToRad(b.body.Yaw()))
	origin := pos.Add(yaw.Mul3x1(b.settings.FirePoint))
	d := goal.Sub(origin)
	if d.Len() < 1e-6 {
		return Attack{}, false
	}
	return Attack{Origin: origin, Velocity: d.Normalize().Mul(b.settings.AttackForce)}, true
}
