package locomotion

import (
	"errors"
	"math"

	"github.com/automoto/firstperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

const (
	// moveIntentThreshold is the smoothed axis magnitude that counts as walking.
	moveIntentThreshold = 0.1
	// sprintChangeThreshold is the per-axis velocity change that marks a sprint as real.
	sprintChangeThreshold = 0.1
)

// Status is the externally visible locomotion state.
type Status struct {
	Grounded  bool
	Walking   bool
	Crouched  bool
	Sprinting bool
	Zoomed    bool

	StaminaRemaining float64
	StaminaFraction  float64
	InCooldown       bool

	Yaw       float64
	Pitch     float64
	FOV       float64
	WalkSpeed float64
}

// Option configures optional Controller collaborators.
type Option func(*Controller)

// WithLogger routes controller diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// Controller drives one first-person body. Call Update once per frame,
// LateUpdate after every other per-frame system, and FixedUpdate once per
// fixed physics step.
type Controller struct {
	settings Settings
	rig      Rig
	log      logrus.FieldLogger

	input   *InputSampler
	camera  *CameraRig
	stamina *StaminaResource
	crouch  *CrouchState
	ground  *GroundProbe
	headBob *HeadBobAnimator

	sensitivity float64
	invert      bool

	sprintHeld bool
	sprinting  bool
	walking    bool
}

// New validates the settings and collaborators and builds a controller.
// Every problem found is reported as a *ConfigurationError.
func New(s Settings, rig Rig, opts ...Option) (*Controller, error) {
	var errs []error
	if rig.Body == nil {
		errs = append(errs, configError("rig.body", "a rigid body is required"))
	}
	if rig.Transform == nil {
		errs = append(errs, configError("rig.transform", "a body transform is required"))
	}
	if rig.Camera == nil {
		errs = append(errs, configError("rig.camera", "a camera is required"))
	}
	if rig.Query == nil {
		errs = append(errs, configError("rig.query", "a spatial query is required"))
	}
	if s.HeadBob.Enabled && rig.Joint == nil {
		errs = append(errs, configError("rig.joint", "head bob is enabled but no joint was given"))
	}
	if err := s.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	c := &Controller{
		settings:    s,
		rig:         rig,
		log:         logrus.StandardLogger(),
		input:       NewInputSampler(s.Camera.LookSmoothTime, s.Movement.MoveSmoothTime),
		camera:      NewCameraRig(s.Camera, s.Zoom, s.Sprint.FOV),
		stamina:     NewStaminaResource(s.Sprint.Duration, s.Sprint.Cooldown),
		crouch:      NewCrouchState(s.Crouch.Hold, s.Crouch.Height, s.Crouch.SpeedReduction, rig.Transform.LocalScale()),
		ground:      NewGroundProbe(s.Ground.CastDistance, s.Ground.LateralOffset),
		sensitivity: s.Camera.Sensitivity,
		invert:      s.Camera.Invert,
	}
	var neutral mgl64.Vec3
	if rig.Joint != nil {
		neutral = rig.Joint.LocalPosition()
	}
	c.headBob = NewHeadBobAnimator(s.HeadBob, s.Sprint.Speed, s.Crouch.SpeedReduction, neutral)
	for _, opt := range opts {
		opt(c)
	}

	o := c.camera.Orientation()
	rig.Transform.SetYaw(o.CurrentYaw)
	rig.Camera.SetPitch(o.CurrentPitch)
	rig.Camera.SetFieldOfView(c.camera.FOV())
	return c, nil
}

// Update runs the per-frame phase: input smoothing, zoom, stamina, jump,
// crouch, ground probe, head bob and field of view.
func (c *Controller) Update(in InputSample, dt float64) {
	s := &c.settings

	before := c.input.Anomalies()
	_, move := c.input.Sample(in.Look, in.Move, dt)
	if n := c.input.Anomalies(); n != before {
		c.log.WithField("total", n).Debug("discarded invalid input axis")
	}
	c.sprintHeld = in.SprintHeld

	c.camera.HandleZoom(in.ZoomPressed, in.ZoomReleased, c.sprinting)

	if s.Sprint.Enabled {
		if c.sprinting && !c.sprintPermitted(move) {
			c.sprinting = false
		}
		c.stamina.Tick(dt, c.sprinting, s.Sprint.Unlimited)
		if c.sprinting && !c.stamina.CanSprint(true, s.Sprint.Unlimited) {
			c.sprinting = false
			c.log.Debug("stamina exhausted, sprint cooling down")
		}
	} else {
		c.sprinting = false
	}

	if s.Jump.Enabled && in.JumpPressed && c.ground.Grounded() {
		c.jump()
	}

	if s.Crouch.Enabled && c.crouch.Handle(in.CrouchPressed, in.CrouchReleased) {
		c.applyCrouch()
	}

	grounded := c.ground.Probe(c.rig.Query, c.rig.Transform.Position(), c.rig.Transform.LocalScale(), c.right())
	c.walking = grounded && hasMoveIntent(move)

	if s.HeadBob.Enabled {
		c.rig.Joint.SetLocalPosition(c.headBob.Advance(dt, c.walking, c.sprinting, c.crouch.Crouched()))
	}

	c.rig.Camera.SetFieldOfView(c.camera.UpdateFOV(c.sprinting, dt))
}

// LateUpdate integrates look input into yaw and pitch once all per-frame
// state has settled.
func (c *Controller) LateUpdate(dt float64) {
	if !c.settings.Camera.CanMove {
		return
	}
	c.camera.Integrate(c.input.Look(), c.sensitivity, c.invert, dt)
	o := c.camera.Orientation()
	c.rig.Transform.SetYaw(o.CurrentYaw)
	c.rig.Camera.SetPitch(o.CurrentPitch)
}

// FixedUpdate applies one bounded velocity change toward the target
// horizontal velocity. It uses the grounded state of the last frame phase and
// never probes on its own.
func (c *Controller) FixedUpdate() {
	s := &c.settings
	if !s.Movement.CanMove {
		return
	}

	move := c.input.Move()
	dir := c.rotation().Mul3x1(mgl64.Vec3{move.X(), 0, move.Y()})
	velocity := c.rig.Body.Velocity()

	if c.sprintPermitted(move) {
		dv := gamemath.ClampHorizontal(dir.Mul(s.Sprint.Speed).Sub(velocity), s.Movement.MaxVelocityChange)
		if gamemath.Significant(dv, sprintChangeThreshold) {
			c.sprinting = true
			if c.crouch.Set(false) {
				c.applyCrouch()
			}
		}
		c.rig.Body.ApplyVelocityChange(dv)
		return
	}

	c.sprinting = false
	dv := gamemath.ClampHorizontal(dir.Mul(c.WalkSpeed()).Sub(velocity), s.Movement.MaxVelocityChange)
	c.rig.Body.ApplyVelocityChange(dv)
}

// SetLookPreferences changes mouse sensitivity and inversion at runtime.
func (c *Controller) SetLookPreferences(sensitivity float64, invert bool) {
	if sensitivity >= 0 && !math.IsInf(sensitivity, 0) {
		c.sensitivity = sensitivity
	}
	c.invert = invert
}

// SetHoldModes switches the crouch and zoom key policies at runtime.
func (c *Controller) SetHoldModes(holdCrouch, holdZoom bool) {
	c.settings.Crouch.Hold = holdCrouch
	c.settings.Zoom.Hold = holdZoom
	c.crouch.SetHoldMode(holdCrouch)
	c.camera.SetHoldToZoom(holdZoom)
}

// WalkSpeed is the base walk speed adjusted for crouching.
func (c *Controller) WalkSpeed() float64 {
	return c.settings.Movement.WalkSpeed * c.crouch.SpeedMultiplier()
}

// Forward is the body's horizontal forward direction.
func (c *Controller) Forward() mgl64.Vec3 {
	return c.rotation().Mul3x1(mgl64.Vec3{0, 0, 1})
}

// ViewDirection is the unit look direction including pitch. Positive pitch looks down.
func (c *Controller) ViewDirection() mgl64.Vec3 {
	o := c.camera.Orientation()
	yaw, pitch := mgl64.DegToRad(o.CurrentYaw), mgl64.DegToRad(o.CurrentPitch)
	return mgl64.Vec3{
		math.Sin(yaw) * math.Cos(pitch),
		-math.Sin(pitch),
		math.Cos(yaw) * math.Cos(pitch),
	}
}

// Orientation returns the current and target yaw and pitch.
func (c *Controller) Orientation() Orientation { return c.camera.Orientation() }

// Settings returns the settings the controller was built with, including
// runtime preference changes.
func (c *Controller) Settings() Settings { return c.settings }

// Status reports the externally visible state after the last phase that ran.
func (c *Controller) Status() Status {
	o := c.camera.Orientation()
	st := Status{
		Grounded:         c.ground.Grounded(),
		Walking:          c.walking,
		Crouched:         c.crouch.Crouched(),
		Sprinting:        c.sprinting,
		Zoomed:           c.camera.Zoomed(),
		StaminaRemaining: c.stamina.Remaining(),
		StaminaFraction:  c.stamina.Fraction(),
		InCooldown:       c.stamina.InCooldown(),
		Yaw:              o.CurrentYaw,
		Pitch:            o.CurrentPitch,
		FOV:              c.camera.FOV(),
		WalkSpeed:        c.WalkSpeed(),
	}
	if c.settings.Sprint.Unlimited {
		st.StaminaFraction = 1
	}
	return st
}

func (c *Controller) jump() {
	if c.crouch.Crouched() && !c.crouch.HoldMode() {
		c.crouch.Set(false)
		c.applyCrouch()
	}
	c.rig.Body.ApplyImpulse(mgl64.Vec3{0, c.settings.Jump.Power, 0})
	// Only reads between here and this frame's probe see the cleared flag;
	// the probe right after decides what Status reports for the frame.
	c.ground.Clear()
}

func (c *Controller) applyCrouch() {
	c.rig.Transform.SetLocalScale(c.crouch.Scale())
}

func (c *Controller) sprintPermitted(move mgl64.Vec2) bool {
	s := &c.settings
	return c.sprintHeld &&
		c.stamina.CanSprint(s.Sprint.Enabled, s.Sprint.Unlimited) &&
		hasMoveIntent(move)
}

func (c *Controller) rotation() mgl64.Mat3 {
	return mgl64.Rotate3DY(mgl64.DegToRad(c.camera.Orientation().CurrentYaw))
}

func (c *Controller) right() mgl64.Vec3 {
	return c.rotation().Mul3x1(mgl64.Vec3{1, 0, 0})
}

func hasMoveIntent(move mgl64.Vec2) bool {
	return math.Abs(move.X()) > moveIntentThreshold || math.Abs(move.Y()) > moveIntentThreshold
}
