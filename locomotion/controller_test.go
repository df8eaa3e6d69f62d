package locomotion

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const frameDt = 1.0 / 60

func TestNewReportsMissingCollaborators(t *testing.T) {
	_, err := New(DefaultSettings(), Rig{})
	if err == nil {
		t.Fatal("expected a configuration error")
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %T: %v", err, err)
	}

	fields := map[string]bool{}
	var walk func(error)
	walk = func(err error) {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				walk(e)
			}
			return
		}
		if ce, ok := err.(*ConfigurationError); ok {
			fields[ce.Field] = true
		}
	}
	walk(err)
	for _, f := range []string{"rig.body", "rig.transform", "rig.camera", "rig.query", "rig.joint"} {
		if !fields[f] {
			t.Errorf("missing error for %s in %v", f, err)
		}
	}
}

func TestNewJointOptionalWithoutHeadBob(t *testing.T) {
	s := DefaultSettings()
	s.HeadBob.Enabled = false
	body := newFakeBody(mgl64.Vec3{0, 1, 0})
	_, err := New(s, Rig{Body: body, Transform: body, Camera: &fakeCamera{}, Query: newFlatGround(0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	s := DefaultSettings()
	s.Ground.CastDistance = 0
	s.Camera.MaxLookAngle = 120
	body := newFakeBody(mgl64.Vec3{})
	_, err := New(s, Rig{Body: body, Transform: body, Camera: &fakeCamera{}, Query: newFlatGround(0), Joint: &fakeJoint{}})
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestNewAppliesInitialView(t *testing.T) {
	s := DefaultSettings()
	s.Camera.InitialYaw = 90
	s.Camera.InitialPitch = 20
	_, tr := newTestController(t, s)
	if tr.body.yaw != 90 || tr.camera.pitch != 20 || tr.camera.fov != 60 {
		t.Fatalf("initial view not applied: yaw=%v pitch=%v fov=%v", tr.body.yaw, tr.camera.pitch, tr.camera.fov)
	}
}

func TestJumpRequiresGround(t *testing.T) {
	c, tr := newTestController(t, DefaultSettings())
	// Lift the body well above the floor and let the probe notice.
	tr.body.pos = mgl64.Vec3{0, 5, 0}
	c.Update(InputSample{}, frameDt)
	if c.Status().Grounded {
		t.Fatal("expected airborne")
	}

	c.Update(InputSample{JumpPressed: true}, frameDt)
	if len(tr.body.impulses) != 0 {
		t.Fatalf("jump fired while airborne: %v", tr.body.impulses)
	}
	if c.Status().Grounded {
		t.Fatal("grounded flag changed by a denied jump")
	}
}

func TestJumpFromGround(t *testing.T) {
	c, tr := newTestController(t, DefaultSettings())
	c.Update(InputSample{}, frameDt)
	if !c.Status().Grounded {
		t.Fatal("expected grounded on the floor")
	}
	c.Update(InputSample{JumpPressed: true}, frameDt)
	if len(tr.body.impulses) != 1 || tr.body.impulses[0] != (mgl64.Vec3{0, 5, 0}) {
		t.Fatalf("expected one upward impulse of 5, got %v", tr.body.impulses)
	}
}

func TestJumpFrameGroundedFollowsProbe(t *testing.T) {
	c, tr := newTestController(t, DefaultSettings())
	c.Update(InputSample{}, frameDt)

	// The body has not moved yet, so the probe after the jump still hits.
	c.Update(InputSample{JumpPressed: true}, frameDt)
	if !c.Status().Grounded {
		t.Fatal("expected the jump frame to report the probe result")
	}

	tr.body.pos = mgl64.Vec3{0, 2, 0}
	c.Update(InputSample{JumpPressed: true}, frameDt)
	if c.Status().Grounded {
		t.Fatal("expected airborne once the body left the floor")
	}
	if len(tr.body.impulses) != 1 {
		t.Fatalf("expected a single jump, got %v", tr.body.impulses)
	}
}

func TestFixedUpdateNeverProbesGround(t *testing.T) {
	c, tr := newTestController(t, DefaultSettings())
	c.Update(InputSample{Move: mgl64.Vec2{0, 1}, SprintHeld: true}, frameDt)
	before := tr.ground.casts
	if before == 0 {
		t.Fatal("expected the frame phase to probe")
	}

	for i := 0; i < 10; i++ {
		c.FixedUpdate()
	}
	if tr.ground.casts != before {
		t.Fatalf("fixed phase cast %d extra rays", tr.ground.casts-before)
	}
	if !c.Status().Grounded {
		t.Fatal("fixed phase changed the grounded flag")
	}
}

func TestJumpUncrouchesInToggleMode(t *testing.T) {
	s := DefaultSettings()
	s.Crouch.Hold = false
	c, tr := newTestController(t, s)
	c.Update(InputSample{CrouchPressed: true}, frameDt)
	if !c.Status().Crouched {
		t.Fatal("expected crouched after toggle press")
	}
	// The crouched probe origin is higher; keep the floor in reach.
	tr.body.pos = mgl64.Vec3{0, 0.9, 0}
	c.Update(InputSample{}, frameDt)
	if !c.Status().Grounded {
		t.Fatal("expected crouched body to be grounded")
	}

	c.Update(InputSample{JumpPressed: true}, frameDt)
	if c.Status().Crouched {
		t.Fatal("jump must stand the body up in toggle mode")
	}
	if len(tr.body.scaleAtImpulses) != 1 || tr.body.scaleAtImpulses[0] != (mgl64.Vec3{1, 1, 1}) {
		t.Fatalf("expected to stand before the impulse, scales at impulse: %v", tr.body.scaleAtImpulses)
	}
}

func TestHoldCrouchAcrossFrames(t *testing.T) {
	c, tr := newTestController(t, DefaultSettings())
	c.Update(InputSample{CrouchPressed: true}, frameDt)
	for i := 0; i < 5; i++ {
		c.Update(InputSample{}, frameDt)
		if !c.Status().Crouched {
			t.Fatalf("frame %d: crouch dropped while held", i)
		}
	}
	if c.WalkSpeed() != 2.5 || tr.body.scale != (mgl64.Vec3{1, 0.75, 1}) {
		t.Fatalf("unexpected crouched walk speed %v / scale %v", c.WalkSpeed(), tr.body.scale)
	}
	c.Update(InputSample{CrouchReleased: true}, frameDt)
	if c.Status().Crouched || c.WalkSpeed() != 5 || tr.body.scale != (mgl64.Vec3{1, 1, 1}) {
		t.Fatalf("release did not restore: crouched=%v speed=%v scale=%v", c.Status().Crouched, c.WalkSpeed(), tr.body.scale)
	}
}

func TestCrouchRoundTripsRestoreExactly(t *testing.T) {
	s := DefaultSettings()
	s.Crouch.Hold = false
	s.Crouch.SpeedReduction = 0.3
	c, tr := newTestController(t, s)
	tr.body.scale = mgl64.Vec3{1, 1, 1}
	for i := 0; i < 50; i++ {
		c.Update(InputSample{CrouchPressed: true}, frameDt)
	}
	if c.Status().Crouched {
		t.Fatal("expected standing after an even number of toggles")
	}
	if c.WalkSpeed() != 5 {
		t.Fatalf("walk speed drifted to %v", c.WalkSpeed())
	}
}

func TestFixedUpdateClampsVelocityChange(t *testing.T) {
	c, tr := newTestController(t, DefaultSettings())
	tr.body.vel = mgl64.Vec3{-30, -4, 0}
	for i := 0; i < 60; i++ {
		c.Update(InputSample{Move: mgl64.Vec2{0, 1}}, frameDt)
	}
	c.FixedUpdate()
	dv := tr.body.changes[len(tr.body.changes)-1]
	if dv.Y() != 0 {
		t.Fatalf("vertical velocity must never be corrected, got %v", dv)
	}
	if dv.X() != 10 {
		t.Fatalf("expected x change clamped to 10, got %v", dv.X())
	}
	if !approxEqual(dv.Z(), 5, 1e-3) {
		t.Fatalf("expected z change toward walk speed 5, got %v", dv.Z())
	}
}

func TestFixedUpdateRotatesByYaw(t *testing.T) {
	s := DefaultSettings()
	s.Camera.InitialYaw = 90
	c, tr := newTestController(t, s)
	for i := 0; i < 60; i++ {
		c.Update(InputSample{Move: mgl64.Vec2{0, 1}}, frameDt)
	}
	c.FixedUpdate()
	dv := tr.body.changes[0]
	if !approxEqual(dv.X(), 5, 1e-3) || !approxEqual(dv.Z(), 0, 1e-9) {
		t.Fatalf("expected forward at yaw 90 to be +X, got %v", dv)
	}
}

func TestSprintWithoutMoveDoesNotDrain(t *testing.T) {
	c, tr := newTestController(t, DefaultSettings())
	tr.body.vel = mgl64.Vec3{3, 0, 0}
	for i := 0; i < 120; i++ {
		c.Update(InputSample{SprintHeld: true}, frameDt)
		c.LateUpdate(frameDt)
		c.FixedUpdate()
	}
	st := c.Status()
	if st.Sprinting {
		t.Fatal("sprinting with no move intent")
	}
	if st.StaminaRemaining != 5 {
		t.Fatalf("stamina drained without move intent: %v", st.StaminaRemaining)
	}
}

func TestSprintDrainsAndCoolsDown(t *testing.T) {
	c, tr := newTestController(t, DefaultSettings())
	in := InputSample{Move: mgl64.Vec2{0, 1}, SprintHeld: true}
	sawSprint := false
	for i := 0; i < 60*6; i++ {
		c.Update(in, frameDt)
		c.LateUpdate(frameDt)
		c.FixedUpdate()
		// Friction stand-in so the body never reaches cruise speed.
		tr.body.vel = tr.body.vel.Mul(0.5)
		if c.Status().Sprinting {
			sawSprint = true
		}
		if c.Status().InCooldown && c.Status().Sprinting {
			t.Fatalf("frame %d: sprinting during cooldown", i)
		}
	}
	if !sawSprint {
		t.Fatal("never started sprinting")
	}
	if c.Status().StaminaRemaining >= 5 {
		t.Fatalf("expected stamina to be spent, got %v", c.Status().StaminaRemaining)
	}
	if tr.camera.fov <= 60 && c.Status().Sprinting {
		t.Fatalf("expected sprint FOV to widen, got %v", tr.camera.fov)
	}
}

func TestSprintStandsUp(t *testing.T) {
	c, tr := newTestController(t, DefaultSettings())
	c.Update(InputSample{CrouchPressed: true}, frameDt)
	for i := 0; i < 30; i++ {
		c.Update(InputSample{Move: mgl64.Vec2{0, 1}, SprintHeld: true}, frameDt)
		c.FixedUpdate()
	}
	if !c.Status().Sprinting {
		t.Fatal("expected sprint")
	}
	if c.Status().Crouched || tr.body.scale != (mgl64.Vec3{1, 1, 1}) {
		t.Fatal("sprinting must stand the body up")
	}
}

func TestWalkingDrivesHeadBob(t *testing.T) {
	c, tr := newTestController(t, DefaultSettings())
	neutral := tr.joint.pos
	for i := 0; i < 30; i++ {
		c.Update(InputSample{Move: mgl64.Vec2{1, 0}}, frameDt)
	}
	if !c.Status().Walking {
		t.Fatal("expected walking")
	}
	if tr.joint.pos == neutral {
		t.Fatal("expected the joint to bob")
	}
}

func TestInvalidInputIsHarmless(t *testing.T) {
	c, tr := newTestController(t, DefaultSettings())
	nan := math.NaN()
	for i := 0; i < 10; i++ {
		c.Update(InputSample{Look: mgl64.Vec2{nan, nan}, Move: mgl64.Vec2{nan, 2}}, frameDt)
		c.LateUpdate(frameDt)
		c.FixedUpdate()
	}
	o := c.Orientation()
	if o.CurrentYaw != 0 || o.CurrentPitch != 0 {
		t.Fatalf("invalid look input moved the camera: %+v", o)
	}
	for _, dv := range tr.body.changes {
		if dv != (mgl64.Vec3{}) {
			t.Fatalf("invalid move input produced %v", dv)
		}
	}
}

func TestCameraFrozenWhenCannotMove(t *testing.T) {
	s := DefaultSettings()
	s.Camera.CanMove = false
	c, _ := newTestController(t, s)
	for i := 0; i < 30; i++ {
		c.Update(InputSample{Look: mgl64.Vec2{1, 1}}, frameDt)
		c.LateUpdate(frameDt)
	}
	if c.Orientation() != (Orientation{}) {
		t.Fatalf("camera moved while locked: %+v", c.Orientation())
	}
}

func TestViewDirection(t *testing.T) {
	s := DefaultSettings()
	s.Camera.InitialPitch = 30
	c, _ := newTestController(t, s)
	dir := c.ViewDirection()
	if !approxEqual(dir.Len(), 1, 1e-12) || dir.Y() >= 0 {
		t.Fatalf("expected a unit vector pointing down, got %v", dir)
	}
}

func TestSetHoldModesSwitchesPolicy(t *testing.T) {
	c, _ := newTestController(t, DefaultSettings())
	c.SetHoldModes(false, true)

	c.Update(InputSample{CrouchPressed: true}, frameDt)
	c.Update(InputSample{CrouchReleased: true}, frameDt)
	if !c.Status().Crouched {
		t.Fatal("toggle crouch dropped on release")
	}
	if c.Settings().Crouch.Hold {
		t.Fatal("settings still report hold crouch")
	}

	c.Update(InputSample{ZoomPressed: true}, frameDt)
	if !c.Status().Zoomed {
		t.Fatal("hold zoom did not engage on press")
	}
	c.Update(InputSample{ZoomReleased: true}, frameDt)
	if c.Status().Zoomed {
		t.Fatal("hold zoom stayed on after release")
	}
}
