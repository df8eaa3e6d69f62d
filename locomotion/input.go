package locomotion

import (
	"math"

	"github.com/automoto/firstperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// moveAxisTolerance absorbs float noise from analog sticks reporting just past ±1.
const moveAxisTolerance = 1e-6

// InputSample is everything the controller reads from devices in one frame.
// Move.X is lateral (right positive), Move.Y is forward.
type InputSample struct {
	Look mgl64.Vec2
	Move mgl64.Vec2

	JumpPressed    bool
	CrouchPressed  bool
	CrouchReleased bool
	SprintHeld     bool
	ZoomPressed    bool
	ZoomReleased   bool
}

// InputSampler smooths the raw look and move axes.
type InputSampler struct {
	lookSmoothTime float64
	moveSmoothTime float64

	look, lookVel mgl64.Vec2
	move, moveVel mgl64.Vec2

	anomalies int
}

func NewInputSampler(lookSmoothTime, moveSmoothTime float64) *InputSampler {
	return &InputSampler{
		lookSmoothTime: lookSmoothTime,
		moveSmoothTime: moveSmoothTime,
	}
}

// Sample advances both filters by dt toward the sanitized raw sample.
func (s *InputSampler) Sample(rawLook, rawMove mgl64.Vec2, dt float64) (look, move mgl64.Vec2) {
	rawLook = s.sanitize(rawLook, math.Inf(1))
	rawMove = s.sanitize(rawMove, 1+moveAxisTolerance)

	s.look = gamemath.SmoothDampVec2(s.look, rawLook, &s.lookVel, s.lookSmoothTime, dt)
	s.move = gamemath.SmoothDampVec2(s.move, rawMove, &s.moveVel, s.moveSmoothTime, dt)
	return s.look, s.move
}

// sanitize zeroes any component that is not finite or whose magnitude exceeds limit.
func (s *InputSampler) sanitize(v mgl64.Vec2, limit float64) mgl64.Vec2 {
	for i, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) || math.Abs(c) > limit {
			v[i] = 0
			s.anomalies++
		}
	}
	return v
}

func (s *InputSampler) Look() mgl64.Vec2 { return s.look }
func (s *InputSampler) Move() mgl64.Vec2 { return s.move }

// Anomalies is the number of raw axis components replaced with zero so far.
func (s *InputSampler) Anomalies() int { return s.anomalies }
