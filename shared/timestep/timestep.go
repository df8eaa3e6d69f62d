// Package timestep splits variable frame times into fixed simulation steps.
package timestep

// Stepper accumulates frame time and reports how many fixed steps are due.
// The zero value never steps; set Step before use.
type Stepper struct {
	Step     float64 // seconds per fixed step
	MaxSteps int     // backlog cap per frame, 0 for none
	MaxFrame float64 // frame deltas are clamped to this, 0 for none

	acc float64
}

// tolerance absorbs float drift so 60 frames of 1/60 s yield 60 steps.
const tolerance = 1e-9

// Advance adds frameDt to the accumulator and returns the number of fixed
// steps to run. When the backlog exceeds MaxSteps the surplus is dropped.
func (s *Stepper) Advance(frameDt float64) int {
	if !(s.Step > 0) || !(frameDt > 0) {
		return 0
	}
	if s.MaxFrame > 0 && frameDt > s.MaxFrame {
		frameDt = s.MaxFrame
	}
	s.acc += frameDt

	n := 0
	for s.acc+tolerance >= s.Step {
		s.acc -= s.Step
		n++
		if s.MaxSteps > 0 && n == s.MaxSteps {
			s.acc = 0
			break
		}
	}
	if s.acc < 0 {
		s.acc = 0
	}
	return n
}

// Alpha is the fraction of a step left in the accumulator.
func (s *Stepper) Alpha() float64 {
	if !(s.Step > 0) {
		return 0
	}
	return s.acc / s.Step
}

// Reset drops any accumulated time.
func (s *Stepper) Reset() {
	s.acc = 0
}
