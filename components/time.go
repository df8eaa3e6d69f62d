package components

import (
	"time"

	"github.com/automoto/firstperson/shared/timestep"
	"github.com/yohamta/donburi"
)

// TimeData is the singleton frame clock.
type TimeData struct {
	FrameDt float64 // seconds since the previous frame, clamped
	FixedDt float64
	Steps   int // fixed steps due this frame
	Stepper timestep.Stepper
	Elapsed float64

	last time.Time
}

// Tick measures the wall-clock delta since the previous call. The first call
// reports fallback.
func (t *TimeData) Tick(now time.Time, fallback float64) float64 {
	dt := fallback
	if !t.last.IsZero() {
		dt = now.Sub(t.last).Seconds()
	}
	t.last = now
	return dt
}

var Time = donburi.NewComponentType[TimeData]()
