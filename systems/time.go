package systems

import (
	"time"

	"github.com/automoto/firstperson/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTime measures the frame delta and decides how many fixed steps the
// fixed phase runs this frame. Must run first.
func UpdateTime(ecs *ecs.ECS) {
	t := components.Time.Get(components.Time.MustFirst(ecs.World))

	dt := t.Tick(time.Now(), 1/float64(ebiten.TPS()))
	if limit := t.Stepper.MaxFrame; limit > 0 && dt > limit {
		dt = limit
	}
	if dt < 0 {
		dt = 0
	}

	t.FrameDt = dt
	t.Steps = t.Stepper.Advance(dt)
	t.Elapsed += dt
}

func frameTime(ecs *ecs.ECS) *components.TimeData {
	return components.Time.Get(components.Time.MustFirst(ecs.World))
}
