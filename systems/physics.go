package systems

import (
	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/physics"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFixed runs the fixed phase as many times as UpdateTime scheduled for
// this frame. Must run after UpdateCamera.
func UpdateFixed(ecs *ecs.ECS) {
	t := frameTime(ecs)
	for i := 0; i < t.Steps; i++ {
		fixedStep(ecs, t.FixedDt)
	}
}

func fixedStep(ecs *ecs.ECS, dt float64) {
	stepPlatforms(ecs, dt)
	stepPlayer(ecs)
	stepEnemies(ecs, dt)
	world(ecs).Step(dt)
	respawnFallenPlayer(ecs)
	stepProjectiles(ecs, dt)
	stepEffects(ecs, dt)
	stepHUD(ecs, dt)
}

func world(ecs *ecs.ECS) *physics.World {
	return components.World.Get(components.World.MustFirst(ecs.World)).World
}
