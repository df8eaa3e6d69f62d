package factory

import (
	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld creates the physics world singleton covering width x depth metres.
func CreateWorld(ecs *ecs.ECS, width, depth float64) *donburi.Entry {
	world := archetypes.World.Spawn(ecs)
	w := physics.NewWorld(width, depth, cfg.Physics.CellSize, cfg.Physics.Gravity)
	w.KillY = cfg.Physics.KillY
	components.World.SetValue(world, components.WorldData{World: w})
	return world
}

func physicsWorld(ecs *ecs.ECS) *physics.World {
	return components.World.Get(components.World.MustFirst(ecs.World)).World
}
