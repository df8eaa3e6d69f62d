package components

import (
	"github.com/automoto/firstperson/physics"
	"github.com/yohamta/donburi"
)

// PhysicsData links an entity to its rigid body.
type PhysicsData struct {
	*physics.Body
}

var Physics = donburi.NewComponentType[PhysicsData]()

// WorldData is the singleton physics world.
type WorldData struct {
	*physics.World
}

var World = donburi.NewComponentType[WorldData]()
