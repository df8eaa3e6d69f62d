package factory

import (
	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/physics"
	"github.com/automoto/firstperson/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateFloor(ecs *ecs.ECS, slab leveldata.Slab) *donburi.Entry {
	return createSolid(ecs, archetypes.Floor.Spawn(ecs), slab)
}

func CreateWall(ecs *ecs.ECS, slab leveldata.Slab) *donburi.Entry {
	return createSolid(ecs, archetypes.Wall.Spawn(ecs), slab)
}

func createSolid(ecs *ecs.ECS, e *donburi.Entry, slab leveldata.Slab, extraTags ...string) *donburi.Entry {
	w := physicsWorld(ecs)

	box := w.AddBox(slab.Min, slab.Max, append([]string{physics.TagSolid}, extraTags...)...)
	box.Data = e // Link for O(1) lookup
	components.Object.SetValue(e, components.ObjectData{Box: box})

	return e
}
