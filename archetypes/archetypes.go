package archetypes

import (
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Floor = newArchetype(
		tags.Floor,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Platform,
		components.Tween,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Physics,
		components.Camera,
		components.Joint,
		components.Arsenal,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Physics,
		components.Flash,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.AutoDestroy,
	)
	Whirlpool = newArchetype(
		tags.Projectile,
		tags.Whirlpool,
		components.Projectile,
		components.AutoDestroy,
	)
	Impact = newArchetype(
		tags.Effect,
		components.Impact,
		components.AutoDestroy,
	)
	World = newArchetype(
		components.World,
	)
	Level = newArchetype(
		components.Level,
	)
	Time = newArchetype(
		components.Time,
	)
	HUD = newArchetype(
		components.HUD,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
