package factory

import (
	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/physics"
	"github.com/automoto/firstperson/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, p leveldata.Platform) *donburi.Entry {
	platform := createSolid(ecs, archetypes.Platform.Spawn(ecs), p.Slab, physics.TagPlatform)

	components.Platform.SetValue(platform, components.PlatformData{
		Base:   p.Min,
		Travel: p.Travel,
	})

	// The platform moves using a *gween.Sequence of tweens over [0, 1], moving it back and forth.
	period := float32(p.Period)
	tw := gween.NewSequence(
		gween.New(0, 1, period, ease.InOutSine),
		gween.New(1, 0, period, ease.InOutSine),
	)
	tw.SetLoop(-1)
	components.Tween.Set(platform, tw)

	return platform
}
