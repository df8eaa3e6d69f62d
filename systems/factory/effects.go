package factory

import (
	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateImpact spawns the splash left where a projectile hit something.
func CreateImpact(ecs *ecs.ECS, at mgl64.Vec3, radius float64) *donburi.Entry {
	e := archetypes.Impact.Spawn(ecs)

	lifetime := cfg.Weapons.ImpactLifetime
	components.Impact.SetValue(e, components.ImpactData{
		Position: at,
		Lifetime: lifetime,
		Radius:   radius,
	})
	components.AutoDestroy.SetValue(e, components.AutoDestroyData{Remaining: lifetime})

	return e
}
