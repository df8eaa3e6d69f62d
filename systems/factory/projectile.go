package factory

import (
	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/shared/weapons"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newArsenal(wc cfg.WeaponsConfig) components.ArsenalData {
	return components.ArsenalData{
		WaterGun: weapons.WaterGunTrigger{
			Rate:     wc.WaterGun.FireRate,
			Speed:    wc.WaterGun.BulletSpeed,
			Lifetime: wc.WaterGun.Lifetime,
			Muzzle:   wc.MuzzleOffset,
		},
		Plunger: weapons.PlungerLauncher{
			Speed:    wc.Plunger.Speed,
			Lifetime: wc.Plunger.Lifetime,
			Spread:   wc.Plunger.Spread,
			Muzzle:   wc.MuzzleOffset,
		},
		Whirlpool: weapons.WhirlpoolCaster{
			SpiralSpeed:   wc.Whirlpool.SpiralSpeed,
			RadialSpeed:   wc.Whirlpool.RadialSpeed,
			Lifetime:      wc.Whirlpool.Lifetime,
			TailInterval:  wc.Whirlpool.TailInterval,
			MaxTailPoints: wc.Whirlpool.MaxTailPoints,
			Muzzle:        wc.MuzzleOffset,
		},
	}
}

// CreateProjectile spawns a water bullet or plunger flying straight, or an
// enemy's sludge that falls under gravity. A shot that cannot fly is logged
// and dropped.
func CreateProjectile(ecs *ecs.ECS, shot weapons.Shot) *donburi.Entry {
	if shot.Velocity.Len() == 0 || shot.Lifetime <= 0 {
		logrus.WithFields(logrus.Fields{
			"system": "weapons",
			"weapon": shot.Kind,
		}).Warn("projectile has no speed or lifetime, not spawning")
		return nil
	}
	p := archetypes.Projectile.Spawn(ecs)

	data := components.ProjectileData{
		Kind:     shot.Kind,
		Position: shot.Origin,
		Velocity: shot.Velocity,
		Radius:   cfg.Weapons.ProjectileRadius,
	}
	if shot.Kind.Hostile() {
		data.Radius = cfg.Enemy.ShotRadius
		data.Gravity = cfg.Physics.Gravity
	}
	components.Projectile.SetValue(p, data)
	components.AutoDestroy.SetValue(p, components.AutoDestroyData{Remaining: shot.Lifetime})

	return p
}

// CreateWhirlpool spawns the single live whirlpool.
func CreateWhirlpool(ecs *ecs.ECS, spiral *weapons.Spiral) *donburi.Entry {
	p := archetypes.Whirlpool.Spawn(ecs)

	components.Projectile.SetValue(p, components.ProjectileData{
		Kind:     weapons.Whirlpool,
		Position: spiral.Position(),
		Radius:   cfg.Weapons.ProjectileRadius * 3,
		Spiral:   spiral,
	})
	components.AutoDestroy.SetValue(p, components.AutoDestroyData{Remaining: spiral.Lifetime})

	return p
}
