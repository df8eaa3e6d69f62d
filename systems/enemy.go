package systems

import (
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/shared/ai"
	"github.com/automoto/firstperson/shared/weapons"
	"github.com/automoto/firstperson/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var enemyLog = logrus.WithField("system", "enemy")

// stepEnemies runs every brain for one fixed step and throws sludge for
// the attacks that fire.
func stepEnemies(ecs *ecs.ECS, dt float64) {
	var throws []ai.Attack

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		before := enemy.Brain.State()
		if attack, ok := enemy.Brain.Update(dt); ok {
			enemy.Throws++
			throws = append(throws, attack)
		}
		if after := enemy.Brain.State(); after != before && after == ai.Chasing && before == ai.Idle {
			enemyLog.WithField("kind", enemy.Kind).Debug("target spotted")
		}
	})

	for _, a := range throws {
		shot := weapons.Shot{
			Kind:     weapons.Sludge,
			Origin:   a.Origin,
			Velocity: a.Velocity,
			Lifetime: cfg.Enemy.ShotLifetime,
		}
		if factory.CreateProjectile(ecs, shot) != nil {
			PlaySFX(ecs, cfg.SoundEnemyThrow)
		}
	}
}

// hitEnemy applies a projectile hit: knockback, flash and bookkeeping.
func hitEnemy(ecs *ecs.ECS, e *donburi.Entry, impulse mgl64.Vec3) {
	enemy := components.Enemy.Get(e)
	enemy.Hits++

	body := components.Physics.Get(e)
	body.ApplyImpulse(impulse)

	components.Flash.Get(e).Remaining = cfg.HUD.HitMarkerDuration
	PlaySFX(ecs, cfg.SoundEnemyHit)
	triggerHitMarker(ecs)
}
