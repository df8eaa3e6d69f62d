package systems

import (
	"math"

	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/physics"
	"github.com/automoto/firstperson/shared/weapons"
	"github.com/automoto/firstperson/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// stepProjectiles moves projectiles and resolves their first hit against
// solid boxes, enemies for the player's shots, or the player for enemy sludge.
func stepProjectiles(ecs *ecs.ECS, dt float64) {
	w := world(ecs)

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if p.Exploded {
			return
		}

		if p.Spiral != nil {
			from := p.Position
			p.Position = p.Spiral.Advance(dt)
			if enemy, ok := enemyAt(w, p.Position, p.Radius); ok {
				push := horizontal(p.Position.Sub(from))
				explode(ecs, e, p, p.Position)
				hitEnemy(ecs, enemy, push.Mul(cfg.Weapons.HitImpulse))
			}
			return
		}

		p.Velocity[1] += p.Gravity * dt
		step := p.Velocity.Mul(dt)
		dist := step.Len()
		next := p.Position.Add(step)

		if dist > 0 {
			if hit, ok := w.CastRay(p.Position, step.Mul(1/dist), dist+p.Radius); ok {
				explode(ecs, e, p, hit.Point)
				return
			}
		}
		if p.Kind.Hostile() {
			if player, ok := playerAt(w, next, p.Radius); ok {
				explode(ecs, e, p, next)
				player.ApplyImpulse(horizontal(p.Velocity).Mul(cfg.Enemy.ShotKnockback))
				return
			}
			p.Position = next
			return
		}
		if enemy, ok := enemyAt(w, next, p.Radius); ok {
			explode(ecs, e, p, next)
			hitEnemy(ecs, enemy, p.Velocity.Normalize().Mul(cfg.Weapons.HitImpulse))
			return
		}
		p.Position = next
	})
}

// explode marks the projectile spent, leaves an impact and schedules the
// projectile's removal. It runs at most once per projectile.
func explode(ecs *ecs.ECS, e *donburi.Entry, p *components.ProjectileData, at mgl64.Vec3) {
	if p.Exploded {
		return
	}
	p.Exploded = true
	p.Position = at

	ad := components.AutoDestroy.Get(e)
	ad.Remaining = math.Min(ad.Remaining, cfg.Weapons.DestroyDelay)

	radius := p.Radius * 4
	if p.Kind == weapons.Whirlpool {
		radius = p.Radius * 2
	}
	factory.CreateImpact(ecs, at, radius)
	PlaySFX(ecs, cfg.SoundImpact)
}

// enemyAt returns the entity of an enemy body within radius of p.
func enemyAt(w *physics.World, p mgl64.Vec3, radius float64) (*donburi.Entry, bool) {
	for _, b := range w.BodiesNear(p, radius, physics.TagEnemy) {
		if e, ok := b.Data.(*donburi.Entry); ok && e.Valid() {
			return e, true
		}
	}
	return nil, false
}

// playerAt returns the player body within radius of p.
func playerAt(w *physics.World, p mgl64.Vec3, radius float64) (*physics.Body, bool) {
	bodies := w.BodiesNear(p, radius, physics.TagPlayer)
	if len(bodies) == 0 {
		return nil, false
	}
	return bodies[0], true
}

func horizontal(v mgl64.Vec3) mgl64.Vec3 {
	v[1] = 0
	if v.Len() < 1e-9 {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}
