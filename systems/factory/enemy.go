package factory

import (
	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/physics"
	"github.com/automoto/firstperson/shared/ai"
	"github.com/automoto/firstperson/shared/leveldata"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy chasing target. When the brain cannot be
// built the error is logged and nothing is spawned.
func CreateEnemy(ecs *ecs.ECS, spawn leveldata.EnemySpawn, target ai.Target) *donburi.Entry {
	w := physicsWorld(ecs)
	ec := cfg.Enemy

	body := w.AddBody(spawn.Position, ec.Radius, ec.Mass, physics.TagEnemy)
	body.Drag = ec.Drag

	brain, err := ai.NewBrain(ai.Settings{
		DetectionRadius: ec.DetectionRadius,
		AttackRange:     ec.AttackRange,
		AttackForce:     ec.AttackForce,
		ChaseSpeed:      ec.ChaseSpeed,
		WindUp:          ec.WindUp,
		Cooldown:        ec.AttackCooldown,
		TurnRate:        ec.TurnRate,
		MaxVelocityStep: ec.MaxVelocityStep,
		FirePoint:       ec.FirePoint,
	}, body, target)
	if err != nil {
		w.RemoveBody(body)
		logrus.WithError(err).WithFields(logrus.Fields{
			"kind":     spawn.Kind,
			"position": spawn.Position,
		}).Error("enemy not spawned")
		return nil
	}

	enemy := archetypes.Enemy.Spawn(ecs)
	body.Data = enemy
	components.Physics.SetValue(enemy, components.PhysicsData{Body: body})
	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:  spawn.Kind,
		Brain: brain,
	})

	return enemy
}
