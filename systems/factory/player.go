package factory

import (
	"fmt"

	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/locomotion"
	"github.com/automoto/firstperson/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player body and its locomotion controller. A
// controller configuration error removes the half-built entity.
func CreatePlayer(ecs *ecs.ECS, spawn mgl64.Vec3) (*donburi.Entry, error) {
	w := physicsWorld(ecs)

	player := archetypes.Player.Spawn(ecs)
	body := w.AddBody(spawn, cfg.Player.Radius, cfg.Player.Mass, physics.TagPlayer)
	body.Data = player
	components.Physics.SetValue(player, components.PhysicsData{Body: body})

	joint := components.Joint.Get(player)
	joint.Local = mgl64.Vec3{0, cfg.Player.EyeHeight, 0}
	camera := components.Camera.Get(player)

	ctrl, err := locomotion.New(cfg.Player.Locomotion, locomotion.Rig{
		Body:      body,
		Transform: body,
		Camera:    camera,
		Query:     w,
		Joint:     joint,
	}, locomotion.WithLogger(logrus.WithField("entity", "player")))
	if err != nil {
		w.RemoveBody(body)
		ecs.World.Remove(player.Entity())
		return nil, fmt.Errorf("create player: %w", err)
	}

	components.Player.SetValue(player, components.PlayerData{
		Controller: ctrl,
		Spawn:      spawn,
	})

	components.Arsenal.SetValue(player, newArsenal(cfg.Weapons))

	return player, nil
}
