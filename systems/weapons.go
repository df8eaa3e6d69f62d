package systems

import (
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/config/input"
	"github.com/automoto/firstperson/shared/weapons"
	"github.com/automoto/firstperson/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

var weaponLog = logrus.WithField("system", "weapons")

var weaponKeys = []struct {
	action input.ActionID
	kind   weapons.Kind
}{
	{input.ActionWeaponWaterGun, weapons.WaterGun},
	{input.ActionWeaponPlunger, weapons.Plunger},
	{input.ActionWeaponWhirlpool, weapons.Whirlpool},
	{input.ActionWeaponHolster, weapons.None},
}

// UpdateWeapons handles weapon selection and firing along the view direction.
func UpdateWeapons(ecs *ecs.ECS) {
	e, ok := playerEntry(ecs)
	if !ok {
		return
	}
	arsenal := components.Arsenal.Get(e)
	player := components.Player.Get(e)
	camera := components.Camera.Get(e)
	in := getOrCreateInput(ecs)
	t := frameTime(ecs)

	for _, wk := range weaponKeys {
		if GetAction(in, wk.action).JustPressed {
			k := arsenal.Selector.Select(wk.kind)
			weaponLog.WithField("weapon", k).Debug("weapon selected")
		}
	}

	fire := GetAction(in, input.ActionFire)
	aim := weapons.Aim{
		Eye:     camera.Eye,
		Forward: player.Controller.ViewDirection(),
		Right:   rightOf(camera.Yaw),
	}

	switch arsenal.Selector.Active() {
	case weapons.WaterGun:
		if shot, ok := arsenal.WaterGun.Fire(fire.Pressed, aim, t.FrameDt); ok {
			factory.CreateProjectile(ecs, shot)
			PlaySFX(ecs, cfg.SoundWaterGun)
		}
	case weapons.Plunger:
		if shot, ok := arsenal.Plunger.Fire(fire.JustPressed, aim); ok {
			factory.CreateProjectile(ecs, shot)
			PlaySFX(ecs, cfg.SoundPlunger)
		}
	case weapons.Whirlpool:
		if spiral, ok := arsenal.Whirlpool.Fire(fire.JustPressed, aim); ok {
			arsenal.LiveWhirlpool = factory.CreateWhirlpool(ecs, spiral)
			PlaySFX(ecs, cfg.SoundWhirlpool)
		}
	}
}
