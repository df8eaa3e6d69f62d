package factory

import (
	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/shared/hud"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateHUD(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.HUD.Spawn(ecs)
	components.HUD.SetValue(e, components.HUDData{
		StaminaBar: hud.NewStaminaBar(cfg.HUD.HideBarWhenFull, cfg.HUD.FadeInRate, cfg.HUD.FadeOutRate),
		ShowDebug:  cfg.Debug.Overlay,
	})
	return e
}
