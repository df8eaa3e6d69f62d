package components

import (
	"github.com/automoto/firstperson/shared/weapons"
	"github.com/yohamta/donburi"
)

// ArsenalData is the player's weapon loadout.
type ArsenalData struct {
	Selector  weapons.Selector
	WaterGun  weapons.WaterGunTrigger
	Plunger   weapons.PlungerLauncher
	Whirlpool weapons.WhirlpoolCaster
	// LiveWhirlpool is the single active whirlpool entity, if any.
	LiveWhirlpool *donburi.Entry
}

var Arsenal = donburi.NewComponentType[ArsenalData]()
