package components

import (
	"github.com/automoto/firstperson/locomotion"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller *locomotion.Controller
	Spawn      mgl64.Vec3 // respawn point after falling out of the arena
	Falls      int
}

var Player = donburi.NewComponentType[PlayerData]()
