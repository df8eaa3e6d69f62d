package components

import (
	"github.com/automoto/firstperson/physics"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its static or moving collision box.
type ObjectData struct {
	*physics.Box
}

var Object = donburi.NewComponentType[ObjectData]()
