package components

import (
	"github.com/automoto/firstperson/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Arena *leveldata.Arena
	Names []string // every embedded arena, sorted
}

var Level = donburi.NewComponentType[LevelData]()
