package components

import (
	"github.com/automoto/firstperson/shared/ai"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind   string // from the level's "kind" property
	Brain  *ai.Brain
	Throws int
	Hits   int
}

var Enemy = donburi.NewComponentType[EnemyData]()
