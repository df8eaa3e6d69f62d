package factory

import (
	"fmt"

	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/assets"
	"github.com/automoto/firstperson/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the named arena, falling back to the first one found.
func CreateLevel(ecs *ecs.ECS, name string) (*donburi.Entry, error) {
	arenas, names, err := assets.LoadArenas()
	if err != nil {
		return nil, err
	}

	arena, ok := arenas[name]
	if !ok {
		if name != "" {
			return nil, fmt.Errorf("unknown level %q, have %v", name, names)
		}
		arena = arenas[names[0]]
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Arena: arena,
		Names: names,
	})
	return level, nil
}
