package assets

import (
	"embed"
	"fmt"

	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/shared/leveldata"
)

//go:embed all:levels
var levelFS embed.FS

const levelsDir = "levels"

var arenaCache struct {
	arenas map[string]*leveldata.Arena
	names  []string
}

// LoadArenas parses every embedded arena once and returns them keyed by
// file stem, plus the sorted stems.
func LoadArenas() (map[string]*leveldata.Arena, []string, error) {
	if arenaCache.arenas != nil {
		return arenaCache.arenas, arenaCache.names, nil
	}

	arenas, names, err := leveldata.LoadAll(levelFS, levelsDir, leveldata.Options{
		PixelsPerMeter: cfg.Level.PixelsPerMeter,
		DefaultTravel:  cfg.Level.PlatformTravel,
		DefaultPeriod:  cfg.Level.PlatformPeriod,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("load embedded arenas: %w", err)
	}

	arenaCache.arenas, arenaCache.names = arenas, names
	return arenas, names, nil
}
