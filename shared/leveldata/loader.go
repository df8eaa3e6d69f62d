package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

// Object group names recognised in arena files.
const (
	GroupFloors      = "Floors"
	GroupWalls       = "Walls"
	GroupPlatforms   = "Platforms"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupEnemies     = "Enemies"
)

// ErrNoPlayerSpawn is returned for arenas without a PlayerSpawn object.
var ErrNoPlayerSpawn = errors.New("arena has no player spawn")

// Load parses a TMX arena. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func Load(fsys fs.FS, tmxPath string, opts Options) (*Arena, error) {
	if !(opts.PixelsPerMeter > 0) {
		return nil, fmt.Errorf("load %s: pixels per meter must be positive, got %v", tmxPath, opts.PixelsPerMeter)
	}
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	ppm := opts.PixelsPerMeter
	arena := &Arena{
		Name:  strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width*levelMap.TileWidth) / ppm,
		Depth: float64(levelMap.Height*levelMap.TileHeight) / ppm,
	}

	spawned := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			x0, z0 := o.X/ppm, o.Y/ppm
			x1, z1 := (o.X+o.Width)/ppm, (o.Y+o.Height)/ppm

			switch og.Name {
			case GroupFloors:
				top := floatProp(o.Properties, "top", 0)
				thickness := floatProp(o.Properties, "thickness", 1)
				arena.Floors = append(arena.Floors, Slab{
					Min: mgl64.Vec3{x0, top - thickness, z0},
					Max: mgl64.Vec3{x1, top, z1},
				})

			case GroupWalls:
				base := floatProp(o.Properties, "base", 0)
				height := floatProp(o.Properties, "height", 3)
				arena.Walls = append(arena.Walls, Slab{
					Min: mgl64.Vec3{x0, base, z0},
					Max: mgl64.Vec3{x1, base + height, z1},
				})

			case GroupPlatforms:
				top := floatProp(o.Properties, "top", 1)
				thickness := floatProp(o.Properties, "thickness", 0.5)
				travel := floatProp(o.Properties, "travel", opts.DefaultTravel)
				axis, err := axisVector(o.Properties.GetString("axis"))
				if err != nil {
					return nil, fmt.Errorf("load %s: platform %d: %w", tmxPath, o.ID, err)
				}
				arena.Platforms = append(arena.Platforms, Platform{
					Slab: Slab{
						Min: mgl64.Vec3{x0, top - thickness, z0},
						Max: mgl64.Vec3{x1, top, z1},
					},
					Travel: axis.Mul(travel),
					Period: floatProp(o.Properties, "period", opts.DefaultPeriod),
				})

			case GroupPlayerSpawn:
				// First spawn wins
				if spawned {
					continue
				}
				arena.PlayerSpawn = mgl64.Vec3{x0, floatProp(o.Properties, "height", 1), z0}
				spawned = true

			case GroupEnemies:
				kind := o.Properties.GetString("kind")
				if kind == "" {
					kind = "slime"
				}
				arena.Enemies = append(arena.Enemies, EnemySpawn{
					Position: mgl64.Vec3{x0, floatProp(o.Properties, "height", 1), z0},
					Kind:     kind,
				})
			}
		}
	}

	if !spawned {
		return nil, fmt.Errorf("load %s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	// Sort enemies left-to-right for a stable spawn order
	sort.SliceStable(arena.Enemies, func(i, j int) bool {
		return arena.Enemies[i].Position.X() < arena.Enemies[j].Position.X()
	})

	return arena, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string, opts Options) (map[string]*Arena, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		arena, err := Load(fsys, p, opts)
		if err != nil {
			return nil, nil, err
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}

type propertyReader interface {
	GetString(name string) string
	GetFloat(name string) float64
}

func floatProp(props propertyReader, name string, def float64) float64 {
	if props.GetString(name) == "" {
		return def
	}
	return props.GetFloat(name)
}

func axisVector(axis string) (mgl64.Vec3, error) {
	switch strings.ToLower(axis) {
	case "", "y":
		return mgl64.Vec3{0, 1, 0}, nil
	case "x":
		return mgl64.Vec3{1, 0, 0}, nil
	case "z":
		return mgl64.Vec3{0, 0, 1}, nil
	}
	return mgl64.Vec3{}, fmt.Errorf("unknown axis %q", axis)
}
