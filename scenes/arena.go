package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/firstperson/assets"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/systems"
	"github.com/automoto/firstperson/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the playable first-person arena.
type ArenaScene struct {
	ecs   *ecs.ECS
	level string
	once  sync.Once
	err   error
}

// NewArenaScene creates a scene for the named arena; an empty name picks the
// first embedded one.
func NewArenaScene(level string) *ArenaScene {
	return &ArenaScene{level: level}
}

func (as *ArenaScene) Update() error {
	as.once.Do(func() {
		as.err = as.configure()
	})
	if as.err != nil {
		return as.err
	}
	as.ecs.Update()
	return nil
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() error {
	systems.PreloadAllSFX()

	if err := assets.LoadShaders(); err != nil {
		// The sky falls back to a flat fill.
		logrus.WithError(err).Warn("could not load shaders")
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Frame phase
	ecs.AddSystem(systems.UpdateTime)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePreferences)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateWeapons)

	// Late phase
	ecs.AddSystem(systems.UpdateCamera)

	// Fixed phase, zero or more steps
	ecs.AddSystem(systems.UpdateFixed)

	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawSky)
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	as.ecs = ecs

	level, err := factory.CreateLevel(ecs, as.level)
	if err != nil {
		return fmt.Errorf("arena scene: %w", err)
	}
	arena := components.Level.Get(level).Arena

	factory.CreateWorld(ecs, arena.Width, arena.Depth)
	factory.CreateTime(ecs)
	factory.CreateHUD(ecs)
	systems.GetOrCreateAudio(ecs)

	for _, slab := range arena.Floors {
		factory.CreateFloor(ecs, slab)
	}
	for _, slab := range arena.Walls {
		factory.CreateWall(ecs, slab)
	}
	for _, p := range arena.Platforms {
		factory.CreatePlatform(ecs, p)
	}

	player, err := factory.CreatePlayer(ecs, arena.PlayerSpawn)
	if err != nil {
		return fmt.Errorf("arena scene: %w", err)
	}
	target := components.Physics.Get(player).Body

	spawned := 0
	for _, spawn := range arena.Enemies {
		if factory.CreateEnemy(ecs, spawn, target) != nil {
			spawned++
		}
	}

	if cfg.Player.LockCursor {
		systems.CaptureCursor(ecs)
	}

	logrus.WithFields(logrus.Fields{
		"arena":   arena.Name,
		"size":    fmt.Sprintf("%.0fx%.0f", arena.Width, arena.Depth),
		"enemies": spawned,
		"spawn":   arena.PlayerSpawn,
	}).Info("arena ready")
	return nil
}
