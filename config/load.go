package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// snapshot is the YAML document shape of an override file.
type snapshot struct {
	Window  Config        `yaml:"window"`
	Player  PlayerConfig  `yaml:"player"`
	Physics PhysicsConfig `yaml:"physics"`
	Weapons WeaponsConfig `yaml:"weapons"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	HUD     HUDConfig     `yaml:"hud"`
	Level   LevelConfig   `yaml:"level"`
	Debug   DebugConfig   `yaml:"debug"`
	Audio   AudioConfig   `yaml:"audio"`
}

func current() snapshot {
	return snapshot{
		Window:  *C,
		Player:  Player,
		Physics: Physics,
		Weapons: Weapons,
		Enemy:   Enemy,
		HUD:     HUD,
		Level:   Level,
		Debug:   Debug,
		Audio:   Audio,
	}
}

func (s snapshot) install() {
	w := s.Window
	C = &w
	Player = s.Player
	Physics = s.Physics
	Weapons = s.Weapons
	Enemy = s.Enemy
	HUD = s.HUD
	Level = s.Level
	Debug = s.Debug
	Audio = s.Audio
}

// Load reads a YAML override file and applies it over the current values.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Apply decodes data over the current values. Keys missing from data keep
// their current value. Nothing is changed unless the merged result validates.
func Apply(data []byte) error {
	next := current()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&next); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: %w", err)
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.install()
	return nil
}

// Validate checks the active configuration.
func Validate() error {
	return current().validate()
}

func (s snapshot) validate() error {
	var errs []error
	if err := s.Player.Locomotion.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("player.locomotion: %w", err))
	}
	check := func(ok bool, field, reason string) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s: %s", field, reason))
		}
	}
	check(s.Window.Width > 0 && s.Window.Height > 0, "window", "width and height must be positive")
	check(s.Player.Radius > 0, "player.radius", "must be positive")
	check(s.Player.Mass > 0, "player.mass", "must be positive")
	check(s.Physics.CellSize > 0, "physics.cell_size", "must be positive")
	check(s.Physics.FixedStep > 0, "physics.fixed_step", "must be positive")
	check(s.Physics.MaxStepsPerFrame > 0, "physics.max_steps_per_frame", "must be positive")
	check(s.Physics.MaxFrameDelta >= s.Physics.FixedStep, "physics.max_frame_delta", "must be at least fixed_step")
	check(s.Weapons.WaterGun.FireRate > 0, "weapons.water_gun.fire_rate", "must be positive")
	check(s.Weapons.Whirlpool.MaxTailPoints > 0, "weapons.whirlpool.max_tail_points", "must be positive")
	check(s.Weapons.Whirlpool.TailInterval > 0, "weapons.whirlpool.tail_interval", "must be positive")
	check(s.Enemy.AttackRange > 0 && s.Enemy.AttackRange <= s.Enemy.DetectionRadius,
		"enemy.attack_range", "must be positive and within detection_radius")
	check(s.Enemy.Mass > 0, "enemy.mass", "must be positive")
	check(s.Enemy.ShotRadius > 0, "enemy.shot_radius", "must be positive")
	check(s.Enemy.ShotLifetime > 0, "enemy.shot_lifetime", "must be positive")
	check(s.HUD.BarWidthPercent > 0 && s.HUD.BarWidthPercent <= 1, "hud.bar_width_percent", "must be within (0, 1]")
	check(s.HUD.BarHeightPercent > 0 && s.HUD.BarHeightPercent <= 1, "hud.bar_height_percent", "must be within (0, 1]")
	check(s.Level.PixelsPerMeter > 0, "level.pixels_per_meter", "must be positive")
	check(s.Level.PlatformPeriod > 0, "level.platform_period", "must be positive")
	check(s.Audio.SampleRate > 0, "audio.sample_rate", "must be positive")
	check(s.Audio.DefaultSFXVol >= 0 && s.Audio.DefaultSFXVol <= 1, "audio.default_sfx_volume", "must be within [0, 1]")
	return errors.Join(errs...)
}
