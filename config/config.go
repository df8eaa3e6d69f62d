package config

import (
	"github.com/automoto/firstperson/locomotion"
	"github.com/go-gl/mathgl/mgl64"
)

// Default is the single ECS layer every entity and renderer lives on.
const Default = 0

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlayerConfig contains the controlled body and its controller tuning
type PlayerConfig struct {
	Locomotion locomotion.Settings `yaml:"locomotion"`

	// Body
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
	// EyeHeight is the camera joint's rest height above the body centre.
	EyeHeight float64 `yaml:"eye_height"`

	// Presentation
	LockCursor bool `yaml:"lock_cursor"`
	Crosshair  bool `yaml:"crosshair"`
}

// PhysicsConfig contains world and scheduling values
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`
	CellSize int     `yaml:"cell_size"`
	KillY    float64 `yaml:"kill_y"`

	// Fixed-step scheduling
	FixedStep        float64 `yaml:"fixed_step"`
	MaxStepsPerFrame int     `yaml:"max_steps_per_frame"`
	MaxFrameDelta    float64 `yaml:"max_frame_delta"`
}

type WaterGunConfig struct {
	FireRate    float64 `yaml:"fire_rate"` // seconds between shots
	BulletSpeed float64 `yaml:"bullet_speed"`
	Lifetime    float64 `yaml:"lifetime"`
}

type PlungerConfig struct {
	Speed    float64 `yaml:"speed"`
	Lifetime float64 `yaml:"lifetime"`
	// Spread is the lateral distance of the outer fire points from the centre.
	Spread float64 `yaml:"spread"`
}

type WhirlpoolConfig struct {
	SpiralSpeed   float64 `yaml:"spiral_speed"` // radians per second
	RadialSpeed   float64 `yaml:"radial_speed"` // metres per second
	Lifetime      float64 `yaml:"lifetime"`
	TailInterval  float64 `yaml:"tail_interval"`
	MaxTailPoints int     `yaml:"max_tail_points"`
}

// WeaponsConfig contains weapon and projectile values
type WeaponsConfig struct {
	WaterGun  WaterGunConfig  `yaml:"water_gun"`
	Plunger   PlungerConfig   `yaml:"plunger"`
	Whirlpool WhirlpoolConfig `yaml:"whirlpool"`

	ProjectileRadius float64 `yaml:"projectile_radius"`
	// MuzzleOffset is how far in front of the eye projectiles spawn.
	MuzzleOffset   float64 `yaml:"muzzle_offset"`
	ImpactLifetime float64 `yaml:"impact_lifetime"`
	// DestroyDelay is how long a projectile lingers after its first hit.
	DestroyDelay float64 `yaml:"destroy_delay"`
	HitImpulse   float64 `yaml:"hit_impulse"`
}

// EnemyConfig contains the chase-and-attack monster values
type EnemyConfig struct {
	DetectionRadius float64 `yaml:"detection_radius"`
	AttackRange     float64 `yaml:"attack_range"`
	AttackForce     float64 `yaml:"attack_force"`
	ChaseSpeed      float64 `yaml:"chase_speed"`
	WindUp          float64 `yaml:"wind_up"`
	AttackCooldown  float64 `yaml:"attack_cooldown"`
	TurnRate        float64 `yaml:"turn_rate"`
	MaxVelocityStep float64 `yaml:"max_velocity_step"`

	// Thrown sludge
	FirePoint     mgl64.Vec3 `yaml:"fire_point"`
	ShotRadius    float64    `yaml:"shot_radius"`
	ShotLifetime  float64    `yaml:"shot_lifetime"`
	ShotKnockback float64    `yaml:"shot_knockback"`

	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
	Drag   float64 `yaml:"drag"`
}

// HUDConfig contains stamina bar and crosshair presentation values
type HUDConfig struct {
	SprintBar        bool    `yaml:"sprint_bar"`
	HideBarWhenFull  bool    `yaml:"hide_bar_when_full"`
	BarWidthPercent  float64 `yaml:"bar_width_percent"`
	BarHeightPercent float64 `yaml:"bar_height_percent"`
	FadeInRate       float64 `yaml:"fade_in_rate"`
	FadeOutRate      float64 `yaml:"fade_out_rate"`

	CrosshairSize     float64 `yaml:"crosshair_size"`
	HitMarkerDuration float64 `yaml:"hit_marker_duration"`
}

// LevelConfig contains level loading values
type LevelConfig struct {
	Name           string  `yaml:"name"`
	PixelsPerMeter float64 `yaml:"pixels_per_meter"`
	PlatformTravel float64 `yaml:"platform_travel"`
	PlatformPeriod float64 `yaml:"platform_period"`
}

// DebugConfig contains diagnostics options
type DebugConfig struct {
	LogLevel string `yaml:"log_level"`
	Overlay  bool   `yaml:"overlay"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Weapons WeaponsConfig
var Enemy EnemyConfig
var HUD HUDConfig
var Level LevelConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "firstperson",
	}

	Player = PlayerConfig{
		Locomotion: locomotion.DefaultSettings(),

		Radius:    0.4,
		Mass:      1,
		EyeHeight: 0.8,

		LockCursor: true,
		Crosshair:  true,
	}

	Physics = PhysicsConfig{
		Gravity:  -9.81,
		CellSize: 2,
		KillY:    -30,

		FixedStep:        1.0 / 60,
		MaxStepsPerFrame: 5,
		MaxFrameDelta:    0.25,
	}

	Weapons = WeaponsConfig{
		WaterGun: WaterGunConfig{
			FireRate:    0.3,
			BulletSpeed: 25,
			Lifetime:    5,
		},
		Plunger: PlungerConfig{
			Speed:    20,
			Lifetime: 5,
			Spread:   0.3,
		},
		Whirlpool: WhirlpoolConfig{
			SpiralSpeed:   5,
			RadialSpeed:   1,
			Lifetime:      5,
			TailInterval:  0.05,
			MaxTailPoints: 100,
		},

		ProjectileRadius: 0.1,
		MuzzleOffset:     0.6,
		ImpactLifetime:   2,
		DestroyDelay:     0.1,
		HitImpulse:       2,
	}

	Enemy = EnemyConfig{
		DetectionRadius: 10,
		AttackRange:     2,
		AttackForce:     15,
		ChaseSpeed:      3.5,
		WindUp:          0.3,
		AttackCooldown:  1.2,
		TurnRate:        5,
		MaxVelocityStep: 1,

		FirePoint:     mgl64.Vec3{0, 0.6, 0.7},
		ShotRadius:    0.15,
		ShotLifetime:  5,
		ShotKnockback: 3,

		Radius: 0.5,
		Mass:   3,
		Drag:   4,
	}

	HUD = HUDConfig{
		SprintBar:        true,
		HideBarWhenFull:  true,
		BarWidthPercent:  0.3,
		BarHeightPercent: 0.015,
		FadeInRate:       5,
		FadeOutRate:      3,

		CrosshairSize:     6,
		HitMarkerDuration: 0.25,
	}

	Level = LevelConfig{
		Name:           "arena",
		PixelsPerMeter: 16,
		PlatformTravel: 2,
		PlatformPeriod: 2,
	}

	Debug = DebugConfig{
		LogLevel: "info",
		Overlay:  true,
	}
}
