package locomotion

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CameraSettings configures look input and the camera rig.
type CameraSettings struct {
	CanMove     bool    `yaml:"can_move"`
	Invert      bool    `yaml:"invert"`
	Sensitivity float64 `yaml:"sensitivity"`
	// MaxLookAngle bounds pitch in both directions, in degrees.
	MaxLookAngle float64 `yaml:"max_look_angle"`
	Smoothing    bool    `yaml:"smoothing"`
	// SmoothingRate scales dt to give the per-frame lerp factor toward the target angles.
	SmoothingRate  float64 `yaml:"smoothing_rate"`
	LookSmoothTime float64 `yaml:"look_smooth_time"`
	FOV            float64 `yaml:"fov"`
	InitialYaw     float64 `yaml:"initial_yaw"`
	InitialPitch   float64 `yaml:"initial_pitch"`
}

type ZoomSettings struct {
	Enabled  bool    `yaml:"enabled"`
	Hold     bool    `yaml:"hold"`
	FOV      float64 `yaml:"fov"`
	StepTime float64 `yaml:"step_time"`
}

type MovementSettings struct {
	CanMove           bool    `yaml:"can_move"`
	WalkSpeed         float64 `yaml:"walk_speed"`
	MaxVelocityChange float64 `yaml:"max_velocity_change"`
	MoveSmoothTime    float64 `yaml:"move_smooth_time"`
}

type SprintSettings struct {
	Enabled   bool    `yaml:"enabled"`
	Unlimited bool    `yaml:"unlimited"`
	Speed     float64 `yaml:"speed"`
	Duration  float64 `yaml:"duration"`
	Cooldown  float64 `yaml:"cooldown"`
	FOV       float64 `yaml:"fov"`
}

type JumpSettings struct {
	Enabled bool    `yaml:"enabled"`
	Power   float64 `yaml:"power"`
}

type CrouchSettings struct {
	Enabled        bool    `yaml:"enabled"`
	Hold           bool    `yaml:"hold"`
	Height         float64 `yaml:"height"`
	SpeedReduction float64 `yaml:"speed_reduction"`
}

type HeadBobSettings struct {
	Enabled   bool       `yaml:"enabled"`
	Speed     float64    `yaml:"speed"`
	Amount    mgl64.Vec3 `yaml:"amount"`
	Smoothing float64    `yaml:"smoothing"`
}

type GroundSettings struct {
	CastDistance  float64 `yaml:"cast_distance"`
	LateralOffset float64 `yaml:"lateral_offset"`
}

// Settings holds every construction-time tunable of a Controller.
type Settings struct {
	Camera   CameraSettings   `yaml:"camera"`
	Zoom     ZoomSettings     `yaml:"zoom"`
	Movement MovementSettings `yaml:"movement"`
	Sprint   SprintSettings   `yaml:"sprint"`
	Jump     JumpSettings     `yaml:"jump"`
	Crouch   CrouchSettings   `yaml:"crouch"`
	HeadBob  HeadBobSettings  `yaml:"head_bob"`
	Ground   GroundSettings   `yaml:"ground"`
}

// DefaultSettings returns the stock tuning of the controller.
func DefaultSettings() Settings {
	return Settings{
		Camera: CameraSettings{
			CanMove:        true,
			Sensitivity:    2,
			MaxLookAngle:   50,
			Smoothing:      true,
			SmoothingRate:  10,
			LookSmoothTime: 0.3,
			FOV:            60,
		},
		Zoom: ZoomSettings{
			Enabled:  true,
			FOV:      30,
			StepTime: 5,
		},
		Movement: MovementSettings{
			CanMove:           true,
			WalkSpeed:         5,
			MaxVelocityChange: 10,
			MoveSmoothTime:    0.1,
		},
		Sprint: SprintSettings{
			Enabled:  true,
			Speed:    7,
			Duration: 5,
			Cooldown: 0.5,
			FOV:      80,
		},
		Jump: JumpSettings{
			Enabled: true,
			Power:   5,
		},
		Crouch: CrouchSettings{
			Enabled:        true,
			Hold:           true,
			Height:         0.75,
			SpeedReduction: 0.5,
		},
		HeadBob: HeadBobSettings{
			Enabled:   true,
			Speed:     10,
			Amount:    mgl64.Vec3{0.15, 0.05, 0},
			Smoothing: 0.5,
		},
		Ground: GroundSettings{
			CastDistance:  0.85,
			LateralOffset: 0.2,
		},
	}
}

// Validate reports every unusable value as a joined set of *ConfigurationError.
func (s Settings) Validate() error {
	var errs []error
	positive := func(field string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, configError(field, "must be a positive finite number"))
		}
	}
	nonNegative := func(field string, v float64) {
		if !(v >= 0) || math.IsInf(v, 0) {
			errs = append(errs, configError(field, "must be a non-negative finite number"))
		}
	}

	nonNegative("camera.sensitivity", s.Camera.Sensitivity)
	if !(s.Camera.MaxLookAngle >= 0 && s.Camera.MaxLookAngle <= 90) {
		errs = append(errs, configError("camera.max_look_angle", "must be within [0, 90]"))
	}
	nonNegative("camera.smoothing_rate", s.Camera.SmoothingRate)
	nonNegative("camera.look_smooth_time", s.Camera.LookSmoothTime)
	positive("camera.fov", s.Camera.FOV)

	if s.Zoom.Enabled {
		positive("zoom.fov", s.Zoom.FOV)
	}
	nonNegative("zoom.step_time", s.Zoom.StepTime)

	nonNegative("movement.walk_speed", s.Movement.WalkSpeed)
	nonNegative("movement.max_velocity_change", s.Movement.MaxVelocityChange)
	nonNegative("movement.move_smooth_time", s.Movement.MoveSmoothTime)

	if s.Sprint.Enabled {
		nonNegative("sprint.speed", s.Sprint.Speed)
		positive("sprint.fov", s.Sprint.FOV)
		if !s.Sprint.Unlimited {
			positive("sprint.duration", s.Sprint.Duration)
			nonNegative("sprint.cooldown", s.Sprint.Cooldown)
		}
	}

	if s.Jump.Enabled {
		nonNegative("jump.power", s.Jump.Power)
	}

	if s.Crouch.Enabled {
		positive("crouch.height", s.Crouch.Height)
		positive("crouch.speed_reduction", s.Crouch.SpeedReduction)
	}

	if s.HeadBob.Enabled {
		nonNegative("head_bob.speed", s.HeadBob.Speed)
		nonNegative("head_bob.smoothing", s.HeadBob.Smoothing)
	}

	positive("ground.cast_distance", s.Ground.CastDistance)
	nonNegative("ground.lateral_offset", s.Ground.LateralOffset)

	return errors.Join(errs...)
}
