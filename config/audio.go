package config

import "github.com/automoto/firstperson/shared/sfx"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundLand
	// Weapon sounds
	SoundWaterGun
	SoundPlunger
	SoundWhirlpool
	SoundImpact
	// Enemy sounds
	SoundEnemyThrow
	SoundEnemyHit
	// View sounds
	SoundZoom
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int     `yaml:"sample_rate"`
	DefaultSFXVol float64 `yaml:"default_sfx_volume"`
}

// SoundConfig maps sound IDs to synthesized tones
type SoundConfig struct {
	Tones             map[SoundID]sfx.Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]sfx.Tone{
			SoundJump:       {Wave: sfx.Square, StartHz: 220, EndHz: 440, Duration: 0.12, Volume: 0.3},
			SoundLand:       {Wave: sfx.Noise, Duration: 0.08, Volume: 0.4},
			SoundWaterGun:   {Wave: sfx.Noise, Duration: 0.1, Volume: 0.3},
			SoundPlunger:    {Wave: sfx.Triangle, StartHz: 180, EndHz: 90, Duration: 0.15, Volume: 0.6},
			SoundWhirlpool:  {Wave: sfx.Sine, StartHz: 200, EndHz: 800, Duration: 0.5, Volume: 0.5},
			SoundImpact:     {Wave: sfx.Noise, Duration: 0.15, Volume: 0.5},
			SoundEnemyThrow: {Wave: sfx.Square, StartHz: 90, EndHz: 60, Duration: 0.25, Volume: 0.4},
			SoundEnemyHit:   {Wave: sfx.Triangle, StartHz: 600, EndHz: 300, Duration: 0.1, Volume: 0.5},
			SoundZoom:       {Wave: sfx.Sine, StartHz: 900, EndHz: 1200, Duration: 0.05, Volume: 0.2},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundImpact:   1.5,
			SoundEnemyHit: 1.5,
		},
	}
}
