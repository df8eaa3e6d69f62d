package systems

import (
	"sync"

	"github.com/automoto/firstperson/assets"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64
	audioInitOnce      sync.Once

	audioLog = logrus.WithField("system", "audio")
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
		globalSFXVolume = cfg.Audio.DefaultSFXVol
	})
}

// PreloadAllSFX renders every configured sound at startup to avoid lag on
// first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			audioLog.WithError(err).Warn("could not preload sound")
		}
	}
}

// UpdateAudio plays the sounds queued this frame.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID, audioData.SFXVolume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID, volume float64) {
	if volume <= 0 || soundID == cfg.SoundNone {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		audioLog.WithError(err).WithField("sound", soundID).Debug("sound skipped")
		return
	}

	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
	GetOrCreateAudio(e).SFXVolume = volume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
