package assets

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/shared/sfx"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes sound effects and caches the PCM per sound.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound without creating a player.
// Call this at startup to avoid lag on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.pcm(id)
	return err
}

// LoadSFX returns a new player for the sound each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

func (l *AudioLoader) pcm(id cfg.SoundID) ([]byte, error) {
	if data, ok := l.sfxCache[id]; ok {
		return data, nil
	}

	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone configured for sound %d", id)
	}
	data := sfx.Synthesize(l.context.SampleRate(), tone)
	if len(data) == 0 {
		return nil, fmt.Errorf("sound %d rendered empty", id)
	}

	l.sfxCache[id] = data
	return data, nil
}
