// Package hud computes heads-up display state independent of rendering.
package hud

import "github.com/automoto/firstperson/shared/gamemath"

// StaminaReading is what the bar needs from the locomotion controller.
type StaminaReading struct {
	Remaining float64
	Duration  float64
	Sprinting bool
	Unlimited bool
}

// BarState is the bar as it should be drawn this frame.
type BarState struct {
	Visible bool
	Fill    float64
	Alpha   float64
}

// StaminaBar fades the sprint bar in while sprinting and out once full.
type StaminaBar struct {
	HideWhenFull bool
	FadeIn       float64 // alpha per second while sprinting
	FadeOut      float64 // alpha per second once full

	alpha float64
}

func NewStaminaBar(hideWhenFull bool, fadeIn, fadeOut float64) *StaminaBar {
	return &StaminaBar{
		HideWhenFull: hideWhenFull,
		FadeIn:       fadeIn,
		FadeOut:      fadeOut,
	}
}

// Update advances the fade by one fixed step and returns the bar state.
func (b *StaminaBar) Update(r StaminaReading, fixedDt float64) BarState {
	if r.Unlimited || !(r.Duration > 0) {
		return BarState{}
	}
	fill := gamemath.Clamp01(r.Remaining / r.Duration)

	if !b.HideWhenFull {
		return BarState{Visible: true, Fill: fill, Alpha: 1}
	}

	switch {
	case r.Sprinting:
		b.alpha += b.FadeIn * fixedDt
	case r.Remaining >= r.Duration:
		b.alpha -= b.FadeOut * fixedDt
	}
	b.alpha = gamemath.Clamp01(b.alpha)

	return BarState{Visible: b.alpha > 0, Fill: fill, Alpha: b.alpha}
}

func (b *StaminaBar) Alpha() float64 { return b.alpha }

// Rect is a screen-space rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// BarRect centres the bar horizontally near the bottom of the screen.
func BarRect(screenW, screenH int, widthPct, heightPct float64) Rect {
	w := float64(screenW) * widthPct
	h := float64(screenH) * heightPct
	return Rect{
		X: (float64(screenW) - w) / 2,
		Y: float64(screenH)*0.9 - h/2,
		W: w,
		H: h,
	}
}

// Filled returns the left part of r covering fill of its width.
func (r Rect) Filled(fill float64) Rect {
	r.W *= gamemath.Clamp01(fill)
	return r
}
