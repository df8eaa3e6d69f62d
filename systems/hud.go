package systems

import (
	"image/color"

	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/shared/hud"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var (
	barBackground = color.RGBA{20, 20, 20, 160}
	barFill       = color.RGBA{80, 200, 255, 255}
	barCooldown   = color.RGBA{230, 90, 60, 255}
	crosshairIdle = color.RGBA{255, 255, 255, 200}
	hitMarkerTint = color.RGBA{255, 60, 60, 255}
)

func hudData(ecs *ecs.ECS) (*components.HUDData, bool) {
	e, ok := components.HUD.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.HUD.Get(e), true
}

// stepHUD advances the stamina bar fade and the hit marker pulse by one fixed step.
func stepHUD(ecs *ecs.ECS, dt float64) {
	h, ok := hudData(ecs)
	if !ok {
		return
	}

	if h.HitMarker != nil {
		v, done := h.HitMarker.Update(float32(dt))
		h.HitAlpha = float64(v)
		if done {
			h.HitMarker = nil
			h.HitAlpha = 0
		}
	}

	e, ok := playerEntry(ecs)
	if !ok {
		return
	}
	ctrl := components.Player.Get(e).Controller
	st := ctrl.Status()
	s := ctrl.Settings()
	h.Bar = h.StaminaBar.Update(hud.StaminaReading{
		Remaining: st.StaminaRemaining,
		Duration:  s.Sprint.Duration,
		Sprinting: st.Sprinting,
		Unlimited: s.Sprint.Unlimited || !s.Sprint.Enabled,
	}, dt)
}

// triggerHitMarker restarts the crosshair pulse.
func triggerHitMarker(ecs *ecs.ECS) {
	h, ok := hudData(ecs)
	if !ok {
		return
	}
	h.HitMarker = gween.New(1, 0, float32(cfg.HUD.HitMarkerDuration), ease.OutQuad)
	h.HitAlpha = 1
}

// DrawHUD renders the stamina bar and the crosshair.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	h, ok := hudData(ecs)
	if !ok {
		return
	}
	w, ht := screen.Bounds().Dx(), screen.Bounds().Dy()

	if cfg.HUD.SprintBar && h.Bar.Visible {
		drawStaminaBar(ecs, screen, h.Bar, hud.BarRect(w, ht, cfg.HUD.BarWidthPercent, cfg.HUD.BarHeightPercent))
	}
	if cfg.Player.Crosshair {
		drawCrosshair(screen, float32(w)/2, float32(ht)/2, h.HitAlpha)
	}
	if !getOrCreateInput(ecs).CursorCaptured {
		msg := "click to capture the mouse"
		ebitenutil.DebugPrintAt(screen, msg, (w-len(msg)*6)/2, ht/2+24)
	}
}

func drawStaminaBar(ecs *ecs.ECS, screen *ebiten.Image, bar hud.BarState, r hud.Rect) {
	fill := barFill
	if e, ok := playerEntry(ecs); ok && components.Player.Get(e).Controller.Status().InCooldown {
		fill = barCooldown
	}

	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fade(barBackground, bar.Alpha), false)
	f := r.Filled(bar.Fill)
	vector.FillRect(screen, float32(f.X), float32(f.Y), float32(f.W), float32(f.H), fade(fill, bar.Alpha), false)
}

func drawCrosshair(screen *ebiten.Image, cx, cy float32, hit float64) {
	size := float32(cfg.HUD.CrosshairSize)
	c := crosshairIdle
	if hit > 0 {
		c = hitMarkerTint
		size *= 1 + float32(hit)
	}
	vector.StrokeLine(screen, cx-size, cy, cx+size, cy, 1.5, c, true)
	vector.StrokeLine(screen, cx, cy-size, cx, cy+size, 1.5, c, true)

	if hit > 0 {
		// Diagonal ticks outside the cross
		d := size * 1.6
		m := fade(hitMarkerTint, hit)
		vector.StrokeLine(screen, cx-d, cy-d, cx-size, cy-size, 2, m, true)
		vector.StrokeLine(screen, cx+d, cy-d, cx+size, cy-size, 2, m, true)
		vector.StrokeLine(screen, cx-d, cy+d, cx-size, cy+size, 2, m, true)
		vector.StrokeLine(screen, cx+d, cy+d, cx+size, cy+size, 2, m, true)
	}
}

// fade scales a colour's alpha by a in [0, 1], keeping it premultiplied.
func fade(c color.RGBA, a float64) color.RGBA {
	if a <= 0 {
		return color.RGBA{}
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
