package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug prints the locomotion state and preferences in the top-left corner.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	h, ok := hudData(ecs)
	if !ok || !h.ShowDebug {
		return
	}
	e, ok := playerEntry(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	st := player.Controller.Status()
	prefs := cfg.CurrentPreferences()
	body := components.Physics.Get(e)
	arsenal := components.Arsenal.Get(e)
	in := getOrCreateInput(ecs)

	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f  FPS %.0f\n", ebiten.ActualTPS(), ebiten.ActualFPS())
	fmt.Fprintf(&b, "pos %.2f %.2f %.2f\n", body.Position().X(), body.Position().Y(), body.Position().Z())
	fmt.Fprintf(&b, "vel %.2f %.2f %.2f\n", body.Velocity().X(), body.Velocity().Y(), body.Velocity().Z())
	fmt.Fprintf(&b, "yaw %.1f  pitch %.1f  fov %.1f\n", st.Yaw, st.Pitch, st.FOV)
	fmt.Fprintf(&b, "grounded %t  walking %t  crouched %t\n", st.Grounded, st.Walking, st.Crouched)
	fmt.Fprintf(&b, "sprinting %t  stamina %.2f  cooldown %t\n", st.Sprinting, st.StaminaRemaining, st.InCooldown)
	fmt.Fprintf(&b, "zoomed %t  walk speed %.2f  falls %d\n", st.Zoomed, st.WalkSpeed, player.Falls)
	fmt.Fprintf(&b, "weapon %s\n", arsenal.Selector.Active())
	fmt.Fprintf(&b, "sensitivity %.2f  invert %t  hold crouch %t  hold zoom %t\n",
		prefs.Sensitivity, prefs.InvertLook, prefs.HoldToCrouch, prefs.HoldToZoom)
	fmt.Fprintf(&b, "input %d  look %.2f %.2f  move %.2f %.2f\n", in.LastInputMethod, in.Look.X(), in.Look.Y(), in.Move.X(), in.Move.Y())

	ebitenutil.DebugPrintAt(screen, b.String(), 8, 8)
}
