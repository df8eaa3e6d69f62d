package systems

import (
	"image/color"
	"math"

	"github.com/automoto/firstperson/assets"
	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/shared/weapons"
	"github.com/automoto/firstperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	nearPlane = 0.05
	farPlane  = 200.0
	lineWidth = 1
	ringSides = 12
)

var (
	skyTop     = []float32{0.25, 0.45, 0.75}
	skyBottom  = []float32{0.70, 0.82, 0.95}
	groundFar  = []float32{0.30, 0.32, 0.28}
	groundNear = []float32{0.16, 0.17, 0.15}
	skyFlat    = color.RGBA{110, 150, 200, 255}

	floorColor     = color.RGBA{140, 150, 130, 255}
	wallColor      = color.RGBA{220, 220, 210, 255}
	platformColor  = color.RGBA{240, 200, 60, 255}
	enemyColor     = color.RGBA{150, 90, 40, 255}
	enemyHitColor  = color.RGBA{255, 255, 255, 255}
	waterColor     = color.RGBA{60, 160, 255, 255}
	plungerColor   = color.RGBA{200, 60, 60, 255}
	whirlpoolColor = color.RGBA{80, 230, 230, 255}
	sludgeColor    = color.RGBA{110, 70, 30, 255}
	impactColor    = color.RGBA{200, 230, 255, 255}
)

// boxEdges indexes the corners produced by boxCorners.
var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

var skyOp = &ebiten.DrawRectShaderOptions{Uniforms: map[string]any{}}

// projector maps world points onto the screen for the current eye.
type projector struct {
	view   mgl64.Mat4
	proj   mgl64.Mat4
	width  float64
	height float64
}

func newProjector(eye, dir mgl64.Vec3, fov float64, width, height int) projector {
	view := mgl64.LookAtV(eye, eye.Add(dir), mgl64.Vec3{0, 1, 0})
	// World +X is the viewer's right at zero yaw, the mirror of a
	// right-handed camera looking down +Z.
	view = mgl64.Scale3D(-1, 1, 1).Mul4(view)

	w, h := float64(width), float64(height)
	return projector{
		view:   view,
		proj:   mgl64.Perspective(mgl64.DegToRad(fov), w/h, nearPlane, farPlane),
		width:  w,
		height: h,
	}
}

// segment clips a world-space segment to the near plane and returns its
// screen endpoints.
func (p projector) segment(a, b mgl64.Vec3) (ax, ay, bx, by float32, ok bool) {
	va := p.view.Mul4x1(a.Vec4(1)).Vec3()
	vb := p.view.Mul4x1(b.Vec4(1)).Vec3()

	// The camera looks down -Z in view space.
	da, db := -va.Z()-nearPlane, -vb.Z()-nearPlane
	if da < 0 && db < 0 {
		return 0, 0, 0, 0, false
	}
	if da < 0 {
		va = va.Add(vb.Sub(va).Mul(da / (da - db)))
	} else if db < 0 {
		vb = vb.Add(va.Sub(vb).Mul(db / (db - da)))
	}

	ax, ay = p.screen(va)
	bx, by = p.screen(vb)
	return ax, ay, bx, by, true
}

func (p projector) screen(v mgl64.Vec3) (float32, float32) {
	clip := p.proj.Mul4x1(v.Vec4(1))
	x, y := clip.X()/clip.W(), clip.Y()/clip.W()
	return float32((x + 1) / 2 * p.width), float32((1 - y) / 2 * p.height)
}

func (p projector) line(screen *ebiten.Image, a, b mgl64.Vec3, c color.Color) {
	ax, ay, bx, by, ok := p.segment(a, b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, ax, ay, bx, by, lineWidth, c, true)
}

func (p projector) box(screen *ebiten.Image, lo, hi mgl64.Vec3, c color.Color) {
	corners := boxCorners(lo, hi)
	for _, e := range boxEdges {
		p.line(screen, corners[e[0]], corners[e[1]], c)
	}
}

// ring draws a horizontal circle.
func (p projector) ring(screen *ebiten.Image, centre mgl64.Vec3, radius float64, c color.Color) {
	prev := centre.Add(mgl64.Vec3{radius, 0, 0})
	for i := 1; i <= ringSides; i++ {
		a := float64(i) / ringSides * 2 * math.Pi
		next := centre.Add(mgl64.Vec3{math.Cos(a) * radius, 0, math.Sin(a) * radius})
		p.line(screen, prev, next, c)
		prev = next
	}
}

func boxCorners(lo, hi mgl64.Vec3) [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	for i := range out {
		c := lo
		if i&1 != 0 {
			c[0] = hi[0]
		}
		if i&2 != 0 {
			c[2] = hi[2]
		}
		if i&4 != 0 {
			c[1] = hi[1]
		}
		out[i] = c
	}
	return out
}

// DrawSky fills the background with the sky and ground gradient, split at
// the horizon for the current pitch.
func DrawSky(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	e, ok := playerEntry(ecs)
	if !ok || assets.SkyShader == nil {
		screen.Fill(skyFlat)
		return
	}
	camera := components.Camera.Get(e)

	focal := float64(h) / 2 / math.Tan(mgl64.DegToRad(camera.FOV)/2)
	horizon := float64(h)/2 - focal*math.Tan(mgl64.DegToRad(camera.Pitch))

	skyOp.Uniforms["Horizon"] = float32(horizon)
	skyOp.Uniforms["SkyTop"] = skyTop
	skyOp.Uniforms["SkyBottom"] = skyBottom
	skyOp.Uniforms["GroundNear"] = groundNear
	skyOp.Uniforms["GroundFar"] = groundFar
	screen.DrawRectShader(w, h, assets.SkyShader, skyOp)
}

// DrawWorld renders the arena, enemies, projectiles and impacts as wireframes
// from the player's eye.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	e, ok := playerEntry(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	camera := components.Camera.Get(e)
	p := newProjector(camera.Eye, player.Controller.ViewDirection(), camera.FOV, screen.Bounds().Dx(), screen.Bounds().Dy())

	drawSolids(ecs, screen, p, tags.Floor.Each, floorColor)
	drawSolids(ecs, screen, p, tags.Wall.Each, wallColor)
	drawSolids(ecs, screen, p, tags.Platform.Each, platformColor)

	components.Enemy.Each(ecs.World, func(en *donburi.Entry) {
		c := enemyColor
		if components.Flash.Get(en).Remaining > 0 {
			c = enemyHitColor
		}
		lo, hi := components.Physics.Get(en).Bounds()
		p.box(screen, lo, hi, c)
	})

	components.Projectile.Each(ecs.World, func(pe *donburi.Entry) {
		drawProjectile(screen, p, components.Projectile.Get(pe))
	})

	components.Impact.Each(ecs.World, func(ie *donburi.Entry) {
		impact := components.Impact.Get(ie)
		t := 0.0
		if impact.Lifetime > 0 {
			t = math.Min(1, impact.Age/impact.Lifetime)
		}
		p.ring(screen, impact.Position, impact.Radius*(0.5+t), fade(impactColor, 1-t))
	})
}

func drawSolids(ecs *ecs.ECS, screen *ebiten.Image, p projector, each func(donburi.World, func(*donburi.Entry)), c color.Color) {
	each(ecs.World, func(e *donburi.Entry) {
		box := components.Object.Get(e)
		p.box(screen, box.Min, box.Max, c)
	})
}

func drawProjectile(screen *ebiten.Image, p projector, pr *components.ProjectileData) {
	half := mgl64.Vec3{pr.Radius, pr.Radius, pr.Radius}
	switch pr.Kind {
	case weapons.Whirlpool:
		tail := pr.Spiral.Tail()
		for i := 1; i < len(tail); i++ {
			p.line(screen, tail[i-1], tail[i], whirlpoolColor)
		}
		p.ring(screen, pr.Position, pr.Radius, whirlpoolColor)
	case weapons.Plunger:
		p.box(screen, pr.Position.Sub(half), pr.Position.Add(half), plungerColor)
		if !pr.Exploded && pr.Velocity.Len() > 0 {
			p.line(screen, pr.Position, pr.Position.Sub(pr.Velocity.Normalize().Mul(pr.Radius*6)), plungerColor)
		}
	case weapons.Sludge:
		p.box(screen, pr.Position.Sub(half), pr.Position.Add(half), sludgeColor)
		p.ring(screen, pr.Position, pr.Radius*1.5, sludgeColor)
	default:
		p.box(screen, pr.Position.Sub(half), pr.Position.Add(half), waterColor)
	}
}
