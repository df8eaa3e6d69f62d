package components

import (
	"github.com/automoto/firstperson/shared/weapons"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Kind     weapons.Kind
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Radius   float64
	// Gravity is added to Velocity every step; zero flies straight.
	Gravity float64
	// Exploded is set on the first hit; the projectile lingers briefly after.
	Exploded bool
	// Spiral drives whirlpool motion instead of Velocity.
	Spiral *weapons.Spiral
}

var Projectile = donburi.NewComponentType[ProjectileData]()
