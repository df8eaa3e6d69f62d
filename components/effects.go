package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	Remaining float64 // seconds until destruction
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// ImpactData is the splash left where a projectile hit something.
type ImpactData struct {
	Position mgl64.Vec3
	Age      float64
	Lifetime float64
	Radius   float64
}

var Impact = donburi.NewComponentType[ImpactData]()

// FlashData tints an entity for a short time after it is hit
type FlashData struct {
	Remaining float64 // seconds
}

var Flash = donburi.NewComponentType[FlashData]()
