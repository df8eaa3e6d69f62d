package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PlatformData is a moving box's path: Base plus Travel scaled by the tween value.
type PlatformData struct {
	Base   mgl64.Vec3
	Travel mgl64.Vec3
}

var Platform = donburi.NewComponentType[PlatformData]()

var Tween = donburi.NewComponentType[gween.Sequence]()
