package systems

import (
	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// stepPlatforms advances each platform's tween and moves its box, carrying
// whatever rests on it.
func stepPlatforms(ecs *ecs.ECS, dt float64) {
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		platform := components.Platform.Get(e)
		box := components.Object.Get(e)

		v, _, _ := tw.Update(float32(dt))
		box.MoveTo(platform.Base.Add(platform.Travel.Mul(float64(v))))
	})
}
