package systems

import (
	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// stepEffects advances timed effects and removes entities whose lifetime ran out.
func stepEffects(ecs *ecs.ECS, dt float64) {
	updateFlashEffects(ecs, dt)
	updateImpacts(ecs, dt)
	updateAutoDestroy(ecs, dt)
}

// updateFlashEffects counts down hit flashes
func updateFlashEffects(ecs *ecs.ECS, dt float64) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Remaining > 0 {
			flash.Remaining -= dt
		}
	})
}

func updateImpacts(ecs *ecs.ECS, dt float64) {
	components.Impact.Each(ecs.World, func(e *donburi.Entry) {
		components.Impact.Get(e).Age += dt
	})
}

// updateAutoDestroy removes entities whose countdown reached zero. A removed
// whirlpool frees the caster for the next one.
func updateAutoDestroy(ecs *ecs.ECS, dt float64) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.Remaining -= dt
		if ad.Remaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		if e.HasComponent(tags.Whirlpool) {
			releaseWhirlpool(ecs, e)
		}
		e.Remove()
	}
}

func releaseWhirlpool(ecs *ecs.ECS, e *donburi.Entry) {
	pe, ok := playerEntry(ecs)
	if !ok {
		return
	}
	arsenal := components.Arsenal.Get(pe)
	if arsenal.LiveWhirlpool == e {
		arsenal.LiveWhirlpool = nil
		arsenal.Whirlpool.Release()
	}
}
