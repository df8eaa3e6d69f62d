package factory

import (
	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/shared/timestep"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTime creates the frame clock singleton.
func CreateTime(ecs *ecs.ECS) *donburi.Entry {
	t := archetypes.Time.Spawn(ecs)
	components.Time.SetValue(t, components.TimeData{
		FixedDt: cfg.Physics.FixedStep,
		Stepper: timestep.Stepper{
			Step:     cfg.Physics.FixedStep,
			MaxSteps: cfg.Physics.MaxStepsPerFrame,
			MaxFrame: cfg.Physics.MaxFrameDelta,
		},
	})
	return t
}
