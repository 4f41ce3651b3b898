package systems

import (
	"github.com/automoto/nanowar-mp/components"
	"github.com/automoto/nanowar-mp/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	movingQuery  = donburi.NewQuery(filter.Contains(components.Kinematics))
	expiresQuery = donburi.NewQuery(filter.Contains(components.AutoDestroy))
)

// UpdateMotion moves every entity one frame. Entities with a destination
// walk toward it and stop on arrival; everything else keeps its heading.
func UpdateMotion(e *ecs.ECS) {
	elapsed := frameTime(e.World)
	if elapsed <= 0 {
		return
	}

	movingQuery.Each(e.World, func(entry *donburi.Entry) {
		k := components.Kinematics.Get(entry)
		if entry.HasComponent(components.Health) && !components.Health.Get(entry).Alive() {
			k.Stop()
			return
		}

		if entry.HasComponent(components.Destination) {
			dest := components.Destination.Get(entry)
			if dest.Active {
				var arrived bool
				k.X, k.Y, arrived = gamemath.StepToward(k.X, k.Y, dest.X, dest.Y, k.Speed, elapsed)
				if arrived {
					k.Stop()
					dest.Active = false
				}
				return
			}
		}

		if k.Moving() {
			k.X, k.Y = gamemath.Advance(k.X, k.Y, k.DirX, k.DirY, k.Speed, elapsed)
		}
	})
}

// UpdateEffects removes short-lived entities whose time ran out.
func UpdateEffects(e *ecs.ECS) {
	elapsed := frameTime(e.World)

	var expired []*donburi.Entry
	expiresQuery.Each(e.World, func(entry *donburi.Entry) {
		ad := components.AutoDestroy.Get(entry)
		ad.Remaining -= elapsed
		if ad.Remaining <= 0 {
			expired = append(expired, entry)
		}
	})
	for _, entry := range expired {
		entry.Remove()
	}
}
