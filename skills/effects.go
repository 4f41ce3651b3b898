package skills

import (
	"time"

	"github.com/automoto/nanowar-mp/archetypes"
	"github.com/automoto/nanowar-mp/components"
	"github.com/automoto/nanowar-mp/shared/gamemath"
)

// leechLifeVisible is how long the leech visual stays on the target.
const leechLifeVisible = 400 * time.Millisecond

// fireAcid launches a projectile from the owner that flies to the target.
func fireAcid(ctx EffectContext) {
	dirX, dirY, dist := gamemath.Heading(ctx.OwnerX, ctx.OwnerY, ctx.TargetX, ctx.TargetY)
	flight := time.Duration(dist / ProjectileSpeed * float64(time.Second))

	entry := archetypes.Effect.Spawn(ctx.World)
	components.Effect.SetValue(entry, components.EffectData{
		Skill:    ctx.Template.Kind,
		OwnerID:  ctx.OwnerID,
		TargetID: ctx.TargetID,
		Damage:   ctx.Template.Damage,
	})
	components.Kinematics.SetValue(entry, components.KinematicsData{
		X:     ctx.OwnerX,
		Y:     ctx.OwnerY,
		DirX:  dirX,
		DirY:  dirY,
		Speed: ProjectileSpeed,
	})
	components.Destination.SetValue(entry, components.DestinationData{
		X:      ctx.TargetX,
		Y:      ctx.TargetY,
		Active: true,
	})
	components.AutoDestroy.SetValue(entry, components.AutoDestroyData{Remaining: flight})
}

// leechLife drains the target in place; the visual sits on the target.
func leechLife(ctx EffectContext) {
	entry := archetypes.Effect.Spawn(ctx.World)
	components.Effect.SetValue(entry, components.EffectData{
		Skill:    ctx.Template.Kind,
		OwnerID:  ctx.OwnerID,
		TargetID: ctx.TargetID,
		Damage:   ctx.Template.Damage,
	})
	components.Kinematics.SetValue(entry, components.KinematicsData{
		X: ctx.TargetX,
		Y: ctx.TargetY,
	})
	components.AutoDestroy.SetValue(entry, components.AutoDestroyData{Remaining: leechLifeVisible})
}
