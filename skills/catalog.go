// Package skills defines the skill variants entities can equip. Every variant
// shares one cooldown record (components.SkillState) and differs only in its
// stats and the effect function run when the simulation executes it.
package skills

import (
	"time"

	"github.com/automoto/nanowar-mp/components"
	"github.com/automoto/nanowar-mp/shared/netconfig"
	"github.com/yohamta/donburi"
)

// Skill ranges in distance units.
const (
	RangeMedium = 150.0
	RangeLong   = 250.0
)

// ProjectileSpeed is how fast acid travels toward its target.
const ProjectileSpeed = 400.0

// EffectContext is everything an effect function may read when a skill is
// executed in the local simulation.
type EffectContext struct {
	World            donburi.World
	OwnerID          uint
	OwnerX, OwnerY   float64
	TargetID         uint // 0 for ground-targeted casts
	TargetX, TargetY float64
	Template         Template
}

// EffectFunc applies a skill's visual effect to the simulation.
type EffectFunc func(ctx EffectContext)

// Template holds the fixed stats of a skill variant.
type Template struct {
	Kind           netconfig.SkillKind
	Range          float64
	Damage         int
	MaxCooldown    time.Duration
	EffectDuration time.Duration
	Effect         EffectFunc
}

var catalog = map[netconfig.SkillKind]Template{
	netconfig.SkillAcidWeapon: {
		Kind:           netconfig.SkillAcidWeapon,
		Range:          RangeLong,
		Damage:         30,
		MaxCooldown:    700 * time.Millisecond,
		EffectDuration: 3 * time.Second,
		Effect:         fireAcid,
	},
	netconfig.SkillLifeLeech: {
		Kind:        netconfig.SkillLifeLeech,
		Range:       RangeMedium,
		Damage:      20,
		MaxCooldown: time.Second,
		Effect:      leechLife,
	},
}

// Lookup returns the template for kind.
func Lookup(kind netconfig.SkillKind) (Template, bool) {
	t, ok := catalog[kind]
	return t, ok
}

// NewState builds a fresh, ready cooldown record for kind.
func NewState(kind netconfig.SkillKind) (components.SkillState, bool) {
	t, ok := catalog[kind]
	if !ok {
		return components.SkillState{}, false
	}
	return components.SkillState{
		Kind:        t.Kind,
		Range:       t.Range,
		MaxCooldown: t.MaxCooldown,
	}, true
}
