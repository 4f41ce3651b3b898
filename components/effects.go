package components

import (
	"time"

	"github.com/automoto/nanowar-mp/shared/netconfig"
	"github.com/yohamta/donburi"
)

// EffectData is a short-lived visual produced by a fired skill.
type EffectData struct {
	Skill    netconfig.SkillKind
	OwnerID  uint
	TargetID uint // 0 for ground-targeted casts
	Damage   int
}

var Effect = donburi.NewComponentType[EffectData]()

// AutoDestroyData marks entities that are removed once Remaining runs out.
type AutoDestroyData struct {
	Remaining time.Duration
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// ClockData is the singleton frame clock. The host sets Elapsed before each
// ECS update; systems read it instead of assuming a fixed tick.
type ClockData struct {
	Elapsed time.Duration
}

var Clock = donburi.NewComponentType[ClockData]()
