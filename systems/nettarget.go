package systems

import (
	"github.com/automoto/nanowar-mp/components"
	"github.com/automoto/nanowar-mp/network"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// IntentKind is what a pointer click turns into.
type IntentKind int

const (
	IntentMoveTo IntentKind = iota + 1
	IntentAttack
	IntentFireTo
)

func (k IntentKind) String() string {
	switch k {
	case IntentMoveTo:
		return "move"
	case IntentAttack:
		return "attack"
	case IntentFireTo:
		return "fire"
	default:
		return "none"
	}
}

// Intent is a resolved player command.
type Intent struct {
	Kind     IntentKind
	X, Y     float64
	TargetID uint // Attack only
	Skill    int  // Attack and FireTo
}

// TargetResolver turns a pointer click into an intent. Priority is
// Attack, then FireTo, then MoveTo.
type TargetResolver struct {
	session   *network.Session
	world     donburi.World
	cooldowns *SkillCooldownResolver
}

func NewTargetResolver(session *network.Session, world donburi.World, cooldowns *SkillCooldownResolver) *TargetResolver {
	return &TargetResolver{session: session, world: world, cooldowns: cooldowns}
}

// Resolve classifies a click at (x, y) on target, which is nil when the click
// hit nothing. ok is false when the click should do nothing.
func (t *TargetResolver) Resolve(x, y float64, target *donburi.Entry, mods Modifiers) (Intent, bool) {
	self, ok := t.controlledEntry()
	if !ok || !components.Health.Get(self).Alive() {
		return Intent{}, false
	}

	if target != nil && target.Valid() {
		id, hostile := t.hostileTarget(self, target)
		if !hostile {
			return Intent{}, false
		}
		skill, held := t.cooldowns.ResolveSlot(mods)
		if !held {
			skill = t.cooldowns.DefaultSkill()
		}
		return Intent{Kind: IntentAttack, X: x, Y: y, TargetID: id, Skill: skill}, true
	}

	if skill, held := t.cooldowns.ResolveSlot(mods); held {
		return Intent{Kind: IntentFireTo, X: x, Y: y, Skill: skill}, true
	}
	return Intent{Kind: IntentMoveTo, X: x, Y: y}, true
}

func (t *TargetResolver) hostileTarget(self, target *donburi.Entry) (uint, bool) {
	if !target.HasComponent(components.Faction) || !target.HasComponent(esync.NetworkIdComponent) {
		return 0, false
	}
	if !components.Faction.Get(self).Side.Hostile(components.Faction.Get(target).Side) {
		return 0, false
	}
	id := esync.GetNetworkId(target)
	if id == nil {
		return 0, false
	}
	return uint(*id), true
}

func (t *TargetResolver) controlledEntry() (*donburi.Entry, bool) {
	e, ok := t.session.Controlled()
	if !ok || !t.world.Valid(e) {
		return nil, false
	}
	return t.world.Entry(e), true
}
