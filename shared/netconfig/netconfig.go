// Package netconfig defines lightweight types shared by the wire protocol and
// the client simulation. It must have zero dependencies on ebiten or any
// graphics library so the protocol packages stay headless.
package netconfig

// Side is the faction an entity fights for. Two entities are hostile when
// neither is neutral and their sides differ.
type Side int

const (
	SideNeutral Side = iota
	SideCell
	SideVirus
)

var sideNames = map[Side]string{
	SideNeutral: "neutral",
	SideCell:    "cell",
	SideVirus:   "virus",
}

func (s Side) String() string {
	if name, ok := sideNames[s]; ok {
		return name
	}
	return "unknown"
}

// Hostile reports whether an entity on side s may attack an entity on other.
func (s Side) Hostile(other Side) bool {
	return s != SideNeutral && other != SideNeutral && s != other
}

// Class names understood by the spawn protocol.
const (
	ClassWarriorCell = "WarriorCell"
	ClassLeechVirus  = "LeechVirus"
)

// ModifierSlots is the number of skill slots bound to held modifier keys.
const ModifierSlots = 2

// DefaultDeadReckoningThreshold is the distance at which a predicted position
// is considered diverged from the controlled entity.
const DefaultDeadReckoningThreshold = 2.0

// SkillKind identifies a skill variant.
type SkillKind int

const (
	SkillNone SkillKind = iota
	SkillAcidWeapon
	SkillLifeLeech
)

var skillNames = map[SkillKind]string{
	SkillAcidWeapon: "Acid Weapon",
	SkillLifeLeech:  "Life Leech",
}

func (k SkillKind) String() string {
	if name, ok := skillNames[k]; ok {
		return name
	}
	return "none"
}
