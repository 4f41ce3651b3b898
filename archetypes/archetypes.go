package archetypes

import (
	"github.com/automoto/nanowar-mp/components"
	"github.com/automoto/nanowar-mp/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

var (
	// Entity is anything the server spawns: player characters and NPCs.
	Entity = newArchetype(
		tags.Entity,
		esync.NetworkIdComponent,
		components.Kinematics,
		components.Destination,
		components.Health,
		components.Faction,
		components.Class,
		components.SkillSet,
	)
	// Effect is a client-only visual produced by a fired skill.
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
		components.Kinematics,
		components.Destination,
		components.AutoDestroy,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
