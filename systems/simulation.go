package systems

import (
	"fmt"

	"github.com/automoto/nanowar-mp/archetypes"
	"github.com/automoto/nanowar-mp/components"
	cfg "github.com/automoto/nanowar-mp/config"
	"github.com/automoto/nanowar-mp/logger"
	"github.com/automoto/nanowar-mp/shared/gamemath"
	"github.com/automoto/nanowar-mp/shared/leveldata"
	"github.com/automoto/nanowar-mp/shared/messages"
	"github.com/automoto/nanowar-mp/skills"
	"github.com/automoto/nanowar-mp/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

var simLog = logger.For("simulation")

// WorldSimulation is the client's local game world. Remote entities follow
// server updates; the controlled entity's authoritative fields are left to
// the router.
type WorldSimulation struct {
	world  donburi.World
	bounds leveldata.WorldData
}

func NewWorldSimulation(world donburi.World) *WorldSimulation {
	return &WorldSimulation{
		world: world,
		bounds: leveldata.WorldData{
			Width:  cfg.World.DefaultWidth,
			Height: cfg.World.DefaultHeight,
		},
	}
}

// Bounds returns the world description from the last Init.
func (s *WorldSimulation) Bounds() leveldata.WorldData {
	return s.bounds
}

// Init loads the world description carried by the start message.
func (s *WorldSimulation) Init(payload string) error {
	wd, err := leveldata.ParseInitPayload(payload, cfg.World.DefaultWidth, cfg.World.DefaultHeight)
	if err != nil {
		return err
	}
	s.bounds = *wd
	simLog.WithField("width", wd.Width).WithField("height", wd.Height).
		WithField("regions", len(wd.Regions)).Info("world loaded")
	return nil
}

// Spawn creates the entity described by msg. A spawn for an id that already
// exists replaces the old entity.
func (s *WorldSimulation) Spawn(msg messages.EntitySpawn) (*donburi.Entry, error) {
	class, ok := cfg.Classes[msg.ClassName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", messages.ErrUnknownClass, msg.ClassName)
	}
	if old, ok := s.find(msg.EntityID); ok {
		old.Remove()
	}

	entry := archetypes.Entity.Spawn(s.world)
	esync.NetworkIdComponent.SetValue(entry, esync.NetworkId(msg.EntityID))

	components.Kinematics.SetValue(entry, components.KinematicsData{
		X:     msg.X,
		Y:     msg.Y,
		Speed: class.Speed,
	})
	components.Health.SetValue(entry, components.HealthData{
		Current: msg.HP,
		Max:     max(class.MaxHP, msg.HP),
	})
	components.Faction.SetValue(entry, components.FactionData{Side: class.Side})
	components.Class.SetValue(entry, components.ClassData{Name: class.Name, Radius: class.Radius})

	set := components.SkillSetData{Slots: cfg.Skills.DefaultSlots}
	for _, kind := range class.Skills {
		if st, ok := skills.NewState(kind); ok {
			set.Skills = append(set.Skills, st)
		}
	}
	components.SkillSet.SetValue(entry, set)

	simLog.WithField("entity", msg.EntityID).WithField("class", msg.ClassName).Debug("spawned")
	return entry, nil
}

// Apply runs a forwarded server message or a local intent against the world.
func (s *WorldSimulation) Apply(msg messages.Message) {
	switch m := msg.(type) {
	case messages.MoveTo:
		s.moveTo(m)
	case messages.EntityMovement:
		entry, ok := s.findRemote(m.EntityID)
		if !ok {
			return
		}
		k := components.Kinematics.Get(entry)
		k.X, k.Y = m.X, m.Y
		k.DirX, k.DirY = m.DirX, m.DirY
		components.Destination.Get(entry).Active = false
	case messages.EntityHealth:
		if entry, ok := s.findRemote(m.EntityID); ok {
			components.Health.Get(entry).Current = m.HP
		}
	case messages.EntityDespawn:
		if entry, ok := s.find(m.EntityID); ok {
			entry.Remove()
		}
	case messages.Attack:
		target, ok := s.find(m.TargetID)
		if !ok {
			return
		}
		tk := components.Kinematics.Get(target)
		s.cast(m.AttackerID, m.SkillIndex, m.TargetID, tk.X, tk.Y)
	case messages.FireTo:
		s.cast(m.EntityID, m.SkillIndex, 0, m.X, m.Y)
	}
}

func (s *WorldSimulation) moveTo(m messages.MoveTo) {
	entry, ok := s.find(m.EntityID)
	if !ok {
		return
	}
	k := components.Kinematics.Get(entry)
	dirX, dirY, dist := gamemath.Heading(k.X, k.Y, m.X, m.Y)
	if dist == 0 {
		k.Stop()
		components.Destination.Get(entry).Active = false
		return
	}
	k.DirX, k.DirY = dirX, dirY
	components.Destination.SetValue(entry, components.DestinationData{X: m.X, Y: m.Y, Active: true})
}

// cast runs the visual effect of skill for its owner.
func (s *WorldSimulation) cast(ownerID uint, skill int, targetID uint, x, y float64) {
	owner, ok := s.find(ownerID)
	if !ok {
		return
	}
	st := components.SkillSet.Get(owner).Skill(skill)
	if st == nil {
		return
	}
	tmpl, ok := skills.Lookup(st.Kind)
	if !ok || tmpl.Effect == nil {
		return
	}
	pos := components.Kinematics.Get(owner)
	tmpl.Effect(skills.EffectContext{
		World:    s.world,
		OwnerID:  ownerID,
		OwnerX:   pos.X,
		OwnerY:   pos.Y,
		TargetID: targetID,
		TargetX:  x,
		TargetY:  y,
		Template: tmpl,
	})
}

func (s *WorldSimulation) find(id uint) (*donburi.Entry, bool) {
	e := esync.FindByNetworkId(s.world, esync.NetworkId(id))
	if !s.world.Valid(e) {
		return nil, false
	}
	entry := s.world.Entry(e)
	if !entry.HasComponent(tags.Entity) {
		return nil, false
	}
	return entry, true
}

// findRemote finds id unless it is the controlled entity.
func (s *WorldSimulation) findRemote(id uint) (*donburi.Entry, bool) {
	entry, ok := s.find(id)
	if !ok || entry.HasComponent(tags.Controlled) {
		return nil, false
	}
	return entry, true
}
