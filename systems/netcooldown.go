package systems

import (
	"fmt"
	"time"

	"github.com/automoto/nanowar-mp/components"
	cfg "github.com/automoto/nanowar-mp/config"
	"github.com/automoto/nanowar-mp/network"
	"github.com/automoto/nanowar-mp/shared/netconfig"
	"github.com/hako/durafmt"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Modifiers are the held skill modifier keys, in slot order.
type Modifiers [netconfig.ModifierSlots]bool

// Any reports whether at least one modifier is held.
func (m Modifiers) Any() bool {
	for _, held := range m {
		if held {
			return true
		}
	}
	return false
}

// SkillCooldownResolver keeps the controlled entity's skill cooldowns in
// step with the server and maps modifier keys to skills.
type SkillCooldownResolver struct {
	session *network.Session
	world   donburi.World
}

func NewSkillCooldownResolver(session *network.Session, world donburi.World) *SkillCooldownResolver {
	return &SkillCooldownResolver{session: session, world: world}
}

func (c *SkillCooldownResolver) skillSet() *components.SkillSetData {
	e, ok := c.session.Controlled()
	if !ok || !c.world.Valid(e) {
		return nil
	}
	entry := c.world.Entry(e)
	if !entry.HasComponent(components.SkillSet) {
		return nil
	}
	return components.SkillSet.Get(entry)
}

func (c *SkillCooldownResolver) slots() [netconfig.ModifierSlots]int {
	if set := c.skillSet(); set != nil {
		return set.Slots
	}
	return cfg.Skills.DefaultSlots
}

// Update ticks every cooldown of the controlled entity.
func (c *SkillCooldownResolver) Update(elapsed time.Duration) {
	set := c.skillSet()
	if set == nil {
		return
	}
	for i := range set.Skills {
		set.Skills[i].Tick(elapsed)
	}
}

// ResolveSlot returns the skill bound to the first held modifier. ok is
// false when no modifier is held and the caller should use its default.
func (c *SkillCooldownResolver) ResolveSlot(mods Modifiers) (int, bool) {
	slots := c.slots()
	for i, held := range mods {
		if held {
			return slots[i], true
		}
	}
	return 0, false
}

// DefaultSkill is the skill used for plain attacks.
func (c *SkillCooldownResolver) DefaultSkill() int {
	return c.slots()[0]
}

// OnFire starts the skill's cooldown unless it is already cooling down.
func (c *SkillCooldownResolver) OnFire(skill int) bool {
	s := c.skill(skill)
	if s == nil {
		return false
	}
	return s.Fire()
}

// OnServerRejection shortens the skill's cooldown by the one-way latency the
// server's cooldown started ahead of ours.
func (c *SkillCooldownResolver) OnServerRejection(skill int, ping time.Duration) {
	s := c.skill(skill)
	if s == nil {
		return
	}
	s.Reduce(ping / 2)
}

// Remaining returns the cooldown left on skill.
func (c *SkillCooldownResolver) Remaining(skill int) (time.Duration, bool) {
	s := c.skill(skill)
	if s == nil {
		return 0, false
	}
	return s.Remaining, true
}

// SkillInfo describes each skill of the controlled entity for the HUD.
func (c *SkillCooldownResolver) SkillInfo() []string {
	set := c.skillSet()
	if set == nil {
		return nil
	}
	info := make([]string, 0, len(set.Skills))
	for i, s := range set.Skills {
		status := "ready"
		if !s.Ready() {
			status = durafmt.Parse(s.Remaining).LimitFirstN(1).String()
		}
		info = append(info, fmt.Sprintf("[%d] %s: %s", i+1, s.Kind, status))
	}
	return info
}

func (c *SkillCooldownResolver) skill(idx int) *components.SkillState {
	set := c.skillSet()
	if set == nil {
		return nil
	}
	return set.Skill(idx)
}

// NewCooldownSystem ticks cooldowns once per frame.
func NewCooldownSystem(c *SkillCooldownResolver) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		c.Update(frameTime(e.World))
	}
}
