package components

import (
	"time"

	"github.com/automoto/nanowar-mp/shared/netconfig"
	"github.com/yohamta/donburi"
)

// SkillState is the cooldown record of one equipped skill. Remaining stays
// within [0, MaxCooldown].
type SkillState struct {
	Kind        netconfig.SkillKind
	Range       float64
	MaxCooldown time.Duration
	Remaining   time.Duration
}

// Ready reports whether the skill can fire.
func (s SkillState) Ready() bool {
	return s.Remaining == 0
}

// Tick lowers the remaining cooldown by elapsed, flooring at exactly zero.
func (s *SkillState) Tick(elapsed time.Duration) {
	if s.Remaining <= 0 {
		s.Remaining = 0
		return
	}
	if elapsed <= 0 {
		return
	}
	s.Remaining -= elapsed
	if s.Remaining <= 0 {
		s.Remaining = 0
	}
}

// Fire starts the full cooldown. It is a no-op while the skill is still
// cooling down and reports whether the skill fired.
func (s *SkillState) Fire() bool {
	if s.Remaining > 0 {
		return false
	}
	s.Remaining = s.MaxCooldown
	return true
}

// Reduce shortens the remaining cooldown by d without going below zero.
func (s *SkillState) Reduce(d time.Duration) {
	if d <= 0 {
		return
	}
	s.Remaining -= d
	if s.Remaining < 0 {
		s.Remaining = 0
	}
}

// SkillSetData holds an entity's equipped skills in slot order. Slots maps
// each modifier key to an index of Skills.
type SkillSetData struct {
	Skills []SkillState
	Slots  [netconfig.ModifierSlots]int
}

// Skill returns the state at idx, or nil when idx is out of range.
func (s *SkillSetData) Skill(idx int) *SkillState {
	if idx < 0 || idx >= len(s.Skills) {
		return nil
	}
	return &s.Skills[idx]
}

var SkillSet = donburi.NewComponentType[SkillSetData]()
