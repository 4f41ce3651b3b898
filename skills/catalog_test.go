package skills

import (
	"testing"
	"time"

	"github.com/automoto/nanowar-mp/components"
	"github.com/automoto/nanowar-mp/shared/netconfig"
	"github.com/yohamta/donburi"
)

func TestNewState(t *testing.T) {
	s, ok := NewState(netconfig.SkillAcidWeapon)
	if !ok {
		t.Fatal("acid weapon missing from catalog")
	}
	if s.MaxCooldown != 700*time.Millisecond || s.Remaining != 0 || s.Range != RangeLong {
		t.Fatalf("acid weapon state = %+v", s)
	}
	if _, ok := NewState(netconfig.SkillNone); ok {
		t.Fatal("SkillNone should not have a template")
	}
}

func TestAcidEffectFliesToTarget(t *testing.T) {
	w := donburi.NewWorld()
	tmpl, _ := Lookup(netconfig.SkillAcidWeapon)
	tmpl.Effect(EffectContext{
		World:    w,
		OwnerID:  1,
		TargetID: 2,
		TargetX:  400,
		Template: tmpl,
	})

	entry, ok := components.Effect.First(w)
	if !ok {
		t.Fatal("no effect entity spawned")
	}
	k := components.Kinematics.Get(entry)
	if k.DirX != 1 || k.DirY != 0 || k.Speed != ProjectileSpeed {
		t.Fatalf("projectile kinematics = %+v", *k)
	}
	if ttl := components.AutoDestroy.Get(entry).Remaining; ttl != time.Second {
		t.Fatalf("projectile lifetime = %v, want 1s", ttl)
	}
	if e := components.Effect.Get(entry); e.Damage != 30 || e.TargetID != 2 {
		t.Fatalf("effect = %+v", *e)
	}
}

func TestLeechEffectSitsOnTarget(t *testing.T) {
	w := donburi.NewWorld()
	tmpl, _ := Lookup(netconfig.SkillLifeLeech)
	tmpl.Effect(EffectContext{World: w, OwnerID: 1, TargetID: 2, TargetX: 5, TargetY: 6, Template: tmpl})

	entry, ok := components.Effect.First(w)
	if !ok {
		t.Fatal("no effect entity spawned")
	}
	if k := components.Kinematics.Get(entry); k.X != 5 || k.Y != 6 || k.Moving() {
		t.Fatalf("leech kinematics = %+v", *k)
	}
}
