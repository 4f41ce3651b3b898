package systems

import (
	"strings"
	"testing"
	"time"

	"github.com/automoto/nanowar-mp/components"
	"github.com/automoto/nanowar-mp/shared/netconfig"
)

func TestCooldownCompensationScenario(t *testing.T) {
	h := newHarness(t, false)
	h.bootstrap(t, 7)
	entry := h.spawn(t, 7, netconfig.ClassLeechVirus, 0, 0, 80)

	skill := &components.SkillSet.Get(entry).Skills[0]
	if skill.MaxCooldown != time.Second {
		t.Fatalf("max cooldown = %v, want 1s", skill.MaxCooldown)
	}

	if !h.cooldowns.OnFire(0) {
		t.Fatal("OnFire on a ready skill returned false")
	}
	h.cooldowns.Update(600 * time.Millisecond)
	h.cooldowns.OnServerRejection(0, 200*time.Millisecond)

	if got, _ := h.cooldowns.Remaining(0); got != 300*time.Millisecond {
		t.Fatalf("remaining = %v, want 300ms", got)
	}
}

func TestCooldownNeverNegative(t *testing.T) {
	h := newHarness(t, false)
	h.bootstrap(t, 7)
	h.spawn(t, 7, netconfig.ClassWarriorCell, 0, 0, 100)

	h.cooldowns.OnFire(0)
	for _, step := range []time.Duration{frame, 500 * time.Millisecond, time.Second, frame} {
		h.cooldowns.Update(step)
		if got, _ := h.cooldowns.Remaining(0); got < 0 {
			t.Fatalf("remaining = %v", got)
		}
	}
	if got, _ := h.cooldowns.Remaining(0); got != 0 {
		t.Fatalf("remaining = %v, want 0", got)
	}

	h.cooldowns.OnFire(0)
	h.cooldowns.OnServerRejection(0, 10*time.Second)
	if got, _ := h.cooldowns.Remaining(0); got != 0 {
		t.Fatalf("remaining after huge ping = %v, want 0", got)
	}
}

func TestCooldownFireGating(t *testing.T) {
	h := newHarness(t, false)
	h.bootstrap(t, 7)
	h.spawn(t, 7, netconfig.ClassWarriorCell, 0, 0, 100)

	h.cooldowns.OnFire(0)
	h.cooldowns.Update(200 * time.Millisecond)
	if h.cooldowns.OnFire(0) {
		t.Fatal("OnFire while cooling down returned true")
	}
	if got, _ := h.cooldowns.Remaining(0); got != 500*time.Millisecond {
		t.Fatalf("remaining = %v, want 500ms", got)
	}
}

func TestCooldownResolveSlot(t *testing.T) {
	h := newHarness(t, false)
	h.bootstrap(t, 7)
	entry := h.spawn(t, 7, netconfig.ClassWarriorCell, 0, 0, 100)
	components.SkillSet.Get(entry).Slots = [netconfig.ModifierSlots]int{3, 5}

	tests := []struct {
		name   string
		mods   Modifiers
		want   int
		wantOK bool
	}{
		{"none", Modifiers{}, 0, false},
		{"first", Modifiers{true, false}, 3, true},
		{"second", Modifiers{false, true}, 5, true},
		{"both prefers first", Modifiers{true, true}, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := h.cooldowns.ResolveSlot(tt.mods)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Fatalf("ResolveSlot(%v) = %d, %v; want %d, %v", tt.mods, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCooldownWithoutControlledEntity(t *testing.T) {
	h := newHarness(t, false)

	h.cooldowns.Update(time.Second)
	h.cooldowns.OnServerRejection(0, time.Second)
	if h.cooldowns.OnFire(0) {
		t.Fatal("OnFire without an entity returned true")
	}
	if _, ok := h.cooldowns.Remaining(0); ok {
		t.Fatal("Remaining without an entity reported a skill")
	}
	if info := h.cooldowns.SkillInfo(); info != nil {
		t.Fatalf("SkillInfo = %v", info)
	}
}

func TestCooldownSkillInfo(t *testing.T) {
	h := newHarness(t, false)
	h.bootstrap(t, 7)
	h.spawn(t, 7, netconfig.ClassWarriorCell, 0, 0, 100)

	info := h.cooldowns.SkillInfo()
	if len(info) != 1 || !strings.HasSuffix(info[0], "ready") {
		t.Fatalf("SkillInfo = %v", info)
	}

	h.cooldowns.OnFire(0)
	info = h.cooldowns.SkillInfo()
	if !strings.Contains(info[0], "Acid Weapon") || strings.HasSuffix(info[0], "ready") {
		t.Fatalf("SkillInfo while cooling down = %v", info)
	}
}
