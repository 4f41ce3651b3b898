package systems

import (
	"testing"
	"time"

	"github.com/automoto/nanowar-mp/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func hudOf(t *testing.T, world donburi.World) *components.HUDData {
	t.Helper()
	entry, ok := components.HUD.First(world)
	if !ok {
		t.Fatal("no HUD entity")
	}
	return components.HUD.Get(entry)
}

func TestHUDFeedbackFailTextFades(t *testing.T) {
	world := donburi.NewWorld()
	e := ecs.NewECS(world)
	f := NewHUDFeedback(world)

	f.ShowAttackFailed(ReasonOutOfRange)
	hud := hudOf(t, world)
	if hud.FailText != ReasonOutOfRange || hud.FailAlpha != 1 {
		t.Fatalf("hud = %q alpha %v", hud.FailText, hud.FailAlpha)
	}

	// A burst of refusals does not restart the text.
	f.ShowAttackFailed(ReasonSkillNotReady)
	if hud.FailText != ReasonOutOfRange {
		t.Fatalf("text replaced within the burst window: %q", hud.FailText)
	}

	SetFrameTime(world, 100*time.Millisecond)
	UpdateFeedback(e)
	if hud.FailAlpha <= 0 || hud.FailAlpha >= 1 {
		t.Fatalf("alpha mid fade = %v", hud.FailAlpha)
	}

	SetFrameTime(world, 5*time.Second)
	UpdateFeedback(e)
	if hud.FailText != "" || hud.FailFade != nil {
		t.Fatalf("fail text still shown: %q", hud.FailText)
	}
}

func TestHUDFeedbackHideAttackFailed(t *testing.T) {
	world := donburi.NewWorld()
	f := NewHUDFeedback(world)

	f.ShowAttackFailed(ReasonSkillNotReady)
	f.HideAttackFailed()
	if hud := hudOf(t, world); hud.FailText != "" || hud.FailAlpha != 0 {
		t.Fatalf("hud = %q alpha %v", hud.FailText, hud.FailAlpha)
	}
}

func TestHUDFeedbackMarkers(t *testing.T) {
	world := donburi.NewWorld()
	e := ecs.NewECS(world)
	f := NewHUDFeedback(world)

	f.UpdatePing(85)
	f.MarkTarget(8)
	f.MarkDestination(10, 20)
	f.MarkFireDest(30, 40)

	hud := hudOf(t, world)
	if hud.PingMs != 85 || hud.TargetID != 8 {
		t.Fatalf("hud = %+v", *hud)
	}
	if d := hud.Destination; !d.Visible || d.X != 10 || d.Y != 20 {
		t.Fatalf("destination = %+v", d)
	}
	if d := hud.FireDest; !d.Visible || d.X != 30 || d.Y != 40 {
		t.Fatalf("fire dest = %+v", d)
	}

	f.HideTargetMark()
	if hud.TargetID != 0 {
		t.Fatal("target still marked")
	}

	SetFrameTime(world, 2*time.Second)
	UpdateFeedback(e)
	if hud.Destination.Visible || hud.FireDest.Visible {
		t.Fatal("markers did not fade out")
	}
}
