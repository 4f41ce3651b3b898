package systems

import (
	"time"

	"github.com/automoto/nanowar-mp/components"
	cfg "github.com/automoto/nanowar-mp/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/time/rate"
)

// HUDFeedback implements Feedback on top of the HUD singleton. It only
// touches HUD state.
type HUDFeedback struct {
	world     donburi.World
	failLimit *rate.Sometimes
}

func NewHUDFeedback(world donburi.World) *HUDFeedback {
	return &HUDFeedback{
		world:     world,
		failLimit: &rate.Sometimes{Interval: cfg.HUD.FailTextInterval},
	}
}

func (f *HUDFeedback) hud() *components.HUDData {
	entry, ok := components.HUD.First(f.world)
	if !ok {
		entry = f.world.Entry(f.world.Create(components.HUD))
	}
	return components.HUD.Get(entry)
}

func (f *HUDFeedback) UpdatePing(ms int) {
	f.hud().PingMs = ms
}

// ShowAttackFailed shows reason and fades it out. Failures arriving in a
// burst only restart the fade once.
func (f *HUDFeedback) ShowAttackFailed(reason string) {
	f.failLimit.Do(func() {
		h := f.hud()
		h.FailText = reason
		h.FailAlpha = 1
		h.FailFade = gween.New(1, 0, seconds(cfg.HUD.FailTextDuration), ease.InQuad)
	})
}

func (f *HUDFeedback) HideAttackFailed() {
	h := f.hud()
	h.FailText = ""
	h.FailAlpha = 0
	h.FailFade = nil
}

func (f *HUDFeedback) MarkTarget(id uint) {
	f.hud().TargetID = id
}

func (f *HUDFeedback) HideTargetMark() {
	f.hud().TargetID = 0
}

func (f *HUDFeedback) MarkDestination(x, y float64) {
	f.hud().Destination = newMarker(x, y)
}

func (f *HUDFeedback) MarkFireDest(x, y float64) {
	f.hud().FireDest = newMarker(x, y)
}

func newMarker(x, y float64) components.MarkerData {
	return components.MarkerData{
		X:       x,
		Y:       y,
		Visible: true,
		Alpha:   1,
		Fade:    gween.New(1, 0, seconds(cfg.HUD.MarkerDuration), ease.Linear),
	}
}

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

// UpdateFeedback advances HUD fades.
func UpdateFeedback(e *ecs.ECS) {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	h := components.HUD.Get(entry)
	dt := seconds(frameTime(e.World))

	if h.FailFade != nil {
		var done bool
		h.FailAlpha, done = h.FailFade.Update(dt)
		if done {
			h.FailText = ""
			h.FailAlpha = 0
			h.FailFade = nil
		}
	}
	fadeMarker(&h.Destination, dt)
	fadeMarker(&h.FireDest, dt)
}

func fadeMarker(m *components.MarkerData, dt float32) {
	if m.Fade == nil {
		return
	}
	var done bool
	m.Alpha, done = m.Fade.Update(dt)
	if done {
		m.Visible = false
		m.Fade = nil
	}
}
