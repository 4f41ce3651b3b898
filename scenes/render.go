package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/nanowar-mp/components"
	cfg "github.com/automoto/nanowar-mp/config"
	"github.com/automoto/nanowar-mp/fonts"
	"github.com/automoto/nanowar-mp/shared/netconfig"
	"github.com/automoto/nanowar-mp/tags"
	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerWorld ecs.LayerID = iota
	layerHUD
)

var (
	white       = color.RGBA{255, 255, 255, 255}
	grey        = color.RGBA{90, 100, 110, 255}
	cellColor   = color.RGBA{80, 200, 120, 255}
	virusColor  = color.RGBA{200, 70, 160, 255}
	otherColor  = color.RGBA{160, 160, 160, 255}
	ghostColor  = color.RGBA{255, 255, 120, 160}
	effectColor = color.RGBA{180, 255, 60, 255}
	failColor   = color.RGBA{255, 90, 70, 255}
)

func sideColor(s netconfig.Side) color.RGBA {
	switch s {
	case netconfig.SideCell:
		return cellColor
	case netconfig.SideVirus:
		return virusColor
	default:
		return otherColor
	}
}

func withAlpha(c color.RGBA, a float32) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}

// drawWorld renders the world, entities, effects and markers relative to the
// camera.
func (ns *NetworkedScene) drawWorld(e *ecs.ECS, screen *ebiten.Image) {
	cam := ns.camera(e)
	sw, sh := float64(cfg.C.Width), float64(cfg.C.Height)
	toScreen := func(x, y float64) (float32, float32) {
		sx, sy := cam.WorldToScreen(x, y, sw, sh)
		return float32(sx), float32(sy)
	}

	bounds := ns.sim.Bounds()
	ox, oy := toScreen(0, 0)
	vector.StrokeRect(screen, ox, oy, float32(bounds.Width), float32(bounds.Height), 2, grey, false)
	for _, r := range bounds.Regions {
		rx, ry := toScreen(r.X, r.Y)
		vector.StrokeRect(screen, rx, ry, float32(r.W), float32(r.H), 1, grey, false)
	}

	hud := ns.hud(e)

	tags.Entity.Each(e.World, func(entry *donburi.Entry) {
		k := components.Kinematics.Get(entry)
		hp := components.Health.Get(entry)
		r := float32(components.Class.Get(entry).Radius)
		x, y := toScreen(k.X, k.Y)

		c := sideColor(components.Faction.Get(entry).Side)
		if !hp.Alive() {
			c = withAlpha(c, 0.3)
		}
		vector.DrawFilledCircle(screen, x, y, r, c, true)
		if entry.HasComponent(tags.Controlled) {
			vector.StrokeCircle(screen, x, y, r+3, 2, white, true)
		}
		if id := esync.GetNetworkId(entry); id != nil && hud != nil && uint(*id) == hud.TargetID && hud.TargetID != 0 {
			vector.StrokeCircle(screen, x, y, r+7, 2, failColor, true)
		}

		if hp.Max > 0 {
			w := 2 * r
			frac := float32(hp.Current) / float32(hp.Max)
			vector.DrawFilledRect(screen, x-r, y-r-8, w, 4, grey, false)
			vector.DrawFilledRect(screen, x-r, y-r-8, w*frac, 4, c, false)
		}
	})

	if pred, ok := ns.reconciler.Predicted(); ok {
		x, y := toScreen(pred.X, pred.Y)
		vector.StrokeCircle(screen, x, y, 6, 1, ghostColor, true)
	}

	tags.Effect.Each(e.World, func(entry *donburi.Entry) {
		k := components.Kinematics.Get(entry)
		x, y := toScreen(k.X, k.Y)
		vector.DrawFilledCircle(screen, x, y, 4, effectColor, true)
	})

	if hud == nil {
		return
	}
	drawMarker(screen, hud.Destination, toScreen, white)
	drawMarker(screen, hud.FireDest, toScreen, effectColor)
}

func drawMarker(screen *ebiten.Image, m components.MarkerData, toScreen func(x, y float64) (float32, float32), c color.RGBA) {
	if !m.Visible {
		return
	}
	x, y := toScreen(m.X, m.Y)
	mc := withAlpha(c, m.Alpha)
	vector.StrokeLine(screen, x-6, y-6, x+6, y+6, 2, mc, true)
	vector.StrokeLine(screen, x-6, y+6, x+6, y-6, 2, mc, true)
}

// drawHUD renders ping, skills and refusal text in screen space.
func (ns *NetworkedScene) drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()
	small := fonts.HUDSmall.Get()

	hud := ns.hud(e)
	if hud != nil {
		text.Draw(screen, fmt.Sprintf("Ping: %d ms", hud.PingMs), face, 8, 20, white)
		if hud.FailText != "" {
			w := float64(cfg.C.Width)
			text.Draw(screen, hud.FailText, fonts.HUDLarge.Get(), int(w/2)-60, 60, withAlpha(failColor, hud.FailAlpha))
		}
	}

	for i, line := range ns.cooldowns.SkillInfo() {
		text.Draw(screen, line, small, 8, cfg.C.Height-40+i*14, white)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("prediction: %s  dropped: %s  TPS: %0.0f",
		ns.reconciler.State(), humanize.Comma(int64(ns.router.Dropped())), ebiten.ActualTPS()), 8, 28)
}

func (ns *NetworkedScene) hud(e *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		return nil
	}
	return components.HUD.Get(entry)
}
