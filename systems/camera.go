package systems

import (
	"math"

	"github.com/automoto/nanowar-mp/components"
	"github.com/automoto/nanowar-mp/config"
	"github.com/automoto/nanowar-mp/network"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera adds the camera singleton centered on (x, y).
func CreateCamera(w donburi.World, x, y float64) *donburi.Entry {
	entry := w.Entry(w.Create(components.Camera))
	components.Camera.SetValue(entry, components.CameraData{X: x, Y: y})
	return entry
}

// NewCameraSystem returns an update system that follows the controlled
// entity, keeping the view inside the world bounds.
func NewCameraSystem(session *network.Session, bounds func() (w, h float64)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return
		}
		camera := components.Camera.Get(cameraEntry)

		entity, ok := session.Controlled()
		if !ok || !e.World.Valid(entity) {
			return
		}
		k := components.Kinematics.Get(e.World.Entry(entity))

		worldW, worldH := bounds()
		targetX := clampView(k.X, float64(config.C.Width), worldW)
		targetY := clampView(k.Y, float64(config.C.Height), worldH)

		// Smooth follow
		camera.X += (targetX - camera.X) * config.Camera.FollowSmoothing
		camera.Y += (targetY - camera.Y) * config.Camera.FollowSmoothing
	}
}

// clampView keeps a view of size visible centered at v inside [0, size].
// A world smaller than the view is centered.
func clampView(v, visible, size float64) float64 {
	lo := visible / 2
	hi := size - visible/2
	if lo > hi {
		return size / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
