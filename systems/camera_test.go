package systems

import (
	"testing"

	"github.com/automoto/nanowar-mp/components"
	"github.com/automoto/nanowar-mp/config"
	"github.com/automoto/nanowar-mp/shared/netconfig"
)

func TestClampView(t *testing.T) {
	tests := []struct {
		name             string
		v, visible, size float64
		want             float64
	}{
		{"inside", 500, 200, 1000, 500},
		{"near left edge", 20, 200, 1000, 100},
		{"near right edge", 990, 200, 1000, 900},
		{"world smaller than view", 10, 200, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampView(tt.v, tt.visible, tt.size); got != tt.want {
				t.Fatalf("clampView() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCameraFollowsControlled(t *testing.T) {
	h := newHarness(t, false)
	h.bootstrap(t, 7)
	h.spawn(t, 7, netconfig.ClassWarriorCell, 1000, 1000, 100)
	cam := CreateCamera(h.world, 1000, 1000)

	h.spawn(t, 8, netconfig.ClassLeechVirus, 0, 0, 80)
	NewCameraSystem(h.session, func() (float64, float64) { return 2048, 2048 })(h.ecs)

	if c := components.Camera.Get(cam); c.X != 1000 || c.Y != 1000 {
		t.Fatalf("camera moved to (%v, %v) while already on target", c.X, c.Y)
	}

	entry, _ := h.sim.find(7)
	components.Kinematics.Get(entry).X = 1100
	NewCameraSystem(h.session, func() (float64, float64) { return 2048, 2048 })(h.ecs)

	want := 1000 + 100*config.Camera.FollowSmoothing
	if c := components.Camera.Get(cam); c.X != want {
		t.Fatalf("camera x = %v, want %v", c.X, want)
	}
}

func TestCameraScreenToWorldRoundTrip(t *testing.T) {
	c := components.CameraData{X: 300, Y: 200}
	wx, wy := c.ScreenToWorld(10, 20, 960, 640)
	if wx != -170 || wy != -100 {
		t.Fatalf("ScreenToWorld = (%v, %v)", wx, wy)
	}
	sx, sy := c.WorldToScreen(wx, wy, 960, 640)
	if sx != 10 || sy != 20 {
		t.Fatalf("WorldToScreen = (%v, %v)", sx, sy)
	}
}
