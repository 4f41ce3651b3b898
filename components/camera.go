package components

import "github.com/yohamta/donburi"

// CameraData is the world-space point at the center of the screen.
type CameraData struct {
	X, Y float64
}

// ScreenToWorld converts a screen position to world coordinates for a screen
// of size w by h.
func (c CameraData) ScreenToWorld(sx, sy, w, h float64) (float64, float64) {
	return sx + c.X - w/2, sy + c.Y - h/2
}

// WorldToScreen is the inverse of ScreenToWorld.
func (c CameraData) WorldToScreen(x, y, w, h float64) (float64, float64) {
	return x - c.X + w/2, y - c.Y + h/2
}

var Camera = donburi.NewComponentType[CameraData]()
