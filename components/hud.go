package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MarkerData is a fading world-space marker (move destination or fire point).
type MarkerData struct {
	X, Y    float64
	Visible bool
	Alpha   float32
	Fade    *gween.Tween
}

// HUDData is the singleton holding feedback the core asks the UI to show.
type HUDData struct {
	PingMs int

	FailText  string
	FailAlpha float32
	FailFade  *gween.Tween

	TargetID    uint // marked attack target, 0 when none
	Destination MarkerData
	FireDest    MarkerData
}

var HUD = donburi.NewComponentType[HUDData]()
