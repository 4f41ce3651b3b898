package components

import "github.com/yohamta/donburi"

// KinematicsData is the motion state shared by the simulation and the
// dead reckoning predictor.
type KinematicsData struct {
	X, Y       float64
	DirX, DirY float64 // Unit heading, zero when standing still
	Speed      float64 // Distance units per second while moving
}

// Moving reports whether the entity has a non-zero heading.
func (k KinematicsData) Moving() bool {
	return k.DirX != 0 || k.DirY != 0
}

// Stop clears the heading and keeps the speed.
func (k *KinematicsData) Stop() {
	k.DirX, k.DirY = 0, 0
}

var Kinematics = donburi.NewComponentType[KinematicsData]()

// DestinationData is where a MoveTo order is taking the entity.
type DestinationData struct {
	X, Y   float64
	Active bool
}

var Destination = donburi.NewComponentType[DestinationData]()
