package config

import (
	"time"

	"github.com/automoto/nanowar-mp/shared/netconfig"
)

// Config contains window configuration for the host application
type Config struct {
	Width  int
	Height int
	Title  string
}

// NetworkConfig contains connection settings
type NetworkConfig struct {
	ServerAddress string // host:port of the game server websocket
	Path          string // websocket path on the server
	FakeDelayStep int    // ms added or removed per debug key press
}

// PredictionConfig controls client-side dead reckoning
type PredictionConfig struct {
	Enabled   bool    // Predict locally and send corrections instead of every move
	Threshold float64 // Divergence in distance units before a correction is sent
}

// SkillsConfig contains skill slot bindings
type SkillsConfig struct {
	// DefaultSlots maps modifier key i to a skill index of the entity's set
	DefaultSlots [netconfig.ModifierSlots]int
}

// ClassConfig describes how a spawned class is built locally
type ClassConfig struct {
	Name   string
	Side   netconfig.Side
	Speed  float64 // distance units per second
	MaxHP  int
	Radius float64 // picking and drawing radius
	Skills []netconfig.SkillKind
}

// WorldConfig contains simulation defaults used until the server's world
// description is known
type WorldConfig struct {
	DefaultWidth  float64
	DefaultHeight float64
	PickCellSize  int // resolv cell size for pointer picking
}

// CameraConfig contains camera follow settings
type CameraConfig struct {
	FollowSmoothing float64 // fraction of the remaining distance closed per frame
}

// HUDConfig contains feedback timings
type HUDConfig struct {
	FailTextDuration time.Duration // how long out-of-range/not-ready text stays up
	FailTextInterval time.Duration // repeated failures within this window are shown once
	MarkerDuration   time.Duration // destination and fire markers fade over this time
}

var C *Config
var Network NetworkConfig
var Prediction PredictionConfig
var Skills SkillsConfig
var Classes map[string]ClassConfig
var World WorldConfig
var HUD HUDConfig
var Camera CameraConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 640,
		Title:  "Nanowar",
	}

	Network = NetworkConfig{
		ServerAddress: "localhost:1337",
		Path:          "/nanowar",
		FakeDelayStep: 50,
	}

	// Dead reckoning is off by default; every move goes to the server.
	Prediction = PredictionConfig{
		Enabled:   false,
		Threshold: netconfig.DefaultDeadReckoningThreshold,
	}

	Skills = SkillsConfig{
		DefaultSlots: [netconfig.ModifierSlots]int{0, 1},
	}

	Classes = map[string]ClassConfig{
		netconfig.ClassWarriorCell: {
			Name:   netconfig.ClassWarriorCell,
			Side:   netconfig.SideCell,
			Speed:  120,
			MaxHP:  100,
			Radius: 20,
			Skills: []netconfig.SkillKind{netconfig.SkillAcidWeapon},
		},
		netconfig.ClassLeechVirus: {
			Name:   netconfig.ClassLeechVirus,
			Side:   netconfig.SideVirus,
			Speed:  150,
			MaxHP:  80,
			Radius: 16,
			Skills: []netconfig.SkillKind{netconfig.SkillLifeLeech},
		},
	}

	World = WorldConfig{
		DefaultWidth:  2048,
		DefaultHeight: 2048,
		PickCellSize:  32,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	HUD = HUDConfig{
		FailTextDuration: 1500 * time.Millisecond,
		FailTextInterval: 250 * time.Millisecond,
		MarkerDuration:   600 * time.Millisecond,
	}
}
