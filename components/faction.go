package components

import (
	"github.com/automoto/nanowar-mp/shared/netconfig"
	"github.com/yohamta/donburi"
)

type FactionData struct {
	Side netconfig.Side
}

var Faction = donburi.NewComponentType[FactionData]()

type ClassData struct {
	Name   string
	Radius float64
}

var Class = donburi.NewComponentType[ClassData]()
