package tags

import "github.com/yohamta/donburi"

var (
	Entity     = donburi.NewTag().SetName("Entity")
	Controlled = donburi.NewTag().SetName("Controlled")
	Effect     = donburi.NewTag().SetName("Effect")
)

// Resolv tags for pointer picking
const (
	ResolvEntity = "entity"
	ResolvCursor = "cursor"
)
