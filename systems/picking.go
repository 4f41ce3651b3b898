package systems

import (
	"github.com/automoto/nanowar-mp/components"
	cfg "github.com/automoto/nanowar-mp/config"
	"github.com/automoto/nanowar-mp/shared/gamemath"
	"github.com/automoto/nanowar-mp/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// TargetPicker finds the entity under the pointer.
type TargetPicker struct {
	world  donburi.World
	bounds func() (w, h float64)
}

// NewTargetPicker creates a picker over world. bounds reports the current
// world size in distance units.
func NewTargetPicker(world donburi.World, bounds func() (w, h float64)) *TargetPicker {
	return &TargetPicker{world: world, bounds: bounds}
}

// Pick returns the live entity whose circle contains (x, y), preferring the
// one whose center is nearest, or nil.
func (p *TargetPicker) Pick(x, y float64) *donburi.Entry {
	w, h := p.bounds()
	cell := cfg.World.PickCellSize
	space := resolv.NewSpace(int(w), int(h), cell, cell)

	owners := map[*resolv.Object]donburi.Entity{}
	tags.Entity.Each(p.world, func(entry *donburi.Entry) {
		if !components.Health.Get(entry).Alive() {
			return
		}
		k := components.Kinematics.Get(entry)
		r := components.Class.Get(entry).Radius
		obj := resolv.NewObject(k.X-r, k.Y-r, 2*r, 2*r, tags.ResolvEntity)
		owners[obj] = entry.Entity()
		space.Add(obj)
	})

	cursor := resolv.NewObject(x, y, 1, 1, tags.ResolvCursor)
	space.Add(cursor)
	collision := cursor.Check(0, 0, tags.ResolvEntity)
	if collision == nil {
		return nil
	}

	var best *donburi.Entry
	bestDist := 0.0
	for _, obj := range collision.ObjectsByTags(tags.ResolvEntity) {
		e, ok := owners[obj]
		if !ok || !p.world.Valid(e) {
			continue
		}
		entry := p.world.Entry(e)
		k := components.Kinematics.Get(entry)
		d := gamemath.Distance(k.X, k.Y, x, y)
		if d > components.Class.Get(entry).Radius {
			continue
		}
		if best == nil || d < bestDist {
			best, bestDist = entry, d
		}
	}
	return best
}
