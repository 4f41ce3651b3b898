package systems

import (
	"time"

	"github.com/automoto/nanowar-mp/components"
	"github.com/yohamta/donburi"
)

// SetFrameTime stores the time elapsed since the previous frame in the
// world's clock singleton, creating it on first use.
func SetFrameTime(w donburi.World, elapsed time.Duration) {
	entry, ok := components.Clock.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Clock))
	}
	components.Clock.Get(entry).Elapsed = elapsed
}

func frameTime(w donburi.World) time.Duration {
	entry, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Elapsed
}
