package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// NewNetMessageSystem drains the inbox at the start of a tick and routes
// every message, forwarding in-game traffic to the simulation.
func NewNetMessageSystem(inbox Inbox, router *MessageRouter, sim Simulation) func(*ecs.ECS) {
	return func(_ *ecs.ECS) {
		for _, msg := range inbox.Drain() {
			if router.Route(msg) == Forward {
				sim.Apply(msg)
			}
		}
	}
}
