package systems

import (
	"github.com/automoto/nanowar-mp/shared/messages"
	"github.com/yohamta/donburi"
)

// Sender is the outbound half of the transport.
type Sender interface {
	Send(msg messages.Message) error
}

// Inbox is the inbound half of the transport.
type Inbox interface {
	Drain() []messages.Inbound
}

// Simulation is the game world the router feeds. Init and Spawn are driven by
// bootstrap messages; Apply receives every forwarded in-game message and every
// locally simulated intent.
type Simulation interface {
	Init(payload string) error
	Spawn(msg messages.EntitySpawn) (*donburi.Entry, error)
	Apply(msg messages.Message)
}

// Feedback is the UI surface the core reports to. None of these calls may
// change game state.
type Feedback interface {
	UpdatePing(ms int)
	ShowAttackFailed(reason string)
	HideAttackFailed()
	MarkTarget(id uint)
	HideTargetMark()
	MarkDestination(x, y float64)
	MarkFireDest(x, y float64)
}
