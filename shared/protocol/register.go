package protocol

import (
	"github.com/automoto/nanowar-mp/shared/messages"
	"github.com/leap-fish/necs/router"
)

// RegisterInbound installs a necs router handler for every message the server
// may send. Each decoded message is passed to deliver on the transport's
// goroutine, so deliver must only queue it.
func RegisterInbound(deliver func(messages.Inbound)) {
	on[messages.PlayerID](deliver)
	on[messages.PlayerClass](deliver)
	on[messages.Start](deliver)
	on[messages.EntitySpawn](deliver)
	on[messages.Ping](deliver)
	on[messages.PingNotification](deliver)
	on[messages.Attack](deliver)
	on[messages.FireTo](deliver)
	on[messages.AttackOutOfRange](deliver)
	on[messages.SkillNotReady](deliver)
	on[messages.EntityMovement](deliver)
	on[messages.EntityHealth](deliver)
	on[messages.EntityDespawn](deliver)
}

func on[T messages.Inbound](deliver func(messages.Inbound)) {
	router.On(func(_ *router.NetworkClient, msg T) {
		deliver(msg)
	})
}

// Encode serializes an outbound message into a necs binary frame.
func Encode(msg messages.Message) ([]byte, error) {
	return router.Serialize(msg)
}
