package messages

import "fmt"

// Ping is a round-trip probe. The client echoes it back unmodified.
type Ping struct {
	Value int64
}

func (Ping) Type() MsgType { return MsgPing }

func (Ping) Validate() error { return nil }

// PingNotification reports the round-trip time the server measured for this
// client.
type PingNotification struct {
	PingMs int
}

func (PingNotification) Type() MsgType { return MsgPingNotification }

func (m PingNotification) Validate() error {
	if m.PingMs < 0 || m.PingMs > MaxPingMs {
		return fmt.Errorf("%w: %d ms", ErrInvalidPing, m.PingMs)
	}
	return nil
}

// ChangeFakeDelay asks the server to add DeltaMs of artificial latency to
// this client's connection. Debug only.
type ChangeFakeDelay struct {
	DeltaMs int
}

func (ChangeFakeDelay) Type() MsgType { return MsgChangeFakeDelay }
