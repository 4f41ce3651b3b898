package messages

// PlayerID is sent once per connection to tell the client which entity it
// controls.
type PlayerID struct {
	PlayerID uint
}

func (PlayerID) Type() MsgType { return MsgPlayerID }

func (m PlayerID) Validate() error { return validateID(m.PlayerID) }

// PlayerClass tells the client which class it was assigned.
type PlayerClass struct {
	ClassName string
}

func (PlayerClass) Type() MsgType { return MsgPlayerClass }

func (m PlayerClass) Validate() error {
	if m.ClassName == "" {
		return ErrMissingClass
	}
	return nil
}

// Start carries the world description the simulation is initialized from.
type Start struct {
	InitPayload string // TMX document
}

func (Start) Type() MsgType { return MsgStart }

func (Start) Validate() error { return nil }

// PlayerReady is sent by the client once the simulation is initialized and
// in-game messages may flow.
type PlayerReady struct {
	PlayerID uint
}

func (PlayerReady) Type() MsgType { return MsgPlayerReady }
