package network

import (
	"time"

	"github.com/yohamta/donburi"
)

// Session is the per-connection client state. It is created at start-up,
// bound by server bootstrap messages and torn down with End.
type Session struct {
	playerID  uint
	hasPlayer bool
	className string
	started   bool
	ping      time.Duration

	controlled    donburi.Entity
	hasControlled bool
}

func NewSession() *Session {
	return &Session{}
}

// BindPlayer records the id the server assigned to this client. A repeated
// bootstrap overwrites the previous value.
func (s *Session) BindPlayer(id uint) {
	s.playerID = id
	s.hasPlayer = true
}

// PlayerID returns the local player's id and whether it has been assigned.
func (s *Session) PlayerID() (uint, bool) {
	return s.playerID, s.hasPlayer
}

// IsPlayer reports whether id is the local player's entity.
func (s *Session) IsPlayer(id uint) bool {
	return s.hasPlayer && s.playerID == id
}

func (s *Session) SetClassName(name string) { s.className = name }
func (s *Session) ClassName() string        { return s.className }

// Start marks the game as running; in-game messages are accepted from now on.
func (s *Session) Start()        { s.started = true }
func (s *Session) Started() bool { return s.started }

// SetPing records the latest round-trip time reported by the server.
func (s *Session) SetPing(d time.Duration) { s.ping = d }
func (s *Session) Ping() time.Duration     { return s.ping }

// BindControlled makes e the entity this client controls.
func (s *Session) BindControlled(e donburi.Entity) {
	s.controlled = e
	s.hasControlled = true
}

// Controlled returns the controlled entity and whether one is bound.
func (s *Session) Controlled() (donburi.Entity, bool) {
	return s.controlled, s.hasControlled
}

func (s *Session) UnbindControlled() {
	var zero donburi.Entity
	s.controlled = zero
	s.hasControlled = false
}

// End tears the session down after a disconnect or game end.
func (s *Session) End() {
	*s = Session{}
}
