package messages

import (
	"errors"
	"fmt"
	"math"
)

// MsgType tags every wire message. The values are part of the protocol and
// must stay stable.
type MsgType int

const (
	MsgUnknown MsgType = iota
	MsgPlayerID
	MsgPlayerClass
	MsgStart
	MsgEntitySpawn
	MsgPing
	MsgPingNotification
	MsgAttack
	MsgFireTo
	MsgAttackOutOfRange
	MsgSkillNotReady
	MsgEntityMovement
	MsgEntityHealth
	MsgEntityDespawn
	MsgMoveTo
	MsgPlayerReady
	MsgChangeFakeDelay
)

var msgTypeNames = map[MsgType]string{
	MsgPlayerID:         "player-id",
	MsgPlayerClass:      "player-class",
	MsgStart:            "start",
	MsgEntitySpawn:      "entity-spawn",
	MsgPing:             "ping",
	MsgPingNotification: "ping-notification",
	MsgAttack:           "attack",
	MsgFireTo:           "fire-to",
	MsgAttackOutOfRange: "attack-out-of-range",
	MsgSkillNotReady:    "skill-not-ready",
	MsgEntityMovement:   "entity-movement",
	MsgEntityHealth:     "entity-health",
	MsgEntityDespawn:    "entity-despawn",
	MsgMoveTo:           "move-to",
	MsgPlayerReady:      "player-ready",
	MsgChangeFakeDelay:  "change-fake-delay",
}

func (t MsgType) String() string {
	if name, ok := msgTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("msgtype(%d)", int(t))
}

// Message is implemented by every struct that travels over the wire.
type Message interface {
	Type() MsgType
}

// Inbound is a message the server may send. Payload fields are untrusted and
// must pass Validate before the client acts on them.
type Inbound interface {
	Message
	Validate() error
}

// Payload validation errors. Anything returned by Validate wraps one of these.
var (
	ErrInvalidID         = errors.New("invalid entity id")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidDirection  = errors.New("invalid direction")
	ErrInvalidSkill      = errors.New("invalid skill index")
	ErrInvalidHealth     = errors.New("invalid health")
	ErrInvalidPing       = errors.New("invalid ping")
	ErrMissingClass      = errors.New("missing class name")
	ErrUnknownClass      = errors.New("unknown class")
)

// MaxSkillIndex bounds skill indices accepted from the wire.
const MaxSkillIndex = 15

// MaxPingMs bounds round-trip values accepted from the wire.
const MaxPingMs = 60_000

// maxDirectionLength tolerates rounding in normalized directions.
const maxDirectionLength = 1.0001

func validateID(id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	return nil
}

func validatePoint(x, y float64) error {
	if !finite(x) || !finite(y) {
		return fmt.Errorf("%w: (%v, %v)", ErrInvalidCoordinate, x, y)
	}
	return nil
}

func validateDirection(dx, dy float64) error {
	if !finite(dx) || !finite(dy) || math.Hypot(dx, dy) > maxDirectionLength {
		return fmt.Errorf("%w: (%v, %v)", ErrInvalidDirection, dx, dy)
	}
	return nil
}

func validateSkill(idx int) error {
	if idx < 0 || idx > MaxSkillIndex {
		return fmt.Errorf("%w: %d", ErrInvalidSkill, idx)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
