package messages

import "fmt"

// EntitySpawn is broadcast when an entity enters the world.
type EntitySpawn struct {
	EntityID  uint
	ClassName string
	X, Y      float64
	HP        int
}

func (EntitySpawn) Type() MsgType { return MsgEntitySpawn }

func (m EntitySpawn) Validate() error {
	if err := validateID(m.EntityID); err != nil {
		return err
	}
	if m.ClassName == "" {
		return ErrMissingClass
	}
	if m.HP < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHealth, m.HP)
	}
	return validatePoint(m.X, m.Y)
}

// EntityMovement carries an entity's position and heading. The client sends
// it as a dead reckoning correction; the server broadcasts it as the
// authoritative movement of any entity.
type EntityMovement struct {
	EntityID   uint
	X, Y       float64
	DirX, DirY float64 // Normalized, zero when stopped
}

func (EntityMovement) Type() MsgType { return MsgEntityMovement }

func (m EntityMovement) Validate() error {
	if err := validateID(m.EntityID); err != nil {
		return err
	}
	if err := validatePoint(m.X, m.Y); err != nil {
		return err
	}
	return validateDirection(m.DirX, m.DirY)
}

// EntityHealth is broadcast when an entity's hit points change. HP of zero
// means the entity died.
type EntityHealth struct {
	EntityID uint
	HP       int
}

func (EntityHealth) Type() MsgType { return MsgEntityHealth }

func (m EntityHealth) Validate() error {
	if err := validateID(m.EntityID); err != nil {
		return err
	}
	if m.HP < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHealth, m.HP)
	}
	return nil
}

// EntityDespawn is broadcast when an entity leaves the world.
type EntityDespawn struct {
	EntityID uint
}

func (EntityDespawn) Type() MsgType { return MsgEntityDespawn }

func (m EntityDespawn) Validate() error { return validateID(m.EntityID) }

// MoveTo asks for an entity to walk to a destination.
type MoveTo struct {
	EntityID uint
	X, Y     float64
}

func (MoveTo) Type() MsgType { return MsgMoveTo }

func (m MoveTo) Validate() error {
	if err := validateID(m.EntityID); err != nil {
		return err
	}
	return validatePoint(m.X, m.Y)
}
