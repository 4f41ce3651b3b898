package messages

// Attack is sent by the client to attack a target, and broadcast by the server
// when an attack is executed.
type Attack struct {
	AttackerID uint
	TargetID   uint
	SkillIndex int
}

func (Attack) Type() MsgType { return MsgAttack }

func (m Attack) Validate() error {
	if err := validateID(m.AttackerID); err != nil {
		return err
	}
	if err := validateID(m.TargetID); err != nil {
		return err
	}
	return validateSkill(m.SkillIndex)
}

// FireTo is the untargeted variant of Attack aimed at a ground position.
type FireTo struct {
	EntityID   uint
	X, Y       float64
	SkillIndex int
}

func (FireTo) Type() MsgType { return MsgFireTo }

func (m FireTo) Validate() error {
	if err := validateID(m.EntityID); err != nil {
		return err
	}
	if err := validatePoint(m.X, m.Y); err != nil {
		return err
	}
	return validateSkill(m.SkillIndex)
}

// AttackOutOfRange is sent to the attacker when the target was too far away.
type AttackOutOfRange struct {
	EntityID uint
}

func (AttackOutOfRange) Type() MsgType { return MsgAttackOutOfRange }

func (AttackOutOfRange) Validate() error { return nil }

// SkillNotReady is sent to the attacker when the server still had the skill
// on cooldown.
type SkillNotReady struct {
	EntityID uint
}

func (SkillNotReady) Type() MsgType { return MsgSkillNotReady }

func (SkillNotReady) Validate() error { return nil }
