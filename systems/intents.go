package systems

import (
	"github.com/automoto/nanowar-mp/logger"
	"github.com/automoto/nanowar-mp/network"
	"github.com/automoto/nanowar-mp/shared/messages"
)

var intentLog = logger.For("intents")

// IntentDispatcher carries out resolved intents: it tells the server, starts
// local cooldowns, moves the local simulation and marks the HUD.
type IntentDispatcher struct {
	session    *network.Session
	sender     Sender
	sim        Simulation
	cooldowns  *SkillCooldownResolver
	reconciler *PredictionReconciler
	feedback   Feedback
}

func NewIntentDispatcher(session *network.Session, sender Sender, sim Simulation, cooldowns *SkillCooldownResolver, reconciler *PredictionReconciler, feedback Feedback) *IntentDispatcher {
	return &IntentDispatcher{
		session:    session,
		sender:     sender,
		sim:        sim,
		cooldowns:  cooldowns,
		reconciler: reconciler,
		feedback:   feedback,
	}
}

func (d *IntentDispatcher) Dispatch(intent Intent) {
	id, ok := d.session.PlayerID()
	if !ok {
		return
	}

	switch intent.Kind {
	case IntentMoveTo:
		msg := messages.MoveTo{EntityID: id, X: intent.X, Y: intent.Y}
		// With prediction on, the server learns about movement from
		// corrections only.
		if !d.reconciler.Enabled() {
			d.send(msg)
		}
		d.sim.Apply(msg)
		d.feedback.MarkDestination(intent.X, intent.Y)
	case IntentAttack:
		d.send(messages.Attack{AttackerID: id, TargetID: intent.TargetID, SkillIndex: intent.Skill})
		d.cooldowns.OnFire(intent.Skill)
		d.feedback.MarkTarget(intent.TargetID)
	case IntentFireTo:
		d.send(messages.FireTo{EntityID: id, X: intent.X, Y: intent.Y, SkillIndex: intent.Skill})
		d.cooldowns.OnFire(intent.Skill)
		d.feedback.MarkFireDest(intent.X, intent.Y)
	}
}

func (d *IntentDispatcher) send(msg messages.Message) {
	if err := d.sender.Send(msg); err != nil {
		intentLog.WithError(err).WithField("type", msg.Type()).Warn("send failed")
	}
}
