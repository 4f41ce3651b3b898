package systems

import (
	"time"

	"github.com/automoto/nanowar-mp/components"
	cfg "github.com/automoto/nanowar-mp/config"
	"github.com/automoto/nanowar-mp/logger"
	"github.com/automoto/nanowar-mp/network"
	"github.com/automoto/nanowar-mp/shared/gamemath"
	"github.com/automoto/nanowar-mp/shared/messages"
	"github.com/automoto/nanowar-mp/shared/netconfig"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PredictionState is the reconciler's lifecycle state.
type PredictionState int

const (
	PredictionDisabled PredictionState = iota
	PredictionIdle
	PredictionPredicting
)

func (s PredictionState) String() string {
	switch s {
	case PredictionIdle:
		return "idle"
	case PredictionPredicting:
		return "predicting"
	default:
		return "disabled"
	}
}

var predictionLog = logger.For("prediction")

// PredictionReconciler dead-reckons where the server believes the controlled
// entity is. The predicted copy moves at constant velocity; whenever the
// locally simulated entity drifts further than the threshold from it, the
// local state is sent to the server and the copy snaps to it.
type PredictionReconciler struct {
	session   *network.Session
	world     donburi.World
	sender    Sender
	enabled   bool
	threshold float64

	predicted *components.KinematicsData
	wasMoving bool
}

func NewPredictionReconciler(session *network.Session, world donburi.World, sender Sender, c cfg.PredictionConfig) *PredictionReconciler {
	threshold := c.Threshold
	if threshold <= 0 {
		threshold = netconfig.DefaultDeadReckoningThreshold
	}
	return &PredictionReconciler{
		session:   session,
		world:     world,
		sender:    sender,
		enabled:   c.Enabled,
		threshold: threshold,
	}
}

func (p *PredictionReconciler) Enabled() bool { return p.enabled }

func (p *PredictionReconciler) Threshold() float64 { return p.threshold }

func (p *PredictionReconciler) State() PredictionState {
	switch {
	case !p.enabled:
		return PredictionDisabled
	case p.predicted == nil:
		return PredictionIdle
	default:
		return PredictionPredicting
	}
}

// Predicted returns a copy of the predicted kinematics while predicting.
func (p *PredictionReconciler) Predicted() (components.KinematicsData, bool) {
	if p.predicted == nil {
		return components.KinematicsData{}, false
	}
	return *p.predicted, true
}

// OnControlledSpawned seeds a fresh predicted copy from entry, replacing any
// previous one.
func (p *PredictionReconciler) OnControlledSpawned(entry *donburi.Entry) {
	p.Destroy()
	if !p.enabled || !entry.Valid() || !components.Health.Get(entry).Alive() {
		return
	}
	k := *components.Kinematics.Get(entry)
	p.predicted = &k
	p.wasMoving = k.Moving()
	predictionLog.WithField("x", k.X).WithField("y", k.Y).Debug("predicting")
}

// Destroy drops the predicted copy. Safe to call any number of times.
func (p *PredictionReconciler) Destroy() {
	p.predicted = nil
	p.wasMoving = false
}

// OnAuthoritativeMovement aligns the predicted copy with state the server
// itself just sent, so that state is never echoed back as a correction.
func (p *PredictionReconciler) OnAuthoritativeMovement(k components.KinematicsData) {
	if p.predicted == nil {
		return
	}
	p.predicted.X, p.predicted.Y = k.X, k.Y
	p.predicted.DirX, p.predicted.DirY = k.DirX, k.DirY
	p.wasMoving = k.Moving()
}

// Update advances the predicted copy by elapsed and reconciles it with the
// controlled entity.
func (p *PredictionReconciler) Update(elapsed time.Duration) {
	if p.predicted == nil {
		return
	}
	entry, ok := p.controlledEntry()
	if !ok || !components.Health.Get(entry).Alive() {
		p.Destroy()
		return
	}

	pred := p.predicted
	pred.X, pred.Y = gamemath.Advance(pred.X, pred.Y, pred.DirX, pred.DirY, pred.Speed, elapsed)

	k := components.Kinematics.Get(entry)
	switch {
	case gamemath.Distance(pred.X, pred.Y, k.X, k.Y) > p.threshold:
		p.correct(k)
	case p.wasMoving && !k.Moving():
		// The server keeps extrapolating the last heading until told to stop.
		p.correct(k)
	}
	p.wasMoving = k.Moving()
}

// correct tells the server where the controlled entity really is and snaps
// the prediction onto it.
func (p *PredictionReconciler) correct(k *components.KinematicsData) {
	id, _ := p.session.PlayerID()
	if err := p.sender.Send(messages.EntityMovement{
		EntityID: id,
		X:        k.X,
		Y:        k.Y,
		DirX:     k.DirX,
		DirY:     k.DirY,
	}); err != nil {
		predictionLog.WithError(err).Warn("correction not sent")
	}
	p.predicted.X, p.predicted.Y = k.X, k.Y
	p.predicted.DirX, p.predicted.DirY = k.DirX, k.DirY
}

func (p *PredictionReconciler) controlledEntry() (*donburi.Entry, bool) {
	e, ok := p.session.Controlled()
	if !ok || !p.world.Valid(e) {
		return nil, false
	}
	return p.world.Entry(e), true
}

// NewPredictionSystem runs the reconciler once per tick after the simulation.
func NewPredictionSystem(p *PredictionReconciler) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		p.Update(frameTime(e.World))
	}
}
