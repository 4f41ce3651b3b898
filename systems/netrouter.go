package systems

import (
	"errors"
	"time"

	"github.com/automoto/nanowar-mp/components"
	"github.com/automoto/nanowar-mp/logger"
	"github.com/automoto/nanowar-mp/network"
	"github.com/automoto/nanowar-mp/shared/messages"
	"github.com/automoto/nanowar-mp/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// Verdict tells the caller whether a routed message still has to reach the
// simulation.
type Verdict int

const (
	Consumed Verdict = iota
	Forward
)

func (v Verdict) String() string {
	if v == Forward {
		return "forward"
	}
	return "consumed"
}

// Feedback reasons shown when the server refuses an attack.
const (
	ReasonOutOfRange    = "Out of range"
	ReasonSkillNotReady = "Skill is not ready"
)

var (
	errNotStarted     = errors.New("in-game message before start")
	errNoPlayer       = errors.New("start before player id")
	errAlreadyStarted = errors.New("duplicate start")
)

var routerLog = logger.For("router")

// RouterDeps are the collaborators a MessageRouter reports to.
type RouterDeps struct {
	Session    *network.Session
	World      donburi.World
	Sender     Sender
	Simulation Simulation
	Reconciler *PredictionReconciler
	Cooldowns  *SkillCooldownResolver
	Feedback   Feedback
}

// MessageRouter is the first stop for every inbound message. Bootstrap and
// keep-alive traffic is handled here; in-game traffic is observed and then
// forwarded to the simulation.
type MessageRouter struct {
	RouterDeps
	dropped int
}

func NewMessageRouter(deps RouterDeps) *MessageRouter {
	return &MessageRouter{RouterDeps: deps}
}

// Dropped returns how many messages were discarded as protocol violations.
func (r *MessageRouter) Dropped() int {
	return r.dropped
}

// Route handles msg and reports whether the simulation should see it.
func (r *MessageRouter) Route(msg messages.Message) Verdict {
	if in, ok := msg.(messages.Inbound); ok {
		if err := in.Validate(); err != nil {
			r.drop(msg, err)
			return Consumed
		}
	}

	switch m := msg.(type) {
	case messages.PlayerID:
		r.bindPlayer(m.PlayerID)
	case messages.PlayerClass:
		r.Session.SetClassName(m.ClassName)
	case messages.Start:
		r.start(m)
	case messages.EntitySpawn:
		r.spawn(m)
	case messages.Ping:
		r.send(m)
	default:
		if !r.Session.Started() {
			r.drop(msg, errNotStarted)
			return Consumed
		}
		r.observe(msg)
		return Forward
	}
	return Consumed
}

func (r *MessageRouter) start(m messages.Start) {
	if r.Session.Started() {
		r.drop(m, errAlreadyStarted)
		return
	}
	id, ok := r.Session.PlayerID()
	if !ok {
		r.drop(m, errNoPlayer)
		return
	}
	if err := r.Simulation.Init(m.InitPayload); err != nil {
		r.drop(m, err)
		return
	}
	r.Session.Start()
	r.send(messages.PlayerReady{PlayerID: id})
	routerLog.WithField("player", id).Info("game started")
}

// bindPlayer records the player id. A different id releases the entity bound
// to the previous one.
func (r *MessageRouter) bindPlayer(id uint) {
	if prev, ok := r.Session.PlayerID(); ok && prev != id {
		r.release()
		routerLog.WithField("from", prev).WithField("to", id).Warn("player id changed")
	}
	r.Session.BindPlayer(id)
}

// release untags and unbinds the controlled entity and drops its prediction.
func (r *MessageRouter) release() {
	if e, ok := r.Session.Controlled(); ok && r.World.Valid(e) {
		entry := r.World.Entry(e)
		if entry.HasComponent(tags.Controlled) {
			entry.RemoveComponent(tags.Controlled)
		}
	}
	r.Session.UnbindControlled()
	r.Reconciler.Destroy()
}

func (r *MessageRouter) spawn(m messages.EntitySpawn) {
	entry, err := r.Simulation.Spawn(m)
	if err != nil {
		r.drop(m, err)
		return
	}
	if !r.Session.IsPlayer(m.EntityID) {
		return
	}

	if prev, ok := r.Session.Controlled(); ok && prev != entry.Entity() && r.World.Valid(prev) {
		r.World.Entry(prev).RemoveComponent(tags.Controlled)
	}
	if !entry.HasComponent(tags.Controlled) {
		entry.AddComponent(tags.Controlled)
	}
	r.Session.BindControlled(entry.Entity())
	r.Reconciler.OnControlledSpawned(entry)
	routerLog.WithField("entity", m.EntityID).Debug("controlled entity spawned")
}

// observe runs the client's own reactions to an in-game message before the
// simulation applies it.
func (r *MessageRouter) observe(msg messages.Message) {
	switch m := msg.(type) {
	case messages.PingNotification:
		r.Session.SetPing(time.Duration(m.PingMs) * time.Millisecond)
		r.Feedback.UpdatePing(m.PingMs)
	case messages.AttackOutOfRange:
		r.refused(ReasonOutOfRange)
	case messages.SkillNotReady:
		r.refused(ReasonSkillNotReady)
	case messages.Attack:
		if r.Session.IsPlayer(m.AttackerID) {
			r.executed(m.SkillIndex)
		}
	case messages.FireTo:
		if r.Session.IsPlayer(m.EntityID) {
			r.executed(m.SkillIndex)
		}
	case messages.EntityMovement:
		if entry, ok := r.controlled(m.EntityID); ok {
			k := components.Kinematics.Get(entry)
			k.X, k.Y = m.X, m.Y
			k.DirX, k.DirY = m.DirX, m.DirY
			if !k.Moving() {
				components.Destination.Get(entry).Active = false
			}
			r.Reconciler.OnAuthoritativeMovement(*k)
		}
	case messages.EntityHealth:
		if entry, ok := r.controlled(m.EntityID); ok {
			components.Health.Get(entry).Current = m.HP
			if m.HP <= 0 {
				r.Reconciler.Destroy()
			}
		}
	case messages.EntityDespawn:
		if _, ok := r.controlled(m.EntityID); ok {
			r.Session.UnbindControlled()
			r.Reconciler.Destroy()
		}
	}
}

func (r *MessageRouter) refused(reason string) {
	r.Feedback.ShowAttackFailed(reason)
	r.Feedback.HideTargetMark()
}

// executed compensates the local cooldown for the half round trip the
// server's cooldown started ahead of ours.
func (r *MessageRouter) executed(skill int) {
	r.Feedback.HideAttackFailed()
	r.Feedback.HideTargetMark()
	r.Cooldowns.OnServerRejection(skill, r.Session.Ping())
}

func (r *MessageRouter) controlled(id uint) (*donburi.Entry, bool) {
	if !r.Session.IsPlayer(id) {
		return nil, false
	}
	e, ok := r.Session.Controlled()
	if !ok || !r.World.Valid(e) {
		return nil, false
	}
	entry := r.World.Entry(e)
	if nid := esync.GetNetworkId(entry); nid == nil || uint(*nid) != id {
		return nil, false
	}
	return entry, true
}

func (r *MessageRouter) send(msg messages.Message) {
	if err := r.Sender.Send(msg); err != nil {
		routerLog.WithError(err).WithField("type", msg.Type()).Warn("send failed")
	}
}

func (r *MessageRouter) drop(msg messages.Message, err error) {
	r.dropped++
	routerLog.WithError(err).WithField("type", msg.Type()).Debug("dropped message")
}
