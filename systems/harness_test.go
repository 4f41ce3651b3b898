package systems

import (
	"fmt"
	"testing"
	"time"

	"github.com/automoto/nanowar-mp/config"
	"github.com/automoto/nanowar-mp/network"
	"github.com/automoto/nanowar-mp/shared/messages"
	"github.com/automoto/nanowar-mp/shared/netconfig"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeSender struct {
	sent []messages.Message
	err  error
}

func (s *fakeSender) Send(msg messages.Message) error {
	s.sent = append(s.sent, msg)
	return s.err
}

func (s *fakeSender) ofType(t messages.MsgType) []messages.Message {
	var out []messages.Message
	for _, m := range s.sent {
		if m.Type() == t {
			out = append(out, m)
		}
	}
	return out
}

type fakeFeedback struct {
	calls []string
}

func (f *fakeFeedback) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeFeedback) UpdatePing(ms int)              { f.record("ping %d", ms) }
func (f *fakeFeedback) ShowAttackFailed(reason string) { f.record("fail %s", reason) }
func (f *fakeFeedback) HideAttackFailed()              { f.record("hide fail") }
func (f *fakeFeedback) MarkTarget(id uint)             { f.record("target %d", id) }
func (f *fakeFeedback) HideTargetMark()                { f.record("hide target") }
func (f *fakeFeedback) MarkDestination(x, y float64)   { f.record("dest %v,%v", x, y) }
func (f *fakeFeedback) MarkFireDest(x, y float64)      { f.record("fire %v,%v", x, y) }

func (f *fakeFeedback) has(call string) bool {
	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

type fakeInbox struct {
	pending []messages.Inbound
}

func (i *fakeInbox) Drain() []messages.Inbound {
	out := i.pending
	i.pending = nil
	return out
}

// harness wires the core the same way the networked scene does.
type harness struct {
	world      donburi.World
	ecs        *ecs.ECS
	session    *network.Session
	sender     *fakeSender
	feedback   *fakeFeedback
	sim        *WorldSimulation
	reconciler *PredictionReconciler
	cooldowns  *SkillCooldownResolver
	router     *MessageRouter
	targets    *TargetResolver
	dispatcher *IntentDispatcher
}

func newHarness(t *testing.T, predict bool) *harness {
	t.Helper()

	world := donburi.NewWorld()
	h := &harness{
		world:    world,
		ecs:      ecs.NewECS(world),
		session:  network.NewSession(),
		sender:   &fakeSender{},
		feedback: &fakeFeedback{},
	}
	h.sim = NewWorldSimulation(world)
	h.reconciler = NewPredictionReconciler(h.session, world, h.sender, config.PredictionConfig{
		Enabled:   predict,
		Threshold: netconfig.DefaultDeadReckoningThreshold,
	})
	h.cooldowns = NewSkillCooldownResolver(h.session, world)
	h.router = NewMessageRouter(RouterDeps{
		Session:    h.session,
		World:      world,
		Sender:     h.sender,
		Simulation: h.sim,
		Reconciler: h.reconciler,
		Cooldowns:  h.cooldowns,
		Feedback:   h.feedback,
	})
	h.targets = NewTargetResolver(h.session, world, h.cooldowns)
	h.dispatcher = NewIntentDispatcher(h.session, h.sender, h.sim, h.cooldowns, h.reconciler, h.feedback)
	return h
}

// route sends msg through the router and, when forwarded, the simulation.
func (h *harness) route(msg messages.Message) Verdict {
	v := h.router.Route(msg)
	if v == Forward {
		h.sim.Apply(msg)
	}
	return v
}

func (h *harness) bootstrap(t *testing.T, id uint) {
	t.Helper()
	h.route(messages.PlayerID{PlayerID: id})
	h.route(messages.PlayerClass{ClassName: netconfig.ClassWarriorCell})
	h.route(messages.Start{})
	if !h.session.Started() {
		t.Fatal("session not started after bootstrap")
	}
}

func (h *harness) spawn(t *testing.T, id uint, class string, x, y float64, hp int) *donburi.Entry {
	t.Helper()
	h.route(messages.EntitySpawn{EntityID: id, ClassName: class, X: x, Y: y, HP: hp})
	entry, ok := h.sim.find(id)
	if !ok {
		t.Fatalf("entity %d not spawned", id)
	}
	return entry
}

func (h *harness) tick(elapsed time.Duration) {
	SetFrameTime(h.world, elapsed)
}
