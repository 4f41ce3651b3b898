package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/automoto/nanowar-mp/components"
	cfg "github.com/automoto/nanowar-mp/config"
	"github.com/automoto/nanowar-mp/network"
	"github.com/automoto/nanowar-mp/shared/messages"
	"github.com/automoto/nanowar-mp/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NetworkedScene runs a game session against the server.
type NetworkedScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	session      *network.Session
	once         sync.Once

	sim        *systems.WorldSimulation
	reconciler *systems.PredictionReconciler
	cooldowns  *systems.SkillCooldownResolver
	router     *systems.MessageRouter
	targets    *systems.TargetResolver
	dispatcher *systems.IntentDispatcher
	picker     *systems.TargetPicker
}

func NewNetworkedScene(sc SceneChanger, client *network.Client) *NetworkedScene {
	return &NetworkedScene{
		sceneChanger: sc,
		netClient:    client,
		session:      network.NewSession(),
	}
}

func (ns *NetworkedScene) Update() error {
	ns.once.Do(ns.configure)

	if err := ns.connectionError(); err != nil {
		log.WithError(err).Warn("session ended")
		ns.teardown()
		return err
	}

	systems.SetFrameTime(ns.ecsWorld.World, time.Second/time.Duration(ebiten.TPS()))
	ns.ecsWorld.Update()
	return nil
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ns.ecsWorld == nil {
		return
	}

	ns.ecsWorld.Draw(screen)
}

func (ns *NetworkedScene) configure() {
	world := donburi.NewWorld()
	ns.ecsWorld = ecs.NewECS(world)

	feedback := systems.NewHUDFeedback(world)
	ns.sim = systems.NewWorldSimulation(world)
	ns.reconciler = systems.NewPredictionReconciler(ns.session, world, ns.netClient, cfg.Prediction)
	ns.cooldowns = systems.NewSkillCooldownResolver(ns.session, world)
	ns.router = systems.NewMessageRouter(systems.RouterDeps{
		Session:    ns.session,
		World:      world,
		Sender:     ns.netClient,
		Simulation: ns.sim,
		Reconciler: ns.reconciler,
		Cooldowns:  ns.cooldowns,
		Feedback:   feedback,
	})
	ns.targets = systems.NewTargetResolver(ns.session, world, ns.cooldowns)
	ns.dispatcher = systems.NewIntentDispatcher(ns.session, ns.netClient, ns.sim, ns.cooldowns, ns.reconciler, feedback)
	ns.picker = systems.NewTargetPicker(world, ns.worldSize)

	bounds := ns.sim.Bounds()
	systems.CreateCamera(world, bounds.Width/2, bounds.Height/2)

	log.WithField("prediction", ns.reconciler.State()).Info("session configured")

	// Pre-update: everything received since the last frame is routed first.
	ns.ecsWorld.AddSystem(systems.NewNetMessageSystem(ns.netClient, ns.router, ns.sim))
	ns.ecsWorld.AddSystem(ns.updateInput)
	// Simulation
	ns.ecsWorld.AddSystem(systems.UpdateMotion)
	ns.ecsWorld.AddSystem(systems.UpdateEffects)
	// Post-update
	ns.ecsWorld.AddSystem(systems.NewPredictionSystem(ns.reconciler))
	ns.ecsWorld.AddSystem(systems.NewCooldownSystem(ns.cooldowns))
	ns.ecsWorld.AddSystem(systems.UpdateFeedback)
	ns.ecsWorld.AddSystem(systems.NewCameraSystem(ns.session, ns.worldSize))

	ns.ecsWorld.AddRenderer(layerWorld, ns.drawWorld)
	ns.ecsWorld.AddRenderer(layerHUD, ns.drawHUD)
}

func (ns *NetworkedScene) worldSize() (float64, float64) {
	b := ns.sim.Bounds()
	return b.Width, b.Height
}

// updateInput turns this frame's keys and clicks into intents.
func (ns *NetworkedScene) updateInput(e *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		ns.send(messages.ChangeFakeDelay{DeltaMs: cfg.Network.FakeDelayStep})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		ns.send(messages.ChangeFakeDelay{DeltaMs: -cfg.Network.FakeDelayStep})
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mods := systems.Modifiers{
		ebiten.IsKeyPressed(ebiten.Key1),
		ebiten.IsKeyPressed(ebiten.Key2),
	}

	cx, cy := ebiten.CursorPosition()
	x, y := ns.camera(e).ScreenToWorld(float64(cx), float64(cy), float64(cfg.C.Width), float64(cfg.C.Height))
	target := ns.picker.Pick(x, y)
	if intent, ok := ns.targets.Resolve(x, y, target, mods); ok {
		ns.dispatcher.Dispatch(intent)
	}
}

func (ns *NetworkedScene) camera(e *ecs.ECS) components.CameraData {
	if entry, ok := components.Camera.First(e.World); ok {
		return *components.Camera.Get(entry)
	}
	return components.CameraData{}
}

func (ns *NetworkedScene) send(msg messages.Message) {
	if err := ns.netClient.Send(msg); err != nil {
		log.WithError(err).WithField("type", msg.Type()).Warn("send failed")
	}
}

// connectionError reports why the session can no longer continue.
func (ns *NetworkedScene) connectionError() error {
	switch ns.netClient.State() {
	case network.StateError:
		err := ns.netClient.LastError()
		if err == nil {
			return network.ErrConnectionLost
		}
		if !errors.Is(err, network.ErrConnectionLost) {
			return fmt.Errorf("%w: %v", network.ErrConnectionLost, err)
		}
		return err
	case network.StateDisconnected:
		return network.ErrConnectionLost
	}
	return nil
}

func (ns *NetworkedScene) teardown() {
	ns.reconciler.Destroy()
	ns.session.End()
	ns.netClient.Disconnect()
	log.WithField("dropped", ns.router.Dropped()).Info("session closed")
}
