package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/nanowar-mp/config"
	"github.com/automoto/nanowar-mp/logger"
	"github.com/automoto/nanowar-mp/network"
	"github.com/automoto/nanowar-mp/systems"
	"github.com/automoto/nanowar-mp/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

var log = logger.For("scenes")

// ConnectScene asks for the server address and waits for the connection.
type ConnectScene struct {
	sceneChanger SceneChanger
	connectUI    *ui.ConnectUI
	netClient    *network.Client
	once         sync.Once
}

func NewConnectScene(sc SceneChanger) *ConnectScene {
	return &ConnectScene{sceneChanger: sc}
}

func (s *ConnectScene) Update() error {
	s.once.Do(s.configure)
	s.connectUI.Update()

	if s.netClient == nil {
		return nil
	}

	switch s.netClient.State() {
	case network.StateConnected:
		s.connectUI.SetStatus("Connected, waiting for the game...")
		client := s.netClient
		s.netClient = nil
		s.sceneChanger.ChangeScene(NewNetworkedScene(s.sceneChanger, client))

	case network.StateError:
		errMsg := "Connection failed"
		if err := s.netClient.LastError(); err != nil {
			errMsg = err.Error()
		}
		s.connectUI.SetStatus(errMsg)
		s.connectUI.SetConnecting(false)
		s.netClient.Disconnect()
		s.netClient = nil

	case network.StateConnecting:
		s.connectUI.SetStatus("Connecting...")

	case network.StateDisconnected:
		s.connectUI.SetStatus("Disconnected")
		s.connectUI.SetConnecting(false)
		s.netClient = nil
	}
	return nil
}

func (s *ConnectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{10, 24, 30, 255})

	if s.connectUI == nil {
		return
	}

	s.connectUI.UI.Draw(screen)
}

func (s *ConnectScene) configure() {
	s.connectUI = ui.NewConnectUI(cfg.Network.ServerAddress, cfg.Prediction.Enabled, s.onConnect)
}

func (s *ConnectScene) onConnect(address string, predict bool) {
	if s.netClient != nil {
		s.netClient.Disconnect()
	}

	cfg.Network.ServerAddress = address
	cfg.Prediction.Enabled = predict
	if err := systems.SaveSettings(systems.CurrentSettings()); err != nil {
		log.WithError(err).Warn("settings not saved")
	}

	s.connectUI.SetStatus("Connecting...")
	s.connectUI.SetConnecting(true)

	s.netClient = network.NewClient()
	s.netClient.Connect(address, cfg.Network.Path)
}
