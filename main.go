package main

import (
	"errors"
	"image"
	"os"

	"github.com/automoto/nanowar-mp/config"
	"github.com/automoto/nanowar-mp/fonts"
	"github.com/automoto/nanowar-mp/logger"
	"github.com/automoto/nanowar-mp/network"
	"github.com/automoto/nanowar-mp/scenes"
	"github.com/automoto/nanowar-mp/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewConnectScene(g)
	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	logger.Init()
	log := logger.For("main")

	if err := fonts.LoadDefaults(); err != nil {
		log.WithError(err).Fatal("failed to load fonts")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.WithError(err).Warn("running without saved settings")
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		if errors.Is(err, network.ErrConnectionLost) {
			log.WithError(err).Error("disconnected from server")
			os.Exit(1)
		}
		log.WithError(err).Fatal("game exited")
	}
}
