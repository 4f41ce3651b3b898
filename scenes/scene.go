package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. An error from Update ends the game loop.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
}
