package leveldata

import (
	"fmt"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ParseInitPayload decodes a TMX document into world data. An empty payload
// yields the fallback bounds so a server without a map still starts a game.
func ParseInitPayload(payload string, fallbackW, fallbackH float64) (*WorldData, error) {
	if strings.TrimSpace(payload) == "" {
		return &WorldData{Width: fallbackW, Height: fallbackH}, nil
	}

	levelMap, err := tiled.LoadReader(".", strings.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("parse init payload: %w", err)
	}

	data := &WorldData{
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}
	if data.Width <= 0 || data.Height <= 0 {
		return nil, fmt.Errorf("parse init payload: empty world %vx%v", data.Width, data.Height)
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			data.Regions = append(data.Regions, Region{
				Name:  o.Name,
				Layer: og.Name,
				X:     o.X,
				Y:     o.Y,
				W:     o.Width,
				H:     o.Height,
			})
		}
	}

	return data, nil
}
