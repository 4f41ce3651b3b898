// Package leveldata parses the world description the server sends with the
// game start message. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// WorldData holds the parts of the world description the client needs.
type WorldData struct {
	Width, Height float64 // World bounds in distance units
	Regions       []Region
}

// Region is a named rectangle from an object layer, e.g. a base or spawn area.
type Region struct {
	Name       string
	Layer      string
	X, Y, W, H float64
}
