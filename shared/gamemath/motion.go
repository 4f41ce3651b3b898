// Package gamemath holds the deterministic motion model shared by the local
// simulation and the dead reckoning predictor. Both must integrate movement
// with exactly these functions or their positions drift apart.
package gamemath

import (
	"math"
	"time"
)

// Advance integrates constant velocity along (dirX, dirY) at speed units per
// second over elapsed.
func Advance(x, y, dirX, dirY, speed float64, elapsed time.Duration) (nx, ny float64) {
	step := speed * elapsed.Seconds()
	return x + dirX*step, y + dirY*step
}

// Distance returns the Euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Heading returns the unit direction from (fromX, fromY) toward (toX, toY)
// and the distance between them. The direction is zero when the points
// coincide.
func Heading(fromX, fromY, toX, toY float64) (dirX, dirY, dist float64) {
	dx := toX - fromX
	dy := toY - fromY
	dist = math.Hypot(dx, dy)
	if dist > 0 {
		dirX = dx / dist
		dirY = dy / dist
	}
	return dirX, dirY, dist
}

// StepToward advances toward a destination without overshooting it. arrived
// is true once the returned position equals the destination.
func StepToward(x, y, toX, toY, speed float64, elapsed time.Duration) (nx, ny float64, arrived bool) {
	dirX, dirY, dist := Heading(x, y, toX, toY)
	if dist <= speed*elapsed.Seconds() {
		return toX, toY, true
	}
	nx, ny = Advance(x, y, dirX, dirY, speed, elapsed)
	return nx, ny, false
}
