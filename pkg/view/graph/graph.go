// Package graph maps simulation units to screen pixels.
// The y axis points up in the simulation and down on screen.
package graph

import (
	"math"

	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/geometry"
)

// RobotDiameter is the drawn size of a robot, in simulation units.
const RobotDiameter = 3.0

// Graph is a square grid whose origin sits at pixel (OriginX, OriginY).
type Graph struct {
	OriginX, OriginY float64
	Unit             float64 // pixels per simulation unit
	Size             int     // grid cells along each axis
}

// Line is a segment in screen pixels.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// ToScreen converts a simulation position to pixels.
func (g Graph) ToScreen(v geometry.Vector2D) (x, y float64) {
	return g.OriginX + v.X*g.Unit, g.OriginY - v.Y*g.Unit
}

// ToWorld converts pixels back to a simulation position.
func (g Graph) ToWorld(x, y float64) geometry.Vector2D {
	if g.Unit == 0 {
		return geometry.Zero
	}
	return geometry.Vector2D{X: (x - g.OriginX) / g.Unit, Y: (g.OriginY - y) / g.Unit}
}

// Pixels converts a length in simulation units to pixels.
func (g Graph) Pixels(units float64) float64 {
	return units * g.Unit
}

// GridLines returns one horizontal and one vertical line per cell, starting on
// the axes and extending Size cells right and up.
func (g Graph) GridLines() []Line {
	length := g.Unit * float64(g.Size)
	lines := make([]Line, 0, 2*g.Size)
	for i := 0; i < g.Size; i++ {
		y := g.OriginY - float64(i)*g.Unit
		lines = append(lines, Line{X1: g.OriginX, Y1: y, X2: g.OriginX + length, Y2: y})

		x := g.OriginX + float64(i)*g.Unit
		lines = append(lines, Line{X1: x, Y1: g.OriginY, X2: x, Y2: g.OriginY - length})
	}
	return lines
}

// Arrow returns the heading of a robot as a shaft and the two strokes of its head.
// The heading is stretched by scale so that a slow robot still shows a visible arrow.
func (g Graph) Arrow(a behavior.Agent, scale float64) (shaft Line, head [2]Line) {
	x1, y1 := g.ToScreen(a.Position)
	x2, y2 := g.ToScreen(a.Position.Add(a.Heading.Mul(scale)))
	shaft = Line{X1: x1, Y1: y1, X2: x2, Y2: y2}

	if a.Heading.IsZero() {
		return shaft, [2]Line{{x2, y2, x2, y2}, {x2, y2, x2, y2}}
	}
	angle := math.Atan2(y2-y1, x2-x1)
	const headLen, spread = 6.0, 2.6
	for i, side := range [2]float64{spread, -spread} {
		head[i] = Line{
			X1: x2, Y1: y2,
			X2: x2 + math.Cos(angle+side)*headLen,
			Y2: y2 + math.Sin(angle+side)*headLen,
		}
	}
	return shaft, head
}

// Pick returns the robot drawn under the pixel (x, y), the closest one when
// bodies overlap.
func (g Graph) Pick(agents []behavior.Agent, x, y float64) (behavior.Agent, bool) {
	p := g.ToWorld(x, y)
	best, bestDist, found := behavior.Agent{}, math.Inf(1), false
	for _, a := range agents {
		d := a.Position.DistanceTo(p)
		if d <= RobotDiameter/2 && d < bestDist {
			best, bestDist, found = a, d, true
		}
	}
	return best, found
}
