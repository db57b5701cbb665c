// Package behavior holds the robots and the local interaction rules they follow.
//
// The rules are the classic ones from Craig Reynolds' boids (1986): separation,
// alignment and cohesion. https://en.wikipedia.org/wiki/Boids
// Each rule here returns a unit vector, or the zero vector when it has nothing to say,
// so that a weighted sum of them can be bounded by the sum of the weights.
package behavior

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/geometry"
)

// Agent is a single robot of the flock.
// Position is expressed in simulation units (never pixels) and Heading is the
// displacement applied to Position on every tick.
type Agent struct {
	ID       string
	Position geometry.Vector2D
	Heading  geometry.Vector2D
}

// String implements the fmt.Stringer interface.
func (a Agent) String() string {
	return fmt.Sprintf("%s at %s heading %s", a.ID, a.Position, a.Heading)
}

// Speed returns the magnitude of the heading, in simulation units per tick.
func (a Agent) Speed() float64 {
	return a.Heading.Len()
}

// Overlaps reports whether both agents sit on exactly the same position.
// Overlapping agents are invisible to each other for separation and alignment.
func (a Agent) Overlaps(other Agent) bool {
	return a.Position == other.Position
}
