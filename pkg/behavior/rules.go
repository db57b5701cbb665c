package behavior

import (
	"math"

	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/geometry"
)

// Weights controls how much each contribution counts in the blended heading.
type Weights struct {
	Previous   float64 // Inertia: weight of the heading of the previous tick
	Separation float64
	Alignment  float64
	Cohesion   float64
}

// Magnitude returns the sum of the absolute weights.
// Because every contribution is a unit vector or zero, a blended heading can never
// be longer than this value.
func (w Weights) Magnitude() float64 {
	return math.Abs(w.Previous) + math.Abs(w.Separation) + math.Abs(w.Alignment) + math.Abs(w.Cohesion)
}

// NeighborsWithin returns every agent of the population whose distance to me is at
// most radius. The scan is brute force over the whole population.
// me itself is part of the result (its distance is 0) whenever radius >= 0:
// each rule decides on its own whether to drop it.
func NeighborsWithin(me Agent, radius float64, population []Agent) []Agent {
	var neighbors []Agent
	for _, other := range population {
		if me.Position.DistanceTo(other.Position) <= radius {
			neighbors = append(neighbors, other)
		}
	}
	return neighbors
}

// Separation steers away from the crowd within radius.
// It sums the vectors from me to each neighbor, normalizes the sum and negates it.
// Neighbors at exactly my position are skipped, which also skips me.
func Separation(me Agent, radius float64, population []Agent) geometry.Vector2D {
	sum := geometry.Zero
	for _, other := range NeighborsWithin(me, radius, population) {
		if me.Overlaps(other) {
			continue
		}
		sum = sum.Add(other.Position.Sub(me.Position))
	}
	if sum.IsZero() {
		return geometry.Zero
	}
	return sum.Normalize().Neg()
}

// Alignment steers towards the common heading of the neighbors within radius.
// Neighbors at exactly my position are skipped, which also skips me.
func Alignment(me Agent, radius float64, population []Agent) geometry.Vector2D {
	sum := geometry.Zero
	for _, other := range NeighborsWithin(me, radius, population) {
		if me.Overlaps(other) {
			continue
		}
		sum = sum.Add(other.Heading)
	}
	return sum.Normalize()
}

// Cohesion steers towards the centroid of the neighbors within radius, me included.
func Cohesion(me Agent, radius float64, population []Agent) geometry.Vector2D {
	group := NeighborsWithin(me, radius, population)
	if len(group) == 0 {
		// only reachable with a negative or NaN radius
		return geometry.Zero
	}

	sum := geometry.Zero
	for _, other := range group {
		sum = sum.Add(other.Position)
	}
	n := float64(len(group))
	centroid := geometry.Vector2D{X: sum.X / n, Y: sum.Y / n}

	return centroid.Sub(me.Position).Normalize()
}

// Blend combines the previous heading with the three rule outputs.
// The result is a plain weighted sum, it is not renormalized.
func Blend(previous, separation, alignment, cohesion geometry.Vector2D, w Weights) geometry.Vector2D {
	return previous.Mul(w.Previous).
		Add(separation.Mul(w.Separation)).
		Add(alignment.Mul(w.Alignment)).
		Add(cohesion.Mul(w.Cohesion))
}
