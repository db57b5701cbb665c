package flock

import (
	"fmt"
	"math"

	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/geometry"
)

// RobotCount is the size of the default population.
const RobotCount = 10

// Weights of the four contributions blended into a new heading.
type Weights = behavior.Weights

// Radii are the detection ranges of the three rules, in simulation units.
type Radii struct {
	Separation float64
	Alignment  float64
	Cohesion   float64
}

// Config holds the tuning of a flock: rule weights and detection radii.
// It can be changed between two steps, never during one.
type Config struct {
	Weights Weights
	Radii   Radii
}

// DefaultConfig returns a tuning whose weights add up to less than 1,
// so a step can never break the unit speed cap.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Previous:   0.4,
			Separation: 0.25,
			Alignment:  0.15,
			Cohesion:   0.15,
		},
		Radii: Radii{
			Separation: 2,
			Alignment:  4,
			Cohesion:   6,
		},
	}
}

// AgentSpec is the initial configuration of one robot.
type AgentSpec struct {
	ID       string
	Position geometry.Vector2D
	Heading  geometry.Vector2D
}

// DefaultSpecs returns the ten robots of the reference layout.
// Most of them start stacked on (2, 0) and only split apart once their
// headings differ.
func DefaultSpecs() []AgentSpec {
	positions := [RobotCount]geometry.Vector2D{
		{X: 0, Y: 1},
		{X: 2, Y: 0},
		{X: 1, Y: 3},
		{X: 2, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 0},
	}

	specs := make([]AgentSpec, RobotCount)
	for i, pos := range positions {
		// spread the initial headings over a half turn, at half speed
		sin, cos := math.Sincos(math.Pi * float64(i) / (RobotCount - 1))
		specs[i] = AgentSpec{
			ID:       fmt.Sprintf("Robot-%02d", i),
			Position: pos,
			Heading:  geometry.Vector2D{X: 0.5 * cos, Y: 0.5 * sin},
		}
	}
	return specs
}
