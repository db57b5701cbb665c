// Package flock advances a fixed population of robots one tick at a time.
//
// Every tick each robot computes a new heading from its previous heading and the
// separation, alignment and cohesion rules of package behavior. All headings are
// computed against the state at the start of the tick, then committed together,
// then applied to the positions. An Engine is owned by a single caller and is not
// safe for concurrent use.
package flock

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/geometry"
)

// Population is the ordered set of robots of a flock, unique by ID.
// The order only matters for deterministic iteration.
type Population []behavior.Agent

// Initialize builds the population described by specs.
// It fails with a *ConfigurationError when specs does not hold exactly expected
// agents, or when an ID is empty or used twice.
func Initialize(specs []AgentSpec, expected int) (Population, error) {
	if len(specs) != expected {
		return nil, &ConfigurationError{Expected: expected, Got: len(specs)}
	}

	seen := make(map[string]struct{}, len(specs))
	population := make(Population, len(specs))
	for i, s := range specs {
		if s.ID == "" {
			return nil, &ConfigurationError{Expected: expected, Got: len(specs),
				Reason: fmt.Sprintf("agent #%d has an empty id", i)}
		}
		if _, dup := seen[s.ID]; dup {
			return nil, &ConfigurationError{Expected: expected, Got: len(specs),
				Reason: fmt.Sprintf("agent id %q is used more than once", s.ID)}
		}
		seen[s.ID] = struct{}{}
		population[i] = behavior.Agent{ID: s.ID, Position: s.Position, Heading: s.Heading}
	}
	return population, nil
}

// Engine owns a population and its tuning, and advances it tick by tick.
type Engine struct {
	specs      []AgentSpec
	population Population
	cfg        Config

	// staged holds the headings computed during a step, indexed like population.
	// Its capacity is reused from one step to the next.
	staged []geometry.Vector2D

	tick             uint64
	firstTickPending bool

	// failure is set by an invariant violation and cleared by Reset.
	failure error
}

// NewEngine initializes the population from specs and returns an engine ready
// for its first tick.
func NewEngine(specs []AgentSpec, expected int, cfg Config) (*Engine, error) {
	population, err := Initialize(specs, expected)
	if err != nil {
		return nil, err
	}

	return &Engine{
		specs:            append([]AgentSpec(nil), specs...),
		population:       population,
		cfg:              cfg,
		staged:           make([]geometry.Vector2D, len(population)),
		firstTickPending: true,
	}, nil
}

// Step advances the flock by exactly one tick.
//
// On the first tick after NewEngine or Reset the rules are skipped and every robot
// moves along its initial heading. Afterwards each new heading is the weighted sum
// of the previous heading and the three rule outputs.
//
// If any new heading is longer than 1, Step returns an *InvariantViolation and
// nothing is committed. The engine then keeps returning that error until Reset.
func (e *Engine) Step() error {
	if e.failure != nil {
		return e.failure
	}

	// 1. Compute every heading against the state at the start of the tick.
	for i, me := range e.population {
		var heading geometry.Vector2D
		if e.firstTickPending {
			heading = me.Heading
		} else {
			heading = e.nextHeading(me)
		}

		// 2. Speed cap
		if l := heading.Len(); l > 1 {
			e.failure = &InvariantViolation{AgentID: me.ID, Magnitude: l, Tick: e.tick + 1}
			return e.failure
		}
		e.staged[i] = heading
	}

	// 3. Commit all headings at once.
	for i := range e.population {
		e.population[i].Heading = e.staged[i]
	}

	// 4. Integrate.
	for i := range e.population {
		a := &e.population[i]
		a.Position = a.Position.Add(a.Heading)
	}

	e.firstTickPending = false
	e.tick++
	return nil
}

func (e *Engine) nextHeading(me behavior.Agent) geometry.Vector2D {
	r := e.cfg.Radii
	return behavior.Blend(
		me.Heading,
		behavior.Separation(me, r.Separation, e.population),
		behavior.Alignment(me, r.Alignment, e.population),
		behavior.Cohesion(me, r.Cohesion, e.population),
		e.cfg.Weights,
	)
}

// Reset puts every robot back on its initial position and heading, zeroes the
// tick counter and makes the next Step a first tick again.
// The tuning is left as it is.
func (e *Engine) Reset() {
	for i, s := range e.specs {
		e.population[i] = behavior.Agent{ID: s.ID, Position: s.Position, Heading: s.Heading}
	}
	e.tick = 0
	e.firstTickPending = true
	e.failure = nil
}

// SetWeights replaces the four blend weights. Any value is accepted.
func (e *Engine) SetWeights(previous, separation, alignment, cohesion float64) {
	e.cfg.Weights = Weights{
		Previous:   previous,
		Separation: separation,
		Alignment:  alignment,
		Cohesion:   cohesion,
	}
}

// SetRadii replaces the three detection radii. Any value is accepted.
func (e *Engine) SetRadii(separation, alignment, cohesion float64) {
	e.cfg.Radii = Radii{
		Separation: separation,
		Alignment:  alignment,
		Cohesion:   cohesion,
	}
}

// SetConfig replaces the whole tuning.
func (e *Engine) SetConfig(cfg Config) {
	e.cfg = cfg
}

// Config returns the current tuning.
func (e *Engine) Config() Config {
	return e.cfg
}

// Agents returns a copy of the committed population.
func (e *Engine) Agents() []behavior.Agent {
	return append([]behavior.Agent(nil), e.population...)
}

// Agent returns the committed state of the robot with the given id.
func (e *Engine) Agent(id string) (behavior.Agent, bool) {
	for _, a := range e.population {
		if a.ID == id {
			return a, true
		}
	}
	return behavior.Agent{}, false
}

// Len returns the population size.
func (e *Engine) Len() int {
	return len(e.population)
}

// Tick returns the number of steps completed since construction or the last Reset.
func (e *Engine) Tick() uint64 {
	return e.tick
}

// FirstTickPending reports whether the next Step will skip the rules.
func (e *Engine) FirstTickPending() bool {
	return e.firstTickPending
}

// Err returns the invariant violation that halted the engine, if any.
func (e *Engine) Err() error {
	return e.failure
}
