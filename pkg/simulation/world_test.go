package simulation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/flock"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/geometry"
	"github.com/tochemey/goakt/v3/log"
)

func newTestRunner(t *testing.T, cfg *Config) *Runner {
	t.Helper()
	ctx := context.Background()
	r, err := NewRunner(ctx, cfg, log.DiscardLogger)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	t.Cleanup(func() {
		if err := r.Stop(ctx); err != nil {
			t.Errorf("Stop() error = %v", err)
		}
	})
	return r
}

// fastConfig holds a single robot whose inertia alone breaks the speed cap on tick 2.
func fastConfig() *Config {
	cfg := DefaultConfig()
	cfg.ExpectedPopulation = 1
	cfg.Agents = []AgentConfig{{ID: "fast", Heading: geometry.Vector2D{X: 0.6, Y: 0}}}
	cfg.Weights = WeightsConfig{Previous: 2}
	return cfg
}

func TestNewWorldActor_RejectsBadPopulation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExpectedPopulation = 11

	if _, err := NewWorldActor(cfg); !errors.Is(err, flock.ErrConfiguration) {
		t.Errorf("NewWorldActor() error = %v; want ErrConfiguration", err)
	}
	if _, err := NewRunner(context.Background(), cfg, log.DiscardLogger); !errors.Is(err, flock.ErrConfiguration) {
		t.Errorf("NewRunner() error = %v; want ErrConfiguration", err)
	}
}

func TestWorldActor_buildSnapshot(t *testing.T) {
	w, err := NewWorldActor(DefaultConfig())
	if err != nil {
		t.Fatalf("NewWorldActor() error = %v", err)
	}

	s := w.buildSnapshot()
	if s.GetRunId() != w.RunID() || s.GetRunId() == "" {
		t.Errorf("RunId = %q; want %q", s.GetRunId(), w.RunID())
	}
	if s.GetTick() != 0 || s.GetHalted() || s.GetError() != "" {
		t.Errorf("snapshot = tick %d halted %v error %q; want a fresh world", s.GetTick(), s.GetHalted(), s.GetError())
	}
	if got := WeightsFromProto(s.GetWeights()); got != flock.DefaultConfig().Weights {
		t.Errorf("Weights = %+v; want defaults", got)
	}

	agents := SnapshotAgents(s)
	for i, spec := range flock.DefaultSpecs() {
		if agents[i].ID != spec.ID || agents[i].Position != spec.Position || agents[i].Heading != spec.Heading {
			t.Errorf("agent %d = %v; want %+v", i, agents[i], spec)
		}
	}
}

func TestRunner_MatchesEngine(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	r := newTestRunner(t, cfg)

	engine, err := flock.NewEngine(cfg.Specs(), cfg.ExpectedPopulation, cfg.FlockConfig())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	for tick := uint64(1); tick <= 30; tick++ {
		s, err := r.Advance(ctx)
		if err != nil {
			t.Fatalf("Advance() at tick %d error = %v", tick, err)
		}
		if err := engine.Step(); err != nil {
			t.Fatalf("engine.Step() at tick %d error = %v", tick, err)
		}

		if s.GetTick() != tick {
			t.Fatalf("snapshot tick = %d; want %d", s.GetTick(), tick)
		}
		want := engine.Agents()
		for i, got := range SnapshotAgents(s) {
			if got != want[i] {
				t.Fatalf("tick %d: agent %d = %v; want %v", tick, i, got, want[i])
			}
		}
	}
}

func TestRunner_Run(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t, DefaultConfig())

	s, err := r.Run(ctx, 25)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if s.GetTick() != 25 || s.GetRunId() != r.RunID() {
		t.Errorf("Run() snapshot = tick %d run %q; want tick 25 run %q", s.GetTick(), s.GetRunId(), r.RunID())
	}

	s, err = r.Run(ctx, 0)
	if err != nil || s.GetTick() != 25 {
		t.Errorf("Run(0) = tick %d, %v; want the current snapshot at tick 25", s.GetTick(), err)
	}
}

func TestRunner_HaltsOnViolation(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t, fastConfig())

	s, err := r.Run(ctx, 10)
	if !errors.Is(err, ErrHalted) {
		t.Fatalf("Run() error = %v; want ErrHalted", err)
	}
	if !strings.Contains(err.Error(), "fast") {
		t.Errorf("Run() error = %q; want it to name the robot", err)
	}
	if !s.GetHalted() || s.GetTick() != 1 {
		t.Errorf("snapshot = halted %v tick %d; want halted at tick 1", s.GetHalted(), s.GetTick())
	}
	// the rejected step was not committed
	if got := SnapshotAgents(s)[0].Position; got != (geometry.Vector2D{X: 0.6, Y: 0}) {
		t.Errorf("Position = %v; want (0.6, 0)", got)
	}

	// still halted
	if _, err := r.Advance(ctx); !errors.Is(err, ErrHalted) {
		t.Errorf("Advance() while halted error = %v; want ErrHalted", err)
	}

	s, err = r.Reset(ctx)
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if s.GetHalted() || s.GetTick() != 0 {
		t.Errorf("after Reset snapshot = halted %v tick %d; want running at tick 0", s.GetHalted(), s.GetTick())
	}
	if _, err := r.Advance(ctx); err != nil {
		t.Errorf("Advance() after Reset error = %v", err)
	}
}

func TestRunner_UpdateConfig(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t, fastConfig())

	safe := flock.Config{
		Weights: flock.Weights{Previous: 1},
		Radii:   flock.Radii{Separation: 1, Alignment: 1, Cohesion: 1},
	}
	s, err := r.UpdateConfig(ctx, safe)
	if err != nil {
		t.Fatalf("UpdateConfig() error = %v", err)
	}
	if WeightsFromProto(s.GetWeights()) != safe.Weights || RadiiFromProto(s.GetRadii()) != safe.Radii {
		t.Errorf("snapshot tuning = %v %v; want %+v", s.GetWeights(), s.GetRadii(), safe)
	}

	// with pure inertia the robot keeps its initial heading forever
	s, err = r.Run(ctx, 5)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := SnapshotAgents(s)[0].Position; !got.Eq(geometry.Vector2D{X: 3, Y: 0}) {
		t.Errorf("Position = %v; want (3, 0)", got)
	}

	// the tuning survives a snapshot request
	s, err = r.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if s.GetTick() != 5 || WeightsFromProto(s.GetWeights()) != safe.Weights {
		t.Errorf("Snapshot() = tick %d weights %v; want tick 5 and %+v", s.GetTick(), s.GetWeights(), safe.Weights)
	}
}

func TestRunner_RunStopsOnCancelledContext(t *testing.T) {
	r := newTestRunner(t, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Run(ctx, 3); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v; want context.Canceled", err)
	}
}

func BenchmarkRunner_Advance(b *testing.B) {
	ctx := context.Background()
	r, err := NewRunner(ctx, DefaultConfig(), log.DiscardLogger)
	if err != nil {
		b.Fatal(err)
	}
	defer r.Stop(ctx)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Advance(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
