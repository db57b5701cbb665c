package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lao-tseu-is-alive/go-robot-flock/pb"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/flock"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/proto"
)

// ErrHalted is returned once the world refused a step because a robot would have
// broken the speed cap. Only Reset brings the world back.
var ErrHalted = errors.New("world halted")

const defaultAskTimeout = time.Second

// Runner drives one WorldActor inside its own actor system.
// Every call blocks until the world has answered, so a tick is complete when
// Advance returns. It is used by the window and by headless runs alike.
type Runner struct {
	System  actor.ActorSystem
	world   *actor.PID
	runID   string
	timeout time.Duration
}

// NewRunner starts an actor system and spawns the world described by cfg.
func NewRunner(ctx context.Context, cfg *Config, logger log.Logger) (*Runner, error) {
	worldActor, err := NewWorldActor(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build world: %w", err)
	}

	system, err := actor.NewActorSystem("RobotFlock",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return nil, fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start actor system: %w", err)
	}

	worldPID, err := system.Spawn(ctx, "world", worldActor)
	if err != nil {
		_ = system.Stop(ctx)
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	timeout := cfg.AskTimeout()
	if timeout <= 0 {
		timeout = defaultAskTimeout
	}

	return &Runner{
		System:  system,
		world:   worldPID,
		runID:   worldActor.RunID(),
		timeout: timeout,
	}, nil
}

// RunID identifies the world driven by this runner.
func (r *Runner) RunID() string {
	return r.runID
}

func (r *Runner) ask(ctx context.Context, msg proto.Message) (*pb.WorldSnapshot, error) {
	reply, err := actor.Ask(ctx, r.world, msg, r.timeout)
	if err != nil {
		return nil, fmt.Errorf("world did not answer %T: %w", msg, err)
	}
	snapshot, ok := reply.(*pb.WorldSnapshot)
	if !ok {
		return nil, fmt.Errorf("world answered %T with unexpected %T", msg, reply)
	}
	return snapshot, nil
}

// Advance asks the world for exactly one tick.
// When the world is halted the returned error wraps ErrHalted, and the snapshot
// still holds the last committed state.
func (r *Runner) Advance(ctx context.Context) (*pb.WorldSnapshot, error) {
	snapshot, err := r.ask(ctx, &pb.Tick{})
	if err != nil {
		return nil, err
	}
	if snapshot.GetHalted() {
		return snapshot, fmt.Errorf("%w: %s", ErrHalted, snapshot.GetError())
	}
	return snapshot, nil
}

// Run advances the world n times and returns the last snapshot.
// It stops early when the world halts or ctx is done.
func (r *Runner) Run(ctx context.Context, n int) (*pb.WorldSnapshot, error) {
	var last *pb.WorldSnapshot
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return last, err
		}
		snapshot, err := r.Advance(ctx)
		if snapshot != nil {
			last = snapshot
		}
		if err != nil {
			return last, err
		}
	}
	if last == nil {
		return r.Snapshot(ctx)
	}
	return last, nil
}

// Reset puts the world back on its initial population and clears a halt.
func (r *Runner) Reset(ctx context.Context) (*pb.WorldSnapshot, error) {
	return r.ask(ctx, &pb.Reset{})
}

// UpdateConfig replaces the tuning used from the next tick on.
func (r *Runner) UpdateConfig(ctx context.Context, cfg flock.Config) (*pb.WorldSnapshot, error) {
	return r.ask(ctx, UpdateConfigFor(cfg))
}

// Snapshot returns the committed state without advancing.
func (r *Runner) Snapshot(ctx context.Context) (*pb.WorldSnapshot, error) {
	return r.ask(ctx, &pb.GetSnapshot{})
}

// Stop shuts the actor system down.
func (r *Runner) Stop(ctx context.Context) error {
	return r.System.Stop(ctx)
}
