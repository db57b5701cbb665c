package simulation

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lao-tseu-is-alive/go-robot-flock/pb"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/flock"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"github.com/tochemey/goakt/v3/log"
)

// WorldActor is the only owner of the flock engine.
// Its mailbox serializes Tick, Reset, UpdateConfig and GetSnapshot, so the engine
// never sees two requests at once. Every request is answered with a WorldSnapshot.
type WorldActor struct {
	runID  string
	engine *flock.Engine

	// --- Telemetry ---
	ticksSinceLog int
	lastLogTime   time.Time
}

var _ actor.Actor = (*WorldActor)(nil)

// NewWorldActor builds the engine described by cfg.
// A population that does not match cfg.ExpectedPopulation is reported here,
// before anything is spawned.
func NewWorldActor(cfg *Config) (*WorldActor, error) {
	engine, err := flock.NewEngine(cfg.Specs(), cfg.ExpectedPopulation, cfg.FlockConfig())
	if err != nil {
		return nil, err
	}
	return &WorldActor{
		runID:       uuid.NewString(),
		engine:      engine,
		lastLogTime: time.Now(),
	}, nil
}

// RunID identifies this world in logs and snapshots.
func (w *WorldActor) RunID() string {
	return w.runID
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World %s is placing %d robots...", w.runID, w.engine.Len())
	w.warnIfUnsafe(ctx.ActorSystem().Logger(), w.engine.Config())
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Infof("World %s started", w.runID)

	// 1. The Main Simulation Step (driven by the view or the headless runner)
	case *pb.Tick:
		w.step(ctx)
		ctx.Response(w.buildSnapshot())

	// 2. Back to the initial population, keeps the tuning
	case *pb.Reset:
		w.engine.Reset()
		ctx.Logger().Infof("World %s reset", w.runID)
		ctx.Response(w.buildSnapshot())

	// 3. Handle dynamic slider updates from UI
	case *pb.UpdateConfig:
		w.applyConfig(ctx, msg)
		ctx.Response(w.buildSnapshot())

	case *pb.GetSnapshot:
		ctx.Response(w.buildSnapshot())

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) step(ctx *actor.ReceiveContext) {
	if w.engine.Err() != nil {
		ctx.Logger().Debugf("World %s is halted, tick ignored", w.runID)
		return
	}

	if err := w.engine.Step(); err != nil {
		var violation *flock.InvariantViolation
		if errors.As(err, &violation) {
			ctx.Logger().Errorf("World %s halted: robot %s would move %.6f units at tick %d",
				w.runID, violation.AgentID, violation.Magnitude, violation.Tick)
			return
		}
		ctx.Logger().Errorf("World %s step failed: %v", w.runID, err)
		return
	}

	ctx.Logger().Debugf("World %s tick %d", w.runID, w.engine.Tick())
	w.logTelemetry(ctx)
}

func (w *WorldActor) applyConfig(ctx *actor.ReceiveContext, msg *pb.UpdateConfig) {
	cfg := w.engine.Config()
	if msg.GetWeights() != nil {
		cfg.Weights = WeightsFromProto(msg.GetWeights())
	}
	if msg.GetRadii() != nil {
		cfg.Radii = RadiiFromProto(msg.GetRadii())
	}
	w.engine.SetConfig(cfg)

	ctx.Logger().Debugf("World %s tuning: weights %+v radii %+v", w.runID, cfg.Weights, cfg.Radii)
	w.warnIfUnsafe(ctx.Logger(), cfg)
}

// warnIfUnsafe flags weights that allow a blended heading longer than one unit.
// Such a tuning is still applied: the engine halts if the cap is actually crossed.
func (w *WorldActor) warnIfUnsafe(logger log.Logger, cfg flock.Config) {
	if m := cfg.Weights.Magnitude(); m > 1 {
		logger.Warnf("World %s weights add up to %.3f, a robot may exceed 1 unit per tick", w.runID, m)
	}
}

func (w *WorldActor) logTelemetry(ctx *actor.ReceiveContext) {
	w.ticksSinceLog++
	if time.Since(w.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 TICK RATE: %d/sec | Tick: %d | Robots: %d",
			w.ticksSinceLog, w.engine.Tick(), w.engine.Len())
		w.ticksSinceLog = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) buildSnapshot() *pb.WorldSnapshot {
	agents := w.engine.Agents()
	cfg := w.engine.Config()

	snapshot := &pb.WorldSnapshot{
		RunId:   w.runID,
		Tick:    w.engine.Tick(),
		Agents:  make([]*pb.AgentState, 0, len(agents)),
		Weights: WeightsToProto(cfg.Weights),
		Radii:   RadiiToProto(cfg.Radii),
	}
	for _, a := range agents {
		snapshot.Agents = append(snapshot.Agents, AgentToProto(a))
	}

	if err := w.engine.Err(); err != nil {
		snapshot.Halted = true
		snapshot.Error = err.Error()
	}
	return snapshot
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World %s is shutdown after %d ticks...", w.runID, w.engine.Tick())
	return nil
}
