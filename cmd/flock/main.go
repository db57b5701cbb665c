package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/view"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "JSON or TOML configuration file (built-in defaults when empty)")
	schemaFile := flag.String("schema", "", "JSON schema for the configuration (embedded schema when empty)")
	headless := flag.Bool("headless", false, "run without a window and print the final state")
	ticks := flag.Int("ticks", 100, "number of ticks of a headless run")
	debug := flag.Bool("debug", false, "log every tick")
	flag.Parse()

	ctx := context.Background()

	cfg, err := loadConfig(*configFile, *schemaFile)
	if err != nil {
		log.Fatal(err)
	}

	level := golog.InfoLevel
	if *debug {
		level = golog.DebugLevel
	}
	logger := golog.New(level, os.Stdout)

	runner, err := simulation.NewRunner(ctx, cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer runner.Stop(ctx)

	if *headless {
		runHeadless(ctx, runner, logger, *ticks)
		return
	}

	game, err := view.NewGame(ctx, runner, cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.View.WindowWidth, cfg.View.WindowHeight)
	ebiten.SetWindowTitle("Robot Flock: separation, alignment, cohesion")

	if err := ebiten.RunGame(game); err != nil {
		_ = runner.Stop(ctx)
		log.Fatal(err)
	}
}

func loadConfig(configFile, schemaFile string) (*simulation.Config, error) {
	switch {
	case configFile == "":
		return simulation.DefaultConfig(), nil
	case schemaFile == "":
		return simulation.LoadConfigDefaultSchema(configFile)
	default:
		return simulation.LoadConfig(configFile, schemaFile)
	}
}

func runHeadless(ctx context.Context, runner *simulation.Runner, logger golog.Logger, ticks int) {
	snapshot, err := runner.Run(ctx, ticks)
	if snapshot != nil {
		for _, a := range simulation.SnapshotAgents(snapshot) {
			logger.Infof("tick %d: %s", snapshot.GetTick(), a)
		}
	}
	if err != nil {
		if errors.Is(err, simulation.ErrHalted) {
			logger.Errorf("run %s halted", runner.RunID())
		}
		_ = runner.Stop(ctx)
		log.Fatal(err)
	}
	logger.Infof("run %s completed %d ticks", runner.RunID(), snapshot.GetTick())
}
