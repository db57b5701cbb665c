// Package view shows a running flock in an ebiten window.
// It only talks to the world through a simulation.Runner and only draws committed
// state taken from the last snapshot.
package view

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-robot-flock/pb"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/flock"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/ui"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/view/graph"
)

// arrowScale stretches headings so that they stay visible next to the robot bodies.
const arrowScale = 4.0

var (
	backgroundColor = color.RGBA{R: 245, G: 245, B: 240, A: 255}
	gridColor       = color.RGBA{R: 30, G: 30, B: 30, A: 90}
	robotColor      = color.RGBA{R: 220, G: 40, B: 40, A: 200}
	hoverColor      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	arrowColor      = color.RGBA{R: 200, G: 160, B: 0, A: 255}
	separationColor = color.RGBA{R: 220, G: 50, B: 50, A: 90}
	alignmentColor  = color.RGBA{R: 50, G: 150, B: 50, A: 90}
	cohesionColor   = color.RGBA{R: 50, G: 100, B: 255, A: 90}
)

type Game struct {
	ctx    context.Context
	runner *simulation.Runner
	cfg    *simulation.Config
	graph  graph.Graph

	lastState *pb.WorldSnapshot
	agents    []behavior.Agent

	// UI Controls
	panel     *ui.Panel
	startStop *ui.Button
	buttons   []*ui.Button

	// Pending requests, set by the widgets and sent on the next Update
	running        bool
	stepRequested  bool
	resetRequested bool
	tuning         flock.Config
	tuningDirty    bool
	showRadii      bool
	frame          int

	// Timing instrumentation, rolling averages in ms
	updateAvg float64
	drawAvg   float64
}

// NewGame builds the window state around a started runner.
func NewGame(ctx context.Context, runner *simulation.Runner, cfg *simulation.Config) (*Game, error) {
	snapshot, err := runner.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read initial world: %w", err)
	}

	g := &Game{
		ctx:    ctx,
		runner: runner,
		cfg:    cfg,
		graph: graph.Graph{
			OriginX: cfg.View.OriginX,
			OriginY: cfg.View.OriginY,
			Unit:    cfg.View.UnitSize,
			Size:    cfg.View.GraphSize,
		},
		tuning: cfg.FlockConfig(),
	}
	g.setState(snapshot)

	// Toolbar
	g.startStop = ui.NewButton(10, 10, 70, 24, "Start", func() {
		g.running = !g.running
	})
	g.buttons = []*ui.Button{
		g.startStop,
		ui.NewButton(90, 10, 70, 24, "Step", func() { g.stepRequested = true }),
		ui.NewButton(170, 10, 70, 24, "Reset", func() { g.resetRequested = true }),
	}

	// Tuning panel on the right side
	w, h := float64(cfg.View.WindowWidth), float64(cfg.View.WindowHeight)
	g.panel = ui.NewPanel("Tuning", w-230, 10, 220, h-20)

	g.panel.AddSection("Weights")
	g.panel.AddSlider("Previous", 0, 1, g.tuning.Weights.Previous, g.tuneField(&g.tuning.Weights.Previous))
	g.panel.AddSlider("Separation", 0, 1, g.tuning.Weights.Separation, g.tuneField(&g.tuning.Weights.Separation))
	g.panel.AddSlider("Alignment", 0, 1, g.tuning.Weights.Alignment, g.tuneField(&g.tuning.Weights.Alignment))
	g.panel.AddSlider("Cohesion", 0, 1, g.tuning.Weights.Cohesion, g.tuneField(&g.tuning.Weights.Cohesion))

	g.panel.AddSection("Radii")
	g.panel.AddSlider("Separation", 0, 20, g.tuning.Radii.Separation, g.tuneField(&g.tuning.Radii.Separation))
	g.panel.AddSlider("Alignment", 0, 20, g.tuning.Radii.Alignment, g.tuneField(&g.tuning.Radii.Alignment))
	g.panel.AddSlider("Cohesion", 0, 20, g.tuning.Radii.Cohesion, g.tuneField(&g.tuning.Radii.Cohesion))

	g.panel.AddSection("Visualization")
	g.panel.AddCheckbox("Show radii", false, func(v bool) { g.showRadii = v })
	g.panel.EndSection()

	return g, nil
}

// tuneField returns a slider callback writing into one tuning field.
func (g *Game) tuneField(field *float64) func(float64) {
	return func(v float64) {
		*field = v
		g.tuningDirty = true
	}
}

func (g *Game) setState(s *pb.WorldSnapshot) {
	if s == nil {
		return
	}
	g.lastState = s
	g.agents = simulation.SnapshotAgents(s)
}

// Update advances the world every FramesPerTick frames while running.
// A halted world ends the game with its error.
func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	// 1. UI
	g.panel.Update()
	for _, b := range g.buttons {
		b.Update()
	}
	if g.running {
		g.startStop.Label = "Stop"
	} else {
		g.startStop.Label = "Start"
	}

	// 2. Requests to the world, all answered before the next frame
	if g.tuningDirty {
		s, err := g.runner.UpdateConfig(g.ctx, g.tuning)
		if err != nil {
			return err
		}
		g.setState(s)
		g.tuningDirty = false
	}
	if g.resetRequested {
		s, err := g.runner.Reset(g.ctx)
		if err != nil {
			return err
		}
		g.setState(s)
		g.resetRequested = false
		g.frame = 0
	}

	// 3. Trigger Simulation Step
	advance := g.stepRequested && !g.running
	g.stepRequested = false
	if g.running {
		g.frame++
		advance = g.frame%max(g.cfg.View.FramesPerTick, 1) == 0
	}
	if !advance {
		return nil
	}

	s, err := g.runner.Advance(g.ctx)
	g.setState(s)
	if err != nil {
		return fmt.Errorf("simulation stopped at tick %d: %w", g.lastState.GetTick(), err)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(backgroundColor)

	// 1. Grid
	for _, l := range g.graph.GridLines() {
		vector.StrokeLine(screen, float32(l.X1), float32(l.Y1), float32(l.X2), float32(l.Y2), 1, gridColor, true)
	}

	// 2. Robots from the last committed snapshot
	mx, my := ebiten.CursorPosition()
	hovered, isHovered := g.graph.Pick(g.agents, float64(mx), float64(my))
	if g.panel.Contains(mx, my) {
		isHovered = false
	}

	radius := float32(g.graph.Pixels(graph.RobotDiameter / 2))
	for _, a := range g.agents {
		x, y := g.graph.ToScreen(a.Position)
		if g.showRadii {
			g.drawRadii(screen, float32(x), float32(y))
		}
		clr := robotColor
		if isHovered && a.ID == hovered.ID {
			clr = hoverColor
		}
		vector.FillCircle(screen, float32(x), float32(y), radius, clr, true)
		g.drawArrow(screen, a)
	}

	// 3. Widgets
	for _, b := range g.buttons {
		b.Draw(screen)
	}
	g.panel.Draw(screen)

	// 4. HUD and tooltip
	g.drawHUD(screen)
	if isHovered {
		msg := fmt.Sprintf("%s\npos %s\nheading %s\nspeed %.3f",
			hovered.ID, hovered.Position, hovered.Heading, hovered.Speed())
		ebitenutil.DebugPrintAt(screen, msg, mx+12, my+12)
	}
}

func (g *Game) drawRadii(screen *ebiten.Image, x, y float32) {
	r := g.tuning.Radii
	vector.StrokeCircle(screen, x, y, float32(g.graph.Pixels(r.Separation)), 1, separationColor, true)
	vector.StrokeCircle(screen, x, y, float32(g.graph.Pixels(r.Alignment)), 1, alignmentColor, true)
	vector.StrokeCircle(screen, x, y, float32(g.graph.Pixels(r.Cohesion)), 1, cohesionColor, true)
}

func (g *Game) drawArrow(screen *ebiten.Image, a behavior.Agent) {
	shaft, head := g.graph.Arrow(a, arrowScale)
	for _, l := range []graph.Line{shaft, head[0], head[1]} {
		vector.StrokeLine(screen, float32(l.X1), float32(l.Y1), float32(l.X2), float32(l.Y2), 2, arrowColor, true)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	state := "paused"
	if g.running {
		state = "running"
	}
	if g.lastState.GetHalted() {
		state = "HALTED: " + g.lastState.GetError()
	}

	msg := fmt.Sprintf("Tick: %s (%s)\nRun: %s\nWeights magnitude: %.2f\nFPS: %.1f  Update: %.2fms  Draw: %.2fms",
		humanize.Comma(int64(g.lastState.GetTick())),
		state,
		g.lastState.GetRunId(),
		g.tuning.Weights.Magnitude(),
		ebiten.ActualFPS(),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, 10, 44)
}

func (g *Game) Layout(w, h int) (int, int) {
	return g.cfg.View.WindowWidth, g.cfg.View.WindowHeight
}
