package graph

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/geometry"
)

var testGraph = Graph{OriginX: 100, OriginY: 700, Unit: 10, Size: 60}

func TestGraph_ToScreen(t *testing.T) {
	tests := []struct {
		name         string
		v            geometry.Vector2D
		wantX, wantY float64
	}{
		{"Origin", geometry.Vector2D{}, 100, 700},
		{"Y points up", geometry.Vector2D{X: 0, Y: 1}, 100, 690},
		{"X points right", geometry.Vector2D{X: 2, Y: 0}, 120, 700},
		{"Negative quadrant", geometry.Vector2D{X: -1, Y: -3}, 90, 730},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := testGraph.ToScreen(tt.v)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("ToScreen(%v) = (%v, %v); want (%v, %v)", tt.v, x, y, tt.wantX, tt.wantY)
			}
			if back := testGraph.ToWorld(x, y); !back.Eq(tt.v) {
				t.Errorf("ToWorld(ToScreen(%v)) = %v", tt.v, back)
			}
		})
	}
}

func TestGraph_ToWorldZeroUnit(t *testing.T) {
	if got := (Graph{}).ToWorld(5, 5); got != geometry.Zero {
		t.Errorf("ToWorld with zero unit = %v; want zero vector", got)
	}
}

func TestGraph_GridLines(t *testing.T) {
	g := Graph{OriginX: 10, OriginY: 50, Unit: 5, Size: 4}
	lines := g.GridLines()

	if len(lines) != 8 {
		t.Fatalf("len(GridLines()) = %d; want 8", len(lines))
	}
	// first horizontal line is the x axis, 4 cells long
	if want := (Line{X1: 10, Y1: 50, X2: 30, Y2: 50}); lines[0] != want {
		t.Errorf("lines[0] = %+v; want %+v", lines[0], want)
	}
	// last vertical line is 3 cells right of the y axis, going up
	if want := (Line{X1: 25, Y1: 50, X2: 25, Y2: 30}); lines[7] != want {
		t.Errorf("lines[7] = %+v; want %+v", lines[7], want)
	}
}

func TestGraph_Arrow(t *testing.T) {
	a := behavior.Agent{Position: geometry.Vector2D{X: 1, Y: 1}, Heading: geometry.Vector2D{X: 0.5, Y: 0}}
	shaft, head := testGraph.Arrow(a, 2)

	if want := (Line{X1: 110, Y1: 690, X2: 120, Y2: 690}); shaft != want {
		t.Errorf("shaft = %+v; want %+v", shaft, want)
	}
	for i, l := range head {
		if l.X1 != 120 || l.Y1 != 690 || l.X2 >= 120 {
			t.Errorf("head[%d] = %+v; want a stroke going back from the tip", i, l)
		}
	}
}

func TestGraph_Pick(t *testing.T) {
	agents := []behavior.Agent{
		{ID: "a", Position: geometry.Vector2D{X: 0, Y: 0}},
		{ID: "b", Position: geometry.Vector2D{X: 2, Y: 0}},
		{ID: "far", Position: geometry.Vector2D{X: 20, Y: 20}},
	}

	tests := []struct {
		name   string
		x, y   float64
		wantID string
		wantOK bool
	}{
		{"On a", 100, 700, "a", true},
		{"Closer to b", 115, 700, "b", true},
		{"Empty space", 100, 500, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := testGraph.Pick(agents, tt.x, tt.y)
			if ok != tt.wantOK || got.ID != tt.wantID {
				t.Errorf("Pick(%v, %v) = %s, %v; want %s, %v", tt.x, tt.y, got.ID, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}
