package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	checkBorderColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	checkFillColor   = color.RGBA{R: 100, G: 200, B: 100, A: 255}
)

// Checkbox toggles a boolean. The box and its on/off text are both clickable.
type Checkbox struct {
	Label string
	Value bool
	X, Y  float64
	Size  float64

	// OnChange is called with the new value after every toggle.
	OnChange func(value bool)
}

func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{
		Label: label,
		Value: value,
		X:     x,
		Y:     y,
		Size:  16,
	}
}

func (c *Checkbox) hit(mx, my int) bool {
	// box plus three debug glyphs of state text
	w := c.Size + 8 + 3*6
	return float64(mx) >= c.X && float64(mx) <= c.X+w &&
		float64(my) >= c.Y && float64(my) <= c.Y+c.Size
}

// Update toggles the value on the frame the left button goes down over it.
func (c *Checkbox) Update() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if !c.hit(ebiten.CursorPosition()) {
		return
	}
	c.Value = !c.Value
	if c.OnChange != nil {
		c.OnChange(c.Value)
	}
}

func (c *Checkbox) Draw(screen *ebiten.Image) {
	x, y, s := float32(c.X), float32(c.Y), float32(c.Size)
	vector.StrokeRect(screen, x, y, s, s, 2, checkBorderColor, true)

	state := "off"
	if c.Value {
		vector.FillRect(screen, x+2, y+2, s-4, s-4, checkFillColor, true)
		state = "on"
	}
	ebitenutil.DebugPrintAt(screen, state, int(c.X+c.Size+8), int(c.Y))
}

// Height is the vertical room taken in a Panel, label included.
func (c *Checkbox) Height() float64 {
	return c.Size + 20
}

func (c *Checkbox) SetY(y float64) {
	c.Y = y
}
