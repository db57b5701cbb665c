package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 30
	sectionHeight = 25
)

// Widget is implemented by everything a Panel can stack.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
	SetY(y float64)
}

// Panel stacks labelled widgets in titled sections and scrolls them with the wheel.
type Panel struct {
	Title         string
	X, Y          float64
	Width, Height float64
	ScrollOffset  float64

	widgets  []Widget
	labels   []string
	sections []section

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA
}

type section struct {
	title      string
	startIndex int // first widget of the section
	endIndex   int // exclusive
}

// NewPanel creates an empty panel
func NewPanel(title string, x, y, width, height float64) *Panel {
	return &Panel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection starts a new section, closing the previous one.
func (p *Panel) AddSection(title string) {
	p.EndSection()
	p.sections = append(p.sections, section{
		title:      title,
		startIndex: len(p.widgets),
		endIndex:   len(p.widgets),
	})
}

// EndSection closes the current section
func (p *Panel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].endIndex = len(p.widgets)
	}
}

// AddSlider adds a slider to the current section.
func (p *Panel) AddSlider(label string, min, max, value float64, onChange func(float64)) *Slider {
	s := NewSlider(p.X+10, p.Y, p.Width-20, label, min, max, value)
	s.OnChange = onChange
	p.add(label, s)
	return s
}

// AddCheckbox adds a checkbox to the current section.
func (p *Panel) AddCheckbox(label string, value bool, onChange func(bool)) *Checkbox {
	c := NewCheckbox(p.X+10, p.Y, label, value)
	c.OnChange = onChange
	p.add(label, c)
	return c
}

func (p *Panel) add(label string, w Widget) {
	if len(p.sections) == 0 {
		p.AddSection("")
	}
	p.widgets = append(p.widgets, w)
	p.labels = append(p.labels, label)
	p.sections[len(p.sections)-1].endIndex = len(p.widgets)
	p.layout()
}

// layout places every widget according to the current scroll offset.
func (p *Panel) layout() {
	y := p.Y + titleHeight - p.ScrollOffset
	for _, s := range p.sections {
		y += sectionHeight
		for i := s.startIndex; i < s.endIndex; i++ {
			p.widgets[i].SetY(y + 15)
			y += p.widgets[i].Height()
		}
	}
}

func (p *Panel) contentHeight() float64 {
	h := float64(titleHeight + sectionHeight*len(p.sections))
	for _, w := range p.widgets {
		h += w.Height()
	}
	return h
}

// Contains reports whether the point is inside the panel.
func (p *Panel) Contains(x, y int) bool {
	return float64(x) >= p.X && float64(x) <= p.X+p.Width &&
		float64(y) >= p.Y && float64(y) <= p.Y+p.Height
}

// Update handles input for all widgets
func (p *Panel) Update() {
	if _, dy := ebiten.Wheel(); dy != 0 && p.Contains(ebiten.CursorPosition()) {
		p.ScrollOffset -= dy * 20

		maxScroll := max(p.contentHeight()-p.Height+10, 0)
		p.ScrollOffset = min(max(p.ScrollOffset, 0), maxScroll)
		p.layout()
	}

	for _, w := range p.widgets {
		w.Update()
	}
}

// Draw renders the panel and all visible widgets
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	visible := func(y float64) bool {
		return y >= p.Y+titleHeight-5 && y <= p.Y+p.Height-20
	}

	y := p.Y + titleHeight - p.ScrollOffset
	for _, s := range p.sections {
		if s.title != "" && visible(y) {
			vector.FillRect(screen,
				float32(p.X+5), float32(y),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, s.title, int(p.X+10), int(y+3))
		}
		y += sectionHeight

		for i := s.startIndex; i < s.endIndex; i++ {
			w := p.widgets[i]
			if visible(y) {
				ebitenutil.DebugPrintAt(screen, p.labels[i], int(p.X+10), int(y-2))
				w.Draw(screen)
			}
			y += w.Height()
		}
	}
}
