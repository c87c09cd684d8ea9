package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/meilin-lab/portfolio/internal/effects"
)

var background = tcell.NewRGBColor(5, 6, 15)

// screenSurface draws frames onto a tcell screen, which it owns.
type screenSurface struct {
	screen tcell.Screen
}

func (s *screenSurface) Draw(f effects.Frame) {
	s.screen.Clear()

	for _, st := range f.Stars {
		ch := '.'
		if st.Size > 1.8 {
			ch = '*'
		} else if st.Size > 1.2 {
			ch = '+'
		}
		s.plot(st.X, st.Y, ch, tcell.ColorWhite, st.Opacity)
	}
	for _, m := range f.Motes {
		s.plot(m.X, m.Y, '·', tcell.ColorLightSteelBlue, m.Opacity)
	}

	for _, seg := range f.Segments {
		s.line(seg.X1, seg.Y1, seg.X2, seg.Y2, seg.Opacity)
	}
	for _, p := range f.Points {
		ch := '•'
		if p.Size < 3 {
			ch = '·'
		}
		s.plot(p.X, p.Y, ch, tcell.GetColor(p.Color), p.Opacity)
	}

	for _, r := range f.Ripples {
		s.ring(r.X, r.Y, r.Radius, r.Opacity)
	}
	for _, p := range f.Particles {
		s.plot(p.X, p.Y, particleRune(p.Shape), tcell.GetColor(p.Color), p.Opacity())
	}

	s.screen.Show()
}

func particleRune(shape effects.Shape) rune {
	switch shape {
	case effects.ShapeStar:
		return '✦'
	case effects.ShapeSpark:
		return '+'
	default:
		return '●'
	}
}

// plot draws ch at surface pixel (x, y), dimmed by opacity. Off-screen
// points are dropped.
func (s *screenSurface) plot(x, y float64, ch rune, c tcell.Color, opacity float64) {
	if opacity <= 0 {
		return
	}
	cx := int(math.Floor(x / cellW))
	cy := int(math.Floor(y / cellH))
	w, h := s.screen.Size()
	if cx < 0 || cy < 0 || cx >= w || cy >= h {
		return
	}
	s.screen.SetContent(cx, cy, ch, nil, tcell.StyleDefault.Foreground(dim(c, opacity)).Background(background))
}

func (s *screenSurface) line(x1, y1, x2, y2, opacity float64) {
	steps := int(math.Max(math.Abs(x2-x1)/cellW, math.Abs(y2-y1)/cellH)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.plot(x1+(x2-x1)*t, y1+(y2-y1)*t, '·', tcell.ColorMediumPurple, opacity)
	}
}

func (s *screenSurface) ring(x, y, radius, opacity float64) {
	// one sample per cell of circumference
	n := max(8, int(2*math.Pi*radius/cellW))
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		s.plot(x+radius*math.Cos(a), y+radius*math.Sin(a), '∘', tcell.ColorSkyblue, opacity)
	}
}

// dim scales c towards black by opacity.
func dim(c tcell.Color, opacity float64) tcell.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return c
	}
	o := math.Min(1, math.Max(0, opacity))
	return tcell.NewRGBColor(int32(float64(r)*o), int32(float64(g)*o), int32(float64(b)*o))
}
