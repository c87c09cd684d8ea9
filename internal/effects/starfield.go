package effects

import "math"

const (
	// StarArea is the viewport area, in px², that holds one star.
	StarArea  = 4000.0
	MoteCount = 40
)

// Star is a background star drifting left at its own parallax speed.
type Star struct {
	X, Y        float64
	Size        float64
	Speed       float64 // px per second
	Phase       float64
	TwinkleRate float64 // radians per second
	Opacity     float64
}

// Mote is an ambient background particle with a bounded life.
type Mote struct {
	X, Y    float64
	VX, VY  float64 // px per second
	Size    float64
	Life    float64 // seconds
	MaxLife float64
	Opacity float64
}

// Starfield is the generative background. It takes no pointer input.
type Starfield struct {
	Width, Height float64
	Stars         []Star
	Motes         []Mote

	rng Rand
}

// StarCount is the number of stars for a w×h viewport.
func StarCount(w, h float64) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	return int(w * h / StarArea)
}

// NewStarfield populates a w×h viewport.
func NewStarfield(w, h float64, rng Rand) *Starfield {
	f := &Starfield{Width: w, Height: h, rng: rng}
	f.populate()
	f.Motes = make([]Mote, MoteCount)
	for i := range f.Motes {
		f.spawnMote(&f.Motes[i])
	}
	return f
}

func (f *Starfield) populate() {
	n := StarCount(f.Width, f.Height)
	f.Stars = make([]Star, n)
	for i := range f.Stars {
		s := &f.Stars[i]
		s.X = f.rng.Float64() * f.Width
		s.Y = f.rng.Float64() * f.Height
		s.Size = between(f.rng, 0.5, 2.5)
		// bigger stars are nearer and move faster
		s.Speed = s.Size * between(f.rng, 4, 10)
		s.Phase = f.rng.Float64() * 2 * math.Pi
		s.TwinkleRate = between(f.rng, 0.5, 3)
		s.Opacity = twinkle(s.Phase)
	}
}

func (f *Starfield) spawnMote(m *Mote) {
	m.X = f.rng.Float64() * f.Width
	m.Y = f.rng.Float64() * f.Height
	m.VX = between(f.rng, -8, 8)
	m.VY = between(f.rng, -8, 8)
	m.Size = between(f.rng, 1, 3)
	m.MaxLife = between(f.rng, 4, 12)
	m.Life = m.MaxLife
	m.Opacity = 0
}

func twinkle(phase float64) float64 {
	return 0.55 + 0.45*math.Sin(phase)
}

// Resize regenerates the star population for the new viewport. Motes
// outside the new bounds are respawned.
func (f *Starfield) Resize(w, h float64) {
	f.Width, f.Height = w, h
	f.populate()
	for i := range f.Motes {
		if !f.inside(f.Motes[i].X, f.Motes[i].Y) {
			f.spawnMote(&f.Motes[i])
		}
	}
}

func (f *Starfield) inside(x, y float64) bool {
	return x >= 0 && x <= f.Width && y >= 0 && y <= f.Height
}

// Tick advances the field by dt seconds.
func (f *Starfield) Tick(dt float64) {
	for i := range f.Stars {
		s := &f.Stars[i]
		s.X -= s.Speed * dt
		s.Phase = math.Mod(s.Phase+s.TwinkleRate*dt, 2*math.Pi)
		s.Opacity = twinkle(s.Phase)
		if s.X < -s.Size {
			s.X = f.Width + s.Size
			s.Y = f.rng.Float64() * f.Height
		}
	}

	for i := range f.Motes {
		m := &f.Motes[i]
		m.X += m.VX * dt
		m.Y += m.VY * dt
		m.Life -= dt
		if m.Life <= 0 || !f.inside(m.X, m.Y) {
			f.spawnMote(m)
			continue
		}
		// fade in over the first half of life, out over the second
		m.Opacity = 0.4 * math.Sin(math.Pi*m.Life/m.MaxLife)
	}
}
