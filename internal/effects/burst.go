package effects

import "math"

const (
	BurstParticles = 12
	BurstRipples   = 3

	ParticleDamping = 0.96
	RippleGrowth    = 2.5
	RippleFade      = 0.95
	RippleMaxAge    = 40
)

// Shape is the visual variant of a particle.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeStar
	ShapeSpark
)

var shapes = []Shape{ShapeCircle, ShapeStar, ShapeSpark}

func (s Shape) String() string {
	switch s {
	case ShapeStar:
		return "star"
	case ShapeSpark:
		return "spark"
	default:
		return "circle"
	}
}

// Particle is one fragment of a click burst.
type Particle struct {
	ID      uint64
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Size    float64
	Color   string
	Shape   Shape
}

// Opacity fades linearly with remaining life.
func (p Particle) Opacity() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, float64(p.Life)/float64(p.MaxLife))
}

// Ripple is an expanding ring left by a click.
type Ripple struct {
	ID      uint64
	X, Y    float64
	Radius  float64
	Opacity float64
	Age     int
	MaxAge  int
}

// Bursts holds the particles and ripples spawned by clicks.
type Bursts struct {
	Particles []Particle
	Ripples   []Ripple

	rng Rand
	ids *ids
}

// NewBursts returns an empty burst engine drawing randomness from rng.
func NewBursts(rng Rand) *Bursts {
	return &Bursts{rng: rng, ids: new(ids)}
}

// Emit spawns a burst centred on (x, y).
func (b *Bursts) Emit(x, y float64) {
	for i := 0; i < BurstParticles; i++ {
		angle := 2 * math.Pi * float64(i) / BurstParticles
		speed := between(b.rng, 2, 6)
		life := 30 + b.rng.Intn(30)
		b.Particles = append(b.Particles, Particle{
			ID:      b.ids.next(),
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			MaxLife: life,
			Size:    between(b.rng, 2, 6),
			Color:   pick(b.rng, Palette),
			Shape:   pick(b.rng, shapes),
		})
	}

	for i := 0; i < BurstRipples; i++ {
		b.Ripples = append(b.Ripples, Ripple{
			ID:      b.ids.next(),
			X:       x,
			Y:       y,
			Radius:  float64(i) * 4,
			Opacity: 0.6 - float64(i)*0.15,
			MaxAge:  RippleMaxAge,
		})
	}
}

// Tick advances every particle and ripple by one frame and prunes the
// expired ones. Pruning compacts in place so the backing arrays are reused.
func (b *Bursts) Tick() {
	live := b.Particles[:0]
	for _, p := range b.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= ParticleDamping
		p.VY *= ParticleDamping
		p.Life--
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	clear(b.Particles[len(live):])
	b.Particles = live

	rings := b.Ripples[:0]
	for _, r := range b.Ripples {
		r.Radius += RippleGrowth
		r.Opacity *= RippleFade
		r.Age++
		if r.Age < r.MaxAge {
			rings = append(rings, r)
		}
	}
	clear(b.Ripples[len(rings):])
	b.Ripples = rings
}

// Active reports whether anything is still animating.
func (b *Bursts) Active() bool {
	return len(b.Particles) > 0 || len(b.Ripples) > 0
}
