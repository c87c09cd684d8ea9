package effects

import (
	"slices"
	"time"
)

// maxFrameDelta caps the starfield step after a stall (suspended tab,
// stopped terminal) so stars do not jump across the screen.
const maxFrameDelta = 100 * time.Millisecond

// InputKind identifies a host input event.
type InputKind int

const (
	InputMove InputKind = iota
	InputClick
	InputLeave
	InputResize
)

// Input is a pointer or viewport event in surface pixels. For InputResize,
// X and Y carry the new width and height.
type Input struct {
	Kind    InputKind
	X, Y    float64
	Primary bool
}

// Frame is a snapshot of everything visible, ordered back to front.
type Frame struct {
	Width, Height float64

	Stars []Star
	Motes []Mote

	Segments  []TrailSegment
	Points    []TrailPoint
	Ripples   []Ripple
	Particles []Particle
}

// Scene combines the three engines behind a single tick.
type Scene struct {
	Bursts *Bursts
	Trail  *Trail
	Field  *Starfield

	lastTick     time.Time
	lastTruncate time.Time
}

// NewScene builds a scene for a w×h surface.
func NewScene(w, h float64, rng Rand) *Scene {
	return &Scene{
		Bursts: NewBursts(rng),
		Trail:  NewTrail(rng),
		Field:  NewStarfield(w, h, rng),
	}
}

// Apply handles one input event.
func (s *Scene) Apply(in Input, now time.Time) {
	switch in.Kind {
	case InputMove:
		s.Trail.Move(in.X, in.Y, now)
	case InputClick:
		if in.Primary {
			s.Bursts.Emit(in.X, in.Y)
		}
	case InputLeave:
		s.Trail.Leave()
	case InputResize:
		s.Field.Resize(in.X, in.Y)
	}
}

// Tick advances the scene to now.
func (s *Scene) Tick(now time.Time) {
	var dt time.Duration
	if !s.lastTick.IsZero() {
		dt = min(max(now.Sub(s.lastTick), 0), maxFrameDelta)
	}
	s.lastTick = now

	s.Field.Tick(dt.Seconds())
	s.Bursts.Tick()
	s.Trail.Tick(now)

	if now.Sub(s.lastTruncate) >= TruncateInterval {
		s.Trail.Truncate()
		s.lastTruncate = now
	}
}

// Frame returns a copy of the current state for rendering.
func (s *Scene) Frame() Frame {
	return Frame{
		Width:     s.Field.Width,
		Height:    s.Field.Height,
		Stars:     slices.Clone(s.Field.Stars),
		Motes:     slices.Clone(s.Field.Motes),
		Segments:  slices.Clone(s.Trail.Segments),
		Points:    slices.Clone(s.Trail.Points),
		Ripples:   slices.Clone(s.Bursts.Ripples),
		Particles: slices.Clone(s.Bursts.Particles),
	}
}
