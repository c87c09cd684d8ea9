package effects

import (
	"math"
	"time"
)

const (
	TrailMaxAge      = time.Second
	MaxPoints        = 50
	MaxSegments      = 30
	SegmentThreshold = 5.0
	MinOpacity       = 0.01
	TruncateInterval = 100 * time.Millisecond

	segmentAlpha = 0.6
)

// TrailPoint is a dot dropped at the pointer position.
type TrailPoint struct {
	ID       uint64
	X, Y     float64
	BaseSize float64
	Size     float64
	Color    string
	Opacity  float64
	Created  time.Time
}

// TrailSegment connects two consecutive pointer positions.
type TrailSegment struct {
	ID      uint64
	X1, Y1  float64
	X2, Y2  float64
	Opacity float64
	Created time.Time
}

// Trail follows the pointer. Entries fade by age in Tick; Truncate caps the
// collections by count for input rates that outpace the fade.
type Trail struct {
	Points   []TrailPoint
	Segments []TrailSegment

	lastX, lastY float64
	hasLast      bool

	rng Rand
	ids *ids
}

// NewTrail returns an empty trail drawing randomness from rng.
func NewTrail(rng Rand) *Trail {
	return &Trail{rng: rng, ids: new(ids)}
}

// Move records the pointer at (x, y).
func (t *Trail) Move(x, y float64, now time.Time) {
	size := between(t.rng, 3, 8)
	t.Points = append(t.Points, TrailPoint{
		ID:       t.ids.next(),
		X:        x,
		Y:        y,
		BaseSize: size,
		Size:     size,
		Color:    pick(t.rng, Palette),
		Opacity:  1,
		Created:  now,
	})

	if t.hasLast && math.Hypot(x-t.lastX, y-t.lastY) > SegmentThreshold {
		t.Segments = append(t.Segments, TrailSegment{
			ID:      t.ids.next(),
			X1:      t.lastX,
			Y1:      t.lastY,
			X2:      x,
			Y2:      y,
			Opacity: segmentAlpha,
			Created: now,
		})
	}

	t.lastX, t.lastY = x, y
	t.hasLast = true
}

// Leave forgets the last pointer position so the next Move starts a new
// stroke.
func (t *Trail) Leave() {
	t.hasLast = false
}

// fade is the remaining fraction of life at now, in [0, 1].
func fade(created, now time.Time) float64 {
	age := now.Sub(created)
	if age < 0 {
		age = 0
	}
	return math.Max(0, 1-float64(age)/float64(TrailMaxAge))
}

// Tick recomputes opacity and size from age and drops faded entries.
func (t *Trail) Tick(now time.Time) {
	points := t.Points[:0]
	for _, p := range t.Points {
		p.Opacity = fade(p.Created, now)
		p.Size = p.BaseSize * (0.3 + 0.7*p.Opacity)
		if p.Opacity >= MinOpacity {
			points = append(points, p)
		}
	}
	clear(t.Points[len(points):])
	t.Points = points

	segs := t.Segments[:0]
	for _, s := range t.Segments {
		s.Opacity = segmentAlpha * fade(s.Created, now)
		if s.Opacity >= MinOpacity {
			segs = append(segs, s)
		}
	}
	clear(t.Segments[len(segs):])
	t.Segments = segs
}

// Truncate keeps only the newest MaxPoints points and MaxSegments segments.
func (t *Trail) Truncate() {
	if n := len(t.Points); n > MaxPoints {
		t.Points = append(t.Points[:0], t.Points[n-MaxPoints:]...)
	}
	if n := len(t.Segments); n > MaxSegments {
		t.Segments = append(t.Segments[:0], t.Segments[n-MaxSegments:]...)
	}
}
