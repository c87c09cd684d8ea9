// Package effects implements the decorative animation layer of the site:
// click bursts, the pointer trail and the starfield background.
//
// Every engine is advanced by a plain Tick method and never schedules
// itself. A Driver owns the frame timing, the input channel and
// cancellation, so the state logic can be stepped directly in tests.
package effects

import "math/rand"

// Rand is the random source used for every randomized visual parameter.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a Rand seeded with seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// between returns a value in [lo, hi).
func between(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func pick[T any](r Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// Palette used by bursts and trail points.
var Palette = []string{
	"#60a5fa", // blue
	"#a78bfa", // violet
	"#f472b6", // pink
	"#fbbf24", // amber
	"#34d399", // green
}

// ids hands out unique identifiers for keyed redraw.
type ids uint64

func (s *ids) next() uint64 {
	*s++
	return uint64(*s)
}
