package effects

import "testing"

func TestNewStarfieldPopulation(t *testing.T) {
	f := NewStarfield(400, 300, NewRand(1))
	if got, want := len(f.Stars), 30; got != want {
		t.Errorf("stars = %d, want %d", got, want)
	}
	if len(f.Motes) != MoteCount {
		t.Errorf("motes = %d, want %d", len(f.Motes), MoteCount)
	}
	for i, s := range f.Stars {
		if s.X < 0 || s.X > 400 || s.Y < 0 || s.Y > 300 {
			t.Errorf("star %d outside viewport: (%v, %v)", i, s.X, s.Y)
		}
	}
}

func TestStarWrapsAtLeftEdge(t *testing.T) {
	f := NewStarfield(400, 300, fixedRand{f: 0.5})
	count := len(f.Stars)
	f.Stars[0] = Star{X: 0, Y: 10, Size: 1, Speed: 10}

	f.Tick(0.05) // x = -0.5, still visible
	if s := f.Stars[0]; !near(s.X, -0.5) || s.Y != 10 {
		t.Fatalf("star moved to (%v, %v), want (-0.5, 10)", s.X, s.Y)
	}

	f.Tick(0.1) // x = -1.5 < -size
	s := f.Stars[0]
	if s.X != 401 {
		t.Errorf("wrapped x = %v, want 401", s.X)
	}
	if s.Y != 150 {
		t.Errorf("wrapped y = %v, want 150", s.Y)
	}
	if len(f.Stars) != count {
		t.Errorf("star count changed from %d to %d", count, len(f.Stars))
	}
}

func TestTwinkleStaysInRange(t *testing.T) {
	f := NewStarfield(800, 600, NewRand(2))
	for i := 0; i < 200; i++ {
		f.Tick(1.0 / 60)
		for _, s := range f.Stars {
			if s.Opacity < 0.1 || s.Opacity > 1 {
				t.Fatalf("opacity %v out of range", s.Opacity)
			}
		}
	}
}

func TestMoteRespawns(t *testing.T) {
	f := NewStarfield(400, 300, fixedRand{f: 0.5})

	f.Motes[0].Life = 0.01
	f.Tick(0.1)
	if m := f.Motes[0]; m.Life != m.MaxLife {
		t.Errorf("expired mote not respawned: life %v of %v", m.Life, m.MaxLife)
	}

	f.Motes[1] = Mote{X: 399, Y: 10, VX: 100, Life: 5, MaxLife: 10}
	f.Tick(0.1)
	if m := f.Motes[1]; m.X != 200 || m.Y != 150 {
		t.Errorf("escaped mote at (%v, %v), want respawn at (200, 150)", m.X, m.Y)
	}
	if len(f.Motes) != MoteCount {
		t.Errorf("motes = %d, want %d", len(f.Motes), MoteCount)
	}
}

func TestStarCountMonotonicWithArea(t *testing.T) {
	sizes := [][2]float64{{0, 0}, {100, 100}, {320, 240}, {800, 600}, {1280, 720}, {1920, 1080}, {3840, 2160}}
	prev := -1
	for _, sz := range sizes {
		n := StarCount(sz[0], sz[1])
		if n < prev {
			t.Fatalf("StarCount(%v, %v) = %d, less than %d for a smaller area", sz[0], sz[1], n, prev)
		}
		prev = n
	}
}

func TestResizeRegeneratesStars(t *testing.T) {
	f := NewStarfield(400, 300, NewRand(4))

	f.Resize(1600, 900)
	if got, want := len(f.Stars), StarCount(1600, 900); got != want {
		t.Errorf("stars after grow = %d, want %d", got, want)
	}

	f.Resize(200, 100)
	if got, want := len(f.Stars), StarCount(200, 100); got != want {
		t.Errorf("stars after shrink = %d, want %d", got, want)
	}
	for i, m := range f.Motes {
		if m.X < 0 || m.X > 200 || m.Y < 0 || m.Y > 100 {
			t.Errorf("mote %d left outside viewport at (%v, %v)", i, m.X, m.Y)
		}
	}
}
