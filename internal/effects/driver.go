package effects

import (
	"context"
	"time"
)

// Surface receives one Frame per tick.
type Surface interface {
	Draw(Frame)
}

// Driver runs a Scene at a fixed frame rate. All scene mutation happens on
// the goroutine that called Run.
type Driver struct {
	Scene    *Scene
	Interval time.Duration
	Now      func() time.Time
}

// NewDriver returns a driver ticking scene fps times per second.
func NewDriver(scene *Scene, fps int) *Driver {
	if fps <= 0 {
		fps = 60
	}
	return &Driver{
		Scene:    scene,
		Interval: time.Second / time.Duration(fps),
		Now:      time.Now,
	}
}

// Step advances the scene once and draws it. A nil surface skips drawing.
func (d *Driver) Step(surface Surface) {
	d.Scene.Tick(d.Now())
	if surface == nil {
		return
	}
	surface.Draw(d.Scene.Frame())
}

// Run ticks until ctx is cancelled or input is closed. Input events are
// applied between frames. The ticker is released on every return path.
func (d *Driver) Run(ctx context.Context, input <-chan Input, surface Surface) error {
	ticker := time.NewTicker(d.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case in, ok := <-input:
			if !ok {
				return nil
			}
			d.Scene.Apply(in, d.Now())
		case <-ticker.C:
			d.Step(surface)
		}
	}
}
