package effects

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestMoveAddsSegmentPastThreshold(t *testing.T) {
	tr := NewTrail(fixedRand{f: 0.5})

	tr.Move(10, 10, epoch)
	if len(tr.Points) != 1 || len(tr.Segments) != 0 {
		t.Fatalf("first move: %d points, %d segments", len(tr.Points), len(tr.Segments))
	}

	tr.Move(13, 14, epoch) // distance exactly 5
	if len(tr.Segments) != 0 {
		t.Fatalf("move within threshold added a segment")
	}

	tr.Move(30, 14, epoch)
	if len(tr.Points) != 3 || len(tr.Segments) != 1 {
		t.Fatalf("far move: %d points, %d segments", len(tr.Points), len(tr.Segments))
	}
	s := tr.Segments[0]
	if s.X1 != 13 || s.Y1 != 14 || s.X2 != 30 || s.Y2 != 14 {
		t.Errorf("segment = %+v, want (13,14)-(30,14)", s)
	}
	if !s.Created.Equal(epoch) {
		t.Errorf("segment created = %v, want %v", s.Created, epoch)
	}
}

func TestLeaveStartsNewStroke(t *testing.T) {
	tr := NewTrail(fixedRand{f: 0.5})
	tr.Move(0, 0, epoch)
	tr.Leave()
	tr.Move(100, 100, epoch)
	if len(tr.Segments) != 0 {
		t.Fatalf("segment drawn across a pointer leave")
	}
}

func TestTrailFadesByAge(t *testing.T) {
	tr := NewTrail(fixedRand{f: 0.5})
	tr.Move(0, 0, epoch)
	tr.Move(50, 0, epoch)

	tr.Tick(epoch.Add(TrailMaxAge / 2))
	if len(tr.Points) != 2 || len(tr.Segments) != 1 {
		t.Fatalf("half age: %d points, %d segments", len(tr.Points), len(tr.Segments))
	}
	p := tr.Points[0]
	if !near(p.Opacity, 0.5) {
		t.Errorf("point opacity = %v, want 0.5", p.Opacity)
	}
	if !near(p.Size, p.BaseSize*0.65) {
		t.Errorf("point size = %v, want %v", p.Size, p.BaseSize*0.65)
	}
	if !near(tr.Segments[0].Opacity, segmentAlpha*0.5) {
		t.Errorf("segment opacity = %v, want %v", tr.Segments[0].Opacity, segmentAlpha*0.5)
	}

	tr.Tick(epoch.Add(TrailMaxAge))
	if len(tr.Points) != 0 || len(tr.Segments) != 0 {
		t.Fatalf("expired trail kept %d points, %d segments", len(tr.Points), len(tr.Segments))
	}
}

func TestTruncateBoundsCounts(t *testing.T) {
	tr := NewTrail(NewRand(3))
	for i := 0; i < 500; i++ {
		tr.Move(float64(i*10), 0, epoch)
	}
	if len(tr.Points) != 500 {
		t.Fatalf("points before truncate = %d", len(tr.Points))
	}

	newest := tr.Points[len(tr.Points)-1].ID
	tr.Truncate()

	if len(tr.Points) != MaxPoints {
		t.Errorf("points = %d, want %d", len(tr.Points), MaxPoints)
	}
	if len(tr.Segments) != MaxSegments {
		t.Errorf("segments = %d, want %d", len(tr.Segments), MaxSegments)
	}
	if got := tr.Points[len(tr.Points)-1].ID; got != newest {
		t.Errorf("newest point id = %d, want %d", got, newest)
	}
	for i := 1; i < len(tr.Points); i++ {
		if tr.Points[i].ID <= tr.Points[i-1].ID {
			t.Fatalf("points out of order after truncate")
		}
	}

	tr.Truncate()
	if len(tr.Points) != MaxPoints {
		t.Errorf("second truncate changed count to %d", len(tr.Points))
	}
}
