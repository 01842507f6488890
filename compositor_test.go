package strata

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func newTestCompositor(t *testing.T) (*Compositor, *Layer, *Layer) {
	t.Helper()
	front := uniformMap(t, ' ', 8, 8)
	back := uniformMap(t, '0', 8, 8)
	set := NewLayerSet(32, 32)
	keyed := ebiten.NewImage(32, 10*32)
	opaque := ebiten.NewImage(32, 10*32)
	f := set.AddLayer(front, nil, nil)
	b := set.AddLayer(back, keyed, opaque)
	f.SetNext(b)
	f.SetVelocity(32, 0)

	c, err := NewCompositor(set, Rect{Width: 64, Height: 64})
	if err != nil {
		t.Fatalf("NewCompositor: %v", err)
	}
	return c, f, b
}

func TestNewCompositorRejectsBadSet(t *testing.T) {
	set := NewLayerSet(32, 32) // empty set is a configuration defect
	if _, err := NewCompositor(set, Rect{Width: 64, Height: 64}); err == nil {
		t.Fatal("expected validation error for empty set")
	}
}

func TestCompositorUpdateAdvancesAndResets(t *testing.T) {
	c, f, _ := newTestCompositor(t)
	f.stats = Stats{Blits: 99}

	c.Update(0.5)
	if !approxEqual(f.X, 16, epsilon) {
		t.Errorf("front X = %f, want 16", f.X)
	}
	if f.Stats() != (Stats{}) {
		t.Errorf("stats after Update = %+v, want reset", f.Stats())
	}
}

func TestCompositorDrawSamplesStats(t *testing.T) {
	c, f, b := newTestCompositor(t)
	screen := ebiten.NewImage(64, 64)

	c.Update(0)
	c.Draw(screen)

	fs := c.FrameStats()
	// Blank front recurses once per row; opaque back paints the viewport.
	if fs.Recursions != 2 {
		t.Errorf("frame Recursions = %d, want 2", fs.Recursions)
	}
	if fs.Pixels != 64*64 {
		t.Errorf("frame Pixels = %d, want %d", fs.Pixels, 64*64)
	}
	if fs.Blits != f.Stats().Blits+b.Stats().Blits {
		t.Errorf("frame Blits = %d, want per-layer sum", fs.Blits)
	}
}

func TestCompositorTracksPeaks(t *testing.T) {
	c, f, _ := newTestCompositor(t)
	screen := ebiten.NewImage(64, 64)

	c.Update(0)
	c.Draw(screen)
	first := c.FrameStats()

	// Shrink the work: render only while the front fully occludes.
	f.ClearNext()
	c.Update(0)
	c.Draw(screen)

	peak := c.PeakStats()
	if peak.Recursions != first.Recursions {
		t.Errorf("peak Recursions = %d, want %d held from the first frame", peak.Recursions, first.Recursions)
	}
	if got := c.FrameStats().Recursions; got != 0 {
		t.Errorf("frame Recursions = %d, want 0 after ClearNext", got)
	}
}
