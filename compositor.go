package strata

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Compositor owns the per-frame protocol around a LayerSet: one logic tick
// advances every layer's kinematics, resets the statistics, and one draw
// renders the frontmost layer (recursively, through the depth chain) into
// the viewport. It also samples the per-layer counters into frame totals
// and running peaks, which belong to the surrounding loop rather than the
// renderer.
type Compositor struct {
	// Viewport is the screen-space rectangle the set renders into. It also
	// provides the bounds for reflecting layers.
	Viewport Rect

	set     *LayerSet
	surface *ImageSurface
	frame   FrameStats
	peak    FrameStats
}

// NewCompositor validates set and wraps it with the given viewport.
// Validation failures are configuration defects and are returned here, at
// setup, so the render path never has to discover them mid-recursion.
func NewCompositor(set *LayerSet, viewport Rect) (*Compositor, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &Compositor{
		Viewport: viewport,
		set:      set,
		surface:  &ImageSurface{},
	}, nil
}

// Set returns the compositor's layer set.
func (c *Compositor) Set() *LayerSet {
	return c.set
}

// Update advances one logic tick: kinematics for every layer, then a stats
// reset so the next Draw accumulates into clean counters.
func (c *Compositor) Update(dt float64) {
	c.set.Advance(dt, c.Viewport)
	c.set.ResetStats()
}

// Draw renders the layer stack into screen through the viewport, then
// samples the frame's statistics. The screen's clip is left as Draw found
// it.
func (c *Compositor) Draw(screen *ebiten.Image) {
	c.surface.Reset(screen)
	Render(c.set, 0, c.surface, c.Viewport)
	c.frame = sampleStats(c.set)
	c.peak.raise(c.frame)
	if globalDebug {
		debugReport(c.frame, c.peak)
	}
}

// FrameStats returns the aggregated counters of the last drawn frame.
func (c *Compositor) FrameStats() FrameStats {
	return c.frame
}

// PeakStats returns the running per-counter maxima across all frames drawn
// so far.
func (c *Compositor) PeakStats() FrameStats {
	return c.peak
}

// RunConfig configures the window for Run.
type RunConfig struct {
	Title  string
	Width  int // logical screen width in pixels
	Height int // logical screen height in pixels
}

// runGame adapts a Compositor to ebiten.Game for Run.
type runGame struct {
	c   *Compositor
	cfg RunConfig
}

func (g *runGame) Update() error {
	g.c.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *runGame) Draw(screen *ebiten.Image) {
	g.c.Draw(screen)
}

func (g *runGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run creates a window and drives the layer set with the standard frame
// protocol until the window closes. For anything beyond a plain viewport
// (custom Δt, split screens, UI on top), implement ebiten.Game yourself
// and use a Compositor directly.
func Run(set *LayerSet, cfg RunConfig) error {
	c, err := NewCompositor(set, Rect{Width: cfg.Width, Height: cfg.Height})
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&runGame{c: c, cfg: cfg})
}
