package strata

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Mode selects how a layer's position advances each logic tick.
type Mode uint8

const (
	ModeFree    Mode = iota // integrate velocity
	ModeReflect             // integrate velocity, then mirror off the map extent
	ModeLinked              // copy a scaled position from the link target
)

// scrollAnim holds active scroll-to tweens for layer X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Layer is one parallax plane: a tile map reference, a continuous pixel-
// space position, its kinematics mode, and the artwork used to draw its
// tiles. Layers are created through LayerSet.AddLayer and live for the
// whole session; the renderer reads them but only Advance and the stats
// counters ever write to them.
type Layer struct {
	// Map is the shared, immutable tile grid this layer scrolls over.
	Map *TileMap

	// Keyed and Opaque are the artwork strips for the two drawable tile
	// kinds: vertical strips one tile wide, one slice of TileHeight pixels
	// per symbol ordinal. Two handles allow a different image resource per
	// opacity class.
	Keyed  Texture
	Opaque Texture

	// X and Y are the map-space position of the viewport origin, with
	// sub-tile precision.
	X, Y float64
	// VelX and VelY are the scroll velocity in pixels per second.
	// Ignored while the layer is linked.
	VelX, VelY float64

	mode       Mode
	linkTarget int  // index of the layer this one is slaved to, -1 if none
	linkRatio  Vec2 // position multiplier applied to the link target
	next       int  // depth-chain successor index, -1 for a terminal layer

	index int // position of this layer in its set
	set   *LayerSet

	stats       Stats
	scrollTween *scrollAnim
}

// Mode returns the layer's kinematics mode.
func (l *Layer) Mode() Mode {
	return l.mode
}

// SetVelocity sets the scroll velocity in pixels per second and switches
// the layer to free motion.
func (l *Layer) SetVelocity(vx, vy float64) {
	l.VelX, l.VelY = vx, vy
	l.mode = ModeFree
	l.linkTarget = -1
}

// Reflect switches the layer to boundary-reflecting motion: velocity is
// integrated as usual, then the position is mirrored off the map extent
// (map size minus viewport) whenever it crosses either bound, negating the
// velocity on that axis.
func (l *Layer) Reflect() {
	l.mode = ModeReflect
	l.linkTarget = -1
}

// Link slaves this layer's position to target's: every tick, after target
// has advanced, this layer's position becomes target's position times the
// given ratio. A linked layer performs no velocity integration of its own.
// target must belong to the same LayerSet; link chains are validated
// acyclic by LayerSet.Validate.
func (l *Layer) Link(target *Layer, ratioX, ratioY float64) {
	l.mode = ModeLinked
	l.linkTarget = target.index
	l.linkRatio = Vec2{X: ratioX, Y: ratioY}
}

// SetNext names the layer the renderer recurses into beneath this layer's
// non-opaque runs. next must sit deeper in the set (a higher index) so the
// depth chain is acyclic by construction; LayerSet.Validate enforces this.
func (l *Layer) SetNext(next *Layer) {
	l.next = next.index
}

// ClearNext makes this layer terminal: the renderer never recurses past it.
func (l *Layer) ClearNext() {
	l.next = -1
}

// Next returns the depth-chain successor, or nil for a terminal layer.
func (l *Layer) Next() *Layer {
	if l.next < 0 {
		return nil
	}
	return l.set.layers[l.next]
}

// Stats returns a copy of the layer's per-frame counters.
func (l *Layer) Stats() Stats {
	return l.stats
}

// ResetStats zeroes the layer's per-frame counters. Called for every layer
// at the start of each frame, before rendering accumulates.
func (l *Layer) ResetStats() {
	l.stats = Stats{}
}

// ScrollTo animates the layer to the given map position over duration
// seconds, overriding velocity integration until the tween completes.
// Ignored for linked layers, whose position is owned by their target.
func (l *Layer) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	if l.mode == ModeLinked {
		return
	}
	l.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(l.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(l.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo tween is still running.
func (l *Layer) Scrolling() bool {
	return l.scrollTween != nil
}

// advance moves the layer one tick. viewport supplies the reflection
// bounds. Linked layers are advanced by LayerSet.Advance only after their
// target, so the already-updated target position is observed.
func (l *Layer) advance(dt float64, viewport Rect) {
	switch l.mode {
	case ModeLinked:
		target := l.set.layers[l.linkTarget]
		l.X = target.X * l.linkRatio.X
		l.Y = target.Y * l.linkRatio.Y
		return
	case ModeFree, ModeReflect:
		if l.scrollTween != nil {
			l.advanceScroll(dt)
		} else {
			l.X += l.VelX * dt
			l.Y += l.VelY * dt
		}
	}
	if l.mode == ModeReflect {
		l.reflect(viewport)
	}
}

// advanceScroll steps the active ScrollTo tween and clears it on completion.
func (l *Layer) advanceScroll(dt float64) {
	anim := l.scrollTween
	if !anim.doneX {
		x, done := anim.tweenX.Update(float32(dt))
		l.X = float64(x)
		anim.doneX = done
	}
	if !anim.doneY {
		y, done := anim.tweenY.Update(float32(dt))
		l.Y = float64(y)
		anim.doneY = done
	}
	if anim.doneX && anim.doneY {
		l.scrollTween = nil
	}
}

// reflect mirrors the position off the scrollable extent. Mirroring rather
// than clamping corrects the overshoot introduced by the discrete time
// step; a single mirror per axis per tick is sufficient.
func (l *Layer) reflect(viewport Rect) {
	maxX := float64(l.Map.Width()*l.set.TileWidth - viewport.Width)
	maxY := float64(l.Map.Height()*l.set.TileHeight - viewport.Height)
	if maxX > 0 {
		if l.X >= maxX {
			l.VelX = -l.VelX
			l.X = 2*maxX - l.X
		} else if l.X <= 0 {
			l.VelX = -l.VelX
			l.X = -l.X
		}
	}
	if maxY > 0 {
		if l.Y >= maxY {
			l.VelY = -l.VelY
			l.Y = 2*maxY - l.Y
		} else if l.Y <= 0 {
			l.VelY = -l.VelY
			l.Y = -l.Y
		}
	}
}

// originPixels returns the integer pixel position of the layer origin.
// Positions keep sub-pixel precision for smooth slow scrolling; tile math
// works on the floored value so negative positions round toward deeper
// tiles, not toward zero.
func (l *Layer) originPixels() (int, int) {
	return int(math.Floor(l.X)), int(math.Floor(l.Y))
}
