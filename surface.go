package strata

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is any pixel source the renderer can blit from. *ebiten.Image
// satisfies it directly. Keyed artwork is expected to already carry its
// transparency (color key baked into the alpha channel); the renderer never
// makes per-pixel transparency decisions itself.
type Texture interface {
	Bounds() image.Rectangle
}

// Surface is the destination the renderer paints into. It provides the two
// primitives the compositing algorithm needs: a stateful clip rectangle and
// a rectangular copy. CopyRect must honor the current clip, shrinking the
// source region by the same amount it shrinks the destination.
//
// The clip rectangle follows strict stack discipline across recursive
// render activations: the renderer sets it before drawing and restores it
// after every recursive call returns.
type Surface interface {
	// Clip returns the current clip rectangle.
	Clip() Rect
	// SetClip replaces the current clip rectangle.
	SetClip(r Rect)
	// CopyRect copies srcRect pixels from src to dstRect, clipped to the
	// current clip rectangle. srcRect and dstRect have equal dimensions.
	CopyRect(src Texture, srcRect, dstRect Rect)
}

// ImageSurface implements Surface over an *ebiten.Image destination.
// Clipping uses SubImage, which shares the destination's coordinate space,
// so draw coordinates never need adjusting when the clip changes.
type ImageSurface struct {
	dst    *ebiten.Image
	target *ebiten.Image // dst clipped to the current clip rect
	clip   Rect
	op     ebiten.DrawImageOptions // reused across blits
}

// NewImageSurface wraps dst with its clip rectangle set to the full image
// bounds.
func NewImageSurface(dst *ebiten.Image) *ImageSurface {
	s := &ImageSurface{}
	s.Reset(dst)
	return s
}

// Reset points the surface at a new destination image and resets the clip
// to its full bounds. Lets one ImageSurface be reused across frames even
// though ebiten hands Draw a fresh screen image each time.
func (s *ImageSurface) Reset(dst *ebiten.Image) {
	b := dst.Bounds()
	s.dst = dst
	s.target = dst
	s.clip = Rect{X: b.Min.X, Y: b.Min.Y, Width: b.Dx(), Height: b.Dy()}
}

// Clip returns the current clip rectangle.
func (s *ImageSurface) Clip() Rect {
	return s.clip
}

// SetClip replaces the clip rectangle. An empty clip suppresses all
// subsequent CopyRect calls until the clip is restored.
func (s *ImageSurface) SetClip(r Rect) {
	s.clip = r
	if r.Empty() {
		s.target = nil
		return
	}
	s.target = s.dst.SubImage(image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)).(*ebiten.Image)
}

// CopyRect blits srcRect of src to dstRect, clipped to the current clip
// rectangle. src must be an *ebiten.Image; anything else logs once per call
// and draws nothing (debug aid for miswired layer artwork).
func (s *ImageSurface) CopyRect(src Texture, srcRect, dstRect Rect) {
	if s.target == nil || srcRect.Empty() || dstRect.Empty() {
		return
	}
	img, ok := src.(*ebiten.Image)
	if !ok {
		if globalDebug {
			log.Printf("strata: ImageSurface.CopyRect: texture %T is not an *ebiten.Image", src)
		}
		return
	}
	part := img.SubImage(image.Rect(srcRect.X, srcRect.Y, srcRect.X+srcRect.Width, srcRect.Y+srcRect.Height)).(*ebiten.Image)
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(float64(dstRect.X), float64(dstRect.Y))
	s.target.DrawImage(part, &s.op)
}
