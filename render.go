package strata

// Render paints rect of dst with the layer at index and, recursively, with
// every layer beneath it along the depth chain. Pass ScreenRect to render
// the surface's whole current clip region. Index 0 is the frontmost layer.
//
// The algorithm walks the layer's visible tiles row by row, merging each
// row into horizontal runs of a single coarse class: Opaque, or NotOpaque
// (Keyed and Empty merged). Beneath a NotOpaque run the next layer is
// rendered first, into exactly the run's rectangle; beneath an Opaque run
// nothing deeper is ever touched, because the run will fully cover it.
// That skip is the overdraw elimination the whole renderer exists for.
//
// The set must have passed Validate; Render performs no configuration
// checks of its own.
func Render(set *LayerSet, index int, dst Surface, rect Rect) {
	if index < 0 || index >= len(set.layers) {
		return
	}

	// Clip setup. The degenerate-rect early exit is load-bearing: empty
	// rectangles must never reach the tile walk, and this return happens
	// before the clip is modified so sibling runs still see an intact
	// clip.
	saved := dst.Clip()
	local := saved
	if rect != ScreenRect {
		local = rect.Intersect(saved)
	}
	if local.Empty() {
		return
	}
	dst.SetClip(local)

	layer := set.layers[index]
	m := layer.Map
	tw, th := set.TileWidth, set.TileHeight

	// Map-space origin visible at the clip's top-left, and the sub-tile
	// fine scroll offset. floorMod keeps the fine offset non-negative for
	// negative positions.
	px, py := layer.originPixels()
	mapX := px + local.X
	mapY := py + local.Y
	fineX := floorMod(mapX, tw)
	fineY := floorMod(mapY, th)
	tileX0 := floorDiv(mapX, tw)
	tileY0 := floorDiv(mapY, th)

	right := local.X + local.Width
	bottom := local.Y + local.Height

	ty := tileY0
	for y := local.Y - fineY; y < bottom; y += th {
		tx := tileX0
		x := local.X - fineX
		for x < right {
			// Tile indices wrap toroidally inside SymbolAt, so reflecting
			// layers still address the map as an infinite tiling.
			opaque := m.Classify(m.SymbolAt(tx, ty)) == KindOpaque

			// Extend the run while the coarse class holds and the next
			// tile still starts inside the clip. A partial tile at the
			// right edge terminates the run but remains part of it.
			run := 1
			for x+run*tw < right &&
				(m.Classify(m.SymbolAt(tx+run, ty)) == KindOpaque) == opaque {
				run++
			}
			runRect := Rect{X: x, Y: y, Width: run * tw, Height: th}

			if !opaque && layer.next >= 0 {
				layer.stats.Recursions++
				Render(set, layer.next, dst, runRect)
				// The recursive call restored its own clip, but siblings
				// depend on localClip being active; restore explicitly on
				// every return path.
				dst.SetClip(local)
			}

			layer.drawRun(dst, m, tx, ty, run, x, y, tw, th, local)

			tx += run
			x += run * tw
		}
		ty++
	}

	dst.SetClip(saved)
}

// drawRun blits the drawable tiles of one run at destination row y. Blank
// tiles short-circuit before classification and consume no blit and no
// pixels; other Empty-classified tiles are skipped after classification.
// Keyed and Opaque tiles select their artwork strip slice by symbol
// ordinal.
func (l *Layer) drawRun(dst Surface, m *TileMap, tx, ty, run, x, y, tw, th int, clip Rect) {
	for i := 0; i < run; i++ {
		sym := m.SymbolAt(tx+i, ty)
		if sym == SymbolBlank {
			continue
		}
		kind := m.Classify(sym)
		if kind == KindEmpty {
			continue
		}
		tex := l.Keyed
		if kind == KindOpaque {
			tex = l.Opaque
		}
		ord := m.Ordinal(sym)
		srcRect := Rect{X: 0, Y: ord * th, Width: tw, Height: th}
		dstRect := Rect{X: x + i*tw, Y: y, Width: tw, Height: th}
		dst.CopyRect(tex, srcRect, dstRect)
		l.stats.Blits++
		l.stats.Pixels += dstRect.Intersect(clip).Area()
	}
}
