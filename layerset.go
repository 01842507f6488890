package strata

import "fmt"

// LayerSet is an ordered, fixed collection of layers. Index 0 is the
// frontmost plane (rendered first, visually on top); the depth chain walks
// toward higher indices. Sets are assembled once at startup, validated,
// and never resized afterward.
//
// Layers are stored arena-style and refer to each other by index, so the
// depth chain and link targets can never dangle relative to the set.
type LayerSet struct {
	// TileWidth and TileHeight are the tile dimensions in pixels, shared
	// by every layer in the set.
	TileWidth  int
	TileHeight int

	layers  []*Layer
	updated []bool // per-tick scratch for dependency-ordered Advance
}

// NewLayerSet creates an empty layer set with the given tile dimensions.
func NewLayerSet(tileWidth, tileHeight int) *LayerSet {
	return &LayerSet{
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
	}
}

// AddLayer appends a layer to the back of the set and returns it for
// configuration. The layer starts at position (0,0), at rest, terminal
// (no depth-chain successor), and unlinked.
func (s *LayerSet) AddLayer(m *TileMap, keyed, opaque Texture) *Layer {
	l := &Layer{
		Map:        m,
		Keyed:      keyed,
		Opaque:     opaque,
		next:       -1,
		linkTarget: -1,
		index:      len(s.layers),
		set:        s,
	}
	s.layers = append(s.layers, l)
	s.updated = append(s.updated, false)
	return l
}

// Len returns the number of layers in the set.
func (s *LayerSet) Len() int {
	return len(s.layers)
}

// Layer returns the layer at index i (0 = frontmost).
func (s *LayerSet) Layer(i int) *Layer {
	return s.layers[i]
}

// Validate checks the set for configuration defects and must be called
// (and succeed) before the first Render. Every defect it reports would
// otherwise surface mid-recursion as an artifact, a bad texture index, or
// unbounded recursion, so construction is the only acceptable place to
// fail.
func (s *LayerSet) Validate() error {
	if s.TileWidth <= 0 || s.TileHeight <= 0 {
		return fmt.Errorf("strata: tile size %dx%d is not positive", s.TileWidth, s.TileHeight)
	}
	if len(s.layers) == 0 {
		return fmt.Errorf("strata: layer set is empty")
	}
	for i, l := range s.layers {
		if l.Map == nil {
			return fmt.Errorf("strata: layer %d has no tile map", i)
		}
		// The depth chain must point strictly deeper, which makes it
		// acyclic and finite by construction.
		if l.next >= 0 && l.next <= i {
			return fmt.Errorf("strata: layer %d depth chain points to layer %d; next must be deeper", i, l.next)
		}
		if l.next >= len(s.layers) {
			return fmt.Errorf("strata: layer %d depth chain points past the set (%d of %d)", i, l.next, len(s.layers))
		}
		if err := s.validateLinks(i); err != nil {
			return err
		}
		if err := s.validateArtwork(i); err != nil {
			return err
		}
	}
	return nil
}

// validateLinks walks the link chain from layer i and rejects cycles and
// self-links. Links may point in either direction within the set; Advance
// resolves the ordering at run time, so only acyclicity matters here.
func (s *LayerSet) validateLinks(i int) error {
	seen := make(map[int]bool)
	for j := i; s.layers[j].mode == ModeLinked; j = s.layers[j].linkTarget {
		t := s.layers[j].linkTarget
		if t < 0 || t >= len(s.layers) {
			return fmt.Errorf("strata: layer %d links to invalid layer %d", j, t)
		}
		if t == j {
			return fmt.Errorf("strata: layer %d links to itself", j)
		}
		if seen[j] {
			return fmt.Errorf("strata: link cycle through layer %d", j)
		}
		seen[j] = true
	}
	return nil
}

// validateArtwork checks that each artwork strip a layer's map can demand
// actually exists and is tall enough for the map's largest symbol ordinal.
func (s *LayerSet) validateArtwork(i int) error {
	l := s.layers[i]
	m := l.Map
	if m.hasSymbol(SymbolOpaque) && m.Ordinal(SymbolOpaque) < 0 {
		return fmt.Errorf("strata: layer %d map uses %q but its alphabet gives it no ordinal", i, SymbolOpaque)
	}
	need := (m.MaxOrdinal() + 1) * s.TileHeight
	hasKeyed := false
	hasOpaque := false
	for ty := 0; ty < m.Height(); ty++ {
		for tx := 0; tx < m.Width(); tx++ {
			switch m.Classify(m.SymbolAt(tx, ty)) {
			case KindKeyed:
				hasKeyed = true
			case KindOpaque:
				hasOpaque = true
			}
		}
	}
	if hasKeyed {
		if err := checkStrip(l.Keyed, "keyed", i, s.TileWidth, need); err != nil {
			return err
		}
	}
	if hasOpaque {
		if err := checkStrip(l.Opaque, "opaque", i, s.TileWidth, need); err != nil {
			return err
		}
	}
	return nil
}

// checkStrip verifies one artwork strip covers the required slice range.
func checkStrip(tex Texture, class string, layer, tileWidth, need int) error {
	if tex == nil {
		return fmt.Errorf("strata: layer %d draws %s tiles but has no %s artwork", layer, class, class)
	}
	b := tex.Bounds()
	if b.Dx() < tileWidth || b.Dy() < need {
		return fmt.Errorf("strata: layer %d %s artwork is %dx%d, need at least %dx%d",
			layer, class, b.Dx(), b.Dy(), tileWidth, need)
	}
	return nil
}

// Advance moves every layer one logic tick. viewport supplies the bounds
// used by reflecting layers. Linked layers always observe their target's
// already-updated position: targets are advanced before their dependents
// regardless of set order.
func (s *LayerSet) Advance(dt float64, viewport Rect) {
	for i := range s.updated {
		s.updated[i] = false
	}
	for i := range s.layers {
		s.advanceOne(i, dt, viewport)
	}
}

// advanceOne advances layer i, recursing into its link target first.
// Validate has rejected link cycles, so the recursion terminates.
func (s *LayerSet) advanceOne(i int, dt float64, viewport Rect) {
	if s.updated[i] {
		return
	}
	s.updated[i] = true
	l := s.layers[i]
	if l.mode == ModeLinked {
		s.advanceOne(l.linkTarget, dt, viewport)
	}
	l.advance(dt, viewport)
}

// ResetStats zeroes every layer's per-frame counters. Call at the start of
// each frame, after Advance and before Render.
func (s *LayerSet) ResetStats() {
	for _, l := range s.layers {
		l.ResetStats()
	}
}
