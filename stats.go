package strata

// Stats counts the rendering work one layer performed in a single frame.
// The counters are reset before each frame and incremented only by Render.
type Stats struct {
	Blits      int // CopyRect calls issued for this layer's tiles
	Recursions int // recursive Render calls this layer initiated
	Pixels     int // clip-intersected area painted, in pixels
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Blits += other.Blits
	s.Recursions += other.Recursions
	s.Pixels += other.Pixels
}

// FrameStats aggregates one frame's counters across a whole layer set.
// Aggregation is a reporting concern: the renderer only maintains the
// per-layer counters, and the frame loop samples them after rendering.
type FrameStats struct {
	Blits      int
	Recursions int
	Pixels     int
}

// sampleStats sums the per-layer counters of set into a FrameStats.
func sampleStats(set *LayerSet) FrameStats {
	var f FrameStats
	for _, l := range set.layers {
		f.Blits += l.stats.Blits
		f.Recursions += l.stats.Recursions
		f.Pixels += l.stats.Pixels
	}
	return f
}

// raise lifts each running peak to the corresponding value in frame.
func (f *FrameStats) raise(frame FrameStats) {
	f.Blits = max(f.Blits, frame.Blits)
	f.Recursions = max(f.Recursions, frame.Recursions)
	f.Pixels = max(f.Pixels, frame.Pixels)
}
