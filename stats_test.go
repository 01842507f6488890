package strata

import "testing"

func TestStatsAdd(t *testing.T) {
	s := Stats{Blits: 1, Recursions: 2, Pixels: 3}
	s.Add(Stats{Blits: 10, Recursions: 20, Pixels: 30})
	if s != (Stats{Blits: 11, Recursions: 22, Pixels: 33}) {
		t.Errorf("Add = %+v", s)
	}
}

func TestSampleStats(t *testing.T) {
	m := mustMap(t, testAlphabet, "01")
	set := NewLayerSet(32, 32)
	strip := fakeTexture{32, 2 * 32}
	a := set.AddLayer(m, strip, strip)
	b := set.AddLayer(m, strip, strip)
	a.stats = Stats{Blits: 2, Recursions: 1, Pixels: 100}
	b.stats = Stats{Blits: 3, Recursions: 0, Pixels: 50}

	got := sampleStats(set)
	want := FrameStats{Blits: 5, Recursions: 1, Pixels: 150}
	if got != want {
		t.Errorf("sampleStats = %+v, want %+v", got, want)
	}
}

func TestFrameStatsRaise(t *testing.T) {
	peak := FrameStats{Blits: 10, Recursions: 5, Pixels: 1000}
	peak.raise(FrameStats{Blits: 3, Recursions: 8, Pixels: 500})
	want := FrameStats{Blits: 10, Recursions: 8, Pixels: 1000}
	if peak != want {
		t.Errorf("raise = %+v, want %+v (per-counter maxima)", peak, want)
	}
}
