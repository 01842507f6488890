package strata

import (
	"fmt"
	"os"
)

// globalDebug gates warning output and per-frame stat reporting.
// No sync — strata is single-threaded.
var globalDebug bool

// SetDebug toggles debug output: texture-type warnings from ImageSurface
// and the compositor's per-frame stat report on stderr.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugReport prints one frame's aggregated stats and the running peaks to
// stderr. Only called when globalDebug is true.
func debugReport(frame, peak FrameStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[strata] blits: %d (peak %d) | recursions: %d (peak %d) | pixels: %d (peak %d)\n",
		frame.Blits, peak.Blits, frame.Recursions, peak.Recursions, frame.Pixels, peak.Pixels)
}
