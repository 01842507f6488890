package strata

// Vec2 is a 2D vector used for positions, velocities, and link ratios.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in integer screen pixels. The
// coordinate system has its origin at the top-left, with Y increasing
// downward. A Rect with non-positive Width or Height is empty.
type Rect struct {
	X, Y, Width, Height int
}

// ScreenRect is the sentinel target rectangle meaning "use the destination
// surface's current clip rectangle as-is". Pass it to Render to paint the
// whole visible area.
var ScreenRect = Rect{Width: -1, Height: -1}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns Width*Height, or 0 for an empty rectangle.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Intersect returns the overlap of r and other. The result may be empty;
// callers must check Empty before using it as a clip or draw target.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Kind is the opacity classification of a tile symbol.
type Kind uint8

const (
	KindEmpty  Kind = iota // nothing here; never drawn
	KindKeyed              // partially transparent via the artwork's color key
	KindOpaque             // fully covers whatever is beneath
)

// String returns the kind name for debug output.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindKeyed:
		return "Keyed"
	case KindOpaque:
		return "Opaque"
	default:
		return "Kind(?)"
	}
}

// Reserved symbols. SymbolBlank is the hole in every map; SymbolOpaque is
// the one symbol that classifies as fully covering.
const (
	SymbolBlank  byte = ' '
	SymbolOpaque byte = '0'
)

// floorDiv divides a by b rounding toward negative infinity. b must be
// positive. Used for tile index math where positions may be negative.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns a mod b with the sign of b. b must be positive, so the
// result is always in [0, b).
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && (a < 0) != (b < 0) {
		m += b
	}
	return m
}
