package strata

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

const epsilon = 1e-9

// --- Rect ---

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		expect bool
	}{
		{"normal", Rect{0, 0, 10, 10}, false},
		{"1x1", Rect{5, 5, 1, 1}, false},
		{"zero width", Rect{0, 0, 0, 10}, true},
		{"zero height", Rect{0, 0, 10, 0}, true},
		{"negative width", Rect{0, 0, -4, 10}, true},
		{"negative height", Rect{0, 0, 10, -4}, true},
		{"zero value", Rect{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Empty(); got != tt.expect {
				t.Errorf("Rect%v.Empty() = %v, want %v", tt.r, got, tt.expect)
			}
		})
	}
}

func TestRectArea(t *testing.T) {
	if got := (Rect{0, 0, 8, 4}).Area(); got != 32 {
		t.Errorf("Area = %d, want 32", got)
	}
	if got := (Rect{0, 0, -8, 4}).Area(); got != 0 {
		t.Errorf("empty Area = %d, want 0", got)
	}
}

func TestRectIntersect(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rect
		expect Rect
	}{
		{"overlapping", Rect{50, 50, 100, 100}, Rect{50, 50, 60, 60}},
		{"contained", Rect{20, 20, 10, 10}, Rect{20, 20, 10, 10}},
		{"containing", Rect{0, 0, 200, 200}, Rect{10, 10, 100, 100}},
		{"identical", base, base},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersect(tt.other); got != tt.expect {
				t.Errorf("Intersect = %v, want %v", got, tt.expect)
			}
		})
	}

	// Disjoint rectangles intersect to an empty result.
	if got := base.Intersect(Rect{500, 500, 10, 10}); !got.Empty() {
		t.Errorf("disjoint Intersect = %v, want empty", got)
	}
}

// --- floor division helpers ---

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b    int
		wantDiv int
		wantMod int
	}{
		{7, 4, 1, 3},
		{8, 4, 2, 0},
		{0, 4, 0, 0},
		{-1, 4, -1, 3},
		{-4, 4, -1, 0},
		{-5, 4, -2, 3},
		{-8, 4, -2, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.wantDiv {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.wantDiv)
		}
		if got := floorMod(tt.a, tt.b); got != tt.wantMod {
			t.Errorf("floorMod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.wantMod)
		}
	}
}

// --- Kind ---

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindEmpty, "Empty"},
		{KindKeyed, "Keyed"},
		{KindOpaque, "Opaque"},
		{Kind(99), "Kind(?)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
