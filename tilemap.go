package strata

import (
	"fmt"
	"strings"
)

// TileMap is an immutable grid of tile symbols with toroidal addressing:
// lookups wrap modulo the map size in both axes, so every map tiles the
// plane infinitely. Maps are shared by reference between layers that use
// the same artwork and are never mutated after construction.
type TileMap struct {
	alphabet string // translation string; a symbol's ordinal is its index here
	symbols  []byte // row-major, len = width * height
	width    int    // map width in tiles
	height   int    // map height in tiles
}

// ParseTileMap builds a TileMap from an alphabet-translation string and a
// row-major character grid, one string per row. All rows must have the same
// length; row count and row length define the map height and width in tiles.
//
// The alphabet assigns each symbol its ordinal (its index in the string),
// which selects the artwork strip slice at draw time. Symbols outside the
// alphabet are legal in the grid: they classify as Empty and are never
// drawn, so they need no ordinal.
func ParseTileMap(alphabet string, rows []string) (*TileMap, error) {
	if alphabet == "" {
		return nil, fmt.Errorf("strata: tile map alphabet is empty")
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("strata: tile map has no rows")
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("strata: tile map row 0 is empty")
	}
	symbols := make([]byte, 0, width*len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("strata: tile map row %d has length %d, want %d", i, len(row), width)
		}
		symbols = append(symbols, row...)
	}
	return &TileMap{
		alphabet: alphabet,
		symbols:  symbols,
		width:    width,
		height:   len(rows),
	}, nil
}

// Width returns the map width in tiles.
func (m *TileMap) Width() int { return m.width }

// Height returns the map height in tiles.
func (m *TileMap) Height() int { return m.height }

// SymbolAt returns the symbol at tile coordinates (tx, ty), wrapping both
// axes modulo the map size. Negative coordinates are valid.
func (m *TileMap) SymbolAt(tx, ty int) byte {
	tx = floorMod(tx, m.width)
	ty = floorMod(ty, m.height)
	return m.symbols[ty*m.width+tx]
}

// Ordinal returns the artwork strip slice index for a symbol: its distance
// from the alphabet's zero symbol. Returns -1 for symbols outside the
// alphabet, which are never drawn.
func (m *TileMap) Ordinal(sym byte) int {
	return strings.IndexByte(m.alphabet, sym)
}

// MaxOrdinal returns the largest ordinal of any symbol actually present in
// the grid, or -1 if the grid holds only out-of-alphabet symbols. Used at
// validation time to check that artwork strips are tall enough.
func (m *TileMap) MaxOrdinal() int {
	best := -1
	for _, sym := range m.symbols {
		if ord := m.Ordinal(sym); ord > best {
			best = ord
		}
	}
	return best
}

// hasSymbol reports whether the grid contains sym anywhere.
func (m *TileMap) hasSymbol(sym byte) bool {
	for _, s := range m.symbols {
		if s == sym {
			return true
		}
	}
	return false
}

// Classify maps a symbol to its opacity kind. The classification is fixed
// for the lifetime of the map: SymbolOpaque ('0') is the single Opaque
// symbol, SymbolBlank is always Empty, every other alphabet symbol is
// Keyed, and any symbol outside the alphabet falls back to Empty.
func (m *TileMap) Classify(sym byte) Kind {
	switch {
	case sym == SymbolOpaque:
		return KindOpaque
	case sym == SymbolBlank:
		return KindEmpty
	case m.Ordinal(sym) >= 0:
		return KindKeyed
	default:
		return KindEmpty
	}
}
