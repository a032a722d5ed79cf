package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PlacementGrid buckets world-space placements in a dense uniform grid for
// the neighbourhood scans of cluster generation. Unlike the sampler's index
// a cell holds any number of placements, appended in insertion order; that
// order is what makes a fixed seed reproduce a pass exactly.
type PlacementGrid struct {
	w, h     int
	cellSize float64
	cells    [][]*Placement
}

func newPlacementGrid(w, h int, cellSize float64) *PlacementGrid {
	return &PlacementGrid{
		w:        w,
		h:        h,
		cellSize: cellSize,
		cells:    make([][]*Placement, w*h),
	}
}

// Width returns the number of columns in the grid.
func (g *PlacementGrid) Width() int { return g.w }

// Height returns the number of rows in the grid.
func (g *PlacementGrid) Height() int { return g.h }

// CellSize returns the side length of one cell in world units.
func (g *PlacementGrid) CellSize() float64 { return g.cellSize }

// CellAt returns the cell coordinate a world position falls in. The result
// is not necessarily in range; pass it to Contains or At, which check.
func (g *PlacementGrid) CellAt(pos mgl64.Vec2) CellPos {
	return CellPos{
		X: int(math.Floor(pos[0] / g.cellSize)),
		Y: int(math.Floor(pos[1] / g.cellSize)),
	}
}

// Contains reports whether c is a valid cell coordinate.
func (g *PlacementGrid) Contains(c CellPos) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// At returns the placements bucketed in cell c in insertion order, or nil
// if c is out of range. The returned slice must not be mutated.
func (g *PlacementGrid) At(c CellPos) []*Placement {
	if !g.Contains(c) {
		return nil
	}
	return g.cells[c.Y*g.w+c.X]
}

// insert derives p's cell from its position and appends it to that bucket.
// It reports false, leaving the grid untouched, when the position falls
// outside the valid cell range; callers drop such placements at the map
// boundary.
func (g *PlacementGrid) insert(p *Placement) bool {
	c := g.CellAt(p.Position)
	if !g.Contains(c) {
		return false
	}
	p.Cell = c
	g.cells[c.Y*g.w+c.X] = append(g.cells[c.Y*g.w+c.X], p)
	return true
}
