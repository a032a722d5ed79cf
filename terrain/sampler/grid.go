package sampler

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// cell is one slot of the sampling-time index. occupied == false is the
// "no point here" sentinel, never a real sample.
type cell struct {
	pos      mgl64.Vec2
	occupied bool
}

// grid is the uniform bucket index the sampler rejects candidates against.
// Its cell size is minDist/sqrt(2), which makes any two points sharing a
// cell closer than minDist. The sampler never accepts such a pair, so every
// cell holds at most one point and insert may overwrite unconditionally.
type grid struct {
	w, h     int
	cellSize float64
	// window is the cell radius a neighbourhood scan must cover so that no
	// point within minDist can hide outside it: ceil(minDist/cellSize).
	window int
	cells  []cell
}

func newGrid(minDist float64) *grid {
	cellSize := minDist / math.Sqrt2
	w := int(math.Ceil(1 / cellSize))
	return &grid{
		w:        w,
		h:        w,
		cellSize: cellSize,
		window:   int(math.Ceil(minDist / cellSize)),
		cells:    make([]cell, w*w),
	}
}

// cellAt returns the column and row of p, clamped into range so that points
// sitting exactly on the domain boundary still map to a valid cell.
func (g *grid) cellAt(p mgl64.Vec2) (int, int) {
	x := int(p[0] / g.cellSize)
	y := int(p[1] / g.cellSize)
	if x < 0 {
		x = 0
	} else if x >= g.w {
		x = g.w - 1
	}
	if y < 0 {
		y = 0
	} else if y >= g.h {
		y = g.h - 1
	}
	return x, y
}

func (g *grid) insert(p mgl64.Vec2) {
	x, y := g.cellAt(p)
	g.cells[y*g.w+x] = cell{pos: p, occupied: true}
}

// hasNeighborWithin reports whether an accepted point lies strictly closer
// than minDist to p. It scans the window of cells around p's cell; cells
// outside the grid are skipped.
func (g *grid) hasNeighborWithin(p mgl64.Vec2, minDist float64) bool {
	cx, cy := g.cellAt(p)
	for y := cy - g.window; y <= cy+g.window; y++ {
		if y < 0 || y >= g.h {
			continue
		}
		for x := cx - g.window; x <= cx+g.window; x++ {
			if x < 0 || x >= g.w {
				continue
			}
			c := g.cells[y*g.w+x]
			if c.occupied && c.pos.Sub(p).Len() < minDist {
				return true
			}
		}
	}
	return false
}
