package terrain

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Map is the durable output of one generation pass. It owns the
// PlacementGrid for the lifetime of the pass and is handed to the
// instantiation layer once generation completes.
type Map struct {
	// Pass identifies this generation pass in logs and diagnostic dumps.
	Pass uuid.UUID

	grid          *PlacementGrid
	width, height float64
	tileSize      float64
}

// Grid returns the placement grid backing the map.
func (m *Map) Grid() *PlacementGrid { return m.grid }

// Bounds returns the world-space extents of the map.
func (m *Map) Bounds() (width, height float64) { return m.width, m.height }

// Finalized returns the placements ready for instantiation, in cell-major
// order with per-cell insertion order preserved. Cluster origins and
// superseded placements are excluded: origins only exist to seed clusters,
// superseded records were cleared away by one.
func (m *Map) Finalized() []*Placement {
	var out []*Placement
	for y := 0; y < m.grid.h; y++ {
		for x := 0; x < m.grid.w; x++ {
			for _, p := range m.grid.At(CellPos{X: x, Y: y}) {
				if p.Category == CategoryOrigin || p.Category == CategorySuperseded {
					continue
				}
				out = append(out, p)
			}
		}
	}
	return out
}

// GroundTiles returns the positions of the ground plane tiles covering the
// map, one per TileSize x TileSize square, anchored at their minimum corner.
func (m *Map) GroundTiles() []mgl64.Vec2 {
	cols := int(m.width / m.tileSize)
	rows := int(m.height / m.tileSize)
	tiles := make([]mgl64.Vec2, 0, cols*rows)
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			tiles = append(tiles, mgl64.Vec2{float64(x) * m.tileSize, float64(y) * m.tileSize})
		}
	}
	return tiles
}

// Digest returns a hash over the finalized placement stream. Two passes with
// the same configuration and seed produce the same digest, which makes it a
// cheap way to compare runs in diagnostics.
func (m *Map) Digest() uint64 {
	d := xxhash.New()
	var buf [8]byte
	writeF := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
	for _, p := range m.Finalized() {
		writeF(p.Position[0])
		writeF(p.Position[1])
		_, _ = d.Write([]byte{byte(p.Category)})
		writeF(p.Orientation)
		writeF(p.Scale)
	}
	return d.Sum64()
}
