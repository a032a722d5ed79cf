package terrain

import (
	"fmt"
	"math"

	"github.com/dm-vev/acreage/terrain/rand"
	"github.com/dm-vev/acreage/terrain/sampler"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/segmentio/fasthash/fnv1a"
)

// clusterStats summarises one cluster pass for logging and tests.
type clusterStats struct {
	kind    Category
	radius  float64
	members int
	cleared int
}

// generateCluster runs the local override pass around origin: it picks the
// cluster kind, supersedes prior placements inside the clearing radius and
// fills the clearing with a fresh local blue-noise sample.
//
// Every draw comes from a child source seeded from the master seed and the
// origin's position, so clusters are reproducible in isolation and
// independent of how many clusters ran before them.
func (g *Generator) generateCluster(m *Map, origin *Placement) (clusterStats, error) {
	cr := rand.NewRandom(clusterSeed(g.conf.Seed, origin.Position))

	// Structure clusters are tight groups of barns; vegetation clusters
	// are looser and larger stands of trees.
	kind := CategoryTree
	if cr.IntN(99) < 20 {
		kind = CategoryBarn
	}

	cellSize := g.conf.CellSize
	radius := cellSize
	if kind == CategoryTree {
		radius = (1 + float64(cr.IntN(4))/5) * cellSize
	}

	stats := clusterStats{kind: kind, radius: radius}
	stats.cleared = g.clear(m, origin, radius)

	count := 10 + cr.IntN(29)
	if kind == CategoryBarn {
		count = 1 + cr.IntN(5)
	}
	points, err := sampler.Generate(sampler.Config{
		Count:     count,
		Branching: 70,
		Domain:    sampler.Disk,
	}, cr)
	if err != nil {
		return stats, fmt.Errorf("terrain: cluster sample at %v: %w", origin.Cell, err)
	}

	for _, p := range points {
		pl := &Placement{
			// The unit-domain sample is scaled by the clearing radius and
			// recentred on the origin.
			Position: origin.Position.Add(mgl64.Vec2{p[0]*radius - radius/2, p[1]*radius - radius/2}),
			Category: kind,
		}
		if kind == CategoryBarn {
			pl.Oriented = true
			switch cr.IntN(2) {
			case 0:
				pl.Orientation = 0
			case 1:
				pl.Orientation = 90
			case 2:
				pl.Orientation = orientedDegrees(origin.Position, pl.Position.Sub(origin.Position))
			}
		}
		// Members spilling past the map boundary are clipped.
		if m.grid.insert(pl) {
			stats.members++
		}
	}
	return stats, nil
}

// clear supersedes every placement strictly within radius of the origin,
// except the origin itself. The scan window covers every cell the radius
// can reach, clipped at the grid edges; superseding is a soft delete, the
// records stay in their buckets.
func (g *Generator) clear(m *Map, origin *Placement, radius float64) int {
	window := int(math.Ceil(radius / m.grid.cellSize))
	cleared := 0
	for dy := -window; dy <= window; dy++ {
		for dx := -window; dx <= window; dx++ {
			c := CellPos{X: origin.Cell.X + dx, Y: origin.Cell.Y + dy}
			for _, p := range m.grid.At(c) {
				if p == origin {
					continue
				}
				if p.Position.Sub(origin.Position).Len() < radius {
					p.Category = CategorySuperseded
					cleared++
				}
			}
		}
	}
	return cleared
}

// clusterSeed derives a cluster's child seed from the master seed and the
// origin's world position.
func clusterSeed(master int64, pos mgl64.Vec2) int64 {
	h := fnv1a.AddUint64(fnv1a.Init64, uint64(master))
	h = fnv1a.AddUint64(h, math.Float64bits(pos[0]))
	h = fnv1a.AddUint64(h, math.Float64bits(pos[1]))
	return int64(h)
}

// orientedDegrees returns the signed angle in degrees from a to b.
func orientedDegrees(a, b mgl64.Vec2) float64 {
	rad := math.Atan2(a[0]*b[1]-a[1]*b[0], a[0]*b[0]+a[1]*b[1])
	return rad * 180 / math.Pi
}
