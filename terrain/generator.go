// Package terrain populates a bounded world area with placement records: a
// blue-noise scatter pass distributes points with a guaranteed minimum
// spacing, a classification pass picks cluster origins among them, and a
// cluster pass locally overrides the scatter around each origin with a
// denser group of related objects, superseding whatever it displaces. The
// result is a Map of typed records for an instantiation layer to consume;
// rendering itself is outside the engine.
package terrain

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/dm-vev/acreage/terrain/rand"
	"github.com/dm-vev/acreage/terrain/sampler"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Generator runs full generation passes for one Config.
type Generator struct {
	conf Config
	log  *slog.Logger
}

// NewGenerator validates the configuration and returns a Generator for it.
func NewGenerator(conf Config) (*Generator, error) {
	if conf.Width <= 0 || conf.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if conf.Density <= 0 {
		return nil, ErrInvalidDensity
	}
	if conf.Branching < 0 {
		return nil, sampler.ErrInvalidBranching
	}
	conf = conf.withDefaults()
	if conf.Width < conf.CellSize || conf.Height < conf.CellSize {
		return nil, fmt.Errorf("terrain: map smaller than one placement cell: %w", ErrInvalidDimensions)
	}
	return &Generator{conf: conf, log: conf.Log}, nil
}

// Generate runs one full pass: scatter sampling, classification, cluster
// generation for every origin and the final hint pass. The whole pass runs
// to completion synchronously; the returned Map is not touched afterwards.
func (g *Generator) Generate() (*Map, error) {
	conf := g.conf
	r := rand.NewRandom(conf.Seed)

	gridW := int(conf.Width / conf.CellSize)
	gridH := int(conf.Height / conf.CellSize)

	m := &Map{
		Pass:     uuid.New(),
		grid:     newPlacementGrid(gridW, gridH, conf.CellSize),
		width:    conf.Width,
		height:   conf.Height,
		tileSize: conf.TileSize,
	}

	// Demand-driven scatter: the request keeps roughly Density points per
	// grid cell, the spacing keeps them apart. The sampler may fall short
	// of the request when the square saturates; that is fine.
	count := int(float64((gridW+1)*(gridH+1)) * conf.Density)
	minDist := 1 / (conf.Density * math.Min(float64(gridW), float64(gridH)))
	points, err := sampler.Generate(sampler.Config{
		Count:     count,
		Branching: conf.Branching,
		Domain:    sampler.Square,
		MinDist:   minDist,
	}, r)
	if err != nil {
		return nil, fmt.Errorf("terrain: scatter sample: %w", err)
	}

	dropped := 0
	for _, p := range points {
		pl := &Placement{
			Position: mgl64.Vec2{p[0] * conf.Width, p[1] * conf.Height},
			Category: CategoryScatter,
		}
		// Classification is an independent per-point draw; it does not
		// look at neighbours.
		if r.IntN(99) < conf.OriginChance {
			pl.Category = CategoryOrigin
		}
		if !m.grid.insert(pl) {
			dropped++
		}
	}

	// Origin pass, cell-major. Cluster members appended to already scanned
	// or yet-to-be-scanned buckets are never origins, and an origin that a
	// previous cluster's clearing superseded no longer seeds one of its own.
	clusters := 0
	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			for _, origin := range m.grid.At(CellPos{X: x, Y: y}) {
				if origin.Category != CategoryOrigin {
					continue
				}
				stats, err := g.generateCluster(m, origin)
				if err != nil {
					return nil, err
				}
				clusters++
				g.log.Debug("generated cluster",
					"pass", m.Pass, "cell", origin.Cell, "kind", stats.kind,
					"radius", stats.radius, "members", stats.members, "cleared", stats.cleared)
			}
		}
	}

	g.applyHints(m, r)

	g.log.Info("generated map",
		"pass", m.Pass, "seed", conf.Seed, "requested", count,
		"scattered", len(points), "dropped", dropped, "clusters", clusters,
		"finalized", len(m.Finalized()))
	return m, nil
}

// applyHints assigns the scale hints the instantiation layer reads for
// vegetation and structures. Scatter placements need none. Hints are drawn
// from the master source in cell-major order, keeping them reproducible.
func (g *Generator) applyHints(m *Map, r *rand.Random) {
	for y := 0; y < m.grid.h; y++ {
		for x := 0; x < m.grid.w; x++ {
			for _, p := range m.grid.At(CellPos{X: x, Y: y}) {
				switch p.Category {
				case CategoryTree:
					p.Scale = 1.25 + float64(r.IntN(4))/10
				case CategoryBarn:
					p.Scale = 1.3 + float64(r.IntN(79))/100
				}
			}
		}
	}
}
