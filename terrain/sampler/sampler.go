// Package sampler generates blue-noise point sets by Poisson-disk
// dart-throwing: points are proposed in an annulus around already accepted
// points and rejected when closer than a minimum distance to any neighbour,
// with a uniform grid making the rejection test O(1). The result is a
// visually even distribution without a lattice pattern.
package sampler

import (
	"errors"
	"math"

	"github.com/dm-vev/acreage/terrain/rand"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrInvalidCount is returned when a negative point count is requested.
	ErrInvalidCount = errors.New("sampler: point count must not be negative")
	// ErrInvalidBranching is returned when a negative branching factor is supplied.
	ErrInvalidBranching = errors.New("sampler: branching factor must not be negative")
)

// Config holds the parameters of one sampling run.
type Config struct {
	// Count is the number of points asked for. The sampler may return fewer
	// if the domain saturates before Count is reached; it never returns more.
	Count int
	// Branching is the number of candidate children attempted per active
	// point, the 'k' of Bridson's algorithm. Defaults to 30.
	Branching int
	// Domain is the shape to fill, Square by default.
	Domain Domain
	// MinDist is the minimum distance between any two points. A value <= 0
	// derives sqrt(Count)/Count, which keeps point density roughly constant
	// regardless of Count.
	MinDist float64
}

func (c Config) withDefaults() Config {
	if c.Branching == 0 {
		c.Branching = 30
	}
	if c.MinDist <= 0 && c.Count > 0 {
		c.MinDist = math.Sqrt(float64(c.Count)) / float64(c.Count)
	}
	return c
}

// GenerateBlueNoise samples up to count points in the unit square, or in the
// inscribed disk if disk is true. A minDist < 0 derives the default spacing.
// It is shorthand for Generate with an explicit Config.
func GenerateBlueNoise(count int, r *rand.Random, branching int, disk bool, minDist float64) ([]mgl64.Vec2, error) {
	d := Square
	if disk {
		d = Disk
	}
	return Generate(Config{Count: count, Branching: branching, Domain: d, MinDist: minDist}, r)
}

// Generate runs one dart-throwing pass and returns the accepted points in
// acceptance order. Every pair of returned points is at least MinDist apart
// and every point satisfies the domain shape. Running out of room before
// Count is reached is normal termination, not an error.
func Generate(conf Config, r *rand.Random) ([]mgl64.Vec2, error) {
	if conf.Count < 0 {
		return nil, ErrInvalidCount
	}
	if conf.Branching < 0 {
		return nil, ErrInvalidBranching
	}
	conf = conf.withDefaults()
	if conf.Count == 0 {
		return nil, nil
	}

	g := newGrid(conf.MinDist)

	// Rejection-sample the seed point until it lands inside the shape.
	var first mgl64.Vec2
	for {
		first = mgl64.Vec2{r.Float64(), r.Float64()}
		if conf.Domain.Contains(first) {
			break
		}
	}

	points := make([]mgl64.Vec2, 0, conf.Count)
	points = append(points, first)
	if conf.Count == 1 {
		return points, nil
	}
	g.insert(first)

	active := make([]mgl64.Vec2, 0, 64)
	active = append(active, first)

	for len(active) > 0 && len(points) < conf.Count {
		p := popRandom(&active, r)

		for i := 0; i < conf.Branching && len(points) < conf.Count; i++ {
			candidate := pointAround(p, conf.MinDist, r)
			if !conf.Domain.Contains(candidate) || g.hasNeighborWithin(candidate, conf.MinDist) {
				continue
			}
			active = append(active, candidate)
			points = append(points, candidate)
			g.insert(candidate)
		}
	}
	return points, nil
}

// popRandom removes and returns an active point at a uniformly random index.
// The random pop order is part of the blue-noise quality of the output;
// FIFO or LIFO orders bias the growth front.
func popRandom(active *[]mgl64.Vec2, r *rand.Random) mgl64.Vec2 {
	idx := r.IntN(len(*active) - 1)
	p := (*active)[idx]
	*active = append((*active)[:idx], (*active)[idx+1:]...)
	return p
}

// pointAround proposes a candidate at a random distance in [minDist, 2*minDist)
// and a random angle around p.
func pointAround(p mgl64.Vec2, minDist float64, r *rand.Random) mgl64.Vec2 {
	radius := minDist * (1 + r.Float64())
	angle := 2 * math.Pi * r.Float64()
	return mgl64.Vec2{p[0] + radius*math.Cos(angle), p[1] + radius*math.Sin(angle)}
}
