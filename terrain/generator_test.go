package terrain

import (
	"errors"
	"testing"

	"github.com/dm-vev/acreage/terrain/sampler"
)

func TestNewGeneratorInvalidConfig(t *testing.T) {
	if _, err := NewGenerator(Config{Width: 0, Height: 100, Density: 1}); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions for zero width, got %v", err)
	}
	if _, err := NewGenerator(Config{Width: 100, Height: -1, Density: 1}); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions for negative height, got %v", err)
	}
	if _, err := NewGenerator(Config{Width: 100, Height: 100, Density: 0}); !errors.Is(err, ErrInvalidDensity) {
		t.Fatalf("expected ErrInvalidDensity, got %v", err)
	}
	if _, err := NewGenerator(Config{Width: 100, Height: 100, Density: 1, Branching: -1}); !errors.Is(err, sampler.ErrInvalidBranching) {
		t.Fatalf("expected ErrInvalidBranching, got %v", err)
	}
	// A map narrower than one placement cell has no valid grid.
	if _, err := NewGenerator(Config{Width: 10, Height: 100, Density: 1}); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions for a sub-cell map, got %v", err)
	}
}

func TestGenerateFullPass(t *testing.T) {
	t.Parallel()

	g := testGenerator(t, Config{Width: 400, Height: 400, Density: 1, Seed: 42})
	m, err := g.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	finalized := m.Finalized()
	if len(finalized) == 0 {
		t.Fatalf("expected a populated map")
	}
	for _, p := range finalized {
		if p.Category == CategoryOrigin || p.Category == CategorySuperseded {
			t.Fatalf("expected no origin or superseded placement in the final output, got %v at %v", p.Category, p.Position)
		}
		if p.Position[0] < 0 || p.Position[0] >= 400 || p.Position[1] < 0 || p.Position[1] >= 400 {
			t.Fatalf("expected placement inside the map bounds, got %v", p.Position)
		}
		if !m.Grid().Contains(p.Cell) {
			t.Fatalf("expected a valid cell coordinate, got %v", p.Cell)
		}
		if p.Category == CategoryTree || p.Category == CategoryBarn {
			if p.Scale == 0 {
				t.Fatalf("expected a scale hint on cluster member at %v", p.Position)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	run := func() *Map {
		g := testGenerator(t, Config{Width: 400, Height: 400, Density: 1, Seed: 42})
		m, err := g.Generate()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		return m
	}

	a, b := run(), run()
	af, bf := a.Finalized(), b.Finalized()
	if len(af) != len(bf) {
		t.Fatalf("expected identical placement counts under seed 42, got %d and %d", len(af), len(bf))
	}
	for i := range af {
		if af[i].Position != bf[i].Position || af[i].Category != bf[i].Category ||
			af[i].Orientation != bf[i].Orientation || af[i].Scale != bf[i].Scale {
			t.Fatalf("expected identical placement %d, got %+v and %+v", i, af[i], bf[i])
		}
	}
	if a.Digest() != b.Digest() {
		t.Fatalf("expected identical digests under seed 42, got %#x and %#x", a.Digest(), b.Digest())
	}
}

func TestGenerateSeedsDiverge(t *testing.T) {
	t.Parallel()

	digest := func(seed int64) uint64 {
		g := testGenerator(t, Config{Width: 400, Height: 400, Density: 1, Seed: seed})
		m, err := g.Generate()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		return m.Digest()
	}
	if digest(1) == digest(2) {
		t.Fatalf("expected different seeds to produce different maps")
	}
}
