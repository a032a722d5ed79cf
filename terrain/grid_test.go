package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPlacementGridCellAt(t *testing.T) {
	g := newPlacementGrid(10, 10, 20)

	cases := []struct {
		pos  mgl64.Vec2
		want CellPos
	}{
		{mgl64.Vec2{0, 0}, CellPos{0, 0}},
		{mgl64.Vec2{19.9, 0}, CellPos{0, 0}},
		{mgl64.Vec2{20, 0}, CellPos{1, 0}},
		{mgl64.Vec2{75, 130}, CellPos{3, 6}},
		{mgl64.Vec2{-1, 5}, CellPos{-1, 0}},
	}
	for _, c := range cases {
		if got := g.CellAt(c.pos); got != c.want {
			t.Fatalf("expected cell %v for position %v, got %v", c.want, c.pos, got)
		}
	}
}

func TestPlacementGridInsertBounds(t *testing.T) {
	g := newPlacementGrid(10, 10, 20)

	in := &Placement{Position: mgl64.Vec2{50, 50}}
	if !g.insert(in) {
		t.Fatalf("expected in-range placement to be inserted")
	}
	if in.Cell != (CellPos{2, 2}) {
		t.Fatalf("expected cell (2,2), got %v", in.Cell)
	}

	for _, pos := range []mgl64.Vec2{{-5, 50}, {50, -5}, {200, 50}, {50, 200}} {
		if g.insert(&Placement{Position: pos}) {
			t.Fatalf("expected out-of-range placement at %v to be dropped", pos)
		}
	}

	if got := g.At(CellPos{2, 2}); len(got) != 1 || got[0] != in {
		t.Fatalf("expected the bucket at (2,2) to hold the inserted placement, got %v", got)
	}
	if got := g.At(CellPos{-1, 0}); got != nil {
		t.Fatalf("expected nil bucket for out-of-range cell, got %v", got)
	}
}

func TestPlacementGridStableOrder(t *testing.T) {
	g := newPlacementGrid(4, 4, 20)
	var want []*Placement
	for i := 0; i < 8; i++ {
		p := &Placement{Position: mgl64.Vec2{10, float64(i)}}
		want = append(want, p)
		if !g.insert(p) {
			t.Fatalf("expected placement %d to be inserted", i)
		}
	}
	got := g.At(CellPos{0, 0})
	if len(got) != len(want) {
		t.Fatalf("expected %d placements in the bucket, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected bucket order to match insertion order at %d", i)
		}
	}
}
