package terrain

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Category classifies a placement for the instantiation layer. It is a
// closed set: generation only ever produces the values below, so consumers
// can switch over it exhaustively.
type Category uint8

const (
	// CategoryScatter is the default loose-scenery placement.
	CategoryScatter Category = iota
	// CategoryOrigin marks a placement selected to seed a cluster. Origins
	// are never instantiated as visible objects themselves.
	CategoryOrigin
	// CategoryTree is a member of a vegetation cluster.
	CategoryTree
	// CategoryBarn is a member of a structure cluster.
	CategoryBarn
	// CategorySuperseded marks a placement logically removed by a cluster's
	// clearing pass. The record stays in its bucket so that in-progress
	// scans and held references remain valid; it is excluded from the final
	// output instead.
	CategorySuperseded
)

// String returns the tag consumed by the instantiation layer.
func (c Category) String() string {
	switch c {
	case CategoryScatter:
		return "scatter"
	case CategoryOrigin:
		return "origin"
	case CategoryTree:
		return "tree"
	case CategoryBarn:
		return "barn"
	case CategorySuperseded:
		return "superseded"
	}
	return "unknown"
}

// CellPos is a column/row coordinate in a PlacementGrid, derived from a
// world position by floor division with the placement cell size.
type CellPos struct {
	X, Y int
}

// Placement is one generated object record: everything the instantiation
// layer needs to create a visual entity. The engine itself never touches
// graphics state.
type Placement struct {
	// Position is the placement's world-space position.
	Position mgl64.Vec2
	// Cell is the PlacementGrid cell the placement is bucketed in.
	Cell CellPos
	// Category tells the instantiation layer what to spawn here.
	Category Category
	// Orientation is a rotation hint in degrees, meaningful only when
	// Oriented is set. Barn-cluster members carry one of a small set of
	// discrete rotations.
	Orientation float64
	// Oriented reports whether Orientation carries a value.
	Oriented bool
	// Scale is an optional uniform scale hint; zero means no preference.
	Scale float64
}
