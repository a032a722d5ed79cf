package sampler

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Domain is the shape samples are generated in. Both shapes live in the unit
// square; the disk is inscribed in it with radius 0.5 about (0.5, 0.5).
type Domain uint8

const (
	// Square fills the unit square [0,1] x [0,1].
	Square Domain = iota
	// Disk fills the disk of radius 0.5 centred at (0.5, 0.5).
	Disk
)

// Contains reports whether p lies inside the domain shape.
func (d Domain) Contains(p mgl64.Vec2) bool {
	if d == Disk {
		fx, fy := p[0]-0.5, p[1]-0.5
		return fx*fx+fy*fy <= 0.25
	}
	return p[0] >= 0 && p[0] <= 1 && p[1] >= 0 && p[1] <= 1
}

// String returns the name of the domain shape.
func (d Domain) String() string {
	if d == Disk {
		return "disk"
	}
	return "square"
}
