// Package surface implements the z-ordered element stack: it keeps each
// element's visible region as a set of disjoint rectangular fragments
// and emits the minimal set of cell updates any mutation requires.
package surface

import (
	"github.com/kungfusheep/glint/geom"
	"github.com/kungfusheep/glint/text"
)

// Element is anything that can sit in a Surface's z-order. Fragment
// bookkeeping lives in the Surface itself (see slot), not in the
// Element — that keeps the interface to two methods; Move lives on the
// separate, optional Mover interface below.
type Element interface {
	// Area returns the element's current rectangle in surface space.
	Area() geom.Rectangle
	// Text renders the portion of the element covered by area, which is
	// expressed in the element's own local coordinates (i.e. already
	// translated by Area().TopLeft()).
	Text(area geom.Rectangle) *text.Text
}

// Mover is implemented by elements whose area the surface owner intends
// to change via Reshape. It is a separate, optional interface: elements
// that never move (the backdrop) don't need it.
type Mover interface {
	Element
	Move(area geom.Rectangle)
}

// Handle is a non-owning reference to an element registered with a
// Surface. Handles returned by Add remain valid until Delete; using one
// afterwards is a programming error (InvariantViolation).
type Handle uint32
