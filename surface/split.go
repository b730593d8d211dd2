package surface

import "github.com/kungfusheep/glint/geom"

// splitOne removes mask from every rectangle in frags, using
// DefaultIntersection so a fragment that mask doesn't touch survives
// unchanged.
func splitOne(frags []geom.Rectangle, mask geom.Rectangle) []geom.Rectangle {
	out := make([]geom.Rectangle, 0, len(frags))
	for _, f := range frags {
		out = append(out, f.DefaultIntersection(mask)...)
	}
	return out
}

// splitMany removes every rectangle in masks from frags in turn. Masks
// are typically the already-disjoint fragment list of one or more
// higher elements; folding them one at a time keeps each step a plain
// rectangle subtraction instead of a general polygon clip.
func splitMany(frags []geom.Rectangle, masks []geom.Rectangle) []geom.Rectangle {
	for _, m := range masks {
		frags = splitOne(frags, m)
		if len(frags) == 0 {
			break
		}
	}
	return frags
}
