package geom

import "fmt"

// Rectangle is half-open on both axes: [X1, X2) x [Y1, Y2). Rect and
// RectFromSize do not validate their input: corners with X1 > X2 or
// Y1 > Y2 (or a negative size) are returned as given, and IsEmpty
// reports such a rectangle as empty. Intersect reports a non-overlap as
// ok=false with the zero Rectangle.
type Rectangle struct {
	X1, Y1, X2, Y2 Dim
}

// Rect builds a Rectangle from explicit corners. Callers that already
// hold a position and size should use RectFromSize instead.
func Rect(x1, y1, x2, y2 Dim) Rectangle { return Rectangle{x1, y1, x2, y2} }

// RectFromSize builds a Rectangle from a top-left corner and a size.
func RectFromSize(topLeft, size Vector) Rectangle {
	return Rectangle{topLeft.X, topLeft.Y, topLeft.X + size.X, topLeft.Y + size.Y}
}

// RectDefault and RectMax are the sentinel rectangles used wherever a
// caller hasn't specified an area yet, or wants "the whole plane".
var (
	RectDefault = Rectangle{DimLow, DimLow, DimLow, DimLow}
	RectMax     = Rectangle{DimLow, DimLow, DimHigh, DimHigh}
)

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}

func (r Rectangle) Width() Dim  { return r.X2 - r.X1 }
func (r Rectangle) Height() Dim { return r.Y2 - r.Y1 }
func (r Rectangle) Size() Vector {
	return Vector{r.Width(), r.Height()}
}

// TopLeft returns the rectangle's origin corner.
func (r Rectangle) TopLeft() Vector { return Vector{r.X1, r.Y1} }

// BottomRight returns the rectangle's far corner (exclusive).
func (r Rectangle) BottomRight() Vector { return Vector{r.X2, r.Y2} }

// IsEmpty reports whether the rectangle has zero area.
func (r Rectangle) IsEmpty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Contains reports whether p lies within the half-open rectangle.
func (r Rectangle) Contains(p Vector) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}

// Intersect computes a & b, returning ok=false if the rectangles don't
// overlap (or either is empty).
func (a Rectangle) Intersect(b Rectangle) (Rectangle, bool) {
	r := Rectangle{
		X1: maxDim(a.X1, b.X1),
		Y1: maxDim(a.Y1, b.Y1),
		X2: minDim(a.X2, b.X2),
		Y2: minDim(a.Y2, b.Y2),
	}
	if r.IsEmpty() {
		return Rectangle{}, false
	}
	return r, true
}

// Union returns the smallest rectangle enclosing both a and b (a | b).
// An empty operand is absorbed; unioning two empty rectangles yields an
// empty rectangle.
func (a Rectangle) Union(b Rectangle) Rectangle {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	return Rectangle{
		X1: minDim(a.X1, b.X1),
		Y1: minDim(a.Y1, b.Y1),
		X2: maxDim(a.X2, b.X2),
		Y2: maxDim(a.Y2, b.Y2),
	}
}

// Translate shifts the rectangle by v.
func (r Rectangle) Translate(v Vector) Rectangle {
	return Rectangle{r.X1 + v.X, r.Y1 + v.Y, r.X2 + v.X, r.Y2 + v.Y}
}

// TranslateNeg shifts the rectangle by -v.
func (r Rectangle) TranslateNeg(v Vector) Rectangle {
	return Rectangle{r.X1 - v.X, r.Y1 - v.Y, r.X2 - v.X, r.Y2 - v.Y}
}

// Outset grows the rectangle by k on all four sides.
func (r Rectangle) Outset(k Dim) Rectangle {
	return Rectangle{r.X1 - k, r.Y1 - k, r.X2 + k, r.Y2 + k}
}

// Inset shrinks the rectangle by k on all four sides (Outset(-k)).
func (r Rectangle) Inset(k Dim) Rectangle { return r.Outset(-k) }

// DefaultTo resolves DimLow/DimHigh corners against a concrete bounding
// rectangle: each sentinel corner is replaced by the matching corner of
// bounds.
func (r Rectangle) DefaultTo(bounds Rectangle) Rectangle {
	out := r
	if out.X1 == DimLow || out.X1 == DimHigh {
		out.X1 = bounds.X1
	}
	if out.Y1 == DimLow || out.Y1 == DimHigh {
		out.Y1 = bounds.Y1
	}
	if out.X2 == DimLow || out.X2 == DimHigh {
		out.X2 = bounds.X2
	}
	if out.Y2 == DimLow || out.Y2 == DimHigh {
		out.Y2 = bounds.Y2
	}
	return out
}

// JoinedHorizontally reports whether a and b share a vertical edge and
// the same vertical span, i.e. they could be merged into one wider
// rectangle (a.X2 == b.X1, or the symmetric case).
func (a Rectangle) JoinedHorizontally(b Rectangle) bool {
	if a.Y1 != b.Y1 || a.Y2 != b.Y2 {
		return false
	}
	return a.X2 == b.X1 || b.X2 == a.X1
}

// JoinedVertically is the vertical analogue of JoinedHorizontally.
func (a Rectangle) JoinedVertically(b Rectangle) bool {
	if a.X1 != b.X1 || a.X2 != b.X2 {
		return false
	}
	return a.Y2 == b.Y1 || b.Y2 == a.Y1
}

// JoinedWith returns the span of a and b when they are joined
// horizontally or vertically, and ok=false otherwise.
func (a Rectangle) JoinedWith(b Rectangle) (Rectangle, bool) {
	if a.JoinedHorizontally(b) || a.JoinedVertically(b) {
		return a.Union(b), true
	}
	return Rectangle{}, false
}

// Sub computes a − b: the pieces of a left over after removing b. If b
// fully covers a (a & b == a) or the two rectangles are disjoint, Sub
// returns no pieces — callers that want the disjoint case to retain a
// whole need DefaultIntersection, which is what every fragment-splitting
// call site in this module actually uses (see surface.split).
//
// When b partially overlaps a, the remainder is split into up to four
// rectangles around the intersection, always in the order top, left,
// right, bottom.
func (a Rectangle) Sub(b Rectangle) []Rectangle {
	i, ok := a.Intersect(b)
	if !ok {
		return nil
	}
	if i == a {
		return nil
	}
	var out []Rectangle
	if i.Y1 > a.Y1 {
		out = append(out, Rectangle{a.X1, a.Y1, a.X2, i.Y1}) // top
	}
	if i.X1 > a.X1 {
		out = append(out, Rectangle{a.X1, i.Y1, i.X1, i.Y2}) // left
	}
	if i.X2 < a.X2 {
		out = append(out, Rectangle{i.X2, i.Y1, a.X2, i.Y2}) // right
	}
	if i.Y2 < a.Y2 {
		out = append(out, Rectangle{a.X1, i.Y2, a.X2, a.Y2}) // bottom
	}
	return out
}

// DefaultIntersection is Sub, except that when a and b are disjoint the
// result is [a] rather than empty. Fragment splitting (surface.split)
// always goes through this variant: removing a mask rectangle that
// doesn't touch a fragment must leave that fragment intact, not erase
// it.
func (a Rectangle) DefaultIntersection(b Rectangle) []Rectangle {
	if _, ok := a.Intersect(b); !ok {
		return []Rectangle{a}
	}
	return a.Sub(b)
}
