package text

import "github.com/kungfusheep/glint/internal/glerr"

// Orientation selects the axis a LineSpec travels along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// LineSpec describes a line segment to stamp into a Text. EndPosition ==
// geom.DimHigh (see resolveEnd) means "to the far edge"; a negative
// EndPosition component counts from the right/bottom, same as
// Vector.Position.
type LineSpec struct {
	Position, EndPosition Vector
	Orientation           Orientation
	ExtendBegin           bool
	ExtendEnd             bool
}

// BoxSpec describes a rectangular frame: Area defaults against the
// receiver's bounds when it carries sentinel corners.
type BoxSpec struct {
	Area     Rectangle
	Strength int
	Dash     int
	Rounded  bool
}

// stampQuad sets each direction of existing whose flag (north, south,
// west, east) is non-zero to strength, leaving the other directions
// untouched, then applies the rounded and dash style rules.
func stampQuad(existing Quad, north, south, west, east, strength int, dash int, rounded bool) Quad {
	q := existing
	if north != 0 {
		q.North = strength
	}
	if south != 0 {
		q.South = strength
	}
	if west != 0 {
		q.West = strength
	}
	if east != 0 {
		q.East = strength
	}

	// Two opposite light straights meeting perpendicularly at a rounded
	// corner become rounded.
	if rounded && q.Style == StyleNormal {
		isCorner := (q.North != 0 || q.South != 0) && (q.West != 0 || q.East != 0) &&
			!(q.North != 0 && q.South != 0) && !(q.West != 0 && q.East != 0)
		if isCorner && q.North != segHeavy && q.South != segHeavy && q.West != segHeavy && q.East != segHeavy {
			q.Style = StyleRounded
		}
	}
	if dash != StyleNormal && q.IsStraight() {
		q.Style = dash
	}
	return q
}

// stampCell applies one direction's worth of a line stamp to the cell at
// p, leaving the rune unchanged if the resulting quad has no glyph.
func (t *Text) stampCell(p Vector, north, south, west, east, strength, dash int, rounded bool) {
	c := t.at(p)
	existing := QuadOf(c.Rune)
	q := stampQuad(existing, north, south, west, east, strength, dash, rounded)
	if r, ok := RuneOf(q); ok {
		c.Rune = r
		t.setRaw(p, c)
	}
}

// resolveEnd turns the DIM_HIGH sentinel into the last valid index along
// an axis of length axisLen ("to the far edge" means the final cell,
// not the one-past-the-end bound).
func resolveEnd(v Dim, axisLen Dim) Dim {
	if v == DimHigh {
		return axisLen - 1
	}
	return v
}

// Line stamps a line segment described by spec into t, growing the
// receiver first if the segment would otherwise fall outside its
// current bounds. strength must be 1 (light) or 2 (heavy); dash selects
// StyleTripleDash/StyleQuadDash for straight runs, or StyleNormal for
// none. It returns the bounding rectangle of the affected cells.
func (t *Text) Line(spec LineSpec, strength int, dash int, rounded bool) (Rectangle, error) {
	if strength != segLight && strength != segHeavy {
		return Rectangle{}, &glerr.BadArgument{Op: "Text.Line", Reason: "strength must be 1 or 2"}
	}

	bounds := t.Bounds()
	start := spec.Position.Position(bounds.Size())
	endX := resolveEnd(spec.EndPosition.X, bounds.Width())
	endY := resolveEnd(spec.EndPosition.Y, bounds.Height())
	end := Vector{endX, endY}
	if end.X < 0 {
		end.X = bounds.Width() + end.X
	}
	if end.Y < 0 {
		end.Y = bounds.Height() + end.Y
	}

	var affected Rectangle
	if spec.Orientation == Horizontal {
		affected = Rect(minDim2(start.X, end.X), start.Y, maxDim2(start.X, end.X)+1, start.Y+1)
	} else {
		affected = Rect(start.X, minDim2(start.Y, end.Y), start.X+1, maxDim2(start.Y, end.Y)+1)
	}
	need := affected.BottomRight()
	if need.X > t.width || need.Y > Dim(len(t.data)) {
		t.Extend(Vector{need.X, need.Y}, Space(DefaultCharAttributes))
	}

	if spec.Orientation == Horizontal {
		lo, hi := start.X, end.X
		step := Dim(1)
		if hi < lo {
			step = -1
		}
		for x := lo; ; x += step {
			p := Vector{x, start.Y}
			isFirst := x == lo
			isLast := x == hi
			west, east := 1, 1
			if isFirst && !spec.ExtendBegin {
				if step > 0 {
					west = 0
				} else {
					east = 0
				}
			}
			if isLast && !spec.ExtendEnd {
				if step > 0 {
					east = 0
				} else {
					west = 0
				}
			}
			t.stampCell(p, 0, 0, west, east, strength, dash, rounded)
			if x == hi {
				break
			}
		}
	} else {
		lo, hi := start.Y, end.Y
		step := Dim(1)
		if hi < lo {
			step = -1
		}
		for y := lo; ; y += step {
			p := Vector{start.X, y}
			isFirst := y == lo
			isLast := y == hi
			north, south := 1, 1
			if isFirst && !spec.ExtendBegin {
				if step > 0 {
					north = 0
				} else {
					south = 0
				}
			}
			if isLast && !spec.ExtendEnd {
				if step > 0 {
					south = 0
				} else {
					north = 0
				}
			}
			t.stampCell(p, north, south, 0, 0, strength, dash, rounded)
			if y == hi {
				break
			}
		}
	}

	return affected, nil
}

// Box draws a rectangular frame with four Line calls in the order top,
// bottom, left, right, returning their four bounding rectangles.
func (t *Text) Box(spec BoxSpec) ([4]Rectangle, error) {
	var out [4]Rectangle
	area := spec.Area.DefaultTo(t.Bounds())

	top := LineSpec{
		Position:    area.TopLeft(),
		EndPosition: Vector{area.X2 - 1, area.Y1},
		Orientation: Horizontal,
		ExtendBegin: false,
		ExtendEnd:   false,
	}
	r, err := t.Line(top, spec.Strength, spec.Dash, spec.Rounded)
	if err != nil {
		return out, err
	}
	out[0] = r

	bottom := LineSpec{
		Position:    Vector{area.X1, area.Y2 - 1},
		EndPosition: Vector{area.X2 - 1, area.Y2 - 1},
		Orientation: Horizontal,
		ExtendBegin: false,
		ExtendEnd:   false,
	}
	r, err = t.Line(bottom, spec.Strength, spec.Dash, spec.Rounded)
	if err != nil {
		return out, err
	}
	out[1] = r

	left := LineSpec{
		Position:    area.TopLeft(),
		EndPosition: Vector{area.X1, area.Y2 - 1},
		Orientation: Vertical,
		ExtendBegin: false,
		ExtendEnd:   false,
	}
	r, err = t.Line(left, spec.Strength, spec.Dash, spec.Rounded)
	if err != nil {
		return out, err
	}
	out[2] = r

	right := LineSpec{
		Position:    Vector{area.X2 - 1, area.Y1},
		EndPosition: Vector{area.X2 - 1, area.Y2 - 1},
		Orientation: Vertical,
		ExtendBegin: false,
		ExtendEnd:   false,
	}
	r, err = t.Line(right, spec.Strength, spec.Dash, spec.Rounded)
	if err != nil {
		return out, err
	}
	out[3] = r

	return out, nil
}

func minDim2(a, b Dim) Dim {
	if a < b {
		return a
	}
	return b
}

func maxDim2(a, b Dim) Dim {
	if a > b {
		return a
	}
	return b
}
