package geom

import "fmt"

// Vector is an ordered (x, y) pair used both as a point and as a size.
// Less orders vectors lexicographically on (x, y).
type Vector struct {
	X, Y Dim
}

// Vec is a small constructor so call sites read Vec(x, y) instead of the
// longer struct literal.
func Vec(x, y Dim) Vector { return Vector{X: x, Y: y} }

func (v Vector) String() string { return fmt.Sprintf("(%d,%d)", v.X, v.Y) }

// Add returns the componentwise sum.
func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }

// Sub returns the componentwise difference.
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }

// AddScalar translates both components by k.
func (v Vector) AddScalar(k Dim) Vector { return Vector{v.X + k, v.Y + k} }

// SubScalar translates both components by -k.
func (v Vector) SubScalar(k Dim) Vector { return Vector{v.X - k, v.Y - k} }

// Span returns the componentwise maximum, i.e. the smallest vector that
// is >= both v and o on each axis.
func (v Vector) Span(o Vector) Vector {
	return Vector{maxDim(v.X, o.X), maxDim(v.Y, o.Y)}
}

// Min returns the componentwise minimum.
func (v Vector) Min(o Vector) Vector {
	return Vector{minDim(v.X, o.X), minDim(v.Y, o.Y)}
}

// Max is an alias for Span kept for symmetry with Min.
func (v Vector) Max(o Vector) Vector { return v.Span(o) }

func (v Vector) Left(k Dim) Vector  { return Vector{v.X - k, v.Y} }
func (v Vector) Right(k Dim) Vector { return Vector{v.X + k, v.Y} }
func (v Vector) Up(k Dim) Vector    { return Vector{v.X, v.Y - k} }
func (v Vector) Down(k Dim) Vector  { return Vector{v.X, v.Y + k} }

// Position resolves v against a bounding size p: a negative component
// means "from the right/bottom" and is rebased onto p's corresponding
// component. Positive components pass through unchanged.
func (v Vector) Position(p Vector) Vector {
	out := v
	if out.X < 0 {
		out.X = p.X + out.X
	}
	if out.Y < 0 {
		out.Y = p.Y + out.Y
	}
	return out
}

// DefaultTo replaces any DimLow/DimHigh component of v with the
// corresponding component of d, leaving concrete components untouched.
func (v Vector) DefaultTo(d Vector) Vector {
	out := v
	if out.X == DimLow || out.X == DimHigh {
		out.X = d.X
	}
	if out.Y == DimLow || out.Y == DimHigh {
		out.Y = d.Y
	}
	return out
}

// Less implements the lexicographic (x, y) order.
func (v Vector) Less(o Vector) bool {
	if v.X != o.X {
		return v.X < o.X
	}
	return v.Y < o.Y
}
