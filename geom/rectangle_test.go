package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kungfusheep/glint/geom"
)

func unionAll(rs []geom.Rectangle) geom.Rectangle {
	var out geom.Rectangle
	for _, r := range rs {
		out = out.Union(r)
	}
	return out
}

func area(r geom.Rectangle) int {
	if r.IsEmpty() {
		return 0
	}
	return int(r.Width()) * int(r.Height())
}

// TestSubtractionDecomposesIntersectingRectangles is Property 1 from the
// spec, restricted to the case where a and b actually intersect (see the
// doc comment on Rectangle.Sub for why the disjoint case is handled by
// DefaultIntersection instead).
func TestSubtractionDecomposesIntersectingRectangles(t *testing.T) {
	a := geom.Rect(0, 0, 10, 10)
	cases := []geom.Rectangle{
		geom.Rect(2, 2, 8, 8),   // fully inside
		geom.Rect(-5, -5, 5, 5), // corner overlap
		geom.Rect(-5, 3, 15, 7), // horizontal strip through the middle
		geom.Rect(0, 0, 10, 10), // identical
	}
	for _, b := range cases {
		pieces := a.Sub(b)
		inter, hasInter := a.Intersect(b)

		// pairwise disjoint
		for i := range pieces {
			for j := i + 1; j < len(pieces); j++ {
				_, overlap := pieces[i].Intersect(pieces[j])
				assert.Falsef(t, overlap, "pieces %v and %v overlap for b=%v", pieces[i], pieces[j], b)
			}
		}

		gotArea := 0
		for _, p := range pieces {
			gotArea += area(p)
		}
		wantArea := area(a)
		if hasInter {
			wantArea -= area(inter)
		}
		assert.Equal(t, wantArea, gotArea, "area conservation for b=%v", b)
	}
}

func TestDefaultIntersectionMatchesSubWhenOverlapping(t *testing.T) {
	a := geom.Rect(0, 0, 10, 10)
	b := geom.Rect(4, 4, 14, 14)
	require.Equal(t, a.Sub(b), a.DefaultIntersection(b))
}

func TestDefaultIntersectionKeepsWholeRectWhenDisjoint(t *testing.T) {
	a := geom.Rect(0, 0, 10, 10)
	b := geom.Rect(20, 20, 30, 30)
	assert.Equal(t, []geom.Rectangle{a}, a.DefaultIntersection(b))
	assert.Nil(t, a.Sub(b))
}

func TestSubOrderIsTopLeftRightBottom(t *testing.T) {
	a := geom.Rect(0, 0, 10, 10)
	b := geom.Rect(4, 4, 6, 6)
	got := a.Sub(b)
	want := []geom.Rectangle{
		geom.Rect(0, 0, 10, 4), // top
		geom.Rect(0, 4, 4, 6),  // left
		geom.Rect(6, 4, 10, 6), // right
		geom.Rect(0, 6, 10, 10),
	}
	assert.Equal(t, want, got)
}

func TestIntersectAndUnion(t *testing.T) {
	a := geom.Rect(0, 0, 5, 5)
	b := geom.Rect(3, 3, 8, 8)
	inter, ok := a.Intersect(b)
	require.True(t, ok)
	assert.Equal(t, geom.Rect(3, 3, 5, 5), inter)
	assert.Equal(t, geom.Rect(0, 0, 8, 8), a.Union(b))

	c := geom.Rect(20, 20, 21, 21)
	_, ok = a.Intersect(c)
	assert.False(t, ok)
}

func TestJoinedHorizontallyAndVertically(t *testing.T) {
	a := geom.Rect(0, 0, 5, 5)
	b := geom.Rect(5, 0, 10, 5)
	assert.True(t, a.JoinedHorizontally(b))
	span, ok := a.JoinedWith(b)
	require.True(t, ok)
	assert.Equal(t, geom.Rect(0, 0, 10, 5), span)

	c := geom.Rect(0, 5, 5, 10)
	assert.True(t, a.JoinedVertically(c))
}

func TestDefaultToResolvesSentinels(t *testing.T) {
	r := geom.Rect(geom.DimLow, 2, geom.DimHigh, 8)
	bounds := geom.Rect(0, 0, 80, 24)
	assert.Equal(t, geom.Rect(0, 2, 80, 8), r.DefaultTo(bounds))
}

func TestVectorPositionFromRight(t *testing.T) {
	bounds := geom.Vec(80, 24)
	assert.Equal(t, geom.Vec(78, 24), geom.Vec(-2, 24).Position(bounds))
	assert.Equal(t, geom.Vec(5, 22), geom.Vec(5, -2).Position(bounds))
}

func TestVectorDefaultTo(t *testing.T) {
	v := geom.Vec(geom.DimLow, 7)
	assert.Equal(t, geom.Vec(3, 7), v.DefaultTo(geom.Vec(3, 9)))
}
