package text

import "sync"

// strength of a box-drawing segment in one direction.
const (
	segNone  = 0
	segLight = 1
	segHeavy = 2
)

// Quad styles. Normal is the plain corner/tee shape; Rounded only
// applies to simple 90-degree light corners; TripleDash/QuadDash only
// apply to straight (horizontal-only or vertical-only) quads.
const (
	StyleNormal = iota
	StyleRounded
	StyleTripleDash
	StyleQuadDash
)

// Quad is the four-direction-plus-style decomposition of a box-drawing
// rune: how strongly (none/light/heavy) a line segment reaches toward
// each of the four neighbors, plus a style modifier for corners and
// straight runs.
type Quad struct {
	North, South, West, East int
	Style                    int
}

// IsStraight reports whether the quad is a plain run in a single axis
// (only north/south or only west/east engaged) — the shape dash styles
// apply to.
func (q Quad) IsStraight() bool {
	horiz := q.West != segNone || q.East != segNone
	vert := q.North != segNone || q.South != segNone
	return horiz != vert
}

var (
	quadTableOnce sync.Once
	quadToRune    map[Quad]rune
	runeToQuadTbl map[rune]Quad
)

func buildQuadTables() {
	quadToRune = make(map[Quad]rune)
	runeToQuadTbl = make(map[rune]Quad)
	add := func(r rune, q Quad) {
		quadToRune[q] = r
		runeToQuadTbl[r] = q
	}

	// Plain straights.
	add('─', Quad{West: segLight, East: segLight})
	add('━', Quad{West: segHeavy, East: segHeavy})
	add('│', Quad{North: segLight, South: segLight})
	add('┃', Quad{North: segHeavy, South: segHeavy})

	// Dashed straights.
	add('┄', Quad{West: segLight, East: segLight, Style: StyleTripleDash})
	add('┅', Quad{West: segHeavy, East: segHeavy, Style: StyleTripleDash})
	add('┆', Quad{North: segLight, South: segLight, Style: StyleTripleDash})
	add('┇', Quad{North: segHeavy, South: segHeavy, Style: StyleTripleDash})
	add('┈', Quad{West: segLight, East: segLight, Style: StyleQuadDash})
	add('┉', Quad{West: segHeavy, East: segHeavy, Style: StyleQuadDash})
	add('┊', Quad{North: segLight, South: segLight, Style: StyleQuadDash})
	add('┋', Quad{North: segHeavy, South: segHeavy, Style: StyleQuadDash})

	// Corners: each of the four corners in (light,light)/(light,heavy)/
	// (heavy,light)/(heavy,heavy) weight combinations.
	add('┌', Quad{South: segLight, East: segLight})
	add('┍', Quad{South: segLight, East: segHeavy})
	add('┎', Quad{South: segHeavy, East: segLight})
	add('┏', Quad{South: segHeavy, East: segHeavy})

	add('┐', Quad{South: segLight, West: segLight})
	add('┑', Quad{South: segLight, West: segHeavy})
	add('┒', Quad{South: segHeavy, West: segLight})
	add('┓', Quad{South: segHeavy, West: segHeavy})

	add('└', Quad{North: segLight, East: segLight})
	add('┕', Quad{North: segLight, East: segHeavy})
	add('┖', Quad{North: segHeavy, East: segLight})
	add('┗', Quad{North: segHeavy, East: segHeavy})

	add('┘', Quad{North: segLight, West: segLight})
	add('┙', Quad{North: segLight, West: segHeavy})
	add('┚', Quad{North: segHeavy, West: segLight})
	add('┛', Quad{North: segHeavy, West: segHeavy})

	// Rounded corners (light only).
	add('╭', Quad{South: segLight, East: segLight, Style: StyleRounded})
	add('╮', Quad{South: segLight, West: segLight, Style: StyleRounded})
	add('╰', Quad{North: segLight, East: segLight, Style: StyleRounded})
	add('╯', Quad{North: segLight, West: segLight, Style: StyleRounded})

	// Tees and cross, light and heavy.
	add('├', Quad{North: segLight, South: segLight, East: segLight})
	add('┤', Quad{North: segLight, South: segLight, West: segLight})
	add('┬', Quad{South: segLight, West: segLight, East: segLight})
	add('┴', Quad{North: segLight, West: segLight, East: segLight})
	add('┼', Quad{North: segLight, South: segLight, West: segLight, East: segLight})

	add('┣', Quad{North: segHeavy, South: segHeavy, East: segHeavy})
	add('┫', Quad{North: segHeavy, South: segHeavy, West: segHeavy})
	add('┳', Quad{South: segHeavy, West: segHeavy, East: segHeavy})
	add('┻', Quad{North: segHeavy, West: segHeavy, East: segHeavy})
	add('╋', Quad{North: segHeavy, South: segHeavy, West: segHeavy, East: segHeavy})

	// Mixed-weight tees produced by a heavy line crossing a light one
	// (see the S5 scenario: a heavy box frame split by a light rule).
	add('┠', Quad{North: segHeavy, South: segHeavy, East: segLight})
	add('┨', Quad{North: segHeavy, South: segHeavy, West: segLight})
	add('┯', Quad{South: segLight, West: segHeavy, East: segHeavy})
	add('┷', Quad{North: segLight, West: segHeavy, East: segHeavy})

	// Single-arm stubs: a quad with exactly one direction engaged has no
	// corner/tee/straight glyph of its own, but Box/Line build a corner
	// by stamping one arm at a time (stampCell round-trips through the
	// rune between the two calls), so the intermediate one-arm state
	// must have a glyph or the second stamp finds a blank cell instead
	// of the first arm and the corner never forms.
	add('╴', Quad{West: segLight})
	add('╵', Quad{North: segLight})
	add('╶', Quad{East: segLight})
	add('╷', Quad{South: segLight})
	add('╸', Quad{West: segHeavy})
	add('╹', Quad{North: segHeavy})
	add('╺', Quad{East: segHeavy})
	add('╻', Quad{South: segHeavy})
	add('╼', Quad{West: segLight, East: segHeavy})
	add('╽', Quad{North: segLight, South: segHeavy})
	add('╾', Quad{West: segHeavy, East: segLight})
	add('╿', Quad{North: segHeavy, South: segLight})

	// Double-line glyphs (═ ║ ╔ ...) are deliberately not represented:
	// the spec's quad model caps direction strength at {none, light,
	// heavy}, and a double line is a third, unrelated strength. They
	// fall outside the quad algebra this table implements.
}

// QuadOf returns the quad for r, or the all-none quad if r is not a
// recognized box-drawing rune.
func QuadOf(r rune) Quad {
	quadTableOnce.Do(buildQuadTables)
	return runeToQuadTbl[r]
}

// RuneOf returns the rune for q, and ok=false if no glyph exists for
// that exact combination.
func RuneOf(q Quad) (rune, bool) {
	quadTableOnce.Do(buildQuadTables)
	r, ok := quadToRune[q]
	return r, ok
}
