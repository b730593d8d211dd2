package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kungfusheep/glint/text"
)

// TestQuadRoundTrip is Property 8: quad_to_rune(rune_to_quad(r)) == r for
// every rune present in the table.
func TestQuadRoundTrip(t *testing.T) {
	for _, r := range []rune{
		'─', '━', '│', '┃',
		'┄', '┅', '┆', '┇', '┈', '┉', '┊', '┋',
		'┌', '┍', '┎', '┏', '┐', '┑', '┒', '┓',
		'└', '┕', '┖', '┗', '┘', '┙', '┚', '┛',
		'╭', '╮', '╰', '╯',
		'├', '┤', '┬', '┴', '┼',
		'┣', '┫', '┳', '┻', '╋',
		'┠', '┨', '┯', '┷',
		'╴', '╵', '╶', '╷', '╸', '╹', '╺', '╻', '╼', '╽', '╾', '╿',
	} {
		q := text.QuadOf(r)
		got, ok := text.RuneOf(q)
		if assert.True(t, ok, "rune %q has no reverse mapping", r) {
			assert.Equal(t, r, got, "round trip for %q", r)
		}
	}
}

func TestUnknownRuneHasZeroQuad(t *testing.T) {
	q := text.QuadOf('x')
	assert.Equal(t, text.Quad{}, q)
}
