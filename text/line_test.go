package text_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kungfusheep/glint/text"
)

func rowString(t *text.Text, y text.Dim) string {
	var b strings.Builder
	for x := text.Dim(0); x < t.Width(); x++ {
		c, _ := t.At(text.Vec(x, y))
		b.WriteRune(c.Rune)
	}
	return b.String()
}

func dump(t *text.Text) string {
	rows := make([]string, t.Height())
	for y := text.Dim(0); y < t.Height(); y++ {
		rows[y] = rowString(t, y)
	}
	return strings.Join(rows, "\n")
}

// TestBoxThenLineProducesMixedWeightTees is end-to-end scenario S5.
func TestBoxThenLineProducesMixedWeightTees(t *testing.T) {
	tx := text.Filled(text.NewChar(' ', text.CharAttributes{Mix: text.ModeReplace}), text.Vec(5, 4), text.ModeReplace)

	_, err := tx.Box(text.BoxSpec{Area: text.Rect(0, 0, 5, 4), Strength: 2})
	require.NoError(t, err)
	assert.Equal(t, "┏━━━┓\n┃...┃\n┃...┃\n┗━━━┛", strings.ReplaceAll(dump(tx), " ", "."))

	_, err = tx.Line(text.LineSpec{
		Position:    text.Vec(0, 1),
		EndPosition: text.Vec(text.DimHigh, 1),
		Orientation: text.Horizontal,
	}, 1, 0, false)
	require.NoError(t, err)

	assert.Equal(t, "┏━━━┓\n┠───┨\n┃...┃\n┗━━━┛", strings.ReplaceAll(dump(tx), " ", "."))
}

func TestLineStrengthValidated(t *testing.T) {
	tx := text.Filled(text.NewChar(' ', text.CharAttributes{Mix: text.ModeReplace}), text.Vec(5, 4), text.ModeReplace)
	_, err := tx.Line(text.LineSpec{Position: text.Vec(0, 0), EndPosition: text.Vec(3, 0), Orientation: text.Horizontal}, 3, 0, false)
	assert.Error(t, err)
}
