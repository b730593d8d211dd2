package terminal_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kungfusheep/glint/display"
	"github.com/kungfusheep/glint/geom"
	"github.com/kungfusheep/glint/keyboard"
	"github.com/kungfusheep/glint/surface"
	"github.com/kungfusheep/glint/terminal"
	"github.com/kungfusheep/glint/text"
)

// window stands in for a real widget: just enough of an Element to
// exercise Terminal's expand/contract bookkeeping.
type window struct {
	area geom.Rectangle
	fill rune
}

func (w *window) Area() geom.Rectangle      { return w.area }
func (w *window) Move(area geom.Rectangle)  { w.area = area }
func (w *window) Text(area geom.Rectangle) *text.Text {
	ch := text.NewChar(w.fill, text.CharAttributes{Mix: text.ModeReplace})
	return text.Filled(ch, area.Size(), text.ModeReplace)
}

func newTestTerminal(t *testing.T, initial, max geom.Vector, opts ...terminal.Option) *terminal.Terminal {
	t.Helper()
	var out bytes.Buffer
	disp := display.New(&out, geom.Vec(0, 0), initial, nil)
	dec := keyboard.NewDecoder(bytes.NewReader(nil))
	term, err := terminal.New(disp, dec, initial, max, opts...)
	require.NoError(t, err)
	return term
}

func TestNewTerminalHasBackdropAndDesktop(t *testing.T) {
	term := newTestTerminal(t, geom.Vec(10, 6), geom.Vec(80, 24))
	order := term.Surface().ZOrder()
	require.Len(t, order, 2)
	assert.Equal(t, term.Backdrop(), order[0])
	assert.Equal(t, term.Desktop(), order[1])
	assert.Equal(t, geom.Vec(10, 6), term.Size())
}

func TestAddElementExpandsToFit(t *testing.T) {
	term := newTestTerminal(t, geom.Vec(10, 6), geom.Vec(80, 24))

	w := &window{area: geom.Rect(5, 5, 20, 12), fill: 'x'}
	_, err := term.AddElement(w, nil)
	require.NoError(t, err)

	assert.Equal(t, geom.Vec(20, 12), term.Size())

	backdropArea, err := term.Surface().Area(term.Backdrop())
	require.NoError(t, err)
	assert.Equal(t, geom.Rect(0, 0, 20, 12), backdropArea)
}

func TestAddElementNeverExceedsMaxSize(t *testing.T) {
	term := newTestTerminal(t, geom.Vec(10, 6), geom.Vec(15, 8))

	w := &window{area: geom.Rect(0, 0, 50, 50), fill: 'x'}
	_, err := term.AddElement(w, nil)
	require.NoError(t, err)

	assert.Equal(t, geom.Vec(15, 8), term.Size())
}

func TestDeleteElementContracts(t *testing.T) {
	term := newTestTerminal(t, geom.Vec(10, 6), geom.Vec(80, 24))

	w := &window{area: geom.Rect(0, 0, 20, 12), fill: 'x'}
	h, err := term.AddElement(w, nil)
	require.NoError(t, err)
	assert.Equal(t, geom.Vec(20, 12), term.Size())

	require.NoError(t, term.DeleteElement(h))
	assert.Equal(t, geom.Vec(1, 1), term.Size())
}

func TestDeleteElementContractsToMinimumSize(t *testing.T) {
	term := newTestTerminal(t, geom.Vec(10, 6), geom.Vec(80, 24),
		terminal.WithMinimumSize(geom.Vec(10, 6)))

	w := &window{area: geom.Rect(0, 0, 20, 12), fill: 'x'}
	h, err := term.AddElement(w, nil)
	require.NoError(t, err)

	require.NoError(t, term.DeleteElement(h))
	assert.Equal(t, geom.Vec(10, 6), term.Size())
}

func TestMoveWindowExpandsAndContracts(t *testing.T) {
	term := newTestTerminal(t, geom.Vec(10, 6), geom.Vec(80, 24))

	w := &window{area: geom.Rect(0, 0, 10, 6), fill: 'x'}
	h, err := term.AddElement(w, nil)
	require.NoError(t, err)
	assert.Equal(t, geom.Vec(10, 6), term.Size())

	require.NoError(t, term.MoveWindow(h, geom.Rect(0, 0, 30, 20)))
	assert.Equal(t, geom.Vec(30, 20), term.Size())

	require.NoError(t, term.MoveWindow(h, geom.Rect(0, 0, 5, 4)))
	assert.Equal(t, geom.Vec(5, 4), term.Size())
}

func TestExpandDisabledDoesNotGrow(t *testing.T) {
	term := newTestTerminal(t, geom.Vec(10, 6), geom.Vec(80, 24), terminal.WithExpand(false))

	w := &window{area: geom.Rect(0, 0, 30, 20), fill: 'x'}
	_, err := term.AddElement(w, nil)
	require.NoError(t, err)

	assert.Equal(t, geom.Vec(10, 6), term.Size())
}

func TestContractDisabledDoesNotShrink(t *testing.T) {
	term := newTestTerminal(t, geom.Vec(10, 6), geom.Vec(80, 24), terminal.WithContract(false))

	w := &window{area: geom.Rect(0, 0, 20, 12), fill: 'x'}
	h, err := term.AddElement(w, nil)
	require.NoError(t, err)
	require.NoError(t, term.DeleteElement(h))

	assert.Equal(t, geom.Vec(20, 12), term.Size())
}

func TestResizeSetsSizeAuthoritatively(t *testing.T) {
	term := newTestTerminal(t, geom.Vec(10, 6), geom.Vec(80, 24))

	require.NoError(t, term.Resize(geom.Vec(40, 20)))
	assert.Equal(t, geom.Vec(40, 20), term.Size())

	backdropArea, err := term.Surface().Area(term.Backdrop())
	require.NoError(t, err)
	assert.Equal(t, geom.Rect(0, 0, 40, 20), backdropArea)
}
