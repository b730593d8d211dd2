package keyboard_test

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kungfusheep/glint/keyboard"
)

func newPipeDecoder(t *testing.T) (*keyboard.Decoder, *io.PipeWriter) {
	t.Helper()
	r, w := io.Pipe()
	return keyboard.NewDecoder(r), w
}

func nextEvent(t *testing.T, d *keyboard.Decoder) keyboard.Event {
	t.Helper()
	type result struct {
		ev  keyboard.Event
		err error
	}
	ch := make(chan result, 1)
	go func() {
		ev, err := d.Next()
		ch <- result{ev, err}
	}()
	select {
	case r := <-ch:
		require.NoError(t, r.err)
		return r.ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return keyboard.Event{}
	}
}

func TestDecodesPlainChar(t *testing.T) {
	d, w := newPipeDecoder(t)
	defer w.Close()

	w.Write([]byte("a"))
	ev := nextEvent(t, d)
	assert.Equal(t, keyboard.KeyChar, ev.Key.Key)
	assert.Equal(t, 'a', ev.Key.Rune)
	assert.Equal(t, keyboard.Mod(0), ev.Key.Mod)
}

func TestDecodesCtrlChar(t *testing.T) {
	d, w := newPipeDecoder(t)
	defer w.Close()

	w.Write([]byte{0x01}) // Ctrl-A
	ev := nextEvent(t, d)
	assert.Equal(t, keyboard.KeyChar, ev.Key.Key)
	assert.Equal(t, 'a', ev.Key.Rune)
	assert.True(t, ev.Key.Mod.Has(keyboard.ModCtrl))
}

func TestDecodesEnterTabBackspace(t *testing.T) {
	d, w := newPipeDecoder(t)
	defer w.Close()

	w.Write([]byte{0x0d})
	assert.Equal(t, keyboard.KeyEnter, nextEvent(t, d).Key.Key)

	w.Write([]byte{0x09})
	assert.Equal(t, keyboard.KeyTab, nextEvent(t, d).Key.Key)

	w.Write([]byte{0x7f})
	assert.Equal(t, keyboard.KeyBackspace, nextEvent(t, d).Key.Key)
}

func TestDecodesArrowKey(t *testing.T) {
	d, w := newPipeDecoder(t)
	defer w.Close()

	w.Write([]byte("\x1b[A"))
	ev := nextEvent(t, d)
	assert.Equal(t, keyboard.KeyArrowUp, ev.Key.Key)
}

func TestDecodesModifiedArrowKey(t *testing.T) {
	d, w := newPipeDecoder(t)
	defer w.Close()

	// CSI 1;5A = Up arrow with Ctrl (param 5 = 1 + ModCtrl(4)).
	w.Write([]byte("\x1b[1;5A"))
	ev := nextEvent(t, d)
	assert.Equal(t, keyboard.KeyArrowUp, ev.Key.Key)
	assert.True(t, ev.Key.Mod.Has(keyboard.ModCtrl))
}

func TestDecodesFunctionKeyTilde(t *testing.T) {
	d, w := newPipeDecoder(t)
	defer w.Close()

	w.Write([]byte("\x1b[15~"))
	ev := nextEvent(t, d)
	assert.Equal(t, keyboard.KeyF5, ev.Key.Key)
}

func TestDecodesSS3ArrowKey(t *testing.T) {
	d, w := newPipeDecoder(t)
	defer w.Close()

	w.Write([]byte("\x1bOA"))
	ev := nextEvent(t, d)
	assert.Equal(t, keyboard.KeyArrowUp, ev.Key.Key)
}

func TestBareEscAfterQuietTime(t *testing.T) {
	d, w := newPipeDecoder(t)
	defer w.Close()

	w.Write([]byte{0x1b})
	ev := nextEvent(t, d)
	assert.Equal(t, keyboard.KeyEsc, ev.Key.Key)
}

func TestAltModifiedChar(t *testing.T) {
	d, w := newPipeDecoder(t)
	defer w.Close()

	w.Write([]byte{0x1b, 'x'})
	ev := nextEvent(t, d)
	assert.Equal(t, keyboard.KeyChar, ev.Key.Key)
	assert.Equal(t, 'x', ev.Key.Rune)
	assert.True(t, ev.Key.Mod.Has(keyboard.ModAlt))
}

func TestDecodesMouseReport(t *testing.T) {
	d, w := newPipeDecoder(t)
	defer w.Close()

	// Button 1 press, shift held (4), at column 5 row 10.
	w.Write([]byte("\x1b[<4;5;10M"))
	ev := nextEvent(t, d)
	require.NotNil(t, ev.Mouse)
	assert.Equal(t, keyboard.MouseButton1, ev.Mouse.Button)
	assert.True(t, ev.Mouse.Shift)
	assert.True(t, ev.Mouse.Pressed)
	assert.Equal(t, 4, ev.Mouse.X)
	assert.Equal(t, 9, ev.Mouse.Y)
}

func TestDecodesMouseMotion(t *testing.T) {
	d, w := newPipeDecoder(t)
	defer w.Close()

	w.Write([]byte("\x1b[<35;1;1M"))
	ev := nextEvent(t, d)
	require.NotNil(t, ev.Mouse)
	assert.True(t, ev.Mouse.Motion)
}

func TestReadReplyRoutesCursorReport(t *testing.T) {
	d, w := newPipeDecoder(t)
	defer w.Close()

	w.Write([]byte("\x1b[24;80R"))
	reply, err := d.ReadReply(time.Second)
	require.NoError(t, err)
	assert.Equal(t, []byte("[24;80R"), reply)
}

func TestReadReplyTimesOutWithNoReply(t *testing.T) {
	d, w := newPipeDecoder(t)
	defer w.Close()

	_, err := d.ReadReply(10 * time.Millisecond)
	assert.Error(t, err)
}
