// Package display renders Text grids to a physical (or recorded) VT
// terminal by diffing against a back-buffer and emitting only the SGR
// and cursor-movement bytes a change actually requires.
package display

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/kungfusheep/glint/device"
	"github.com/kungfusheep/glint/geom"
	"github.com/kungfusheep/glint/internal/glerr"
	"github.com/kungfusheep/glint/text"
)

// ReplySource reads a terminal reply (e.g. a cursor-position report)
// within timeout. keyboard.Decoder implements this; Display depends on
// it structurally so the two packages don't need to import each other.
type ReplySource interface {
	ReadReply(timeout time.Duration) ([]byte, error)
}

// Display is a VT back-buffer: it holds an output byte sink, a tracked
// cursor/fg/bg/attr, a screen position and max size, and writes only the
// bytes needed for cells that differ from the back-buffer.
type Display struct {
	out      io.Writer
	buf      bytes.Buffer
	reply    ReplySource
	position geom.Vector
	maxSize  geom.Vector
	back     *text.Text

	cursor      geom.Vector
	cursorValid bool
	fg, bg      text.Rgb
	attr        text.Attributes
	styleValid  bool
}

// New returns a Display writing to out, anchored at position on the
// physical terminal, never drawing past maxSize. reply may be nil if
// the caller never intends to call Cursor or TerminalSize.
func New(out io.Writer, position, maxSize geom.Vector, reply ReplySource) *Display {
	d := &Display{out: out, position: position, maxSize: maxSize, reply: reply}
	d.back = text.Empty()
	d.back.Resize(maxSize, nullCell)
	return d
}

// nullCell is never equal to any cell a renderer produces (Rune 0 is
// not a valid glyph), so the first Update after Resize always writes
// every cell it touches.
var nullCell = text.Char{}

// Resize grows or shrinks the back-buffer to size. Every cell, not
// just newly exposed ones, is reset to the null sentinel: a physical
// resize reflows or clears the real screen in ways the old back-buffer
// can no longer speak for, so the next Update must rewrite everything
// rather than trust a stale diff.
func (d *Display) Resize(size geom.Vector) {
	d.maxSize = size
	d.back = text.Empty()
	d.back.Resize(size, nullCell)
	d.cursorValid = false
	d.styleValid = false
}

// Update writes t at position pos (in display-local coordinates),
// clipped to the back-buffer's bounds, emitting only the bytes that
// differ from what's already there.
func (d *Display) Update(pos geom.Vector, t *text.Text) error {
	d.buf.Reset()
	bounds := d.back.Bounds()
	area, ok := geom.RectFromSize(pos, t.Size()).Intersect(bounds)
	if ok {
		for y := area.Y1; y < area.Y2; y++ {
			for x := area.X1; x < area.X2; x++ {
				local := geom.Vec(x-pos.X, y-pos.Y)
				cell, err := t.At(local)
				if err != nil {
					continue
				}
				existing, _ := d.back.At(geom.Vec(x, y))
				if cell == existing {
					continue
				}
				d.writeCell(geom.Vec(x, y), cell)
			}
		}
	}
	if d.buf.Len() == 0 {
		return nil
	}
	if _, err := d.out.Write(d.buf.Bytes()); err != nil {
		return &glerr.TerminalIO{Op: "Display.Update", Err: err}
	}
	return nil
}

// Updates applies a batch of (position, text) writes in order.
func (d *Display) Updates(pos []geom.Vector, texts []*text.Text) error {
	for i := range pos {
		if err := d.Update(pos[i], texts[i]); err != nil {
			return err
		}
	}
	return nil
}

// writeCell emits the escape sequences needed to place cell at p and
// records it as the new back-buffer / cursor state.
func (d *Display) writeCell(p geom.Vector, cell text.Char) {
	if !d.cursorValid || d.cursor != p {
		fmt.Fprintf(&d.buf, "\x1b[%d;%dH", d.position.Y+p.Y+1, d.position.X+p.X+1)
	}
	d.writeStyleDelta(cell.Attrs)
	d.buf.WriteRune(cell.Rune)

	d.back.Fill(cell, geom.Rect(p.X, p.Y, p.X+1, p.Y+1))
	d.cursor = geom.Vec(p.X+1, p.Y)
	d.cursorValid = true
}

func channel255(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return int(v*255 + 0.5)
}

// writeStyleDelta emits SGR codes for only the fg/bg/attribute fields
// that differ from the tracked style, then updates the tracked style.
func (d *Display) writeStyleDelta(attrs text.CharAttributes) {
	var codes []string

	if !d.styleValid || d.fg != attrs.FG {
		if attrs.FG.IsSentinel() {
			codes = append(codes, "39")
		} else {
			codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", channel255(attrs.FG.R), channel255(attrs.FG.G), channel255(attrs.FG.B)))
		}
	}
	if !d.styleValid || d.bg != attrs.BG {
		if attrs.BG.IsSentinel() {
			codes = append(codes, "49")
		} else {
			codes = append(codes, fmt.Sprintf("48;2;%d;%d;%d", channel255(attrs.BG.R), channel255(attrs.BG.G), channel255(attrs.BG.B)))
		}
	}
	codes = append(codes, attrToggleCodes(d.attr, attrs.Attr, d.styleValid)...)

	if len(codes) > 0 {
		d.buf.WriteString("\x1b[")
		for i, c := range codes {
			if i > 0 {
				d.buf.WriteByte(';')
			}
			d.buf.WriteString(c)
		}
		d.buf.WriteByte('m')
	}

	d.fg, d.bg, d.attr, d.styleValid = attrs.FG, attrs.BG, attrs.Attr, true
}

// attrToggleCodes returns the on/off SGR codes needed to move from
// `from` to `to`; a never-initialized tracked state forces every set
// bit in `to` to be emitted.
func attrToggleCodes(from, to text.Attributes, trackedValid bool) []string {
	type toggle struct {
		bit    text.Attributes
		on, off string
	}
	toggles := []toggle{
		{text.AttrBold, "1", "22"},
		{text.AttrUnderline, "4", "24"},
		{text.AttrReverse, "7", "27"},
		{text.AttrBlink, "5", "25"},
	}
	var codes []string
	for _, tg := range toggles {
		wasOn := trackedValid && from.Has(tg.bit)
		isOn := to.Has(tg.bit)
		if wasOn == isOn {
			continue
		}
		if isOn {
			codes = append(codes, tg.on)
		} else {
			codes = append(codes, tg.off)
		}
	}
	return codes
}

// AsDevice adapts Display to device.Device, so a Surface can drive it
// directly: each batch of device.Update fragments becomes one ordered
// call to Updates.
func (d *Display) AsDevice() device.Device {
	return device.Func(func(updates []device.Update) error {
		pos := make([]geom.Vector, len(updates))
		texts := make([]*text.Text, len(updates))
		for i, u := range updates {
			pos[i] = u.Position
			texts[i] = u.Text
		}
		return d.Updates(pos, texts)
	})
}

// SetCursorVisible toggles the terminal cursor's visibility.
func (d *Display) SetCursorVisible(visible bool) error {
	seq := "\x1b[?25h"
	if !visible {
		seq = "\x1b[?25l"
	}
	if _, err := io.WriteString(d.out, seq); err != nil {
		return &glerr.TerminalIO{Op: "Display.SetCursorVisible", Err: err}
	}
	return nil
}
