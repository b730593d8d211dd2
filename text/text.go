package text

import (
	"strings"

	"github.com/kungfusheep/glint/internal/glerr"
)

// Text is a rectangular grid of styled cells. Every row has the same
// width; an empty Text (Height() == 0) reports Width() == 0 too.
type Text struct {
	data  [][]Char
	width Dim
}

// Bounds returns the rectangle (0, 0, Width, Height) the receiver
// currently covers.
func (t *Text) Bounds() Rectangle {
	return Rect(0, 0, t.width, Dim(len(t.data)))
}

// Width returns the grid width (0 for an empty Text).
func (t *Text) Width() Dim { return t.width }

// Height returns the number of rows.
func (t *Text) Height() Dim { return Dim(len(t.data)) }

// Size returns (Width, Height) as a Vector.
func (t *Text) Size() Vector { return Vector{t.width, t.Height()} }

// New builds a Text from str, split on line feeds. The grid width is
// the widest line; shorter lines are right-padded with spaces carrying
// the given attributes.
func New(str string, attrs CharAttributes, mix AttributeMode) *Text {
	attrs.Mix = mix
	lines := strings.Split(str, "\n")
	width := Dim(0)
	for _, l := range lines {
		if w := Dim(len([]rune(l))); w > width {
			width = w
		}
	}
	data := make([][]Char, len(lines))
	for y, l := range lines {
		row := make([]Char, width)
		runes := []rune(l)
		for x := Dim(0); x < width; x++ {
			if int(x) < len(runes) {
				row[x] = NewChar(runes[x], attrs)
			} else {
				row[x] = Space(attrs)
			}
		}
		data[y] = row
	}
	return &Text{data: data, width: width}
}

// Filled builds a size-sized Text where every cell is ch. If ch.Mix is
// ModeDefault, it is replaced with mixDefault.
func Filled(ch Char, size Vector, mixDefault AttributeMode) *Text {
	if ch.Attrs.Mix == ModeDefault {
		ch.Attrs.Mix = mixDefault
	}
	t := &Text{}
	t.Resize(size, ch)
	return t
}

// Empty returns a zero-size Text.
func Empty() *Text { return &Text{} }

func newRow(width Dim, fill Char) []Char {
	row := make([]Char, width)
	for i := range row {
		row[i] = fill
	}
	return row
}

// Extend grows rows and columns to at least size, filling new cells
// with fill. It never shrinks either dimension.
func (t *Text) Extend(size Vector, fill Char) {
	newWidth := t.width
	if size.X > newWidth {
		newWidth = size.X
	}
	newHeight := Dim(len(t.data))
	if size.Y > newHeight {
		newHeight = size.Y
	}
	t.Resize(Vector{newWidth, newHeight}, fill)
}

// Resize grows or truncates the receiver to exactly size, filling any
// newly exposed cells with fill.
func (t *Text) Resize(size Vector, fill Char) {
	newData := make([][]Char, size.Y)
	for y := Dim(0); y < size.Y; y++ {
		row := newRow(size.X, fill)
		if int(y) < len(t.data) {
			copy(row, t.data[y])
		}
		newData[y] = row
	}
	t.data = newData
	t.width = size.X
	if size.Y <= 0 {
		t.width = 0
	}
}

func (t *Text) inBounds(p Vector) bool {
	return p.X >= 0 && p.X < t.width && p.Y >= 0 && p.Y < Dim(len(t.data))
}

// at resolves possibly-negative coordinates against the receiver's size
// and returns the cell there; out-of-range positions return a blank
// cell rather than panicking (internal callers only — public readers go
// through At, which reports glerr.IndexOutOfBounds).
func (t *Text) at(p Vector) Char {
	p = p.Position(t.Size())
	if !t.inBounds(p) {
		return Space(DefaultCharAttributes)
	}
	return t.data[p.Y][p.X]
}

func (t *Text) setRaw(p Vector, c Char) {
	p = p.Position(t.Size())
	if !t.inBounds(p) {
		return
	}
	t.data[p.Y][p.X] = c
}

// At returns the Char at pos, resolving negative components via
// Vector.Position. It reports glerr.IndexOutOfBounds if the resolved
// position still falls outside the receiver.
func (t *Text) At(pos Vector) (Char, error) {
	p := pos.Position(t.Size())
	if !t.inBounds(p) {
		return Char{}, &glerr.IndexOutOfBounds{Op: "Text.At", Pos: p}
	}
	return t.data[p.Y][p.X], nil
}

// Fill writes ch into every cell of area. area defaults to the whole
// Text; if it extends past the current size, the receiver is extended
// first.
func (t *Text) Fill(ch Char, area Rectangle) {
	area = area.DefaultTo(t.Bounds())
	need := area.BottomRight()
	if need.X > t.width || need.Y > Dim(len(t.data)) {
		t.Extend(need, Space(DefaultCharAttributes))
	}
	for y := area.Y1; y < area.Y2; y++ {
		for x := area.X1; x < area.X2; x++ {
			t.data[y][x] = ch
		}
	}
}

// Slice copies the sub-region of the receiver covered by area into a
// new Text. area is clipped to the receiver's bounds; a disjoint area
// yields an empty Text.
func (t *Text) Slice(area Rectangle) *Text {
	clipped, ok := area.Intersect(t.Bounds())
	if !ok {
		return Empty()
	}
	out := &Text{}
	out.Resize(clipped.Size(), Space(DefaultCharAttributes))
	for y := clipped.Y1; y < clipped.Y2; y++ {
		copy(out.data[y-clipped.Y1], t.data[y][clipped.X1:clipped.X2])
	}
	return out
}

// Patch overlays other onto the receiver with its top-left corner at
// pos, clipping at every edge; pos may be negative. Each overlapping
// cell is combined via Combine(self, other, mixDefault, overrideMix,
// resetMix).
func (t *Text) Patch(other *Text, pos Vector, mixDefault, overrideMix, resetMix AttributeMode) error {
	area := RectFromSize(pos, other.Size())
	return t.patchClipped(other, pos, area, mixDefault, overrideMix, resetMix)
}

// PatchArea is Patch, but clipped to area, which must lie within the
// receiver's bounds (otherwise glerr.IndexOutOfBounds is reported).
func (t *Text) PatchArea(other *Text, area Rectangle, pos Vector, mixDefault, overrideMix, resetMix AttributeMode) error {
	if _, ok := area.Intersect(t.Bounds()); !ok || area.Union(t.Bounds()) != t.Bounds() {
		return &glerr.IndexOutOfBounds{Op: "Text.PatchArea", Pos: area}
	}
	return t.patchClipped(other, pos, area, mixDefault, overrideMix, resetMix)
}

func (t *Text) patchClipped(other *Text, pos Vector, area Rectangle, mixDefault, overrideMix, resetMix AttributeMode) error {
	clip, ok := area.Intersect(t.Bounds())
	if !ok {
		return nil
	}
	for y := clip.Y1; y < clip.Y2; y++ {
		for x := clip.X1; x < clip.X2; x++ {
			op := Vector{x - pos.X, y - pos.Y}
			if !other.inBounds(op) {
				continue
			}
			self := t.data[y][x]
			combined, err := Combine(self, other.data[op.Y][op.X], mixDefault, overrideMix, resetMix)
			if err != nil {
				return err
			}
			t.data[y][x] = combined
		}
	}
	return nil
}

// SetAttr rewrites the attributes of every cell in area by combining it
// with a rune-less, attribute-only Char, then forces the resulting mix
// to setMix when setMix != ModeDefault.
func (t *Text) SetAttr(attrs CharAttributes, area Rectangle, setMix AttributeMode) error {
	area = area.DefaultTo(t.Bounds())
	clip, ok := area.Intersect(t.Bounds())
	if !ok {
		return nil
	}
	patch := NewChar(NoneRune, attrs)
	for y := clip.Y1; y < clip.Y2; y++ {
		for x := clip.X1; x < clip.X2; x++ {
			// patch is "self" here: Ignore keeps self's (i.e. the new)
			// attributes and takes the rune from "other" (the existing
			// cell) unless that rune is NoneRune — which it never is
			// for a real cell, so the existing glyph is preserved and
			// only its styling changes.
			combined, err := Combine(patch, t.data[y][x], ModeDefault, ModeIgnore, setMix)
			if err != nil {
				return err
			}
			t.data[y][x] = combined
		}
	}
	return nil
}
