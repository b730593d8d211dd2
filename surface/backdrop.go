package surface

import (
	"github.com/kungfusheep/glint/geom"
	"github.com/kungfusheep/glint/text"
)

// Backdrop is the element every Surface conventionally keeps at z-order
// index 0: an opaque fill covering the whole surface, so Find always
// resolves and MinSize has something to shrink down to when every other
// element is gone.
type Backdrop struct {
	area geom.Rectangle
	fill text.Char
}

// NewBackdrop returns a Backdrop covering area and filled with fill.
func NewBackdrop(area geom.Rectangle, fill text.Char) *Backdrop {
	return &Backdrop{area: area, fill: fill}
}

func (b *Backdrop) Area() geom.Rectangle { return b.area }

func (b *Backdrop) Move(area geom.Rectangle) { b.area = area }

func (b *Backdrop) Text(area geom.Rectangle) *text.Text {
	return text.Filled(b.fill, area.Size(), text.ModeReplace)
}
