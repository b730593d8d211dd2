// Package device defines the narrow contract between the compositor and
// whatever consumes its output, such as a physical terminal or a test
// double.
package device

import (
	"github.com/kungfusheep/glint/geom"
	"github.com/kungfusheep/glint/text"
)

// Update instructs a Device to write text with its top-left corner at
// Position.
type Update struct {
	Position geom.Vector
	Text     *text.Text
}

// Device is the sink a Surface drives. Test doubles implement it
// directly; a display.Display is adapted to it by Display.AsDevice.
// surface.Surface does not implement it, so a surface cannot be used as
// another surface's Device.
type Device interface {
	Update(updates []Update) error
}

// Func adapts a plain function to the Device interface, the way
// http.HandlerFunc adapts a function to http.Handler — handy for tests
// that just want to record what they were sent.
type Func func(updates []Update) error

func (f Func) Update(updates []Update) error { return f(updates) }
