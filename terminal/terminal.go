// Package terminal is the thin composition layer over the compositor:
// it owns one Surface (with a backdrop and a desktop element always at
// the bottom of the stack), one Display, and one keyboard.Decoder, and
// keeps the visible canvas expanded to fit whatever's been added and
// contracted back down once it's gone.
package terminal

import (
	"github.com/kungfusheep/glint/display"
	"github.com/kungfusheep/glint/geom"
	"github.com/kungfusheep/glint/internal/glog"
	"github.com/kungfusheep/glint/keyboard"
	"github.com/kungfusheep/glint/surface"
	"github.com/kungfusheep/glint/text"
)

// Terminal composes the compositor, the VT renderer, and the keyboard
// decoder behind expand/contract bookkeeping so callers never have to
// reason about backdrop or desktop housekeeping themselves.
type Terminal struct {
	surface  *surface.Surface
	display  *display.Display
	keyboard *keyboard.Decoder

	backdrop surface.Handle
	desktop  surface.Handle

	currentSize geom.Vector
	maxSize     geom.Vector
	minimumSize geom.Vector

	expand   bool
	contract bool

	log glog.Logger
}

// fillChar is the blank cell the backdrop and desktop elements render;
// it carries no style so it never fights with whatever a window draws
// over it.
var fillChar = text.Space(text.CharAttributes{Mix: text.ModeReplace})

// New builds a Terminal of initialSize, never growing past maxSize,
// driving disp and reading from kb.
func New(disp *display.Display, kb *keyboard.Decoder, initialSize, maxSize geom.Vector, opts ...Option) (*Terminal, error) {
	cfg := newOptions(disp, opts)

	s := surface.New(cfg.device)
	area := geom.RectFromSize(geom.Vec(0, 0), initialSize)

	backdropHandle, err := s.Add(surface.NewBackdrop(area, fillChar), nil)
	if err != nil {
		return nil, err
	}
	desktopHandle, err := s.Add(surface.NewBackdrop(area, fillChar), nil)
	if err != nil {
		return nil, err
	}

	return &Terminal{
		surface:     s,
		display:     disp,
		keyboard:    kb,
		backdrop:    backdropHandle,
		desktop:     desktopHandle,
		currentSize: initialSize,
		maxSize:     maxSize,
		minimumSize: cfg.minimumSize.Span(geom.Vec(1, 1)),
		expand:      cfg.expand,
		contract:    cfg.contract,
		log:         cfg.logger,
	}, nil
}

// Surface exposes the underlying compositor so callers can add, move,
// and remove their own elements directly.
func (t *Terminal) Surface() *surface.Surface { return t.surface }

// Display exposes the underlying renderer, e.g. to query cursor
// position or toggle its visibility.
func (t *Terminal) Display() *display.Display { return t.display }

// Keyboard exposes the decoder driving keyboard/mouse events.
func (t *Terminal) Keyboard() *keyboard.Decoder { return t.keyboard }

// Size reports the terminal's current (post expand/contract) size.
func (t *Terminal) Size() geom.Vector { return t.currentSize }

// Backdrop returns the handle of the always-present background fill at
// z-order index 0.
func (t *Terminal) Backdrop() surface.Handle { return t.backdrop }

// Desktop returns the handle of the always-present container element
// at z-order index 1, directly above the backdrop.
func (t *Terminal) Desktop() surface.Handle { return t.desktop }

func (t *Terminal) resizeTo(size geom.Vector) error {
	if size == t.currentSize {
		return nil
	}
	t.log.Info("terminal: resizing", "from", t.currentSize, "to", size)
	t.currentSize = size
	t.display.Resize(size)
	area := geom.RectFromSize(geom.Vec(0, 0), size)
	if err := t.surface.Reshape(t.backdrop, area); err != nil {
		t.log.Error("terminal: reshaping backdrop failed", "err", err)
		return err
	}
	if err := t.surface.Reshape(t.desktop, area); err != nil {
		t.log.Error("terminal: reshaping desktop failed", "err", err)
		return err
	}
	return nil
}

// expandFor grows the display and desktop to clamp(size, current,
// max) when that's bigger than the current size; a no-op if expansion
// is disabled or size doesn't exceed what's already there.
func (t *Terminal) expandFor(size geom.Vector) error {
	if !t.expand {
		t.log.Info("terminal: expand disabled, skipping", "requested", size)
		return nil
	}
	target := size.Min(t.maxSize).Span(t.currentSize)
	return t.resizeTo(target)
}

// contractNow shrinks the display and desktop to the smallest size
// that still contains every element other than the backdrop and
// desktop chrome, never going below minimumSize or (1,1); a no-op if
// contraction is disabled.
func (t *Terminal) contractNow() error {
	if !t.contract {
		t.log.Info("terminal: contract disabled, skipping")
		return nil
	}
	target := t.surface.MinSize(t.backdrop, t.desktop).Span(t.minimumSize).Span(geom.Vec(1, 1))
	return t.resizeTo(target)
}

// AddElement expands the terminal to fit elem's area, then registers
// it with the surface.
func (t *Terminal) AddElement(elem surface.Element, below *surface.Handle) (surface.Handle, error) {
	if err := t.expandFor(elem.Area().BottomRight()); err != nil {
		return 0, err
	}
	return t.surface.Add(elem, below)
}

// DeleteElement removes h from the surface, then contracts the
// terminal back down to fit whatever remains.
func (t *Terminal) DeleteElement(h surface.Handle) error {
	if err := t.surface.Delete(h); err != nil {
		return err
	}
	return t.contractNow()
}

// MoveWindow expands the terminal to fit newArea, reshapes h onto it,
// then contracts back down to fit whatever remains.
func (t *Terminal) MoveWindow(h surface.Handle, newArea geom.Rectangle) error {
	if err := t.expandFor(newArea.BottomRight()); err != nil {
		return err
	}
	if err := t.surface.Reshape(h, newArea); err != nil {
		return err
	}
	return t.contractNow()
}

// Resize is the caller-driven equivalent of a SIGWINCH: it reports
// that the physical terminal itself changed size, so both the ceiling
// (maxSize) and the current canvas move to match, bypassing the usual
// expand/contract fit-to-content logic since the caller is stating the
// new size authoritatively rather than asking to fit an element.
func (t *Terminal) Resize(size geom.Vector) error {
	size = size.Span(geom.Vec(1, 1))
	t.maxSize = size
	return t.resizeTo(size)
}
