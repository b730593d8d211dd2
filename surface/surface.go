package surface

import (
	"github.com/kungfusheep/glint/device"
	"github.com/kungfusheep/glint/geom"
	"github.com/kungfusheep/glint/internal/glerr"
	"github.com/kungfusheep/glint/internal/glog"
)

// slot is the surface's own bookkeeping for one registered element: its
// current fragment list, kept disjoint and always equal to its area
// minus the areas of every element above it in z-order.
type slot struct {
	handle    Handle
	elem      Element
	fragments []geom.Rectangle
}

// Surface owns a z-ordered stack of elements and keeps each one's
// visible fragment list up to date as elements are added, removed,
// reshaped, or reordered. Every mutation ends with at most one call to
// the backing Device, carrying only the cells that actually changed.
type Surface struct {
	dev    device.Device
	slots  map[Handle]*slot
	zorder []Handle
	next   Handle
}

// New returns an empty Surface driving dev.
func New(dev device.Device) *Surface {
	return &Surface{dev: dev, slots: make(map[Handle]*slot), next: 1}
}

func (s *Surface) indexOf(h Handle) (int, bool) {
	for i, zh := range s.zorder {
		if zh == h {
			return i, true
		}
	}
	return 0, false
}

func unknownHandle(op string) error {
	glog.Default.Warn("surface: unknown handle", "op", op)
	return &glerr.InvariantViolation{Op: op, Reason: "unknown element handle"}
}

// fragmentsAbove concatenates the current fragment lists of every
// element strictly above index idx in z-order.
func (s *Surface) fragmentsAbove(idx int) []geom.Rectangle {
	var masks []geom.Rectangle
	for i := idx + 1; i < len(s.zorder); i++ {
		masks = append(masks, s.slots[s.zorder[i]].fragments...)
	}
	return masks
}

// rebuildFromScratch recomputes the fragment list for the element at
// index idx from its current area, masked against everything above it.
func (s *Surface) rebuildFromScratch(idx int) []geom.Rectangle {
	area := s.slots[s.zorder[idx]].elem.Area()
	return splitMany([]geom.Rectangle{area}, s.fragmentsAbove(idx))
}

func local(elemArea, frag geom.Rectangle) geom.Rectangle {
	return frag.TranslateNeg(elemArea.TopLeft())
}

func updateFor(elem Element, elemArea, frag geom.Rectangle) device.Update {
	return device.Update{Position: frag.TopLeft(), Text: elem.Text(local(elemArea, frag))}
}

// Add registers elem in the z-order. If below is nil, elem goes on top
// of the stack; otherwise it is inserted directly beneath the element
// below identifies, which (and everything above it) shifts up by one.
// Add emits one Update per fragment of the newly added element; lower
// elements it now occludes need no update of their own, since the new
// element's fragments already cover exactly the cells that changed.
func (s *Surface) Add(elem Element, below *Handle) (Handle, error) {
	insertIdx := len(s.zorder)
	if below != nil {
		idx, ok := s.indexOf(*below)
		if !ok {
			return 0, unknownHandle("Surface.Add")
		}
		insertIdx = idx
	}

	h := s.next
	s.next++
	area := elem.Area()
	sl := &slot{handle: h, elem: elem}
	s.slots[h] = sl

	s.zorder = append(s.zorder, 0)
	copy(s.zorder[insertIdx+1:], s.zorder[insertIdx:])
	s.zorder[insertIdx] = h

	sl.fragments = splitMany([]geom.Rectangle{area}, s.fragmentsAbove(insertIdx))

	for i := 0; i < insertIdx; i++ {
		lower := s.slots[s.zorder[i]]
		if _, ok := lower.elem.Area().Intersect(area); !ok {
			continue
		}
		lower.fragments = splitMany(lower.fragments, sl.fragments)
	}

	var updates []device.Update
	for _, f := range sl.fragments {
		updates = append(updates, updateFor(elem, area, f))
	}
	if len(updates) == 0 {
		return h, nil
	}
	return h, s.dev.Update(updates)
}

// Delete removes h from the surface. Every element below it whose area
// intersected the deleted one gets its fragments rebuilt from scratch,
// top-down so each rebuild masks against already-updated fragments; the
// regions newly exposed by the deletion are then redrawn bottom-up so
// the lowest newly-visible element is painted before whatever used to
// sit above it.
func (s *Surface) Delete(h Handle) error {
	idx, ok := s.indexOf(h)
	if !ok {
		return unknownHandle("Surface.Delete")
	}
	removedArea := s.slots[h].elem.Area()

	s.zorder = append(s.zorder[:idx], s.zorder[idx+1:]...)
	delete(s.slots, h)

	rebuilt := make([]bool, idx)
	old := make([][]geom.Rectangle, idx)
	for i := idx - 1; i >= 0; i-- {
		ls := s.slots[s.zorder[i]]
		if _, ok := ls.elem.Area().Intersect(removedArea); !ok {
			continue
		}
		rebuilt[i], old[i] = true, ls.fragments
		ls.fragments = s.rebuildFromScratch(i)
	}

	var updates []device.Update
	for i := 0; i < idx; i++ {
		if !rebuilt[i] {
			continue
		}
		ls := s.slots[s.zorder[i]]
		elArea := ls.elem.Area()
		exposed := splitMany(ls.fragments, old[i])
		for _, f := range exposed {
			updates = append(updates, updateFor(ls.elem, elArea, f))
		}
	}
	if len(updates) == 0 {
		return nil
	}
	return s.dev.Update(updates)
}

// Reshape moves or resizes h to newArea. The element must implement
// Mover. Every element from h downward in z-order that intersects
// either the old or the new area gets its fragments rebuilt, and the
// surface redraws the union of (old area minus new area) and (new
// area) clipped to each element's updated fragments — so an element
// reshaped onto its current area (Property 4) touches no fragment and
// emits no update.
func (s *Surface) Reshape(h Handle, newArea geom.Rectangle) error {
	idx, ok := s.indexOf(h)
	if !ok {
		return unknownHandle("Surface.Reshape")
	}
	sl := s.slots[h]
	mover, ok := sl.elem.(Mover)
	if !ok {
		glog.Default.Error("surface: reshape target is not a Mover", "handle", h)
		return &glerr.InvariantViolation{Op: "Surface.Reshape", Reason: "element does not implement Mover"}
	}
	oldArea := sl.elem.Area()
	if newArea == oldArea {
		return nil
	}
	mover.Move(newArea)

	damage := oldArea.DefaultIntersection(newArea)
	damage = append(damage, newArea)
	search := oldArea.Union(newArea)

	var updates []device.Update
	for i := idx; i >= 0; i-- {
		eh := s.zorder[i]
		es := s.slots[eh]
		elArea := es.elem.Area()
		if _, ok := elArea.Intersect(search); !ok {
			continue
		}
		es.fragments = s.rebuildFromScratch(i)
		for _, f := range es.fragments {
			for _, d := range damage {
				if clipped, ok := f.Intersect(d); ok {
					updates = append(updates, updateFor(es.elem, elArea, clipped))
				}
			}
		}
	}
	if len(updates) == 0 {
		return nil
	}
	return s.dev.Update(updates)
}

// moveZOrder relocates h to newIdx within s.zorder, which must already
// have h removed, and returns the affected [lo, hi] index range.
func (s *Surface) moveZOrder(h Handle, oldIdx, newIdx int) (lo, hi int) {
	s.zorder = append(s.zorder, 0)
	copy(s.zorder[newIdx+1:], s.zorder[newIdx:])
	s.zorder[newIdx] = h
	if oldIdx < newIdx {
		return oldIdx, newIdx
	}
	return newIdx, oldIdx
}

// reorder moves h to sit just above or below target, rebuilding
// fragments for every element between h's old and new position that
// overlaps h's own area — the only region whose visibility can have
// changed, since no element's area is altered by a reorder.
func (s *Surface) reorder(h, target Handle, above bool) error {
	oldIdx, ok := s.indexOf(h)
	if !ok {
		return unknownHandle("Surface.Reorder")
	}
	if h == target {
		return nil
	}
	s.zorder = append(s.zorder[:oldIdx], s.zorder[oldIdx+1:]...)

	targetIdx, ok := s.indexOf(target)
	if !ok {
		// put h back before reporting the error
		s.zorder = append(s.zorder, 0)
		copy(s.zorder[oldIdx+1:], s.zorder[oldIdx:])
		s.zorder[oldIdx] = h
		return unknownHandle("Surface.Reorder")
	}
	newIdx := targetIdx
	if above {
		newIdx = targetIdx + 1
	}

	lo, hi := s.moveZOrder(h, oldIdx, newIdx)
	area := s.slots[h].elem.Area()

	var updates []device.Update
	for i := hi; i >= lo; i-- {
		eh := s.zorder[i]
		es := s.slots[eh]
		elArea := es.elem.Area()
		if _, ok := elArea.Intersect(area); !ok {
			continue
		}
		es.fragments = s.rebuildFromScratch(i)
		for _, f := range es.fragments {
			if clipped, ok := f.Intersect(area); ok {
				updates = append(updates, updateFor(es.elem, elArea, clipped))
			}
		}
	}
	if len(updates) == 0 {
		return nil
	}
	return s.dev.Update(updates)
}

// Above moves h to sit directly above target in z-order.
func (s *Surface) Above(h, target Handle) error { return s.reorder(h, target, true) }

// Below moves h to sit directly below target in z-order.
func (s *Surface) Below(h, target Handle) error { return s.reorder(h, target, false) }

// Find reports the topmost element whose visible fragment covers pos.
// It scans the z-order top-down, which on a surface with a backdrop at
// index 0 always terminates: every point inside the surface's bounds
// belongs to exactly one element's fragment.
func (s *Surface) Find(pos geom.Vector) (Handle, bool) {
	for i := len(s.zorder) - 1; i >= 0; i-- {
		h := s.zorder[i]
		for _, f := range s.slots[h].fragments {
			if f.Contains(pos) {
				return h, true
			}
		}
	}
	return 0, false
}

// MinSize returns the smallest size that contains the area of every
// element on the surface other than those in exclude (typically the
// backdrop and any other full-canvas chrome element, which would
// otherwise dominate the result).
func (s *Surface) MinSize(exclude ...Handle) geom.Vector {
	var size geom.Vector
	for _, h := range s.zorder {
		skip := false
		for _, e := range exclude {
			if h == e {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		size = size.Span(s.slots[h].elem.Area().BottomRight())
	}
	return size
}

// Area reports the current area of the element h.
func (s *Surface) Area(h Handle) (geom.Rectangle, error) {
	sl, ok := s.slots[h]
	if !ok {
		return geom.Rectangle{}, unknownHandle("Surface.Area")
	}
	return sl.elem.Area(), nil
}

// Fragments reports the current fragment list of element h, in no
// particular order. It exists mainly so tests and debugging tools can
// check the fragment invariant directly.
func (s *Surface) Fragments(h Handle) ([]geom.Rectangle, error) {
	sl, ok := s.slots[h]
	if !ok {
		return nil, unknownHandle("Surface.Fragments")
	}
	out := make([]geom.Rectangle, len(sl.fragments))
	copy(out, sl.fragments)
	return out, nil
}

// ZOrder returns the current z-order, bottom to top.
func (s *Surface) ZOrder() []Handle {
	out := make([]Handle, len(s.zorder))
	copy(out, s.zorder)
	return out
}
