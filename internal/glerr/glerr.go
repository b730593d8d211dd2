// Package glerr defines the typed error kinds the compositor reports at
// call sites (spec §7): geometry, text and surface operations never
// panic the running process, they return one of these instead.
package glerr

import "fmt"

// IndexOutOfBounds is returned by Text access or patch operations whose
// coordinates fall outside the receiver after normalization.
type IndexOutOfBounds struct {
	Op  string
	Pos fmt.Stringer
}

func (e *IndexOutOfBounds) Error() string {
	return fmt.Sprintf("glint: %s: index %s out of bounds", e.Op, e.Pos)
}

// BadArgument is returned for caller-supplied values that are
// structurally invalid, e.g. a line strength outside {1,2}.
type BadArgument struct {
	Op     string
	Reason string
}

func (e *BadArgument) Error() string {
	return fmt.Sprintf("glint: %s: bad argument: %s", e.Op, e.Reason)
}

// GeometryInvariant describes a rectangle that collapsed to the default
// sentinel in a context where that is not legal. No operation in this
// module currently returns it; geom's constructors do not validate.
type GeometryInvariant struct {
	Op     string
	Reason string
}

func (e *GeometryInvariant) Error() string {
	return fmt.Sprintf("glint: %s: geometry invariant violated: %s", e.Op, e.Reason)
}

// InvariantViolation indicates a programming error: an element handle
// that the surface doesn't know about, or a z-order slot that's gone
// missing. Surface returns it as an ordinary error in every build; no
// build mode turns it into a panic.
type InvariantViolation struct {
	Op     string
	Reason string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("glint: %s: invariant violation: %s", e.Op, e.Reason)
}

// TerminalIO wraps a failure from the one permitted blocking boundary:
// writing to, or reading a reply from, the physical terminal.
type TerminalIO struct {
	Op  string
	Err error
}

func (e *TerminalIO) Error() string {
	return fmt.Sprintf("glint: %s: terminal i/o: %v", e.Op, e.Err)
}

func (e *TerminalIO) Unwrap() error { return e.Err }
