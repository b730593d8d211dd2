package display

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kungfusheep/glint/geom"
	"github.com/kungfusheep/glint/internal/glerr"
)

// cursorQueryTimeout bounds how long Cursor/TerminalSize wait for the
// terminal to answer a CSI 6n before reporting glerr.TerminalIO.
const cursorQueryTimeout = 200 * time.Millisecond

// Cursor sends CSI 6n and parses the terminal's CSI row;col R reply,
// the only two operations in the core permitted to block on terminal
// I/O. The returned position is 0-based.
func (d *Display) Cursor() (geom.Vector, error) {
	if d.reply == nil {
		return geom.Vector{}, &glerr.TerminalIO{Op: "Display.Cursor", Err: fmt.Errorf("no reply source configured")}
	}
	if _, err := fmt.Fprint(d.out, "\x1b[6n"); err != nil {
		return geom.Vector{}, &glerr.TerminalIO{Op: "Display.Cursor", Err: err}
	}
	raw, err := d.reply.ReadReply(cursorQueryTimeout)
	if err != nil {
		return geom.Vector{}, &glerr.TerminalIO{Op: "Display.Cursor", Err: err}
	}
	row, col, err := parseCursorReport(raw)
	if err != nil {
		return geom.Vector{}, &glerr.TerminalIO{Op: "Display.Cursor", Err: err}
	}
	return geom.Vec(geom.Dim(col-1), geom.Dim(row-1)), nil
}

// parseCursorReport extracts row, col (1-based) from a CSI row;col R
// reply, tolerating a leading ESC the reader may or may not have
// stripped.
func parseCursorReport(raw []byte) (row, col int, err error) {
	s := string(raw)
	if i := strings.IndexByte(s, '['); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(s, "R")
	parts := strings.SplitN(s, ";", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("display: malformed cursor report %q", raw)
	}
	row, err1 := strconv.Atoi(parts[0])
	col, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("display: malformed cursor report %q", raw)
	}
	return row, col, nil
}

// TerminalSize discovers the physical terminal size by saving the
// cursor, moving to an unreachably large position, reading back where
// the terminal actually clamped the cursor, then restoring it.
func (d *Display) TerminalSize() (geom.Vector, error) {
	if _, err := fmt.Fprint(d.out, "\x1b7\x1b[9999;9999H"); err != nil {
		return geom.Vector{}, &glerr.TerminalIO{Op: "Display.TerminalSize", Err: err}
	}
	pos, err := d.Cursor()
	if err != nil {
		return geom.Vector{}, err
	}
	if _, err := fmt.Fprint(d.out, "\x1b8"); err != nil {
		return geom.Vector{}, &glerr.TerminalIO{Op: "Display.TerminalSize", Err: err}
	}
	return geom.Vec(pos.X+1, pos.Y+1), nil
}
