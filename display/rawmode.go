package display

import (
	"golang.org/x/sys/unix"

	"github.com/kungfusheep/glint/internal/glerr"
)

// RawMode is a scoped acquisition of exclusive raw-mode access to a
// terminal file descriptor: it saves the current termios on Enter and
// guarantees the original settings are restored on Close, however the
// caller exits. Close is safe to call more than once.
type RawMode struct {
	fd       int
	original unix.Termios
	restored bool
}

// Enter puts fd into raw mode (no echo, no canonical buffering, 8-bit
// clean, no signal-generating keys) and returns a RawMode whose Close
// restores the original termios.
func Enter(fd int) (*RawMode, error) {
	orig, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, &glerr.TerminalIO{Op: "display.Enter", Err: err}
	}

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return nil, &glerr.TerminalIO{Op: "display.Enter", Err: err}
	}

	return &RawMode{fd: fd, original: *orig}, nil
}

// Close restores the termios captured by Enter. It is a no-op after
// the first call.
func (r *RawMode) Close() error {
	if r == nil || r.restored {
		return nil
	}
	r.restored = true
	if err := unix.IoctlSetTermios(r.fd, ioctlSetTermios, &r.original); err != nil {
		return &glerr.TerminalIO{Op: "display.RawMode.Close", Err: err}
	}
	return nil
}
