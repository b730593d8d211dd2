// Command glintdemo wires terminal.Terminal to a real stdin/stdout: a
// single bordered window echoing typed lines, quitting on Ctrl-C. It
// exists to exercise the stack end-to-end, not as a tested component.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/kungfusheep/glint/display"
	"github.com/kungfusheep/glint/geom"
	"github.com/kungfusheep/glint/internal/glog"
	"github.com/kungfusheep/glint/keyboard"
	"github.com/kungfusheep/glint/terminal"
	"github.com/kungfusheep/glint/text"
)

// typedWindow is a bordered box showing completed lines plus the line
// currently being typed; just enough of an Element/Mover to give the
// demo something to drive.
type typedWindow struct {
	area    geom.Rectangle
	lines   []string
	current string
}

func (w *typedWindow) Area() geom.Rectangle     { return w.area }
func (w *typedWindow) Move(area geom.Rectangle) { w.area = area }

func (w *typedWindow) Text(area geom.Rectangle) *text.Text {
	size := w.area.Size()
	t := text.Filled(text.Space(text.DefaultCharAttributes), size, text.ModeReplace)
	t.Box(text.BoxSpec{Area: geom.Rect(0, 0, size.X, size.Y), Strength: 1})

	rows := append(append([]string{}, w.lines...), w.current)
	maxRows := int(size.Y) - 2
	if len(rows) > maxRows && maxRows > 0 {
		rows = rows[len(rows)-maxRows:]
	}
	for i, line := range rows {
		row := text.New(line, text.DefaultCharAttributes, text.ModeReplace)
		t.Patch(row, geom.Vec(1, geom.Dim(i+1)), text.ModeReplace, text.ModeReplace, text.ModeReplace)
	}
	return t.Slice(area)
}

func main() {
	fd := int(os.Stdin.Fd())

	cols, rows, err := term.GetSize(fd)
	if err != nil {
		cols, rows = 80, 24
	}
	size := geom.Vec(geom.Dim(cols), geom.Dim(rows))

	raw, err := display.Enter(fd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "glintdemo: entering raw mode:", err)
		os.Exit(1)
	}
	defer raw.Close()

	dec := keyboard.NewDecoder(os.Stdin)
	disp := display.New(os.Stdout, geom.Vec(0, 0), size, dec)
	fmt.Fprint(os.Stdout, "\x1b[2J\x1b[?25l")
	defer fmt.Fprint(os.Stdout, "\x1b[?25h")

	tm, err := terminal.New(disp, dec, size, size, terminal.WithLogger(glog.Default))
	if err != nil {
		fmt.Fprintln(os.Stderr, "glintdemo: building terminal:", err)
		os.Exit(1)
	}

	win := &typedWindow{area: geom.Rect(2, 1, size.X-2, size.Y-1)}
	winHandle, err := tm.AddElement(win, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "glintdemo: adding window:", err)
		os.Exit(1)
	}
	defer tm.DeleteElement(winHandle)

	render := func() {
		area, err := tm.Surface().Area(winHandle)
		if err != nil {
			return
		}
		disp.Update(area.TopLeft(), win.Text(geom.RectFromSize(geom.Vec(0, 0), area.Size())))
	}
	render()

	for {
		ev, err := dec.Next()
		if err != nil {
			return
		}
		if ev.Mouse != nil {
			continue
		}
		k := ev.Key
		if k.Mod.Has(keyboard.ModCtrl) && k.Rune == 'c' {
			return
		}
		switch k.Key {
		case keyboard.KeyEnter:
			win.lines = append(win.lines, win.current)
			win.current = ""
		case keyboard.KeyBackspace:
			if len(win.current) > 0 {
				win.current = win.current[:len(win.current)-1]
			}
		case keyboard.KeyChar, keyboard.KeySpace:
			win.current += string(k.Rune)
		default:
			continue
		}
		render()
	}
}
