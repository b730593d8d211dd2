// Package keyboard decodes a raw terminal input byte stream into named
// key and mouse events: a byte-at-a-time parser for CSI/SS3 escape
// sequences with lookup tables for their final bytes, and a quiet-time
// heuristic to tell a bare Esc from the start of a longer sequence.
// Unrecognized sequences are dropped without producing an event.
package keyboard

// Key names one of the terminal's special keys, or KeyChar for a plain
// rune (stored separately in Event.Rune).
type Key int

const (
	KeyNone Key = iota
	KeyChar
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEsc
	KeySpace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown

	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Mod is a bitmask of modifier keys. The bit layout matches xterm's
// "modifyOtherKeys" parameter minus one, so a CSI ... ; N ... sequence
// decodes as Mod(N-1) with no further remapping.
type Mod int

const (
	ModShift Mod = 1 << iota
	ModAlt
	ModCtrl
)

func (m Mod) Has(flag Mod) bool { return m&flag != 0 }

// tildeKey maps the numeric parameter of a CSI ... ~ sequence to a Key.
var tildeKey = map[string]Key{
	"1":  KeyHome,
	"2":  KeyInsert,
	"3":  KeyDelete,
	"4":  KeyEnd,
	"5":  KeyPgUp,
	"6":  KeyPgDown,
	"7":  KeyHome,
	"8":  KeyEnd,
	"11": KeyF1,
	"12": KeyF2,
	"13": KeyF3,
	"14": KeyF4,
	"15": KeyF5,
	"17": KeyF6,
	"18": KeyF7,
	"19": KeyF8,
	"20": KeyF9,
	"21": KeyF10,
	"23": KeyF11,
	"24": KeyF12,
}

// csiFinalKey maps a CSI sequence's non-tilde final byte to a Key.
var csiFinalKey = map[byte]Key{
	'A': KeyArrowUp,
	'B': KeyArrowDown,
	'C': KeyArrowRight,
	'D': KeyArrowLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// ss3FinalKey maps an SS3 (ESC O ...) sequence's final byte to a Key,
// the form xterm uses for arrows and F1-F4 in application-cursor mode.
var ss3FinalKey = map[byte]Key{
	'A': KeyArrowUp,
	'B': KeyArrowDown,
	'C': KeyArrowRight,
	'D': KeyArrowLeft,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
	'H': KeyHome,
	'F': KeyEnd,
}
