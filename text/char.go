package text

import "fmt"

// Attributes is a bitset of the cell-level attributes a Char can carry.
type Attributes uint8

const (
	AttrBold      Attributes = 1 << iota // bold
	AttrUnderline                        // underline
	AttrReverse                          // reverse video
	AttrBlink                            // blink
)

func (a Attributes) Has(flag Attributes) bool { return a&flag != 0 }

// AttributeMode picks how two Chars combine when one is patched onto the
// other. Default is a programming-time marker only: the combine
// implementation refuses it as a *resolved* mode (see Combine) and
// reports glerr.BadArgument if one slips through unresolved.
type AttributeMode uint8

const (
	ModeDefault AttributeMode = iota
	ModeMerge
	ModeMix
	ModeReplace
	ModeIgnore
)

func (m AttributeMode) String() string {
	switch m {
	case ModeMerge:
		return "merge"
	case ModeMix:
		return "mix"
	case ModeReplace:
		return "replace"
	case ModeIgnore:
		return "ignore"
	default:
		return "default"
	}
}

// CharAttributes is the styling carried by a Char.
type CharAttributes struct {
	FG   Rgb
	BG   Rgb
	Attr Attributes
	Mix  AttributeMode
}

// DefaultCharAttributes is the zero-value-equivalent set of attributes:
// no color, no attribute bits, combine mode left for the caller to pick.
var DefaultCharAttributes = CharAttributes{FG: RgbNone, BG: RgbNone}

// NoneRune marks a Char whose rune should be ignored by Combine and the
// existing rune kept instead. It is never a valid printable codepoint.
const NoneRune rune = '\U0010FFFF' + 1 // out of the valid Unicode range

// Char is a single styled grid cell.
type Char struct {
	Rune  rune
	Attrs CharAttributes
}

// NewChar builds a Char with the given rune and attributes.
func NewChar(r rune, attrs CharAttributes) Char { return Char{Rune: r, Attrs: attrs} }

// Space is a plain space cell carrying attrs, the fill value Text uses
// for padding.
func Space(attrs CharAttributes) Char { return Char{Rune: ' ', Attrs: attrs} }

func (c Char) String() string {
	r := c.Rune
	if r == NoneRune {
		r = ' '
	}
	return fmt.Sprintf("%q{fg=%s bg=%s attr=%02b mix=%s}", r, c.Attrs.FG, c.Attrs.BG, c.Attrs.Attr, c.Attrs.Mix)
}
