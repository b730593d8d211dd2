package text

import "github.com/kungfusheep/glint/internal/glerr"

// Combine merges other onto self following the resolved attribute mode.
// override takes precedence over other.Attrs.Mix, which takes
// precedence over mixDefault; if none of those resolve to a concrete
// mode, Combine reports glerr.BadArgument — ModeDefault is a
// programming-time marker, never a mode the combinator itself applies.
//
// The resulting rune is other.Rune unless it is NoneRune, in which case
// self.Rune is kept. If resetMix is not ModeDefault, it overwrites the
// mix recorded on the result after combining.
func Combine(self, other Char, mixDefault, override, resetMix AttributeMode) (Char, error) {
	mode := override
	if mode == ModeDefault {
		mode = other.Attrs.Mix
	}
	if mode == ModeDefault {
		mode = mixDefault
	}
	if mode == ModeDefault {
		return Char{}, &glerr.BadArgument{Op: "Combine", Reason: "no resolved attribute mode"}
	}

	r := other.Rune
	if r == NoneRune {
		r = self.Rune
	}

	var out CharAttributes
	switch mode {
	case ModeMerge:
		out = CharAttributes{
			FG:   self.Attrs.FG.Or(other.Attrs.FG),
			BG:   self.Attrs.BG.Or(other.Attrs.BG),
			Attr: self.Attrs.Attr | other.Attrs.Attr,
			Mix:  ModeMerge,
		}
	case ModeMix:
		out = CharAttributes{
			FG:   self.Attrs.FG.Plus(other.Attrs.FG),
			BG:   self.Attrs.BG.Plus(other.Attrs.BG),
			Attr: self.Attrs.Attr | other.Attrs.Attr,
			Mix:  ModeMix,
		}
	case ModeReplace:
		out = CharAttributes{
			FG:   other.Attrs.FG,
			BG:   other.Attrs.BG,
			Attr: other.Attrs.Attr,
			Mix:  other.Attrs.Mix,
		}
	case ModeIgnore:
		out = CharAttributes{
			FG:   self.Attrs.FG,
			BG:   self.Attrs.BG,
			Attr: self.Attrs.Attr,
			Mix:  self.Attrs.Mix,
		}
	default:
		return Char{}, &glerr.BadArgument{Op: "Combine", Reason: "unresolved attribute mode"}
	}

	if resetMix != ModeDefault {
		out.Mix = resetMix
	}

	return Char{Rune: r, Attrs: out}, nil
}
