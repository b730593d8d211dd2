package text

import "fmt"

// Rgb is a color with each channel in [0, 1]. Two sentinels overload the
// channel space: RgbNone means "inherit whatever the receiver already
// has", RgbTransparent means "this cell contributes no color at all
// when composited". Both are only meaningful through Or/Plus below; a
// concrete Rgb never has negative channels.
type Rgb struct {
	R, G, B float64
}

var (
	RgbNone        = Rgb{-1, -1, -1}
	RgbTransparent = Rgb{-2, -2, -2}
)

func (c Rgb) String() string {
	if c == RgbNone {
		return "none"
	}
	if c == RgbTransparent {
		return "transparent"
	}
	return fmt.Sprintf("#%02x%02x%02x", clamp255(c.R), clamp255(c.G), clamp255(c.B))
}

// IsSentinel reports whether c is RgbNone or RgbTransparent rather than
// a concrete color.
func (c Rgb) IsSentinel() bool { return c == RgbNone || c == RgbTransparent }

// Or implements the "a | b" operator: a wins unless it is a sentinel, in
// which case b is used instead.
func (a Rgb) Or(b Rgb) Rgb {
	if a.IsSentinel() {
		return b
	}
	return a
}

// Plus averages a and b channelwise after substituting any sentinel with
// black (0,0,0); this is the "Mix" combine rule for colors.
func (a Rgb) Plus(b Rgb) Rgb {
	av, bv := a, b
	if av.IsSentinel() {
		av = Rgb{}
	}
	if bv.IsSentinel() {
		bv = Rgb{}
	}
	return Rgb{
		R: (av.R + bv.R) / 2,
		G: (av.G + bv.G) / 2,
		B: (av.B + bv.B) / 2,
	}
}

// Hsv converts c to hue (0-360), saturation and value (both 0-1).
func (c Rgb) Hsv() (h, s, v float64) {
	max := maxf(c.R, maxf(c.G, c.B))
	min := minf(c.R, minf(c.G, c.B))
	v = max
	delta := max - min
	if max <= 0 {
		return 0, 0, v
	}
	s = delta / max
	if delta == 0 {
		return 0, s, v
	}
	switch max {
	case c.R:
		h = 60 * mod(((c.G-c.B)/delta), 6)
	case c.G:
		h = 60 * ((c.B-c.R)/delta + 2)
	case c.B:
		h = 60 * ((c.R-c.G)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// HsvToRgb is the inverse of Rgb.Hsv.
func HsvToRgb(h, s, v float64) Rgb {
	c := v * s
	x := c * (1 - absf(mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Rgb{r + m, g + m, b + m}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func mod(a, n float64) float64 {
	r := a - n*float64(int(a/n))
	if r < 0 {
		r += n
	}
	return r
}
