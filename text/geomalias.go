package text

import "github.com/kungfusheep/glint/geom"

// Aliases so callers working with Text don't need to import geom
// directly for the handful of types this package's API surface uses.
type (
	Dim       = geom.Dim
	Vector    = geom.Vector
	Rectangle = geom.Rectangle
)

const (
	DimLow  = geom.DimLow
	DimHigh = geom.DimHigh
)

func Vec(x, y Dim) Vector                      { return geom.Vec(x, y) }
func Rect(x1, y1, x2, y2 Dim) Rectangle         { return geom.Rect(x1, y1, x2, y2) }
func RectFromSize(topLeft, size Vector) Rectangle { return geom.RectFromSize(topLeft, size) }
