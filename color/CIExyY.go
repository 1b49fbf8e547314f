package color

import (
	"github.com/kpfaulkner/colorimetry-go/util"
)

// CIExyY is a chromaticity (X, Y) with its luminance. Lum is the capital Y of
// xyY; it is 1 for white points and the relative luminance for primaries.
type CIExyY struct {
	X   float64
	Y   float64
	Lum float64
}

// Z is derived, never stored.
func (c CIExyY) Z() float64 {
	return 1 - c.X - c.Y
}

// ToXYZ requires Y > 0.
func (c CIExyY) ToXYZ() XYZ {
	s := c.Lum / c.Y
	return XYZ{X: c.X * s, Y: c.Lum, Z: c.Z() * s}
}

func (c CIExyY) vector() util.Vector3 {
	return util.Vector3{c.X, c.Y, c.Z()}
}

var WhiteD65 = CIExyY{X: 0.3127, Y: 0.3290, Lum: 1.0}
