package color

import (
	"math"

	"github.com/kpfaulkner/colorimetry-go/util"
)

// XYZ is a CIE 1931 tristimulus value. Components are linear and unbounded.
type XYZ struct {
	X float64
	Y float64
	Z float64
}

func NewXYZFromArray(arr [3]float64) XYZ {
	return XYZ{X: arr[0], Y: arr[1], Z: arr[2]}
}

func (c XYZ) Add(o XYZ) XYZ {
	return XYZ{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

func (c XYZ) Scale(f float64) XYZ {
	return XYZ{X: c.X * f, Y: c.Y * f, Z: c.Z * f}
}

func (c XYZ) IsZero() bool {
	return c.X == 0 && c.Y == 0 && c.Z == 0
}

// Normalize divides by the largest component so that it becomes 1.
func (c XYZ) Normalize() (XYZ, error) {
	m := util.Max(c.X, c.Y, c.Z)
	if math.IsInf(m, 0) {
		return XYZ{}, ErrNonFinite
	}
	if !(m > 0) {
		return XYZ{}, ErrZeroMaximum
	}
	return XYZ{X: c.X / m, Y: c.Y / m, Z: c.Z / m}, nil
}
