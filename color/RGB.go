package color

import (
	"math"

	"github.com/kpfaulkner/colorimetry-go/util"
)

// RGB is linear light. Values are nominally in [0,1] but nothing clamps them
// until ToInt.
type RGB struct {
	R float64
	G float64
	B float64
}

func White() RGB {
	return RGB{R: 1, G: 1, B: 1}
}

func (c RGB) Add(o RGB) RGB {
	return RGB{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

func (c RGB) Scale(f float64) RGB {
	return RGB{R: c.R * f, G: c.G * f, B: c.B * f}
}

func (c RGB) Divide(f float64) RGB {
	return RGB{R: c.R / f, G: c.G / f, B: c.B / f}
}

func (c RGB) Luminance(cs *ColorSpace) float64 {
	return c.R*cs.Red.Lum + c.G*cs.Green.Lum + c.B*cs.Blue.Lum
}

// Normalize divides by the largest component so that it becomes 1.
func (c RGB) Normalize() (RGB, error) {
	m := util.Max(c.R, c.G, c.B)
	if math.IsInf(m, 0) {
		return RGB{}, ErrNonFinite
	}
	if !(m > 0) {
		return RGB{}, ErrZeroMaximum
	}
	return c.Divide(m), nil
}

// Constrain brings an out of gamut colour back in by adding the same amount
// of white to every channel, just enough to lift the most negative channel to
// zero. In-gamut colours are returned unchanged.
func (c RGB) Constrain() RGB {
	w := util.Min(0, c.R, c.G, c.B)
	return RGB{R: c.R - w, G: c.G - w, B: c.B - w}
}

// ToInt clamps to [0,1] and quantises to 8 bits. It does not encode; call
// EncodeSRGB first for display output.
func (c RGB) ToInt() RGB24 {
	return RGB24{R: quantise(c.R), G: quantise(c.G), B: quantise(c.B)}
}

func quantise(v float64) uint8 {
	return uint8(math.Round(util.Clamp(v, 0, 1) * 255))
}
