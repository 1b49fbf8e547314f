package color

import (
	"math"
)

// TargetLuminance changes the brightness of c so that its luminance in cs is
// target, keeping its hue. Colours that are too dark are mixed with white,
// colours that are too bright are scaled towards black.
//
// White has luminance 1 in every space, so mixing with weight d,
//
//	L(c*d + white*(1-d)) = d*l + (1-d)
//
// and solving for target gives d = (target-1)/(l-1).
func (c RGB) TargetLuminance(target float64, cs *ColorSpace) (RGB, error) {
	if math.IsNaN(target) || target < 0 || target > 1 {
		return RGB{}, ErrLuminanceOutOfRange
	}

	l := c.Luminance(cs)
	if math.IsNaN(l) || math.IsInf(l, 0) {
		return RGB{}, ErrNonFinite
	}

	// l < target <= 1 here, so the denominator is never zero
	if l < target {
		d := (target - 1) / (l - 1)
		return c.Scale(d).Add(White().Scale(1 - d)), nil
	}

	// only reachable with l == target == 0
	if l == 0 {
		return RGB{}, ErrLuminanceBoundary
	}
	return c.Scale(target / l), nil
}
