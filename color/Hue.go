package color

import (
	"math"

	"github.com/kpfaulkner/colorimetry-go/util"
)

// HueSextants is the period of a hue. Each unit step moves between a primary
// and a secondary: R, Y, G, C, B, M and back to R.
const HueSextants = 6.0

// RGBFromHue returns the fully saturated, maximum value colour for hue in
// [0, 6). Use WrapHue first for hues from arbitrary arithmetic.
func RGBFromHue(hue float64) (RGB, error) {
	if !util.InRange(hue, 0, HueSextants) {
		return RGB{}, ErrHueOutOfRange
	}

	x := 1 - math.Abs(math.Mod(hue, 2)-1)
	switch int(hue) {
	case 0:
		return RGB{R: 1, G: x, B: 0}, nil
	case 1:
		return RGB{R: x, G: 1, B: 0}, nil
	case 2:
		return RGB{R: 0, G: 1, B: x}, nil
	case 3:
		return RGB{R: 0, G: x, B: 1}, nil
	case 4:
		return RGB{R: x, G: 0, B: 1}, nil
	default:
		return RGB{R: 1, G: 0, B: x}, nil
	}
}

// WrapHue maps any finite hue into [0, 6).
func WrapHue(hue float64) float64 {
	h := math.Mod(hue, HueSextants)
	if h < 0 {
		h += HueSextants
	}
	// -tiny + 6 rounds to exactly 6
	if h >= HueSextants {
		h = 0
	}
	return h
}
