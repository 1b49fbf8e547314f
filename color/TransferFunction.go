package color

import (
	"math"
)

// sRGB transfer curve constants, IEC 61966-2-1.
const (
	srgbEncodeBreak = 0.0031308
	srgbDecodeBreak = 0.04045
	srgbSlope       = 12.92
	srgbOffset      = 0.055
	srgbGamma       = 2.4
)

// EncodeSRGBComponent maps linear light to the display encoded value.
func EncodeSRGBComponent(x float64) float64 {
	if x <= srgbEncodeBreak {
		return x * srgbSlope
	}
	return math.Pow(x, 1/srgbGamma)*(1+srgbOffset) - srgbOffset
}

// DecodeSRGBComponent maps a display encoded value back to linear light.
func DecodeSRGBComponent(x float64) float64 {
	if x <= srgbDecodeBreak {
		return x / srgbSlope
	}
	return math.Pow((x+srgbOffset)/(1+srgbOffset), srgbGamma)
}

func (c RGB) EncodeSRGB() RGB {
	return RGB{R: EncodeSRGBComponent(c.R), G: EncodeSRGBComponent(c.G), B: EncodeSRGBComponent(c.B)}
}

func (c RGB) DecodeSRGB() RGB {
	return RGB{R: DecodeSRGBComponent(c.R), G: DecodeSRGBComponent(c.G), B: DecodeSRGBComponent(c.B)}
}
