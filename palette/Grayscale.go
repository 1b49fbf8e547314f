package palette

import (
	"github.com/kpfaulkner/colorimetry-go/color"
)

// Grayscale returns the relative luminance of an sRGB encoded hex colour.
func (g *Generator) Grayscale(hex string) (float64, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}
	return g.Luminance(c), nil
}

// GrayscaleUint32 takes a packed 0xRRGGBB value.
func (g *Generator) GrayscaleUint32(packed uint32) float64 {
	return g.Luminance(color.NewRGB24FromUint32(packed))
}

func (g *Generator) Luminance(c color.RGB24) float64 {
	return c.ToFloat().DecodeSRGB().Luminance(g.opts.ColorSpace)
}
