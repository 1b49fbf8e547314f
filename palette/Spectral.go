package palette

import (
	"fmt"

	"github.com/kpfaulkner/colorimetry-go/color"
	"github.com/kpfaulkner/colorimetry-go/util"
)

// RainbowName colours each rune of name with a spectral colour, running from
// the long end of the configured wavelength range at the first rune to the
// short end at the last. All colours are brought to the same luminance, that
// of the darkest one, so no letter stands out.
func (g *Generator) RainbowName(name string) ([]Swatch, error) {
	runes := []rune(name)
	n := len(runes)
	if n == 0 {
		return nil, nil
	}

	cs := g.opts.ColorSpace
	colors := make([]color.RGB, n)
	minLum := 1.0
	for i := range runes {
		c, err := g.spectralSample(g.rainbowWavelength(i, n))
		if err != nil {
			return nil, fmt.Errorf("rune %d of %q: %w", i, name, err)
		}
		colors[i] = c
		minLum = util.Min(minLum, c.Luminance(cs))
	}

	swatches := make([]Swatch, n)
	for i, c := range colors {
		out := c.Scale(minLum / c.Luminance(cs)).EncodeSRGB().ToInt()
		swatches[i] = Swatch{Label: string(runes[i]), Color: out}
		g.debug("rainbow", swatches[i])
	}
	return swatches, nil
}

// rainbowWavelength spaces n samples evenly, in whole nanometres, with i = 0
// at the high end. A single sample sits in the middle of the range.
func (g *Generator) rainbowWavelength(i int, n int) int {
	lo := g.opts.WavelengthLow
	hi := g.opts.WavelengthHigh
	if n == 1 {
		return (lo + hi) / 2
	}
	num := n - 1
	return lo + (num-i)*(hi-lo)/num
}

// spectralSample returns the monochromatic colour at nm, pulled into gamut,
// softened with white and normalised to full brightness.
func (g *Generator) spectralSample(nm int) (color.RGB, error) {
	c, err := color.XYZFromWavelength(nm).Transform(g.toRGB).Constrain().Normalize()
	if err != nil {
		return color.RGB{}, err
	}
	return c.Add(color.White().Scale(g.opts.WhiteMix)).Normalize()
}
