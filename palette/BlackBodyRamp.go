package palette

import (
	"fmt"

	"github.com/kpfaulkner/colorimetry-go/color"
)

// BlackBodyRamp returns the colour of a black body at count temperatures,
// start, start+step, ... kelvin. Each is normalised to full brightness, so
// only the hue of the radiation is shown, not its intensity.
func (g *Generator) BlackBodyRamp(start float64, step float64, count int) ([]Swatch, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	swatches := make([]Swatch, count)
	for i := range swatches {
		kelvin := start + float64(i)*step
		c, err := g.BlackBody(kelvin)
		if err != nil {
			return nil, fmt.Errorf("%vK: %w", kelvin, err)
		}
		swatches[i] = Swatch{Label: fmt.Sprintf("%gK", kelvin), Color: c}
		g.debug("blackbody", swatches[i])
	}
	return swatches, nil
}

func (g *Generator) BlackBody(kelvin float64) (color.RGB24, error) {
	xyz, err := color.BlackBody(kelvin)
	if err != nil {
		return color.RGB24{}, err
	}
	c, err := xyz.Transform(g.toRGB).Constrain().Normalize()
	if err != nil {
		return color.RGB24{}, err
	}
	return c.EncodeSRGB().ToInt(), nil
}
