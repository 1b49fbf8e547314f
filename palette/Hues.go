package palette

import (
	"fmt"
	"strconv"

	"github.com/kpfaulkner/colorimetry-go/color"
)

// NickColors returns n hues evenly spaced around the colour wheel, all at the
// configured luminance, for colouring nicknames.
func (g *Generator) NickColors(n int) ([]Swatch, error) {
	swatches, err := g.hueSwatches(n, g.opts.Luminance)
	if err != nil {
		return nil, err
	}
	for _, s := range swatches {
		g.debug("nick", s)
	}
	return swatches, nil
}

// HueWheel is NickColors with an explicit target, followed by white at the
// same target as a reference.
func (g *Generator) HueWheel(n int, target float64) ([]Swatch, error) {
	swatches, err := g.hueSwatches(n, target)
	if err != nil {
		return nil, err
	}

	white, err := color.White().TargetLuminance(target, g.opts.ColorSpace)
	if err != nil {
		return nil, err
	}
	swatches = append(swatches, Swatch{Label: "white", Color: white.EncodeSRGB().ToInt()})

	for _, s := range swatches {
		g.debug("wheel", s)
	}
	return swatches, nil
}

func (g *Generator) hueSwatches(n int, target float64) ([]Swatch, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	swatches := make([]Swatch, n)
	step := color.HueSextants / float64(n)
	for i := range swatches {
		hue := color.WrapHue(float64(i) * step)
		c, err := color.RGBFromHue(hue)
		if err != nil {
			return nil, err
		}
		c, err = c.TargetLuminance(target, g.opts.ColorSpace)
		if err != nil {
			return nil, err
		}
		swatches[i] = Swatch{Label: strconv.Itoa(i), Color: c.EncodeSRGB().ToInt()}
	}
	return swatches, nil
}
