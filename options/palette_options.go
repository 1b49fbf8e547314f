package options

import (
	"github.com/kpfaulkner/colorimetry-go/color"
)

const (
	DefaultLuminance      = 0.5
	DefaultWavelengthLow  = 400
	DefaultWavelengthHigh = 650
	DefaultWhiteMix       = 0.1
)

type PaletteOptions struct {
	Debug bool

	// ColorSpace defaults to sRGB.
	ColorSpace *color.ColorSpace

	// Primaries selects a ColorSpace by one of the color.PRI_* identifiers.
	// Ignored when ColorSpace is set. An unknown value leaves ColorSpace nil.
	Primaries int32

	// Luminance is the target for hue based palettes.
	Luminance float64

	// WavelengthLow and WavelengthHigh bound spectral palettes, in nm.
	WavelengthLow  int
	WavelengthHigh int

	// WhiteMix is the amount of white added to spectral samples to soften
	// them before they are evened out.
	WhiteMix float64
}

// NewPaletteOptions copies options over the defaults. Zero fields in options
// keep their defaults.
func NewPaletteOptions(options *PaletteOptions) *PaletteOptions {

	opt := &PaletteOptions{
		ColorSpace:     &color.SRGB,
		Luminance:      DefaultLuminance,
		WavelengthLow:  DefaultWavelengthLow,
		WavelengthHigh: DefaultWavelengthHigh,
		WhiteMix:       DefaultWhiteMix,
	}
	if options != nil {
		opt.Debug = options.Debug
		opt.Primaries = options.Primaries
		if options.ColorSpace != nil {
			opt.ColorSpace = options.ColorSpace
		} else if options.Primaries != 0 {
			opt.ColorSpace, _ = color.GetColorSpace(options.Primaries)
		}
		if options.Luminance != 0 {
			opt.Luminance = options.Luminance
		}
		if options.WavelengthLow != 0 {
			opt.WavelengthLow = options.WavelengthLow
		}
		if options.WavelengthHigh != 0 {
			opt.WavelengthHigh = options.WavelengthHigh
		}
		if options.WhiteMix != 0 {
			opt.WhiteMix = options.WhiteMix
		}
	}
	return opt
}
