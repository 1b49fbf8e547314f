package palette

import (
	"errors"
	"fmt"

	"github.com/kpfaulkner/colorimetry-go/color"
	"github.com/kpfaulkner/colorimetry-go/options"
	"github.com/kpfaulkner/colorimetry-go/util"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidCount = errors.New("palette size must be positive")
	ErrInvalidRange = errors.New("invalid wavelength range")
	ErrInvalidHex   = errors.New("invalid hex colour")
)

type GeneratorOption func(g *Generator) error

// WithOptions replaces the whole configuration. Unset fields take defaults.
func WithOptions(opts *options.PaletteOptions) GeneratorOption {
	return func(g *Generator) error {
		g.opts = options.NewPaletteOptions(opts)
		return nil
	}
}

func WithColorSpace(cs *color.ColorSpace) GeneratorOption {
	return func(g *Generator) error {
		if cs == nil {
			return fmt.Errorf("%w: nil colour space", color.ErrInvalidInput)
		}
		g.opts.ColorSpace = cs
		return nil
	}
}

func WithLuminance(lum float64) GeneratorOption {
	return func(g *Generator) error {
		g.opts.Luminance = lum
		return nil
	}
}

func WithWavelengthRange(low int, high int) GeneratorOption {
	return func(g *Generator) error {
		g.opts.WavelengthLow = low
		g.opts.WavelengthHigh = high
		return nil
	}
}

func WithDebug(debug bool) GeneratorOption {
	return func(g *Generator) error {
		g.opts.Debug = debug
		return nil
	}
}

// Generator builds palettes. It is immutable once built and safe for
// concurrent use.
type Generator struct {
	opts *options.PaletteOptions

	// toRGB is the XYZ to RGB matrix of opts.ColorSpace.
	toRGB util.Matrix3x3
}

func NewGenerator(opts ...GeneratorOption) (*Generator, error) {
	g := &Generator{opts: options.NewPaletteOptions(nil)}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	if err := g.validate(); err != nil {
		return nil, err
	}
	g.toRGB = g.opts.ColorSpace.Matrix()
	return g, nil
}

func (g *Generator) validate() error {
	o := g.opts
	if o.ColorSpace == nil {
		return fmt.Errorf("%w: primaries %d", color.ErrUnknownColorSpace, o.Primaries)
	}
	if o.Luminance < 0 || o.Luminance > 1 {
		return color.ErrLuminanceOutOfRange
	}
	if o.WavelengthLow < color.MinWavelength || o.WavelengthHigh > color.MaxWavelength ||
		o.WavelengthLow >= o.WavelengthHigh {
		return fmt.Errorf("%w: %d-%d nm", ErrInvalidRange, o.WavelengthLow, o.WavelengthHigh)
	}
	if o.WhiteMix < 0 {
		return fmt.Errorf("%w: negative white mix", color.ErrInvalidInput)
	}
	return nil
}

// Options returns a copy of the configuration, colour space included.
func (g *Generator) Options() options.PaletteOptions {
	opts := *g.opts
	cs := *g.opts.ColorSpace
	opts.ColorSpace = &cs
	return opts
}

func (g *Generator) debug(palette string, s Swatch) {
	if !g.opts.Debug {
		return
	}
	log.WithFields(log.Fields{
		"palette": palette,
		"label":   s.Label,
	}).Debugf("swatch %s", s.Hex())
}
