package options

import (
	"testing"

	"github.com/kpfaulkner/colorimetry-go/color"
	"github.com/stretchr/testify/assert"
)

func TestNewPaletteOptionsDefaults(t *testing.T) {
	opt := NewPaletteOptions(nil)

	assert.False(t, opt.Debug)
	assert.Same(t, &color.SRGB, opt.ColorSpace)
	assert.Equal(t, DefaultLuminance, opt.Luminance)
	assert.Equal(t, DefaultWavelengthLow, opt.WavelengthLow)
	assert.Equal(t, DefaultWavelengthHigh, opt.WavelengthHigh)
	assert.Equal(t, DefaultWhiteMix, opt.WhiteMix)
}

func TestNewPaletteOptionsOverrides(t *testing.T) {
	in := &PaletteOptions{
		Debug:         true,
		ColorSpace:    &color.Rec2020,
		Luminance:     0.2,
		WavelengthLow: 450,
	}
	opt := NewPaletteOptions(in)

	assert.True(t, opt.Debug)
	assert.Same(t, &color.Rec2020, opt.ColorSpace)
	assert.Equal(t, 0.2, opt.Luminance)
	assert.Equal(t, 450, opt.WavelengthLow)
	assert.Equal(t, DefaultWavelengthHigh, opt.WavelengthHigh)
	assert.Equal(t, DefaultWhiteMix, opt.WhiteMix)

	// the input is copied, not adopted
	assert.NotSame(t, in, opt)
}

func TestNewPaletteOptionsPrimaries(t *testing.T) {

	for _, tc := range []struct {
		name     string
		in       *PaletteOptions
		expected *color.ColorSpace
	}{
		{name: "display p3", in: &PaletteOptions{Primaries: color.PRI_P3}, expected: &color.DisplayP3},
		{name: "bt2100", in: &PaletteOptions{Primaries: color.PRI_BT2100}, expected: &color.Rec2020},
		{name: "srgb", in: &PaletteOptions{Primaries: color.PRI_SRGB}, expected: &color.SRGB},
		{name: "colour space wins", in: &PaletteOptions{Primaries: color.PRI_P3, ColorSpace: &color.Rec2020}, expected: &color.Rec2020},
		{name: "unknown", in: &PaletteOptions{Primaries: 42}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opt := NewPaletteOptions(tc.in)
			assert.Equal(t, tc.in.Primaries, opt.Primaries)
			if tc.expected == nil {
				assert.Nil(t, opt.ColorSpace)
				return
			}
			assert.Equal(t, *tc.expected, *opt.ColorSpace)
		})
	}

	// looked up spaces are copies
	opt := NewPaletteOptions(&PaletteOptions{Primaries: color.PRI_SRGB})
	assert.NotSame(t, &color.SRGB, opt.ColorSpace)
}
