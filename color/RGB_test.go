package color

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBNormalize(t *testing.T) {

	for _, tc := range []struct {
		name      string
		in        RGB
		expected  RGB
		expectErr error
	}{
		{name: "already normalised", in: RGB{1, 0.5, 0}, expected: RGB{1, 0.5, 0}},
		{name: "scale up", in: RGB{0.25, 0.5, 0.1}, expected: RGB{0.5, 1, 0.2}},
		{name: "scale down", in: RGB{4, 2, 1}, expected: RGB{1, 0.5, 0.25}},
		{name: "negative component kept", in: RGB{-0.5, 2, 1}, expected: RGB{-0.25, 1, 0.5}},
		{name: "black", in: RGB{}, expectErr: ErrZeroMaximum},
		{name: "all negative", in: RGB{-1, -2, -3}, expectErr: ErrZeroMaximum},
		{name: "nan", in: RGB{math.NaN(), 1, 1}, expectErr: ErrZeroMaximum},
		{name: "infinite", in: RGB{1, math.Inf(1), 0.5}, expectErr: ErrNonFinite},
		{name: "negative infinity", in: RGB{math.Inf(-1), math.Inf(-1), math.Inf(-1)}, expectErr: ErrNonFinite},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tc.in.Normalize()
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expected.R, res.R, 1e-12)
			assert.InDelta(t, tc.expected.G, res.G, 1e-12)
			assert.InDelta(t, tc.expected.B, res.B, 1e-12)
			assert.InDelta(t, 1.0, math.Max(res.R, math.Max(res.G, res.B)), 1e-12)
		})
	}
}

func TestRGBConstrain(t *testing.T) {
	inGamut := RGB{0.2, 0.7, 0}
	assert.Equal(t, inGamut, inGamut.Constrain())

	res := RGB{-0.25, 0.5, 1}.Constrain()
	assert.Equal(t, RGB{0, 0.75, 1.25}, res)

	res = RGB{0.5, -0.1, -0.3}.Constrain()
	assert.InDelta(t, 0.8, res.R, 1e-12)
	assert.InDelta(t, 0.2, res.G, 1e-12)
	assert.Equal(t, 0.0, res.B)
}

func TestRGBToInt(t *testing.T) {

	for _, tc := range []struct {
		name     string
		in       RGB
		expected RGB24
	}{
		{name: "black", in: RGB{}, expected: RGB24{}},
		{name: "white", in: White(), expected: RGB24{255, 255, 255}},
		{name: "half rounds up", in: RGB{0.5, 0.5, 0.5}, expected: RGB24{128, 128, 128}},
		{name: "clamped", in: RGB{-1, 2, 0.2}, expected: RGB24{0, 255, 51}},
		{name: "nan is black", in: RGB{math.NaN(), 1, 0}, expected: RGB24{0, 255, 0}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.in.ToInt())
		})
	}
}

func TestRGBArithmetic(t *testing.T) {
	a := RGB{0.1, 0.2, 0.3}
	b := RGB{1, 2, 3}

	sum := a.Add(b)
	assert.InDelta(t, 1.1, sum.R, 1e-12)
	assert.InDelta(t, 2.2, sum.G, 1e-12)
	assert.InDelta(t, 3.3, sum.B, 1e-12)
	assert.Equal(t, RGB{2, 4, 6}, b.Scale(2))
	assert.Equal(t, RGB{0.5, 1, 1.5}, b.Divide(2))

	// operands are values and stay untouched
	assert.Equal(t, RGB{1, 2, 3}, b)
}

func TestRGBLuminance(t *testing.T) {
	assert.InDelta(t, 0.2126, RGB{1, 0, 0}.Luminance(&SRGB), 1e-12)
	assert.InDelta(t, 0.7152, RGB{0, 1, 0}.Luminance(&SRGB), 1e-12)
	assert.InDelta(t, 0.0722, RGB{0, 0, 1}.Luminance(&SRGB), 1e-12)
	assert.InDelta(t, 0.5, RGB{0.5, 0.5, 0.5}.Luminance(&SRGB), 1e-12)
}

func TestRGB24(t *testing.T) {
	c := NewRGB24FromUint32(0x12C99D)
	assert.Equal(t, RGB24{0x12, 0xC9, 0x9D}, c)
	assert.Equal(t, uint32(0x12C99D), c.Uint32())

	f := RGB24{255, 0, 51}.ToFloat()
	assert.Equal(t, RGB{1, 0, 0.2}, f)
	assert.Equal(t, RGB24{255, 0, 51}, f.ToInt())
}

func TestXYZNormalize(t *testing.T) {
	res, err := XYZ{X: 0.5, Y: 2, Z: 1}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, XYZ{X: 0.25, Y: 1, Z: 0.5}, res)

	_, err = XYZ{}.Normalize()
	assert.ErrorIs(t, err, ErrZeroMaximum)

	_, err = XYZ{X: math.Inf(1), Y: 1, Z: 1}.Normalize()
	assert.ErrorIs(t, err, ErrNonFinite)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
