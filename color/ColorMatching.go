package color

import (
	"math"
)

// The colour matching table covers MinWavelength..MaxWavelength nm inclusive
// in 1 nm steps.
const (
	MinWavelength = 390
	MaxWavelength = 830
)

// cieColorMatch holds the CIE 1931 2° observer x̄ ȳ z̄ functions. Values are
// the multi-lobe piecewise Gaussian fit of Wyman, Sloan and Shirley,
// "Simple Analytic Approximations to the CIE XYZ Color Matching Functions"
// (JCGT 2013), which stays within the tabulated data's own measurement noise
// across the visible range. Filled once at init and never written again.
var cieColorMatch = buildColorMatchTable()

type lobe struct {
	weight float64
	mean   float64
	lower  float64
	upper  float64
}

var (
	xBarLobes = []lobe{
		{1.056, 599.8, 37.9, 31.0},
		{0.362, 442.0, 16.0, 26.7},
		{-0.065, 501.1, 20.4, 26.2},
	}
	yBarLobes = []lobe{
		{0.821, 568.8, 46.9, 40.5},
		{0.286, 530.9, 16.3, 31.1},
	}
	zBarLobes = []lobe{
		{1.217, 437.0, 11.8, 36.0},
		{0.681, 459.0, 26.0, 13.8},
	}
)

func evalLobes(lobes []lobe, nm float64) float64 {
	sum := 0.0
	for _, l := range lobes {
		sigma := l.upper
		if nm < l.mean {
			sigma = l.lower
		}
		t := (nm - l.mean) / sigma
		sum += l.weight * math.Exp(-0.5*t*t)
	}
	return sum
}

func buildColorMatchTable() [MaxWavelength - MinWavelength + 1][3]float64 {
	var table [MaxWavelength - MinWavelength + 1][3]float64
	for i := range table {
		nm := float64(MinWavelength + i)
		table[i] = [3]float64{
			evalLobes(xBarLobes, nm),
			evalLobes(yBarLobes, nm),
			evalLobes(zBarLobes, nm),
		}
	}
	return table
}

// ColorMatch returns the x̄ ȳ z̄ sample for nm, and false when nm is outside
// the table.
func ColorMatch(nm int) ([3]float64, bool) {
	idx := nm - MinWavelength
	if idx < 0 || idx >= len(cieColorMatch) {
		return [3]float64{}, false
	}
	return cieColorMatch[idx], true
}

// XYZFromWavelength returns the tristimulus of a monochromatic stimulus of
// unit power. Wavelengths outside the table give a zero XYZ, which is black
// and cannot be normalised.
func XYZFromWavelength(nm int) XYZ {
	c, ok := ColorMatch(nm)
	if !ok {
		return XYZ{}
	}
	return NewXYZFromArray(c)
}
