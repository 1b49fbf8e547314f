package color

import (
	"math"
)

const (
	planck     = 6.62606957e-34 // J s
	lightSpeed = 299792458.0    // m/s
	boltzmann  = 1.3806488e-23  // J/K
	nmPerMetre = 1e9
)

// SpectralRadiance is Planck's law per unit wavelength, B(λ, T), for
// wavelength nm and temperature kelvin.
func SpectralRadiance(nm float64, kelvin float64) float64 {
	l := nm / nmPerMetre
	return (2 * planck * lightSpeed * lightSpeed / math.Pow(l, 5)) /
		(math.Exp(planck*lightSpeed/(l*boltzmann*kelvin)) - 1)
}

// BlackBody integrates the radiance of an ideal black body at kelvin against
// the colour matching table with a fixed 1 nm step. The result is not
// normalised; its magnitude grows steeply with temperature.
func BlackBody(kelvin float64) (XYZ, error) {
	if math.IsNaN(kelvin) || math.IsInf(kelvin, 0) || kelvin <= 0 {
		return XYZ{}, ErrInvalidTemperature
	}

	var sum XYZ
	for i, c := range cieColorMatch {
		energy := SpectralRadiance(float64(MinWavelength+i), kelvin)
		sum = sum.Add(NewXYZFromArray(c).Scale(energy))
	}
	return sum, nil
}
