package color

// RGB24 is the final 8 bit per channel, display encoded output.
type RGB24 struct {
	R uint8
	G uint8
	B uint8
}

func NewRGB24FromUint32(packed uint32) RGB24 {
	return RGB24{R: uint8(packed >> 16), G: uint8(packed >> 8), B: uint8(packed)}
}

func (c RGB24) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ToFloat maps each channel to [0,1] without decoding.
func (c RGB24) ToFloat() RGB {
	return RGB{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
