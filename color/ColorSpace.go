package color

// ColorSpace is an RGB space described by its three primaries and white
// point. The Lum of each primary is its contribution to the luminance of
// white, so the three sum to White.Lum.
type ColorSpace struct {
	Red   CIExyY
	Green CIExyY
	Blue  CIExyY
	White CIExyY
}

// Package level spaces are read only. Pass them by address, never assign to
// their fields.
var (
	SRGB = ColorSpace{
		Red:   CIExyY{X: 0.6400, Y: 0.3300, Lum: 0.2126},
		Green: CIExyY{X: 0.3000, Y: 0.6000, Lum: 0.7152},
		Blue:  CIExyY{X: 0.1500, Y: 0.0600, Lum: 0.0722},
		White: WhiteD65,
	}

	DisplayP3 = ColorSpace{
		Red:   CIExyY{X: 0.680, Y: 0.320, Lum: 0.2289746},
		Green: CIExyY{X: 0.265, Y: 0.690, Lum: 0.6917385},
		Blue:  CIExyY{X: 0.150, Y: 0.060, Lum: 0.0792869},
		White: WhiteD65,
	}

	Rec2020 = ColorSpace{
		Red:   CIExyY{X: 0.708, Y: 0.292, Lum: 0.2627},
		Green: CIExyY{X: 0.170, Y: 0.797, Lum: 0.6780},
		Blue:  CIExyY{X: 0.131, Y: 0.046, Lum: 0.0593},
		White: WhiteD65,
	}
)

// GetColorSpace returns a copy so callers are free to modify the result.
func GetColorSpace(primaries int32) (*ColorSpace, error) {
	var cs ColorSpace
	switch primaries {
	case PRI_SRGB:
		cs = SRGB
	case PRI_P3:
		cs = DisplayP3
	case PRI_BT2100:
		cs = Rec2020
	default:
		return nil, ErrUnknownColorSpace
	}
	return &cs, nil
}

// Luminances returns the Y coefficients of the primaries in R, G, B order.
func (cs *ColorSpace) Luminances() [3]float64 {
	return [3]float64{cs.Red.Lum, cs.Green.Lum, cs.Blue.Lum}
}
