package color

// Primaries identifiers follow the JPEG XL / H.273 numbering.
const (
	PRI_SRGB   int32 = 1
	PRI_BT2100 int32 = 9
	PRI_P3     int32 = 11
)
