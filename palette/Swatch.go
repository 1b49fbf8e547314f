package palette

import (
	"fmt"
	"strings"

	"github.com/kpfaulkner/colorimetry-go/color"
	"github.com/lucasb-eyer/go-colorful"
)

// Swatch is one generated colour and what it was generated for.
type Swatch struct {
	Label string
	Color color.RGB24
}

// Hex formats the colour as RRGGBB in upper case.
func (s Swatch) Hex() string {
	return FormatHex(s.Color)
}

func FormatHex(c color.RGB24) string {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return strings.ToUpper(strings.TrimPrefix(cf.Hex(), "#"))
}

// ParseHex accepts RRGGBB, #RRGGBB and the short RGB / #RGB forms.
func ParseHex(s string) (color.RGB24, error) {
	h := s
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	if len(h) != 7 && len(h) != 4 {
		return color.RGB24{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	// colorful.Hex scans with Sscanf, which stops early on spaces and
	// trailing garbage instead of failing.
	for _, r := range h[1:] {
		if !isHexDigit(r) {
			return color.RGB24{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
	}

	cf, err := colorful.Hex(h)
	if err != nil {
		return color.RGB24{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	r, g, b := cf.RGB255()
	return color.RGB24{R: r, G: g, B: b}, nil
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

func Hexes(swatches []Swatch) []string {
	res := make([]string, len(swatches))
	for i, s := range swatches {
		res[i] = s.Hex()
	}
	return res
}
