package color

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the kind shared by every error the package returns. None
// of the operations here have recoverable failures; every error is a caller
// passing a value outside an operation's domain.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrZeroMaximum         = fmt.Errorf("%w: maximum component must be positive", ErrInvalidInput)
	ErrHueOutOfRange       = fmt.Errorf("%w: hue must be in [0, 6)", ErrInvalidInput)
	ErrLuminanceOutOfRange = fmt.Errorf("%w: target luminance must be in [0, 1]", ErrInvalidInput)
	ErrLuminanceBoundary   = fmt.Errorf("%w: luminance target unreachable from this colour", ErrInvalidInput)
	ErrInvalidTemperature  = fmt.Errorf("%w: temperature must be positive", ErrInvalidInput)
	ErrNonFinite           = fmt.Errorf("%w: value is not finite", ErrInvalidInput)
	ErrUnknownColorSpace   = fmt.Errorf("%w: unknown colour space", ErrInvalidInput)
)
