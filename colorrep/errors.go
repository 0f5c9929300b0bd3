package colorrep

import "errors"

// ErrInvalidHex indicates a string that is not a 3 or 6 digit RGB hex
// color, optionally prefixed with '#'.
var ErrInvalidHex = errors.New("colorrep: invalid hex color")
