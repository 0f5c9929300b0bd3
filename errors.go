package light

import (
	"errors"

	"github.com/gogpu/light/colorrep"
)

var (
	// ErrInvalidHex indicates a string that is not a 3 or 6 digit hex color.
	ErrInvalidHex = colorrep.ErrInvalidHex

	// ErrUnknownName indicates a name that is not a CSS color keyword.
	ErrUnknownName = errors.New("light: unknown color name")

	// ErrDecode indicates serialized data that does not describe a color.
	ErrDecode = errors.New("light: cannot decode color")
)
