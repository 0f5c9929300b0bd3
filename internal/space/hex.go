package space

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// HexDigits is the length of a fully expanded RGB hex string.
const HexDigits = 6

var (
	// ErrHexLength indicates the cleaned string is not 6 digits long.
	ErrHexLength = errors.New("space: hex string must have 3 or 6 digits")

	// ErrHexDigit indicates the string is not valid base-16.
	ErrHexDigit = errors.New("space: invalid hex digit")
)

// ExpandHex strips one leading '#' and doubles every character of a
// 3-digit shorthand. It reports false unless the result is 6 long.
func ExpandHex(s string) (string, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		var sb strings.Builder
		sb.Grow(HexDigits)
		for i := 0; i < len(s); i++ {
			sb.WriteByte(s[i])
			sb.WriteByte(s[i])
		}
		s = sb.String()
	}
	return s, len(s) == HexDigits
}

// ParseHex decodes an optional '#', 3 or 6 hex digit string into three
// 8-bit channels. Every character after '#' must be a hex digit: a
// leading '+' or '-' sign is rejected with ErrHexDigit, as are spaces
// and underscores.
func ParseHex(s string) (r, g, b int, err error) {
	digits, ok := ExpandHex(s)
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrHexLength, s)
	}
	code, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrHexDigit, s)
	}
	return int(code>>16) & 0xFF, int(code>>8) & 0xFF, int(code) & 0xFF, nil
}

// FormatHex formats a web channel as two uppercase, zero-padded digits.
func FormatHex(v int) string {
	return fmt.Sprintf("%02X", v)
}
