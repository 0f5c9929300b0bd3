package light

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// wireColor is the serialized form: four named floating-point fields.
// Alpha may be omitted on input and then defaults to 1.
type wireColor struct {
	Red   float64  `json:"red" yaml:"red"`
	Green float64  `json:"green" yaml:"green"`
	Blue  float64  `json:"blue" yaml:"blue"`
	Alpha *float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
}

func (c Color) wire() wireColor {
	a := c.a
	return wireColor{Red: c.r, Green: c.g, Blue: c.b, Alpha: &a}
}

func (w wireColor) color() Color {
	return FromPartial(PartialComponents{Red: &w.Red, Green: &w.Green, Blue: &w.Blue, Alpha: w.Alpha})
}

// MarshalJSON encodes c as {"red":…,"green":…,"blue":…,"alpha":…}.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.wire())
}

// UnmarshalJSON decodes the four-field object written by MarshalJSON.
// A JSON string holding a hex color or a CSS keyword is accepted too.
// Channels are clamped into [0, 1].
func (c *Color) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return c.decodeString(s)
	}

	var w wireColor
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	*c = w.color()
	return nil
}

// MarshalYAML encodes c as a mapping with red, green, blue and alpha keys.
func (c Color) MarshalYAML() (any, error) {
	return c.wire(), nil
}

// UnmarshalYAML decodes the mapping written by MarshalYAML, or a scalar
// holding a hex color or a CSS keyword.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return c.decodeString(value.Value)
	}

	var w wireColor
	if err := value.Decode(&w); err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrDecode, value.Line, err)
	}
	*c = w.color()
	return nil
}

func (c *Color) decodeString(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	*c = parsed
	return nil
}
