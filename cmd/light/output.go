package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/light"
	"github.com/gogpu/light/integration/lightgloss"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type outputOptions struct {
	format string
	swatch bool
}

func (o *outputOptions) validate() error {
	switch o.format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", o.format)
	}
}

// report is the printed description of a color.
type report struct {
	Hex  string      `json:"hex" yaml:"hex"`
	Web  [3]int      `json:"web" yaml:"web"`
	RGBA light.Color `json:"rgba" yaml:"rgba"`
	HSB  [4]float64  `json:"hsb" yaml:"hsb"`
	HSL  [4]float64  `json:"hsl" yaml:"hsl"`
}

func newReport(c light.Color) report {
	return report{
		Hex:  c.Hex(),
		Web:  c.WebComponents(),
		RGBA: c,
		HSB:  c.HSBComponents(),
		HSL:  c.HSLComponents(),
	}
}

// encode writes v to w as JSON or YAML.
func (o *outputOptions) encode(w io.Writer, v any) error {
	switch o.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not a structured format", o.format)
	}
}

// print writes c to w in the selected format.
func (o *outputOptions) print(w io.Writer, c light.Color) error {
	r := newReport(c)
	if o.format != formatText {
		return o.encode(w, r)
	}

	if o.swatch {
		if _, err := fmt.Fprintln(w, lightgloss.Swatch(c, "#"+r.Hex)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "hex   #%s\nweb   %d %d %d\nrgba  %s\nhsb   %s\nhsl   %s\n",
		r.Hex, r.Web[0], r.Web[1], r.Web[2],
		floats(c.Components()), floats(r.HSB), floats(r.HSL))
	return err
}

func floats(v [4]float64) string {
	s := ""
	for i, f := range v {
		if i > 0 {
			s += " "
		}
		s += strconv.FormatFloat(f, 'g', 4, 64)
	}
	return s
}
