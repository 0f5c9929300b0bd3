package space

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestRGBToHSB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    [3]float64
	}{
		{"black", 0, 0, 0, [3]float64{0, 0, 0}},
		{"white", 1, 1, 1, [3]float64{0, 0, 1}},
		{"gray", 0.5, 0.5, 0.5, [3]float64{0, 0, 0.5}},
		{"red", 1, 0, 0, [3]float64{0, 1, 1}},
		{"green", 0, 1, 0, [3]float64{1.0 / 3, 1, 1}},
		{"blue", 0, 0, 1, [3]float64{2.0 / 3, 1, 1}},
		{"magenta wraps", 1, 0, 1, [3]float64{5.0 / 6, 1, 1}},
		{"half orange", 1, 0.5, 0, [3]float64{1.0 / 12, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := RGBToHSB(tt.r, tt.g, tt.b)
			if diff := cmp.Diff(tt.want, [3]float64{h, s, v}, approx); diff != "" {
				t.Errorf("RGBToHSB(%v, %v, %v) mismatch (-want +got):\n%s", tt.r, tt.g, tt.b, diff)
			}
		})
	}
}

func TestHSBToRGBSectors(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    [3]float64
	}{
		{"sector 0", 0, 1, 1, [3]float64{1, 0, 0}},
		{"sector 1", 1.0 / 6, 1, 1, [3]float64{1, 1, 0}},
		{"sector 2", 2.0 / 6, 1, 1, [3]float64{0, 1, 0}},
		{"sector 3", 3.0 / 6, 1, 1, [3]float64{0, 1, 1}},
		{"sector 4", 4.0 / 6, 1, 1, [3]float64{0, 0, 1}},
		{"sector 5", 5.0 / 6, 1, 1, [3]float64{1, 0, 1}},
		{"hue one wraps to red", 1, 1, 1, [3]float64{1, 0, 0}},
		{"unsaturated", 0.4, 0, 0.25, [3]float64{0.25, 0.25, 0.25}},
		{"clamped inputs", 2, -1, 3, [3]float64{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HSBToRGB(tt.h, tt.s, tt.v)
			if diff := cmp.Diff(tt.want, [3]float64{r, g, b}, approx); diff != "" {
				t.Errorf("HSBToRGB(%v, %v, %v) mismatch (-want +got):\n%s", tt.h, tt.s, tt.v, diff)
			}
		})
	}
}

// TestHSBAgainstColorful cross-checks both HSB directions with go-colorful.
func TestHSBAgainstColorful(t *testing.T) {
	for h := 0.0; h < 1; h += 1.0 / 48 {
		for _, s := range []float64{0.1, 0.5, 1} {
			for _, v := range []float64{0.2, 0.7, 1} {
				want := colorful.Hsv(h*360, s, v)
				r, g, b := HSBToRGB(h, s, v)
				if diff := cmp.Diff([3]float64{want.R, want.G, want.B}, [3]float64{r, g, b}, approx); diff != "" {
					t.Fatalf("HSBToRGB(%v, %v, %v) mismatch (-colorful +got):\n%s", h, s, v, diff)
				}

				wh, ws, wv := want.Hsv()
				gh, gs, gv := RGBToHSB(r, g, b)
				if diff := cmp.Diff([3]float64{wh / 360, ws, wv}, [3]float64{gh, gs, gv}, approx); diff != "" {
					t.Fatalf("RGBToHSB(%v, %v, %v) mismatch (-colorful +got):\n%s", r, g, b, diff)
				}
			}
		}
	}
}

// TestHSBRoundTrip checks toHSB(fromHSB(h,s,v)) ≈ (h,s,v) away from the
// degenerate zero saturation and zero brightness cases.
func TestHSBRoundTrip(t *testing.T) {
	for h := 0.0; h < 1; h += 0.01 {
		for s := 0.05; s <= 1; s += 0.05 {
			for v := 0.05; v <= 1; v += 0.05 {
				r, g, b := HSBToRGB(h, s, v)
				gh, gs, gv := RGBToHSB(r, g, b)
				if diff := cmp.Diff([3]float64{h, s, v}, [3]float64{gh, gs, gv}, approx); diff != "" {
					t.Fatalf("round trip (%v, %v, %v) mismatch (-want +got):\n%s", h, s, v, diff)
				}
			}
		}
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    [3]float64
	}{
		{"black", 0, 0, 0, [3]float64{0, 0, 0}},
		{"white", 1, 1, 1, [3]float64{0, 0, 1}},
		{"gray", 0.5, 0.5, 0.5, [3]float64{0, 0, 0.5}},
		{"red", 1, 0, 0, [3]float64{0, 1, 0.5}},
		{"light red", 1, 0.5, 0.5, [3]float64{0, 1, 0.75}},
		{"dark blue", 0, 0, 0.5, [3]float64{2.0 / 3, 1, 0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToHSL(tt.r, tt.g, tt.b)
			if diff := cmp.Diff(tt.want, [3]float64{h, s, l}, approx); diff != "" {
				t.Errorf("RGBToHSL(%v, %v, %v) mismatch (-want +got):\n%s", tt.r, tt.g, tt.b, diff)
			}
		})
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    [3]float64
	}{
		{"achromatic gray", 0, 0, 0.5, [3]float64{0.5, 0.5, 0.5}},
		{"achromatic ignores hue", 0.7, 0, 0.2, [3]float64{0.2, 0.2, 0.2}},
		{"red", 0, 1, 0.5, [3]float64{1, 0, 0}},
		{"green", 1.0 / 3, 1, 0.5, [3]float64{0, 1, 0}},
		{"blue", 2.0 / 3, 1, 0.5, [3]float64{0, 0, 1}},
		{"yellow boundary", 1.0 / 6, 1, 0.5, [3]float64{1, 1, 0}},
		{"light red", 0, 1, 0.75, [3]float64{1, 0.5, 0.5}},
		// Sample points are squeezed, not wrapped: red reads the low ramp
		// end for hues above 2/3.
		{"magenta squeezes red", 5.0 / 6, 1, 0.5, [3]float64{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HSLToRGB(tt.h, tt.s, tt.l)
			if diff := cmp.Diff(tt.want, [3]float64{r, g, b}, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("HSLToRGB(%v, %v, %v) mismatch (-want +got):\n%s", tt.h, tt.s, tt.l, diff)
			}
		})
	}
}

// TestHSLAgainstColorful cross-checks the hue range where squeezing and
// wrapping agree.
func TestHSLAgainstColorful(t *testing.T) {
	for h := 0.0; h <= 2.0/3; h += 1.0 / 60 {
		for _, s := range []float64{0.25, 0.6, 1} {
			for _, l := range []float64{0.1, 0.5, 0.8} {
				want := colorful.Hsl(h*360, s, l)
				r, g, b := HSLToRGB(h, s, l)
				if diff := cmp.Diff([3]float64{want.R, want.G, want.B}, [3]float64{r, g, b}, approx); diff != "" {
					t.Fatalf("HSLToRGB(%v, %v, %v) mismatch (-colorful +got):\n%s", h, s, l, diff)
				}

				wh, ws, wl := want.Hsl()
				gh, gs, gl := RGBToHSL(want.R, want.G, want.B)
				if diff := cmp.Diff([3]float64{wh / 360, ws, wl}, [3]float64{gh, gs, gl}, approx); diff != "" {
					t.Fatalf("RGBToHSL(%v) mismatch (-colorful +got):\n%s", want, diff)
				}
			}
		}
	}
}

func TestExpandHex(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"FF0000", "FF0000", true},
		{"#FF0000", "FF0000", true},
		{"#00F", "0000FF", true},
		{"abc", "aabbcc", true},
		{"##abc", "#abc", false},
		{"", "", false},
		{"FFFF", "FFFF", false},
		{"#FF00000", "FF00000", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ExpandHex(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ExpandHex(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		input   string
		want    [3]int
		wantErr error
	}{
		{"FF0000", [3]int{255, 0, 0}, nil},
		{"#00F", [3]int{0, 0, 255}, nil},
		{"#3498db", [3]int{0x34, 0x98, 0xdb}, nil},
		{"123", [3]int{0x11, 0x22, 0x33}, nil},
		{"GG0000", [3]int{}, ErrHexDigit},
		{"+FFFFF", [3]int{}, ErrHexDigit},
		{"-FFFFF", [3]int{}, ErrHexDigit},
		{"FF00", [3]int{}, ErrHexLength},
		{"", [3]int{}, ErrHexLength},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, g, b, err := ParseHex(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseHex(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got := [3]int{r, g, b}; got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestParseHexAgainstColorful checks 6-digit decoding against go-colorful
// for every web-exact gray level.
func TestParseHexAgainstColorful(t *testing.T) {
	for i := 0; i < 256; i += 5 {
		hex := "#" + FormatHex(i) + FormatHex(255-i) + FormatHex(i/2)
		want, err := colorful.Hex(hex)
		if err != nil {
			t.Fatalf("colorful.Hex(%q): %v", hex, err)
		}
		r, g, b, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", hex, err)
		}
		wr, wg, wb := want.RGB255()
		if r != int(wr) || g != int(wg) || b != int(wb) {
			t.Errorf("ParseHex(%q) = (%d, %d, %d), want (%d, %d, %d)", hex, r, g, b, wr, wg, wb)
		}
	}
}

func TestFormatHex(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "00"},
		{5, "05"},
		{171, "AB"},
		{255, "FF"},
	}

	for _, tt := range tests {
		if got := FormatHex(tt.input); got != tt.want {
			t.Errorf("FormatHex(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
