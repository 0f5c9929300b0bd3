package light

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAlgebra(t *testing.T) {
	tests := []struct {
		name string
		got  Color
		want [4]float64
	}{
		{"black add white", Black.Add(White), [4]float64{0.5, 0.5, 0.5, 1}},
		{"add averages alpha", Clear.Add(White), [4]float64{0.5, 0.5, 0.5, 0.5}},
		{"subtract saturates", Red.Subtract(Green), [4]float64{1, 1, 0, 1}},
		{"subtract caps at one", Gray(0.7).Subtract(Gray(0.6)), [4]float64{1, 1, 1, 1}},
		{"multiply", Red.Multiply(Blue), [4]float64{0.5, 0, 0.5, 1}},
		{"multiply squares", Gray(0.5).Multiply(Black), [4]float64{0.125, 0.125, 0.125, 1}},
		{"blend midpoint", Red.Blend(Blue, WithMidpoint(0.75)), [4]float64{0.25, 0, 0.75, 1}},
		{"blend left", Red.Blend(Blue, WithMidpoint(0)), [4]float64{1, 0, 0, 1}},
		{"blend alpha linear", Red.Blend(Red.WithAlpha(0), WithMidpoint(0.25)), [4]float64{1, 0, 0, 0.75}},
		{"divide", White.Divide(White), [4]float64{0.5, 0.5, 0.5, 1}},
		{"divide by black", Black.Divide(Black), [4]float64{0.5, 0.5, 0.5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Components(), approx); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAlgebraCrossType(t *testing.T) {
	got := Red.Add(rgbVec{0, 0, 1, 1})
	if want := New(0.5, 0, 0.5, 1); got != want {
		t.Errorf("Red.Add(rgbVec blue) = %v, want %v", got, want)
	}

	// The result takes the type of the left operand.
	var _ Color = Blue.Blend(rgbVec{1, 1, 1, 1})
}

func TestTransforms(t *testing.T) {
	tests := []struct {
		name string
		got  Color
		want [4]float64
	}{
		{"invert", Red.WithAlpha(0.4).Invert(), [4]float64{0, 1, 1, 0.4}},
		{"transform clamps", Gray(0.6).Transform(func(v float64) float64 { return v * 2 }), [4]float64{1, 1, 1, 1}},
		{"transform below zero", Gray(0.6).Transform(func(v float64) float64 { return v - 1 }), [4]float64{0, 0, 0, 1}},
		{"with alpha", Red.WithAlpha(0.3), [4]float64{1, 0, 0, 0.3}},
		{"with alpha clamps", Red.WithAlpha(2), [4]float64{1, 0, 0, 1}},
		{"with hue", Red.WithHue(1.0 / 3), [4]float64{0, 1, 0, 1}},
		{"with saturation", Red.WithSaturation(0), [4]float64{1, 1, 1, 1}},
		{"with brightness", Red.WithBrightness(0.5), [4]float64{0.5, 0, 0, 1}},
		{"with luminosity", Red.WithLuminosity(0.25), [4]float64{0.5, 0, 0, 1}},
		{"with luminosity uses hsb saturation", RGB(1, 0.5, 0.5).WithLuminosity(0.75), [4]float64{0.875, 0.625, 0.625, 1}},
		{"lighten lowers brightness", Gray(0.5).Lighten(2), [4]float64{0.3, 0.3, 0.3, 1}},
		{"darken raises brightness", Gray(0.5).Darken(2), [4]float64{0.7, 0.7, 0.7, 1}},
		{"lighten keeps alpha", GrayAlpha(0.5, 0.4).Lighten(1), [4]float64{0.4, 0.4, 0.4, 0.4}},
		{"lightened to alpha", GrayAlpha(0.5, 0.5).LightenedToAlpha(), [4]float64{0.45, 0.45, 0.45, 0.5}},
		{"darkened to alpha", GrayAlpha(0.5, 0.5).DarkenedToAlpha(), [4]float64{0.55, 0.55, 0.55, 0.5}},
		{"opaque lightened to alpha", Gray(0.5).LightenedToAlpha(), [4]float64{0.5, 0.5, 0.5, 1}},
		{"opaque darkened to alpha", Graphite.DarkenedToAlpha(), [4]float64{0.56, 0.56, 0.55, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Components(), approx); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	got := New(0.2, 0.8, 0.5, 1).Compare(New(0.6, 0.4, 0.5, 0), math.Max)
	if want := [4]float64{0.6, 0.8, 0.5, 1}; got != want {
		t.Errorf("Compare(max) = %v, want %v", got, want)
	}
}

func TestOperationsDoNotMutate(t *testing.T) {
	c := Graphite
	_ = c.Invert().Lighten(3).WithHue(0.2).Blend(Red)
	if c != Graphite {
		t.Errorf("receiver changed to %v", c)
	}
}

func BenchmarkBlend(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Red.Blend(Blue, WithMidpoint(0.3))
	}
}
