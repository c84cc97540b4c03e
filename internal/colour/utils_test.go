package colour

import (
	"math"
	"testing"
)

var sampleHexes = []string{
	"#000000", "#ffffff", "#ff0000", "#00ff00", "#0000ff",
	"#ffeb3b", "#121212", "#777777", "#4477aa", "#ee6677",
	"#228833", "#ccbb44", "#66ccee", "#aa3377", "#bbbbbb",
}

func TestContrastRatioSymmetricAndBounded(t *testing.T) {
	for _, a := range sampleHexes {
		for _, b := range sampleHexes {
			ab, err := HexContrastRatio(a, b)
			if err != nil {
				t.Fatalf("HexContrastRatio(%s, %s) error: %v", a, b, err)
			}
			ba, err := HexContrastRatio(b, a)
			if err != nil {
				t.Fatalf("HexContrastRatio(%s, %s) error: %v", b, a, err)
			}
			if ab != ba {
				t.Errorf("contrast not symmetric: %s/%s = %f, %s/%s = %f", a, b, ab, b, a, ba)
			}
			if ab < 1 || ab > 21+1e-9 {
				t.Errorf("contrast %s/%s = %f out of [1, 21]", a, b, ab)
			}
		}
	}
}

func TestContrastRatioKnownValues(t *testing.T) {
	tests := []struct {
		name string
		a, b RGB
		want float64
	}{
		{name: "black on white", a: Black, b: White, want: 21},
		{name: "same colour", a: RGB{R: 120, G: 40, B: 200}, b: RGB{R: 120, G: 40, B: 200}, want: 1},
		{name: "mid grey on white", a: RGB{R: 118, G: 118, B: 118}, b: White, want: 4.54},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Contrast(tt.a, tt.b)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("Contrast() = %.3f, want %.2f", got, tt.want)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, hex := range sampleHexes {
		rgb := MustParseHex(hex)
		h, s, l := RGBToHSL(rgb)
		got := HSLToRGB(h, s, l)
		if got != rgb {
			t.Errorf("HSL round trip of %s = %s", hex, got.Hex())
		}
	}
}

func TestHSLToRGBWrapsAndClamps(t *testing.T) {
	if got := HSLToRGB(360+120, 1, 0.5); got != (RGB{G: 255}) {
		t.Errorf("HSLToRGB(480, 1, 0.5) = %s, want #00ff00", got.Hex())
	}
	if got := HSLToRGB(-120, 1, 0.5); got != (RGB{B: 255}) {
		t.Errorf("HSLToRGB(-120, 1, 0.5) = %s, want #0000ff", got.Hex())
	}
	if got := HSLToRGB(10, 2, 1.5); got != White {
		t.Errorf("HSLToRGB with out of range s/l = %s, want white", got.Hex())
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		h1, h2 float64
		want   float64
	}{
		{h1: 10, h2: 350, want: 20},
		{h1: 0, h2: 180, want: 180},
		{h1: 90, h2: 45, want: 45},
		{h1: -30, h2: 30, want: 60},
	}

	for _, tt := range tests {
		if got := HueDistance(tt.h1, tt.h2); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("HueDistance(%v, %v) = %v, want %v", tt.h1, tt.h2, got, tt.want)
		}
	}
}

func TestRotateHue(t *testing.T) {
	red := RGB{R: 255}
	if got := RotateHue(red, 120); got != (RGB{G: 255}) {
		t.Errorf("RotateHue(red, 120) = %s, want #00ff00", got.Hex())
	}
}
