package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Lab is a CIE L*a*b* (D65) coordinate with L in 0-100.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Distance is the Euclidean (CIE76) distance between two Lab points.
func (p Lab) Distance(other Lab) float64 {
	dl := p.L - other.L
	da := p.A - other.A
	db := p.B - other.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// LCH is the cylindrical form of Lab. H is in degrees.
type LCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// go-colorful works with L in 0-1; the rest of the package uses 0-100.
const labScale = 100.0

func (rgb RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// RGBToLab converts an sRGB colour to Lab.
func RGBToLab(rgb RGB) Lab {
	l, a, b := rgb.colorful().Lab()
	return Lab{L: l * labScale, A: a * labScale, B: b * labScale}
}

// LabToRGB converts Lab back to sRGB, clamping out-of-gamut channels.
func LabToRGB(lab Lab) RGB {
	return fromColorful(colorful.Lab(lab.L/labScale, lab.A/labScale, lab.B/labScale))
}

// RGBToLCH converts an sRGB colour to LCH.
func RGBToLCH(rgb RGB) LCH {
	h, c, l := rgb.colorful().Hcl()
	return LCH{L: l * labScale, C: c * labScale, H: normaliseHue(h)}
}

// LCHToRGB converts LCH to sRGB. Out-of-gamut colours keep their lightness
// and hue while chroma is reduced until the colour fits.
func LCHToRGB(lch LCH) RGB {
	l := lch.L / labScale
	h := normaliseHue(lch.H)
	c := colorful.Hcl(h, lch.C/labScale, l)
	if c.IsValid() {
		return fromColorful(c)
	}

	lo, hi := 0.0, lch.C/labScale
	for range 24 {
		mid := (lo + hi) / 2
		if colorful.Hcl(h, mid, l).IsValid() {
			lo = mid
		} else {
			hi = mid
		}
	}
	return fromColorful(colorful.Hcl(h, lo, l))
}

// HexToLab parses hex and converts it to Lab.
func HexToLab(hex string) (Lab, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return Lab{}, err
	}
	return RGBToLab(rgb), nil
}

// LabToHex converts Lab to a #rrggbb string.
func LabToHex(lab Lab) string {
	return LabToRGB(lab).Hex()
}

// HexToHSL parses hex and converts it to hue (0-360), saturation and lightness (0-1).
func HexToHSL(hex string) (h, s, l float64, err error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return 0, 0, 0, err
	}
	h, s, l = RGBToHSL(rgb)
	return h, s, l, nil
}

// HSLToHex converts HSL to a #rrggbb string.
func HSLToHex(h, s, l float64) string {
	return HSLToRGB(h, s, l).Hex()
}

// LabDistance returns the Lab distance between two colours.
func LabDistance(a, b RGB) float64 {
	return RGBToLab(a).Distance(RGBToLab(b))
}

// HexLabDistance returns the Lab distance between two hex colours.
func HexLabDistance(a, b string) (float64, error) {
	la, err := HexToLab(a)
	if err != nil {
		return 0, err
	}
	lb, err := HexToLab(b)
	if err != nil {
		return 0, err
	}
	return la.Distance(lb), nil
}

// HexContrastRatio returns the WCAG contrast ratio between two hex colours.
func HexContrastRatio(a, b string) (float64, error) {
	ra, err := ParseHex(a)
	if err != nil {
		return 0, err
	}
	rb, err := ParseHex(b)
	if err != nil {
		return 0, err
	}
	return Contrast(ra, rb), nil
}
