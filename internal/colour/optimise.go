package colour

import "math"

const (
	lightnessStep         = 0.05
	maxLightnessSteps     = 20
	minOptimiseSaturation = 0.5

	// Extreme fallback: Lab lightness moves 18 units per darken/brighten step.
	labLightnessPerStep = 18.0
	extremeShiftSteps   = 3.0

	// Backgrounds lighter than this (Lab L) are treated as light.
	lightBackgroundL = 50.0
)

var (
	// Saturations retried when the first lightness sweep finds nothing.
	saturationSweep = []float64{0.7, 0.8, 0.9, 1.0}

	fallbackGrey = RGB{R: 0x33, G: 0x33, B: 0x33}
)

// IsLightBackground reports whether bg reads as a light background.
func IsLightBackground(bg RGB) bool {
	return RGBToLab(bg).L > lightBackgroundL
}

// OptimiseContrast adjusts base until it reaches target contrast against
// background. A compliant base is returned unchanged.
//
// Hue is held and saturation clamped to at least 0.5 while lightness is swept
// in 0.05 steps away from the background; if that fails the sweep is retried
// at saturations 0.7-1.0. The fallback ladder is an extreme darken/brighten of
// the base, then #333333 on light backgrounds, then whichever of black or
// white contrasts more. The result meets target whenever any sRGB colour can.
func OptimiseContrast(base, background RGB, target float64) RGB {
	if Contrast(base, background) >= target {
		return base
	}

	darken := IsLightBackground(background)
	h, s, l := RGBToHSL(base)

	if rgb, ok := sweepLightness(h, math.Max(s, minOptimiseSaturation), l, background, target, darken); ok {
		return rgb
	}
	for _, sat := range saturationSweep {
		if rgb, ok := sweepLightness(h, sat, l, background, target, darken); ok {
			return rgb
		}
	}

	extreme := shiftLabLightness(base, darken)
	if Contrast(extreme, background) >= target {
		return extreme
	}
	if darken && Contrast(fallbackGrey, background) >= target {
		return fallbackGrey
	}
	return BestExtreme(background)
}

// OptimiseContrastHex is OptimiseContrast for hex strings.
func OptimiseContrastHex(baseHex, backgroundHex string, target float64) (string, error) {
	base, err := ParseHex(baseHex)
	if err != nil {
		return "", err
	}
	bg, err := ParseHex(backgroundHex)
	if err != nil {
		return "", err
	}
	return OptimiseContrast(base, bg, target).Hex(), nil
}

// BestExtreme returns black or white, whichever contrasts more with bg.
func BestExtreme(bg RGB) RGB {
	if Contrast(Black, bg) >= Contrast(White, bg) {
		return Black
	}
	return White
}

func sweepLightness(h, s, l float64, bg RGB, target float64, darken bool) (RGB, bool) {
	for step := 1; step <= maxLightnessSteps; step++ {
		delta := float64(step) * lightnessStep
		next := l + delta
		if darken {
			next = l - delta
		}
		next = clamp01(next)

		rgb := HSLToRGB(h, s, next)
		if Contrast(rgb, bg) >= target {
			return rgb, true
		}
		if next == 0 || next == 1 {
			break
		}
	}
	return RGB{}, false
}

func shiftLabLightness(c RGB, darken bool) RGB {
	lab := RGBToLab(c)
	shift := labLightnessPerStep * extremeShiftSteps
	if darken {
		lab.L = math.Max(0, lab.L-shift)
	} else {
		lab.L = math.Min(100, lab.L+shift)
	}
	return LabToRGB(lab)
}
