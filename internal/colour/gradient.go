package colour

import "math"

// Below this chroma a colour's hue is meaningless and is borrowed from the
// other end of the interpolation.
const achromaticChroma = 2.0

// InterpolateLCH returns steps colours from start to end, inclusive, spaced
// evenly in LCH. Lightness and chroma move linearly and hue takes the shorter
// way round the wheel. The end points are returned exactly.
func InterpolateLCH(start, end RGB, steps int) []RGB {
	switch {
	case steps <= 0:
		return nil
	case steps == 1:
		return []RGB{start}
	}

	a := RGBToLCH(start)
	b := RGBToLCH(end)
	if a.C < achromaticChroma {
		a.H = b.H
	}
	if b.C < achromaticChroma {
		b.H = a.H
	}

	dh := b.H - a.H
	if dh > 180 {
		dh -= 360
	} else if dh < -180 {
		dh += 360
	}

	out := make([]RGB, steps)
	out[0] = start
	out[steps-1] = end
	for i := 1; i < steps-1; i++ {
		t := float64(i) / float64(steps-1)
		out[i] = LCHToRGB(LCH{
			L: a.L + t*(b.L-a.L),
			C: a.C + t*(b.C-a.C),
			H: math.Mod(a.H+t*dh+360, 360),
		})
	}
	return out
}
