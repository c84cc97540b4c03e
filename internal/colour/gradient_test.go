package colour

import "testing"

func TestInterpolateLCH(t *testing.T) {
	start := MustParseHex("#9ecae1")
	end := MustParseHex("#08306b")

	steps := InterpolateLCH(start, end, 12)
	if len(steps) != 12 {
		t.Fatalf("expected 12 steps, got %d", len(steps))
	}
	if steps[0] != start || steps[11] != end {
		t.Errorf("end points changed: %s .. %s", steps[0].Hex(), steps[11].Hex())
	}

	prev := RGBToLab(steps[0]).L
	for i := 1; i < len(steps); i++ {
		l := RGBToLab(steps[i]).L
		if l > prev+0.5 {
			t.Errorf("lightness not monotonic at step %d: %.2f after %.2f", i, l, prev)
		}
		prev = l
	}
}

func TestInterpolateLCHAchromaticEnd(t *testing.T) {
	// A grey end takes the hue of the chromatic end instead of swinging through red.
	start := MustParseHex("#2166ac")
	mid := MustParseHex("#f7f7f7")

	steps := InterpolateLCH(start, mid, 7)
	startHue := RGBToLCH(start).H
	for i := 1; i < 5; i++ {
		lch := RGBToLCH(steps[i])
		if lch.C > 5 && HueDistance(lch.H, startHue) > 20 {
			t.Errorf("step %d hue %.1f drifted from %.1f", i, lch.H, startHue)
		}
	}
}

func TestInterpolateLCHShortInputs(t *testing.T) {
	if got := InterpolateLCH(Black, White, 0); got != nil {
		t.Errorf("0 steps = %v, want nil", got)
	}
	if got := InterpolateLCH(Black, White, 1); len(got) != 1 || got[0] != Black {
		t.Errorf("1 step = %v, want [black]", got)
	}
}
