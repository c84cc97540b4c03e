package colour

import (
	"errors"
	"testing"
)

var (
	testLightBackground = MustParseHex("#ffffff")
	testDarkBackground  = MustParseHex("#121212")
)

func TestCounterpartForYellow(t *testing.T) {
	yellow := MustParseHex("#FFEB3B")

	for _, level := range ValidLevels() {
		t.Run(level.String(), func(t *testing.T) {
			target := level.TargetContrast()
			b := NewDualModeBuilder(testLightBackground, testDarkBackground, target, nil)

			dark := b.Counterpart(yellow, ModeLight, false)

			if d := LabDistance(dark, yellow); d < PairDistance {
				t.Errorf("counterpart %s only %.1f Lab units from source", dark.Hex(), d)
			}
			if c := Contrast(dark, testDarkBackground); c < target {
				t.Errorf("counterpart %s contrast %.2f below %.1f", dark.Hex(), c, target)
			}
		})
	}
}

func TestCounterpartForYellowKeyColour(t *testing.T) {
	yellow := MustParseHex("#FFEB3B")
	b := NewDualModeBuilder(testLightBackground, testDarkBackground, ContrastAASmall, nil)

	dark := b.Counterpart(yellow, ModeLight, true)
	if d := LabDistance(dark, yellow); d < KeyPairDistance {
		t.Errorf("key counterpart %s only %.1f Lab units from source", dark.Hex(), d)
	}
	if c := Contrast(dark, testDarkBackground); c < ContrastAASmall {
		t.Errorf("key counterpart contrast %.2f below target", c)
	}
}

func TestCounterpartConstraints(t *testing.T) {
	b := NewDualModeBuilder(testLightBackground, testDarkBackground, ContrastAASmall, nil)

	sources := []struct {
		hex  string
		mode Mode
	}{
		{hex: "#1f77b4", mode: ModeLight},
		{hex: "#d62728", mode: ModeLight},
		{hex: "#2ca02c", mode: ModeLight},
		{hex: "#8c564b", mode: ModeLight},
		{hex: "#9ecae1", mode: ModeDark},
		{hex: "#ffbb78", mode: ModeDark},
		{hex: "#c5b0d5", mode: ModeDark},
	}

	for _, src := range sources {
		t.Run(src.hex+"/"+src.mode.String(), func(t *testing.T) {
			source := MustParseHex(src.hex)
			got := b.Counterpart(source, src.mode, false)
			bg := b.Background(src.mode.Opposite())

			if c := Contrast(got, bg); c < ContrastAASmall {
				t.Errorf("counterpart %s contrast %.2f below target", got.Hex(), c)
			}
			if d := LabDistance(got, source); d < PairDistance {
				t.Errorf("counterpart %s only %.1f from source", got.Hex(), d)
			}
		})
	}
}

func TestPairOrdersVariantsByMode(t *testing.T) {
	b := NewDualModeBuilder(testLightBackground, testDarkBackground, ContrastAALarge, nil)
	source := MustParseHex("#4477aa")

	light, dark := b.Pair(source, ModeLight, false)
	if light != source {
		t.Errorf("light variant = %s, want source %s", light.Hex(), source.Hex())
	}
	if dark == source {
		t.Error("dark variant equals source")
	}

	light, dark = b.Pair(source, ModeDark, false)
	if dark != source {
		t.Errorf("dark variant = %s, want source %s", dark.Hex(), source.Hex())
	}
	if light == source {
		t.Error("light variant equals source")
	}
}

func TestCounterpartFallsBackWhenUnreachable(t *testing.T) {
	// Mid grey backgrounds cap contrast well below 7:1.
	grey := MustParseHex("#777777")
	b := NewDualModeBuilder(grey, grey, 12, nil)

	got := b.Counterpart(MustParseHex("#4477aa"), ModeLight, false)
	if got != BestExtreme(grey) {
		t.Errorf("unreachable counterpart = %s, want %s", got.Hex(), BestExtreme(grey).Hex())
	}
}

func TestCounterpartForPaleAndNeutralKeys(t *testing.T) {
	sources := []string{"#f7f7f7", "#ffffbf", "#9ecae1", "#808080", "#762a83"}

	for _, level := range ValidLevels() {
		target := level.TargetContrast()
		b := NewDualModeBuilder(testLightBackground, testDarkBackground, target, nil)

		for _, hex := range sources {
			t.Run(level.String()+"/"+hex, func(t *testing.T) {
				source := MustParseHex(hex)
				got := b.Counterpart(source, ModeLight, true)

				if c := Contrast(got, testDarkBackground); c < target {
					t.Errorf("counterpart %s contrast %.2f below %.1f", got.Hex(), c, target)
				}
				if d := LabDistance(got, source); d < KeyPairDistance {
					t.Errorf("counterpart %s only %.1f from source", got.Hex(), d)
				}
			})
		}
	}
}

func TestReconcile(t *testing.T) {
	b := NewDualModeBuilder(testLightBackground, testDarkBackground, ContrastAALarge, nil)
	light := MustParseHex("#4477aa")

	if got := b.Reconcile(light, White, false); got != White {
		t.Errorf("valid dark variant replaced with %s", got.Hex())
	}

	got := b.Reconcile(light, light, false)
	if d := LabDistance(got, light); d < PairDistance {
		t.Errorf("reconciled %s only %.1f from light", got.Hex(), d)
	}
	if c := Contrast(got, testDarkBackground); c < ContrastAALarge {
		t.Errorf("reconciled %s contrast %.2f below target", got.Hex(), c)
	}

	got = b.Reconcile(light, MustParseHex("#0a0a0a"), true)
	if d := LabDistance(got, light); d < KeyPairDistance {
		t.Errorf("reconciled key %s only %.1f from light", got.Hex(), d)
	}
}

func TestLadderYellowBandOnlyForKeys(t *testing.T) {
	if steps := ladder(60, 1, 0.6, true, true); steps[0].name != "yellow-band" {
		t.Errorf("key yellow ladder starts with %q", steps[0].name)
	}
	if steps := ladder(60, 1, 0.6, true, false); steps[0].name != "shift" {
		t.Errorf("regular ladder starts with %q", steps[0].name)
	}
	if steps := ladder(200, 1, 0.6, true, true); steps[0].name != "shift" {
		t.Errorf("non-yellow key ladder starts with %q", steps[0].name)
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("Dark"); err != nil || m != ModeDark {
		t.Errorf("ParseMode(Dark) = %v, %v", m, err)
	}
	if m, err := ParseMode("light"); err != nil || m != ModeLight {
		t.Errorf("ParseMode(light) = %v, %v", m, err)
	}
	if _, err := ParseMode("dim"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ParseMode(dim) error = %v", err)
	}
	if ModeLight.Opposite() != ModeDark || ModeDark.Opposite() != ModeLight {
		t.Error("Opposite() is not an involution")
	}
}
