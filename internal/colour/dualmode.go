package colour

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// ErrUnknownMode is returned by ParseMode for anything but light or dark.
var ErrUnknownMode = errors.New("unknown mode")

// Mode selects the light or dark variant of a colour.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode parses "light" or "dark".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return ModeLight, fmt.Errorf("%w: %s (valid: light, dark)", ErrUnknownMode, s)
	}
}

// Minimum Lab separations.
const (
	// DistinctDistance separates colours within one palette.
	DistinctDistance = 40.0
	// PairDistance separates the light and dark variants of one colour.
	PairDistance = 50.0
	// KeyPairDistance separates the variants of a gradient key colour.
	KeyPairDistance = 60.0
)

const (
	pairAttempts    = 30
	keyPairAttempts = 100

	// Yellow hues stay recognisable in both modes only at extreme settings.
	yellowHueMin = 50.0
	yellowHueMax = 70.0

	rotationStep = 15.0

	scanLightnessMin  = 10.0
	scanLightnessMax  = 95.0
	scanLightnessStep = 5.0
	scanChroma        = 150.0
)

var scanHueOffsets = []float64{0, 30, -30, 60, -60, 90, -90, 120, -120, 150, -150, 180}

var (
	darkBand  = []float64{0.30, 0.24, 0.18, 0.12}
	lightBand = []float64{0.70, 0.76, 0.82, 0.88}
)

type hsl struct {
	h, s, l float64
}

type ladderStep struct {
	name       string
	candidates []hsl
}

type scored struct {
	rgb       RGB
	contrast  float64
	distance  float64
	compliant bool
	set       bool
}

// better prefers compliant candidates, then the larger distance, and among
// non-compliant ones the higher contrast.
func (s scored) better(than scored) bool {
	switch {
	case !than.set:
		return true
	case s.compliant != than.compliant:
		return s.compliant
	case s.compliant:
		return s.distance > than.distance
	default:
		return s.contrast > than.contrast
	}
}

// DualModeBuilder derives the opposite-mode counterpart of a colour so the two
// variants stay perceptually apart while each meets the contrast target on its
// own background.
type DualModeBuilder struct {
	lightBackground RGB
	darkBackground  RGB
	target          float64
	logger          hclog.Logger
}

// NewDualModeBuilder returns a builder for the given backgrounds and target
// contrast. A nil logger discards output.
func NewDualModeBuilder(lightBackground, darkBackground RGB, target float64, logger hclog.Logger) *DualModeBuilder {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &DualModeBuilder{
		lightBackground: lightBackground,
		darkBackground:  darkBackground,
		target:          target,
		logger:          logger,
	}
}

// Background returns the background for mode.
func (b *DualModeBuilder) Background(mode Mode) RGB {
	if mode == ModeDark {
		return b.darkBackground
	}
	return b.lightBackground
}

// Pair returns the light and dark variants of source, which is taken as-is
// for mode. key applies the stricter rules for gradient key colours.
func (b *DualModeBuilder) Pair(source RGB, mode Mode, key bool) (light, dark RGB) {
	counterpart := b.Counterpart(source, mode, key)
	if mode == ModeDark {
		return counterpart, source
	}
	return source, counterpart
}

// Counterpart derives the variant of source for the opposite of sourceMode.
//
// Candidates are tried in escalating order: a hue-preserving HSL shift, an
// extreme saturation/lightness variant, the extreme variant with the hue
// rotated by 15 degrees either way, and finally the complementary hue. Each
// candidate short of the contrast target is corrected with OptimiseContrast
// before the distance check. Key colours need 60 Lab units instead of 50 and
// yellow key colours try forced extremes first. When the ladder is exhausted
// within the attempt cap, a fixed LCH grid is scanned; if that fails too the
// best candidate seen is returned.
func (b *DualModeBuilder) Counterpart(source RGB, sourceMode Mode, key bool) RGB {
	targetMode := sourceMode.Opposite()
	bg := b.Background(targetMode)

	floor, attemptCap := PairDistance, pairAttempts
	if key {
		floor, attemptCap = KeyPairDistance, keyPairAttempts
	}

	sourceLab := RGBToLab(source)
	h, s, l := RGBToHSL(source)

	var best scored
	attempts := 0

	for _, step := range ladder(h, s, l, targetMode == ModeDark, key) {
		for _, c := range step.candidates {
			if attempts >= attemptCap {
				break
			}
			attempts++

			rgb := HSLToRGB(c.h, c.s, c.l)
			if Contrast(rgb, bg) < b.target {
				rgb = OptimiseContrast(rgb, bg, b.target)
			}

			result := b.score(rgb, sourceLab, bg)
			if result.compliant && result.distance >= floor {
				b.logger.Trace("counterpart found",
					"source", source.Hex(), "mode", targetMode, "step", step.name,
					"hex", rgb.Hex(), "distance", result.distance, "contrast", result.contrast)
				return rgb
			}
			if result.better(best) {
				best = result
			}
		}
	}

	if found, ok := b.scan(sourceLab, bg, floor, &best); ok {
		b.logger.Trace("counterpart found",
			"source", source.Hex(), "mode", targetMode, "step", "scan",
			"hex", found.rgb.Hex(), "distance", found.distance, "contrast", found.contrast)
		return found.rgb
	}

	b.logger.Debug("counterpart constraints unreachable, using best candidate",
		"source", source.Hex(), "mode", targetMode, "attempts", attempts,
		"hex", best.rgb.Hex(), "distance", best.distance, "contrast", best.contrast)
	return best.rgb
}

// Reconcile returns dark when it meets the target on the dark background and
// sits far enough from light. Otherwise dark is re-derived from light with
// Counterpart. light is never changed.
func (b *DualModeBuilder) Reconcile(light, dark RGB, key bool) RGB {
	floor := PairDistance
	if key {
		floor = KeyPairDistance
	}
	if Contrast(dark, b.darkBackground) >= b.target && LabDistance(light, dark) >= floor {
		return dark
	}
	return b.Counterpart(light, ModeLight, key)
}

func (b *DualModeBuilder) score(rgb RGB, sourceLab Lab, bg RGB) scored {
	result := scored{
		rgb:      rgb,
		contrast: Contrast(rgb, bg),
		distance: RGBToLab(rgb).Distance(sourceLab),
		set:      true,
	}
	result.compliant = result.contrast >= b.target
	return result
}

// scan walks an LCH grid at the highest in-gamut chroma, hues nearest the
// source first, then black or white, and returns the first candidate
// meeting both constraints.
// best is updated with every candidate tried.
func (b *DualModeBuilder) scan(sourceLab Lab, bg RGB, floor float64, best *scored) (scored, bool) {
	hue := labHue(sourceLab)
	var candidates []RGB
	for _, offset := range scanHueOffsets {
		for l := scanLightnessMin; l <= scanLightnessMax; l += scanLightnessStep {
			candidates = append(candidates, LCHToRGB(LCH{L: l, C: scanChroma, H: hue + offset}))
		}
	}
	candidates = append(candidates, BestExtreme(bg))

	for _, rgb := range candidates {
		result := b.score(rgb, sourceLab, bg)
		if result.compliant && result.distance >= floor {
			return result, true
		}
		if result.better(*best) {
			*best = result
		}
	}
	return scored{}, false
}

func labHue(lab Lab) float64 {
	return normaliseHue(math.Atan2(lab.B, lab.A) * 180 / math.Pi)
}

// ladder lists the escalation steps for deriving a counterpart.
func ladder(h, s, l float64, toDark, key bool) []ladderStep {
	var steps []ladderStep

	if key && h >= yellowHueMin && h <= yellowHueMax {
		steps = append(steps, ladderStep{name: "yellow-band", candidates: yellowCandidates(h, toDark)})
	}

	rotated := append(extremeCandidates(h+rotationStep, s, toDark), extremeCandidates(h-rotationStep, s, toDark)...)

	return append(steps,
		ladderStep{name: "shift", candidates: shiftCandidates(h, s, l, toDark)},
		ladderStep{name: "extreme", candidates: extremeCandidates(h, s, toDark)},
		ladderStep{name: "rotate", candidates: rotated},
		ladderStep{name: "complement", candidates: []hsl{complementCandidate(h, toDark)}},
	)
}

// shiftCandidates move toward dark mode by darkening and saturating, and
// toward light mode by lightening and desaturating.
func shiftCandidates(h, s, l float64, toDark bool) []hsl {
	deltas := []float64{0.3, 0.35, 0.4}
	out := make([]hsl, 0, len(deltas))
	for _, ds := range deltas {
		if toDark {
			out = append(out, hsl{h: h, s: s + ds, l: l - 0.4})
		} else {
			out = append(out, hsl{h: h, s: s - ds, l: l + 0.4})
		}
	}
	return out
}

func extremeCandidates(h, s float64, toDark bool) []hsl {
	band, sat := lightBand, min(s, 0.3)
	if toDark {
		band, sat = darkBand, 1.0
	}
	out := make([]hsl, 0, len(band))
	for _, l := range band {
		out = append(out, hsl{h: h, s: sat, l: l})
	}
	return out
}

func yellowCandidates(h float64, toDark bool) []hsl {
	if toDark {
		return []hsl{{h: h, s: 1.0, l: 0.08}, {h: h, s: 1.0, l: 0.12}, {h: h, s: 1.0, l: 0.16}}
	}
	return []hsl{{h: h, s: 0.1, l: 0.95}, {h: h, s: 0.1, l: 0.92}}
}

func complementCandidate(h float64, toDark bool) hsl {
	if toDark {
		return hsl{h: h + 180, s: 0.8, l: 0.3}
	}
	return hsl{h: h + 180, s: 0.4, l: 0.8}
}
