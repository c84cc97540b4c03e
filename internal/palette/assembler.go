package palette

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/duotone/internal/colour"
)

// Default palette settings.
const (
	DefaultLightBackground = "#ffffff"
	DefaultDarkBackground  = "#121212"
	DefaultTokenPrefix     = "color"
	DefaultLevel           = colour.LevelAASmall
)

// Strategy selects how categorical base colours are chosen.
type Strategy string

const (
	// StrategyClustered clusters a golden-angle candidate pool in Lab space.
	StrategyClustered Strategy = "clustered"
	// StrategyCurated draws from a fixed set of accessible chart colours.
	StrategyCurated Strategy = "curated"
)

// ParseStrategy converts a string to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyClustered, "":
		return StrategyClustered, nil
	case StrategyCurated:
		return StrategyCurated, nil
	default:
		return "", fmt.Errorf("invalid strategy: %s (valid: clustered, curated)", s)
	}
}

// Options configures palette generation.
type Options struct {
	// Name overrides the default palette name.
	Name string
	// LightBackground and DarkBackground default to DefaultLightBackground
	// and DefaultDarkBackground when empty.
	LightBackground string
	DarkBackground  string
	// Level is used as given; callers fill DefaultLevel themselves.
	Level       colour.Level
	TokenPrefix string
	Strategy    Strategy
}

// DefaultOptions returns options with every default applied.
func DefaultOptions() Options {
	return Options{
		LightBackground: DefaultLightBackground,
		DarkBackground:  DefaultDarkBackground,
		Level:           DefaultLevel,
		TokenPrefix:     DefaultTokenPrefix,
		Strategy:        StrategyClustered,
	}
}

// settings are the resolved per-palette parameters shared by generation and edits.
type settings struct {
	light  colour.RGB
	dark   colour.RGB
	level  colour.Level
	prefix string
}

func newSettings(lightHex, darkHex string, level colour.Level, prefix string) (settings, error) {
	if lightHex == "" {
		lightHex = DefaultLightBackground
	}
	if darkHex == "" {
		darkHex = DefaultDarkBackground
	}
	light, err := colour.ParseHex(lightHex)
	if err != nil {
		return settings{}, fmt.Errorf("light background: %w", err)
	}
	dark, err := colour.ParseHex(darkHex)
	if err != nil {
		return settings{}, fmt.Errorf("dark background: %w", err)
	}
	return settings{light: light, dark: dark, level: level, prefix: prefix}, nil
}

func settingsFor(p *Palette) (settings, error) {
	return newSettings(p.LightBackground, p.DarkBackground, p.Level, p.TokenPrefix)
}

func (s settings) target() float64 {
	return s.level.TargetContrast()
}

func (s settings) background(mode colour.Mode) colour.RGB {
	if mode == colour.ModeDark {
		return s.dark
	}
	return s.light
}

// variant measures c against the mode's background.
func (s settings) variant(c colour.RGB, mode colour.Mode) Variant {
	ratio := colour.Contrast(c, s.background(mode))
	return Variant{
		Hex:        c.Hex(),
		Contrast:   ratio,
		Compliance: colour.Classify(ratio),
	}
}

func (s settings) color(name string, editable bool, light, dark colour.RGB) Color {
	return Color{
		Name:     name,
		Token:    Token(s.prefix, name),
		Editable: editable,
		Light:    s.variant(light, colour.ModeLight),
		Dark:     s.variant(dark, colour.ModeDark),
	}
}

func (s settings) builder(logger hclog.Logger) *colour.DualModeBuilder {
	return colour.NewDualModeBuilder(s.light, s.dark, s.target(), logger)
}

// Assembler builds palettes from a random source.
// It is not safe for concurrent use; the session processor owns one.
type Assembler struct {
	rng    colour.Rand
	logger hclog.Logger
}

// NewAssembler creates an assembler drawing from rng.
func NewAssembler(rng colour.Rand, logger hclog.Logger) *Assembler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Assembler{rng: rng, logger: logger}
}

// Generate creates a new palette of type t with a fresh identifier.
func (a *Assembler) Generate(t Type, opts Options) (*Palette, error) {
	return a.assemble(uuid.NewString(), opts.Name, t, opts)
}

// Regenerate rebuilds existing as type t, keeping its identifier and name.
// An empty TokenPrefix in opts keeps the existing prefix.
func (a *Assembler) Regenerate(existing *Palette, t Type, opts Options) (*Palette, error) {
	if opts.TokenPrefix == "" {
		opts.TokenPrefix = existing.TokenPrefix
	}
	name := existing.Name
	if opts.Name != "" {
		name = opts.Name
	}
	return a.assemble(existing.ID, name, t, opts)
}

func (a *Assembler) assemble(id, name string, t Type, opts Options) (*Palette, error) {
	t, err := ParseType(string(t))
	if err != nil {
		return nil, err
	}
	s, err := newSettings(opts.LightBackground, opts.DarkBackground, opts.Level, opts.TokenPrefix)
	if err != nil {
		return nil, err
	}

	var colors []Color
	switch t {
	case TypeCategorical:
		colors, err = a.categorical(s, opts.Strategy)
	case TypeSequential:
		colors, err = a.sequential(s)
	case TypeDiverging:
		colors, err = a.diverging(s)
	}
	if err != nil {
		return nil, fmt.Errorf("generate %s palette: %w", t, err)
	}

	if name == "" {
		name = defaultName(t)
	}

	a.logger.Debug("assembled palette", "id", id, "type", t, "level", s.level)

	return &Palette{
		ID:              id,
		Name:            name,
		Type:            t,
		Colors:          colors,
		LightBackground: s.light.Hex(),
		DarkBackground:  s.dark.Hex(),
		Level:           s.level,
		TokenPrefix:     opts.TokenPrefix,
	}, nil
}

func defaultName(t Type) string {
	switch t {
	case TypeSequential:
		return "Sequential palette"
	case TypeDiverging:
		return "Diverging palette"
	default:
		return "Categorical palette"
	}
}

// categorical picks Size distinct base colours and optimises each one against
// both backgrounds. A dark result too close to its light partner is
// re-derived from the light variant.
func (a *Assembler) categorical(s settings, strategy Strategy) ([]Color, error) {
	var bases []colour.RGB
	switch strategy {
	case StrategyCurated:
		bases = a.curatedBases()
	default:
		var err error
		bases, err = colour.NewDistinctSetGenerator(a.rng).Generate(Size)
		if err != nil {
			return nil, err
		}
	}

	a.logger.Debug("selected base colours", "strategy", strategy,
		"count", len(bases), "min_distance", colour.MinPairwiseDistance(bases))

	target := s.target()
	builder := s.builder(a.logger.Named("dualmode"))
	colors := make([]Color, len(bases))
	for i, base := range bases {
		light := colour.OptimiseContrast(base, s.light, target)
		dark := builder.Reconcile(light, colour.OptimiseContrast(base, s.dark, target), false)
		colors[i] = s.color(fmt.Sprintf("Color %d", i+1), false, light, dark)
	}
	return colors, nil
}

// gradientSkeleton returns Size named colours with key positions marked editable.
func gradientSkeleton(t Type, s settings) []Color {
	colors := make([]Color, Size)
	for i := range colors {
		name := fmt.Sprintf("Step %d", i+1)
		colors[i] = Color{Name: name, Token: Token(s.prefix, name)}
	}
	for _, k := range KeyIndices(t) {
		colors[k].Editable = true
	}
	return colors
}

func (a *Assembler) sequential(s settings) ([]Color, error) {
	keys := sequentialKeys[a.rng.Intn(len(sequentialKeys))]
	start := colour.MustParseHex(keys[0])
	end := separate(start, colour.MustParseHex(keys[1]))

	colors := gradientSkeleton(TypeSequential, s)
	builder := s.builder(a.logger.Named("dualmode"))
	setKey(colors, 0, start, colour.ShiftHSL(start, 0.10, -0.45), s, builder)
	setKey(colors, Size-1, end, colour.ShiftHSL(end, -0.10, 0.45), s, builder)

	if err := fillGradient(colors, TypeSequential, s); err != nil {
		return nil, err
	}
	return colors, nil
}

func (a *Assembler) diverging(s settings) ([]Color, error) {
	keys := divergingKeys[a.rng.Intn(len(divergingKeys))]
	mid := colour.MustParseHex(keys[1])
	start := separate(mid, colour.MustParseHex(keys[0]))
	end := separate(mid, colour.MustParseHex(keys[2]))

	colors := gradientSkeleton(TypeDiverging, s)
	builder := s.builder(a.logger.Named("dualmode"))
	setKey(colors, 0, start, colour.ShiftHSL(start, -0.10, 0.20), s, builder)
	setKey(colors, Size/2, mid, darkMidpoint(mid), s, builder)
	setKey(colors, Size-1, end, colour.ShiftHSL(end, -0.10, 0.20), s, builder)

	if err := fillGradient(colors, TypeDiverging, s); err != nil {
		return nil, err
	}
	return colors, nil
}

// setKey stores a key colour. The dark variant starts from the fixed shift and
// falls back to a derived counterpart when it misses the target or sits too
// close to the light key.
func setKey(colors []Color, index int, light, dark colour.RGB, s settings, builder *colour.DualModeBuilder) {
	colors[index].Light = s.variant(light, colour.ModeLight)
	colors[index].Dark = s.variant(builder.Reconcile(light, dark, true), colour.ModeDark)
}

// darkMidpoint inverts the neutral midpoint's lightness for dark backgrounds.
func darkMidpoint(mid colour.RGB) colour.RGB {
	h, sat, l := colour.RGBToHSL(mid)
	l = min(max(1-l, 0.15), 0.85)
	return colour.HSLToRGB(h, sat*0.5, l)
}

const (
	separationRotation  = 45.0
	separationRotations = 7
)

// separate rotates c's hue until it is DistinctDistance away from anchor.
func separate(anchor, c colour.RGB) colour.RGB {
	for i := 0; i < separationRotations && colour.LabDistance(anchor, c) < colour.DistinctDistance; i++ {
		c = colour.RotateHue(c, separationRotation)
	}
	return c
}

// fillGradient interpolates every non-key position from the key colours in
// both modes, then refreshes contrast figures for the whole palette.
func fillGradient(colors []Color, t Type, s settings) error {
	keys := KeyIndices(t)
	for i := 0; i+1 < len(keys); i++ {
		for _, mode := range []colour.Mode{colour.ModeLight, colour.ModeDark} {
			if err := fillSegment(colors, keys[i], keys[i+1], mode, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func fillSegment(colors []Color, from, to int, mode colour.Mode, s settings) error {
	start, err := colors[from].Variant(mode).RGB()
	if err != nil {
		return fmt.Errorf("%s key %d: %w", mode, from, err)
	}
	end, err := colors[to].Variant(mode).RGB()
	if err != nil {
		return fmt.Errorf("%s key %d: %w", mode, to, err)
	}

	steps := colour.InterpolateLCH(start, end, to-from+1)
	for i := from; i <= to; i++ {
		colors[i].setVariant(mode, s.variant(steps[i-from], mode))
	}
	return nil
}
