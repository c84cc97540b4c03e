package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/duotone/internal/colour"
	"github.com/jmylchreest/duotone/internal/config"
	"github.com/jmylchreest/duotone/internal/palette"
	"github.com/jmylchreest/duotone/internal/seed"
)

type generateOptions struct {
	paletteType string
	name        string
	format      string
	preview     string
}

func newGenerateCmd(g *globals) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dual-mode palette",
		Long: `Generate a 12-colour palette with light and dark variants.

Palette types:
  categorical  - 12 perceptually distinct colours for unordered series
  sequential   - a gradient between two key colours
  diverging    - two gradients meeting at a neutral midpoint

Every variant is measured against its background and the WCAG level it passes
is reported. Categorical colours are adjusted until they meet --level.

Examples:
  # Categorical palette with the default backgrounds
  duotone generate

  # Sequential palette for a dark dashboard, as JSON
  duotone generate --type sequential --dark-bg "#0d1117" --format json

  # Reproducible run
  duotone generate --seed 42

  # Same palette every time for a named chart
  duotone generate --name "Revenue by region" --seed-mode name`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, g, opts)
		},
	}

	addPaletteFlags(cmd)
	cmd.Flags().StringVar(&opts.paletteType, "type", string(palette.TypeCategorical), "palette type (categorical, sequential, diverging)")
	cmd.Flags().StringVar(&opts.name, "name", "", "palette name (also the seed key for --seed-mode name)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "output format (table, json)")
	cmd.Flags().StringVar(&opts.preview, "preview", previewAuto, "colour swatches in table output (auto, always, never)")

	return cmd
}

// addPaletteFlags registers the flags that override configuration keys.
func addPaletteFlags(cmd *cobra.Command) {
	cmd.Flags().String("light-bg", palette.DefaultLightBackground, "light-mode background")
	cmd.Flags().String("dark-bg", palette.DefaultDarkBackground, "dark-mode background")
	cmd.Flags().String("level", palette.DefaultLevel.String(), "WCAG level (AALarge, AASmall, AAALarge, AAASmall)")
	cmd.Flags().String("prefix", palette.DefaultTokenPrefix, "design token prefix")
	cmd.Flags().String("strategy", string(palette.StrategyClustered), "categorical strategy (clustered, curated)")
	cmd.Flags().String("seed-mode", string(seed.ModeRandom), "seed mode (random, manual, name)")
	cmd.Flags().Int64("seed", 0, "random seed (implies --seed-mode manual)")
}

// loadConfig validates the configuration and resolves the random seed.
// key is hashed when the seed mode is name.
func (g *globals) loadConfig(key string) (config.Config, colour.Rand, error) {
	cfg, err := config.Load(g.viper)
	if err != nil {
		return config.Config{}, nil, err
	}
	value, err := seed.Calculate(key, cfg.Seed)
	if err != nil {
		return config.Config{}, nil, err
	}
	g.logger.Debug("resolved seed", "mode", cfg.Seed.Mode, "seed", value)
	return cfg, colour.NewRand(value), nil
}

func runGenerate(cmd *cobra.Command, g *globals, opts *generateOptions) error {
	t, err := palette.ParseType(opts.paletteType)
	if err != nil {
		return err
	}
	if err := validateFormat(opts.format); err != nil {
		return err
	}
	preview, err := previewEnabled(opts.preview, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	key := opts.name
	if key == "" {
		key = string(t)
	}
	cfg, rng, err := g.loadConfig(key)
	if err != nil {
		return err
	}

	popts := cfg.PaletteOptions()
	popts.Name = opts.name
	p, err := palette.NewAssembler(rng, g.logger.Named("assembler")).Generate(t, popts)
	if err != nil {
		return err
	}

	return renderPalette(cmd.OutOrStdout(), p, opts.format, preview)
}
