package palette

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/duotone/internal/colour"
)

func newTestAssembler(seed int64) *Assembler {
	return NewAssembler(colour.NewRand(seed), nil)
}

func generate(t *testing.T, typ Type) *Palette {
	t.Helper()
	p, err := newTestAssembler(42).Generate(typ, DefaultOptions())
	require.NoError(t, err)
	return p
}

func lightRGB(t *testing.T, c Color) colour.RGB {
	t.Helper()
	rgb, err := c.Light.RGB()
	require.NoError(t, err)
	return rgb
}

func TestGenerateAllTypes(t *testing.T) {
	for _, typ := range ValidTypes() {
		t.Run(string(typ), func(t *testing.T) {
			p := generate(t, typ)

			require.Len(t, p.Colors, Size)
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, typ, p.Type)
			assert.Equal(t, "#ffffff", p.LightBackground)
			assert.Equal(t, "#121212", p.DarkBackground)
			assert.Equal(t, colour.LevelAASmall, p.Level)

			for i, c := range p.Colors {
				_, err := colour.ParseHex(c.Light.Hex)
				require.NoError(t, err, "color %d light", i)
				_, err = colour.ParseHex(c.Dark.Hex)
				require.NoError(t, err, "color %d dark", i)
				assert.NotEmpty(t, c.Name)
				assert.Equal(t, Token(p.TokenPrefix, c.Name), c.Token)
			}
		})
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	a := newTestAssembler(1)

	_, err := a.Generate("rainbow", DefaultOptions())
	require.ErrorIs(t, err, ErrUnknownType)

	opts := DefaultOptions()
	opts.DarkBackground = "#12"
	_, err = a.Generate(TypeCategorical, opts)
	require.ErrorIs(t, err, colour.ErrInvalidColorFormat)
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	for _, typ := range ValidTypes() {
		a, err := newTestAssembler(7).Generate(typ, DefaultOptions())
		require.NoError(t, err)
		b, err := newTestAssembler(7).Generate(typ, DefaultOptions())
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
		if diff := cmp.Diff(a, b, cmpopts.IgnoreFields(Palette{}, "ID")); diff != "" {
			t.Errorf("%s palettes differ (-a +b):\n%s", typ, diff)
		}
	}
}

func TestCategoricalMeetsTarget(t *testing.T) {
	for _, level := range colour.ValidLevels() {
		t.Run(level.String(), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Level = level
			p, err := newTestAssembler(3).Generate(TypeCategorical, opts)
			require.NoError(t, err)

			for i, c := range p.Colors {
				assert.True(t, c.Light.Compliance.Meets(level), "color %d light %s at %.2f", i, c.Light.Hex, c.Light.Contrast)
				assert.True(t, c.Dark.Compliance.Meets(level), "color %d dark %s at %.2f", i, c.Dark.Hex, c.Dark.Contrast)
				assert.False(t, c.Editable)
				assert.Equal(t, Token("color", c.Name), c.Token)
			}
			assert.Equal(t, "Color 1", p.Colors[0].Name)
		})
	}
}

func TestCategoricalPairSeparation(t *testing.T) {
	for _, level := range colour.ValidLevels() {
		t.Run(level.String(), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Level = level
			for seed := int64(0); seed < 10; seed++ {
				p, err := newTestAssembler(seed).Generate(TypeCategorical, opts)
				require.NoError(t, err)

				for i, c := range p.Colors {
					dark, err := c.Dark.RGB()
					require.NoError(t, err)
					assert.GreaterOrEqual(t, colour.LabDistance(lightRGB(t, c), dark), colour.PairDistance,
						"seed %d color %d: %s / %s", seed, i, c.Light.Hex, c.Dark.Hex)
					assert.True(t, c.Light.Compliance.Meets(level), "seed %d color %d light %s", seed, i, c.Light.Hex)
					assert.True(t, c.Dark.Compliance.Meets(level), "seed %d color %d dark %s", seed, i, c.Dark.Hex)
				}
			}
		})
	}
}

func TestGradientKeyPairs(t *testing.T) {
	for _, typ := range []Type{TypeSequential, TypeDiverging} {
		for _, level := range colour.ValidLevels() {
			t.Run(string(typ)+"/"+level.String(), func(t *testing.T) {
				opts := DefaultOptions()
				opts.Level = level
				for seed := int64(0); seed < 10; seed++ {
					p, err := newTestAssembler(seed).Generate(typ, opts)
					require.NoError(t, err)

					for _, k := range KeyIndices(typ) {
						c := p.Colors[k]
						dark, err := c.Dark.RGB()
						require.NoError(t, err)
						assert.GreaterOrEqual(t, colour.LabDistance(lightRGB(t, c), dark), colour.KeyPairDistance,
							"seed %d key %d: %s / %s", seed, k, c.Light.Hex, c.Dark.Hex)
						assert.True(t, c.Dark.Compliance.Meets(level),
							"seed %d key %d dark %s at %.2f", seed, k, c.Dark.Hex, c.Dark.Contrast)
					}
				}
			})
		}
	}
}

func TestCuratedStrategy(t *testing.T) {
	opts := DefaultOptions()
	opts.Strategy = StrategyCurated
	p, err := newTestAssembler(11).Generate(TypeCategorical, opts)
	require.NoError(t, err)
	require.Len(t, p.Colors, Size)

	bases := newTestAssembler(11).curatedBases()
	require.Len(t, bases, Size)
	assert.Greater(t, colour.MinPairwiseDistance(bases), 15.0)
}

func TestSequentialKeys(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		p, err := newTestAssembler(seed).Generate(TypeSequential, DefaultOptions())
		require.NoError(t, err)

		first, last := lightRGB(t, p.Colors[0]), lightRGB(t, p.Colors[Size-1])
		assert.GreaterOrEqual(t, colour.LabDistance(first, last), colour.DistinctDistance)

		for i, c := range p.Colors {
			assert.Equal(t, i == 0 || i == Size-1, c.Editable, "step %d", i)
		}
	}
}

func TestDivergingKeys(t *testing.T) {
	p := generate(t, TypeDiverging)

	for i, c := range p.Colors {
		assert.Equal(t, i == 0 || i == 6 || i == Size-1, c.Editable, "step %d", i)
	}
	mid := lightRGB(t, p.Colors[6])
	assert.GreaterOrEqual(t, colour.LabDistance(mid, lightRGB(t, p.Colors[0])), colour.DistinctDistance)
	assert.GreaterOrEqual(t, colour.LabDistance(mid, lightRGB(t, p.Colors[Size-1])), colour.DistinctDistance)
}

func TestRegenerateKeepsIdentity(t *testing.T) {
	a := newTestAssembler(5)
	opts := DefaultOptions()
	opts.Name = "Revenue"
	p, err := a.Generate(TypeCategorical, opts)
	require.NoError(t, err)

	next, err := a.Regenerate(p, TypeDiverging, Options{Level: colour.LevelAALarge})
	require.NoError(t, err)

	assert.Equal(t, p.ID, next.ID)
	assert.Equal(t, "Revenue", next.Name)
	assert.Equal(t, TypeDiverging, next.Type)
	assert.Equal(t, colour.LevelAALarge, next.Level)
	assert.Equal(t, p.TokenPrefix, next.TokenPrefix)
	assert.Equal(t, TypeCategorical, p.Type, "original palette must not change")
}

func TestGetAndKeyIndices(t *testing.T) {
	p := generate(t, TypeCategorical)

	c, err := p.Get(0)
	require.NoError(t, err)
	assert.Equal(t, p.Colors[0], c)

	_, err = p.Get(Size)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)

	assert.Nil(t, KeyIndices(TypeCategorical))
	assert.Equal(t, []int{0, 11}, KeyIndices(TypeSequential))
	assert.Equal(t, []int{0, 6, 11}, KeyIndices(TypeDiverging))
}

func TestParseTypeAndStrategy(t *testing.T) {
	typ, err := ParseType(" Sequential ")
	require.NoError(t, err)
	assert.Equal(t, TypeSequential, typ)

	_, err = ParseType("qualitative")
	assert.True(t, errors.Is(err, ErrUnknownType))

	s, err := ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategyClustered, s)

	s, err = ParseStrategy("CURATED")
	require.NoError(t, err)
	assert.Equal(t, StrategyCurated, s)

	_, err = ParseStrategy("random")
	assert.Error(t, err)
}

func TestToJSON(t *testing.T) {
	p := generate(t, TypeSequential)
	data, err := p.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type": "sequential"`)
	assert.Contains(t, string(data), `"level": "AASmall"`)
	assert.Contains(t, string(data), `"token": "color-step-1"`)
}
