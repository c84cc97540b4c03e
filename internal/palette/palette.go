// Package palette assembles categorical, sequential and diverging dual-mode
// palettes and applies edits to them.
package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/duotone/internal/colour"
)

// Size is the number of colours in every palette.
const Size = 12

var (
	// ErrIndexOutOfBounds is returned when an edit names a colour that does not exist.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrNotEditable is returned when editing a derived gradient position.
	ErrNotEditable = errors.New("color is not editable")
	// ErrNotCategorical is returned when reordering a gradient palette.
	ErrNotCategorical = errors.New("only categorical palettes can be reordered")
	// ErrUnknownType is returned for unrecognised palette types.
	ErrUnknownType = errors.New("unknown palette type")
	// ErrEmptyName is returned when renaming a colour to a blank name.
	ErrEmptyName = errors.New("color name cannot be empty")
)

// Type is the palette layout.
type Type string

const (
	TypeCategorical Type = "categorical"
	TypeSequential  Type = "sequential"
	TypeDiverging   Type = "diverging"
)

// ValidTypes returns all palette types.
func ValidTypes() []Type {
	return []Type{TypeCategorical, TypeSequential, TypeDiverging}
}

// ParseType converts a string to a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range ValidTypes() {
		if t == valid {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %s (valid: categorical, sequential, diverging)", ErrUnknownType, s)
}

// IsGradient reports whether positions are derived from key colours.
func (t Type) IsGradient() bool {
	return t == TypeSequential || t == TypeDiverging
}

// KeyIndices returns the editable key positions for the palette type.
func KeyIndices(t Type) []int {
	switch t {
	case TypeSequential:
		return []int{0, Size - 1}
	case TypeDiverging:
		return []int{0, Size / 2, Size - 1}
	default:
		return nil
	}
}

// Variant is one mode's rendition of a colour.
type Variant struct {
	Hex        string            `json:"hex"`
	Contrast   float64           `json:"contrast"`
	Compliance colour.Compliance `json:"compliance"`
}

// RGB parses the variant's hex value.
func (v Variant) RGB() (colour.RGB, error) {
	return colour.ParseHex(v.Hex)
}

// Color is a palette entry with coordinated light and dark variants.
type Color struct {
	Name     string  `json:"name"`
	Token    string  `json:"token"`
	Editable bool    `json:"editable"`
	Light    Variant `json:"light"`
	Dark     Variant `json:"dark"`
}

// Variant returns the variant for mode.
func (c Color) Variant(mode colour.Mode) Variant {
	if mode == colour.ModeDark {
		return c.Dark
	}
	return c.Light
}

func (c *Color) setVariant(mode colour.Mode, v Variant) {
	if mode == colour.ModeDark {
		c.Dark = v
		return
	}
	c.Light = v
}

// Palette is an ordered set of Size dual-mode colours.
type Palette struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Type            Type         `json:"type"`
	Colors          []Color      `json:"colors"`
	LightBackground string       `json:"light_background"`
	DarkBackground  string       `json:"dark_background"`
	Level           colour.Level `json:"level"`
	TokenPrefix     string       `json:"token_prefix"`
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (Color, error) {
	if err := p.checkIndex(index); err != nil {
		return Color{}, err
	}
	return p.Colors[index], nil
}

// Background returns the background hex for mode.
func (p *Palette) Background(mode colour.Mode) string {
	if mode == colour.ModeDark {
		return p.DarkBackground
	}
	return p.LightBackground
}

// Clone returns a deep copy of the palette.
func (p *Palette) Clone() *Palette {
	c := *p
	c.Colors = append([]Color(nil), p.Colors...)
	return &c
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

func (p *Palette) checkIndex(index int) error {
	if index < 0 || index >= len(p.Colors) {
		return fmt.Errorf("%w: %d (palette has %d colors)", ErrIndexOutOfBounds, index, len(p.Colors))
	}
	return nil
}
