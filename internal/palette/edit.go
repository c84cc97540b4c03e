package palette

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/duotone/internal/colour"
)

// EditHex sets the colour at index from a hex value authored in mode and
// derives its counterpart for the other mode. Gradient palettes only accept
// edits at key positions and are re-interpolated afterwards.
// p is never modified; the edited copy is returned.
func (a *Assembler) EditHex(p *Palette, index int, hex string, mode colour.Mode) (*Palette, error) {
	current, err := p.Get(index)
	if err != nil {
		return nil, err
	}
	source, err := colour.ParseHex(hex)
	if err != nil {
		return nil, err
	}
	gradient := p.Type.IsGradient()
	if gradient && !current.Editable {
		return nil, fmt.Errorf("%w: %s is derived from the key colors", ErrNotEditable, current.Name)
	}
	s, err := settingsFor(p)
	if err != nil {
		return nil, err
	}

	light, dark := s.builder(a.logger.Named("dualmode")).Pair(source, mode, gradient)

	next := p.Clone()
	c := &next.Colors[index]
	c.Light = s.variant(light, colour.ModeLight)
	c.Dark = s.variant(dark, colour.ModeDark)

	if gradient {
		if err := fillGradient(next.Colors, next.Type, s); err != nil {
			return nil, err
		}
	}

	a.logger.Debug("edited color", "palette", p.ID, "index", index, "mode", mode,
		"light", c.Light.Hex, "dark", c.Dark.Hex)
	return next, nil
}

// Rename sets the name of the colour at index and re-derives its token.
func Rename(p *Palette, index int, name string) (*Palette, error) {
	if err := p.checkIndex(index); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	next := p.Clone()
	next.Colors[index].Name = name
	next.Colors[index].Token = Token(next.TokenPrefix, name)
	return next, nil
}

// Reorder moves the colour at from to position to, shifting the colours
// between them. Only categorical palettes can be reordered.
func Reorder(p *Palette, from, to int) (*Palette, error) {
	if p.Type != TypeCategorical {
		return nil, fmt.Errorf("%w: palette is %s", ErrNotCategorical, p.Type)
	}
	if err := p.checkIndex(from); err != nil {
		return nil, err
	}
	if err := p.checkIndex(to); err != nil {
		return nil, err
	}

	next := p.Clone()
	moved := next.Colors[from]
	next.Colors = append(next.Colors[:from], next.Colors[from+1:]...)
	next.Colors = append(next.Colors[:to], append([]Color{moved}, next.Colors[to:]...)...)
	return next, nil
}
