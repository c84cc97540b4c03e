package colour

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised strictness names.
var ErrUnknownLevel = errors.New("unknown strictness level")

// Level is the WCAG strictness target a palette is built against.
type Level int

const (
	// LevelAALarge requires 3:1 (AA, large text and graphics).
	LevelAALarge Level = iota
	// LevelAASmall requires 4.5:1 (AA, normal text).
	LevelAASmall
	// LevelAAALarge requires 4.5:1 (AAA, large text).
	LevelAAALarge
	// LevelAAASmall requires 7:1 (AAA, normal text).
	LevelAAASmall
)

// WCAG contrast thresholds. AA small and AAA large share 4.5:1.
const (
	ContrastAALarge  = 3.0
	ContrastAASmall  = 4.5
	ContrastAAALarge = 4.5
	ContrastAAASmall = 7.0
)

// String returns the canonical level name.
func (l Level) String() string {
	switch l {
	case LevelAALarge:
		return "AALarge"
	case LevelAASmall:
		return "AASmall"
	case LevelAAALarge:
		return "AAALarge"
	case LevelAAASmall:
		return "AAASmall"
	default:
		return "unknown"
	}
}

// TargetContrast returns the minimum contrast ratio for the level.
func (l Level) TargetContrast() float64 {
	switch l {
	case LevelAALarge:
		return ContrastAALarge
	case LevelAAALarge:
		return ContrastAAALarge
	case LevelAAASmall:
		return ContrastAAASmall
	default:
		return ContrastAASmall
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ValidLevels returns all strictness levels from least to most strict.
func ValidLevels() []Level {
	return []Level{LevelAALarge, LevelAASmall, LevelAAALarge, LevelAAASmall}
}

// ParseLevel accepts "AASmall", "aa-small", "AA_SMALL" and similar spellings.
func ParseLevel(s string) (Level, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	for _, l := range ValidLevels() {
		if strings.ToLower(l.String()) == key {
			return l, nil
		}
	}
	return LevelAASmall, fmt.Errorf("%w: %s (valid: AALarge, AASmall, AAALarge, AAASmall)", ErrUnknownLevel, s)
}

// Compliance holds the WCAG pass/fail flags for one foreground/background pair.
type Compliance struct {
	AALarge  bool `json:"aa_large"`
	AASmall  bool `json:"aa_small"`
	AAALarge bool `json:"aaa_large"`
	AAASmall bool `json:"aaa_small"`
}

// Classify maps a contrast ratio to WCAG pass/fail flags.
func Classify(ratio float64) Compliance {
	return Compliance{
		AALarge:  ratio >= ContrastAALarge,
		AASmall:  ratio >= ContrastAASmall,
		AAALarge: ratio >= ContrastAAALarge,
		AAASmall: ratio >= ContrastAAASmall,
	}
}

// Meets reports whether the flags satisfy the given level.
func (c Compliance) Meets(level Level) bool {
	switch level {
	case LevelAALarge:
		return c.AALarge
	case LevelAASmall:
		return c.AASmall
	case LevelAAALarge:
		return c.AAALarge
	case LevelAAASmall:
		return c.AAASmall
	default:
		return false
	}
}

// ContrastReport is the result of a contrast check between two colours.
type ContrastReport struct {
	Ratio      float64    `json:"ratio"`
	Compliance Compliance `json:"compliance"`
}

// CheckContrast computes the ratio and compliance flags of fg against bg.
func CheckContrast(fg, bg string) (ContrastReport, error) {
	ratio, err := HexContrastRatio(fg, bg)
	if err != nil {
		return ContrastReport{}, err
	}
	return ContrastReport{Ratio: ratio, Compliance: Classify(ratio)}, nil
}
