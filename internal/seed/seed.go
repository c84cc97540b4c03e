// Package seed provides seed generation for the palette random source so runs
// can be reproduced on demand.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"
)

// Mode determines how the random seed for palette generation is chosen.
type Mode string

const (
	// ModeRandom uses a non-deterministic seed (default, varies each run).
	ModeRandom Mode = "random"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeName hashes a text key such as a palette name (deterministic by name).
	ModeName Mode = "name"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the seed value based on the seed mode.
// key is hashed in ModeName and ignored otherwise.
func Calculate(key string, config Config) (int64, error) {
	switch config.Mode {
	case ModeRandom, "":
		return GenerateRandomSeed(), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeName:
		return CalculateNameSeed(key)
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// CalculateNameSeed generates a deterministic seed from a text key.
// Keys are compared case-insensitively with surrounding space ignored.
func CalculateNameSeed(key string) (int64, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return 0, fmt.Errorf("seed key cannot be empty")
	}

	hash := sha256.Sum256([]byte(key))
	seed := int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
	return seed, nil
}

// GenerateRandomSeed generates a non-deterministic random seed.
func GenerateRandomSeed() int64 {
	// #nosec G404 -- Random seed generation is intentionally non-deterministic
	return time.Now().UnixNano() + int64(rand.Intn(1000000))
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeRandom, ModeManual, ModeName}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(s))
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: random, manual, name)", s)
}
