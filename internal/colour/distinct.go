package colour

import (
	"fmt"
	"math"
)

const (
	// GoldenAngle spreads successive candidate hues around the wheel.
	GoldenAngle = 137.508

	// Candidates generated per requested colour.
	candidatesPerColour = 20

	candidateMinSaturation = 0.75
	candidateMaxSaturation = 0.90
	candidateMinLightness  = 0.45
	candidateMaxLightness  = 0.60

	// Weights for the max-min ordering score.
	orderLastWeight   = 0.7
	orderSpreadWeight = 0.3
)

// DistinctSetGenerator produces mutually separated base colours by clustering
// a golden-angle candidate pool in Lab space.
type DistinctSetGenerator struct {
	rng Rand
}

// NewDistinctSetGenerator returns a generator drawing from rng.
func NewDistinctSetGenerator(rng Rand) *DistinctSetGenerator {
	return &DistinctSetGenerator{rng: rng}
}

// Generate returns count colours ordered so that neighbours differ strongly.
func (g *DistinctSetGenerator) Generate(count int) ([]RGB, error) {
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}

	pool := g.CandidatePool(count * candidatesPerColour)

	centres, err := NewKMeans(g.rng).Cluster(pool, count)
	if err != nil {
		return nil, fmt.Errorf("failed to cluster candidates: %w", err)
	}

	colours := make([]RGB, len(centres))
	for i, c := range centres {
		colours[i] = LabToRGB(c)
	}

	return OrderMaxMin(colours), nil
}

// CandidatePool returns n Lab points with hues stepped by the golden angle and
// random saturation/lightness inside the vivid mid-tone band.
func (g *DistinctSetGenerator) CandidatePool(n int) []Lab {
	pool := make([]Lab, n)
	for i := range n {
		hue := math.Mod(float64(i)*GoldenAngle, 360)
		sat := between(g.rng, candidateMinSaturation, candidateMaxSaturation)
		light := between(g.rng, candidateMinLightness, candidateMaxLightness)
		pool[i] = RGBToLab(HSLToRGB(hue, sat, light))
	}
	return pool
}

// OrderMaxMin reorders colours greedily: starting from the first, each next
// colour maximises 0.7 x distance to the last placed colour plus 0.3 x its
// minimum distance to the other unplaced colours.
func OrderMaxMin(colours []RGB) []RGB {
	if len(colours) < 3 {
		return append([]RGB(nil), colours...)
	}

	labs := make([]Lab, len(colours))
	for i, c := range colours {
		labs[i] = RGBToLab(c)
	}

	ordered := make([]RGB, 0, len(colours))
	ordered = append(ordered, colours[0])
	last := 0

	unplaced := make([]int, 0, len(colours)-1)
	for i := 1; i < len(colours); i++ {
		unplaced = append(unplaced, i)
	}

	for len(unplaced) > 0 {
		bestPos := 0
		bestScore := math.Inf(-1)

		for pos, candidate := range unplaced {
			spread := 0.0
			if len(unplaced) > 1 {
				spread = math.MaxFloat64
				for _, other := range unplaced {
					if other != candidate {
						spread = math.Min(spread, labs[candidate].Distance(labs[other]))
					}
				}
			}

			score := orderLastWeight*labs[candidate].Distance(labs[last]) + orderSpreadWeight*spread
			if score > bestScore {
				bestScore = score
				bestPos = pos
			}
		}

		last = unplaced[bestPos]
		ordered = append(ordered, colours[last])
		unplaced = append(unplaced[:bestPos], unplaced[bestPos+1:]...)
	}

	return ordered
}

// MinPairwiseDistance returns the smallest Lab distance between any two colours.
func MinPairwiseDistance(colours []RGB) float64 {
	minDist := math.MaxFloat64
	for i := range colours {
		for j := i + 1; j < len(colours); j++ {
			minDist = math.Min(minDist, LabDistance(colours[i], colours[j]))
		}
	}
	return minDist
}
