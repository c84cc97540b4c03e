package palette

import (
	"math"

	"github.com/jmylchreest/duotone/internal/colour"
)

// curatedSeeds are colour-blind safe chart colours (Paul Tol bright and
// vibrant, Okabe-Ito) with a few muted extras.
var curatedSeeds = []string{
	// Tol bright
	"#4477aa", "#66ccee", "#228833", "#ccbb44", "#ee6677", "#aa3377",
	// Tol vibrant
	"#0077bb", "#33bbee", "#009988", "#ee7733", "#cc3311", "#ee3377",
	// Okabe-Ito
	"#e69f00", "#56b4e9", "#009e73", "#f0e442", "#0072b2", "#d55e00", "#cc79a7",
	// Tol muted
	"#332288", "#88ccee", "#44aa99", "#117733", "#999933", "#ddcc77", "#882255",
}

var sequentialKeys = [][2]string{
	{"#9ecae1", "#08306b"}, // blues
	{"#a1d99b", "#00441b"}, // greens
	{"#fdae6b", "#7f2704"}, // oranges
	{"#bcbddc", "#3f007d"}, // purples
}

var divergingKeys = [][3]string{
	{"#2166ac", "#f7f7f7", "#b2182b"}, // blue-red
	{"#1b7837", "#f7f7f7", "#762a83"}, // green-purple
	{"#01665e", "#f5f5f5", "#8c510a"}, // teal-brown
	{"#4575b4", "#ffffbf", "#d73027"}, // blue-yellow-red
}

const (
	synthesisAttempts = 300
	floorRelaxStep    = 5.0
)

// curatedBases draws Size colours from curatedSeeds in random order, keeping
// only those DistinctDistance from every colour already chosen. When the
// seeds run out it synthesises random colours, relaxing the distance floor
// after each round of synthesisAttempts failures.
func (a *Assembler) curatedBases() []colour.RGB {
	chosen := make([]colour.RGB, 0, Size)
	for _, i := range a.rng.Perm(len(curatedSeeds)) {
		if len(chosen) == Size {
			break
		}
		c := colour.MustParseHex(curatedSeeds[i])
		if farFromAll(c, chosen, colour.DistinctDistance) {
			chosen = append(chosen, c)
		}
	}

	floor := colour.DistinctDistance
	failures := 0
	for len(chosen) < Size {
		c := colour.HSLToRGB(
			a.rng.Float64()*360,
			0.55+a.rng.Float64()*0.35,
			0.35+a.rng.Float64()*0.30,
		)
		if farFromAll(c, chosen, floor) {
			chosen = append(chosen, c)
			continue
		}
		failures++
		if failures >= synthesisAttempts {
			floor = math.Max(0, floor-floorRelaxStep)
			failures = 0
			a.logger.Debug("relaxing curated distance floor", "floor", floor, "chosen", len(chosen))
		}
	}
	return chosen
}

func farFromAll(c colour.RGB, others []colour.RGB, floor float64) bool {
	for _, o := range others {
		if colour.LabDistance(c, o) < floor {
			return false
		}
	}
	return true
}
