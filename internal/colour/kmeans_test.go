package colour

import (
	"math"
	"sort"
	"testing"
)

func TestKMeansSeparatesClusters(t *testing.T) {
	var points []Lab
	for i := range 20 {
		jitter := float64(i%5) * 0.2
		points = append(points,
			Lab{L: 20 + jitter, A: 10, B: -10},
			Lab{L: 80 - jitter, A: -20, B: 30},
		)
	}

	centres, err := NewKMeans(NewRand(42)).Cluster(points, 2)
	if err != nil {
		t.Fatalf("Cluster() error: %v", err)
	}
	if len(centres) != 2 {
		t.Fatalf("expected 2 centres, got %d", len(centres))
	}

	sort.Slice(centres, func(i, j int) bool { return centres[i].L < centres[j].L })
	if math.Abs(centres[0].L-20.4) > 0.5 || math.Abs(centres[1].L-79.6) > 0.5 {
		t.Errorf("unexpected centres: %+v", centres)
	}
}

func TestKMeansRejectsBadInput(t *testing.T) {
	km := NewKMeans(NewRand(1))

	if _, err := km.Cluster([]Lab{{L: 1}}, 0); err == nil {
		t.Error("expected error for k = 0")
	}
	if _, err := km.Cluster([]Lab{{L: 1}}, 2); err == nil {
		t.Error("expected error when there are fewer points than clusters")
	}
}

func TestRecalculateCentroidsKeepsEmptyCluster(t *testing.T) {
	points := []Lab{{L: 10}, {L: 20}}
	previous := []Lab{{L: 15}, {L: 90, A: 5}}

	got := recalculateCentroids(points, []int{0, 0}, previous)

	if got[0] != (Lab{L: 15}) {
		t.Errorf("centre 0 = %+v, want mean of assigned points", got[0])
	}
	if got[1] != previous[1] {
		t.Errorf("empty cluster moved: %+v, want %+v", got[1], previous[1])
	}
}

func TestKMeansInitialCentroidsAreDistinctPoints(t *testing.T) {
	points := make([]Lab, 30)
	for i := range points {
		points[i] = Lab{L: float64(i)}
	}

	centres := NewKMeans(NewRand(7)).initialCentroids(points, 12)
	seen := make(map[Lab]bool)
	for _, c := range centres {
		if seen[c] {
			t.Fatalf("centre %+v chosen twice", c)
		}
		seen[c] = true
	}
}
