package colour

import (
	"fmt"
	"math"
)

// KMeans clusters points in Lab space.
type KMeans struct {
	maxIterations int
	convergence   float64
	rng           Rand
}

// NewKMeans creates a KMeans with the default iteration cap (50) and
// convergence threshold (0.1 Lab units).
func NewKMeans(rng Rand) *KMeans {
	return &KMeans{
		maxIterations: 50,
		convergence:   0.1,
		rng:           rng,
	}
}

// Cluster partitions points into k clusters and returns their centres.
// Initial centres are k distinct points chosen at random. Iteration stops
// once no centre moves more than the convergence threshold or the iteration
// cap is reached; a cluster that loses all its points keeps its last centre.
func (km *KMeans) Cluster(points []Lab, k int) ([]Lab, error) {
	if k < 1 {
		return nil, fmt.Errorf("cluster count must be at least 1, got %d", k)
	}
	if len(points) < k {
		return nil, fmt.Errorf("need at least %d points to form %d clusters, got %d", k, k, len(points))
	}

	centroids := km.initialCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < km.maxIterations; iter++ {
		for i, point := range points {
			assignments[i] = nearestCentroid(point, centroids)
		}

		next := recalculateCentroids(points, assignments, centroids)

		// Largest single-centre movement decides convergence.
		maxMovement := 0.0
		for i := range centroids {
			maxMovement = math.Max(maxMovement, centroids[i].Distance(next[i]))
		}
		centroids = next

		if maxMovement <= km.convergence {
			break
		}
	}

	return centroids, nil
}

// initialCentroids picks k non-repeating points at random.
func (km *KMeans) initialCentroids(points []Lab, k int) []Lab {
	perm := km.rng.Perm(len(points))
	centroids := make([]Lab, k)
	for i := range k {
		centroids[i] = points[perm[i]]
	}
	return centroids
}

// nearestCentroid finds the index of the nearest centroid to a point.
func nearestCentroid(point Lab, centroids []Lab) int {
	minDist := math.MaxFloat64
	nearest := 0

	for i, centroid := range centroids {
		dist := point.Distance(centroid)
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}

// recalculateCentroids averages the points assigned to each cluster.
func recalculateCentroids(points []Lab, assignments []int, previous []Lab) []Lab {
	k := len(previous)
	sums := make([]Lab, k)
	counts := make([]int, k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].L += point.L
		sums[cluster].A += point.A
		sums[cluster].B += point.B
		counts[cluster]++
	}

	centroids := make([]Lab, k)
	for i := range k {
		if counts[i] == 0 {
			centroids[i] = previous[i]
			continue
		}
		n := float64(counts[i])
		centroids[i] = Lab{L: sums[i].L / n, A: sums[i].A / n, B: sums[i].B / n}
	}

	return centroids
}
