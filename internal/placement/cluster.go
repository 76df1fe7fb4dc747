package placement

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// Constants for the k-means clustering capability.
const (
	// DefaultKMeansRestarts is the number of independent seeded restarts;
	// the run with the lowest inertia wins.
	DefaultKMeansRestarts = 10
	// DefaultKMeansMaxIterations bounds Lloyd iterations per restart.
	DefaultKMeansMaxIterations = 100
)

// Clusterer partitions points into k groups and returns the k group
// centroids. Implementations must be deterministic for a fixed seed so that
// placement comparisons are reproducible across runs.
type Clusterer interface {
	Cluster(points []Position, k int, seed int64) ([]Position, error)
}

// KMeansClusterer implements Clusterer with Lloyd's algorithm. Each restart
// seeds its own PRNG from the caller's seed plus the restart index, picks
// initial centroids k-means++ style, and iterates to convergence; the
// restart with the lowest inertia supplies the result.
type KMeansClusterer struct {
	Restarts      int
	MaxIterations int
}

// NewKMeansClusterer returns a clusterer with default restart and iteration
// limits.
func NewKMeansClusterer() *KMeansClusterer {
	return &KMeansClusterer{
		Restarts:      DefaultKMeansRestarts,
		MaxIterations: DefaultKMeansMaxIterations,
	}
}

// Cluster runs seeded k-means and returns the k centroids.
func (c *KMeansClusterer) Cluster(points []Position, k int, seed int64) ([]Position, error) {
	if k <= 0 {
		return nil, fmt.Errorf("kmeans: k must be positive, got %d", k)
	}
	if len(points) < k {
		return nil, fmt.Errorf("kmeans: %d points cannot form %d clusters", len(points), k)
	}

	restarts := c.Restarts
	if restarts < 1 {
		restarts = 1
	}
	maxIter := c.MaxIterations
	if maxIter < 1 {
		maxIter = 1
	}

	var best []Position
	bestInertia := math.Inf(1)
	for r := 0; r < restarts; r++ {
		rng := rand.New(rand.NewSource(seed + int64(r)))
		centroids, inertia := c.run(points, k, rng, maxIter)
		if inertia < bestInertia {
			bestInertia = inertia
			best = centroids
		}
	}
	return best, nil
}

// run performs one seeded restart and returns its centroids and inertia
// (sum of squared distances from each point to its assigned centroid).
func (c *KMeansClusterer) run(points []Position, k int, rng *rand.Rand, maxIter int) ([]Position, float64) {
	centroids := seedCentroids(points, k, rng)
	assign := make([]int, len(points))
	for i := range assign {
		assign[i] = -1
	}

	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assign[i] != nearest {
				assign[i] = nearest
				changed = true
			}
		}
		if !changed {
			break
		}
		recomputeCentroids(points, assign, centroids, rng)
	}

	inertia := 0.0
	for i, p := range points {
		inertia += sqDist(p, centroids[assign[i]])
	}
	return centroids, inertia
}

// seedCentroids picks k initial centroids k-means++ style: the first
// uniformly at random, each next with probability proportional to squared
// distance from the nearest centroid chosen so far.
func seedCentroids(points []Position, k int, rng *rand.Rand) []Position {
	centroids := make([]Position, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	weights := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			d := sqDist(p, centroids[nearestCentroid(p, centroids)])
			weights[i] = d
			total += d
		}
		if total == 0 {
			// All remaining points coincide with existing centroids.
			centroids = append(centroids, points[rng.Intn(len(points))])
			continue
		}
		pick := rng.Float64() * total
		acc := 0.0
		chosen := len(points) - 1
		for i, w := range weights {
			acc += w
			if pick <= acc {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}
	return centroids
}

// recomputeCentroids moves each centroid to the mean of its members. An
// emptied cluster is reseeded from a random point so k centroids survive.
func recomputeCentroids(points []Position, assign []int, centroids []Position, rng *rand.Rand) {
	xs := make([][]float64, len(centroids))
	ys := make([][]float64, len(centroids))
	for i, p := range points {
		c := assign[i]
		xs[c] = append(xs[c], p.X)
		ys[c] = append(ys[c], p.Y)
	}
	for c := range centroids {
		if len(xs[c]) == 0 {
			centroids[c] = points[rng.Intn(len(points))]
			continue
		}
		centroids[c] = Position{
			X: stat.Mean(xs[c], nil),
			Y: stat.Mean(ys[c], nil),
		}
	}
}

func nearestCentroid(p Position, centroids []Position) int {
	nearest := 0
	nearestDist := sqDist(p, centroids[0])
	for i := 1; i < len(centroids); i++ {
		if d := sqDist(p, centroids[i]); d < nearestDist {
			nearestDist = d
			nearest = i
		}
	}
	return nearest
}

func sqDist(a, b Position) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Verify at compile time that *KMeansClusterer implements Clusterer.
var _ Clusterer = (*KMeansClusterer)(nil)
