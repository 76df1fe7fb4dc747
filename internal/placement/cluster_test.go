package placement

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKMeansClusterInvalidInputs(t *testing.T) {
	c := NewKMeansClusterer()
	points := []Position{{X: 0, Y: 0}, {X: 1, Y: 1}}

	if _, err := c.Cluster(points, 0, DefaultClusterSeed); err == nil {
		t.Error("k=0 should error")
	}
	if _, err := c.Cluster(points, -3, DefaultClusterSeed); err == nil {
		t.Error("negative k should error")
	}
	if _, err := c.Cluster(points, 3, DefaultClusterSeed); err == nil {
		t.Error("k greater than point count should error")
	}
}

func TestKMeansClusterDeterministic(t *testing.T) {
	points := spiralPoints(200)
	c := NewKMeansClusterer()

	first, err := c.Cluster(points, 8, DefaultClusterSeed)
	if err != nil {
		t.Fatalf("Cluster: %v", err)
	}
	second, err := c.Cluster(points, 8, DefaultClusterSeed)
	if err != nil {
		t.Fatalf("Cluster: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed must give identical centroids (-first +second):\n%s", diff)
	}
}

func TestKMeansClusterCentroidCount(t *testing.T) {
	points := spiralPoints(50)
	c := NewKMeansClusterer()
	for _, k := range []int{1, 2, 5, 10} {
		centroids, err := c.Cluster(points, k, DefaultClusterSeed)
		if err != nil {
			t.Fatalf("k=%d: %v", k, err)
		}
		if len(centroids) != k {
			t.Errorf("k=%d: got %d centroids", k, len(centroids))
		}
	}
}

func TestKMeansClusterSeparatedGroups(t *testing.T) {
	// Two tight groups far apart; the two centroids must land near the
	// group means.
	var points []Position
	for i := 0; i < 20; i++ {
		points = append(points, Position{X: float64(i % 5), Y: float64(i / 5)})
		points = append(points, Position{X: 1000 + float64(i%5), Y: 1000 + float64(i/5)})
	}
	c := NewKMeansClusterer()
	centroids, err := c.Cluster(points, 2, DefaultClusterSeed)
	if err != nil {
		t.Fatalf("Cluster: %v", err)
	}

	groupMeans := []Position{{X: 2, Y: 1.5}, {X: 1002, Y: 1001.5}}
	for _, mean := range groupMeans {
		nearest := math.Inf(1)
		for _, ct := range centroids {
			if d := math.Hypot(ct.X-mean.X, ct.Y-mean.Y); d < nearest {
				nearest = d
			}
		}
		if nearest > 5 {
			t.Errorf("no centroid near group mean %+v (nearest %.1f away); centroids: %+v", mean, nearest, centroids)
		}
	}
}

func TestKMeansClusterExactPointsForKEqualN(t *testing.T) {
	points := []Position{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}}
	c := NewKMeansClusterer()
	centroids, err := c.Cluster(points, 3, DefaultClusterSeed)
	if err != nil {
		t.Fatalf("Cluster: %v", err)
	}
	// With k==n the optimum puts one centroid on each point.
	for _, p := range points {
		found := false
		for _, ct := range centroids {
			if math.Hypot(ct.X-p.X, ct.Y-p.Y) < 1e-9 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected a centroid on point %+v, centroids: %+v", p, centroids)
		}
	}
}

// spiralPoints generates a deterministic scattered point set.
func spiralPoints(n int) []Position {
	points := make([]Position, n)
	for i := range points {
		theta := 0.3 * float64(i)
		r := 10 + 5*float64(i)
		points[i] = Position{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}
	return points
}
