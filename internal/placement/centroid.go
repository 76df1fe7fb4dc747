package placement

import "fmt"

// ClusterCentroid places one unit at each of unitCount cluster centroids of
// the target set. The clustering itself is an injected capability so any
// deterministic k-means-style implementation can serve it.
type ClusterCentroid struct {
	Clusterer Clusterer
	Seed      int64
}

// NewClusterCentroid returns a ClusterCentroid strategy over the given
// clusterer with the fixed default seed.
func NewClusterCentroid(c Clusterer) *ClusterCentroid {
	return &ClusterCentroid{Clusterer: c, Seed: DefaultClusterSeed}
}

func (s *ClusterCentroid) Name() string { return "cluster-centroid" }

// Place clusters the targets and returns the centroids as unit positions.
func (s *ClusterCentroid) Place(targets []Position, box BoundingBox, unitCount int, radius float64) (Placement, error) {
	if p, ok := degeneratePlacement(targets, unitCount); ok {
		return p, nil
	}

	centroids, err := s.Clusterer.Cluster(targets, unitCount, s.Seed)
	if err != nil {
		return Placement{}, fmt.Errorf("cluster-centroid: %w", err)
	}
	return PlacementFromPositions(centroids), nil
}

var _ Strategy = (*ClusterCentroid)(nil)
