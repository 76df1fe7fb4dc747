package placement

// Constants shared by the placement strategies.
const (
	// GridPaddingFactor scales the coverage radius into bounding-box padding
	// so lattice points can sit outside the outermost targets.
	GridPaddingFactor = 0.3
	// MaxDensityResolution caps the density histogram at 50x50 cells.
	MaxDensityResolution = 50
	// DefaultClusterSeed fixes the k-means seed so repeated runs over the
	// same trace produce identical placements.
	DefaultClusterSeed = 42
)

// Strategy produces a candidate placement for unitCount units of the given
// coverage radius over the target set. Strategies never mutate targets.
//
// Every strategy shares one degenerate-input rule: when there are fewer
// targets than requested units, it skips its normal logic and returns one
// unit per target, which covers everything by construction.
type Strategy interface {
	Name() string
	Place(targets []Position, box BoundingBox, unitCount int, radius float64) (Placement, error)
}

// degeneratePlacement implements the shared fewer-targets-than-units rule.
// The second return reports whether the rule applied.
func degeneratePlacement(targets []Position, unitCount int) (Placement, bool) {
	if len(targets) >= unitCount {
		return Placement{}, false
	}
	return PlacementFromPositions(targets), true
}
