package placement

import "fmt"

// StrategyScore records one strategy's outcome for diagnostics. Exactly one
// of Coverage / Err is meaningful, discriminated by Err being empty.
type StrategyScore struct {
	Name     string         `json:"name"`
	Coverage CoverageResult `json:"coverage"`
	Err      string         `json:"error,omitempty"`
}

// Selection is the selector's output: the winning strategy's placement and
// score, plus the per-strategy diagnostics for every strategy that ran.
type Selection struct {
	Strategy  string          `json:"strategy"`
	Placement Placement       `json:"placement"`
	Coverage  CoverageResult  `json:"coverage"`
	Scores    []StrategyScore `json:"scores"`
}

// Selector runs every placement strategy over the same inputs, scores each
// placement, and keeps the best.
type Selector struct {
	// Strategies run in order; the order is the tie-break (an earlier
	// strategy keeps a tied maximum). NewSelector fills the standard four.
	Strategies []Strategy
	Observer   Observer
}

// NewSelector returns a selector over the standard strategy order:
// cluster-centroid, uniform-grid, density-grid, local-search. The local
// search refines the same cluster-centroid strategy instance, so its result
// can never score below it.
func NewSelector(obs Observer) *Selector {
	if obs == nil {
		obs = NopObserver{}
	}
	centroid := NewClusterCentroid(NewKMeansClusterer())
	return &Selector{
		Strategies: []Strategy{
			centroid,
			UniformGrid{},
			DensityGrid{},
			NewLocalSearchRefiner(centroid, obs),
		},
		Observer: obs,
	}
}

// Select runs all strategies and returns the placement with the strictly
// greatest coverage percentage. A failing strategy is excluded and reported
// through the observer; only when every strategy fails does Select return
// ErrAllStrategiesFailed.
func (s *Selector) Select(targets []Position, box BoundingBox, unitCount int, radius float64) (*Selection, error) {
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	if unitCount <= 0 {
		return nil, fmt.Errorf("unit count must be positive, got %d", unitCount)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("coverage range must be positive, got %g", radius)
	}

	obs := s.Observer
	if obs == nil {
		obs = NopObserver{}
	}

	var best *Selection
	scores := make([]StrategyScore, 0, len(s.Strategies))
	for _, strategy := range s.Strategies {
		p, err := strategy.Place(targets, box, unitCount, radius)
		if err != nil {
			obs.StrategyFailed(strategy.Name(), err)
			scores = append(scores, StrategyScore{Name: strategy.Name(), Err: err.Error()})
			continue
		}
		cov := Coverage(p, targets, radius)
		obs.StrategyEvaluated(strategy.Name(), cov)
		scores = append(scores, StrategyScore{Name: strategy.Name(), Coverage: cov})

		if best == nil || cov.Percent > best.Coverage.Percent {
			best = &Selection{Strategy: strategy.Name(), Placement: p, Coverage: cov}
		}
	}

	if best == nil {
		return nil, ErrAllStrategiesFailed
	}
	best.Scores = scores
	return best, nil
}
