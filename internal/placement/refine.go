package placement

import "fmt"

// Constants bounding the local search.
const (
	// MaxRefinePasses caps the number of improvement passes.
	MaxRefinePasses = 5
	// MaxRelocationTrials caps how many uncovered targets are tried as a
	// relocation destination for each unit.
	MaxRelocationTrials = 3
)

// LocalSearchRefiner starts from a base strategy's placement and greedily
// relocates single units onto uncovered targets whenever doing so strictly
// improves coverage. First-improvement hill climbing: no optimality
// guarantee, but the result never scores below the base placement.
type LocalSearchRefiner struct {
	Base     Strategy
	Observer Observer
}

// NewLocalSearchRefiner returns a refiner over base. A nil observer is
// replaced with NopObserver.
func NewLocalSearchRefiner(base Strategy, obs Observer) *LocalSearchRefiner {
	if obs == nil {
		obs = NopObserver{}
	}
	return &LocalSearchRefiner{Base: base, Observer: obs}
}

func (s *LocalSearchRefiner) Name() string { return "local-search" }

// Place refines the base placement. Each pass scans units in placement
// order; for each unit the first few uncovered targets are tried as new
// positions, holding all other units fixed. The first trial that strictly
// improves coverage replaces the best placement and restarts the unit scan
// with a freshly computed uncovered list. A pass with no accepted move ends
// the search.
//
// Trials are cloned from the best placement, never aliased to it, so a
// rejected trial cannot corrupt the accepted state.
func (s *LocalSearchRefiner) Place(targets []Position, box BoundingBox, unitCount int, radius float64) (Placement, error) {
	best, err := s.Base.Place(targets, box, unitCount, radius)
	if err != nil {
		return Placement{}, fmt.Errorf("local-search: base placement: %w", err)
	}
	bestCov := Coverage(best, targets, radius)

	for pass := 1; pass <= MaxRefinePasses; pass++ {
		accepted := false
		rescan := true
		for rescan {
			rescan = false
			for i := range best.Units {
				uncovered := Uncovered(best, targets, radius)
				if len(uncovered) == 0 {
					return best, nil
				}
				trials := uncovered
				if len(trials) > MaxRelocationTrials {
					trials = trials[:MaxRelocationTrials]
				}
				for _, target := range trials {
					trial := best.Clone()
					trial.Units[i].Pos = target
					cov := Coverage(trial, targets, radius)
					if cov.Percent > bestCov.Percent {
						best = trial
						bestCov = cov
						accepted = true
						rescan = true
						s.Observer.ImprovementAccepted(pass, best.Units[i].ID, cov)
						break
					}
				}
				if rescan {
					break
				}
			}
		}
		if !accepted {
			break
		}
	}
	return best, nil
}

var _ Strategy = (*LocalSearchRefiner)(nil)
