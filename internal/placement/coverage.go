package placement

import "math"

// Coverage scores a placement against the target set. A target counts as
// covered when its Euclidean distance to at least one unit is <= radius
// (boundary inclusive). The scan is a plain O(targets x units) loop; at the
// intended scale (thousands of targets, tens of units) a spatial index is
// not worth its complexity.
//
// An empty target set scores 0%, never a division fault. The uncovered list
// preserves target iteration order.
func Coverage(p Placement, targets []Position, radius float64) CoverageResult {
	result := CoverageResult{Total: len(targets)}
	if len(targets) == 0 {
		return result
	}

	for _, t := range targets {
		if coveredBy(p, t, radius) {
			result.Covered++
		} else {
			result.Uncovered = append(result.Uncovered, t)
		}
	}

	result.Percent = float64(result.Covered) / float64(result.Total) * 100
	return result
}

// Uncovered returns the targets not covered by p, in target iteration order.
func Uncovered(p Placement, targets []Position, radius float64) []Position {
	var uncovered []Position
	for _, t := range targets {
		if !coveredBy(p, t, radius) {
			uncovered = append(uncovered, t)
		}
	}
	return uncovered
}

func coveredBy(p Placement, t Position, radius float64) bool {
	for _, u := range p.Units {
		if math.Hypot(t.X-u.Pos.X, t.Y-u.Pos.Y) <= radius {
			return true
		}
	}
	return false
}
