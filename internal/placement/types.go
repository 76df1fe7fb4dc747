// Package placement selects positions for a fixed number of fixed-range
// coverage units so that as many target positions as possible fall within
// range of at least one unit. Targets come from a parsed mobility trace
// snapshot; four heuristic strategies each propose a placement and a
// selector keeps the best-scoring one.
package placement

import "errors"

// Sentinel errors surfaced by the selector and its callers.
var (
	// ErrNoTargets indicates the target set is empty. Ingestion treats this
	// as fatal; the selector also checks it as a guard against being called
	// directly on an empty set.
	ErrNoTargets = errors.New("no target positions")

	// ErrAllStrategiesFailed indicates every placement strategy returned an
	// error, so there is no placement to compare. Distinct from a successful
	// run with low coverage.
	ErrAllStrategiesFailed = errors.New("all placement strategies failed")
)

// Position is a point in trace coordinates (metres). Positions compare by
// exact coordinate match; the target set deduplicates on that basis.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TargetSet holds the unique target positions extracted from a trace, in
// insertion order. It is built once during ingestion and read-only
// afterwards; iteration order is the order positions were first seen, which
// keeps uncovered-target lists deterministic across runs.
type TargetSet struct {
	positions []Position
	seen      map[Position]struct{}
}

// NewTargetSet returns an empty target set.
func NewTargetSet() *TargetSet {
	return &TargetSet{seen: make(map[Position]struct{})}
}

// Add inserts p unless an identical position is already present. It reports
// whether the position was newly added.
func (ts *TargetSet) Add(p Position) bool {
	if _, ok := ts.seen[p]; ok {
		return false
	}
	ts.seen[p] = struct{}{}
	ts.positions = append(ts.positions, p)
	return true
}

// Contains reports whether p is in the set (exact coordinate match).
func (ts *TargetSet) Contains(p Position) bool {
	_, ok := ts.seen[p]
	return ok
}

// Len returns the number of unique positions.
func (ts *TargetSet) Len() int { return len(ts.positions) }

// Positions returns the positions in insertion order. Callers must treat
// the returned slice as read-only.
func (ts *TargetSet) Positions() []Position { return ts.positions }

// Bounds returns the bounding box over the set. The second return is false
// when the set is empty.
func (ts *TargetSet) Bounds() (BoundingBox, bool) {
	if len(ts.positions) == 0 {
		return BoundingBox{}, false
	}
	return BoundsOf(ts.positions), true
}

// BoundingBox is the min/max extent of a set of positions per axis.
type BoundingBox struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// BoundsOf computes the bounding box over positions. It panics on an empty
// slice; callers guard with the ingestion empty-set check.
func BoundsOf(positions []Position) BoundingBox {
	b := BoundingBox{
		MinX: positions[0].X, MaxX: positions[0].X,
		MinY: positions[0].Y, MaxY: positions[0].Y,
	}
	for _, p := range positions[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}

// Pad returns a copy of the box grown by d on every side.
func (b BoundingBox) Pad(d float64) BoundingBox {
	return BoundingBox{
		MinX: b.MinX - d,
		MinY: b.MinY - d,
		MaxX: b.MaxX + d,
		MaxY: b.MaxY + d,
	}
}

// Contains reports whether p lies inside the box (edges inclusive).
func (b BoundingBox) Contains(p Position) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Width returns the X extent of the box.
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the Y extent of the box.
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// Unit is one placed coverage unit: a stable index and a position.
type Unit struct {
	ID  int      `json:"id"`
	Pos Position `json:"pos"`
}

// Placement is an ordered sequence of units produced by one strategy.
// Placements are value objects: strategies and local-search trials each work
// on their own copy and never mutate another's output.
type Placement struct {
	Units []Unit `json:"units"`
}

// Clone returns an independent deep copy. Local search branches trial
// placements from the best-so-far, so trials must never share backing
// storage with it.
func (p Placement) Clone() Placement {
	units := make([]Unit, len(p.Units))
	copy(units, p.Units)
	return Placement{Units: units}
}

// Len returns the number of units in the placement.
func (p Placement) Len() int { return len(p.Units) }

// PlacementFromPositions builds a placement with one unit per position,
// assigning IDs in order.
func PlacementFromPositions(positions []Position) Placement {
	units := make([]Unit, len(positions))
	for i, pos := range positions {
		units[i] = Unit{ID: i, Pos: pos}
	}
	return Placement{Units: units}
}

// CoverageResult is the score of one placement against a target set.
type CoverageResult struct {
	Covered   int        `json:"covered"`
	Total     int        `json:"total"`
	Percent   float64    `json:"percent"`
	Uncovered []Position `json:"uncovered,omitempty"`
}
