package placement

import (
	"errors"
	"testing"
)

func TestSelectorDegenerateInputFullCoverage(t *testing.T) {
	// More units requested than targets exist: every strategy falls back to
	// one unit per target and the winner covers everything.
	targets := []Position{{X: 0, Y: 0}, {X: 5000, Y: 5000}}
	sel, err := NewSelector(nil).Select(targets, BoundsOf(targets), 5, 300)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.Placement.Len() != 2 {
		t.Errorf("placement has %d units, want 2 (one per target)", sel.Placement.Len())
	}
	if sel.Coverage.Percent != 100 {
		t.Errorf("coverage %.2f%%, want 100%%", sel.Coverage.Percent)
	}
	// All strategies tie at 100%; the first in the fixed order wins.
	if sel.Strategy != "cluster-centroid" {
		t.Errorf("tie should keep the first strategy, got %q", sel.Strategy)
	}
	if len(sel.Scores) != 4 {
		t.Errorf("expected diagnostics for 4 strategies, got %d", len(sel.Scores))
	}
}

func TestSelectorEmptyTargets(t *testing.T) {
	_, err := NewSelector(nil).Select(nil, BoundingBox{}, 5, 300)
	if !errors.Is(err, ErrNoTargets) {
		t.Errorf("expected ErrNoTargets, got %v", err)
	}
}

func TestSelectorInvalidParameters(t *testing.T) {
	targets := []Position{{X: 0, Y: 0}}
	if _, err := NewSelector(nil).Select(targets, BoundsOf(targets), 0, 300); err == nil {
		t.Error("unit count 0 should error")
	}
	if _, err := NewSelector(nil).Select(targets, BoundsOf(targets), 3, 0); err == nil {
		t.Error("range 0 should error")
	}
	if _, err := NewSelector(nil).Select(targets, BoundsOf(targets), 3, -1); err == nil {
		t.Error("negative range should error")
	}
}

func TestSelectorExcludesFailingStrategy(t *testing.T) {
	targets := []Position{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}}
	failing := fixedStrategy{name: "broken", err: errors.New("backend error")}
	working := fixedStrategy{name: "working", p: PlacementFromPositions([]Position{{X: 10, Y: 0}})}

	s := &Selector{Strategies: []Strategy{failing, working}}
	sel, err := s.Select(targets, BoundsOf(targets), 1, 15)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.Strategy != "working" {
		t.Errorf("winner %q, want the surviving strategy", sel.Strategy)
	}
	if len(sel.Scores) != 2 {
		t.Fatalf("expected 2 diagnostic entries, got %d", len(sel.Scores))
	}
	if sel.Scores[0].Err == "" {
		t.Error("failing strategy should carry its error in diagnostics")
	}
}

func TestSelectorAllStrategiesFailed(t *testing.T) {
	targets := []Position{{X: 0, Y: 0}}
	s := &Selector{Strategies: []Strategy{
		fixedStrategy{name: "a", err: errors.New("boom")},
		fixedStrategy{name: "b", err: errors.New("bang")},
	}}
	_, err := s.Select(targets, BoundsOf(targets), 1, 300)
	if !errors.Is(err, ErrAllStrategiesFailed) {
		t.Errorf("expected ErrAllStrategiesFailed, got %v", err)
	}
}

func TestSelectorTieKeepsFirstStrategy(t *testing.T) {
	// Both stubs produce identical coverage; the earlier one must win.
	targets := []Position{{X: 0, Y: 0}, {X: 1000, Y: 0}}
	p := PlacementFromPositions([]Position{{X: 0, Y: 0}})
	s := &Selector{Strategies: []Strategy{
		fixedStrategy{name: "first", p: p},
		fixedStrategy{name: "second", p: p},
	}}
	sel, err := s.Select(targets, BoundsOf(targets), 1, 300)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.Strategy != "first" {
		t.Errorf("tie winner %q, want \"first\"", sel.Strategy)
	}
}

func TestSelectorStandardOrder(t *testing.T) {
	s := NewSelector(nil)
	want := []string{"cluster-centroid", "uniform-grid", "density-grid", "local-search"}
	if len(s.Strategies) != len(want) {
		t.Fatalf("expected %d strategies, got %d", len(want), len(s.Strategies))
	}
	for i, name := range want {
		if got := s.Strategies[i].Name(); got != name {
			t.Errorf("strategy %d is %q, want %q", i, got, name)
		}
	}
}

func TestSelectorRefinerAtLeastMatchesCentroid(t *testing.T) {
	targets := spiralPoints(150)
	sel, err := NewSelector(nil).Select(targets, BoundsOf(targets), 8, 100)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	var centroidPct, refinedPct float64
	for _, score := range sel.Scores {
		switch score.Name {
		case "cluster-centroid":
			centroidPct = score.Coverage.Percent
		case "local-search":
			refinedPct = score.Coverage.Percent
		}
	}
	if refinedPct < centroidPct {
		t.Errorf("local search %.2f%% scored below its centroid base %.2f%%", refinedPct, centroidPct)
	}
}
