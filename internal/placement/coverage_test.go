package placement

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCoverageTwoTargetsOneUnit(t *testing.T) {
	targets := []Position{{X: 0, Y: 0}, {X: 1000, Y: 0}}
	const radius = 300.0

	// A unit halfway between the targets covers neither (both 500m away).
	middle := PlacementFromPositions([]Position{{X: 500, Y: 0}})
	cov := Coverage(middle, targets, radius)
	if cov.Covered != 0 || cov.Percent != 0 {
		t.Errorf("middle unit: got %d covered (%.2f%%), want 0", cov.Covered, cov.Percent)
	}
	if len(cov.Uncovered) != 2 {
		t.Errorf("middle unit: got %d uncovered, want 2", len(cov.Uncovered))
	}

	// A unit on the first target covers exactly that target.
	onFirst := PlacementFromPositions([]Position{{X: 0, Y: 0}})
	cov = Coverage(onFirst, targets, radius)
	if cov.Covered != 1 || cov.Percent != 50 {
		t.Errorf("unit on target: got %d covered (%.2f%%), want 1 (50%%)", cov.Covered, cov.Percent)
	}
	if diff := cmp.Diff([]Position{{X: 1000, Y: 0}}, cov.Uncovered); diff != "" {
		t.Errorf("uncovered mismatch (-want +got):\n%s", diff)
	}
}

func TestCoverageBoundaryInclusive(t *testing.T) {
	targets := []Position{{X: 300, Y: 0}}
	p := PlacementFromPositions([]Position{{X: 0, Y: 0}})
	cov := Coverage(p, targets, 300)
	if cov.Covered != 1 {
		t.Error("a target exactly at the coverage radius must count as covered")
	}
}

func TestCoverageOneUnitPerTargetIsFull(t *testing.T) {
	targets := []Position{{X: 1, Y: 1}, {X: 500, Y: 900}, {X: -30, Y: 7}}
	p := PlacementFromPositions(targets)
	for _, radius := range []float64{0.001, 1, 300} {
		cov := Coverage(p, targets, radius)
		if cov.Percent != 100 {
			t.Errorf("radius %g: one unit per target should give 100%%, got %.2f%%", radius, cov.Percent)
		}
		if cov.Uncovered != nil {
			t.Errorf("radius %g: expected no uncovered targets", radius)
		}
	}
}

func TestCoverageMonotoneInRadius(t *testing.T) {
	targets := []Position{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 250, Y: 0},
		{X: 400, Y: 300}, {X: 800, Y: 800}, {X: -100, Y: 600},
	}
	p := PlacementFromPositions([]Position{{X: 100, Y: 100}, {X: 600, Y: 600}})

	prev := -1.0
	for _, radius := range []float64{10, 50, 150, 300, 600, 1200, 5000} {
		cov := Coverage(p, targets, radius)
		if cov.Percent < prev {
			t.Errorf("coverage decreased from %.2f%% to %.2f%% when radius grew to %g", prev, cov.Percent, radius)
		}
		prev = cov.Percent
	}
}

func TestCoverageEmptyTargets(t *testing.T) {
	p := PlacementFromPositions([]Position{{X: 0, Y: 0}})
	cov := Coverage(p, nil, 300)
	if cov.Percent != 0 || cov.Covered != 0 || cov.Total != 0 {
		t.Errorf("empty target set must score 0%%, got %+v", cov)
	}
}

func TestUncoveredPreservesOrder(t *testing.T) {
	targets := []Position{
		{X: 0, Y: 0},    // covered
		{X: 900, Y: 0},  // uncovered
		{X: 10, Y: 10},  // covered
		{X: 0, Y: -900}, // uncovered
	}
	p := PlacementFromPositions([]Position{{X: 0, Y: 0}})
	got := Uncovered(p, targets, 100)
	want := []Position{{X: 900, Y: 0}, {X: 0, Y: -900}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("uncovered order mismatch (-want +got):\n%s", diff)
	}
}
