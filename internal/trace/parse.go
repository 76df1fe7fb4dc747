// Package trace extracts the unique target-position set from an ns-2
// mobility trace. Time and trajectory information are discarded: the
// planner works on one static snapshot of every location an entity occupied
// or was sent to.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/banshee-data/coverage.plan/internal/monitoring"
	"github.com/banshee-data/coverage.plan/internal/placement"
)

// Record shapes recognized in a trace. Anything else is silently skipped.
var (
	// $node_(7) set X_ 1204.39
	staticAxisRe = regexp.MustCompile(`\$node_\((\d+)\) set ([XY])_ ([\d.]+)`)
	// $ns_ at 12.0 "$node_(7) setdest 850.0 420.5 11.2"
	setdestRe = regexp.MustCompile(`\$ns_ at [\d.]+ "\$node_\((\d+)\) setdest ([\d.]+) ([\d.]+) ([\d.]+)"`)
)

// Trace is the parsed product: the deduplicated target set and its bounds.
type Trace struct {
	Targets *placement.TargetSet
	Bounds  placement.BoundingBox
}

// axisState accumulates per-entity static assignments until both axes have
// been seen.
type axisState struct {
	x, y       float64
	hasX, hasY bool
}

// ParseFile parses the trace at path and logs a short summary.
func ParseFile(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}
	defer f.Close()

	tr, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("trace %s: %w", path, err)
	}

	b := tr.Bounds
	monitoring.Logf("trace: %d unique target positions in %s", tr.Targets.Len(), path)
	monitoring.Logf("trace: area bounds X=[%.1f, %.1f] Y=[%.1f, %.1f]", b.MinX, b.MaxX, b.MinY, b.MaxY)
	return tr, nil
}

// Parse reads trace text in a single forward pass. Two record shapes
// contribute positions:
//
//   - a static per-axis assignment; the entity's position joins the target
//     set each time both of its axes are known (the set deduplicates
//     repeats). An entity that only ever reports one axis contributes
//     nothing; that tolerance for partial records is deliberate.
//   - a scheduled movement; the destination joins the target set as an
//     independent point, never merged with the entity's static start.
//
// Malformed or unrecognized lines are skipped without error. An empty
// resulting target set is the one fatal outcome, reported as
// placement.ErrNoTargets so callers abort before running any strategy.
func Parse(r io.Reader) (*Trace, error) {
	targets := placement.NewTargetSet()
	entities := make(map[int]*axisState)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if m := staticAxisRe.FindStringSubmatch(line); m != nil {
			id, err1 := strconv.Atoi(m[1])
			value, err2 := strconv.ParseFloat(m[3], 64)
			if err1 != nil || err2 != nil {
				continue
			}
			st := entities[id]
			if st == nil {
				st = &axisState{}
				entities[id] = st
			}
			if m[2] == "X" {
				st.x, st.hasX = value, true
			} else {
				st.y, st.hasY = value, true
			}
			if st.hasX && st.hasY {
				targets.Add(placement.Position{X: st.x, Y: st.y})
			}
			continue
		}

		if m := setdestRe.FindStringSubmatch(line); m != nil {
			x, err1 := strconv.ParseFloat(m[2], 64)
			y, err2 := strconv.ParseFloat(m[3], 64)
			if err1 != nil || err2 != nil {
				continue
			}
			targets.Add(placement.Position{X: x, Y: y})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}

	bounds, ok := targets.Bounds()
	if !ok {
		return nil, placement.ErrNoTargets
	}
	return &Trace{Targets: targets, Bounds: bounds}, nil
}
