// Package export turns a finished placement run into artifacts: a C++
// source fragment for the simulation that consumes the positions, a plain
// text report, and a JSON result document. Everything here is a pure
// consumer of the run result; nothing writes back into the planner.
package export

import (
	"fmt"
	"strings"

	"github.com/banshee-data/coverage.plan/internal/placement"
)

// CPPFragment serializes unit positions as the C++ initializer the ns-3
// simulation expects. The layout matches the consumer verbatim: one
// RSUPosition entry per unit, Z pinned to 0, names RSU-<id>.
func CPPFragment(p placement.Placement) string {
	var b strings.Builder
	b.WriteString("// Optimized RSU Positions\n")
	b.WriteString("std::vector<RSUPosition> allRSUs = {\n")
	for i, u := range p.Units {
		fmt.Fprintf(&b, "    {%d, Vector(%.2f, %.2f, 0.0), \"RSU-%d\"}", u.ID, u.Pos.X, u.Pos.Y, u.ID)
		if i < len(p.Units)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("};\n")
	return b.String()
}
