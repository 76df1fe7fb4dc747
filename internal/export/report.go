package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/banshee-data/coverage.plan/internal/placement"
)

// RunInfo carries everything the text report and JSON export need about a
// finished run.
type RunInfo struct {
	TraceFile   string                    `json:"trace_file"`
	TargetCount int                       `json:"target_count"`
	UnitCount   int                       `json:"unit_count"`
	Radius      float64                   `json:"range_m"`
	Strategy    string                    `json:"strategy"`
	Coverage    placement.CoverageResult  `json:"coverage"`
	Placement   placement.Placement       `json:"placement"`
	Scores      []placement.StrategyScore `json:"scores,omitempty"`
}

// Recommendation maps a coverage percentage to the report's human verdict.
func Recommendation(percent float64) string {
	switch {
	case percent >= 95:
		return "EXCELLENT: Coverage is excellent!"
	case percent >= 85:
		return "GOOD: Coverage is good. Consider minor adjustments."
	case percent >= 75:
		return "FAIR: Coverage is acceptable but could be improved."
	default:
		return "POOR: Coverage is low. Consider more units or different placement."
	}
}

// WriteReport writes the plain-text optimization report: run parameters,
// the winning strategy and its score, per-unit positions, the verdict, and
// the C++ fragment appended for copy-paste convenience.
func WriteReport(w io.Writer, info RunInfo) error {
	var b strings.Builder
	b.WriteString("RSU Placement Optimization Report\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")
	fmt.Fprintf(&b, "Input file: %s\n", info.TraceFile)
	fmt.Fprintf(&b, "Vehicle positions analyzed: %d\n", info.TargetCount)
	fmt.Fprintf(&b, "Target RSUs: %d\n", info.UnitCount)
	fmt.Fprintf(&b, "RSU Range: %gm\n", info.Radius)
	fmt.Fprintf(&b, "Winning strategy: %s\n", info.Strategy)
	fmt.Fprintf(&b, "Coverage achieved: %.2f%% (%d/%d)\n\n", info.Coverage.Percent, info.Coverage.Covered, info.Coverage.Total)

	b.WriteString("Optimized RSU Positions:\n")
	for _, u := range info.Placement.Units {
		fmt.Fprintf(&b, "RSU-%d: (%.2f, %.2f)\n", u.ID, u.Pos.X, u.Pos.Y)
	}

	fmt.Fprintf(&b, "\nRecommendation: %s\n", Recommendation(info.Coverage.Percent))
	fmt.Fprintf(&b, "\nC++ Code:\n%s", CPPFragment(info.Placement))

	_, err := io.WriteString(w, b.String())
	return err
}
