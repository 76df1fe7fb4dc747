// Command rsu-plan reads an ns-2 mobility trace, finds the best placement
// for a fixed number of fixed-range coverage units, and writes the result
// artifacts: a text report, a C++ position fragment, and optionally a JSON
// document, a placement map (PNG), an interactive scatter (HTML), and a row
// in a sqlite run-history store.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/banshee-data/coverage.plan/internal/db"
	"github.com/banshee-data/coverage.plan/internal/export"
	"github.com/banshee-data/coverage.plan/internal/monitor"
	"github.com/banshee-data/coverage.plan/internal/monitoring"
	"github.com/banshee-data/coverage.plan/internal/placement"
	"github.com/banshee-data/coverage.plan/internal/trace"
)

// Default run parameters, matching the simulation this tool feeds.
const (
	DefaultUnitCount = 20
	DefaultRangeM    = 300.0
)

// Artifact file names written into the output directory.
const (
	ReportFile = "rsu_optimization_report.txt"
	CPPFile    = "optimized_rsu_positions.cpp"
	PlotFile   = "rsu_placement.png"
)

// Config holds the run configuration assembled from flags.
type Config struct {
	TraceFile string
	UnitCount int
	Radius    float64
	OutputDir string
	JSONFile  string
	HTMLFile  string
	DBPath    string
	Plot      bool
	Quiet     bool
}

func parseFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.TraceFile, "trace", "", "ns-2 mobility trace file (may also be given as the first argument)")
	flag.IntVar(&cfg.UnitCount, "units", DefaultUnitCount, "number of coverage units to place")
	flag.Float64Var(&cfg.Radius, "range", DefaultRangeM, "coverage range in metres")
	flag.StringVar(&cfg.OutputDir, "output-dir", "", "artifact directory (default: plans/<trace>/<timestamp>)")
	flag.StringVar(&cfg.JSONFile, "json", "", "also write the run result as JSON to this file name")
	flag.StringVar(&cfg.HTMLFile, "html", "", "also write an interactive scatter chart to this file name")
	flag.StringVar(&cfg.DBPath, "db", "", "append the run to this sqlite run-history database")
	flag.BoolVar(&cfg.Plot, "plot", false, "render the placement map PNG")
	flag.BoolVar(&cfg.Quiet, "quiet", false, "suppress diagnostic narration")
	flag.Parse()

	if cfg.TraceFile == "" && flag.NArg() > 0 {
		cfg.TraceFile = flag.Arg(0)
	}
	return cfg
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		log.Fatalf("rsu-plan: %v", err)
	}
}

func run(cfg Config) error {
	if cfg.TraceFile == "" {
		return fmt.Errorf("no trace file given (use -trace or a positional argument)")
	}
	if cfg.UnitCount <= 0 {
		return fmt.Errorf("unit count must be positive, got %d", cfg.UnitCount)
	}
	if cfg.Radius <= 0 {
		return fmt.Errorf("coverage range must be positive, got %g", cfg.Radius)
	}
	if cfg.Quiet {
		monitoring.SetLogger(nil)
	}

	tr, err := trace.ParseFile(cfg.TraceFile)
	if err != nil {
		if errors.Is(err, placement.ErrNoTargets) {
			return fmt.Errorf("no vehicle positions found in %s: %w", cfg.TraceFile, err)
		}
		return err
	}

	selector := placement.NewSelector(placement.LogObserver{})
	sel, err := selector.Select(tr.Targets.Positions(), tr.Bounds, cfg.UnitCount, cfg.Radius)
	if err != nil {
		return err
	}

	printSummary(os.Stdout, cfg, tr, sel)

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = monitor.MakeOutputDir("plans", cfg.TraceFile)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	info := export.RunInfo{
		TraceFile:   cfg.TraceFile,
		TargetCount: tr.Targets.Len(),
		UnitCount:   cfg.UnitCount,
		Radius:      cfg.Radius,
		Strategy:    sel.Strategy,
		Coverage:    sel.Coverage,
		Placement:   sel.Placement,
		Scores:      sel.Scores,
	}

	if err := writeArtifacts(cfg, outputDir, tr, info); err != nil {
		return err
	}
	fmt.Printf("\nArtifacts written to %s\n", outputDir)
	return nil
}

// writeArtifacts produces every requested output file plus the two that are
// always written (report and C++ fragment).
func writeArtifacts(cfg Config, outputDir string, tr *trace.Trace, info export.RunInfo) error {
	cppPath := filepath.Join(outputDir, CPPFile)
	if err := os.WriteFile(cppPath, []byte(export.CPPFragment(info.Placement)), 0644); err != nil {
		return fmt.Errorf("write C++ fragment: %w", err)
	}

	reportPath := filepath.Join(outputDir, ReportFile)
	f, err := os.Create(reportPath)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := export.WriteReport(f, info); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}

	if cfg.JSONFile != "" {
		if err := export.WriteJSON(filepath.Join(outputDir, cfg.JSONFile), info); err != nil {
			return err
		}
	}
	if cfg.Plot {
		plotPath := filepath.Join(outputDir, PlotFile)
		if err := monitor.SavePlacementPlot(plotPath, tr.Targets.Positions(), info.Placement, cfg.Radius); err != nil {
			return fmt.Errorf("render placement map: %w", err)
		}
	}
	if cfg.HTMLFile != "" {
		htmlPath := filepath.Join(outputDir, cfg.HTMLFile)
		if err := monitor.WriteScatterHTML(htmlPath, tr.Targets.Positions(), info.Placement, cfg.Radius); err != nil {
			return err
		}
	}
	if cfg.DBPath != "" {
		if err := recordRun(cfg, info); err != nil {
			return err
		}
	}
	return nil
}

func recordRun(cfg Config, info export.RunInfo) error {
	store, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.RecordRun(db.Run{
		TraceFile:   info.TraceFile,
		TargetCount: info.TargetCount,
		UnitCount:   info.UnitCount,
		Radius:      info.Radius,
		Strategy:    info.Strategy,
		Covered:     info.Coverage.Covered,
		Total:       info.Coverage.Total,
		Percent:     info.Coverage.Percent,
		Units:       info.Placement.Units,
		Scores:      info.Scores,
	})
	if err != nil {
		return err
	}
	monitoring.Logf("run %s recorded in %s", runID, cfg.DBPath)
	return nil
}

// printSummary writes the human-readable run outcome: one line per
// strategy, the winner, per-unit positions, and the coverage verdict.
func printSummary(w *os.File, cfg Config, tr *trace.Trace, sel *placement.Selection) {
	fmt.Fprintf(w, "Trace: %s (%d unique target positions)\n", cfg.TraceFile, tr.Targets.Len())
	fmt.Fprintf(w, "Placing %d units with range %gm\n\n", cfg.UnitCount, cfg.Radius)

	for _, score := range sel.Scores {
		if score.Err != "" {
			fmt.Fprintf(w, "  %-18s FAILED: %s\n", score.Name, score.Err)
			continue
		}
		marker := " "
		if score.Name == sel.Strategy {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-18s %6.2f%% (%d/%d covered)\n",
			marker, score.Name, score.Coverage.Percent, score.Coverage.Covered, score.Coverage.Total)
	}

	fmt.Fprintf(w, "\nBest strategy: %s (%.2f%% coverage)\n", sel.Strategy, sel.Coverage.Percent)
	for _, u := range sel.Placement.Units {
		fmt.Fprintf(w, "  RSU-%d: (%.2f, %.2f)\n", u.ID, u.Pos.X, u.Pos.Y)
	}
	fmt.Fprintf(w, "\n%s\n", export.Recommendation(sel.Coverage.Percent))
}
