// Package monitor renders a finished placement run for visual inspection:
// a PNG placement map via gonum/plot and an interactive HTML scatter via
// go-echarts. Both consume the run result read-only.
package monitor

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"time"

	"github.com/banshee-data/coverage.plan/internal/placement"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// circleSegments is the number of line segments approximating each
// coverage circle.
const circleSegments = 90

var (
	targetColor = color.RGBA{R: 70, G: 110, B: 250, A: 255}
	unitColor   = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	circleColor = color.RGBA{R: 220, G: 40, B: 40, A: 90}
)

// SavePlacementPlot writes a placement map to path: target points, unit
// markers with labels, and a dashed coverage circle per unit, on equal-range
// axes so distances read true.
func SavePlacementPlot(path string, targets []placement.Position, p placement.Placement, radius float64) error {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Optimal RSU Placement (%d RSUs, Range: %gm)", p.Len(), radius)
	pl.X.Label.Text = "X Coordinate (m)"
	pl.Y.Label.Text = "Y Coordinate (m)"

	targetPts := make(plotter.XYs, len(targets))
	for i, t := range targets {
		targetPts[i] = plotter.XY{X: t.X, Y: t.Y}
	}
	targetScatter, err := plotter.NewScatter(targetPts)
	if err != nil {
		return fmt.Errorf("target scatter: %w", err)
	}
	targetScatter.GlyphStyle.Color = targetColor
	targetScatter.GlyphStyle.Radius = vg.Points(1.5)
	targetScatter.GlyphStyle.Shape = draw.CircleGlyph{}
	pl.Add(targetScatter)
	pl.Legend.Add("Vehicle Positions", targetScatter)

	unitPts := make(plotter.XYs, p.Len())
	labels := make([]string, p.Len())
	for i, u := range p.Units {
		unitPts[i] = plotter.XY{X: u.Pos.X, Y: u.Pos.Y}
		labels[i] = fmt.Sprintf("RSU-%d", u.ID)
	}
	unitScatter, err := plotter.NewScatter(unitPts)
	if err != nil {
		return fmt.Errorf("unit scatter: %w", err)
	}
	unitScatter.GlyphStyle.Color = unitColor
	unitScatter.GlyphStyle.Radius = vg.Points(4)
	unitScatter.GlyphStyle.Shape = draw.PyramidGlyph{}
	pl.Add(unitScatter)
	pl.Legend.Add("RSU Positions", unitScatter)

	unitLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: unitPts, Labels: labels})
	if err != nil {
		return fmt.Errorf("unit labels: %w", err)
	}
	pl.Add(unitLabels)

	for _, u := range p.Units {
		circle, err := plotter.NewLine(circlePoints(u.Pos, radius))
		if err != nil {
			return fmt.Errorf("coverage circle: %w", err)
		}
		circle.Color = circleColor
		circle.Width = vg.Points(1)
		circle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		pl.Add(circle)
	}

	squareAxes(pl, targets, p, radius)
	pl.Legend.Top = true

	if err := pl.Save(12*vg.Inch, 10*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

// circlePoints approximates the circle of the given radius around c.
func circlePoints(c placement.Position, radius float64) plotter.XYs {
	pts := make(plotter.XYs, circleSegments+1)
	for i := 0; i <= circleSegments; i++ {
		theta := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = plotter.XY{
			X: c.X + radius*math.Cos(theta),
			Y: c.Y + radius*math.Sin(theta),
		}
	}
	return pts
}

// squareAxes forces equal axis ranges so coverage circles render round. The
// range covers every target and every circle with a small margin.
func squareAxes(pl *plot.Plot, targets []placement.Position, p placement.Placement, radius float64) {
	if len(targets) == 0 && p.Len() == 0 {
		return
	}

	var box placement.BoundingBox
	switch {
	case len(targets) > 0:
		box = placement.BoundsOf(targets)
	default:
		box = placement.BoundsOf([]placement.Position{p.Units[0].Pos})
	}
	for _, u := range p.Units {
		b := placement.BoundsOf([]placement.Position{u.Pos}).Pad(radius)
		if b.MinX < box.MinX {
			box.MinX = b.MinX
		}
		if b.MaxX > box.MaxX {
			box.MaxX = b.MaxX
		}
		if b.MinY < box.MinY {
			box.MinY = b.MinY
		}
		if b.MaxY > box.MaxY {
			box.MaxY = b.MaxY
		}
	}

	cx := (box.MinX + box.MaxX) / 2
	cy := (box.MinY + box.MaxY) / 2
	half := math.Max(box.Width(), box.Height()) / 2 * 1.05
	pl.X.Min, pl.X.Max = cx-half, cx+half
	pl.Y.Min, pl.Y.Max = cy-half, cy+half
}

// FormatTimestamp generates a timestamp string for directory naming.
func FormatTimestamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// MakeOutputDir builds a timestamped artifact directory for one run:
// <baseDir>/<trace basename>/<timestamp>, or <baseDir>/run_<timestamp> when
// no trace file name is available.
func MakeOutputDir(baseDir, traceFile string) string {
	ts := FormatTimestamp(time.Now())
	if traceFile != "" {
		base := filepath.Base(traceFile)
		ext := filepath.Ext(base)
		name := base[:len(base)-len(ext)]
		return filepath.Join(baseDir, name, ts)
	}
	return filepath.Join(baseDir, "run_"+ts)
}
