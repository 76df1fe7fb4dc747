package monitor

import (
	"fmt"
	"os"

	"github.com/banshee-data/coverage.plan/internal/placement"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteScatterHTML renders targets and units as an interactive scatter chart
// for quick visual checks without opening the PNG pipeline. Coverage
// circles are omitted here; the PNG map is the authoritative picture.
func WriteScatterHTML(path string, targets []placement.Position, p placement.Placement, radius float64) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "RSU Placement",
			Subtitle: fmt.Sprintf("%d RSUs, range %gm, %d target positions", p.Len(), radius, len(targets)),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "X (m)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Y (m)", Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	targetData := make([]opts.ScatterData, 0, len(targets))
	for _, t := range targets {
		targetData = append(targetData, opts.ScatterData{
			Value:      []interface{}{t.X, t.Y},
			SymbolSize: 4,
		})
	}
	unitData := make([]opts.ScatterData, 0, p.Len())
	for _, u := range p.Units {
		unitData = append(unitData, opts.ScatterData{
			Value:      []interface{}{u.Pos.X, u.Pos.Y},
			Symbol:     "triangle",
			SymbolSize: 14,
		})
	}

	scatter.AddSeries("Vehicle Positions", targetData)
	scatter.AddSeries("RSU Positions", unitData)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := scatter.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
