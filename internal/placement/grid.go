package placement

import (
	"math"
	"sort"
)

// UniformGrid lays units out on an evenly spaced square lattice spanning the
// padded bounding box, ignoring where the targets actually are. It is the
// simplest strategy and the fallback supplier for DensityGrid shortfalls.
type UniformGrid struct{}

func (UniformGrid) Name() string { return "uniform-grid" }

// Place returns the first unitCount lattice points in row-major order from a
// gridSide x gridSide lattice, where gridSide = ceil(sqrt(unitCount)).
func (UniformGrid) Place(targets []Position, box BoundingBox, unitCount int, radius float64) (Placement, error) {
	if p, ok := degeneratePlacement(targets, unitCount); ok {
		return p, nil
	}

	padded := box.Pad(radius * GridPaddingFactor)
	gridSide := int(math.Ceil(math.Sqrt(float64(unitCount))))

	xStep := padded.Width() / math.Max(1, float64(gridSide-1))
	yStep := padded.Height() / math.Max(1, float64(gridSide-1))

	positions := make([]Position, 0, unitCount)
	for i := 0; i < gridSide && len(positions) < unitCount; i++ {
		for j := 0; j < gridSide && len(positions) < unitCount; j++ {
			positions = append(positions, Position{
				X: padded.MinX + float64(i)*xStep,
				Y: padded.MinY + float64(j)*yStep,
			})
		}
	}
	return PlacementFromPositions(positions), nil
}

// DensityGrid divides the padded bounding box into a resolution x resolution
// histogram, counts targets per cell, and places units at the centers of the
// most populated cells. Ties go to the cell visited first in row-major
// traversal (lower row, then lower column). When fewer populated cells exist
// than units requested, the shortfall is filled from UniformGrid.
type DensityGrid struct{}

func (DensityGrid) Name() string { return "density-grid" }

type densityCell struct {
	row, col int
	count    int
}

func (DensityGrid) Place(targets []Position, box BoundingBox, unitCount int, radius float64) (Placement, error) {
	if p, ok := degeneratePlacement(targets, unitCount); ok {
		return p, nil
	}

	padded := box.Pad(radius * GridPaddingFactor)
	resolution := int(math.Floor(math.Sqrt(float64(len(targets)))))
	if resolution > MaxDensityResolution {
		resolution = MaxDensityResolution
	}
	if resolution < 1 {
		resolution = 1
	}

	cellW := padded.Width() / float64(resolution)
	cellH := padded.Height() / float64(resolution)

	counts := make([]int, resolution*resolution)
	for _, t := range targets {
		row := histogramBin(t.Y-padded.MinY, cellH, resolution)
		col := histogramBin(t.X-padded.MinX, cellW, resolution)
		counts[row*resolution+col]++
	}

	populated := make([]densityCell, 0, len(counts))
	for row := 0; row < resolution; row++ {
		for col := 0; col < resolution; col++ {
			if n := counts[row*resolution+col]; n > 0 {
				populated = append(populated, densityCell{row: row, col: col, count: n})
			}
		}
	}

	// Highest count first; equal counts keep traversal order.
	sort.SliceStable(populated, func(i, j int) bool {
		return populated[i].count > populated[j].count
	})

	positions := make([]Position, 0, unitCount)
	for _, c := range populated {
		if len(positions) >= unitCount {
			break
		}
		positions = append(positions, Position{
			X: padded.MinX + (float64(c.col)+0.5)*cellW,
			Y: padded.MinY + (float64(c.row)+0.5)*cellH,
		})
	}

	if remaining := unitCount - len(positions); remaining > 0 {
		fill, err := UniformGrid{}.Place(targets, box, remaining, radius)
		if err != nil {
			return Placement{}, err
		}
		for _, u := range fill.Units {
			positions = append(positions, u.Pos)
		}
	}

	return PlacementFromPositions(positions[:unitCount]), nil
}

// histogramBin maps an offset into one of n bins of the given width,
// clamping values on the far edge into the last bin.
func histogramBin(offset, width float64, n int) int {
	if width <= 0 {
		return 0
	}
	bin := int(offset / width)
	if bin < 0 {
		bin = 0
	}
	if bin >= n {
		bin = n - 1
	}
	return bin
}

var (
	_ Strategy = UniformGrid{}
	_ Strategy = DensityGrid{}
)
