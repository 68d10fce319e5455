package viz

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/heatsim/internal/heat"
)

// fieldGrid exposes a solution as a plotter.GridXYZ: columns are grid
// points, rows are time steps.
type fieldGrid struct {
	sol *heat.Solution
}

func (g fieldGrid) Dims() (c, r int) {
	rows, cols := g.sol.Field.Dims()
	return rows, cols
}

func (g fieldGrid) Z(c, r int) float64 { return g.sol.Field.At(c, r) }
func (g fieldGrid) X(c int) float64    { return g.sol.Grid[c] }
func (g fieldGrid) Y(r int) float64    { return g.sol.Time(r) }

// SavePNG renders the field as a heat map. The format follows the file
// extension (png, svg, pdf, ...).
func SavePNG(path string, sol *heat.Solution, title string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "time"

	h := plotter.NewHeatMap(fieldGrid{sol: sol}, palette.Heat(64, 1))
	p.Add(h)

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}
