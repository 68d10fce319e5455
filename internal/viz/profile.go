package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/heatsim/internal/heat"
)

// Profile plots one temperature column against grid index.
func Profile(column []float64, caption string, width, height int, extra ...asciigraph.Option) string {
	opts := append([]asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	}, extra...)
	return asciigraph.Plot(column, opts...)
}

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Red, asciigraph.Yellow, asciigraph.Green, asciigraph.Cyan, asciigraph.Blue, asciigraph.Magenta,
}

// Profiles overlays the given time columns, earliest in red.
func Profiles(sol *heat.Solution, steps []int, caption string, width, height int) string {
	data := make([][]float64, 0, len(steps))
	colors := make([]asciigraph.AnsiColor, 0, len(steps))
	for k, j := range steps {
		data = append(data, sol.Column(j))
		colors = append(colors, seriesColors[k%len(seriesColors)])
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
	)
}

// EvenSteps picks n column indices spread over [0, steps].
func EvenSteps(steps, n int) []int {
	if n < 2 {
		return []int{steps}
	}
	out := make([]int, 0, n)
	for k := 0; k < n; k++ {
		j := sample(k, n, steps+1)
		if len(out) > 0 && out[len(out)-1] == j {
			continue
		}
		out = append(out, j)
	}
	return out
}
