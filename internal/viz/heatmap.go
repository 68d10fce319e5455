package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/heatsim/internal/heat"
)

var shades = []rune(" ░▒▓█")

// Heatmap draws the field with x across and time running upwards, sampled
// onto a width x height character grid. Each cell carries both a shade glyph
// and a theme color so the map survives terminals without color.
func Heatmap(sol *heat.Solution, theme Theme, width, height int) string {
	rows, cols := sol.Field.Dims()
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	width = min(width, rows)
	height = min(height, cols)

	lo, hi := bounds(sol.Field)
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		j := sample(height-1-y, height, cols)
		fmt.Fprintf(&b, "%8.3f │", sol.Time(j))
		for x := 0; x < width; x++ {
			i := sample(x, width, rows)
			v := (sol.Field.At(i, j) - lo) / span
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Color(v)).Render(string(shade(v))))
		}
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(" ", 9) + "└" + strings.Repeat("─", width) + "\n")
	fmt.Fprintf(&b, "%10s%-*.2f%.2f\n", "", max(width-4, 1), sol.Grid[0], sol.Grid[len(sol.Grid)-1])
	fmt.Fprintf(&b, "%10smin %.4g  max %.4g\n", "", lo, hi)
	return b.String()
}

// sample maps position k of n onto an index in [0, total).
func sample(k, n, total int) int {
	if n <= 1 {
		return 0
	}
	return int(math.Round(float64(k) * float64(total-1) / float64(n-1)))
}

func shade(v float64) rune {
	idx := int(v * float64(len(shades)))
	if idx >= len(shades) {
		idx = len(shades) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return shades[idx]
}

func bounds(m mat.Matrix) (lo, hi float64) {
	return mat.Min(m), mat.Max(m)
}
