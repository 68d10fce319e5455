package viz

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/heatsim/internal/heat"
)

// ProfilesSVG draws the given time columns as polylines over x, coloured
// along the theme ramp from the earliest column to the latest.
func ProfilesSVG(w io.Writer, sol *heat.Solution, steps []int, theme Theme, width, height int) error {
	if len(steps) == 0 || len(sol.Grid) < 2 {
		return fmt.Errorf("viz: nothing to draw")
	}

	minX, maxX := sol.Grid[0], sol.Grid[len(sol.Grid)-1]
	minY, maxY := bounds(sol.Field)

	// padding
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeX, rangeY := maxX-minX, maxY-minY

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	for k, j := range steps {
		frac := 0.0
		if len(steps) > 1 {
			frac = float64(k) / float64(len(steps)-1)
		}
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" data-t="%g" d="M`, theme.Color(1-frac), sol.Time(j))

		for i, v := range sol.Column(j) {
			x := (sol.Grid[i] - minX) / rangeX * float64(width)
			y := float64(height) - (v-minY)/rangeY*float64(height)
			if i == 0 {
				fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
