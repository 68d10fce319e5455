package initcond

import "math"

// Gaussian is a bump of heat, Strength*exp(-(x-Center)^2/Width), e.g. a
// candle held near one end of a rod.
type Gaussian struct {
	Center, Strength, Width float64
}

func NewGaussian(length float64) *Gaussian {
	return &Gaussian{Center: 0.2 * length, Strength: 10, Width: 0.01}
}

func (g *Gaussian) Name() string { return "gaussian" }

func (g *Gaussian) Eval(grid []float64) []float64 {
	u := make([]float64, len(grid))
	for i, x := range grid {
		d := x - g.Center
		u[i] = g.Strength * math.Exp(-d*d/g.Width)
	}
	return u
}

func (g *Gaussian) GetParams() map[string]float64 {
	return map[string]float64{"center": g.Center, "strength": g.Strength, "width": g.Width}
}

func (g *Gaussian) SetParam(n string, v float64) error {
	switch n {
	case "center":
		g.Center = v
	case "strength":
		g.Strength = v
	case "width":
		g.Width = v
	default:
		return unknownParam(g.Name(), n)
	}
	return nil
}
