package analysis

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/heatsim/internal/heat"
)

// AmplificationFactor is the per-step growth of sine mode m on an n-cell
// grid: (1 - 2r s) / (1 + 2r s) with s = sin^2(m*pi/(2n)).
func AmplificationFactor(r float64, mode, n int) float64 {
	s := math.Sin(float64(mode) * math.Pi / (2 * float64(n)))
	s *= s
	return (1 - 2*r*s) / (1 + 2*r*s)
}

// DiscreteMode is the exact Crank–Nicolson field for the initial condition
// amplitude*sin(mode*pi*x/L).
func DiscreteMode(p heat.Params, mode int, amplitude float64) *mat.Dense {
	g := AmplificationFactor(p.Ratio(), mode, p.Cells)
	u := mat.NewDense(p.Cells+1, p.Steps+1, nil)
	for i := 1; i < p.Cells; i++ {
		v := amplitude * math.Sin(float64(mode)*math.Pi*float64(i)/float64(p.Cells))
		for j := 0; j <= p.Steps; j++ {
			u.Set(i, j, v)
			v *= g
		}
	}
	return u
}

// ContinuousMode samples the analytic solution
// amplitude*sin(m*pi*x/L)*exp(-alpha*(m*pi/L)^2*t) on the solver grid.
func ContinuousMode(p heat.Params, mode int, amplitude float64) *mat.Dense {
	grid := heat.Grid(p)
	kx := float64(mode) * math.Pi / p.Length
	rate := p.Diffusivity * kx * kx
	u := mat.NewDense(p.Cells+1, p.Steps+1, nil)
	for i := 1; i < p.Cells; i++ {
		s := amplitude * math.Sin(kx*grid[i])
		for j := 0; j <= p.Steps; j++ {
			u.Set(i, j, s*math.Exp(-rate*float64(j)*p.TimeStep()))
		}
	}
	return u
}

// MaxAbsError is the largest element-wise difference. Shapes that do not
// match give +Inf.
func MaxAbsError(a, b mat.Matrix) float64 {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return math.Inf(1)
	}
	worst := 0.0
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			worst = math.Max(worst, math.Abs(a.At(i, j)-b.At(i, j)))
		}
	}
	return worst
}
