package heat

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Params describes the domain and discretization of one solve.
type Params struct {
	Length      float64 // L
	Duration    float64 // T
	Diffusivity float64 // alpha
	Cells       int     // N, the grid has N+1 points
	Steps       int     // M, the field has M+1 columns
}

// Validate reports the first parameter that violates the solver contract.
func (p Params) Validate() error {
	switch {
	case !(p.Length > 0) || math.IsInf(p.Length, 0):
		return &ParameterError{Name: "length", Value: p.Length}
	case !(p.Duration > 0) || math.IsInf(p.Duration, 0):
		return &ParameterError{Name: "duration", Value: p.Duration}
	case !(p.Diffusivity > 0) || math.IsInf(p.Diffusivity, 0):
		return &ParameterError{Name: "diffusivity", Value: p.Diffusivity}
	case p.Cells < 2:
		return &ParameterError{Name: "cells", Value: float64(p.Cells)}
	case p.Steps < 1:
		return &ParameterError{Name: "steps", Value: float64(p.Steps)}
	}
	return nil
}

// Spacing is the grid step h = L/N.
func (p Params) Spacing() float64 { return p.Length / float64(p.Cells) }

// TimeStep is k = T/M.
func (p Params) TimeStep() float64 { return p.Duration / float64(p.Steps) }

// Ratio is the stencil coupling r = alpha*k/h^2.
func (p Params) Ratio() float64 {
	h := p.Spacing()
	return p.Diffusivity * p.TimeStep() / (h * h)
}

// InitialCondition maps the N+1 grid coordinates to N+1 temperatures.
type InitialCondition func(grid []float64) []float64

// Observer is called once per field column, in time order, as the solve
// proceeds. The column slice is reused between calls.
type Observer func(step int, t float64, column []float64)

// Solution is the output of a solve. Consumers must treat it as read-only.
type Solution struct {
	Params Params
	Grid   []float64
	Field  *mat.Dense
}

// Column returns a copy of the field at time step j.
func (s *Solution) Column(j int) []float64 {
	return mat.Col(nil, j, s.Field)
}

// Time returns the simulated time of column j.
func (s *Solution) Time(j int) float64 {
	return float64(j) * s.Params.TimeStep()
}

// Times returns the simulated time of every column.
func (s *Solution) Times() []float64 {
	_, cols := s.Field.Dims()
	times := make([]float64, cols)
	for j := range times {
		times[j] = s.Time(j)
	}
	return times
}

// Grid returns N+1 points uniformly spaced over [0, L]. The last point is
// exactly L.
func Grid(p Params) []float64 {
	x := make([]float64, p.Cells+1)
	h := p.Spacing()
	for i := range x {
		x[i] = float64(i) * h
	}
	x[p.Cells] = p.Length
	return x
}
